package calculate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	json "github.com/goccy/go-json"

	"teacher-salary/internal/middleware/embed"
	"teacher-salary/internal/salary"
	"teacher-salary/internal/service/calculator"
)

type Calculator interface {
	Calculate(ctx context.Context, req calculator.CalculateRequest) (calculator.State, error)
}

// CalculateSalary evaluates a whole selection without a session. An
// incomplete selection is a normal 200 response with "complete": false.
func CalculateSalary(log *slog.Logger, calc Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.calculate.CalculateSalary"

		var req calculator.CalculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Debug("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		state, err := calc.Calculate(ctx, req)
		if err != nil {
			if errors.Is(err, salary.ErrInvalidValue) || errors.Is(err, salary.ErrUnknownField) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("failed to calculate salary", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Debug("salary calculated",
			slog.String("op", op),
			slog.Bool("complete", state.Complete),
			slog.Bool("embedded", embed.IsEmbedded(r.Context())),
		)

		render.JSON(w, r, state)
	}
}
