package save

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"teacher-salary/internal/service/calculator"
)

type SessionCreator interface {
	CreateSession(ctx context.Context) (calculator.State, error)
}

// CreateSession starts a session with an empty selection.
func CreateSession(log *slog.Logger, creator SessionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.session.CreateSession"

		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		state, err := creator.CreateSession(ctx)
		if err != nil {
			log.Error("failed to create session", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("session created", slog.String("op", op), slog.String("session_id", state.SessionID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, state)
	}
}
