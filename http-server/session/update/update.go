package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	json "github.com/goccy/go-json"

	"teacher-salary/internal/salary"
	"teacher-salary/internal/service/calculator"
	"teacher-salary/internal/storage"
)

type SessionUpdater interface {
	ApplyChanges(ctx context.Context, id string, reqs []salary.ChangeRequest) (calculator.State, error)
}

type Request struct {
	Changes []salary.ChangeRequest `json:"changes"`
}

// UpdateSession applies the changes in order as one step. If any change is
// invalid the session is left untouched.
func UpdateSession(log *slog.Logger, updater SessionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.session.UpdateSession"

		id := chi.URLParam(r, "id")

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Debug("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		state, err := updater.ApplyChanges(ctx, id, req.Changes)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrSessionNotFound):
				http.Error(w, "session not found", http.StatusNotFound)
			case errors.Is(err, salary.ErrInvalidValue), errors.Is(err, salary.ErrUnknownField):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				log.Error("failed to update session", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Internal error", http.StatusInternalServerError)
			}
			return
		}

		render.JSON(w, r, state)
	}
}
