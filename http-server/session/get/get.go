package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"teacher-salary/internal/service/calculator"
	"teacher-salary/internal/storage"
)

type SessionProvider interface {
	GetSession(ctx context.Context, id string) (calculator.State, error)
}

func GetSession(log *slog.Logger, provider SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.session.GetSession"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		state, err := provider.GetSession(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrSessionNotFound) {
				http.Error(w, "session not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get session", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, state)
	}
}
