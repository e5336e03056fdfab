package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"teacher-salary/internal/storage"
)

type SessionDeleter interface {
	DeleteSession(ctx context.Context, id string) error
}

func DeleteSession(log *slog.Logger, deleter SessionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.session.DeleteSession"

		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		if err := deleter.DeleteSession(ctx, id); err != nil {
			if errors.Is(err, storage.ErrSessionNotFound) {
				http.Error(w, "session not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete session", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
