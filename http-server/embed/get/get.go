package get

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"teacher-salary/internal/service/embed"
)

type EmbedGenerator interface {
	Generate(origin string) (embed.Snippet, error)
}

// GetEmbed returns the direct link and iframe code for the configured origin,
// or for ?origin= when given.
func GetEmbed(log *slog.Logger, gen EmbedGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.embed.GetEmbed"

		snippet, err := gen.Generate(r.URL.Query().Get("origin"))
		if err != nil {
			if errors.Is(err, embed.ErrInvalidOrigin) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("failed to generate embed code", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, snippet)
	}
}
