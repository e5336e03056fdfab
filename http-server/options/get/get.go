package get

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"teacher-salary/internal/salary"
	"teacher-salary/internal/service/calculator"
)

type OptionsProvider interface {
	Options(level salary.SubLevel, rank salary.Rank) calculator.Options
}

// GetOptions returns the lookup tables the form is rendered from.
// Optional ?sub_level= and ?rank= add the step count for that pair.
func GetOptions(log *slog.Logger, provider OptionsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.options.GetOptions"

		level, rank, err := parseQuery(r)
		if err != nil {
			log.Debug("invalid options query", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		render.JSON(w, r, provider.Options(level, rank))
	}
}

func parseQuery(r *http.Request) (salary.SubLevel, salary.Rank, error) {
	var (
		level salary.SubLevel
		rank  salary.Rank
		err   error
	)

	if v := r.URL.Query().Get("sub_level"); v != "" {
		if level, err = salary.ParseSubLevel(v); err != nil {
			return "", "", err
		}
	}

	if v := r.URL.Query().Get("rank"); v != "" {
		if rank, err = salary.ParseRank(v); err != nil {
			return "", "", err
		}
	}

	if (level == "") != (rank == "") {
		return "", "", errors.New("sub_level and rank must be given together")
	}

	return level, rank, nil
}
