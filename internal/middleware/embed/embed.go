package embed

import (
	"context"
	"net/http"
	"strings"

	"teacher-salary/internal/constants"
)

type ctxKey struct{}

// Detect marks requests carrying ?embed=true. Embedded responses may be framed
// by the given ancestors; everything else is limited to the same origin.
func Detect(frameAncestors []string) func(http.Handler) http.Handler {
	ancestors := "*"
	if len(frameAncestors) > 0 {
		ancestors = strings.Join(frameAncestors, " ")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			embedded := r.URL.Query().Get(constants.EmbedQueryKey) == constants.EmbedQueryValue

			if embedded {
				w.Header().Set("Content-Security-Policy", "frame-ancestors "+ancestors)
			} else {
				w.Header().Set("X-Frame-Options", "SAMEORIGIN")
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, embedded)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsEmbedded reports whether Detect saw ?embed=true on the request.
func IsEmbedded(ctx context.Context) bool {
	embedded, _ := ctx.Value(ctxKey{}).(bool)
	return embedded
}
