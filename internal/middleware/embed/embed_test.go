package embed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serve(t *testing.T, mw func(http.Handler) http.Handler, target string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	var seen bool
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = IsEmbedded(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr, seen
}

func TestDetect_Embedded(t *testing.T) {
	rr, embedded := serve(t, Detect(nil), "/?embed=true")

	assert.True(t, embedded)
	assert.Equal(t, "frame-ancestors *", rr.Header().Get("Content-Security-Policy"))
	assert.Empty(t, rr.Header().Get("X-Frame-Options"))
}

func TestDetect_ConfiguredAncestors(t *testing.T) {
	rr, _ := serve(t, Detect([]string{"https://a.example", "https://b.example"}), "/api/options?embed=true")

	assert.Equal(t, "frame-ancestors https://a.example https://b.example", rr.Header().Get("Content-Security-Policy"))
}

func TestDetect_NotEmbedded(t *testing.T) {
	for _, target := range []string{"/", "/?embed=false", "/?embed=1"} {
		rr, embedded := serve(t, Detect(nil), target)

		assert.False(t, embedded, target)
		assert.Equal(t, "SAMEORIGIN", rr.Header().Get("X-Frame-Options"), target)
		assert.Empty(t, rr.Header().Get("Content-Security-Policy"), target)
	}
}

func TestIsEmbedded_WithoutMiddleware(t *testing.T) {
	assert.False(t, IsEmbedded(context.Background()))
}
