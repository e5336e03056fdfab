package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"teacher-salary/internal/storage"
)

type MockSessionDeleter struct {
	mock.Mock
}

func (m *MockSessionDeleter) DeleteSession(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func serve(deleter SessionDeleter, target string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Delete("/api/sessions/{id}", DeleteSession(slog.Default(), deleter))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, target, nil))
	return rr
}

func TestDeleteSession(t *testing.T) {
	deleter := new(MockSessionDeleter)
	deleter.On("DeleteSession", mock.Anything, "session-1").Return(nil)
	deleter.On("DeleteSession", mock.Anything, "missing").Return(storage.ErrSessionNotFound)
	deleter.On("DeleteSession", mock.Anything, "broken").Return(errors.New("boom"))

	assert.Equal(t, http.StatusNoContent, serve(deleter, "/api/sessions/session-1").Code)
	assert.Equal(t, http.StatusNotFound, serve(deleter, "/api/sessions/missing").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(deleter, "/api/sessions/broken").Code)

	deleter.AssertExpectations(t)
}
