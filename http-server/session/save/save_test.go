package save

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"teacher-salary/internal/service/calculator"
)

type MockSessionCreator struct {
	mock.Mock
}

func (m *MockSessionCreator) CreateSession(ctx context.Context) (calculator.State, error) {
	args := m.Called(ctx)
	return args.Get(0).(calculator.State), args.Error(1)
}

func TestCreateSession_Success(t *testing.T) {
	creator := new(MockSessionCreator)
	creator.On("CreateSession", mock.Anything).Return(calculator.State{
		SessionID: "session-1",
		Offered:   calculator.Offered{AllowanceOptions: []int{}, Coefficients: []float64{}},
	}, nil)

	rr := httptest.NewRecorder()
	CreateSession(slog.Default(), creator).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/sessions", nil))

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp calculator.State
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, "session-1", resp.SessionID)
	assert.False(t, resp.Complete)
	assert.Nil(t, resp.Selection.Rank)

	creator.AssertExpectations(t)
}

func TestCreateSession_Error(t *testing.T) {
	creator := new(MockSessionCreator)
	creator.On("CreateSession", mock.Anything).Return(calculator.State{}, errors.New("storage down"))

	rr := httptest.NewRecorder()
	CreateSession(slog.Default(), creator).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/sessions", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "storage down")
}
