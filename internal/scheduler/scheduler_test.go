package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionPurger struct {
	mock.Mock
}

func (m *MockSessionPurger) PurgeIdle(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestStart_InvalidSchedule(t *testing.T) {
	s := New(slog.Default(), new(MockSessionPurger), "every now and then")

	err := s.Start()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "every now and then")
}

func TestStartStop(t *testing.T) {
	s := New(slog.Default(), new(MockSessionPurger), "@every 1h")

	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 1)

	<-s.Stop().Done()
}

func TestPurgeIdleSessions(t *testing.T) {
	purger := new(MockSessionPurger)
	purger.On("PurgeIdle", mock.Anything).Return(2, nil).Once()
	purger.On("PurgeIdle", mock.Anything).Return(0, errors.New("boom")).Once()

	s := New(slog.Default(), purger, "@every 1h")
	s.purgeIdleSessions()
	s.purgeIdleSessions()

	purger.AssertNumberOfCalls(t, "PurgeIdle", 2)
}
