package storage

import (
	"errors"
	"time"

	"teacher-salary/internal/salary"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is one interactive calculator session. It only lives in memory.
type Session struct {
	ID        string
	Selection salary.Selection
	CreatedAt time.Time
	UpdatedAt time.Time
}
