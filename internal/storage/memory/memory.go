package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"teacher-salary/internal/salary"
	"teacher-salary/internal/storage"
)

// Storage keeps sessions in process memory. Nothing survives a restart.
type Storage struct {
	mu       sync.RWMutex
	sessions map[string]storage.Session
	now      func() time.Time
}

func New() *Storage {
	return &Storage{
		sessions: make(map[string]storage.Session),
		now:      time.Now,
	}
}

func (s *Storage) SaveSession(ctx context.Context, session storage.Session) error {
	const op = "storage.memory.SaveSession"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return nil
}

func (s *Storage) GetSession(ctx context.Context, id string) (storage.Session, error) {
	const op = "storage.memory.GetSession"

	if err := ctx.Err(); err != nil {
		return storage.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return storage.Session{}, fmt.Errorf("%s: id=%s: %w", op, id, storage.ErrSessionNotFound)
	}

	// a read counts as activity for the idle purge
	session.UpdatedAt = s.now()
	s.sessions[id] = session

	return session, nil
}

// UpdateSession replaces the session's selection with update(current) under
// the write lock, so concurrent requests on one session never interleave.
func (s *Storage) UpdateSession(ctx context.Context, id string, update func(salary.Selection) salary.Selection) (storage.Session, error) {
	const op = "storage.memory.UpdateSession"

	if err := ctx.Err(); err != nil {
		return storage.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return storage.Session{}, fmt.Errorf("%s: id=%s: %w", op, id, storage.ErrSessionNotFound)
	}

	session.Selection = update(session.Selection)
	session.UpdatedAt = s.now()
	s.sessions[id] = session

	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id string) error {
	const op = "storage.memory.DeleteSession"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%s: id=%s: %w", op, id, storage.ErrSessionNotFound)
	}
	delete(s.sessions, id)

	return nil
}

// DeleteIdleSessions removes every session not read or updated since before and
// returns how many were removed.
func (s *Storage) DeleteIdleSessions(ctx context.Context, before time.Time) (int, error) {
	const op = "storage.memory.DeleteIdleSessions"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(before) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed, nil
}

func (s *Storage) CountSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
