package calculator

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"teacher-salary/internal/constants"
	"teacher-salary/internal/salary"
	"teacher-salary/internal/storage"
)

type SessionStorage interface {
	SaveSession(ctx context.Context, session storage.Session) error
	GetSession(ctx context.Context, id string) (storage.Session, error)
	UpdateSession(ctx context.Context, id string, update func(salary.Selection) salary.Selection) (storage.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteIdleSessions(ctx context.Context, before time.Time) (int, error)
}

type CalculatorService struct {
	storage SessionStorage
	idleTTL time.Duration
	now     func() time.Time
	newID   func() string
}

func NewCalculatorService(storage SessionStorage, idleTTL time.Duration) *CalculatorService {
	return &CalculatorService{
		storage: storage,
		idleTTL: idleTTL,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// CalculateRequest is a whole selection in one body. Missing or null fields are unset.
type CalculateRequest struct {
	SubLevel  json.RawMessage `json:"sub_level,omitempty"`
	Rank      json.RawMessage `json:"rank,omitempty"`
	Step      json.RawMessage `json:"step,omitempty"`
	Seniority json.RawMessage `json:"seniority,omitempty"`
	Allowance json.RawMessage `json:"allowance,omitempty"`
}

// changes orders the fields the way a user fills the form, so the rank is
// chosen before the step it would otherwise clear.
func (r CalculateRequest) changes() []salary.ChangeRequest {
	return []salary.ChangeRequest{
		{Field: salary.FieldSubLevel, Value: r.SubLevel},
		{Field: salary.FieldRank, Value: r.Rank},
		{Field: salary.FieldStep, Value: r.Step},
		{Field: salary.FieldSeniority, Value: r.Seniority},
		{Field: salary.FieldAllowance, Value: r.Allowance},
	}
}

// Calculate evaluates a selection without a session.
func (s *CalculatorService) Calculate(ctx context.Context, req CalculateRequest) (State, error) {
	const op = "service.calculator.Calculate"

	if err := ctx.Err(); err != nil {
		return State{}, fmt.Errorf("%s: %w", op, err)
	}

	changes, err := salary.DecodeChanges(req.changes())
	if err != nil {
		return State{}, fmt.Errorf("%s: %w", op, err)
	}

	return NewState("", salary.Apply(salary.Selection{}, changes...)), nil
}

// CreateSession starts a session with every field unset.
func (s *CalculatorService) CreateSession(ctx context.Context) (State, error) {
	const op = "service.calculator.CreateSession"

	session := storage.Session{ID: s.newID()}
	if err := s.storage.SaveSession(ctx, session); err != nil {
		return State{}, fmt.Errorf("%s: %w", op, err)
	}

	return NewState(session.ID, session.Selection), nil
}

func (s *CalculatorService) GetSession(ctx context.Context, id string) (State, error) {
	const op = "service.calculator.GetSession"

	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return State{}, fmt.Errorf("%s: %w", op, err)
	}

	return NewState(session.ID, session.Selection), nil
}

// ApplyChanges decodes every change before touching the session, so a bad
// change leaves it as it was.
func (s *CalculatorService) ApplyChanges(ctx context.Context, id string, reqs []salary.ChangeRequest) (State, error) {
	const op = "service.calculator.ApplyChanges"

	changes, err := salary.DecodeChanges(reqs)
	if err != nil {
		return State{}, fmt.Errorf("%s: %w", op, err)
	}

	session, err := s.storage.UpdateSession(ctx, id, func(sel salary.Selection) salary.Selection {
		return salary.Apply(sel, changes...)
	})
	if err != nil {
		return State{}, fmt.Errorf("%s: %w", op, err)
	}

	return NewState(session.ID, session.Selection), nil
}

func (s *CalculatorService) DeleteSession(ctx context.Context, id string) error {
	const op = "service.calculator.DeleteSession"

	if err := s.storage.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// PurgeIdle drops sessions untouched for longer than the idle TTL.
func (s *CalculatorService) PurgeIdle(ctx context.Context) (int, error) {
	const op = "service.calculator.PurgeIdle"

	removed, err := s.storage.DeleteIdleSessions(ctx, s.now().Add(-s.idleTTL))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return removed, nil
}

// Options is the static data the form is built from.
type Options struct {
	SubLevels               []SubLevelOption                              `json:"sub_levels"`
	Ranks                   []salary.Rank                                 `json:"ranks"`
	Coefficients            map[salary.Category]map[salary.Rank][]float64 `json:"coefficients"`
	BaseSalaryUnit          int64                                         `json:"base_salary_unit"`
	InsuranceRate           float64                                       `json:"insurance_rate"`
	ProjectionDelta         int                                           `json:"projection_delta"`
	SeniorityThresholdYears int                                           `json:"seniority_threshold_years"`

	// Steps is the number of step buttons for the requested sub-level and rank.
	Steps *int `json:"steps,omitempty"`
}

type SubLevelOption struct {
	SubLevel         salary.SubLevel `json:"sub_level"`
	Category         salary.Category `json:"category"`
	AllowanceOptions []int           `json:"allowance_options"`
}

// Options returns the lookup tables. When both level and rank are given the
// step count for that pair is included as well.
func (s *CalculatorService) Options(level salary.SubLevel, rank salary.Rank) Options {
	opts := Options{
		Ranks:                   salary.Ranks(),
		Coefficients:            make(map[salary.Category]map[salary.Rank][]float64),
		BaseSalaryUnit:          constants.BaseSalaryUnit,
		InsuranceRate:           decimal.RequireFromString(constants.InsuranceRate).InexactFloat64(),
		ProjectionDelta:         constants.ProjectionDelta,
		SeniorityThresholdYears: constants.SeniorityThresholdYears,
	}

	for _, l := range salary.SubLevels() {
		category, _ := l.Category()
		opts.SubLevels = append(opts.SubLevels, SubLevelOption{
			SubLevel:         l,
			Category:         category,
			AllowanceOptions: salary.AllowanceOptions(l),
		})
	}

	for _, category := range salary.Categories() {
		byRank := make(map[salary.Rank][]float64)
		for _, r := range salary.Ranks() {
			byRank[r] = floats(salary.Lookup(category, r))
		}
		opts.Coefficients[category] = byRank
	}

	if category, ok := level.Category(); ok && rank.Valid() {
		steps := salary.StepCount(category, rank)
		opts.Steps = &steps
	}

	return opts
}
