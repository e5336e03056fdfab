package salary

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"teacher-salary/internal/constants"
)

var (
	ErrUnknownField = errors.New("unknown selection field")
	ErrInvalidValue = errors.New("invalid selection value")
)

// Selection is the user's current choice. The zero value has every field unset.
// It is only changed through Apply, which keeps dependent fields consistent.
type Selection struct {
	subLevel SubLevel
	rank     Rank

	step    int
	stepSet bool

	seniority string

	allowance    int
	allowanceSet bool
}

func (s Selection) SubLevel() (SubLevel, bool) {
	return s.subLevel, s.subLevel != ""
}

// Category is derived from the sub-level.
func (s Selection) Category() (Category, bool) {
	return s.subLevel.Category()
}

func (s Selection) Rank() (Rank, bool) {
	return s.rank, s.rank != ""
}

// Step returns the zero-based step index.
func (s Selection) Step() (int, bool) {
	return s.step, s.stepSet
}

// SeniorityText returns the seniority exactly as entered.
func (s Selection) SeniorityText() string {
	return s.seniority
}

// SeniorityYears is the numeric reading of SeniorityText. Anything that does
// not start with a whole number counts as zero years; larger values than
// constants.MaxSeniorityYears read as that bound.
func (s Selection) SeniorityYears() int {
	return parseYears(s.seniority)
}

func (s Selection) Allowance() (int, bool) {
	return s.allowance, s.allowanceSet
}

// Coefficients returns the step coefficients offered for the current category
// and rank, empty while either is unset.
func (s Selection) Coefficients() []decimal.Decimal {
	category, ok := s.Category()
	if !ok || s.rank == "" {
		return nil
	}
	return Lookup(category, s.rank)
}

// AllowanceOptions returns the allowance percentages offered for the current sub-level.
func (s Selection) AllowanceOptions() []int {
	return AllowanceOptions(s.subLevel)
}

// Apply returns the selection with every change applied in order. Dependent
// fields are repaired after each change, so the result is always consistent.
func Apply(s Selection, changes ...Change) Selection {
	for _, c := range changes {
		c.apply(&s)
		s.reconcile()
	}
	return s
}

// reconcile drops a step index that no longer fits the effective coefficient list.
// An empty list (category or rank unset) leaves the step alone.
func (s *Selection) reconcile() {
	if !s.stepSet {
		return
	}
	category, ok := s.Category()
	if !ok || s.rank == "" {
		return
	}
	if n := StepCount(category, s.rank); n > 0 && s.step >= n {
		s.clearStep()
	}
}

func (s *Selection) clearStep() {
	s.step = 0
	s.stepSet = false
}

func (s *Selection) clearAllowance() {
	s.allowance = 0
	s.allowanceSet = false
}

// parseYears reads a leading whole number the way a browser number field is
// read: surrounding whitespace and an optional sign are accepted, trailing
// garbage is ignored, and no digits at all means zero. Negative values and
// values that overflow an int are treated as zero.
func parseYears(raw string) int {
	s := strings.TrimSpace(raw)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	years := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		years = years*10 + int(c-'0')
		if years > constants.MaxSeniorityYears {
			years = constants.MaxSeniorityYears
			break
		}
	}

	if negative {
		return 0
	}
	return years
}
