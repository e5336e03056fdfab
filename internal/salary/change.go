package salary

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"teacher-salary/internal/constants"
)

// Field names used on the wire.
const (
	FieldSubLevel  = "sub_level"
	FieldRank      = "rank"
	FieldStep      = "step"
	FieldSeniority = "seniority"
	FieldAllowance = "allowance"
	FieldReset     = "reset"
)

// Change is one user action on a Selection.
type Change interface {
	Field() string
	apply(s *Selection)
}

type subLevelChange struct{ value SubLevel }

// SetSubLevel selects a sub-level. An allowance that the new sub-level does
// not offer is cleared; rank and step are untouched.
func SetSubLevel(level SubLevel) Change { return subLevelChange{value: level} }

// ClearSubLevel unsets the sub-level, which also clears the allowance.
func ClearSubLevel() Change { return subLevelChange{} }

func (subLevelChange) Field() string { return FieldSubLevel }

func (c subLevelChange) apply(s *Selection) {
	s.subLevel = c.value
	if s.allowanceSet && !AllowanceOffered(c.value, s.allowance) {
		s.clearAllowance()
	}
}

type rankChange struct{ value Rank }

// SetRank selects a rank and always clears the step: step indices are not
// comparable across ranks.
func SetRank(rank Rank) Change { return rankChange{value: rank} }

func ClearRank() Change { return rankChange{} }

func (rankChange) Field() string { return FieldRank }

func (c rankChange) apply(s *Selection) {
	s.rank = c.value
	s.clearStep()
}

type stepChange struct {
	index int
	set   bool
}

// SetStep selects a zero-based step. A negative index clears the step.
func SetStep(index int) Change { return stepChange{index: index, set: index >= 0} }

func ClearStep() Change { return stepChange{} }

func (stepChange) Field() string { return FieldStep }

func (c stepChange) apply(s *Selection) {
	if !c.set {
		s.clearStep()
		return
	}
	s.step = c.index
	s.stepSet = true
}

type seniorityChange struct{ raw string }

// SetSeniority stores the seniority text as entered. An empty string leaves
// the selection incomplete; "0" does not.
func SetSeniority(raw string) Change { return seniorityChange{raw: raw} }

// SetSeniorityYears is SetSeniority for an already numeric value.
func SetSeniorityYears(years int) Change { return seniorityChange{raw: strconv.Itoa(years)} }

func (seniorityChange) Field() string { return FieldSeniority }

func (c seniorityChange) apply(s *Selection) {
	s.seniority = c.raw
}

type allowanceChange struct {
	percent int
	set     bool
}

// SetAllowance selects the current allowance percent. The value is not checked
// against the sub-level's options; only a later sub-level change repairs it.
func SetAllowance(percent int) Change { return allowanceChange{percent: percent, set: true} }

func ClearAllowance() Change { return allowanceChange{} }

func (allowanceChange) Field() string { return FieldAllowance }

func (c allowanceChange) apply(s *Selection) {
	if !c.set {
		s.clearAllowance()
		return
	}
	s.allowance = c.percent
	s.allowanceSet = true
}

type resetChange struct{}

// Reset unsets every field.
func Reset() Change { return resetChange{} }

func (resetChange) Field() string { return FieldReset }

func (resetChange) apply(s *Selection) {
	*s = Selection{}
}

// ChangeRequest is the wire form of a Change.
type ChangeRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value,omitempty"`
}

type changeDecoder func(value []byte) (Change, error)

var changeDecoders = map[string]changeDecoder{
	FieldSubLevel:  decodeSubLevel,
	FieldRank:      decodeRank,
	FieldStep:      decodeStep,
	FieldSeniority: decodeSeniority,
	FieldAllowance: decodeAllowance,
	FieldReset:     func([]byte) (Change, error) { return Reset(), nil },
}

// DecodeChange turns a wire change into a Change. A null or missing value
// clears the field.
func DecodeChange(req ChangeRequest) (Change, error) {
	decode, ok := changeDecoders[req.Field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, req.Field)
	}
	return decode(bytes.TrimSpace(req.Value))
}

// DecodeChanges decodes every request or none: the first failure is returned
// together with its position.
func DecodeChanges(reqs []ChangeRequest) ([]Change, error) {
	changes := make([]Change, 0, len(reqs))
	for i, req := range reqs {
		c, err := DecodeChange(req)
		if err != nil {
			return nil, fmt.Errorf("change %d: %w", i, err)
		}
		changes = append(changes, c)
	}
	return changes, nil
}

func isNull(value []byte) bool {
	return len(value) == 0 || bytes.Equal(value, []byte("null"))
}

func decodeString(field string, value []byte) (string, error) {
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidValue, field)
	}
	return s, nil
}

func decodeInt(field string, value []byte) (int, error) {
	var n int
	if err := json.Unmarshal(value, &n); err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number", ErrInvalidValue, field)
	}
	return n, nil
}

func decodeSubLevel(value []byte) (Change, error) {
	if isNull(value) {
		return ClearSubLevel(), nil
	}
	s, err := decodeString(FieldSubLevel, value)
	if err != nil {
		return nil, err
	}
	level, err := ParseSubLevel(s)
	if err != nil {
		return nil, err
	}
	return SetSubLevel(level), nil
}

func decodeRank(value []byte) (Change, error) {
	if isNull(value) {
		return ClearRank(), nil
	}
	s, err := decodeString(FieldRank, value)
	if err != nil {
		return nil, err
	}
	rank, err := ParseRank(s)
	if err != nil {
		return nil, err
	}
	return SetRank(rank), nil
}

func decodeStep(value []byte) (Change, error) {
	if isNull(value) {
		return ClearStep(), nil
	}
	n, err := decodeInt(FieldStep, value)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: step must not be negative", ErrInvalidValue)
	}
	return SetStep(n), nil
}

// decodeSeniority accepts the text of the input field or a bare JSON number,
// whose literal is kept as the text.
func decodeSeniority(value []byte) (Change, error) {
	if isNull(value) {
		return SetSeniority(""), nil
	}
	if value[0] == '"' {
		s, err := decodeString(FieldSeniority, value)
		if err != nil {
			return nil, err
		}
		return SetSeniority(s), nil
	}
	var n json.Number
	if err := json.Unmarshal(value, &n); err != nil {
		return nil, fmt.Errorf("%w: seniority must be a string or a number", ErrInvalidValue)
	}
	return SetSeniority(n.String()), nil
}

func decodeAllowance(value []byte) (Change, error) {
	if isNull(value) {
		return ClearAllowance(), nil
	}
	n, err := decodeInt(FieldAllowance, value)
	if err != nil {
		return nil, err
	}
	if n < 0 || n > constants.MaxAllowancePercent {
		return nil, fmt.Errorf("%w: allowance must be between 0 and %d", ErrInvalidValue, constants.MaxAllowancePercent)
	}
	return SetAllowance(n), nil
}
