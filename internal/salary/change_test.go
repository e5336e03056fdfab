package salary

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, body string) []Change {
	t.Helper()
	var reqs []ChangeRequest
	require.NoError(t, json.Unmarshal([]byte(body), &reqs))
	changes, err := DecodeChanges(reqs)
	require.NoError(t, err)
	return changes
}

func TestDecodeChanges_FullSelection(t *testing.T) {
	changes := decodeAll(t, `[
		{"field": "sub_level", "value": "lower_secondary"},
		{"field": "rank", "value": "III"},
		{"field": "step", "value": 0},
		{"field": "seniority", "value": "5"},
		{"field": "allowance", "value": 30}
	]`)

	s := Apply(Selection{}, changes...)
	assert.Equal(t, completeSelection(), s)
}

func TestDecodeChanges_NullClears(t *testing.T) {
	full := completeSelection()

	s := Apply(full, decodeAll(t, `[{"field": "allowance", "value": null}, {"field": "step"}]`)...)
	_, ok := s.Allowance()
	assert.False(t, ok)
	_, ok = s.Step()
	assert.False(t, ok)

	s = Apply(full, decodeAll(t, `[{"field": "seniority", "value": null}]`)...)
	assert.Empty(t, s.SeniorityText())

	s = Apply(full, decodeAll(t, `[{"field": "reset"}]`)...)
	assert.Equal(t, Selection{}, s)
}

func TestDecodeChanges_SeniorityNumberKeepsLiteral(t *testing.T) {
	s := Apply(Selection{}, decodeAll(t, `[{"field": "seniority", "value": 12}]`)...)
	assert.Equal(t, "12", s.SeniorityText())
	assert.Equal(t, 12, s.SeniorityYears())

	s = Apply(Selection{}, decodeAll(t, `[{"field": "seniority", "value": "0"}]`)...)
	assert.Equal(t, "0", s.SeniorityText())
}

func TestDecodeChange_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  ChangeRequest
		err  error
	}{
		{"unknown field", ChangeRequest{Field: "bonus", Value: json.RawMessage(`1`)}, ErrUnknownField},
		{"unknown rank", ChangeRequest{Field: FieldRank, Value: json.RawMessage(`"IV"`)}, ErrInvalidValue},
		{"rank not a string", ChangeRequest{Field: FieldRank, Value: json.RawMessage(`3`)}, ErrInvalidValue},
		{"unknown sub-level", ChangeRequest{Field: FieldSubLevel, Value: json.RawMessage(`"college"`)}, ErrInvalidValue},
		{"fractional step", ChangeRequest{Field: FieldStep, Value: json.RawMessage(`1.5`)}, ErrInvalidValue},
		{"negative step", ChangeRequest{Field: FieldStep, Value: json.RawMessage(`-1`)}, ErrInvalidValue},
		{"allowance string", ChangeRequest{Field: FieldAllowance, Value: json.RawMessage(`"30"`)}, ErrInvalidValue},
		{"negative allowance", ChangeRequest{Field: FieldAllowance, Value: json.RawMessage(`-5`)}, ErrInvalidValue},
		{"allowance above bound", ChangeRequest{Field: FieldAllowance, Value: json.RawMessage(`1048577`)}, ErrInvalidValue},
		{"allowance max int", ChangeRequest{Field: FieldAllowance, Value: json.RawMessage(`9223372036854775807`)}, ErrInvalidValue},
		{"seniority bool", ChangeRequest{Field: FieldSeniority, Value: json.RawMessage(`true`)}, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeChange(tt.req)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDecodeChange_AllowanceBound(t *testing.T) {
	c, err := DecodeChange(ChangeRequest{Field: FieldAllowance, Value: json.RawMessage(`1048576`)})
	require.NoError(t, err)

	res, ok := Compute(Apply(completeSelection(), c))
	require.True(t, ok)
	assertDecimal(t, "1048586", res.Projected.AllowancePercent, "projected allowance percent")
	assertDecimal(t, "547560", res.Increase, "increase")
}

func TestDecodeChanges_AllOrNothing(t *testing.T) {
	reqs := []ChangeRequest{
		{Field: FieldRank, Value: json.RawMessage(`"II"`)},
		{Field: FieldStep, Value: json.RawMessage(`"x"`)},
	}

	changes, err := DecodeChanges(reqs)
	assert.Nil(t, changes)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "change 1")
}

func TestChange_Field(t *testing.T) {
	assert.Equal(t, FieldSubLevel, SetSubLevel(SubLevelPrimary).Field())
	assert.Equal(t, FieldRank, ClearRank().Field())
	assert.Equal(t, FieldStep, SetStep(2).Field())
	assert.Equal(t, FieldSeniority, SetSeniorityYears(3).Field())
	assert.Equal(t, FieldAllowance, ClearAllowance().Field())
	assert.Equal(t, FieldReset, Reset().Field())
}
