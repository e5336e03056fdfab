package calculator

import (
	"github.com/shopspring/decimal"

	"teacher-salary/internal/salary"
)

// State is what the presentation layer renders for one selection.
type State struct {
	SessionID string        `json:"session_id,omitempty"`
	Selection SelectionView `json:"selection"`
	Offered   Offered       `json:"offered"`
	Complete  bool          `json:"complete"`
	Result    *ResultView   `json:"result"`
}

type SelectionView struct {
	SubLevel  *salary.SubLevel `json:"sub_level"`
	Category  *salary.Category `json:"category"`
	Rank      *salary.Rank     `json:"rank"`
	Step      *int             `json:"step"`
	Seniority string           `json:"seniority"`
	Allowance *int             `json:"allowance"`
}

// Offered lists the choices currently available: the allowance buttons for
// the sub-level and one coefficient per step button.
type Offered struct {
	AllowanceOptions []int     `json:"allowance_options"`
	Coefficients     []float64 `json:"coefficients"`
}

type ResultView struct {
	Coefficient    float64       `json:"coefficient"`
	SeniorityYears int           `json:"seniority_years"`
	Current        BreakdownView `json:"current"`
	Projected      BreakdownView `json:"projected"`
	Increase       int64         `json:"increase"`
}

// BreakdownView carries amounts rounded to whole currency units.
type BreakdownView struct {
	BaseSalary       int64 `json:"base_salary"`
	SeniorityPercent int   `json:"seniority_percent"`
	SeniorityAmt     int64 `json:"seniority_amt"`
	AllowancePercent int   `json:"allowance_percent"`
	AllowanceAmt     int64 `json:"allowance_amt"`
	InsuranceAmt     int64 `json:"insurance_amt"`
	TotalSalary      int64 `json:"total_salary"`
}

// NewState renders a selection and, when complete, its result.
func NewState(sessionID string, sel salary.Selection) State {
	state := State{
		SessionID: sessionID,
		Selection: newSelectionView(sel),
		Offered: Offered{
			AllowanceOptions: nonNil(sel.AllowanceOptions()),
			Coefficients:     nonNil(floats(sel.Coefficients())),
		},
	}

	if res, ok := salary.Compute(sel); ok {
		view := newResultView(res)
		state.Complete = true
		state.Result = &view
	}

	return state
}

func newSelectionView(sel salary.Selection) SelectionView {
	view := SelectionView{Seniority: sel.SeniorityText()}

	if v, ok := sel.SubLevel(); ok {
		view.SubLevel = &v
	}
	if v, ok := sel.Category(); ok {
		view.Category = &v
	}
	if v, ok := sel.Rank(); ok {
		view.Rank = &v
	}
	if v, ok := sel.Step(); ok {
		view.Step = &v
	}
	if v, ok := sel.Allowance(); ok {
		view.Allowance = &v
	}

	return view
}

func newResultView(res salary.Result) ResultView {
	return ResultView{
		Coefficient:    res.Coefficient.InexactFloat64(),
		SeniorityYears: res.SeniorityYears,
		Current:        newBreakdownView(res.Current),
		Projected:      newBreakdownView(res.Projected),
		Increase:       round(res.Increase),
	}
}

func newBreakdownView(b salary.Breakdown) BreakdownView {
	return BreakdownView{
		BaseSalary:       round(b.Base),
		SeniorityPercent: b.SeniorityPercent,
		SeniorityAmt:     round(b.SeniorityAmt),
		AllowancePercent: int(b.AllowancePercent.IntPart()),
		AllowanceAmt:     round(b.AllowanceAmt),
		InsuranceAmt:     round(b.InsuranceAmt),
		TotalSalary:      round(b.Total),
	}
}

// round rounds half away from zero to whole units.
func round(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

func floats(ds []decimal.Decimal) []float64 {
	if ds == nil {
		return nil
	}
	out := make([]float64, len(ds))
	for i, d := range ds {
		out[i] = d.InexactFloat64()
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
