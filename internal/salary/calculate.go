package salary

import (
	"github.com/shopspring/decimal"

	"teacher-salary/internal/constants"
)

var (
	baseSalaryUnit  = decimal.NewFromInt(constants.BaseSalaryUnit)
	insuranceRate   = decimal.RequireFromString(constants.InsuranceRate)
	projectionDelta = decimal.NewFromInt(constants.ProjectionDelta)
)

// Breakdown is the monthly take-home salary under one allowance percent.
type Breakdown struct {
	Coefficient      decimal.Decimal
	Base             decimal.Decimal
	SeniorityPercent int
	SeniorityAmt     decimal.Decimal
	AllowancePercent decimal.Decimal
	AllowanceAmt     decimal.Decimal
	InsuranceAmt     decimal.Decimal
	Total            decimal.Decimal
}

// Result compares the current policy with the projected one.
type Result struct {
	Coefficient    decimal.Decimal
	SeniorityYears int
	Current        Breakdown
	Projected      Breakdown
	Increase       decimal.Decimal
}

// SeniorityPercent is zero below the threshold and one point per year of
// service from it on, without a cap.
func SeniorityPercent(years int) int {
	if years < constants.SeniorityThresholdYears {
		return 0
	}
	return years
}

// Calculate computes one breakdown. Insurance is taken from the base alone.
func Calculate(coefficient decimal.Decimal, seniorityYears, allowancePercent int) Breakdown {
	return calculate(coefficient, seniorityYears, decimal.NewFromInt(int64(allowancePercent)))
}

func calculate(coefficient decimal.Decimal, seniorityYears int, allowancePercent decimal.Decimal) Breakdown {
	base := baseSalaryUnit.Mul(coefficient)

	seniorityPercent := SeniorityPercent(seniorityYears)
	seniorityAmt := base.Mul(percent(decimal.NewFromInt(int64(seniorityPercent))))
	allowanceAmt := base.Mul(percent(allowancePercent))
	insuranceAmt := base.Mul(insuranceRate)

	return Breakdown{
		Coefficient:      coefficient,
		Base:             base,
		SeniorityPercent: seniorityPercent,
		SeniorityAmt:     seniorityAmt,
		AllowancePercent: allowancePercent,
		AllowanceAmt:     allowanceAmt,
		InsuranceAmt:     insuranceAmt,
		Total:            base.Add(seniorityAmt).Add(allowanceAmt).Sub(insuranceAmt),
	}
}

// Compare evaluates the current allowance and the projected one, which is
// always ProjectionDelta points higher with no ceiling. The projected percent
// is carried as a decimal so it cannot wrap.
func Compare(coefficient decimal.Decimal, seniorityYears, allowancePercent int) Result {
	points := decimal.NewFromInt(int64(allowancePercent))
	current := calculate(coefficient, seniorityYears, points)
	projected := calculate(coefficient, seniorityYears, points.Add(projectionDelta))

	return Result{
		Coefficient:    coefficient,
		SeniorityYears: seniorityYears,
		Current:        current,
		Projected:      projected,
		Increase:       projected.Total.Sub(current.Total),
	}
}

// Compute derives the result for a selection. ok is false while the selection
// is incomplete: category, rank, step or allowance unset, or seniority left
// blank. A seniority of "0" is complete.
func Compute(s Selection) (Result, bool) {
	category, ok := s.Category()
	if !ok || s.rank == "" || !s.stepSet || !s.allowanceSet || s.seniority == "" {
		return Result{}, false
	}

	steps := coefficientTable[tableKey{category: category, rank: s.rank}]
	if s.step < 0 || s.step >= len(steps) {
		return Result{}, false
	}

	return Compare(steps[s.step], s.SeniorityYears(), s.allowance), true
}

// percent converts percentage points to an exact fraction.
func percent(points decimal.Decimal) decimal.Decimal {
	return points.Shift(-2)
}
