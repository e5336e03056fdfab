package salary

import (
	"slices"

	"github.com/shopspring/decimal"
)

// coefficientTable maps (category, rank) to one coefficient per salary step.
// Built once at init and only handed out as copies.
var coefficientTable = buildCoefficientTable(map[Category]map[Rank][]string{
	CategoryPreschool: {
		RankIII: {"2.10", "2.41", "2.72", "3.03", "3.34", "3.65", "3.96", "4.27", "4.58", "4.89"},
		RankII:  {"2.34", "2.67", "3.00", "3.33", "3.66", "3.99", "4.32", "4.65", "4.98"},
		RankI:   {"4.00", "4.34", "4.68", "5.02", "5.36", "5.70", "6.04", "6.38"},
	},
	CategoryGeneralEducation: {
		RankIII: {"2.34", "2.67", "3.00", "3.33", "3.66", "3.99", "4.32", "4.65", "4.98"},
		RankII:  {"4.00", "4.34", "4.68", "5.02", "5.36", "5.70", "6.04", "6.38"},
		RankI:   {"4.40", "4.74", "5.08", "5.42", "5.76", "6.10", "6.44", "6.78"},
	},
})

// allowanceOptions lists the incentive-allowance percentages offered per sub-level.
var allowanceOptions = map[SubLevel][]int{
	SubLevelPreschool:      {35, 50, 70},
	SubLevelPrimary:        {35, 50, 70},
	SubLevelLowerSecondary: {30, 35, 50, 70},
	SubLevelUpperSecondary: {30, 35, 70},
}

type tableKey struct {
	category Category
	rank     Rank
}

func buildCoefficientTable(raw map[Category]map[Rank][]string) map[tableKey][]decimal.Decimal {
	table := make(map[tableKey][]decimal.Decimal, len(raw)*len(ranks))
	for category, byRank := range raw {
		for rank, values := range byRank {
			steps := make([]decimal.Decimal, 0, len(values))
			for _, v := range values {
				steps = append(steps, decimal.RequireFromString(v))
			}
			table[tableKey{category: category, rank: rank}] = steps
		}
	}
	return table
}

// Lookup returns the coefficients for every step of (category, rank).
// An empty result means the selection is incomplete, not an error.
func Lookup(category Category, rank Rank) []decimal.Decimal {
	steps, ok := coefficientTable[tableKey{category: category, rank: rank}]
	if !ok {
		return nil
	}
	return slices.Clone(steps)
}

// StepCount is len(Lookup(category, rank)) without the copy.
func StepCount(category Category, rank Rank) int {
	return len(coefficientTable[tableKey{category: category, rank: rank}])
}

// AllowanceOptions returns the allowance percentages offered for the sub-level,
// or nil when the sub-level is unset or unknown.
func AllowanceOptions(level SubLevel) []int {
	return slices.Clone(allowanceOptions[level])
}

// AllowanceOffered reports whether percent is one of the options for the sub-level.
func AllowanceOffered(level SubLevel, percent int) bool {
	return slices.Contains(allowanceOptions[level], percent)
}
