package salary

import "fmt"

// Category selects the coefficient set.
type Category string

const (
	CategoryPreschool        Category = "preschool"
	CategoryGeneralEducation Category = "general_education"
)

// Rank is the professional title tier, III lowest.
type Rank string

const (
	RankIII Rank = "III"
	RankII  Rank = "II"
	RankI   Rank = "I"
)

// SubLevel is the teaching level the user picks. It determines both the
// Category and the allowance options, so neither is stored separately.
type SubLevel string

const (
	SubLevelPreschool      SubLevel = "preschool"
	SubLevelPrimary        SubLevel = "primary"
	SubLevelLowerSecondary SubLevel = "lower_secondary"
	SubLevelUpperSecondary SubLevel = "upper_secondary"
)

var (
	categories = []Category{CategoryPreschool, CategoryGeneralEducation}
	ranks      = []Rank{RankIII, RankII, RankI}
	subLevels  = []SubLevel{SubLevelPreschool, SubLevelPrimary, SubLevelLowerSecondary, SubLevelUpperSecondary}
)

// Categories returns both categories in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Ranks returns ranks in ascending order of seniority.
func Ranks() []Rank {
	return append([]Rank(nil), ranks...)
}

// SubLevels returns sub-levels in display order.
func SubLevels() []SubLevel {
	return append([]SubLevel(nil), subLevels...)
}

func (c Category) Valid() bool {
	return c == CategoryPreschool || c == CategoryGeneralEducation
}

func (r Rank) Valid() bool {
	return r == RankIII || r == RankII || r == RankI
}

func (l SubLevel) Valid() bool {
	_, ok := allowanceOptions[l]
	return ok
}

// Category projects the sub-level onto its coefficient category.
// Only preschool maps to the preschool set; every school level shares one.
func (l SubLevel) Category() (Category, bool) {
	if !l.Valid() {
		return "", false
	}
	if l == SubLevelPreschool {
		return CategoryPreschool, true
	}
	return CategoryGeneralEducation, true
}

func ParseRank(s string) (Rank, error) {
	r := Rank(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown rank %q", ErrInvalidValue, s)
	}
	return r, nil
}

func ParseSubLevel(s string) (SubLevel, error) {
	l := SubLevel(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: unknown sub-level %q", ErrInvalidValue, s)
	}
	return l, nil
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidValue, s)
	}
	return c, nil
}
