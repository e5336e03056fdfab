package constants

// Pay policy. Amounts are whole currency units.
const (
	BaseSalaryUnit = 2340000

	// InsuranceRate is withheld from the coefficient-derived base only.
	InsuranceRate = "0.105"

	// ProjectionDelta is the allowance increase, in percentage points, of the revised policy.
	ProjectionDelta = 10

	// SeniorityThresholdYears is the first year of service that earns a seniority bonus.
	SeniorityThresholdYears = 5
)

// Input bounds. Larger values are clamped (seniority) or rejected (allowance)
// so every amount still fits a whole-unit int64.
const (
	MaxSeniorityYears   = 1 << 20
	MaxAllowancePercent = 1 << 20
)

// Embed defaults.
const (
	EmbedQueryKey   = "embed"
	EmbedQueryValue = "true"

	DefaultEmbedOrigin  = "https://teacher-salary-wine.vercel.app"
	DefaultIframeHeight = 650
	DefaultIframeTitle  = "Widget tính lương giáo viên"
)
