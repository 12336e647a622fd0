package domain

type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Code maps a severity band to the numeric code consumed by the reporting
// surface; lower numbers are more urgent.
func (s Severity) Code() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 3
	default:
		return 4
	}
}

// Recommendation packages everything known about one resource after analysis:
// its current state, every candidate evaluated (current first, so a human can
// audit the alternatives), and the candidate the strategy selected.
type Recommendation struct {
	Resource    ResourceConfiguration
	Utilization UtilizationSample
	Options     []OptimizationOption // Options[0] is always the current configuration
	Selected    OptimizationOption
	Strategy    Strategy
}

// FindingMember is one recommendation's contribution to a finding.
type FindingMember struct {
	ResourceID     string
	ResourceName   string
	Action         string
	MonthlySavings float64
}

// Finding is a severity-banded aggregate over recommendations with positive
// projected savings.
type Finding struct {
	Severity       Severity
	MonthlySavings float64
	AnnualSavings  float64
	Members        []FindingMember
	Summary        string
}

// CleanupCandidate is a resource hosting zero workloads; decommissioning it
// recovers its entire monthly cost.
type CleanupCandidate struct {
	Resource      ResourceConfiguration
	MonthlyCost   float64
	EstimatedCost bool
}
