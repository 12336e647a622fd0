package domain

// Strategy names an optimization posture. Unrecognized names are normalized
// to StrategyBalanced by the selector rather than rejected.
type Strategy string

const (
	StrategyAggressive   Strategy = "aggressive"
	StrategyBalanced     Strategy = "balanced"
	StrategyConservative Strategy = "conservative"
)

// Policy is the operator-chosen tuning for one analysis run: which strategy
// filters candidates and where the savings severity bands start.
type Policy struct {
	Strategy Strategy
	// MediumSavingsThreshold and HighSavingsThreshold are monthly currency
	// amounts splitting recommendations into LOW/MEDIUM/HIGH findings.
	MediumSavingsThreshold float64
	HighSavingsThreshold   float64
}

// DefaultPolicy returns the balanced posture with the stock band thresholds.
func DefaultPolicy() Policy {
	return Policy{
		Strategy:               StrategyBalanced,
		MediumSavingsThreshold: 2000,
		HighSavingsThreshold:   10000,
	}
}
