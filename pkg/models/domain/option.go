package domain

// OptionKind identifies the structural change a candidate configuration makes
// relative to the current one.
type OptionKind string

const (
	OptionCurrent       OptionKind = "current"
	OptionScaleDownOne  OptionKind = "scale_down_1"
	OptionScaleDownHalf OptionKind = "scale_down_50"
	OptionSKUDowngrade  OptionKind = "sku_downgrade"
	OptionCombined      OptionKind = "combined"
)

// DowngradesSKU reports whether the option moves to a smaller SKU, which
// halves per-instance resources.
func (k OptionKind) DowngradesSKU() bool {
	return k == OptionSKUDowngrade || k == OptionCombined
}

type RiskLevel int

const (
	RiskNone RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
)

func (r RiskLevel) String() string {
	switch r {
	case RiskNone:
		return "none"
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "unknown"
	}
}

// OptimizationOption is one fully evaluated candidate configuration.
type OptimizationOption struct {
	Kind        OptionKind
	Config      ResourceConfiguration
	Description string
	Risk        RiskLevel
	Confidence  int // 0-100
	Projected   UtilizationSample
	// MonthlyCost is the projected monthly cost of the candidate.
	// MonthlySavings is relative to the current configuration's cost; it is
	// zero for the current option by construction.
	MonthlyCost    float64
	MonthlySavings float64
	// EstimatedCost marks costs derived from the flat fallback rate because
	// the SKU was missing from the pricing catalog.
	EstimatedCost bool
}
