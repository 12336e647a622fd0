// Package risk rates candidate configurations. Memory headroom is weighted
// more conservatively than CPU throughout: memory exhaustion causes hard
// failures rather than graceful throttling.
package risk

import "github.com/de-tools/rightsize/pkg/models/domain"

// Confidence scores attached to each rule outcome.
const (
	confidenceSaturatedDowngrade = 30
	confidenceHigh               = 45
	confidenceMedium             = 65
	confidenceLow                = 80
	confidenceCurrent            = 100

	// A missing peak metric makes projections optimistic; the penalty keeps
	// that visible without suppressing the recommendation.
	missingMetricPenalty = 15
	minConfidence        = 10
)

// Classify rates a candidate by its projected utilization, with one override
// on current utilization: a resource already beyond 90% peak memory is never
// safe to move to a smaller SKU, regardless of the projected number. Rules
// are evaluated first-match-wins.
func Classify(kind domain.OptionKind, current, projected domain.UtilizationSample) (domain.RiskLevel, int) {
	if kind == domain.OptionCurrent {
		return domain.RiskNone, confidenceCurrent
	}

	level, confidence := classify(kind, current, projected)
	if current.Incomplete() {
		confidence -= missingMetricPenalty
		if confidence < minConfidence {
			confidence = minConfidence
		}
	}
	return level, confidence
}

func classify(kind domain.OptionKind, current, projected domain.UtilizationSample) (domain.RiskLevel, int) {
	switch {
	case current.MemMax > 90 && kind.DowngradesSKU():
		return domain.RiskHigh, confidenceSaturatedDowngrade
	case projected.CPUMax > 90 || projected.MemMax > 95:
		return domain.RiskHigh, confidenceHigh
	case projected.CPUMax > 80 || projected.MemMax > 85:
		return domain.RiskMedium, confidenceMedium
	default:
		return domain.RiskLow, confidenceLow
	}
}
