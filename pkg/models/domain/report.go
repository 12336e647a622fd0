package domain

import "time"

// AnalysisReport is the complete output of one batch analysis pass over a
// snapshot. It is assembled exactly once, after every resource has been
// processed; nothing in it is mutated afterwards.
type AnalysisReport struct {
	Policy          Policy
	GeneratedAt     time.Time
	Recommendations []Recommendation
	Cleanup         []CleanupCandidate
	Findings        []Finding
	// EstimatedPricing is set when any cost in the report came from the flat
	// fallback rate, so totals must be labeled best-effort.
	EstimatedPricing bool
}

// TotalMonthlySavings sums the selected savings across recommendations plus
// the full cost of every cleanup candidate.
func (r AnalysisReport) TotalMonthlySavings() float64 {
	var total float64
	for _, rec := range r.Recommendations {
		total += rec.Selected.MonthlySavings
	}
	for _, c := range r.Cleanup {
		total += c.MonthlyCost
	}
	return total
}
