// Package impact buckets finished recommendations into severity-banded
// findings. Aggregation runs exactly once, over the complete set; band
// membership and per-band totals are meaningless on a partial collection.
package impact

import (
	"fmt"

	"github.com/de-tools/rightsize/pkg/models/domain"
)

const monthsPerYear = 12

// Aggregate partitions every positive-savings recommendation and every
// cleanup candidate into HIGH / MEDIUM / LOW findings by the policy's
// thresholds. Zero-savings recommendations (selected = current) are excluded
// entirely; bands with no members produce no finding. The bands are disjoint
// and exhaustive over everything with nonzero savings.
func Aggregate(
	recs []domain.Recommendation,
	cleanup []domain.CleanupCandidate,
	policy domain.Policy,
) []domain.Finding {
	members := map[domain.Severity][]domain.FindingMember{}

	add := func(m domain.FindingMember) {
		band := bandFor(m.MonthlySavings, policy)
		members[band] = append(members[band], m)
	}

	for _, rec := range recs {
		if rec.Selected.MonthlySavings <= 0 {
			continue
		}
		add(domain.FindingMember{
			ResourceID:     rec.Resource.ID,
			ResourceName:   rec.Resource.Name,
			Action:         rec.Selected.Description,
			MonthlySavings: rec.Selected.MonthlySavings,
		})
	}

	// An idle resource recovers its full monthly cost when decommissioned.
	for _, c := range cleanup {
		if c.MonthlyCost <= 0 {
			continue
		}
		add(domain.FindingMember{
			ResourceID:     c.Resource.ID,
			ResourceName:   c.Resource.Name,
			Action:         "Decommission idle resource",
			MonthlySavings: c.MonthlyCost,
		})
	}

	var findings []domain.Finding
	for _, band := range []domain.Severity{domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow} {
		if len(members[band]) == 0 {
			continue
		}
		findings = append(findings, buildFinding(band, members[band]))
	}
	return findings
}

// bandFor applies the policy thresholds; the lower bound of each band is
// inclusive.
func bandFor(savings float64, policy domain.Policy) domain.Severity {
	switch {
	case savings >= policy.HighSavingsThreshold:
		return domain.SeverityHigh
	case savings >= policy.MediumSavingsThreshold:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

func buildFinding(band domain.Severity, members []domain.FindingMember) domain.Finding {
	var monthly float64
	for _, m := range members {
		monthly += m.MonthlySavings
	}
	annual := monthly * monthsPerYear

	return domain.Finding{
		Severity:       band,
		MonthlySavings: monthly,
		AnnualSavings:  annual,
		Members:        members,
		Summary: fmt.Sprintf("%d resource(s) with %.2f/month (%.2f/year) in potential savings",
			len(members), monthly, annual),
	}
}
