package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/rightsize/pkg/models/domain"
)

func recommendation(id string, savings float64) domain.Recommendation {
	return domain.Recommendation{
		Resource: domain.ResourceConfiguration{ID: id, Name: id},
		Selected: domain.OptimizationOption{
			Kind:           domain.OptionScaleDownOne,
			Description:    "Reduce capacity",
			MonthlySavings: savings,
		},
	}
}

func defaultPolicy() domain.Policy {
	return domain.DefaultPolicy() // medium=2000, high=10000
}

func TestAggregate_BandsAreDisjointAndExhaustive(t *testing.T) {
	recs := []domain.Recommendation{
		recommendation("low-1", 1500),
		recommendation("medium-1", 2000), // lower bound inclusive
		recommendation("medium-2", 9999),
		recommendation("high-1", 10000), // lower bound inclusive
		recommendation("none-1", 0),     // selected = current, excluded
	}

	findings := Aggregate(recs, nil, defaultPolicy())
	require.Len(t, findings, 3)

	assert.Equal(t, domain.SeverityHigh, findings[0].Severity)
	assert.Equal(t, domain.SeverityMedium, findings[1].Severity)
	assert.Equal(t, domain.SeverityLow, findings[2].Severity)

	seen := map[string]int{}
	for _, f := range findings {
		for _, m := range f.Members {
			seen[m.ResourceID]++
		}
	}
	assert.Equal(t, map[string]int{"low-1": 1, "medium-1": 1, "medium-2": 1, "high-1": 1}, seen)

	var total float64
	for _, f := range findings {
		total += f.MonthlySavings
	}
	assert.Equal(t, 1500.0+2000+9999+10000, total)
}

func TestAggregate_SeverityCodes(t *testing.T) {
	recs := []domain.Recommendation{
		recommendation("low-1", 100),
		recommendation("medium-1", 5000),
		recommendation("high-1", 20000),
	}

	findings := Aggregate(recs, nil, defaultPolicy())
	require.Len(t, findings, 3)

	assert.Equal(t, 2, findings[0].Severity.Code())
	assert.Equal(t, 3, findings[1].Severity.Code())
	assert.Equal(t, 4, findings[2].Severity.Code())
}

func TestAggregate_EmptyBandsProduceNoFindings(t *testing.T) {
	recs := []domain.Recommendation{recommendation("low-1", 10)}

	findings := Aggregate(recs, nil, defaultPolicy())
	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityLow, findings[0].Severity)
}

func TestAggregate_NoPositiveSavings(t *testing.T) {
	recs := []domain.Recommendation{recommendation("none-1", 0)}

	findings := Aggregate(recs, nil, defaultPolicy())
	assert.Empty(t, findings)
}

func TestAggregate_CleanupRecoverFullMonthlyCost(t *testing.T) {
	cleanup := []domain.CleanupCandidate{{
		Resource:    domain.ResourceConfiguration{ID: "idle-1", Name: "idle-1"},
		MonthlyCost: 12000,
	}}

	findings := Aggregate(nil, cleanup, defaultPolicy())
	require.Len(t, findings, 1)

	assert.Equal(t, domain.SeverityHigh, findings[0].Severity)
	assert.Equal(t, 12000.0, findings[0].MonthlySavings)
	require.Len(t, findings[0].Members, 1)
	assert.Equal(t, "Decommission idle resource", findings[0].Members[0].Action)
}

func TestAggregate_AnnualSavings(t *testing.T) {
	recs := []domain.Recommendation{recommendation("medium-1", 2500)}

	findings := Aggregate(recs, nil, defaultPolicy())
	require.Len(t, findings, 1)
	assert.Equal(t, 2500.0*12, findings[0].AnnualSavings)
	assert.Contains(t, findings[0].Summary, "1 resource(s)")
}
