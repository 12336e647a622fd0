package export

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/rightsize/pkg/models/api"
	"github.com/de-tools/rightsize/pkg/models/domain"
	"github.com/de-tools/rightsize/pkg/services/advisor"
	"github.com/de-tools/rightsize/pkg/services/pricing"
)

func buildReport(t *testing.T) *domain.AnalysisReport {
	t.Helper()

	adv := advisor.New(pricing.NewModel(pricing.DefaultCatalog()), advisor.Config{Workers: 2})
	report, err := adv.Analyze(context.Background(), []domain.ResourceUsage{
		{
			Config: domain.ResourceConfiguration{
				ID: "pool-1", Name: "orders-pool", Tier: "Premium", SKU: "P3",
				Capacity: 4, Location: "westeurope", Workloads: 3,
			},
			Utilization: domain.UtilizationSample{CPUAvg: 10, CPUMax: 30, MemAvg: 20, MemMax: 40},
		},
		{
			Config: domain.ResourceConfiguration{
				ID: "idle-1", Name: "idle-pool", Tier: "Standard", SKU: "S2",
				Capacity: 2,
			},
		},
	}, domain.DefaultPolicy())
	require.NoError(t, err)
	return &report
}

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(buildReport(t)))
	out := buf.String()

	assert.Contains(t, out, "Capacity Rightsizing Report")
	assert.Contains(t, out, "Strategy: balanced (risk ceiling medium, projected max cpu 85%, mem 90%)")
	assert.Contains(t, out, "Savings thresholds: medium 2000.00/mo, high 10000.00/mo")
	assert.Contains(t, out, "Resources analyzed: 2")

	assert.Contains(t, out, "=== orders-pool (Premium/P3 x4, westeurope) ===")
	assert.Contains(t, out, "Current utilization: cpu avg 10% max 30%, mem avg 20% max 40%")
	assert.Contains(t, out, "| Option")
	assert.Contains(t, out, "| current")
	assert.Contains(t, out, "| scale_down_50")
	assert.Contains(t, out, "Selected:")

	assert.Contains(t, out, "Idle resources (zero workloads):")
	assert.Contains(t, out, "idle-pool (Standard/S2 x2): decommission to recover 292.00/mo")

	assert.Contains(t, out, "Findings:")
	assert.Contains(t, out, "[LOW] (code 4)")

	assert.Contains(t, out, "It is a linear approximation, not a measured value.")
	assert.NotContains(t, out, "missing from the pricing catalog")
}

func TestHandle_EstimatedPricingNote(t *testing.T) {
	adv := advisor.New(pricing.NewModel(pricing.DefaultCatalog()), advisor.Config{Workers: 1})
	report, err := adv.Analyze(context.Background(), []domain.ResourceUsage{
		{
			Config: domain.ResourceConfiguration{
				ID: "pool-x", Name: "exotic-pool", Tier: "Isolated", SKU: "I1",
				Capacity: 2, Workloads: 1,
			},
			Utilization: domain.UtilizationSample{CPUAvg: 10, CPUMax: 20, MemAvg: 10, MemMax: 20},
		},
	}, domain.DefaultPolicy())
	require.NoError(t, err)
	require.True(t, report.EstimatedPricing)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(&report))
	assert.Contains(t, buf.String(), "missing from the pricing catalog")
}

func TestExportJSON(t *testing.T) {
	reporter := NewReporter(&bytes.Buffer{})
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, reporter.ExportJSON(buildReport(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var response api.AnalyzeResponse
	require.NoError(t, json.Unmarshal(data, &response))
	assert.Equal(t, "balanced", response.Strategy)
	require.Len(t, response.Recommendations, 1)
	assert.Equal(t, "pool-1", response.Recommendations[0].ResourceID)
	require.Len(t, response.Cleanup, 1)
	assert.Equal(t, 292.0, response.Cleanup[0].MonthlyCost)
}
