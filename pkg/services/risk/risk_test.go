package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/de-tools/rightsize/pkg/models/domain"
)

func TestClassify(t *testing.T) {
	healthy := domain.UtilizationSample{CPUAvg: 20, CPUMax: 40, MemAvg: 30, MemMax: 50}
	saturated := domain.UtilizationSample{CPUAvg: 50, CPUMax: 70, MemAvg: 80, MemMax: 95}

	tests := []struct {
		name           string
		kind           domain.OptionKind
		current        domain.UtilizationSample
		projected      domain.UtilizationSample
		wantLevel      domain.RiskLevel
		wantConfidence int
	}{
		{
			name: "current option is always risk-free",
			kind: domain.OptionCurrent, current: saturated, projected: saturated,
			wantLevel: domain.RiskNone, wantConfidence: 100,
		},
		{
			name: "memory-saturated resource never shrinks to a smaller sku",
			kind: domain.OptionSKUDowngrade, current: saturated,
			projected: domain.UtilizationSample{CPUMax: 40, MemMax: 50},
			wantLevel: domain.RiskHigh, wantConfidence: 30,
		},
		{
			name: "combined option hits the same saturation override",
			kind: domain.OptionCombined, current: saturated,
			projected: domain.UtilizationSample{CPUMax: 40, MemMax: 50},
			wantLevel: domain.RiskHigh, wantConfidence: 30,
		},
		{
			name: "saturation override does not apply to plain scale-down",
			kind: domain.OptionScaleDownOne, current: saturated,
			projected: domain.UtilizationSample{CPUMax: 75, MemMax: 80},
			wantLevel: domain.RiskMedium, wantConfidence: 65,
		},
		{
			name: "projected cpu above 90 is high risk",
			kind: domain.OptionScaleDownOne, current: healthy,
			projected: domain.UtilizationSample{CPUMax: 91, MemMax: 50},
			wantLevel: domain.RiskHigh, wantConfidence: 45,
		},
		{
			name: "projected memory above 95 is high risk",
			kind: domain.OptionScaleDownHalf, current: healthy,
			projected: domain.UtilizationSample{CPUMax: 50, MemMax: 96},
			wantLevel: domain.RiskHigh, wantConfidence: 45,
		},
		{
			name: "projected cpu above 80 is medium risk",
			kind: domain.OptionScaleDownOne, current: healthy,
			projected: domain.UtilizationSample{CPUMax: 81, MemMax: 50},
			wantLevel: domain.RiskMedium, wantConfidence: 65,
		},
		{
			name: "projected memory above 85 is medium risk",
			kind: domain.OptionScaleDownOne, current: healthy,
			projected: domain.UtilizationSample{CPUMax: 50, MemMax: 86},
			wantLevel: domain.RiskMedium, wantConfidence: 65,
		},
		{
			name: "boundaries are exclusive",
			kind: domain.OptionScaleDownOne, current: healthy,
			projected: domain.UtilizationSample{CPUMax: 80, MemMax: 85},
			wantLevel: domain.RiskLow, wantConfidence: 80,
		},
		{
			name: "comfortable headroom is low risk",
			kind: domain.OptionScaleDownHalf, current: healthy,
			projected: domain.UtilizationSample{CPUMax: 60, MemMax: 70},
			wantLevel: domain.RiskLow, wantConfidence: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, confidence := Classify(tt.kind, tt.current, tt.projected)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantConfidence, confidence)
		})
	}
}

func TestClassify_MissingMetricLowersConfidence(t *testing.T) {
	// cpuMax unavailable: projections are optimistic, so trust drops but the
	// recommendation is not suppressed.
	current := domain.UtilizationSample{CPUAvg: 0, CPUMax: 0, MemAvg: 30, MemMax: 50}
	projected := domain.UtilizationSample{CPUMax: 0, MemMax: 67}

	level, confidence := Classify(domain.OptionScaleDownOne, current, projected)
	assert.Equal(t, domain.RiskLow, level)
	assert.Equal(t, 65, confidence)
}

func TestClassify_MissingMetricNeverAffectsCurrent(t *testing.T) {
	current := domain.UtilizationSample{}

	level, confidence := Classify(domain.OptionCurrent, current, current)
	assert.Equal(t, domain.RiskNone, level)
	assert.Equal(t, 100, confidence)
}
