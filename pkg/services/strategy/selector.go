// Package strategy filters and ranks evaluated candidates. Strategies are
// data records rather than code paths, so adding one means adding a table
// row and its tests.
package strategy

import (
	"sort"

	"github.com/de-tools/rightsize/pkg/models/domain"
	"golang.org/x/exp/maps"
)

// Profile is the declarative filter one strategy applies to non-current
// candidates.
type Profile struct {
	RiskCeiling        domain.RiskLevel
	MaxProjectedCPU    float64
	MaxProjectedMemory float64
}

var profiles = map[domain.Strategy]Profile{
	domain.StrategyAggressive: {
		RiskCeiling:        domain.RiskHigh,
		MaxProjectedCPU:    90,
		MaxProjectedMemory: 95,
	},
	domain.StrategyBalanced: {
		RiskCeiling:        domain.RiskMedium,
		MaxProjectedCPU:    85,
		MaxProjectedMemory: 90,
	},
	domain.StrategyConservative: {
		RiskCeiling:        domain.RiskLow,
		MaxProjectedCPU:    70,
		MaxProjectedMemory: 75,
	},
}

// Normalize maps unrecognized strategy names to the balanced default rather
// than failing the run.
func Normalize(s domain.Strategy) domain.Strategy {
	if _, ok := profiles[s]; !ok {
		return domain.StrategyBalanced
	}
	return s
}

// ProfileFor returns the filter profile for a (normalized) strategy.
func ProfileFor(s domain.Strategy) (domain.Strategy, Profile) {
	s = Normalize(s)
	return s, profiles[s]
}

// Strategies lists the registered strategy names in stable order.
func Strategies() []domain.Strategy {
	names := maps.Keys(profiles)
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Select picks the qualifying candidate with the highest monthly savings, or
// falls back to the current option when nothing qualifies. It is a
// deterministic pure function of its inputs: a tie on savings keeps the
// earlier option in generation order.
func Select(opts []domain.OptimizationOption, s domain.Strategy) domain.OptimizationOption {
	_, profile := ProfileFor(s)

	best := currentOption(opts)
	bestSavings := 0.0
	for _, opt := range opts {
		if opt.Kind == domain.OptionCurrent || !qualifies(opt, profile) {
			continue
		}
		if opt.MonthlySavings > bestSavings {
			best = opt
			bestSavings = opt.MonthlySavings
		}
	}
	return best
}

// qualifies applies the profile's ceilings. A candidate that does not save
// money can never displace the current configuration, which keeps the
// selected option's cost bounded by the current cost.
func qualifies(opt domain.OptimizationOption, p Profile) bool {
	return opt.MonthlySavings > 0 &&
		opt.Risk <= p.RiskCeiling &&
		opt.Projected.CPUMax <= p.MaxProjectedCPU &&
		opt.Projected.MemMax <= p.MaxProjectedMemory
}

func currentOption(opts []domain.OptimizationOption) domain.OptimizationOption {
	for _, opt := range opts {
		if opt.Kind == domain.OptionCurrent {
			return opt
		}
	}
	// Generate always emits the current option first; an empty slice is a
	// programmer error surfaced as a zero value.
	return domain.OptimizationOption{}
}
