package pricing

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Model resolves monthly costs and downgrade neighbors for (tier, SKU) pairs.
// Implementations are read-only after construction and safe for concurrent
// use.
type Model interface {
	// MonthlyCost returns the monthly cost of capacity instances of the given
	// SKU. A (tier, SKU) pair missing from the catalog does not fail the
	// pipeline: the flat fallback rate is applied and estimated is true.
	MonthlyCost(ctx context.Context, tier, sku string, capacity int) (cost float64, estimated bool)
	// Downgrade returns the fixed one-step-down SKU for the given pair, if
	// the catalog registers a smaller neighbor.
	Downgrade(tier, sku string) (string, bool)
}

type model struct {
	// Lookup keys are lowercased: catalog profiles pass through viper, which
	// lowercases map keys, and SKU labels arrive from collaborators in
	// whatever case they use.
	unitCosts  map[string]map[string]float64
	downgrades map[string]map[string]string
	fallback   float64
}

// NewModel builds a Model from a catalog.
func NewModel(catalog Catalog) Model {
	m := &model{
		unitCosts:  make(map[string]map[string]float64, len(catalog.Tiers)),
		downgrades: make(map[string]map[string]string, len(catalog.Downgrades)),
		fallback:   catalog.FallbackUnitCost,
	}
	if m.fallback <= 0 {
		m.fallback = DefaultFallbackUnitCost
	}

	for tier, skus := range catalog.Tiers {
		costs := make(map[string]float64, len(skus))
		for sku, unit := range skus {
			costs[strings.ToLower(sku)] = unit
		}
		m.unitCosts[strings.ToLower(tier)] = costs
	}
	for tier, steps := range catalog.Downgrades {
		neighbors := make(map[string]string, len(steps))
		for sku, smaller := range steps {
			neighbors[strings.ToLower(sku)] = smaller
		}
		m.downgrades[strings.ToLower(tier)] = neighbors
	}
	return m
}

func (m *model) MonthlyCost(ctx context.Context, tier, sku string, capacity int) (float64, bool) {
	if skus, ok := m.unitCosts[strings.ToLower(tier)]; ok {
		if unit, ok := skus[strings.ToLower(sku)]; ok {
			return unit * float64(capacity), false
		}
	}

	// Data-quality note, not an error: totals become best-effort.
	zerolog.Ctx(ctx).Warn().
		Str("tier", tier).
		Str("sku", sku).
		Float64("fallback_unit_cost", m.fallback).
		Msg("sku missing from pricing catalog, using flat estimate")

	return m.fallback * float64(capacity), true
}

func (m *model) Downgrade(tier, sku string) (string, bool) {
	steps, ok := m.downgrades[strings.ToLower(tier)]
	if !ok {
		return "", false
	}
	smaller, ok := steps[strings.ToLower(sku)]
	return smaller, ok
}
