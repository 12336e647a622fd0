// Package options enumerates the structurally valid candidate configurations
// for a resource and evaluates each one: projected utilization, risk,
// confidence, cost and savings. Generation order carries no preference beyond
// the invariant that the current configuration comes first.
package options

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/rightsize/pkg/models/domain"
	"github.com/de-tools/rightsize/pkg/services/pricing"
	"github.com/de-tools/rightsize/pkg/services/projection"
	"github.com/de-tools/rightsize/pkg/services/risk"
)

// ErrInvalidCapacity marks a structurally invalid configuration at the
// generator's input boundary. Validly sourced data never triggers it.
var ErrInvalidCapacity = errors.New("resource capacity must be at least 1")

type Generator struct {
	pricing pricing.Model
}

func NewGenerator(model pricing.Model) *Generator {
	return &Generator{pricing: model}
}

// Generate returns every candidate for the resource, the current
// configuration first. Each candidate's savings are relative to the current
// configuration's monthly cost.
func (g *Generator) Generate(
	ctx context.Context,
	cfg domain.ResourceConfiguration,
	util domain.UtilizationSample,
) ([]domain.OptimizationOption, error) {
	if cfg.Capacity < 1 {
		return nil, fmt.Errorf("resource %q: %w", cfg.ID, ErrInvalidCapacity)
	}

	util = util.Clamped()
	currentCost, currentEstimated := g.pricing.MonthlyCost(ctx, cfg.Tier, cfg.SKU, cfg.Capacity)

	opts := []domain.OptimizationOption{{
		Kind:          domain.OptionCurrent,
		Config:        cfg,
		Description:   "Keep the current configuration",
		Risk:          domain.RiskNone,
		Confidence:    100,
		Projected:     util,
		MonthlyCost:   currentCost,
		EstimatedCost: currentEstimated,
	}}

	for _, c := range g.candidates(cfg) {
		opts = append(opts, g.evaluate(ctx, c, cfg, util, currentCost))
	}

	return opts, nil
}

type candidate struct {
	kind        domain.OptionKind
	config      domain.ResourceConfiguration
	skuFactor   float64
	description string
}

func (g *Generator) candidates(cfg domain.ResourceConfiguration) []candidate {
	var cands []candidate

	if cfg.Capacity > 1 {
		scaled := cfg
		scaled.Capacity = cfg.Capacity - 1
		cands = append(cands, candidate{
			kind:        domain.OptionScaleDownOne,
			config:      scaled,
			skuFactor:   projection.SameSKUFactor,
			description: fmt.Sprintf("Reduce capacity from %d to %d instances", cfg.Capacity, scaled.Capacity),
		})
	}

	// Only when it does not duplicate the single-instance reduction.
	if cfg.Capacity > 2 {
		halved := cfg
		halved.Capacity = halfCapacity(cfg.Capacity)
		cands = append(cands, candidate{
			kind:        domain.OptionScaleDownHalf,
			config:      halved,
			skuFactor:   projection.SameSKUFactor,
			description: fmt.Sprintf("Halve capacity from %d to %d instances", cfg.Capacity, halved.Capacity),
		})
	}

	if smaller, ok := g.pricing.Downgrade(cfg.Tier, cfg.SKU); ok {
		downgraded := cfg
		downgraded.SKU = smaller
		cands = append(cands, candidate{
			kind:        domain.OptionSKUDowngrade,
			config:      downgraded,
			skuFactor:   projection.DowngradedSKUFactor,
			description: fmt.Sprintf("Downgrade SKU from %s to %s", cfg.SKU, smaller),
		})

		combined := downgraded
		combined.Capacity = halfCapacity(cfg.Capacity)
		cands = append(cands, candidate{
			kind:      domain.OptionCombined,
			config:    combined,
			skuFactor: projection.DowngradedSKUFactor,
			description: fmt.Sprintf("Downgrade SKU from %s to %s and reduce capacity to %d instances",
				cfg.SKU, smaller, combined.Capacity),
		})
	}

	return cands
}

func (g *Generator) evaluate(
	ctx context.Context,
	c candidate,
	current domain.ResourceConfiguration,
	util domain.UtilizationSample,
	currentCost float64,
) domain.OptimizationOption {
	projected := projection.Project(util, current.Capacity, c.config.Capacity, c.skuFactor)
	level, confidence := risk.Classify(c.kind, util, projected)
	cost, estimated := g.pricing.MonthlyCost(ctx, c.config.Tier, c.config.SKU, c.config.Capacity)

	return domain.OptimizationOption{
		Kind:           c.kind,
		Config:         c.config,
		Description:    c.description,
		Risk:           level,
		Confidence:     confidence,
		Projected:      projected,
		MonthlyCost:    cost,
		MonthlySavings: currentCost - cost,
		EstimatedCost:  estimated,
	}
}

// halfCapacity rounds up so a candidate never drops below one instance.
func halfCapacity(capacity int) int {
	return (capacity + 1) / 2
}
