// Package advisor orchestrates the rightsizing pipeline: option generation,
// strategy selection and recommendation assembly per resource, fanned out
// over a bounded worker pool, followed by a single aggregation pass over the
// complete result set.
package advisor

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/rightsize/pkg/models/domain"
	"github.com/de-tools/rightsize/pkg/services/impact"
	"github.com/de-tools/rightsize/pkg/services/options"
	"github.com/de-tools/rightsize/pkg/services/pricing"
	"github.com/de-tools/rightsize/pkg/services/strategy"
)

// DefaultWorkers bounds the pool; the ceiling exists to respect the rate
// limits of whatever collaborator supplied the snapshot.
const DefaultWorkers = 4

type Config struct {
	Workers int
}

type Advisor struct {
	pricing   pricing.Model
	generator *options.Generator
	workers   int
}

func New(model pricing.Model, cfg Config) *Advisor {
	workers := cfg.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Advisor{
		pricing:   model,
		generator: options.NewGenerator(model),
		workers:   workers,
	}
}

// result carries one resource's outcome back from the pool, keyed by input
// position so the report stays in snapshot order regardless of scheduling.
type result struct {
	index          int
	recommendation *domain.Recommendation
	cleanup        *domain.CleanupCandidate
	err            error
}

// Analyze runs one deterministic batch pass over the snapshot. Resources are
// processed independently; a failure or cancellation on one does not stall
// the others. Findings are derived once, after every recommendation has been
// built.
func (a *Advisor) Analyze(
	ctx context.Context,
	usages []domain.ResourceUsage,
	policy domain.Policy,
) (domain.AnalysisReport, error) {
	logger := zerolog.Ctx(ctx)
	policy = normalizePolicy(policy)

	jobs := make(chan int)
	results := make([]result, len(usages))

	var wg sync.WaitGroup
	for w := 0; w < a.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = a.process(ctx, i, usages[i], policy)
			}
		}()
	}

	for i := range usages {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return domain.AnalysisReport{}, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	report := domain.AnalysisReport{
		Policy:      policy,
		GeneratedAt: time.Now().UTC(),
	}
	for _, res := range results {
		switch {
		case res.err != nil:
			// Structurally invalid configurations are data errors at the
			// boundary, not pipeline failures; skip and keep going.
			logger.Error().Err(res.err).Msg("skipping structurally invalid resource")
		case res.cleanup != nil:
			report.Cleanup = append(report.Cleanup, *res.cleanup)
			report.EstimatedPricing = report.EstimatedPricing || res.cleanup.EstimatedCost
		case res.recommendation != nil:
			report.Recommendations = append(report.Recommendations, *res.recommendation)
			for _, opt := range res.recommendation.Options {
				report.EstimatedPricing = report.EstimatedPricing || opt.EstimatedCost
			}
		}
	}

	report.Findings = impact.Aggregate(report.Recommendations, report.Cleanup, policy)
	return report, nil
}

func (a *Advisor) process(ctx context.Context, index int, usage domain.ResourceUsage, policy domain.Policy) result {
	cfg := usage.Config

	// Zero workloads: nothing to rightsize, the whole cost is reclaimable.
	if cfg.Workloads == 0 {
		cost, estimated := a.pricing.MonthlyCost(ctx, cfg.Tier, cfg.SKU, cfg.Capacity)
		return result{index: index, cleanup: &domain.CleanupCandidate{
			Resource:      cfg,
			MonthlyCost:   cost,
			EstimatedCost: estimated,
		}}
	}

	opts, err := a.generator.Generate(ctx, cfg, usage.Utilization)
	if err != nil {
		return result{index: index, err: err}
	}

	rec := domain.Recommendation{
		Resource:    cfg,
		Utilization: usage.Utilization.Clamped(),
		Options:     opts,
		Selected:    strategy.Select(opts, policy.Strategy),
		Strategy:    policy.Strategy,
	}
	return result{index: index, recommendation: &rec}
}

func normalizePolicy(p domain.Policy) domain.Policy {
	defaults := domain.DefaultPolicy()
	p.Strategy = strategy.Normalize(p.Strategy)
	if p.MediumSavingsThreshold <= 0 {
		p.MediumSavingsThreshold = defaults.MediumSavingsThreshold
	}
	if p.HighSavingsThreshold <= 0 {
		p.HighSavingsThreshold = defaults.HighSavingsThreshold
	}
	return p
}
