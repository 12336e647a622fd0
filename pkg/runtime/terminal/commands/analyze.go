package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/rightsize/pkg/models/domain"
	"github.com/de-tools/rightsize/pkg/runtime/terminal/export"
	"github.com/de-tools/rightsize/pkg/services/advisor"
	"github.com/de-tools/rightsize/pkg/services/pricing"
	"github.com/de-tools/rightsize/pkg/services/snapshot"
)

type AnalyzeCmd struct {
	snapshotPath    string
	sourceName      string
	strategyName    string
	mediumThreshold float64
	highThreshold   float64
	policyPath      string
	catalogPath     string
	exportPath      string
	workers         int
	verbose         bool

	registry snapshot.Registry
	reporter *export.Reporter
}

func NewAnalyzeCmd(registry snapshot.Registry, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Generate rightsizing recommendations from a resource snapshot",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.snapshotPath, "snapshot", "", "Path to the resource snapshot")
	cmd.Flags().StringVar(&ac.sourceName, "source", "file", "Snapshot source to use")
	cmd.Flags().StringVar(&ac.strategyName, "strategy", "", "Optimization strategy (aggressive|balanced|conservative)")
	cmd.Flags().Float64Var(&ac.mediumThreshold, "medium-threshold", 0, "Monthly savings threshold for MEDIUM findings")
	cmd.Flags().Float64Var(&ac.highThreshold, "high-threshold", 0, "Monthly savings threshold for HIGH findings")
	cmd.Flags().StringVar(&ac.policyPath, "policy", "", "Path to a policy profile overriding strategy and thresholds")
	cmd.Flags().StringVar(&ac.catalogPath, "catalog", "", "Path to a pricing catalog profile")
	cmd.Flags().StringVar(&ac.exportPath, "export", "", "Write the machine-readable report to this path")
	cmd.Flags().IntVar(&ac.workers, "workers", advisor.DefaultWorkers, "Number of concurrent analysis workers")
	cmd.Flags().BoolVarP(&ac.verbose, "verbose", "v", false, "Log data-quality notes to stderr")

	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if !ac.verbose {
		logger = logger.Level(zerolog.ErrorLevel)
	}
	ctx := logger.WithContext(cmd.Context())

	policy, err := ac.buildPolicy()
	if err != nil {
		return err
	}

	catalog := pricing.DefaultCatalog()
	if ac.catalogPath != "" {
		loaded, err := pricing.LoadCatalog(ac.catalogPath)
		if err != nil {
			return fmt.Errorf("failed to load pricing catalog: %w", err)
		}
		catalog = *loaded
	}

	source, err := ac.registry.Create(ac.sourceName, ac.snapshotPath)
	if err != nil {
		return fmt.Errorf("failed to create snapshot source %q: %w", ac.sourceName, err)
	}

	usages, err := source.Resources(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	adv := advisor.New(pricing.NewModel(catalog), advisor.Config{Workers: ac.workers})
	report, err := adv.Analyze(ctx, usages, policy)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if ac.exportPath != "" {
		if err := ac.reporter.ExportJSON(&report, ac.exportPath); err != nil {
			return err
		}
	}
	return ac.reporter.Handle(&report)
}

// buildPolicy layers flags over an optional profile over the defaults.
func (ac *AnalyzeCmd) buildPolicy() (domain.Policy, error) {
	policy := domain.DefaultPolicy()
	if ac.policyPath != "" {
		loaded, err := advisor.LoadPolicy(ac.policyPath)
		if err != nil {
			return domain.Policy{}, fmt.Errorf("failed to load policy profile: %w", err)
		}
		policy = *loaded
	}
	if ac.strategyName != "" {
		policy.Strategy = domain.Strategy(ac.strategyName)
	}
	if ac.mediumThreshold > 0 {
		policy.MediumSavingsThreshold = ac.mediumThreshold
	}
	if ac.highThreshold > 0 {
		policy.HighSavingsThreshold = ac.highThreshold
	}
	return policy, nil
}
