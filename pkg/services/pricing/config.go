package pricing

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadCatalog reads a catalog profile (YAML or JSON) from profilePath.
// Missing sections fall back to the built-in price book, so a profile can
// override just the fallback rate or a single tier.
func LoadCatalog(profilePath string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cfg Catalog
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pricing catalog: %w", err)
	}

	defaults := DefaultCatalog()
	if cfg.Tiers == nil {
		cfg.Tiers = defaults.Tiers
	}
	if cfg.Downgrades == nil {
		cfg.Downgrades = defaults.Downgrades
	}
	if cfg.FallbackUnitCost <= 0 {
		cfg.FallbackUnitCost = defaults.FallbackUnitCost
	}
	return &cfg, nil
}
