package advisor

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/de-tools/rightsize/pkg/models/domain"
)

type policyProfile struct {
	Strategy        string  `mapstructure:"strategy"`
	MediumThreshold float64 `mapstructure:"medium_threshold"`
	HighThreshold   float64 `mapstructure:"high_threshold"`
}

// LoadPolicy reads an optimization policy profile (YAML or JSON) from
// profilePath. Omitted fields keep their defaults; an unrecognized strategy
// name falls back to balanced at analysis time rather than failing here.
func LoadPolicy(profilePath string) (*domain.Policy, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	var profile policyProfile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse policy profile: %w", err)
	}

	policy := domain.DefaultPolicy()
	if profile.Strategy != "" {
		policy.Strategy = domain.Strategy(profile.Strategy)
	}
	if profile.MediumThreshold > 0 {
		policy.MediumSavingsThreshold = profile.MediumThreshold
	}
	if profile.HighThreshold > 0 {
		policy.HighSavingsThreshold = profile.HighThreshold
	}

	if policy.HighSavingsThreshold < policy.MediumSavingsThreshold {
		return nil, fmt.Errorf("high threshold %.2f must not be below medium threshold %.2f",
			policy.HighSavingsThreshold, policy.MediumSavingsThreshold)
	}
	return &policy, nil
}
