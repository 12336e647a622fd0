package pricing

// DefaultFallbackUnitCost is the conservative per-instance monthly estimate
// applied when a (tier, SKU) pair is missing from the catalog.
const DefaultFallbackUnitCost = 100.0

// Catalog is the declarative pricing policy: per-tier unit costs and the
// per-tier "one step down" SKU neighbors. Separating it from the Model keeps
// pricing data independent from lookup mechanics and makes both table-driven
// testable.
type Catalog struct {
	// Tiers maps tier -> SKU -> per-instance monthly unit cost.
	Tiers map[string]map[string]float64 `mapstructure:"tiers"`
	// Downgrades maps tier -> SKU -> the next smaller SKU in the same tier.
	// A SKU absent from the table has no registered smaller neighbor.
	Downgrades map[string]map[string]string `mapstructure:"downgrades"`
	// FallbackUnitCost overrides DefaultFallbackUnitCost when positive.
	FallbackUnitCost float64 `mapstructure:"fallback_unit_cost"`
}

// DefaultCatalog returns the built-in price book. Each SKU step within a tier
// roughly doubles per-instance resources, which is what the projection's
// SKU factor assumes.
func DefaultCatalog() Catalog {
	return Catalog{
		Tiers: map[string]map[string]float64{
			"Basic": {
				"B1": 55,
				"B2": 110,
				"B3": 220,
			},
			"Standard": {
				"S1": 73,
				"S2": 146,
				"S3": 292,
			},
			"Premium": {
				"P1": 219,
				"P2": 438,
				"P3": 876,
			},
		},
		Downgrades: map[string]map[string]string{
			"Basic": {
				"B2": "B1",
				"B3": "B2",
			},
			"Standard": {
				"S2": "S1",
				"S3": "S2",
			},
			"Premium": {
				"P2": "P1",
				"P3": "P2",
			},
		},
		FallbackUnitCost: DefaultFallbackUnitCost,
	}
}
