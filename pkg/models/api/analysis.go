package api

import "time"

// ResourceUsage is the wire shape of one snapshot entry: a resource's
// configuration plus its trailing-window utilization.
type ResourceUsage struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Tier        string      `json:"tier"`
	SKU         string      `json:"sku"`
	Capacity    int         `json:"capacity"`
	Location    string      `json:"location,omitempty"`
	Workloads   int         `json:"workloads"`
	Utilization Utilization `json:"utilization"`
}

type Utilization struct {
	CPUAvg float64 `json:"cpu_avg"`
	CPUMax float64 `json:"cpu_max"`
	MemAvg float64 `json:"mem_avg"`
	MemMax float64 `json:"mem_max"`
}

type Thresholds struct {
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

type AnalyzeRequest struct {
	Strategy   string          `json:"strategy,omitempty"`
	Thresholds *Thresholds     `json:"thresholds,omitempty"`
	Resources  []ResourceUsage `json:"resources"`
}

type Configuration struct {
	Tier     string `json:"tier"`
	SKU      string `json:"sku"`
	Capacity int    `json:"capacity"`
}

type Option struct {
	Kind           string        `json:"kind"`
	Configuration  Configuration `json:"configuration"`
	Description    string        `json:"description"`
	Risk           string        `json:"risk"`
	Confidence     int           `json:"confidence"`
	Projected      Utilization   `json:"projected"`
	MonthlyCost    float64       `json:"monthly_cost"`
	MonthlySavings float64       `json:"monthly_savings"`
	EstimatedCost  bool          `json:"estimated_cost,omitempty"`
}

type Recommendation struct {
	ResourceID string      `json:"resource_id"`
	Resource   string      `json:"resource"`
	Current    Utilization `json:"current_utilization"`
	Options    []Option    `json:"options"`
	Selected   Option      `json:"selected"`
	Strategy   string      `json:"strategy"`
}

type FindingMember struct {
	ResourceID     string  `json:"resource_id"`
	Resource       string  `json:"resource"`
	Action         string  `json:"action"`
	MonthlySavings float64 `json:"monthly_savings"`
}

type Finding struct {
	Severity       string          `json:"severity"`
	SeverityCode   int             `json:"severity_code"`
	MonthlySavings float64         `json:"monthly_savings"`
	AnnualSavings  float64         `json:"annual_savings"`
	Members        []FindingMember `json:"members"`
	Summary        string          `json:"summary"`
}

type CleanupCandidate struct {
	ResourceID  string  `json:"resource_id"`
	Resource    string  `json:"resource"`
	MonthlyCost float64 `json:"monthly_cost"`
}

type AnalyzeResponse struct {
	Strategy         string             `json:"strategy"`
	GeneratedAt      time.Time          `json:"generated_at"`
	Recommendations  []Recommendation   `json:"recommendations"`
	Cleanup          []CleanupCandidate `json:"cleanup,omitempty"`
	Findings         []Finding          `json:"findings"`
	EstimatedPricing bool               `json:"estimated_pricing,omitempty"`
}

type StrategyProfile struct {
	Name               string  `json:"name"`
	RiskCeiling        string  `json:"risk_ceiling"`
	MaxProjectedCPU    float64 `json:"max_projected_cpu"`
	MaxProjectedMemory float64 `json:"max_projected_memory"`
}
