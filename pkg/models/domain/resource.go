package domain

// ResourceConfiguration is an immutable snapshot of a compute resource's
// provisioning for one analysis pass.
type ResourceConfiguration struct {
	ID       string
	Name     string
	Tier     string // e.g. "Premium"
	SKU      string // e.g. "P3"
	Capacity int    // provisioned instance count, >= 1
	Location string
	// Workloads is the number of workloads hosted on the resource. A
	// resource with zero workloads is a decommission candidate and bypasses
	// option generation entirely.
	Workloads int
}

// UtilizationSample holds average and maximum CPU/memory utilization
// percentages over a fixed trailing window. A zero value for a metric means
// the collaborator could not supply it.
type UtilizationSample struct {
	CPUAvg float64
	CPUMax float64
	MemAvg float64
	MemMax float64
}

// Clamped returns a copy with every metric forced into [0, 100].
func (u UtilizationSample) Clamped() UtilizationSample {
	return UtilizationSample{
		CPUAvg: clampPercent(u.CPUAvg),
		CPUMax: clampPercent(u.CPUMax),
		MemAvg: clampPercent(u.MemAvg),
		MemMax: clampPercent(u.MemMax),
	}
}

// Incomplete reports whether one of the peak metrics is missing. Missing
// metrics are treated as zero, which inflates projected savings; classifiers
// compensate by lowering confidence.
func (u UtilizationSample) Incomplete() bool {
	return u.CPUMax == 0 || u.MemMax == 0
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ResourceUsage pairs a resource configuration with its observed utilization.
// It is the unit of work entering the analysis pipeline.
type ResourceUsage struct {
	Config      ResourceConfiguration
	Utilization UtilizationSample
}
