// Package projection estimates how utilization shifts when total provisioned
// capacity changes. Utilization is assumed to scale inversely with capacity;
// this is a documented linear approximation, not a measured value, and every
// surface that shows projected numbers must label it as such.
package projection

import (
	"math"

	"github.com/de-tools/rightsize/pkg/models/domain"
)

// SKUFactor values for Project. A one-step SKU downgrade halves per-instance
// resources, so the surviving capacity absorbs twice the load.
const (
	SameSKUFactor       = 1.0
	DowngradedSKUFactor = 2.0
)

// Project maps current utilization onto a candidate configuration. Each of
// the four metrics scales independently by
// current * currentCapacity * skuFactor / newCapacity, rounded and clamped
// to [0, 100].
func Project(current domain.UtilizationSample, currentCapacity, newCapacity int, skuFactor float64) domain.UtilizationSample {
	scale := func(v float64) float64 {
		projected := math.Round(v * float64(currentCapacity) * skuFactor / float64(newCapacity))
		return projected
	}

	return domain.UtilizationSample{
		CPUAvg: scale(current.CPUAvg),
		CPUMax: scale(current.CPUMax),
		MemAvg: scale(current.MemAvg),
		MemMax: scale(current.MemMax),
	}.Clamped()
}
