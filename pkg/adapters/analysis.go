package adapters

import (
	"github.com/de-tools/rightsize/pkg/models/api"
	"github.com/de-tools/rightsize/pkg/models/domain"
)

func MapResourceUsageApiToDomain(r api.ResourceUsage) domain.ResourceUsage {
	return domain.ResourceUsage{
		Config: domain.ResourceConfiguration{
			ID:        r.ID,
			Name:      r.Name,
			Tier:      r.Tier,
			SKU:       r.SKU,
			Capacity:  r.Capacity,
			Location:  r.Location,
			Workloads: r.Workloads,
		},
		Utilization: MapUtilizationApiToDomain(r.Utilization),
	}
}

func MapUtilizationApiToDomain(u api.Utilization) domain.UtilizationSample {
	return domain.UtilizationSample{
		CPUAvg: u.CPUAvg,
		CPUMax: u.CPUMax,
		MemAvg: u.MemAvg,
		MemMax: u.MemMax,
	}
}

func MapUtilizationDomainToApi(u domain.UtilizationSample) api.Utilization {
	return api.Utilization{
		CPUAvg: u.CPUAvg,
		CPUMax: u.CPUMax,
		MemAvg: u.MemAvg,
		MemMax: u.MemMax,
	}
}

func MapOptionDomainToApi(o domain.OptimizationOption) api.Option {
	return api.Option{
		Kind: string(o.Kind),
		Configuration: api.Configuration{
			Tier:     o.Config.Tier,
			SKU:      o.Config.SKU,
			Capacity: o.Config.Capacity,
		},
		Description:    o.Description,
		Risk:           o.Risk.String(),
		Confidence:     o.Confidence,
		Projected:      MapUtilizationDomainToApi(o.Projected),
		MonthlyCost:    o.MonthlyCost,
		MonthlySavings: o.MonthlySavings,
		EstimatedCost:  o.EstimatedCost,
	}
}

func MapRecommendationDomainToApi(r domain.Recommendation) api.Recommendation {
	res := api.Recommendation{
		ResourceID: r.Resource.ID,
		Resource:   r.Resource.Name,
		Current:    MapUtilizationDomainToApi(r.Utilization),
		Options:    make([]api.Option, 0, len(r.Options)),
		Selected:   MapOptionDomainToApi(r.Selected),
		Strategy:   string(r.Strategy),
	}
	for _, o := range r.Options {
		res.Options = append(res.Options, MapOptionDomainToApi(o))
	}
	return res
}

func MapFindingDomainToApi(f domain.Finding) api.Finding {
	res := api.Finding{
		Severity:       f.Severity.String(),
		SeverityCode:   f.Severity.Code(),
		MonthlySavings: f.MonthlySavings,
		AnnualSavings:  f.AnnualSavings,
		Members:        make([]api.FindingMember, 0, len(f.Members)),
		Summary:        f.Summary,
	}
	for _, m := range f.Members {
		res.Members = append(res.Members, api.FindingMember{
			ResourceID:     m.ResourceID,
			Resource:       m.ResourceName,
			Action:         m.Action,
			MonthlySavings: m.MonthlySavings,
		})
	}
	return res
}

func MapReportDomainToApi(r domain.AnalysisReport) api.AnalyzeResponse {
	res := api.AnalyzeResponse{
		Strategy:         string(r.Policy.Strategy),
		GeneratedAt:      r.GeneratedAt,
		Recommendations:  make([]api.Recommendation, 0, len(r.Recommendations)),
		Findings:         make([]api.Finding, 0, len(r.Findings)),
		EstimatedPricing: r.EstimatedPricing,
	}
	for _, rec := range r.Recommendations {
		res.Recommendations = append(res.Recommendations, MapRecommendationDomainToApi(rec))
	}
	for _, c := range r.Cleanup {
		res.Cleanup = append(res.Cleanup, api.CleanupCandidate{
			ResourceID:  c.Resource.ID,
			Resource:    c.Resource.Name,
			MonthlyCost: c.MonthlyCost,
		})
	}
	for _, f := range r.Findings {
		res.Findings = append(res.Findings, MapFindingDomainToApi(f))
	}
	return res
}
