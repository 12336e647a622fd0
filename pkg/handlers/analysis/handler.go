package analysis

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/de-tools/rightsize/pkg/adapters"
	"github.com/de-tools/rightsize/pkg/models/api"
	"github.com/de-tools/rightsize/pkg/models/domain"
	"github.com/de-tools/rightsize/pkg/services/advisor"
	"github.com/de-tools/rightsize/pkg/services/strategy"
)

type Handler struct {
	advisor *advisor.Advisor
}

func NewHandler(adv *advisor.Advisor) *Handler {
	return &Handler{advisor: adv}
}

// Analyze runs one batch pass over the snapshot submitted in the request
// body and returns the full recommendation/finding set.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Resources) == 0 {
		http.Error(w, "snapshot contains no resources", http.StatusBadRequest)
		return
	}

	usages := make([]domain.ResourceUsage, 0, len(req.Resources))
	for _, res := range req.Resources {
		usages = append(usages, adapters.MapResourceUsageApiToDomain(res))
	}

	policy := domain.DefaultPolicy()
	if req.Strategy != "" {
		policy.Strategy = domain.Strategy(req.Strategy)
	}
	if req.Thresholds != nil {
		if req.Thresholds.Medium > 0 {
			policy.MediumSavingsThreshold = req.Thresholds.Medium
		}
		if req.Thresholds.High > 0 {
			policy.HighSavingsThreshold = req.Thresholds.High
		}
	}

	report, err := h.advisor.Analyze(ctx, usages, policy)
	if err != nil {
		logger.Error().Err(err).Msg("analysis failed")
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(report)); err != nil {
		logger.Error().Err(err).Msg("failed to encode analysis response")
	}
}

// Strategies lists the registered strategies and their filter profiles.
func (h *Handler) Strategies(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var response []api.StrategyProfile
	for _, name := range strategy.Strategies() {
		_, profile := strategy.ProfileFor(name)
		response = append(response, api.StrategyProfile{
			Name:               string(name),
			RiskCeiling:        profile.RiskCeiling.String(),
			MaxProjectedCPU:    profile.MaxProjectedCPU,
			MaxProjectedMemory: profile.MaxProjectedMemory,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode strategies")
	}
}
