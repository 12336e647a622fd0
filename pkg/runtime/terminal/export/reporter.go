package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/rightsize/pkg/adapters"
	"github.com/de-tools/rightsize/pkg/models/domain"
	"github.com/de-tools/rightsize/pkg/services/strategy"
)

type TableConfig struct {
	KindWidth       int
	ConfigWidth     int
	RiskWidth       int
	ConfidenceWidth int
	ProjectedWidth  int
	MoneyWidth      int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		KindWidth:       14,
		ConfigWidth:     24,
		RiskWidth:       6,
		ConfidenceWidth: 10,
		ProjectedWidth:  22,
		MoneyWidth:      12,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// Handle renders the plain-text summary: configuration banner, per-resource
// recommendations, the zero-utilization cleanup list and the closing notes.
func (c *Reporter) Handle(report *domain.AnalysisReport) error {
	_, profile := strategy.ProfileFor(report.Policy.Strategy)

	funcMap := template.FuncMap{
		"formatOption": func(o domain.OptimizationOption) string {
			selectedCfg := fmt.Sprintf("%s/%s x%d", o.Config.Tier, o.Config.SKU, o.Config.Capacity)
			projected := fmt.Sprintf("cpu %.0f%%, mem %.0f%%", o.Projected.CPUMax, o.Projected.MemMax)
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %*d%% | %-*s | %*.2f | %*.2f |",
				c.config.KindWidth, o.Kind,
				c.config.ConfigWidth, selectedCfg,
				c.config.RiskWidth, o.Risk,
				c.config.ConfidenceWidth-1, o.Confidence,
				c.config.ProjectedWidth, projected,
				c.config.MoneyWidth, o.MonthlyCost,
				c.config.MoneyWidth, o.MonthlySavings)
		},
		"optionHeader": func() string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s | %-*s | %*s | %*s |",
				c.config.KindWidth, "Option",
				c.config.ConfigWidth, "Configuration",
				c.config.RiskWidth, "Risk",
				c.config.ConfidenceWidth, "Confidence",
				c.config.ProjectedWidth, "Projected max",
				c.config.MoneyWidth, "Cost/mo",
				c.config.MoneyWidth, "Savings/mo")
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.KindWidth+2),
				strings.Repeat("-", c.config.ConfigWidth+2),
				strings.Repeat("-", c.config.RiskWidth+2),
				strings.Repeat("-", c.config.ConfidenceWidth+2),
				strings.Repeat("-", c.config.ProjectedWidth+2),
				strings.Repeat("-", c.config.MoneyWidth+2),
				strings.Repeat("-", c.config.MoneyWidth+2))
		},
		"upper": strings.ToUpper,
	}

	tmpl := `
Capacity Rightsizing Report ({{.Report.GeneratedAt.Format "2006-01-02 15:04 MST"}})

Strategy: {{.Report.Policy.Strategy}} (risk ceiling {{.Profile.RiskCeiling}}, projected max cpu {{printf "%.0f" .Profile.MaxProjectedCPU}}%, mem {{printf "%.0f" .Profile.MaxProjectedMemory}}%)
Savings thresholds: medium {{printf "%.2f" .Report.Policy.MediumSavingsThreshold}}/mo, high {{printf "%.2f" .Report.Policy.HighSavingsThreshold}}/mo
Resources analyzed: {{.Analyzed}}
Total potential savings: {{printf "%.2f" .Report.TotalMonthlySavings}}/mo
{{range .Report.Recommendations}}
=== {{.Resource.Name}} ({{.Resource.Tier}}/{{.Resource.SKU}} x{{.Resource.Capacity}}{{if .Resource.Location}}, {{.Resource.Location}}{{end}}) ===
Current utilization: cpu avg {{printf "%.0f" .Utilization.CPUAvg}}% max {{printf "%.0f" .Utilization.CPUMax}}%, mem avg {{printf "%.0f" .Utilization.MemAvg}}% max {{printf "%.0f" .Utilization.MemMax}}%

{{separator}}
{{optionHeader}}
{{separator}}
{{range .Options}}{{formatOption .}}
{{end}}{{separator}}
Selected: {{.Selected.Description}} ({{.Selected.Risk}} risk, confidence {{.Selected.Confidence}}%, savings {{printf "%.2f" .Selected.MonthlySavings}}/mo)
{{end}}{{if .Report.Cleanup}}
Idle resources (zero workloads):
{{range .Report.Cleanup}} - {{.Resource.Name}} ({{.Resource.Tier}}/{{.Resource.SKU}} x{{.Resource.Capacity}}): decommission to recover {{printf "%.2f" .MonthlyCost}}/mo{{if .EstimatedCost}} (estimated){{end}}
{{end}}{{end}}{{if .Report.Findings}}
Findings:
{{range .Report.Findings}} [{{upper .Severity.String}}] (code {{.Severity.Code}}) {{.Summary}}
{{end}}{{end}}
Notes:
 - Projected utilization assumes load scales inversely with provisioned
   capacity. It is a linear approximation, not a measured value.
{{if .Report.EstimatedPricing}} - One or more SKUs were missing from the pricing catalog; cost totals are
   best-effort estimates.
{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	data := struct {
		Report   *domain.AnalysisReport
		Profile  strategy.Profile
		Analyzed int
	}{
		Report:   report,
		Profile:  profile,
		Analyzed: len(report.Recommendations) + len(report.Cleanup),
	}
	return t.Execute(c.writer, data)
}

// ExportJSON writes the machine-readable report in one serialization step at
// the end of the run.
func (c *Reporter) ExportJSON(report *domain.AnalysisReport, path string) error {
	response := adapters.MapReportDomainToApi(*report)

	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}
