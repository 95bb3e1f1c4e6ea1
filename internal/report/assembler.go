package report

import "github.com/findajay/energy-intelligence/internal/energy"

// Payload is the externally visible analysis response: the report,
// its fabricated trend series, and the recommendation set.
type Payload struct {
	ReportID                    string             `json:"reportId"`
	EnergyReport                *Report            `json:"energyReport"`
	Trends                      energy.TrendSeries `json:"trends"`
	OptimizationRecommendations []Recommendation   `json:"optimizationRecommendations"`
}

// Assemble packages an aggregated report into the response payload.
// Pure transformation of already-computed values; no I/O.
func Assemble(rep *Report, microserviceNames []string) Payload {
	return Payload{
		ReportID:     rep.ReportID,
		EnergyReport: rep,
		Trends:       energy.ProjectTrends(rep.Window, rep.KilowattHours, microserviceNames),
		OptimizationRecommendations: BuildRecommendations(
			rep.KilowattHours, rep.CarbonKg, rep.UtilizationPercent),
	}
}
