package report

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/findajay/energy-intelligence/internal/energy"
)

// Confidence levels per recommendation kind. Right-sizing and
// scale-down are mechanical changes; region migration and serverless
// shifts need workload validation.
const (
	confidenceHigh   = 0.9
	confidenceMedium = 0.8
	confidenceLow    = 0.6

	// Statically proportioned savings figures per recommendation.
	regionMigrationSavingsPct = 30.0
	rightSizingSavingsPct     = 20.0
	autoscalingSavingsPct     = 25.0
	serverlessSavingsPct      = 15.0
	scaleDownSavingsPct       = 20.0

	// scaleDownUtilizationThreshold gates the scale-down suggestion.
	scaleDownUtilizationThreshold = 50.0
)

// Recommendation is one canned optimization suggestion. Savings are
// illustrative estimates proportioned from the report total, not
// measured outcomes.
type Recommendation struct {
	ID                       string   `json:"id"`
	Action                   string   `json:"action"`
	Description              string   `json:"description"`
	Reasoning                []string `json:"reasoning,omitempty"`
	SavingsPercent           float64  `json:"savingsPercent"`
	PotentialSavingsKwh      float64  `json:"potentialSavingsKilowattHours"`
	PotentialCarbonReduction float64  `json:"potentialCarbonReductionKg"`
	Confidence               float64  `json:"confidenceScore"`
}

// BuildRecommendations produces the fixed recommendation set for a
// report: region migration, right-sizing, autoscaling, serverless
// shift, and a scale-down suggestion when utilization is below 50%.
// Deterministic apart from the generated ids.
func BuildRecommendations(totalKwh, totalCarbonKg, utilizationPercent float64) []Recommendation {
	build := func(action, description string, reasoning []string, savingsPct, confidence float64) Recommendation {
		return Recommendation{
			ID:                       uuid.New().String(),
			Action:                   action,
			Description:              description,
			Reasoning:                reasoning,
			SavingsPercent:           savingsPct,
			PotentialSavingsKwh:      energy.Round2(totalKwh * savingsPct / 100.0),
			PotentialCarbonReduction: energy.Round2(totalCarbonKg * savingsPct / 100.0),
			Confidence:               confidence,
		}
	}

	recommendations := []Recommendation{
		build("region_migration",
			"Migrate workloads to a lower-carbon region",
			[]string{
				"Grid carbon intensity varies by more than an order of magnitude between regions",
				"Requires latency and data-residency validation",
			},
			regionMigrationSavingsPct, confidenceLow),
		build("right_sizing",
			"Right-size over-provisioned compute tiers",
			[]string{
				"Tier wattage scales with plan size",
				"Drop-in change for plans with headroom",
			},
			rightSizingSavingsPct, confidenceHigh),
		build("autoscaling",
			"Enable autoscaling to match capacity to demand",
			[]string{
				"Idle capacity draws near-constant power",
			},
			autoscalingSavingsPct, confidenceMedium),
		build("serverless_shift",
			"Shift bursty workloads to consumption-plan functions",
			[]string{
				"Consumption plans bill and draw only during execution",
				"Requires workload suitability validation",
			},
			serverlessSavingsPct, confidenceLow),
	}

	if utilizationPercent < scaleDownUtilizationThreshold {
		recommendations = append(recommendations, build("scale_down",
			fmt.Sprintf("Scale down: platform utilization is %.0f%%", utilizationPercent),
			[]string{
				"Sustained utilization below 50% indicates over-provisioning",
			},
			scaleDownSavingsPct, confidenceHigh))
	}

	return recommendations
}
