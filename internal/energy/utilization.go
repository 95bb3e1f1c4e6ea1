package energy

import "time"

const (
	// derivedUtilizationFloor and derivedUtilizationCeiling bound any
	// heuristically derived utilization percentage.
	derivedUtilizationFloor   = 20.0
	derivedUtilizationCeiling = 85.0
)

// UtilizationEstimator derives a utilization percentage when the caller
// does not supply one. It is a replaceable default policy, not a
// validated model; implementations may use whatever signal they have.
type UtilizationEstimator interface {
	// EstimatePercent returns a utilization percentage in [20, 85]
	// for a platform with resourceCount analyzable resources at the
	// given instant.
	EstimatePercent(resourceCount int, at time.Time) float64
}

// HeuristicEstimator is the default UtilizationEstimator: a
// resource-count-weighted score scaled by an hour-of-day multiplier.
// It produces plausible demo numbers and nothing more.
type HeuristicEstimator struct{}

// EstimatePercent implements UtilizationEstimator.
func (HeuristicEstimator) EstimatePercent(resourceCount int, at time.Time) float64 {
	score := 25.0 + float64(resourceCount)*3.0

	switch hour := at.Hour(); {
	case hour >= 9 && hour < 18:
		score *= 1.25
	case hour >= 18 && hour < 23:
		score *= 1.0
	default:
		score *= 0.7
	}

	return Clamp(score, derivedUtilizationFloor, derivedUtilizationCeiling)
}

// FixedEstimator always returns the same percentage, clamped to
// [0, 100]. Useful for tests and for the degraded analysis path.
type FixedEstimator struct {
	Percent float64
}

// EstimatePercent implements UtilizationEstimator.
func (f FixedEstimator) EstimatePercent(int, time.Time) float64 {
	return Clamp(f.Percent, 0, 100)
}

// Clamp restricts a value to the range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
