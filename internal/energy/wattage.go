package energy

import "strings"

// tierWatts maps app service plan tier labels to nominal draw in watts.
// Values approximate the VM-equivalent size behind each plan tier.
var tierWatts = map[string]float64{
	// Basic
	"B1": 35.0,
	"B2": 60.0,
	"B3": 110.0,
	// Standard
	"S1": 45.0,
	"S2": 85.0,
	"S3": 160.0,
	// Premium v2
	"P1V2": 65.0,
	"P2V2": 125.0,
	"P3V2": 240.0,
	// Premium v3
	"P1V3": 90.0,
	"P2V3": 175.0,
	"P3V3": 340.0,
	// Isolated
	"I1": 75.0,
	"I2": 145.0,
	"I3": 280.0,
	// Free / shared / consumption
	"F1": 20.0,
	"D1": 30.0,
	"Y1": 18.0,
	// Generic labels when only the plan family is known
	"BASIC":    35.0,
	"STANDARD": 85.0,
	"PREMIUM":  175.0,
}

// TierWatts returns the nominal draw for a compute tier label. Unknown
// labels fall back to a size heuristic on the digits in the label, and
// ultimately to DefaultTierWatts.
func TierWatts(tier string) float64 {
	key := strings.ToUpper(strings.TrimSpace(tier))
	if key == "" {
		return DefaultTierWatts
	}
	if watts, ok := tierWatts[key]; ok {
		return watts
	}
	return sizeHeuristicWatts(key)
}

// sizeHeuristicWatts guesses draw from the core-count digit embedded in
// a tier token. Larger digits first so "P8" beats the "8" inside other
// tokens consistently.
func sizeHeuristicWatts(tier string) float64 {
	switch {
	case strings.Contains(tier, "8"):
		return 320.0
	case strings.Contains(tier, "4"):
		return 170.0
	case strings.Contains(tier, "2"):
		return 120.0
	case strings.Contains(tier, "1"):
		return 60.0
	default:
		return DefaultTierWatts
	}
}

// DatabaseTierWatts returns the nominal draw for a database tier label.
// Matching is case-insensitive and tolerant of SKU-style labels: a
// label starting with P maps to Premium, S to Standard, B to Basic.
// Unresolvable labels default to Standard.
func DatabaseTierWatts(tier string) float64 {
	key := strings.ToLower(strings.TrimSpace(tier))
	if key == "" {
		return DefaultDatabaseWatts
	}
	for name, watts := range databaseTierWatts {
		if strings.Contains(key, name) {
			return watts
		}
	}
	switch key[0] {
	case 'p':
		return databaseTierWatts["premium"]
	case 's':
		return databaseTierWatts["standard"]
	case 'b':
		return databaseTierWatts["basic"]
	}
	return DefaultDatabaseWatts
}
