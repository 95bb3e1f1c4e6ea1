package energy

import "time"

// ComputeKilowattHours converts a classified resource, an analysis
// window, and a utilization fraction into estimated kilowatt-hours.
//
// The core formula is watts × hours × utilization / 1000. Categories
// without a resolvable SKU use fixed profiles instead of the tier
// table; FunctionApp and ServiceBus fold utilization into the wattage
// term (baseline + scale × utilization) and are not multiplied by
// utilization again.
//
// If createdAt is known and falls inside the window, the billed hours
// start at creation rather than at the window start: a resource is not
// charged energy for time it did not exist.
//
// utilization is a fraction in [0, 1]. The function never fails; an
// unknown category is treated as shared infrastructure.
func ComputeKilowattHours(category Category, tier string, window Window, utilization float64, createdAt *time.Time) float64 {
	hours := effectiveHours(window, createdAt)

	switch category {
	case CategoryAppService:
		return TierWatts(tier) * hours * utilization / 1000.0
	case CategoryFunctionApp:
		watts := FunctionAppBaselineWatts + FunctionAppExecutionWatts*utilization
		return watts * hours / 1000.0
	case CategoryServiceBus:
		watts := ServiceBusBaselineWatts + ServiceBusProcessingWatts*utilization
		return watts * hours / 1000.0
	case CategoryDatabase:
		return DatabaseTierWatts(tier) * hours * utilization / 1000.0
	default:
		return SharedWatts(category) * hours * utilization / 1000.0
	}
}

// ComputeSharedKilowattHours estimates energy for a shared
// infrastructure resource using the coarse per-category table. Shared
// resources always use the flat table, so a shared service bus or
// database is costed by category constant, not by the microservice
// profile or tier path.
func ComputeSharedKilowattHours(category Category, window Window, utilization float64) float64 {
	return SharedWatts(category) * window.Hours() * utilization / 1000.0
}

// effectiveHours returns the hours to bill inside the window. A
// creation date inside the window clips the span; a creation date
// outside it (or unknown) bills the full clamped window.
func effectiveHours(window Window, createdAt *time.Time) float64 {
	if createdAt != nil && createdAt.After(window.Start) && createdAt.Before(window.End) {
		hours := window.End.Sub(*createdAt).Hours()
		if hours < 0 {
			return 0
		}
		return hours
	}
	return window.Hours()
}
