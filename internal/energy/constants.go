package energy

const (
	// DefaultTierWatts is the fallback draw for an unknown compute tier.
	// Chosen to represent a generic mid-size tier.
	DefaultTierWatts = 85.0

	// DefaultUtilizationPercent is assumed when the caller supplies no
	// utilization and no estimator is configured.
	DefaultUtilizationPercent = 50.0

	// DegradedUtilizationPercent is the fixed utilization used by the
	// whole-subscription fallback path, which skips tier resolution.
	DegradedUtilizationPercent = 45.0

	// FunctionAppBaselineWatts is the always-on draw of a function app
	// runtime, independent of load.
	FunctionAppBaselineWatts = 20.0

	// FunctionAppExecutionWatts is the additional draw at 100%
	// utilization; scaled linearly with utilization.
	FunctionAppExecutionWatts = 50.0

	// ServiceBusBaselineWatts is the idle draw of a service bus
	// namespace attached to a microservice.
	ServiceBusBaselineWatts = 15.0

	// ServiceBusProcessingWatts is the utilization-scaled processing
	// draw of a service bus namespace.
	ServiceBusProcessingWatts = 25.0

	// DefaultDatabaseWatts is the fallback draw for a database whose
	// tier could not be resolved (treated as Standard).
	DefaultDatabaseWatts = 75.0

	// DefaultSharedWatts is the fallback draw for a shared resource of
	// an unlisted category.
	DefaultSharedWatts = 40.0
)

// databaseTierWatts maps database tier labels to nominal draw.
var databaseTierWatts = map[string]float64{
	"basic":    30.0,
	"standard": 75.0,
	"premium":  150.0,
}

// sharedCategoryWatts is the coarse per-category draw for shared
// infrastructure resources, which carry no resolvable SKU.
var sharedCategoryWatts = map[Category]float64{
	CategoryStorage:        25.0,
	CategoryRedis:          45.0,
	CategoryKeyVault:       5.0,
	CategoryMonitoring:     15.0,
	CategoryServiceBus:     30.0,
	CategoryDatabase:       120.0,
	CategoryCDN:            20.0,
	CategoryLoadBalancer:   35.0,
	CategoryNetwork:        10.0,
	CategoryNSG:            8.0,
	CategoryPublicIP:       3.0,
	CategoryTrafficManager: 12.0,
}

// SharedWatts returns the nominal draw for a shared-infrastructure
// category, or DefaultSharedWatts if the category is not listed.
func SharedWatts(category Category) float64 {
	if watts, ok := sharedCategoryWatts[category]; ok {
		return watts
	}
	return DefaultSharedWatts
}
