package energy

import "strings"

// GridIntensityFactors maps region names to grid carbon intensity in
// kg CO2 per kWh. One region is configured per report; there is no
// per-resource region resolution in this model.
var GridIntensityFactors = map[string]float64{
	"eastus":             0.38,
	"eastus2":            0.38,
	"centralus":          0.41,
	"northcentralus":     0.43,
	"southcentralus":     0.40,
	"westus":             0.25,
	"westus2":            0.20,
	"westus3":            0.21,
	"canadacentral":      0.12,
	"canadaeast":         0.015,
	"brazilsouth":        0.074,
	"northeurope":        0.28,
	"westeurope":         0.24,
	"uksouth":            0.23,
	"ukwest":             0.23,
	"francecentral":      0.056,
	"germanywestcentral": 0.34,
	"swedencentral":      0.012,
	"norwayeast":         0.018,
	"switzerlandnorth":   0.016,
	"eastasia":           0.71,
	"southeastasia":      0.41,
	"japaneast":          0.46,
	"japanwest":          0.46,
	"australiaeast":      0.66,
	"australiasoutheast": 0.66,
	"centralindia":       0.71,
	"southindia":         0.71,
	"uaenorth":           0.41,
	"southafricanorth":   0.89,
}

// DefaultGridIntensity is the global-average factor used for regions
// not present in GridIntensityFactors.
const DefaultGridIntensity = 0.30

// GridIntensity returns the carbon intensity for a region in kg CO2
// per kWh, falling back to the global average for unknown regions.
func GridIntensity(region string) float64 {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(region), " ", ""))
	if factor, ok := GridIntensityFactors[key]; ok {
		return factor
	}
	return DefaultGridIntensity
}

// CarbonKg converts kilowatt-hours to kilograms of CO2 for a region.
func CarbonKg(kilowattHours float64, region string) float64 {
	return kilowattHours * GridIntensity(region)
}
