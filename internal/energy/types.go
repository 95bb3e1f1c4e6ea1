// Package energy provides the energy and carbon estimation model for
// cloud resources: tier wattage tables, grid carbon intensity factors,
// the kWh conversion formula, and trend projection.
//
// The model is heuristic by design. Wattage figures are nominal
// per-tier draw assumptions, not telemetry, and every output is an
// estimate suitable for relative comparison rather than billing.
package energy

import (
	"math"
	"time"
)

// Category is the semantic classification of a cloud resource.
type Category string

const (
	CategoryAppService     Category = "AppService"
	CategoryFunctionApp    Category = "FunctionApp"
	CategoryServiceBus     Category = "ServiceBus"
	CategoryDatabase       Category = "Database"
	CategoryStorage        Category = "Storage"
	CategoryRedis          Category = "Redis"
	CategoryKeyVault       Category = "KeyVault"
	CategoryMonitoring     Category = "Monitoring"
	CategoryCDN            Category = "CDN"
	CategoryLoadBalancer   Category = "LoadBalancer"
	CategoryNetwork        Category = "Network"
	CategoryNSG            Category = "NSG"
	CategoryPublicIP       Category = "PublicIP"
	CategoryTrafficManager Category = "TrafficManager"
	CategoryOther          Category = "Other"
)

// Window is the analysis time window.
type Window struct {
	Start time.Time `json:"startTime"`
	End   time.Time `json:"endTime"`
}

// Days returns the elapsed days of the window, clamped to a minimum of
// one day so downstream per-day division is always well defined. A
// window with End before Start is treated the same as an empty window.
func (w Window) Days() float64 {
	days := w.End.Sub(w.Start).Hours() / 24.0
	if days < 1 {
		return 1
	}
	return days
}

// Hours returns the elapsed hours of the (clamped) window.
func (w Window) Hours() float64 {
	return w.Days() * 24.0
}

// DefaultWindow returns a trailing 30-day window ending at now.
// Callers with missing request bounds default to this rather than fail.
func DefaultWindow(now time.Time) Window {
	return Window{Start: now.AddDate(0, 0, -30), End: now}
}

// Round2 rounds v to two decimal places. Per-label detail values and
// report totals are rounded at insertion; intermediate sums are not.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
