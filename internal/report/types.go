// Package report aggregates per-resource energy into the externally
// visible energy report: labeled breakdowns, totals, trend series, and
// optimization recommendations.
package report

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/findajay/energy-intelligence/internal/energy"
)

// MicroserviceGroup names a microservice and its resource identifiers
// by category. A group must carry an app-service reference to be
// energy-analyzable in the platform path.
type MicroserviceGroup struct {
	Name           string   `json:"name"`
	AppServiceID   string   `json:"appServiceResourceId"`
	FunctionAppIDs []string `json:"functionAppResourceIds,omitempty"`
	ServiceBusIDs  []string `json:"serviceBusResourceIds,omitempty"`
	DatabaseIDs    []string `json:"databaseResourceIds,omitempty"`
}

// Request is one analysis request after window defaulting.
type Request struct {
	Microservices       []MicroserviceGroup
	SharedResourceIDs   []string
	Window              energy.Window
	UtilizationPercent  float64 // 0 means derive heuristically
	AnalyzeAllResources bool
}

// Breakdown is the labeled kWh detail map. Keys are unique within one
// report; insertion order is preserved for stable display and carries
// no semantic weight. Values are rounded to two decimals at insertion.
type Breakdown struct {
	labels []string
	values map[string]float64
}

// NewBreakdown creates an empty breakdown.
func NewBreakdown() *Breakdown {
	return &Breakdown{values: make(map[string]float64)}
}

// Add inserts a label with its kWh value, rounded to two decimals.
// Re-adding an existing label accumulates into it without changing its
// position.
func (b *Breakdown) Add(label string, kilowattHours float64) {
	if _, ok := b.values[label]; !ok {
		b.labels = append(b.labels, label)
	}
	b.values[label] = energy.Round2(b.values[label] + kilowattHours)
}

// Get returns the value for a label.
func (b *Breakdown) Get(label string) (float64, bool) {
	v, ok := b.values[label]
	return v, ok
}

// Labels returns the labels in insertion order.
func (b *Breakdown) Labels() []string {
	return append([]string(nil), b.labels...)
}

// Len returns the number of labels.
func (b *Breakdown) Len() int {
	return len(b.labels)
}

// MarshalJSON writes the breakdown as a JSON object with keys in
// insertion order.
func (b *Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range b.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(b.values[label], 'f', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores a breakdown from a JSON object. Key order is
// not recoverable from a map decode, so labels sort by the decoder's
// iteration; only values matter for restored reports.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	values := make(map[string]float64)
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	b.values = values
	b.labels = b.labels[:0]
	for label := range values {
		b.labels = append(b.labels, label)
	}
	return nil
}

// Report is the assembled energy report for one analysis request.
// Constructed fresh per request and never mutated after assembly.
type Report struct {
	ReportID           string         `json:"reportId"`
	KilowattHours      float64        `json:"kilowattHours"`
	CarbonKg           float64        `json:"carbonKg"`
	UtilizationPercent float64        `json:"utilizationPercentage"`
	Details            *Breakdown     `json:"details"`
	Window             energy.Window  `json:"window"`
	Region             string         `json:"region"`
	UsedMockData       bool           `json:"usedMockData,omitempty"`
	Warnings           []string       `json:"warnings,omitempty"`
}

// MicroserviceNames returns the group names of a request, for trend
// share splitting.
func (r Request) MicroserviceNames() []string {
	names := make([]string, 0, len(r.Microservices))
	for _, group := range r.Microservices {
		names = append(names, group.Name)
	}
	return names
}
