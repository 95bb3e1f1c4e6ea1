// Package storage persists assembled energy reports. Persistence is
// fire-and-forget relative to the HTTP response: failures are logged,
// never surfaced to the caller, and never retried synchronously.
package storage

import (
	"context"
	"time"

	json "github.com/goccy/go-json"

	"github.com/findajay/energy-intelligence/internal/report"
)

// ReportRecord is the persisted shape of one report. The detail
// breakdown is serialized as a JSON string rather than nested fields
// because the target store is a flat wide-column medium with no native
// map type.
type ReportRecord struct {
	PartitionKey       string    `json:"partitionKey"` // generation date, yyyy-mm-dd
	RowID              string    `json:"rowId"`
	GeneratedAt        time.Time `json:"generatedAt"`
	Region             string    `json:"region"`
	KilowattHours      float64   `json:"kilowattHours"`
	CarbonKg           float64   `json:"carbonKg"`
	UtilizationPercent float64   `json:"utilizationPercentage"`
	DetailsJSON        string    `json:"detailsJson"`
	WindowStart        time.Time `json:"windowStart"`
	WindowEnd          time.Time `json:"windowEnd"`
}

// NewRecord converts an assembled report into its persisted shape.
func NewRecord(rep *report.Report, generatedAt time.Time) (ReportRecord, error) {
	details, err := json.Marshal(rep.Details)
	if err != nil {
		return ReportRecord{}, err
	}
	return ReportRecord{
		PartitionKey:       generatedAt.UTC().Format("2006-01-02"),
		RowID:              rep.ReportID,
		GeneratedAt:        generatedAt.UTC(),
		Region:             rep.Region,
		KilowattHours:      rep.KilowattHours,
		CarbonKg:           rep.CarbonKg,
		UtilizationPercent: rep.UtilizationPercent,
		DetailsJSON:        string(details),
		WindowStart:        rep.Window.Start,
		WindowEnd:          rep.Window.End,
	}, nil
}

// ReportStore persists and queries report records.
type ReportStore interface {
	Save(ctx context.Context, record ReportRecord) error
	// History returns records generated within [start, end], oldest
	// first.
	History(ctx context.Context, start, end time.Time) ([]ReportRecord, error)
}

// Sink accepts assembled records for persistence. Submit must not
// block the caller on storage latency.
type Sink interface {
	Submit(record ReportRecord)
}
