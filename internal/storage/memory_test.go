package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findajay/energy-intelligence/internal/energy"
	"github.com/findajay/energy-intelligence/internal/report"
)

func recordAt(id string, generatedAt time.Time) ReportRecord {
	return ReportRecord{
		PartitionKey: generatedAt.UTC().Format("2006-01-02"),
		RowID:        id,
		GeneratedAt:  generatedAt,
	}
}

func TestMemoryStore_HistoryFiltersAndSorts(t *testing.T) {
	store := NewMemoryStore()
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	// Saved out of order on purpose.
	require.NoError(t, store.Save(context.Background(), recordAt("c", base.AddDate(0, 0, 2))))
	require.NoError(t, store.Save(context.Background(), recordAt("a", base)))
	require.NoError(t, store.Save(context.Background(), recordAt("b", base.AddDate(0, 0, 1))))
	require.NoError(t, store.Save(context.Background(), recordAt("out", base.AddDate(0, 0, 10))))

	records, err := store.History(context.Background(), base, base.AddDate(0, 0, 2))
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "a", records[0].RowID)
	assert.Equal(t, "b", records[1].RowID)
	assert.Equal(t, "c", records[2].RowID)
	assert.Equal(t, 4, store.Count())
}

func TestMemoryStore_HistoryBoundsInclusive(t *testing.T) {
	store := NewMemoryStore()
	at := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(context.Background(), recordAt("edge", at)))

	records, err := store.History(context.Background(), at, at)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestMemoryStore_EmptyHistory(t *testing.T) {
	store := NewMemoryStore()
	records, err := store.History(context.Background(), time.Now().AddDate(0, 0, -1), time.Now())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNewRecord(t *testing.T) {
	details := report.NewBreakdown()
	details.Add("PaymentService_AppService", 0.42)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rep := &report.Report{
		ReportID:           "report-1",
		KilowattHours:      1.74,
		CarbonKg:           0.42,
		UtilizationPercent: 50,
		Details:            details,
		Window:             energy.Window{Start: start, End: start.AddDate(0, 0, 30)},
		Region:             "westeurope",
	}

	generatedAt := time.Date(2025, 3, 31, 15, 4, 5, 0, time.UTC)
	record, err := NewRecord(rep, generatedAt)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-31", record.PartitionKey)
	assert.Equal(t, "report-1", record.RowID)
	assert.Equal(t, 1.74, record.KilowattHours)
	assert.Equal(t, "westeurope", record.Region)
	assert.JSONEq(t, `{"PaymentService_AppService":0.42}`, record.DetailsJSON)
	assert.Equal(t, start, record.WindowStart)
}
