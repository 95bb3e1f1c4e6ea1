package energy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectTrends_Deterministic(t *testing.T) {
	w := Window{
		Start: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	}
	names := []string{"PaymentService", "SessionsService"}

	first := ProjectTrends(w, 12.34, names)
	second := ProjectTrends(w, 12.34, names)

	assert.Equal(t, first, second, "identical inputs must yield identical series")
}

func TestProjectTrends_SeriesLengthCaps(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	w := Window{Start: start, End: start.AddDate(0, 0, 400)}

	series := ProjectTrends(w, 500.0, nil)

	assert.Len(t, series.Daily, 90, "daily series is sampled down to its cap")
	assert.Len(t, series.Weekly, 52)
	assert.Len(t, series.Monthly, 14, "ceil(400/30) months")
	assert.Len(t, series.Forecast, 7)
}

func TestProjectTrends_ShortWindowPadsDaily(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	w := Window{Start: start, End: start.AddDate(0, 0, 2)}

	series := ProjectTrends(w, 3.0, nil)

	assert.Len(t, series.Daily, 7, "daily series never drops below its minimum")
	assert.Len(t, series.Weekly, 1)
	assert.Len(t, series.Monthly, 1)
}

func TestProjectTrends_EqualMicroserviceShares(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	w := Window{Start: start, End: start.AddDate(0, 0, 10)}
	names := []string{"a", "b", "c"}

	series := ProjectTrends(w, 9.0, names)

	require.NotEmpty(t, series.Daily)
	for _, point := range series.Daily {
		require.Len(t, point.MicroserviceShares, 3)
		assert.Equal(t, point.MicroserviceShares["a"], point.MicroserviceShares["b"])
		assert.Equal(t, point.MicroserviceShares["b"], point.MicroserviceShares["c"])
	}
}

func TestProjectTrends_MonthlyAnchoredToFirstOfMonth(t *testing.T) {
	w := Window{
		Start: time.Date(2025, 1, 17, 9, 30, 0, 0, time.UTC),
		End:   time.Date(2025, 4, 17, 9, 30, 0, 0, time.UTC),
	}

	series := ProjectTrends(w, 30.0, nil)

	require.NotEmpty(t, series.Monthly)
	for i, point := range series.Monthly {
		assert.Equal(t, 1, point.Date.Day())
		assert.Equal(t, time.Month(1+i), point.Date.Month())
	}
}

func TestProjectTrends_ValuesNonNegative(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	w := Window{Start: start, End: start.AddDate(0, 0, 30)}

	series := ProjectTrends(w, 1.74, nil)
	for _, points := range [][]TrendPoint{series.Daily, series.Weekly, series.Monthly, series.Forecast} {
		for _, point := range points {
			assert.GreaterOrEqual(t, point.TotalKilowattHours, 0.0)
		}
	}
}

func TestLinearForecast(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	history := []TrendPoint{
		{Date: base, TotalKilowattHours: 1.0},
		{Date: base.AddDate(0, 0, 1), TotalKilowattHours: 1.5},
	}

	forecast := LinearForecast(history, 3)
	require.Len(t, forecast, 3)
	assert.Equal(t, 2.0, forecast[0].TotalKilowattHours)
	assert.Equal(t, 2.5, forecast[1].TotalKilowattHours)
	assert.Equal(t, 3.0, forecast[2].TotalKilowattHours)
	assert.Equal(t, base.AddDate(0, 0, 2), forecast[0].Date)
}

func TestLinearForecast_DecliningSeriesFloorsAtZero(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	history := []TrendPoint{
		{Date: base, TotalKilowattHours: 2.0},
		{Date: base.AddDate(0, 0, 1), TotalKilowattHours: 0.5},
	}

	forecast := LinearForecast(history, 3)
	require.Len(t, forecast, 3)
	assert.Equal(t, 0.0, forecast[1].TotalKilowattHours)
	assert.Equal(t, 0.0, forecast[2].TotalKilowattHours)
}

func TestLinearForecast_TooLittleHistory(t *testing.T) {
	assert.Nil(t, LinearForecast(nil, 7))
	assert.Nil(t, LinearForecast([]TrendPoint{{TotalKilowattHours: 1}}, 7))
}
