package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findajay/energy-intelligence/internal/energy"
)

func TestAssemble(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rep := &Report{
		ReportID:           "report-1",
		KilowattHours:      1.74,
		CarbonKg:           0.42,
		UtilizationPercent: 50,
		Details:            NewBreakdown(),
		Window:             energy.Window{Start: start, End: start.AddDate(0, 0, 30)},
		Region:             "westeurope",
	}

	payload := Assemble(rep, []string{"PaymentService", "SessionsService"})

	assert.Equal(t, "report-1", payload.ReportID)
	assert.Same(t, rep, payload.EnergyReport)

	require.NotEmpty(t, payload.Trends.Daily)
	assert.Len(t, payload.Trends.Daily, 30)
	require.NotEmpty(t, payload.Trends.Daily[0].MicroserviceShares)
	assert.Contains(t, payload.Trends.Daily[0].MicroserviceShares, "PaymentService")

	require.Len(t, payload.OptimizationRecommendations, 4)
}

func TestAssemble_LowUtilizationAddsScaleDown(t *testing.T) {
	rep := &Report{
		ReportID:           "report-2",
		KilowattHours:      2.0,
		UtilizationPercent: 30,
		Details:            NewBreakdown(),
		Window:             energy.DefaultWindow(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)),
	}

	payload := Assemble(rep, nil)
	assert.Len(t, payload.OptimizationRecommendations, 5)
}
