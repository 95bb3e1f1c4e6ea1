package energy

import (
	"math"
	"time"
)

// Trend series length caps. Output size is bounded regardless of the
// requested window length.
const (
	maxDailyPoints   = 90
	minDailyPoints   = 7
	maxWeeklyPoints  = 52
	maxMonthlyPoints = 24

	forecastPoints = 7
)

// TrendPoint is one fabricated sample of the energy time series.
type TrendPoint struct {
	Date               time.Time          `json:"date"`
	TotalKilowattHours float64            `json:"totalKilowattHours"`
	MicroserviceShares map[string]float64 `json:"microserviceKilowattHours,omitempty"`
}

// TrendSeries holds the fabricated daily, weekly, and monthly series
// for a report, plus a naive linear forecast extension.
type TrendSeries struct {
	Daily    []TrendPoint `json:"daily"`
	Weekly   []TrendPoint `json:"weekly"`
	Monthly  []TrendPoint `json:"monthly"`
	Forecast []TrendPoint `json:"forecast,omitempty"`
}

// ProjectTrends fabricates a time series consistent with a single
// aggregate total. Dashboards need a series even though only one
// figure was computed; the variation is a smooth bounded oscillation,
// not noise, so identical inputs always produce identical output.
// Each point carries an equal split of its value across the supplied
// microservice names.
func ProjectTrends(window Window, totalKilowattHours float64, microserviceNames []string) TrendSeries {
	series := TrendSeries{
		Daily:   projectDaily(window, totalKilowattHours, microserviceNames),
		Weekly:  projectWeekly(window, totalKilowattHours),
		Monthly: projectMonthly(window, totalKilowattHours),
	}
	series.Forecast = LinearForecast(series.Daily, forecastPoints)
	return series
}

func projectDaily(window Window, total float64, names []string) []TrendPoint {
	windowDays := int(window.Days())

	points := windowDays
	if points < minDailyPoints {
		points = minDailyPoints
	}
	if points > maxDailyPoints {
		points = maxDailyPoints
	}

	// Long windows are sampled rather than truncated.
	stepDays := 1.0
	if windowDays > maxDailyPoints {
		stepDays = float64(windowDays) / float64(maxDailyPoints)
	}

	perPoint := total / float64(points)
	daily := make([]TrendPoint, 0, points)
	for i := 0; i < points; i++ {
		value := perPoint * (0.8 + 0.4*math.Sin(float64(i)*0.1))
		point := TrendPoint{
			Date:               window.Start.Add(time.Duration(float64(i) * stepDays * 24 * float64(time.Hour))),
			TotalKilowattHours: Round2(value),
		}
		if len(names) > 0 {
			share := Round2(value / float64(len(names)))
			point.MicroserviceShares = make(map[string]float64, len(names))
			for _, name := range names {
				point.MicroserviceShares[name] = share
			}
		}
		daily = append(daily, point)
	}
	return daily
}

func projectWeekly(window Window, total float64) []TrendPoint {
	days := window.Days()

	points := int(math.Ceil(days / 7.0))
	if points > maxWeeklyPoints {
		points = maxWeeklyPoints
	}
	if points < 1 {
		points = 1
	}

	base := total / days * 7.0
	weekly := make([]TrendPoint, 0, points)
	for week := 0; week < points; week++ {
		value := base * (0.85 + 0.3*math.Sin(float64(week)*0.2))
		weekly = append(weekly, TrendPoint{
			Date:               window.Start.AddDate(0, 0, week*7),
			TotalKilowattHours: Round2(value),
		})
	}
	return weekly
}

func projectMonthly(window Window, total float64) []TrendPoint {
	days := window.Days()

	points := int(math.Ceil(days / 30.0))
	if points > maxMonthlyPoints {
		points = maxMonthlyPoints
	}
	if points < 1 {
		points = 1
	}

	// Month boundaries are anchored to the first day of the window's
	// starting month.
	anchor := time.Date(window.Start.Year(), window.Start.Month(), 1, 0, 0, 0, 0, window.Start.Location())

	base := total / days * 30.0
	monthly := make([]TrendPoint, 0, points)
	for month := 0; month < points; month++ {
		value := base * (0.9 + 0.2*math.Sin(float64(month)*0.3))
		monthly = append(monthly, TrendPoint{
			Date:               anchor.AddDate(0, month, 0),
			TotalKilowattHours: Round2(value),
		})
	}
	return monthly
}

// LinearForecast extrapolates a series by a two-point linear growth
// rate from its trailing two points. Deterministic given the input;
// returns nil when fewer than two points are available.
func LinearForecast(history []TrendPoint, horizon int) []TrendPoint {
	if len(history) < 2 || horizon <= 0 {
		return nil
	}

	last := history[len(history)-1]
	prev := history[len(history)-2]
	growth := last.TotalKilowattHours - prev.TotalKilowattHours
	step := last.Date.Sub(prev.Date)

	forecast := make([]TrendPoint, 0, horizon)
	for i := 1; i <= horizon; i++ {
		value := last.TotalKilowattHours + growth*float64(i)
		if value < 0 {
			value = 0
		}
		forecast = append(forecast, TrendPoint{
			Date:               last.Date.Add(time.Duration(i) * step),
			TotalKilowattHours: Round2(value),
		})
	}
	return forecast
}
