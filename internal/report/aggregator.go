package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/findajay/energy-intelligence/internal/classify"
	"github.com/findajay/energy-intelligence/internal/discovery"
	"github.com/findajay/energy-intelligence/internal/energy"
)

// Aggregator computes energy reports from classified resources.
// Per-microservice computation fans out into independent partial
// results and folds sequentially, so no lock discipline is needed on
// the detail map.
type Aggregator struct {
	classifier *classify.Classifier
	estimator  energy.UtilizationEstimator
	discoverer discovery.Discoverer
	region     string
	logger     zerolog.Logger
	now        func() time.Time
}

// NewAggregator creates an aggregator. discoverer may be nil when the
// whole-subscription fallback path is not needed.
func NewAggregator(
	classifier *classify.Classifier,
	estimator energy.UtilizationEstimator,
	discoverer discovery.Discoverer,
	region string,
	logger zerolog.Logger,
) *Aggregator {
	return &Aggregator{
		classifier: classifier,
		estimator:  estimator,
		discoverer: discoverer,
		region:     region,
		logger:     logger,
		now:        time.Now,
	}
}

// microservicePartial is one group's contribution, computed
// independently and merged in input order.
type microservicePartial struct {
	labels   []string
	values   map[string]float64
	subtotal float64
	warning  string
}

// Aggregate computes the energy report for a request. The only error
// path is structural: the whole-subscription fallback with an
// unavailable discoverer. Everything else degrades to defaults.
func (a *Aggregator) Aggregate(ctx context.Context, req Request) (*Report, error) {
	start := a.now()

	if len(req.Microservices) == 0 && len(req.SharedResourceIDs) == 0 {
		if req.AnalyzeAllResources {
			return a.aggregateSubscription(ctx, req)
		}
		// Energy of nothing is zero, not undefined.
		return a.emptyReport(req), nil
	}

	utilizationPercent := a.utilizationPercent(req)
	utilization := utilizationPercent / 100.0

	// Fan out per microservice; lookup latency hides in parallel, the
	// merge stays sequential.
	partials := make([]microservicePartial, len(req.Microservices))
	var wg sync.WaitGroup
	for i, group := range req.Microservices {
		wg.Add(1)
		go func(i int, group MicroserviceGroup) {
			defer wg.Done()
			partials[i] = a.computeMicroservice(ctx, group, req.Window, utilization)
		}(i, group)
	}
	wg.Wait()

	details := NewBreakdown()
	var total float64
	var warnings []string
	for _, partial := range partials {
		if partial.warning != "" {
			warnings = append(warnings, partial.warning)
		}
		for _, label := range partial.labels {
			details.Add(label, partial.values[label])
		}
		total += partial.subtotal
	}

	for _, resourceID := range req.SharedResourceIDs {
		result := a.classifier.Classify(ctx, resourceID, "")
		kwh := energy.ComputeSharedKilowattHours(result.Category, req.Window, utilization)
		label := fmt.Sprintf("Shared_%s_%s", result.Category, classify.FriendlyName(resourceID))
		details.Add(label, kwh)
		total += kwh
	}

	report := a.assembleReport(req, total, utilizationPercent, details, warnings, false)

	a.logger.Info().
		Str("report_id", report.ReportID).
		Str("operation", "Aggregate").
		Int("microservices", len(req.Microservices)).
		Int("shared_resources", len(req.SharedResourceIDs)).
		Float64("kilowatt_hours", report.KilowattHours).
		Float64("carbon_kg", report.CarbonKg).
		Int64("duration_ms", a.now().Sub(start).Milliseconds()).
		Msg("energy report aggregated")

	return report, nil
}

// computeMicroservice produces one group's partial result. A group
// without an app service is not analyzable as a microservice and
// contributes only a warning.
func (a *Aggregator) computeMicroservice(ctx context.Context, group MicroserviceGroup, window energy.Window, utilization float64) microservicePartial {
	partial := microservicePartial{values: make(map[string]float64)}

	if group.AppServiceID == "" {
		partial.warning = fmt.Sprintf("microservice %q has no app service reference, skipped", group.Name)
		return partial
	}

	add := func(category energy.Category, kwh float64) {
		if kwh <= 0 {
			return
		}
		label := fmt.Sprintf("%s_%s", group.Name, category)
		if _, ok := partial.values[label]; !ok {
			partial.labels = append(partial.labels, label)
		}
		partial.values[label] += kwh
		partial.subtotal += kwh
	}

	appResult := a.classifier.Classify(ctx, group.AppServiceID, "")
	created := a.classifier.CreationDate(ctx, group.AppServiceID)
	add(energy.CategoryAppService,
		energy.ComputeKilowattHours(energy.CategoryAppService, appResult.Tier, window, utilization, created))

	for _, id := range group.FunctionAppIDs {
		created := a.classifier.CreationDate(ctx, id)
		add(energy.CategoryFunctionApp,
			energy.ComputeKilowattHours(energy.CategoryFunctionApp, "", window, utilization, created))
	}

	for _, id := range group.ServiceBusIDs {
		created := a.classifier.CreationDate(ctx, id)
		add(energy.CategoryServiceBus,
			energy.ComputeKilowattHours(energy.CategoryServiceBus, "", window, utilization, created))
	}

	for _, id := range group.DatabaseIDs {
		result := a.classifier.Classify(ctx, id, "")
		created := a.classifier.CreationDate(ctx, id)
		add(energy.CategoryDatabase,
			energy.ComputeKilowattHours(energy.CategoryDatabase, result.Tier, window, utilization, created))
	}

	// Round per-label contributions once the group's sums are final.
	for label, value := range partial.values {
		partial.values[label] = energy.Round2(value)
	}

	return partial
}

// aggregateSubscription is the degraded whole-subscription path: every
// discovered resource is classified and costed by coarse per-type
// constants at a fixed utilization, skipping tier resolution.
func (a *Aggregator) aggregateSubscription(ctx context.Context, req Request) (*Report, error) {
	if a.discoverer == nil {
		return nil, fmt.Errorf("analyze all resources requested but no discoverer configured")
	}

	resources, err := a.discoverer.ListResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("resource discovery failed: %w", err)
	}

	utilization := energy.DegradedUtilizationPercent / 100.0

	details := NewBreakdown()
	var total float64
	for _, resource := range resources {
		category := classify.CategoryFor(resource.ID, resource.Type)
		kwh := energy.ComputeSharedKilowattHours(category, req.Window, utilization)
		label := fmt.Sprintf("Subscription_%s_%s", category, classify.FriendlyName(resource.ID))
		details.Add(label, kwh)
		total += kwh
	}

	report := a.assembleReport(req, total, energy.DegradedUtilizationPercent, details, nil, false)

	a.logger.Info().
		Str("report_id", report.ReportID).
		Str("operation", "Aggregate").
		Int("subscription_resources", len(resources)).
		Float64("kilowatt_hours", report.KilowattHours).
		Msg("degraded whole-subscription report aggregated")

	return report, nil
}

func (a *Aggregator) utilizationPercent(req Request) float64 {
	if req.UtilizationPercent > 0 {
		return energy.Clamp(req.UtilizationPercent, 0, 100)
	}
	if a.estimator == nil {
		return energy.DefaultUtilizationPercent
	}
	count := 0
	for _, group := range req.Microservices {
		if group.AppServiceID != "" {
			count++
		}
		count += len(group.FunctionAppIDs) + len(group.ServiceBusIDs) + len(group.DatabaseIDs)
	}
	count += len(req.SharedResourceIDs)
	return a.estimator.EstimatePercent(count, a.now())
}

func (a *Aggregator) assembleReport(req Request, totalKwh, utilizationPercent float64, details *Breakdown, warnings []string, usedMock bool) *Report {
	return &Report{
		ReportID:           uuid.New().String(),
		KilowattHours:      energy.Round2(totalKwh),
		CarbonKg:           energy.Round2(energy.CarbonKg(totalKwh, a.region)),
		UtilizationPercent: energy.Round2(utilizationPercent),
		Details:            details,
		Window:             req.Window,
		Region:             a.region,
		UsedMockData:       usedMock,
		Warnings:           warnings,
	}
}

func (a *Aggregator) emptyReport(req Request) *Report {
	return a.assembleReport(req, 0, 0, NewBreakdown(), nil, false)
}
