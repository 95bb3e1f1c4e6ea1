package classify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/findajay/energy-intelligence/internal/cache"
	"github.com/findajay/energy-intelligence/internal/energy"
)

// unknownSentinel is cached for failed external lookups so the same
// failing call is not repeated for the key.
const unknownSentinel = "unknown"

// TierResolver looks up the actual SKU tier and creation date of a
// resource from the resource-management collaborator. Lookups may fail
// or time out; the classifier degrades to pattern matching and never
// propagates resolver errors.
type TierResolver interface {
	ResolveTier(ctx context.Context, resourceID string) (string, error)
	ResolveCreationDate(ctx context.Context, resourceID string) (time.Time, error)
}

// Result is a classified resource reference: category plus the tier
// label used for wattage lookup. Tier is empty for categories without
// a SKU concept.
type Result struct {
	Category energy.Category
	Tier     string
}

// Classifier resolves resource identifiers to categories and tiers.
// Category and tier are derived, never stored authoritatively: they
// are recomputed by pattern matching each call, with external lookups
// memoized in injected caches.
type Classifier struct {
	resolver TierResolver // nil disables external lookups
	tiers    cache.Cache
	created  cache.Cache
	logger   zerolog.Logger
}

// NewClassifier creates a classifier. resolver may be nil, in which
// case tier resolution goes straight to pattern matching.
func NewClassifier(resolver TierResolver, tiers, created cache.Cache, logger zerolog.Logger) *Classifier {
	return &Classifier{
		resolver: resolver,
		tiers:    tiers,
		created:  created,
		logger:   logger,
	}
}

// Classify resolves the category and tier for a resource identifier.
// typeHint is the resource-type string when already known from
// discovery, or empty. Classification always succeeds: external
// lookup failures degrade to pattern matching, then to a conservative
// default tier.
func (c *Classifier) Classify(ctx context.Context, resourceID, typeHint string) Result {
	category := CategoryFor(resourceID, typeHint)

	result := Result{Category: category}
	if category == energy.CategoryAppService || category == energy.CategoryDatabase {
		result.Tier = c.resolveTier(ctx, resourceID, category)
	}
	return result
}

// resolveTier tries the external resolver first (memoized, failures
// cached as a sentinel), then tier-token pattern matching, then the
// category default.
func (c *Classifier) resolveTier(ctx context.Context, resourceID string, category energy.Category) string {
	resolved := c.tiers.GetOrCompute(resourceID, func() interface{} {
		if c.resolver == nil {
			return unknownSentinel
		}
		tier, err := c.resolver.ResolveTier(ctx, resourceID)
		if err != nil || tier == "" {
			c.logger.Warn().
				Err(err).
				Str("resource_id", resourceID).
				Msg("tier lookup failed, falling back to pattern match")
			return unknownSentinel
		}
		return tier
	})

	if tier, ok := resolved.(string); ok && tier != unknownSentinel {
		return tier
	}

	if tier, ok := MatchTierToken(resourceID); ok {
		return tier
	}
	return defaultTier(category)
}

// CreationDate returns the resource creation date if the collaborator
// knows it, memoized per identifier. Returns nil when unknown; the
// formula then bills the full analysis window.
func (c *Classifier) CreationDate(ctx context.Context, resourceID string) *time.Time {
	resolved := c.created.GetOrCompute(resourceID, func() interface{} {
		if c.resolver == nil {
			return unknownSentinel
		}
		createdAt, err := c.resolver.ResolveCreationDate(ctx, resourceID)
		if err != nil || createdAt.IsZero() {
			c.logger.Warn().
				Err(err).
				Str("resource_id", resourceID).
				Msg("creation date lookup failed")
			return unknownSentinel
		}
		return createdAt
	})

	if createdAt, ok := resolved.(time.Time); ok {
		return &createdAt
	}
	return nil
}
