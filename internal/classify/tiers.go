package classify

import (
	"strings"

	"github.com/findajay/energy-intelligence/internal/energy"
)

// tierTokens is the ordered list of tier tokens for pattern fallback.
// Specific plan SKUs come before short tokens and generic family
// names; first match wins.
var tierTokens = []string{
	"P3V3", "P2V3", "P1V3",
	"P3V2", "P2V2", "P1V2",
	"S3", "S2", "S1",
	"B3", "B2", "B1",
	"I3", "I2", "I1",
	"P3", "P2", "P1",
	"F1", "D1", "Y1",
	"PREMIUM", "STANDARD", "BASIC",
}

// Conservative defaults when no tier token matches.
const (
	defaultAppServiceTier = "Basic"
	defaultDatabaseTier   = "Standard"
)

// MatchTierToken scans an identifier for a known tier token,
// case-insensitive, and returns the canonical token of the first
// match.
func MatchTierToken(resourceID string) (string, bool) {
	id := strings.ToUpper(resourceID)
	for _, token := range tierTokens {
		if strings.Contains(id, token) {
			return canonicalTier(token), true
		}
	}
	return "", false
}

// canonicalTier normalizes generic family tokens to label casing; SKU
// tokens pass through unchanged.
func canonicalTier(token string) string {
	switch token {
	case "PREMIUM":
		return "Premium"
	case "STANDARD":
		return "Standard"
	case "BASIC":
		return "Basic"
	default:
		return token
	}
}

// defaultTier returns the conservative fallback tier for a category.
func defaultTier(category energy.Category) string {
	if category == energy.CategoryDatabase {
		return defaultDatabaseTier
	}
	return defaultAppServiceTier
}
