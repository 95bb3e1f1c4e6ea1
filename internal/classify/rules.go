// Package classify maps cloud resource identifiers to semantic
// categories and tier labels. Classification is an ordered rule table
// evaluated in sequence, so the rule set is testable and extensible
// without touching control flow. Every identifier resolves to exactly
// one category; classification never fails outward.
package classify

import (
	"strings"

	"github.com/findajay/energy-intelligence/internal/energy"
)

// functionIndicators are name keywords that reclassify a web site as a
// function app. Background workers are routinely deployed as sites.
var functionIndicators = []string{
	"func", "function", "worker", "processor", "handler",
	"trigger", "temp", "process", "batch", "job", "queue", "event",
}

// typeCategories maps known resource-type strings (lowercased) to
// categories. Checked before the substring rules when a type hint is
// available from discovery.
var typeCategories = map[string]energy.Category{
	"microsoft.web/sites":                      energy.CategoryAppService,
	"microsoft.web/serverfarms":                energy.CategoryAppService,
	"microsoft.sql/servers/databases":          energy.CategoryDatabase,
	"microsoft.sql/servers":                    energy.CategoryDatabase,
	"microsoft.documentdb/databaseaccounts":    energy.CategoryDatabase,
	"microsoft.dbforpostgresql/servers":        energy.CategoryDatabase,
	"microsoft.servicebus/namespaces":          energy.CategoryServiceBus,
	"microsoft.storage/storageaccounts":        energy.CategoryStorage,
	"microsoft.cache/redis":                    energy.CategoryRedis,
	"microsoft.keyvault/vaults":                energy.CategoryKeyVault,
	"microsoft.insights/components":            energy.CategoryMonitoring,
	"microsoft.operationalinsights/workspaces": energy.CategoryMonitoring,
	"microsoft.cdn/profiles":                   energy.CategoryCDN,
	"microsoft.network/loadbalancers":          energy.CategoryLoadBalancer,
	"microsoft.network/applicationgateways":    energy.CategoryLoadBalancer,
	"microsoft.network/networksecuritygroups":  energy.CategoryNSG,
	"microsoft.network/publicipaddresses":      energy.CategoryPublicIP,
	"microsoft.network/trafficmanagerprofiles": energy.CategoryTrafficManager,
	"microsoft.network/virtualnetworks":        energy.CategoryNetwork,
}

// substringRule classifies by a token found in the provider segment of
// the identifier. Rules are evaluated in order; first match wins.
type substringRule struct {
	token    string
	category energy.Category
}

// substringRules is the ordered fallback rule table used when no type
// hint matched. More specific tokens come before generic ones:
// "networksecuritygroups" must match before "network".
var substringRules = []substringRule{
	{"microsoft.web/sites", energy.CategoryAppService},
	{"serverfarms", energy.CategoryAppService},
	{"servicebus", energy.CategoryServiceBus},
	{"documentdb", energy.CategoryDatabase},
	{"cosmos", energy.CategoryDatabase},
	{"microsoft.sql", energy.CategoryDatabase},
	{"dbforpostgresql", energy.CategoryDatabase},
	{"dbformysql", energy.CategoryDatabase},
	{"storageaccounts", energy.CategoryStorage},
	{"microsoft.storage", energy.CategoryStorage},
	{"redis", energy.CategoryRedis},
	{"keyvault", energy.CategoryKeyVault},
	{"operationalinsights", energy.CategoryMonitoring},
	{"microsoft.insights", energy.CategoryMonitoring},
	{"microsoft.cdn", energy.CategoryCDN},
	{"loadbalancers", energy.CategoryLoadBalancer},
	{"applicationgateways", energy.CategoryLoadBalancer},
	{"networksecuritygroups", energy.CategoryNSG},
	{"publicipaddresses", energy.CategoryPublicIP},
	{"trafficmanagerprofiles", energy.CategoryTrafficManager},
	{"virtualnetworks", energy.CategoryNetwork},
	{"microsoft.network", energy.CategoryNetwork},
}

// CategoryFor resolves the category for an identifier and optional
// resource-type hint. It always returns a category; unmatched
// identifiers are CategoryOther.
func CategoryFor(resourceID, typeHint string) energy.Category {
	name := strings.ToLower(LastSegment(resourceID))

	if typeHint != "" {
		if category, ok := typeCategories[strings.ToLower(strings.TrimSpace(typeHint))]; ok {
			return refineWebCategory(category, name)
		}
	}

	id := strings.ToLower(resourceID)
	for _, rule := range substringRules {
		if strings.Contains(id, rule.token) {
			return refineWebCategory(rule.category, name)
		}
	}

	return energy.CategoryOther
}

// refineWebCategory reclassifies an app service as a function app when
// its name carries a function-indicator keyword.
func refineWebCategory(category energy.Category, name string) energy.Category {
	if category != energy.CategoryAppService {
		return category
	}
	for _, indicator := range functionIndicators {
		if strings.Contains(name, indicator) {
			return energy.CategoryFunctionApp
		}
	}
	return category
}

// LastSegment returns the final path segment of a hierarchical
// resource identifier, or the identifier itself if it has no path.
func LastSegment(resourceID string) string {
	trimmed := strings.TrimRight(resourceID, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// FriendlyName renders the last segment of an identifier for display,
// with separators replaced by spaces.
func FriendlyName(resourceID string) string {
	name := LastSegment(resourceID)
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return name
}
