package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/findajay/energy-intelligence/internal/energy"
)

const subscriptionPrefix = "/subscriptions/sub/resourceGroups/rg/providers/"

func TestCategoryFor_SubstringRules(t *testing.T) {
	tests := []struct {
		name       string
		resourceID string
		want       energy.Category
	}{
		{
			"web site",
			subscriptionPrefix + "Microsoft.Web/sites/payments-api",
			energy.CategoryAppService,
		},
		{
			"sql database",
			subscriptionPrefix + "Microsoft.Sql/servers/srv/databases/sessions-db",
			energy.CategoryDatabase,
		},
		{
			"cosmos account",
			subscriptionPrefix + "Microsoft.DocumentDB/databaseAccounts/orders-cosmos",
			energy.CategoryDatabase,
		},
		{
			"service bus namespace",
			subscriptionPrefix + "Microsoft.ServiceBus/namespaces/platform-bus",
			energy.CategoryServiceBus,
		},
		{
			"storage account",
			subscriptionPrefix + "Microsoft.Storage/storageAccounts/platformdata",
			energy.CategoryStorage,
		},
		{
			"redis cache",
			subscriptionPrefix + "Microsoft.Cache/Redis/platform-redis",
			energy.CategoryRedis,
		},
		{
			"key vault",
			subscriptionPrefix + "Microsoft.KeyVault/vaults/platform-kv",
			energy.CategoryKeyVault,
		},
		{
			"app insights",
			subscriptionPrefix + "Microsoft.Insights/components/platform-ai",
			energy.CategoryMonitoring,
		},
		{
			"network security group beats generic network",
			subscriptionPrefix + "Microsoft.Network/networkSecurityGroups/platform-nsg",
			energy.CategoryNSG,
		},
		{
			"public ip beats generic network",
			subscriptionPrefix + "Microsoft.Network/publicIPAddresses/platform-pip",
			energy.CategoryPublicIP,
		},
		{
			"load balancer beats generic network",
			subscriptionPrefix + "Microsoft.Network/loadBalancers/platform-lb",
			energy.CategoryLoadBalancer,
		},
		{
			"virtual network",
			subscriptionPrefix + "Microsoft.Network/virtualNetworks/platform-vnet",
			energy.CategoryNetwork,
		},
		{
			"unmatched identifier",
			"random-string",
			energy.CategoryOther,
		},
		{
			"empty identifier",
			"",
			energy.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryFor(tt.resourceID, ""))
		})
	}
}

func TestCategoryFor_TypeHintBeatsSubstrings(t *testing.T) {
	// The identifier alone would classify as a web site; the hint says
	// it is a redis cache.
	id := subscriptionPrefix + "Microsoft.Web/sites/whatever"
	assert.Equal(t, energy.CategoryRedis, CategoryFor(id, "Microsoft.Cache/Redis"))

	// An unknown hint falls through to the substring rules.
	assert.Equal(t, energy.CategoryAppService, CategoryFor(id, "Custom.Provider/things"))
}

func TestCategoryFor_FunctionIndicators(t *testing.T) {
	tests := []struct {
		name string
		site string
		want energy.Category
	}{
		{"plain api stays app service", "payments-api", energy.CategoryAppService},
		{"worker keyword", "payments-worker", energy.CategoryFunctionApp},
		{"processor keyword", "order-processor", energy.CategoryFunctionApp},
		{"queue keyword", "queue-drainer", energy.CategoryFunctionApp},
		{"func keyword", "notify-func", energy.CategoryFunctionApp},
		{"batch keyword", "nightly-batch", energy.CategoryFunctionApp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := subscriptionPrefix + "Microsoft.Web/sites/" + tt.site
			assert.Equal(t, tt.want, CategoryFor(id, ""))
			// The hint path refines the same way.
			assert.Equal(t, tt.want, CategoryFor(id, "Microsoft.Web/sites"))
		})
	}
}

func TestCategoryFor_NeverUnresolved(t *testing.T) {
	ids := []string{
		"",
		"not-a-resource-id",
		"/subscriptions/sub",
		subscriptionPrefix + "Unknown.Provider/widgets/w1",
	}
	for _, id := range ids {
		assert.NotEmpty(t, string(CategoryFor(id, "")), id)
	}
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "payments-api", LastSegment(subscriptionPrefix+"Microsoft.Web/sites/payments-api"))
	assert.Equal(t, "payments-api", LastSegment(subscriptionPrefix+"Microsoft.Web/sites/payments-api/"))
	assert.Equal(t, "plain", LastSegment("plain"))
	assert.Equal(t, "", LastSegment(""))
}

func TestFriendlyName(t *testing.T) {
	assert.Equal(t, "payments api", FriendlyName(subscriptionPrefix+"Microsoft.Web/sites/payments-api"))
	assert.Equal(t, "session store", FriendlyName("session_store"))
}
