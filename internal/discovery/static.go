package discovery

import "context"

// StaticDiscoverer serves a fixed resource topology. Used when no live
// collaborator is configured; responses built from it are flagged as
// mock data.
type StaticDiscoverer struct {
	Resources     []ResourceInfo
	Microservices []MicroserviceInfo
}

// ListResources implements Discoverer.
func (d *StaticDiscoverer) ListResources(context.Context) ([]ResourceInfo, error) {
	return d.Resources, nil
}

// ListMicroservices implements Discoverer.
func (d *StaticDiscoverer) ListMicroservices(context.Context) ([]MicroserviceInfo, error) {
	return d.Microservices, nil
}

const demoSubscription = "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/demo-rg/providers"

// NewDemoDiscoverer returns a small canned topology: two microservices
// plus shared infrastructure, enough to exercise every category path.
func NewDemoDiscoverer() *StaticDiscoverer {
	payments := ResourceInfo{
		ID:                demoSubscription + "/Microsoft.Web/sites/payments-api",
		Name:              "payments-api",
		Type:              "Microsoft.Web/sites",
		ResourceGroupName: "demo-rg",
		Location:          "westeurope",
	}
	paymentsWorker := ResourceInfo{
		ID:                demoSubscription + "/Microsoft.Web/sites/payments-worker",
		Name:              "payments-worker",
		Type:              "Microsoft.Web/sites",
		ResourceGroupName: "demo-rg",
		Location:          "westeurope",
	}
	sessions := ResourceInfo{
		ID:                demoSubscription + "/Microsoft.Web/sites/sessions-api",
		Name:              "sessions-api",
		Type:              "Microsoft.Web/sites",
		ResourceGroupName: "demo-rg",
		Location:          "westeurope",
	}
	sessionsDB := ResourceInfo{
		ID:                demoSubscription + "/Microsoft.Sql/servers/demo-sql/databases/sessions-db",
		Name:              "sessions-db",
		Type:              "Microsoft.Sql/servers/databases",
		ResourceGroupName: "demo-rg",
		Location:          "westeurope",
	}
	bus := ResourceInfo{
		ID:                demoSubscription + "/Microsoft.ServiceBus/namespaces/demo-bus",
		Name:              "demo-bus",
		Type:              "Microsoft.ServiceBus/namespaces",
		ResourceGroupName: "demo-rg",
		Location:          "westeurope",
	}
	storage := ResourceInfo{
		ID:                demoSubscription + "/Microsoft.Storage/storageAccounts/demostorage",
		Name:              "demostorage",
		Type:              "Microsoft.Storage/storageAccounts",
		ResourceGroupName: "demo-rg",
		Location:          "westeurope",
	}
	vault := ResourceInfo{
		ID:                demoSubscription + "/Microsoft.KeyVault/vaults/demo-vault",
		Name:              "demo-vault",
		Type:              "Microsoft.KeyVault/vaults",
		ResourceGroupName: "demo-rg",
		Location:          "westeurope",
	}
	insights := ResourceInfo{
		ID:                demoSubscription + "/Microsoft.Insights/components/demo-insights",
		Name:              "demo-insights",
		Type:              "Microsoft.Insights/components",
		ResourceGroupName: "demo-rg",
		Location:          "westeurope",
	}

	return &StaticDiscoverer{
		Resources: []ResourceInfo{
			payments, paymentsWorker, sessions, sessionsDB,
			bus, storage, vault, insights,
		},
		Microservices: []MicroserviceInfo{
			{
				Name:         "PaymentService",
				AppServices:  []ResourceInfo{payments},
				FunctionApps: []ResourceInfo{paymentsWorker},
				ServiceBus:   []ResourceInfo{bus},
			},
			{
				Name:        "SessionsService",
				AppServices: []ResourceInfo{sessions},
				Databases:   []ResourceInfo{sessionsDB},
			},
		},
	}
}
