// Package discovery defines the input contracts for the resource
// discovery collaborator. The live resource-management client is
// external glue; this package carries only the shapes the estimation
// pipeline consumes, plus a static discoverer for demo and test use.
package discovery

import "context"

// ResourceInfo describes one discovered resource.
type ResourceInfo struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Type              string            `json:"type"`
	ResourceGroupName string            `json:"resourceGroupName"`
	Location          string            `json:"location"`
	Tags              map[string]string `json:"tags,omitempty"`
}

// MicroserviceInfo groups discovered resources under a microservice
// name.
type MicroserviceInfo struct {
	Name            string         `json:"name"`
	AppServices     []ResourceInfo `json:"appServices"`
	FunctionApps    []ResourceInfo `json:"functionApps"`
	ServiceBus      []ResourceInfo `json:"serviceBus"`
	Databases       []ResourceInfo `json:"databases"`
	StorageAccounts []ResourceInfo `json:"storageAccounts"`
	Other           []ResourceInfo `json:"other"`
}

// Discoverer enumerates the subscription's resources. Implementations
// may be live collaborators or canned data; callers must tolerate
// failure. Only endpoints whose entire input depends on discovery
// surface a discovery error to their clients.
type Discoverer interface {
	ListResources(ctx context.Context) ([]ResourceInfo, error)
	ListMicroservices(ctx context.Context) ([]MicroserviceInfo, error)
}
