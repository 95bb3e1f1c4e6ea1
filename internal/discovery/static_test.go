package discovery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDemoDiscoverer(t *testing.T) {
	d := NewDemoDiscoverer()

	resources, err := d.ListResources(context.Background())
	require.NoError(t, err)
	assert.Len(t, resources, 8)
	for _, resource := range resources {
		assert.NotEmpty(t, resource.ID)
		assert.NotEmpty(t, resource.Type)
		assert.Equal(t, "westeurope", resource.Location)
	}

	microservices, err := d.ListMicroservices(context.Background())
	require.NoError(t, err)
	require.Len(t, microservices, 2)
	assert.Equal(t, "PaymentService", microservices[0].Name)
	assert.Equal(t, "SessionsService", microservices[1].Name)

	// Every microservice in the demo topology is analyzable.
	for _, ms := range microservices {
		assert.NotEmpty(t, ms.AppServices, ms.Name)
	}
}

func TestStaticDiscoverer_Empty(t *testing.T) {
	d := &StaticDiscoverer{}

	resources, err := d.ListResources(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resources)
}
