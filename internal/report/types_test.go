package report

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdown_AddRoundsAndKeepsOrder(t *testing.T) {
	b := NewBreakdown()
	b.Add("PaymentService_AppService", 0.424999)
	b.Add("SessionsService_AppService", 0.42)
	b.Add("SessionsService_Database", 0.9)

	assert.Equal(t, []string{
		"PaymentService_AppService",
		"SessionsService_AppService",
		"SessionsService_Database",
	}, b.Labels())

	v, ok := b.Get("PaymentService_AppService")
	require.True(t, ok)
	assert.Equal(t, 0.42, v)
}

func TestBreakdown_ReAddAccumulatesInPlace(t *testing.T) {
	b := NewBreakdown()
	b.Add("a", 0.1)
	b.Add("b", 0.2)
	b.Add("a", 0.3)

	assert.Equal(t, []string{"a", "b"}, b.Labels(), "position is fixed at first insertion")
	v, _ := b.Get("a")
	assert.Equal(t, 0.4, v)
	assert.Equal(t, 2, b.Len())
}

func TestBreakdown_MarshalPreservesInsertionOrder(t *testing.T) {
	b := NewBreakdown()
	b.Add("zebra", 1.0)
	b.Add("alpha", 2.5)
	b.Add("mid", 0.42)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":1,"alpha":2.5,"mid":0.42}`, string(data))
}

func TestBreakdown_UnmarshalRestoresValues(t *testing.T) {
	var b Breakdown
	require.NoError(t, json.Unmarshal([]byte(`{"a":0.42,"b":0.9}`), &b))

	assert.Equal(t, 2, b.Len())
	v, ok := b.Get("a")
	require.True(t, ok)
	assert.Equal(t, 0.42, v)
}

func TestRequest_MicroserviceNames(t *testing.T) {
	req := Request{Microservices: []MicroserviceGroup{
		{Name: "PaymentService"},
		{Name: "SessionsService"},
	}}
	assert.Equal(t, []string{"PaymentService", "SessionsService"}, req.MicroserviceNames())
	assert.Empty(t, Request{}.MicroserviceNames())
}
