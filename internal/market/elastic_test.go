package market_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
	"github.com/ezhulati/choose-my-power-sub003/internal/market"
)

// newElasticProvider points a provider at a fake Elasticsearch serving the
// given search response body.
func newElasticProvider(t *testing.T, status int, body string) *market.Elastic {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{server.URL}})
	require.NoError(t, err)

	return market.NewElastic(client, "test-metrics", logger.NewNoOp())
}

func TestElasticLookupHit(t *testing.T) {
	t.Parallel()

	provider := newElasticProvider(t, http.StatusOK, `{
		"hits": {"hits": [
			{"_source": {"search_volume": 3200, "competition": 0.8}}
		]}
	}`)

	data, err := provider.Lookup(context.Background(), "dallas", []string{"12-month"})
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, 3200, data.SearchVolume)
	assert.InDelta(t, 0.8, data.Competition, 0.001)
}

func TestElasticLookupMiss(t *testing.T) {
	t.Parallel()

	provider := newElasticProvider(t, http.StatusOK, `{"hits": {"hits": []}}`)

	data, err := provider.Lookup(context.Background(), "dallas", []string{"36-month"})
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestElasticLookupServerError(t *testing.T) {
	t.Parallel()

	provider := newElasticProvider(t, http.StatusInternalServerError, `{"error": "boom"}`)

	_, err := provider.Lookup(context.Background(), "dallas", []string{"12-month"})
	require.Error(t, err)
}
