package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
)

// DefaultIndex is the metrics index queried when none is configured.
const DefaultIndex = "seo-market-metrics"

// Elastic reads market figures from an Elasticsearch metrics index maintained
// by the keyword research pipeline. Documents are keyed by the same
// city|segment key the static provider uses.
type Elastic struct {
	client *elasticsearch.Client
	index  string
	logger logger.Interface
}

// NewElastic creates an Elasticsearch-backed provider.
func NewElastic(client *elasticsearch.Client, index string, log logger.Interface) *Elastic {
	if index == "" {
		index = DefaultIndex
	}

	return &Elastic{client: client, index: index, logger: log}
}

// searchResponse is the slice of an ES search response the provider needs.
type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source Data `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Lookup queries the metrics index for the combination's document. A missing
// document is not an error; the combination simply has no figures.
func (e *Elastic) Lookup(ctx context.Context, citySlug string, tokens []string) (*Data, error) {
	key := Key(citySlug, tokens)

	query := map[string]any{
		"size": 1,
		"query": map[string]any{
			"term": map[string]any{
				"combination_key": key,
			},
		},
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("marshal market query: %w", err)
	}

	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("market lookup %q: %w", key, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("market lookup %q: %s", key, res.String())
	}

	var parsed searchResponse
	if decodeErr := json.NewDecoder(res.Body).Decode(&parsed); decodeErr != nil {
		return nil, fmt.Errorf("decode market response: %w", decodeErr)
	}

	if len(parsed.Hits.Hits) == 0 {
		e.logger.Debug("No market data for combination", "key", key)

		return nil, nil
	}

	data := parsed.Hits.Hits[0].Source

	return &data, nil
}
