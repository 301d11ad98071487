// Package market supplies search-volume and competition figures for
// (city, filter combination) pairs. The engine treats these as already
// resolved inputs from a read-only collaborator: providers fetch, the
// canonical rules consume, and absence of data is a valid state that simply
// disables the market-gated rules.
package market

import (
	"context"
	"strings"
)

// Data is one market snapshot for a city and filter combination.
type Data struct {
	// SearchVolume is the estimated monthly search volume.
	SearchVolume int `json:"search_volume" yaml:"search_volume" mapstructure:"search_volume"`
	// Competition is the paid-competition index, 0..1.
	Competition float64 `json:"competition" yaml:"competition" mapstructure:"competition"`
}

// Provider resolves market data for a city and normalized filter tokens.
// A nil Data with nil error means no figures exist for the combination.
type Provider interface {
	Lookup(ctx context.Context, citySlug string, tokens []string) (*Data, error)
}

// Key builds the lookup key for a city and normalized filter tokens. Tokens
// must already be in canonical order so equivalent combinations share a key.
func Key(citySlug string, tokens []string) string {
	if len(tokens) == 0 {
		return citySlug
	}

	return citySlug + "|" + strings.Join(tokens, "+")
}

// Static is a fixed in-memory provider, used in tests and as the decode
// target of the file provider.
type Static struct {
	entries map[string]Data
}

// NewStatic creates a provider over a fixed key→data table. Keys follow Key.
func NewStatic(entries map[string]Data) *Static {
	if entries == nil {
		entries = map[string]Data{}
	}

	return &Static{entries: entries}
}

// Lookup returns the stored data for the combination, or nil when absent.
func (s *Static) Lookup(_ context.Context, citySlug string, tokens []string) (*Data, error) {
	data, ok := s.entries[Key(citySlug, tokens)]
	if !ok {
		return nil, nil
	}

	return &data, nil
}
