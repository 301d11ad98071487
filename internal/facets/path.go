package facets

import (
	"strings"

	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
)

// ParsePath splits a request path under the faceted prefix into its city slug
// and raw filter segment. The returned segment is empty for a hub path. ok is
// false when the path is outside the prefix or has extra segments; city
// existence is the caller's concern, per the routing-layer 404 contract.
func ParsePath(path string) (slug, segment string, ok bool) {
	if !strings.HasPrefix(path, registry.PathPrefix) {
		return "", "", false
	}

	rest := strings.TrimPrefix(path, registry.PathPrefix)
	rest = strings.TrimSuffix(rest, "/")

	if rest == "" {
		return "", "", false
	}

	parts := strings.Split(rest, "/")

	switch len(parts) {
	case 1:
		return parts[0], "", true
	case 2:
		return parts[0], parts[1], true
	default:
		return "", "", false
	}
}
