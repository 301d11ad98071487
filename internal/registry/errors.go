package registry

import "errors"

// Sentinel errors for registry construction and lookup failures.
var (
	// ErrNoCities is returned when a registry is built from an empty city list.
	ErrNoCities = errors.New("no cities in registry")
	// ErrDuplicateSlug is returned when two city records share a slug.
	ErrDuplicateSlug = errors.New("duplicate city slug")
	// ErrUnknownTerritory is returned when a city references a TDSP that is
	// not in the territory table.
	ErrUnknownTerritory = errors.New("unknown territory")
)
