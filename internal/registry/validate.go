package registry

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared struct validator for registry records. It is
// read-only after init, so concurrent use is fine.
var validate = validator.New()

// validateCity checks a single city record: struct tags first, then the
// territory reference against the fixed TDSP table.
func validateCity(city City) error {
	if err := validate.Struct(city); err != nil {
		return fmt.Errorf("invalid city record: %w", err)
	}

	if _, ok := TerritoryByID(city.TerritoryID); !ok {
		return fmt.Errorf("territory %q: %w", city.TerritoryID, ErrUnknownTerritory)
	}

	return nil
}
