package validator

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidUUID validates the canonical 36-character UUID form.
func ValidUUID(field, value string) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be a valid UUID", field),
		Check: func() bool {
			// Fast rejection before parsing: uuid.Parse also accepts urn and braced forms.
			if len(value) != 36 {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
	}
}

func NonNilUUID(field string, value uuid.UUID) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must not be a nil UUID", field),
		Check: func() bool {
			return value != uuid.Nil
		},
	}
}

// UUIDVersion validates that value parses as a UUID of the given version.
func UUIDVersion(field, value string, version uuid.Version) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be a version %d UUID", field, version),
		Check: func() bool {
			id, err := uuid.Parse(value)
			return err == nil && id.Version() == version
		},
	}
}
