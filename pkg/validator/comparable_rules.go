package validator

import (
	"fmt"
	"slices"
	"strings"
)

// RequiredComparable validates that a comparable value is not its zero value.
func RequiredComparable[T comparable](field string, value T) Rule {
	var zero T
	return Rule{
		Requirement: fmt.Sprintf("%s is required", field),
		Check: func() bool {
			return value != zero
		},
	}
}

// OneOf validates that value is one of allowed.
func OneOf[T comparable](field string, value T, allowed ...T) Rule {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = fmt.Sprint(a)
	}
	return Rule{
		Requirement: fmt.Sprintf("%s must be one of: %s", field, strings.Join(names, ", ")),
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
	}
}
