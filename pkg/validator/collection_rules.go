package validator

import "fmt"

func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s is required", field),
		Check: func() bool {
			return len(value) > 0
		},
	}
}

func MinLenSlice[T any](field string, value []T, min int) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must have at least %d items", field, min),
		Check: func() bool {
			return len(value) >= min
		},
	}
}

func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must have at most %d items", field, max),
		Check: func() bool {
			return len(value) <= max
		},
	}
}

// UniqueSlice validates that no element appears twice.
func UniqueSlice[T comparable](field string, value []T) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must not contain duplicates", field),
		Check: func() bool {
			seen := make(map[T]struct{}, len(value))
			for _, v := range value {
				if _, ok := seen[v]; ok {
					return false
				}
				seen[v] = struct{}{}
			}
			return true
		},
	}
}

func RequiredMap[K comparable, V any](field string, value map[K]V) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s is required", field),
		Check: func() bool {
			return len(value) > 0
		},
	}
}
