package validator

import "fmt"

// RequiredNum validates that a numeric value is not zero.
func RequiredNum[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Requirement: fmt.Sprintf("%s is required", field),
		Check: func() bool {
			return value != zero
		},
	}
}

// Min validates that a numeric value is greater than or equal to the minimum.
func Min[T Numeric](field string, value, min T) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be at least %v", field, min),
		Check: func() bool {
			return value >= min
		},
	}
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max[T Numeric](field string, value, max T) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be at most %v", field, max),
		Check: func() bool {
			return value <= max
		},
	}
}

func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be between %v and %v", field, min, max),
		Check: func() bool {
			return value >= min && value <= max
		},
	}
}

func Positive[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Requirement: fmt.Sprintf("%s must be positive", field),
		Check: func() bool {
			return value > zero
		},
	}
}
