package validator

import (
	"fmt"
	"time"
)

func PastDate(field string, value time.Time) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be in the past", field),
		Check: func() bool {
			return value.Before(time.Now())
		},
	}
}

func FutureDate(field string, value time.Time) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be in the future", field),
		Check: func() bool {
			return value.After(time.Now())
		},
	}
}

// DateBetween is inclusive on both ends.
func DateBetween(field string, value, start, end time.Time) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be between %s and %s",
			field, start.Format(time.DateOnly), end.Format(time.DateOnly)),
		Check: func() bool {
			return !value.Before(start) && !value.After(end)
		},
	}
}
