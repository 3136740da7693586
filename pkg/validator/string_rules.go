package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s is required", field),
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
	}
}

// MinLen counts bytes. Use MinChars for user-facing text.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be at least %d characters long", field, min),
		Check: func() bool {
			return len(value) >= min
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be at most %d characters long", field, max),
		Check: func() bool {
			return len(value) <= max
		},
	}
}

func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be between %d and %d characters long", field, min, max),
		Check: func() bool {
			return len(value) >= min && len(value) <= max
		},
	}
}

// MinChars counts characters of the NFC-normalized string, so a letter
// written with a combining accent counts once.
func MinChars(field, value string, min int) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be at least %d characters", field, min),
		Check: func() bool {
			return charCount(value) >= min
		},
	}
}

func MaxChars(field, value string, max int) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be no more than %d characters", field, max),
		Check: func() bool {
			return charCount(value) <= max
		},
	}
}

func charCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
