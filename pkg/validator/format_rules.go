package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	// E.164 with optional leading plus.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// ValidEmail validates a bare address (no display name) whose domain has at
// least one dot and no empty labels.
func ValidEmail(field, value string) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be a valid email address", field),
		Check: func() bool {
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}
			if !strings.Contains(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
	}
}

// ValidURL validates an absolute http or https URL with a host.
func ValidURL(field, value string) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be a valid URL", field),
		Check: func() bool {
			u, err := url.Parse(value)
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
	}
}

func ValidPhone(field, value string) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must be a valid phone number", field),
		Check: func() bool {
			return phoneRegex.MatchString(value)
		},
	}
}

func Alphanumeric(field, value string) Rule {
	return Rule{
		Requirement: fmt.Sprintf("%s must contain only letters and digits", field),
		Check: func() bool {
			return alphanumericRegex.MatchString(value)
		},
	}
}
