package validate

import (
	"regexp"
	"strings"
)

// maxEmailLocalLength is the RFC 5321 limit for the local part of an address.
const maxEmailLocalLength = 64

// emailShapeRegex accepts local@domain with no whitespace and at least one
// dot in the domain segment. Intentionally looser than RFC 5322; the goal is
// catching obvious typos in web forms, not parsing every legal address.
var emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailNotEmpty validates that an email value is present at all.
func EmailNotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "email cannot be empty",
			TranslationKey: "validation.email_required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// EmailFormat validates the overall local@domain shape.
func EmailFormat(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailShapeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid email format, expected name@example.com",
			TranslationKey: "validation.email_format",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// EmailDomain validates that the segment after the last "@" has at least two
// dot-separated labels.
func EmailDomain(field, value string) Rule {
	return Rule{
		Check: func() bool {
			domain := value[strings.LastIndex(value, "@")+1:]
			return len(strings.Split(domain, ".")) >= 2
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid email domain",
			TranslationKey: "validation.email_domain",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// EmailLocalLength validates that the segment before the first "@" does not
// exceed 64 characters.
func EmailLocalLength(field, value string) Rule {
	return Rule{
		Check: func() bool {
			local := value
			if idx := strings.Index(value, "@"); idx >= 0 {
				local = value[:idx]
			}
			return len(local) <= maxEmailLocalLength
		},
		Error: ValidationError{
			Field:          field,
			Message:        "email local part exceeds 64 characters",
			TranslationKey: "validation.email_local_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   maxEmailLocalLength,
			},
		},
	}
}

// EmailRules returns the email checks in their fixed priority order:
// presence, overall shape, domain labels, local-part length.
func EmailRules(field, value string) []Rule {
	return []Rule{
		EmailNotEmpty(field, value),
		EmailFormat(field, value),
		EmailDomain(field, value),
		EmailLocalLength(field, value),
	}
}

// Email validates an address and returns the message of the first violated
// rule, or an empty string when the address passes every check.
func Email(value string) string {
	return First(EmailRules("email", value)...)
}
