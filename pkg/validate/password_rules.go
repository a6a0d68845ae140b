package validate

import (
	"regexp"
	"strings"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 20
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[^A-Za-z0-9]`)

	// passwordSequences is a fixed table of forbidden ascending runs. The
	// table is enumerated rather than generated on purpose: digits carry
	// both 3- and 4-character runs while letters carry only 3-character
	// runs, so "1234" is rejected while "abcd" is not. Callers relying on
	// exact behavior depend on this asymmetry.
	passwordSequences = []string{
		"012", "123", "234", "345", "456", "567", "678", "789",
		"1234", "2345", "3456", "4567", "5678", "6789", "7890",
		"abc", "bcd", "cde", "def", "efg", "fgh", "ghi", "hij",
		"ijk", "jkl", "klm", "lmn", "mno", "nop", "opq", "pqr",
		"qrs", "rst", "stu", "tuv", "uvw", "vwx", "wxy", "xyz",
	}
)

// PasswordSpecialChars requires at least two characters outside [A-Za-z0-9].
func PasswordSpecialChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return len(specialCharRegex.FindAllString(value, -1)) >= 2
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must contain at least 2 special characters",
			TranslationKey: "validation.password_special",
			TranslationValues: map[string]any{
				"field": field,
				"min":   2,
			},
		},
	}
}

// PasswordNoSequential rejects passwords containing any run from the fixed
// sequence table, matched as a literal substring.
func PasswordNoSequential(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, seq := range passwordSequences {
				if strings.Contains(value, seq) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must not contain sequential characters like 123 or abc",
			TranslationKey: "validation.password_sequential",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PasswordNoRepeats rejects passwords that repeat any character three or
// more times in a row.
func PasswordNoRepeats(field, value string) Rule {
	return Rule{
		Check: func() bool {
			currentChar := rune(0)
			count := 0

			for _, char := range value {
				if char == currentChar {
					count++
					if count >= 3 {
						return false
					}
				} else {
					currentChar = char
					count = 1
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must not repeat a character more than twice in a row",
			TranslationKey: "validation.password_repeating",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PasswordDigit requires at least one digit.
func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must contain at least one digit",
			TranslationKey: "validation.password_digit",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PasswordLowercase requires at least one lowercase letter.
func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lowercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must contain at least one lowercase letter",
			TranslationKey: "validation.password_lowercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PasswordUppercase requires at least one uppercase letter.
func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must contain at least one uppercase letter",
			TranslationKey: "validation.password_uppercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PasswordLength requires a length of 6 to 20 characters inclusive.
func PasswordLength(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= minPasswordLength && len(value) <= maxPasswordLength
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must be 6-20 characters long",
			TranslationKey: "validation.password_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   minPasswordLength,
				"max":   maxPasswordLength,
			},
		},
	}
}

// PasswordRules returns the strength checks in their fixed priority order.
// The order decides which single message surfaces when several rules are
// violated at once.
func PasswordRules(field, value string) []Rule {
	return []Rule{
		PasswordSpecialChars(field, value),
		PasswordNoSequential(field, value),
		PasswordNoRepeats(field, value),
		PasswordDigit(field, value),
		PasswordLowercase(field, value),
		PasswordUppercase(field, value),
		PasswordLength(field, value),
	}
}

// Password validates password strength and returns the message of the first
// violated rule, or an empty string when the password passes every check.
func Password(value string) string {
	return First(PasswordRules("password", value)...)
}
