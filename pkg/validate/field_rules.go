package validate

import "regexp"

// dateFormatRegex matches the literal YYYY-MM-DD shape: four digits, hyphen,
// two digits, hyphen, two digits.
var dateFormatRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Required reports whether a value is present. An empty string is absent;
// everything else, including whitespace-only input, counts as present. No
// trimming is applied.
func Required(value string) bool {
	return value != ""
}

// RequiredField is the Rule form of Required.
func RequiredField(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return Required(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Matches reports whether the caller-supplied pattern matches the value. It
// delegates entirely to the pattern and performs no interpretation of its
// own. A nil pattern matches nothing.
func Matches(re *regexp.Regexp, value string) bool {
	if re == nil {
		return false
	}
	return re.MatchString(value)
}

// MatchesPattern is the Rule form of Matches.
func MatchesPattern(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return Matches(re, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid format",
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidDateFormat reports whether a value matches the YYYY-MM-DD shape. The
// check is purely syntactic; "2024-13-99" passes.
func ValidDateFormat(value string) bool {
	return dateFormatRegex.MatchString(value)
}

// DateFormat is the Rule form of ValidDateFormat.
func DateFormat(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ValidDateFormat(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a date in YYYY-MM-DD format",
			TranslationKey: "validation.date_format",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
