package format

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrymomot/formkit/pkg/validate"
)

// Sentinel return values for Date. They are returned in place of a formatted
// date and require exact-match comparison by the caller; Date never returns
// an error.
const (
	InvalidDateFormat     = "Invalid date format. Use YYYY-MM-DD."
	InvalidDateComponents = "Invalid date components."
)

// Date normalizes a date string to YYYY-MM-DD. Input failing the shape check
// yields InvalidDateFormat; a month outside 1-12, a day outside 1-31, or a
// non-numeric component yields InvalidDateComponents. The day cap is a flat
// 31 regardless of month or leap year; calendar correctness is out of scope.
// Valid input round-trips unchanged.
func Date(value string) string {
	if !validate.ValidDateFormat(value) {
		return InvalidDateFormat
	}

	parts := strings.Split(value, "-")
	year := padZeros(parts[0], 4)
	month := padZeros(parts[1], 2)
	day := padZeros(parts[2], 2)

	if _, err := strconv.Atoi(year); err != nil {
		return InvalidDateComponents
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return InvalidDateComponents
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return InvalidDateComponents
	}

	if m < 1 || m > 12 || d < 1 || d > 31 {
		return InvalidDateComponents
	}

	return year + "-" + month + "-" + day
}

// PhoneNumber rewrites the first run of ten consecutive digits into the
// (XXX) XXX-XXXX display form. Input without such a run, including numbers
// broken up by separators, is returned unchanged. This is a textual
// substitution, not a validation.
func PhoneNumber(value string) string {
	loc := phoneRunRegex.FindStringSubmatchIndex(value)
	if loc == nil {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) + 4)
	b.WriteString(value[:loc[0]])
	b.WriteString("(")
	b.WriteString(value[loc[2]:loc[3]])
	b.WriteString(") ")
	b.WriteString(value[loc[4]:loc[5]])
	b.WriteString("-")
	b.WriteString(value[loc[6]:loc[7]])
	b.WriteString(value[loc[1]:])
	return b.String()
}

// CapitalizeName uppercases the first letter of every whitespace-delimited
// word. Interior letters are left untouched and the input is not trimmed, so
// "john doe" becomes "John Doe" while "mcDONALD" becomes "McDONALD".
func CapitalizeName(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	startOfWord := true
	for _, r := range value {
		switch {
		case unicode.IsSpace(r):
			startOfWord = true
			b.WriteRune(r)
		case startOfWord:
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// padZeros left-pads a component with zeros up to width.
func padZeros(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
