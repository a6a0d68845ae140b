// Package format provides display formatters for user-facing form values:
// phone numbers, personal names, and dates.
//
// All formatters are pure string transforms. None of them reject input with
// an error: PhoneNumber and CapitalizeName pass unrecognized input through
// unchanged, while Date substitutes one of two exported sentinel strings
// (InvalidDateFormat, InvalidDateComponents) that callers compare against
// exactly. Re-validate or check the sentinels before trusting a formatted
// date.
//
// Formatters chain with Apply and Compose:
//
//	display := format.Apply(raw, format.CapitalizeName)
//	normalize := format.Compose(format.PhoneNumber)
package format
