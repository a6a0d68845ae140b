package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/format"
)

func TestDate(t *testing.T) {
	t.Run("returns normalized date", func(t *testing.T) {
		assert.Equal(t, "2024-03-05", format.Date("2024-03-05"))
	})

	t.Run("is idempotent on valid input", func(t *testing.T) {
		once := format.Date("2024-03-05")
		assert.Equal(t, once, format.Date(once))
	})

	t.Run("rejects unpadded input before padding", func(t *testing.T) {
		// The shape check runs first, so "2024-3-5" never reaches padding.
		assert.Equal(t, format.InvalidDateFormat, format.Date("2024-3-5"))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		assert.Equal(t, format.InvalidDateFormat, format.Date(""))
	})

	t.Run("rejects month out of range", func(t *testing.T) {
		assert.Equal(t, format.InvalidDateComponents, format.Date("2024-13-05"))
		assert.Equal(t, format.InvalidDateComponents, format.Date("2024-00-05"))
	})

	t.Run("rejects day out of range", func(t *testing.T) {
		assert.Equal(t, format.InvalidDateComponents, format.Date("2024-03-32"))
		assert.Equal(t, format.InvalidDateComponents, format.Date("2024-03-00"))
	})

	t.Run("does not enforce calendar validity", func(t *testing.T) {
		// February 31st passes; the day cap is a flat 31 for every month.
		assert.Equal(t, "2024-02-31", format.Date("2024-02-31"))
	})
}

func TestPhoneNumber(t *testing.T) {
	t.Run("formats ten digits", func(t *testing.T) {
		assert.Equal(t, "(123) 456-7890", format.PhoneNumber("1234567890"))
	})

	t.Run("leaves short input unchanged", func(t *testing.T) {
		assert.Equal(t, "12345", format.PhoneNumber("12345"))
	})

	t.Run("leaves separated digits unchanged", func(t *testing.T) {
		assert.Equal(t, "123-456-7890", format.PhoneNumber("123-456-7890"))
	})

	t.Run("rewrites only the first run", func(t *testing.T) {
		assert.Equal(t, "(123) 456-7890 or 0987654321", format.PhoneNumber("1234567890 or 0987654321"))
	})

	t.Run("rewrites the leading ten digits of a longer run", func(t *testing.T) {
		assert.Equal(t, "(123) 456-789012", format.PhoneNumber("123456789012"))
	})

	t.Run("preserves surrounding text", func(t *testing.T) {
		assert.Equal(t, "call (123) 456-7890 now", format.PhoneNumber("call 1234567890 now"))
	})

	t.Run("leaves empty input unchanged", func(t *testing.T) {
		assert.Equal(t, "", format.PhoneNumber(""))
	})
}

func TestCapitalizeName(t *testing.T) {
	t.Run("capitalizes each word", func(t *testing.T) {
		assert.Equal(t, "John Doe", format.CapitalizeName("john doe"))
	})

	t.Run("keeps interior letters untouched", func(t *testing.T) {
		assert.Equal(t, "McDONALD", format.CapitalizeName("mcDONALD"))
	})

	t.Run("does not trim", func(t *testing.T) {
		assert.Equal(t, "  John  Doe ", format.CapitalizeName("  john  doe "))
	})

	t.Run("handles tabs and newlines as delimiters", func(t *testing.T) {
		assert.Equal(t, "John\tDoe\nSmith", format.CapitalizeName("john\tdoe\nsmith"))
	})

	t.Run("ignores leading digits", func(t *testing.T) {
		assert.Equal(t, "3m Company", format.CapitalizeName("3m company"))
	})

	t.Run("handles empty input", func(t *testing.T) {
		assert.Equal(t, "", format.CapitalizeName(""))
	})
}

func TestCompose(t *testing.T) {
	t.Run("chains transforms in order", func(t *testing.T) {
		display := format.Compose(format.CapitalizeName, format.PhoneNumber)
		assert.Equal(t, "John (123) 456-7890", display("john 1234567890"))
	})

	t.Run("apply with no transforms returns input", func(t *testing.T) {
		assert.Equal(t, "x", format.Apply("x"))
	})
}
