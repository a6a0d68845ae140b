package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validate"
)

func TestPassword(t *testing.T) {
	t.Run("passes for strong password", func(t *testing.T) {
		assert.Equal(t, "", validate.Password("Ax7!?qZ"))
	})

	t.Run("fails without two special characters", func(t *testing.T) {
		assert.Equal(t, "password must contain at least 2 special characters", validate.Password("Passw0rd"))
	})

	t.Run("single special character is not enough", func(t *testing.T) {
		assert.Equal(t, "password must contain at least 2 special characters", validate.Password("Passw0rd!"))
	})

	t.Run("fails for sequential digits", func(t *testing.T) {
		assert.Equal(t, "password must not contain sequential characters like 123 or abc", validate.Password("Ax123!?Z"))
	})

	t.Run("fails for sequential letters", func(t *testing.T) {
		assert.Equal(t, "password must not contain sequential characters like 123 or abc", validate.Password("Zabc7!?Q"))
	})

	t.Run("fails for repeated characters", func(t *testing.T) {
		assert.Equal(t, "password must not repeat a character more than twice in a row", validate.Password("Axxx7!?Z"))
	})

	t.Run("double characters are allowed", func(t *testing.T) {
		assert.Equal(t, "", validate.Password("Axx7!?Z"))
	})

	t.Run("fails without a digit", func(t *testing.T) {
		assert.Equal(t, "password must contain at least one digit", validate.Password("Axbw!?Zq"))
	})

	t.Run("fails without a lowercase letter", func(t *testing.T) {
		assert.Equal(t, "password must contain at least one lowercase letter", validate.Password("AXBW7!?Z"))
	})

	t.Run("fails without an uppercase letter", func(t *testing.T) {
		assert.Equal(t, "password must contain at least one uppercase letter", validate.Password("axbw7!?z"))
	})

	t.Run("fails when too short", func(t *testing.T) {
		assert.Equal(t, "password must be 6-20 characters long", validate.Password("Ax7!?"))
	})

	t.Run("fails when too long", func(t *testing.T) {
		long := "Ax7!?" + strings.Repeat("qw", 8)
		assert.Equal(t, "password must be 6-20 characters long", validate.Password(long))
	})

	t.Run("passes at the length bounds", func(t *testing.T) {
		assert.Equal(t, "", validate.Password("Ax7!?q"))
		assert.Equal(t, "", validate.Password("Ax7!?"+strings.Repeat("qw", 7)+"q"))
	})

	t.Run("first violated rule wins", func(t *testing.T) {
		// Violates the special-character, digit, and length rules at once;
		// only the special-character message surfaces.
		assert.Equal(t, "password must contain at least 2 special characters", validate.Password("abc"))
	})
}

func TestPasswordNoSequential(t *testing.T) {
	t.Run("rejects tabulated runs as substrings", func(t *testing.T) {
		for _, value := range []string{"012", "x789y", "7890", "q1234w", "abc", "Zxyz9"} {
			rule := validate.PasswordNoSequential("password", value)
			assert.False(t, rule.Check(), "expected %q to be rejected", value)
		}
	})

	t.Run("ignores descending and wrapping runs", func(t *testing.T) {
		for _, value := range []string{"321", "cba", "901", "yza"} {
			rule := validate.PasswordNoSequential("password", value)
			assert.True(t, rule.Check(), "expected %q to pass", value)
		}
	})

	t.Run("ignores interrupted runs", func(t *testing.T) {
		rule := validate.PasswordNoSequential("password", "1a2b3c")
		assert.True(t, rule.Check())
	})

	t.Run("passes empty value", func(t *testing.T) {
		rule := validate.PasswordNoSequential("password", "")
		assert.True(t, rule.Check())
		assert.Equal(t, "validation.password_sequential", rule.Error.TranslationKey)
	})
}

func TestPasswordNoRepeats(t *testing.T) {
	t.Run("allows two in a row", func(t *testing.T) {
		rule := validate.PasswordNoRepeats("password", "aabbcc")
		assert.True(t, rule.Check())
	})

	t.Run("rejects three in a row", func(t *testing.T) {
		rule := validate.PasswordNoRepeats("password", "xaaay")
		assert.False(t, rule.Check())
		assert.Equal(t, "validation.password_repeating", rule.Error.TranslationKey)
	})

	t.Run("rejects longer runs", func(t *testing.T) {
		rule := validate.PasswordNoRepeats("password", "zzzzz")
		assert.False(t, rule.Check())
	})

	t.Run("passes empty value", func(t *testing.T) {
		rule := validate.PasswordNoRepeats("password", "")
		assert.True(t, rule.Check())
	})
}

func TestPasswordRules_Order(t *testing.T) {
	rules := validate.PasswordRules("password", "")
	assert.Len(t, rules, 7)

	keys := make([]string, 0, len(rules))
	for _, rule := range rules {
		keys = append(keys, rule.Error.TranslationKey)
	}
	assert.Equal(t, []string{
		"validation.password_special",
		"validation.password_sequential",
		"validation.password_repeating",
		"validation.password_digit",
		"validation.password_lowercase",
		"validation.password_uppercase",
		"validation.password_length",
	}, keys)
}
