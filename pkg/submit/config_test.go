package submit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/submit"
)

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := submit.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, 3, cfg.MaxRetries)
	})

	t.Run("reads environment variables", func(t *testing.T) {
		t.Setenv("FORM_SUBMIT_ENDPOINT", "https://api.example.com/forms")
		t.Setenv("FORM_SUBMIT_TIMEOUT", "2s")
		t.Setenv("FORM_SUBMIT_MAX_RETRIES", "1")

		cfg, err := submit.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/forms", cfg.Endpoint)
		assert.Equal(t, 2*time.Second, cfg.Timeout)
		assert.Equal(t, 1, cfg.MaxRetries)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Setenv("FORM_SUBMIT_TIMEOUT", "not-a-duration")

		_, err := submit.LoadConfig()
		assert.ErrorIs(t, err, submit.ErrParsingConfig)
	})
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	t.Run("converts non-zero values", func(t *testing.T) {
		cfg := submit.Config{Timeout: 5 * time.Second, MaxRetries: 2}
		assert.Len(t, cfg.Options(), 2)
	})

	t.Run("appends extra options", func(t *testing.T) {
		cfg := submit.Config{Timeout: 5 * time.Second, MaxRetries: 2}
		opts := cfg.Options(submit.WithNoRetry())
		assert.Len(t, opts, 3)
	})
}
