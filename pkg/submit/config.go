package submit

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig wraps environment parsing failures from LoadConfig.
var ErrParsingConfig = errors.New("failed to parse submission config")

// Config carries submission defaults from the environment.
type Config struct {
	Endpoint   string        `env:"FORM_SUBMIT_ENDPOINT"`                   // Endpoint is the default submission URL.
	Timeout    time.Duration `env:"FORM_SUBMIT_TIMEOUT" envDefault:"10s"`   // Timeout is the per-request timeout.
	MaxRetries int           `env:"FORM_SUBMIT_MAX_RETRIES" envDefault:"3"` // MaxRetries is the retry budget per submission.
}

// LoadConfig reads Config from environment variables, loading a .env file
// first when one exists.
func LoadConfig() (Config, error) {
	// The .env file is optional
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Options converts the config into submit options. Only non-zero values are
// applied, so unset variables fall back to the package defaults.
func (cfg Config) Options(opts ...SubmitOption) []SubmitOption {
	configOpts := make([]SubmitOption, 0, 2+len(opts))

	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	if cfg.MaxRetries >= 0 {
		configOpts = append(configOpts, WithMaxRetries(cfg.MaxRetries))
	}

	return append(configOpts, opts...)
}
