// Package config resolves runtime settings from defaults and LOGIN_TEST_*
// environment variables.
package config

import (
	"strings"

	"login-test/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "LOGIN_TEST_"

// Config holds the ambient settings of the demo. None of them change the
// login semantics; the defaults reproduce the plain SHA-512 behaviour.
type Config struct {
	LogLevel      string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogJSON       bool   `koanf:"log_json"`
	HashAlgorithm string `koanf:"hash_algorithm" validate:"oneof=sha512 sha3-512 blake2b-512"`
}

func (c *Config) LoadDefaults() {
	c.LogLevel = "info"
	c.LogJSON = false
	c.HashAlgorithm = "sha512"
}

// Load applies defaults, overlays the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	k := koanf.New(".")
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			value = strings.TrimSpace(value)
			// An empty key makes the provider skip the variable.
			if value == "" {
				return "", nil
			}
			return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config failed")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.HashAlgorithm = strings.ToLower(cfg.HashAlgorithm)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
