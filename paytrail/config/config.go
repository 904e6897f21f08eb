// Package config loads client credentials and connection settings from a
// YAML file and the environment. Environment variables take precedence.
package config

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	MerchantID   int           `yaml:"merchant_id" env:"PAYTRAIL_MERCHANT_ID" env-required:"true"`
	SecretKey    string        `yaml:"secret_key" env:"PAYTRAIL_SECRET_KEY" env-required:"true"`
	PlatformName string        `yaml:"platform_name" env:"PAYTRAIL_PLATFORM_NAME" env-default:"paytrail-go"`
	BaseURL      string        `yaml:"base_url" env:"PAYTRAIL_BASE_URL" env-default:"https://services.paytrail.com"`
	Timeout      time.Duration `yaml:"timeout" env:"PAYTRAIL_TIMEOUT" env-default:"10s"`
}

// Load reads path when it is not empty, otherwise the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(cfg, nil)
		return nil, errors.Wrapf(err, "load config; %s", desc)
	}
	return cfg, nil
}

// Usage describes the supported environment variables.
func Usage() string {
	desc, _ := cleanenv.GetDescription(&Config{}, nil)
	return desc
}
