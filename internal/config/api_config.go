package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

type APIConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	Timeout              time.Duration `mapstructure:"timeout"`
	MaxRequestsPerSecond float32       `mapstructure:"max_requests_per_second"`
}

func (config APIConfig) validate() error {
	var errs []error

	if config.BaseURL == "" {
		errs = append(errs, errors.New("missing variable: base_url"))
	} else if parsed, err := url.Parse(config.BaseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		errs = append(errs, fmt.Errorf("invalid base_url: %s", config.BaseURL))
	}

	if config.Timeout <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}

	return createMultiError(errs)
}

func (config APIConfig) bindEnvironmentVariables() error {
	return bindAll(map[string]string{
		"api.base_url":                "API_BASE_URL",
		"api.timeout":                 "API_TIMEOUT",
		"api.max_requests_per_second": "API_MAX_REQUESTS_PER_SECOND",
	})
}
