package config

import "errors"

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

func (config MetricsConfig) validate() error {
	if config.Enabled && config.Address == "" {
		return errors.New("missing variable: address")
	}
	return nil
}

func (config MetricsConfig) bindEnvironmentVariables() error {
	return bindAll(map[string]string{
		"metrics.enabled": "METRICS_ENABLED",
		"metrics.address": "METRICS_ADDRESS",
	})
}
