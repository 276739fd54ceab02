package config

import (
	"errors"
	"fmt"
	"time"
)

type BotConfig struct {
	Token                  string  `mapstructure:"token"`
	AIKey                  string  `mapstructure:"ai_key"`
	AIModel                string  `mapstructure:"ai_model"`
	Timezone               string  `mapstructure:"timezone"`
	AiMaxRequestsPerMinute float32 `mapstructure:"ai_max_requests_per_minute"`
	AiMaxRequestsPerDay    float32 `mapstructure:"ai_max_requests_per_day"`
}

// SmartSearchEnabled reports whether free-text search through the AI model is available.
func (config BotConfig) SmartSearchEnabled() bool {
	return config.AIKey != ""
}

func (config BotConfig) Location() *time.Location {
	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}

func (config BotConfig) validate() error {

	var errs []error

	if config.Token == "" {
		errs = append(errs, errors.New("missing required variables: token"))
	}

	if _, err := time.LoadLocation(config.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid timezone %q: %w", config.Timezone, err))
	}

	if config.AiMaxRequestsPerMinute < 0 || config.AiMaxRequestsPerDay < 0 {
		errs = append(errs, errors.New("ai request limits must not be negative"))
	}

	return createMultiError(errs)
}

func (config BotConfig) bindEnvironmentVariables() error {
	return bindAll(map[string]string{
		"bot.token":    "TOKEN",
		"bot.ai_key":   "AI_KEY",
		"bot.ai_model": "AI_MODEL",
		"bot.timezone": "TIMEZONE",
	})
}
