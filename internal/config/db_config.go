package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

type DBConfig struct {
	ConnectionString       string `mapstructure:"connection_string"`
	SessionCleanupSchedule string `mapstructure:"session_cleanup_schedule"`
}

func (config DBConfig) validate() error {
	if config.ConnectionString == "" {
		return fmt.Errorf("missing variable: db connection string")
	}
	if _, err := cron.ParseStandard(config.SessionCleanupSchedule); err != nil {
		return fmt.Errorf("invalid session_cleanup_schedule: %w", err)
	}
	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING")
}
