package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger"`
	Bot     BotConfig     `mapstructure:"bot"`
	API     APIConfig     `mapstructure:"api"`
	DB      DBConfig      `mapstructure:"db"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

const defaultConfigFile = "./configs/config.yaml"

type section interface {
	validate() error
	bindEnvironmentVariables() error
}

func Get() *Config {

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Failed to load .env file: %v", err)
	}

	configFile := defaultConfigFile
	if value, ok := os.LookupEnv("CONFIG_PATH"); ok && value != "" {
		configFile = value
	}

	config, err := Load(configFile)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func Load(file string) (*Config, error) {

	viper.Reset()
	viper.SetConfigFile(file)
	setDefaults()

	if err := bindEnvironmentVariables(); err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", file, err)
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("logger.log_level", string(LevelInfo))
	viper.SetDefault("logger.app_name", "recruithub-bot")
	viper.SetDefault("logger.output_file", "./logs/errors.log")
	viper.SetDefault("bot.ai_model", "gemini-1.5-flash")
	viper.SetDefault("bot.timezone", "UTC")
	viper.SetDefault("api.timeout", "15s")
	viper.SetDefault("db.session_cleanup_schedule", "@hourly")
	viper.SetDefault("metrics.address", ":8080")
}

func (config Config) sections() map[string]section {
	return map[string]section{
		"LoggerConfig":  config.Logger,
		"BotConfig":     config.Bot,
		"APIConfig":     config.API,
		"DBConfig":      config.DB,
		"MetricsConfig": config.Metrics,
	}
}

func bindEnvironmentVariables() error {
	var errs []error

	for name, s := range (Config{}).sections() {
		if err := s.bindEnvironmentVariables(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return createMultiError(errs)
}

func (config Config) validate() error {
	var errs []error

	for name, s := range config.sections() {
		if err := s.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return createMultiError(errs)
}

func bindAll(bindings map[string]string) error {
	var errs []error
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			errs = append(errs, err)
		}
	}
	return createMultiError(errs)
}

func createMultiError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
}
