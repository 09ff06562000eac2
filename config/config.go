package config

import (
	"errors"
	"strings"

	"github.com/embedviz/embedviz/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

// LoadConfig loads the config file and ENV variables into a Config struct.
// A missing config file is not an error: defaults and ENV alone are enough
// to run the server.
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("EMBEDVIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	// Secrets are only ever read from the environment
	for key, env := range map[string]string{
		"auth.secret":               "EMBEDVIZ_AUTH_SECRET",
		"embeddings.openai_api_key": "EMBEDVIZ_OPENAI_API_KEY",
		"analytics.api_key":         "EMBEDVIZ_ANALYTICS_API_KEY",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("Error binding environment variable: %s", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.api_prefix", "/api")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("auth.required", true)
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.host", "localhost")
	viper.SetDefault("cache.port", 6379)
	viper.SetDefault("cache.db", 0)
	viper.SetDefault("cache.ttl_seconds", 3600)
	viper.SetDefault("rate_limit.enabled", false)
	viper.SetDefault("rate_limit.requests_per_minute", 5)
	viper.SetDefault("embeddings.service", "openai")
	viper.SetDefault("embeddings.model", "text-embedding-3-small")
	viper.SetDefault("embeddings.dimensions", 1536)
	viper.SetDefault("analytics.enabled", false)
	viper.SetDefault("analytics.host", "https://app.posthog.com")
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Warn(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
