package config

// Config holds the configuration of the application.
// Use config.LoadConfig to create a new instance.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Cache      CacheConfig      `mapstructure:"cache"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Embeddings EmbeddingsConfig `mapstructure:"embeddings"`
	Analytics  AnalyticsConfig  `mapstructure:"analytics"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
	// APIPrefix is prepended to all routes, including the health check.
	APIPrefix string `mapstructure:"api_prefix"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	// Secret is loaded from ENV not config file.
	Secret   string `mapstructure:"secret"`
	Required bool   `mapstructure:"required"`
}

type CacheConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	DB       int    `mapstructure:"db"`
	Password string `mapstructure:"password"`
	// TTLSeconds is the expiry applied to cached embedding entries.
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
}

type EmbeddingsConfig struct {
	Service    string `mapstructure:"service"`
	Model      string `mapstructure:"model"`
	Dimensions int    `mapstructure:"dimensions"`
	// OpenAIAPIKey is loaded from ENV not config file.
	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	// OpenAIEndpoint overrides the default OpenAI API base URL. Optional.
	OpenAIEndpoint string `mapstructure:"openai_endpoint"`
}

type AnalyticsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// APIKey is loaded from ENV not config file.
	APIKey string `mapstructure:"api_key"`
	Host   string `mapstructure:"host"`
}
