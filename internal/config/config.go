package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Redis      RedisConfig
	AI         AIConfig
	Assessment AssessmentConfig `mapstructure:"assessment"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// AIConfig drives the text-generation call and its retry envelope.
type AIConfig struct {
	BaseURL         string  `mapstructure:"base_url"`
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model"`
	Temperature     float64 `mapstructure:"temperature"`
	MaxTokens       int     `mapstructure:"max_tokens"`
	ReasoningEffort string  `mapstructure:"reasoning_effort"`
	MaxRetries      int     `mapstructure:"max_retries"`
	BaseDelayMs     int     `mapstructure:"base_delay_ms"`
	TimeoutMs       int     `mapstructure:"timeout_ms"`
}

type AssessmentConfig struct {
	// Delay before a submitted answer auto-advances to the next question.
	// Zero makes Answer advance synchronously.
	AutoAdvanceDelayMs int  `mapstructure:"auto_advance_delay_ms"`
	GuestMode          bool `mapstructure:"guest_mode"`
}

type CacheConfig struct {
	AnalysisTTLHours int `mapstructure:"analysis_ttl_hours"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("RELATIONSHIP_MOJO")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// AI
	viper.BindEnv("ai.base_url", "AI_BASE_URL")
	viper.BindEnv("ai.api_key", "AI_API_KEY")
	viper.BindEnv("ai.model", "AI_MODEL")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	applyAIDefaults(&cfg.AI)

	if cfg.Cache.AnalysisTTLHours <= 0 {
		cfg.Cache.AnalysisTTLHours = 24
	}

	return &cfg, nil
}

func applyAIDefaults(ai *AIConfig) {
	if ai.Temperature == 0 {
		ai.Temperature = 0.7
	}
	if ai.MaxTokens == 0 {
		ai.MaxTokens = 4000
	}
	if ai.ReasoningEffort == "" {
		ai.ReasoningEffort = "high"
	}
	if ai.MaxRetries == 0 {
		ai.MaxRetries = 3
	}
	if ai.BaseDelayMs == 0 {
		ai.BaseDelayMs = 1000
	}
	if ai.TimeoutMs == 0 {
		ai.TimeoutMs = 30000
	}
}
