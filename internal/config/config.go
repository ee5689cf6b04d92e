package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort              string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL           string `env:"DATABASE_URL"`
	RedisAddr             string `env:"REDIS_ADDR"`
	RedisPassword         string `env:"REDIS_PASSWORD"`
	RedisDB               int    `env:"REDIS_DB" envDefault:"0"`
	JWTSecret             string `env:"JWT_SECRET"`
	JWTIssuer             string `env:"JWT_ISSUER" envDefault:"saudade-match"`
	JWTAccessTTLMinutes   int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"15"`
	DefaultLocale         string `env:"DEFAULT_LOCALE" envDefault:"en"`
	ResultCacheSize       int    `env:"RESULT_CACHE_SIZE" envDefault:"1024"`
	ResultCacheTTLSeconds int    `env:"RESULT_CACHE_TTL_SECONDS" envDefault:"600"`
	MatchCandidateLimit   int    `env:"MATCH_CANDIDATE_LIMIT" envDefault:"200"`
	MatchWorkers          int    `env:"MATCH_WORKERS" envDefault:"8"`
	RateLimitPerMinute    int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	MetricsEnabled        bool   `env:"METRICS_ENABLED" envDefault:"true"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ResultCacheTTL() time.Duration {
	return time.Duration(c.ResultCacheTTLSeconds) * time.Second
}

func (c *Config) JWTAccessTTL() time.Duration {
	return time.Duration(c.JWTAccessTTLMinutes) * time.Minute
}
