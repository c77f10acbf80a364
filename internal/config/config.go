package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type ServerConfig struct {
	Port string
}

type LoggingConfig struct {
	Level     string
	Format    string
	Directory string
}

type KafkaConfig struct {
	Brokers      []string
	GroupID      string
	CatalogTopic string
}

type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	CacheTTL    time.Duration
	CachePrefix string
}

// CacheEnabled reports whether the response cache should run at all.
func (r RedisConfig) CacheEnabled() bool {
	return r.Addr != ""
}

type SecurityConfig struct {
	JWTSecret string
	AdminRole string
}

type PricingConfig struct {
	CatalogPath string
	Timezone    string
	// YearsBack/YearsAhead bound the precomputed holiday window around the
	// current year.
	YearsBack  int
	YearsAhead int
}

type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Security SecurityConfig
	Pricing  PricingConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: env("PORT", "8080"),
		},
		Logging: LoggingConfig{
			Level:     env("LOG_LEVEL", "info"),
			Format:    env("LOG_FORMAT", "text"),
			Directory: env("LOG_DIR", "./logs"),
		},
		Kafka: KafkaConfig{
			Brokers:      splitList(env("KAFKA_BROKERS", os.Getenv("KAFKA_BROKER"))),
			GroupID:      env("KAFKA_GROUP_ID", "korty-pricing"),
			CatalogTopic: env("KAFKA_CATALOG_TOPIC", "pricing.catalog.updated"),
		},
		Redis: RedisConfig{
			Addr:        os.Getenv("REDIS_ADDR"),
			Password:    os.Getenv("REDIS_PASSWORD"),
			CachePrefix: env("CACHE_PREFIX", "korty"),
		},
		Security: SecurityConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			AdminRole: env("ADMIN_ROLE", "admin"),
		},
		Pricing: PricingConfig{
			CatalogPath: env("CATALOG_PATH", "./config/clubs.yaml"),
			Timezone:    env("PRICING_TIMEZONE", "Europe/Warsaw"),
		},
	}

	var err error
	if cfg.Redis.DB, err = envInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.CacheTTL, err = envDuration("CACHE_TTL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.Pricing.YearsBack, err = envInt("HOLIDAY_YEARS_BACK", 1); err != nil {
		return nil, err
	}
	if cfg.Pricing.YearsAhead, err = envInt("HOLIDAY_YEARS_AHEAD", 1); err != nil {
		return nil, err
	}

	if cfg.Pricing.CatalogPath == "" {
		return nil, fmt.Errorf("CATALOG_PATH must not be empty")
	}
	return cfg, nil
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
