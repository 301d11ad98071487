// Package config loads application configuration from defaults, an optional
// YAML file, and CMP_-prefixed environment variables, in that precedence
// order. Decoded configuration is validated before use; a process never runs
// with a config it could not validate.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. CMP_SERVER_ADDRESS.
const envPrefix = "CMP"

// Config is the full application configuration.
type Config struct {
	Site     SiteConfig     `mapstructure:"site"`
	Registry RegistryConfig `mapstructure:"registry"`
	Planner  PlannerConfig  `mapstructure:"planner"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Market   MarketConfig   `mapstructure:"market"`
	Sitemap  SitemapConfig  `mapstructure:"sitemap"`
	Server   ServerConfig   `mapstructure:"server"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// SiteConfig identifies the public site the engine governs.
type SiteConfig struct {
	// BaseURL is the site origin, without a trailing slash.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	// OGImageBase is the CDN prefix for social preview images.
	OGImageBase string `mapstructure:"og_image_base" validate:"required,url"`
}

// RegistryConfig locates the city registry data.
type RegistryConfig struct {
	// Path points at a cities YAML file; empty selects the embedded default.
	Path string `mapstructure:"path"`
}

// PlannerConfig tunes the generation planner.
type PlannerConfig struct {
	BatchSize     int           `mapstructure:"batch_size" validate:"gt=0"`
	GlobalPageCap int           `mapstructure:"global_page_cap" validate:"gt=0"`
	Tier1Cap      int           `mapstructure:"tier1_cap" validate:"gt=0"`
	Tier2Cap      int           `mapstructure:"tier2_cap" validate:"gt=0"`
	Tier3Cap      int           `mapstructure:"tier3_cap" validate:"gt=0"`
	TimeBudget    time.Duration `mapstructure:"time_budget" validate:"gt=0"`
	PageBuildCost time.Duration `mapstructure:"page_build_cost" validate:"gt=0"`
	ISRThreshold  int           `mapstructure:"isr_threshold" validate:"gt=0"`
	Concurrency   int           `mapstructure:"concurrency" validate:"gt=0"`
}

// CacheConfig selects and tunes the decision cache.
type CacheConfig struct {
	// Backend is the cache implementation: memory, redis, or none.
	Backend    string        `mapstructure:"backend" validate:"oneof=memory redis none"`
	MaxEntries int           `mapstructure:"max_entries" validate:"gt=0"`
	TTL        time.Duration `mapstructure:"ttl" validate:"gte=0"`
	Redis      RedisConfig   `mapstructure:"redis"`
}

// RedisConfig holds connection settings for the Redis cache backend.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

// MarketConfig selects the market-data provider.
type MarketConfig struct {
	// Source is the provider implementation: none, file, or elastic.
	Source string `mapstructure:"source" validate:"oneof=none file elastic"`
	// SnapshotPath is the YAML snapshot for the file provider.
	SnapshotPath string        `mapstructure:"snapshot_path"`
	Elastic      ElasticConfig `mapstructure:"elastic"`
}

// ElasticConfig holds connection settings for the Elasticsearch provider.
type ElasticConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Index     string   `mapstructure:"index"`
	APIKey    string   `mapstructure:"api_key"`
}

// SitemapConfig tunes sitemap emission.
type SitemapConfig struct {
	// OutDir is where the sitemap command writes its XML files.
	OutDir string `mapstructure:"out_dir" validate:"required"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address      string        `mapstructure:"address" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// validate is shared across Load calls; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from defaults, the YAML file at path (optional;
// empty looks for config.yaml in the working directory), and environment
// variables prefixed with CMP_.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing implicit config file is fine; an explicit one is not.
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
