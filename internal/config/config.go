// Package config is the site's configuration: YAML with environment
// overrides, defaults and validation.
package config

import (
	"fmt"
	"strings"
	"time"

	infraconfig "github.com/Londondannyboy/thechief-quest/infrastructure/config"
	infraes "github.com/Londondannyboy/thechief-quest/infrastructure/elasticsearch"
	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	infraredis "github.com/Londondannyboy/thechief-quest/infrastructure/redis"
	"github.com/Londondannyboy/thechief-quest/internal/stats"
	"github.com/Londondannyboy/thechief-quest/internal/store"
	"github.com/Londondannyboy/thechief-quest/internal/store/sanity"
)

// DefaultPath is used when CONFIG_PATH is unset.
const DefaultPath = "config.yml"

// Config holds all configuration for the site.
type Config struct {
	Service       ServiceConfig     `yaml:"service"`
	Logging       logger.Config     `yaml:"logging"`
	Store         StoreConfig       `yaml:"store"`
	Sanity        sanity.Config     `yaml:"sanity"`
	Elasticsearch infraes.Config    `yaml:"elasticsearch"`
	Redis         infraredis.Config `yaml:"redis"`
	Stats         StatsConfig       `yaml:"stats"`
	CORS          CORSConfig        `yaml:"cors"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"THECHIEF_PORT"  yaml:"port"`
	Debug   bool   `env:"THECHIEF_DEBUG" yaml:"debug"`
	// BaseURL is the public origin used for canonical links and the sitemap.
	BaseURL string `env:"THECHIEF_BASE_URL" yaml:"base_url"`
	// Revalidate is how long rendered pages stay cached.
	Revalidate time.Duration `env:"THECHIEF_REVALIDATE" yaml:"revalidate"`
}

// StoreConfig selects the content backend.
type StoreConfig struct {
	Backend string `env:"STORE_BACKEND" yaml:"backend"`
}

// StatsConfig controls the statistics refresher.
type StatsConfig struct {
	Schedule string `env:"STATS_SCHEDULE" yaml:"schedule"`
}

// CORSConfig lists allowed origins; empty allows any.
type CORSConfig struct {
	Origins []string `env:"CORS_ORIGINS" yaml:"origins"`
}

// Load reads path, applies defaults and validates.
func Load(path string) (*Config, error) {
	cfg, err := infraconfig.LoadWithDefaults[Config](path, SetDefaults)
	if err != nil {
		return nil, err
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return cfg, nil
}

// SetDefaults applies default values to cfg.
func SetDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = "thechief-quest"
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = "1.0.0"
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = 8080
	}
	if cfg.Service.BaseURL == "" {
		cfg.Service.BaseURL = "https://thechief.quest"
	}
	cfg.Service.BaseURL = strings.TrimRight(cfg.Service.BaseURL, "/")
	if cfg.Service.Revalidate == 0 {
		cfg.Service.Revalidate = time.Hour
	}

	cfg.Logging.SetDefaults()

	if cfg.Store.Backend == "" {
		cfg.Store.Backend = store.BackendSanity
	}

	cfg.Sanity.SetDefaults()
	cfg.Elasticsearch.SetDefaults()

	if cfg.Redis.TTL == 0 {
		cfg.Redis.TTL = cfg.Service.Revalidate
	}

	if cfg.Stats.Schedule == "" {
		cfg.Stats.Schedule = stats.DefaultSchedule
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := infraconfig.ValidatePort("service.port", c.Service.Port); err != nil {
		return err
	}
	if err := infraconfig.ValidateURL("service.base_url", c.Service.BaseURL); err != nil {
		return err
	}
	if err := infraconfig.ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if err := infraconfig.ValidateLogFormat(c.Logging.Format); err != nil {
		return err
	}
	if err := infraconfig.ValidateOneOf("store.backend", c.Store.Backend,
		store.BackendSanity, store.BackendElasticsearch, store.BackendMemory); err != nil {
		return err
	}

	switch c.Store.Backend {
	case store.BackendSanity:
		if err := infraconfig.ValidateRequired("sanity.project_id", c.Sanity.ProjectID); err != nil {
			return err
		}
	case store.BackendElasticsearch:
		if err := infraconfig.ValidateURL("elasticsearch.url", c.Elasticsearch.URL); err != nil {
			return err
		}
		if err := infraconfig.ValidateRequired("elasticsearch.index", c.Elasticsearch.Index); err != nil {
			return err
		}
	}

	if c.Redis.Enabled {
		if err := infraconfig.ValidateRequired("redis.address", c.Redis.Address); err != nil {
			return err
		}
	}

	return nil
}
