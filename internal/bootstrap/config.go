package bootstrap

import (
	"fmt"

	infraconfig "github.com/Londondannyboy/thechief-quest/infrastructure/config"
	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/internal/config"
)

// LoadConfig loads the site configuration from CONFIG_PATH or config.yml.
func LoadConfig() (*config.Config, error) {
	return LoadConfigFrom(infraconfig.GetConfigPath(config.DefaultPath))
}

// LoadConfigFrom loads and validates the configuration at path.
func LoadConfigFrom(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates the service logger from configuration.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	logCfg := cfg.Logging
	logCfg.Development = logCfg.Development || cfg.Service.Debug

	log, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}
