package bootstrap

import (
	"context"
	"fmt"

	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	infraredis "github.com/Londondannyboy/thechief-quest/infrastructure/redis"
	"github.com/Londondannyboy/thechief-quest/internal/cache"
	"github.com/Londondannyboy/thechief-quest/internal/config"
	"github.com/Londondannyboy/thechief-quest/internal/metrics"
)

// SetupCache connects the page cache. It returns nil when Redis is disabled.
func SetupCache(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log logger.Logger) (*cache.PageCache, error) {
	if !cfg.Redis.Enabled {
		log.Info("Page cache disabled")
		return nil, nil
	}

	client, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	log.Info("Page cache connected",
		logger.String("address", cfg.Redis.Address),
		logger.Duration("ttl", cfg.Redis.TTL),
	)
	return cache.New(client, cfg.Redis.TTL, m, log), nil
}
