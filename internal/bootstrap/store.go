package bootstrap

import (
	"context"
	"fmt"

	infraes "github.com/Londondannyboy/thechief-quest/infrastructure/elasticsearch"
	infrahttp "github.com/Londondannyboy/thechief-quest/infrastructure/http"
	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/internal/config"
	"github.com/Londondannyboy/thechief-quest/internal/store"
	esstore "github.com/Londondannyboy/thechief-quest/internal/store/elasticsearch"
	"github.com/Londondannyboy/thechief-quest/internal/store/memory"
	"github.com/Londondannyboy/thechief-quest/internal/store/sanity"
)

// OpenStore connects the configured content backend.
func OpenStore(ctx context.Context, cfg *config.Config, log logger.Logger) (store.Backend, error) {
	switch cfg.Store.Backend {
	case store.BackendSanity:
		httpClient := infrahttp.NewClient(&infrahttp.ClientConfig{Timeout: cfg.Sanity.Timeout})
		client, err := sanity.NewClient(cfg.Sanity, httpClient, log)
		if err != nil {
			return nil, fmt.Errorf("sanity client: %w", err)
		}
		log.Info("Content store: Sanity",
			logger.String("project_id", cfg.Sanity.ProjectID),
			logger.String("dataset", cfg.Sanity.Dataset),
		)
		return sanity.NewRepository(client), nil

	case store.BackendElasticsearch:
		client, err := infraes.NewClient(ctx, cfg.Elasticsearch, log)
		if err != nil {
			return nil, fmt.Errorf("elasticsearch client: %w", err)
		}
		repo := esstore.NewRepository(client, cfg.Elasticsearch.Index, log)
		if err = repo.EnsureIndex(ctx); err != nil {
			return nil, fmt.Errorf("ensure index: %w", err)
		}
		log.Info("Content store: Elasticsearch", logger.String("index", cfg.Elasticsearch.Index))
		return repo, nil

	case store.BackendMemory:
		log.Warn("Content store: in-memory, content is lost on restart")
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
