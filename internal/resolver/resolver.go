// Package resolver maps a URL slug to a content document by trying an
// ordered list of lookup strategies.
package resolver

import (
	"context"

	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/metrics"
)

// Finder looks a slug up. A miss is (nil, nil).
type Finder func(ctx context.Context, slug string) (*content.Document, error)

// Strategy is one named lookup.
type Strategy struct {
	Name string
	Find Finder
}

// Result is a successful resolution.
type Result struct {
	Document *content.Document
	Strategy string
}

// Resolver evaluates its strategies in order and stops at the first hit.
type Resolver struct {
	name       string
	strategies []Strategy
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// New creates a resolver. m may be nil.
func New(name string, strategies []Strategy, m *metrics.Metrics, log logger.Logger) *Resolver {
	if log == nil {
		log = logger.NewNop()
	}
	return &Resolver{name: name, strategies: strategies, metrics: m, logger: log}
}

// Resolve returns ok=false when every strategy missed or failed. A failing
// strategy is logged and skipped.
func (r *Resolver) Resolve(ctx context.Context, slug string) (Result, bool) {
	log := logger.FromContextOr(ctx, r.logger)

	for _, s := range r.strategies {
		if err := ctx.Err(); err != nil {
			break
		}

		doc, err := s.Find(ctx, slug)
		if err != nil {
			log.Warn("Resolver strategy failed",
				logger.String("resolver", r.name),
				logger.String("strategy", s.Name),
				logger.Slug(slug),
				logger.Error(err),
			)
			continue
		}
		if doc == nil {
			continue
		}

		r.metrics.ResolverHit(s.Name)
		log.Debug("Slug resolved",
			logger.String("resolver", r.name),
			logger.String("strategy", s.Name),
			logger.Slug(slug),
		)
		return Result{Document: doc, Strategy: s.Name}, true
	}

	r.metrics.ResolverMiss()
	return Result{}, false
}

// Strategies returns the strategy names in evaluation order.
func (r *Resolver) Strategies() []string {
	names := make([]string, len(r.strategies))
	for i, s := range r.strategies {
		names[i] = s.Name
	}
	return names
}
