// Package stats collects the site-wide counts shown on the home page and
// keeps a periodically refreshed snapshot.
package stats

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

// Stats is one snapshot of the site counts.
type Stats struct {
	TotalJobs       int           `json:"totalJobs"`
	TotalLocations  int           `json:"totalLocations"`
	TotalIndustries int           `json:"totalIndustries"`
	TotalAgencies   int           `json:"totalAgencies"`
	AvgSalaryUK     content.Money `json:"avgSalaryUK"`
	CollectedAt     time.Time     `json:"collectedAt"`
}

// Collector runs the stats queries against a store.
type Collector struct {
	store store.Store
	now   func() time.Time
}

func NewCollector(s store.Store) *Collector {
	return &Collector{store: s, now: time.Now}
}

// Collect runs all queries concurrently. Any failure fails the collection.
func (c *Collector) Collect(ctx context.Context) (*Stats, error) {
	queries := []store.CountQuery{
		store.CountActiveJobs,
		store.CountLocationFacets,
		store.CountIndustryFacets,
		store.CountAgencies,
	}
	counts := make([]int, len(queries))
	var avg content.Money

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			n, err := c.store.Count(gctx, q)
			if err != nil {
				return fmt.Errorf("count %s: %w", q, err)
			}
			counts[i] = n
			return nil
		})
	}
	g.Go(func() error {
		m, err := c.store.UKAverageSalary(gctx)
		if err != nil {
			return fmt.Errorf("uk average salary: %w", err)
		}
		avg = m
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Stats{
		TotalJobs:       counts[0],
		TotalLocations:  counts[1],
		TotalIndustries: counts[2],
		TotalAgencies:   counts[3],
		AvgSalaryUK:     avg,
		CollectedAt:     c.now().UTC(),
	}, nil
}
