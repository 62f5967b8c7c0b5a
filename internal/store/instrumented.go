package store

import (
	"context"
	"time"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/metrics"
)

// Instrumented wraps a Store and records query latency per operation.
type Instrumented struct {
	next    Store
	metrics *metrics.Metrics
}

// NewInstrumented wraps next.
func NewInstrumented(next Store, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, metrics: m}
}

func observe[T any](s *Instrumented, op string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	s.metrics.ObserveStoreQuery(op, time.Since(start))
	return v, err
}

func (s *Instrumented) DocumentBySlug(ctx context.Context, slug string) (*content.Document, error) {
	return observe(s, "document_by_slug", func() (*content.Document, error) { return s.next.DocumentBySlug(ctx, slug) })
}

func (s *Instrumented) DocumentByTitlePattern(ctx context.Context, pattern string) (*content.Document, error) {
	return observe(s, "document_by_title_pattern", func() (*content.Document, error) {
		return s.next.DocumentByTitlePattern(ctx, pattern)
	})
}

func (s *Instrumented) FeaturedBySectionKey(ctx context.Context, key string) (*content.FeaturedSection, error) {
	return observe(s, "featured_by_section_key", func() (*content.FeaturedSection, error) {
		return s.next.FeaturedBySectionKey(ctx, key)
	})
}

func (s *Instrumented) LocationContent(ctx context.Context, code string) (*content.Document, error) {
	return observe(s, "location_content", func() (*content.Document, error) { return s.next.LocationContent(ctx, code) })
}

func (s *Instrumented) IndustryContent(ctx context.Context, code string) (*content.Document, error) {
	return observe(s, "industry_content", func() (*content.Document, error) { return s.next.IndustryContent(ctx, code) })
}

func (s *Instrumented) ComboContent(ctx context.Context, location, industry string) (*content.Document, error) {
	return observe(s, "combo_content", func() (*content.Document, error) {
		return s.next.ComboContent(ctx, location, industry)
	})
}

func (s *Instrumented) Agencies(ctx context.Context) ([]content.Agency, error) {
	return observe(s, "agencies", func() ([]content.Agency, error) { return s.next.Agencies(ctx) })
}

func (s *Instrumented) AgencyBySlug(ctx context.Context, slug string) (*content.Agency, error) {
	return observe(s, "agency_by_slug", func() (*content.Agency, error) { return s.next.AgencyBySlug(ctx, slug) })
}

func (s *Instrumented) FAQs(ctx context.Context) ([]content.FAQ, error) {
	return observe(s, "faqs", func() ([]content.FAQ, error) { return s.next.FAQs(ctx) })
}

func (s *Instrumented) FAQBySlug(ctx context.Context, slug string) (*content.FAQ, error) {
	return observe(s, "faq_by_slug", func() (*content.FAQ, error) { return s.next.FAQBySlug(ctx, slug) })
}

func (s *Instrumented) ActiveJobs(ctx context.Context, limit int) ([]content.Job, error) {
	return observe(s, "active_jobs", func() ([]content.Job, error) { return s.next.ActiveJobs(ctx, limit) })
}

func (s *Instrumented) JobBySlug(ctx context.Context, slug string) (*content.Job, error) {
	return observe(s, "job_by_slug", func() (*content.Job, error) { return s.next.JobBySlug(ctx, slug) })
}

func (s *Instrumented) SitemapDocuments(ctx context.Context) ([]SitemapDocument, error) {
	return observe(s, "sitemap_documents", func() ([]SitemapDocument, error) { return s.next.SitemapDocuments(ctx) })
}

func (s *Instrumented) Count(ctx context.Context, q CountQuery) (int, error) {
	return observe(s, "count_"+string(q), func() (int, error) { return s.next.Count(ctx, q) })
}

func (s *Instrumented) UKAverageSalary(ctx context.Context) (content.Money, error) {
	return observe(s, "uk_average_salary", func() (content.Money, error) { return s.next.UKAverageSalary(ctx) })
}
