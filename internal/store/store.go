// Package store defines the content store contract the site reads from.
// Single-item lookups return (nil, nil) when nothing matches; an error
// always means the store itself failed. When several documents match a
// lookup, backends order candidates by slug then _id and return the first.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/Londondannyboy/thechief-quest/internal/content"
)

// Backend names accepted by store.backend.
const (
	BackendSanity        = "sanity"
	BackendElasticsearch = "elasticsearch"
	BackendMemory        = "memory"
)

// ErrUnsupportedRecord is returned by Writers for unknown record types.
var ErrUnsupportedRecord = errors.New("unsupported record type")

// CountQuery names one of the site statistics counts.
type CountQuery string

const (
	CountActiveJobs     CountQuery = "active_jobs"
	CountLocationFacets CountQuery = "location_facets"
	CountIndustryFacets CountQuery = "industry_facets"
	CountAgencies       CountQuery = "agencies"
)

// SitemapDocument is the slice of a record the sitemap needs.
type SitemapDocument struct {
	Slug      string
	Type      content.Kind
	UpdatedAt time.Time
}

// Store is the read side pages depend on.
type Store interface {
	DocumentBySlug(ctx context.Context, slug string) (*content.Document, error)
	DocumentByTitlePattern(ctx context.Context, pattern string) (*content.Document, error)
	FeaturedBySectionKey(ctx context.Context, key string) (*content.FeaturedSection, error)

	// LocationContent matches location == code with no industry.
	LocationContent(ctx context.Context, code string) (*content.Document, error)
	// IndustryContent matches industry == code with no location.
	IndustryContent(ctx context.Context, code string) (*content.Document, error)
	ComboContent(ctx context.Context, location, industry string) (*content.Document, error)

	// Agencies are ordered by rating desc, then name.
	Agencies(ctx context.Context) ([]content.Agency, error)
	AgencyBySlug(ctx context.Context, slug string) (*content.Agency, error)

	// FAQs are ordered by helpful votes desc, then question.
	FAQs(ctx context.Context) ([]content.FAQ, error)
	FAQBySlug(ctx context.Context, slug string) (*content.FAQ, error)

	// ActiveJobs returns at most limit active jobs, newest first.
	ActiveJobs(ctx context.Context, limit int) ([]content.Job, error)
	JobBySlug(ctx context.Context, slug string) (*content.Job, error)

	// SitemapDocuments lists chiefOfStaff documents, agencies and FAQs.
	SitemapDocuments(ctx context.Context) ([]SitemapDocument, error)
	Count(ctx context.Context, q CountQuery) (int, error)
	// UKAverageSalary is the salary average of the first UK document, or
	// the zero Money when there is none.
	UKAverageSalary(ctx context.Context) (content.Money, error)
}

// Writer creates documents. Seeding uses it.
type Writer interface {
	Exists(ctx context.Context, kind content.Kind, slug string) (bool, error)
	Create(ctx context.Context, rec content.Record) error
}

// Catalog lists every stored record. Editorial validation uses it.
type Catalog interface {
	AllDocuments(ctx context.Context) ([]content.Record, error)
}

// Pinger reports store connectivity for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Backend is everything a concrete store implements.
type Backend interface {
	Store
	Writer
	Catalog
	Pinger
}

// IsUK reports whether a region value denotes the United Kingdom. Editors
// have stored both the enum value and the display code.
func IsUK(region string) bool {
	return region == content.RegionUK || region == "UK"
}
