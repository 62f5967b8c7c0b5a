package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

var countQueries = map[store.CountQuery]string{
	store.CountActiveJobs:     `count(*[_type == "jobListing" && isActive == true])`,
	store.CountLocationFacets: `count(*[_type == "chiefOfStaff" && defined(location) && !defined(industry)])`,
	store.CountIndustryFacets: `count(*[_type == "chiefOfStaff" && defined(industry) && !defined(location)])`,
	store.CountAgencies:       `count(*[_type == "recruitmentAgency"])`,
}

// Repository implements store.Backend with GROQ queries.
type Repository struct {
	client *Client
}

var _ store.Backend = (*Repository)(nil)

// NewRepository wraps client.
func NewRepository(client *Client) *Repository {
	return &Repository{client: client}
}

func fetchOne[T any](ctx context.Context, c *Client, query string, params map[string]any) (*T, error) {
	var out *T
	if err := c.Fetch(ctx, query, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fetchMany[T any](ctx context.Context, c *Client, query string, params map[string]any) ([]T, error) {
	var out []T
	if err := c.Fetch(ctx, query, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

func (r *Repository) DocumentBySlug(ctx context.Context, slug string) (*content.Document, error) {
	return fetchOne[content.Document](ctx, r.client, queryDocumentBySlug, map[string]any{"slug": slug})
}

func (r *Repository) DocumentByTitlePattern(ctx context.Context, pattern string) (*content.Document, error) {
	return fetchOne[content.Document](ctx, r.client, queryDocumentByTitle, map[string]any{"pattern": pattern})
}

func (r *Repository) FeaturedBySectionKey(ctx context.Context, key string) (*content.FeaturedSection, error) {
	return fetchOne[content.FeaturedSection](ctx, r.client, queryFeatured, map[string]any{"key": key})
}

func (r *Repository) LocationContent(ctx context.Context, code string) (*content.Document, error) {
	return fetchOne[content.Document](ctx, r.client, queryLocation, map[string]any{"location": code})
}

func (r *Repository) IndustryContent(ctx context.Context, code string) (*content.Document, error) {
	return fetchOne[content.Document](ctx, r.client, queryIndustry, map[string]any{"industry": code})
}

func (r *Repository) ComboContent(ctx context.Context, location, industry string) (*content.Document, error) {
	return fetchOne[content.Document](ctx, r.client, queryCombo, map[string]any{"location": location, "industry": industry})
}

func (r *Repository) Agencies(ctx context.Context) ([]content.Agency, error) {
	return fetchMany[content.Agency](ctx, r.client, queryAgencies, nil)
}

func (r *Repository) AgencyBySlug(ctx context.Context, slug string) (*content.Agency, error) {
	return fetchOne[content.Agency](ctx, r.client, queryAgencyBySlug, map[string]any{"slug": slug})
}

func (r *Repository) FAQs(ctx context.Context) ([]content.FAQ, error) {
	return fetchMany[content.FAQ](ctx, r.client, queryFAQs, nil)
}

func (r *Repository) FAQBySlug(ctx context.Context, slug string) (*content.FAQ, error) {
	return fetchOne[content.FAQ](ctx, r.client, queryFAQBySlug, map[string]any{"slug": slug})
}

func (r *Repository) ActiveJobs(ctx context.Context, limit int) ([]content.Job, error) {
	return fetchMany[content.Job](ctx, r.client, queryActiveJobs, map[string]any{"limit": limit})
}

func (r *Repository) JobBySlug(ctx context.Context, slug string) (*content.Job, error) {
	return fetchOne[content.Job](ctx, r.client, queryJobBySlug, map[string]any{"slug": slug})
}

func (r *Repository) SitemapDocuments(ctx context.Context) ([]store.SitemapDocument, error) {
	rows, err := fetchMany[struct {
		Slug      string            `json:"slug"`
		Type      content.Kind      `json:"_type"`
		UpdatedAt content.Timestamp `json:"_updatedAt"`
	}](ctx, r.client, querySitemap, nil)
	if err != nil {
		return nil, err
	}

	out := make([]store.SitemapDocument, len(rows))
	for i, row := range rows {
		out[i] = store.SitemapDocument{Slug: row.Slug, Type: row.Type, UpdatedAt: row.UpdatedAt.Time}
	}
	return out, nil
}

func (r *Repository) Count(ctx context.Context, q store.CountQuery) (int, error) {
	query, ok := countQueries[q]
	if !ok {
		return 0, fmt.Errorf("unknown count query %q", q)
	}
	var n int
	if err := r.client.Fetch(ctx, query, nil, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repository) UKAverageSalary(ctx context.Context) (content.Money, error) {
	var m content.Money
	if err := r.client.Fetch(ctx, queryUKAverageSalary, nil, &m); err != nil {
		return content.Money{}, err
	}
	return m, nil
}

// AllDocuments lists every record, kind by kind.
func (r *Repository) AllDocuments(ctx context.Context) ([]content.Record, error) {
	var out []content.Record

	authors, err := fetchMany[content.Author](ctx, r.client, `*[_type == "author"] | `+tieBreak+authorProjection, nil)
	if err != nil {
		return nil, err
	}
	for i := range authors {
		out = append(out, &authors[i])
	}

	docs, err := fetchMany[content.Document](ctx, r.client, `*[_type == "chiefOfStaff"] | `+tieBreak+documentProjection, nil)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		out = append(out, &docs[i])
	}

	featured, err := fetchMany[content.FeaturedSection](ctx, r.client, `*[_type == "featuredContent"] | order(sectionKey.current asc)`+featuredProjection, nil)
	if err != nil {
		return nil, err
	}
	for i := range featured {
		out = append(out, &featured[i])
	}

	agencies, err := r.Agencies(ctx)
	if err != nil {
		return nil, err
	}
	for i := range agencies {
		out = append(out, &agencies[i])
	}

	faqs, err := r.FAQs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range faqs {
		out = append(out, &faqs[i])
	}

	jobs, err := fetchMany[content.Job](ctx, r.client, `*[_type == "jobListing"] | `+tieBreak+jobProjection, nil)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		out = append(out, &jobs[i])
	}
	return out, nil
}

// Exists checks for a record of kind with slug.
func (r *Repository) Exists(ctx context.Context, kind content.Kind, slug string) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("exists %q: %w", kind, store.ErrUnsupportedRecord)
	}

	query, params := queryExists, map[string]any{"type": string(kind), "slug": slug}
	if kind == content.KindFeaturedContent {
		query, params = queryFeaturedExists, map[string]any{"slug": slug}
	}

	var found bool
	if err := r.client.Fetch(ctx, query, params, &found); err != nil {
		return false, err
	}
	return found, nil
}

// Create writes rec as a new document.
func (r *Repository) Create(ctx context.Context, rec content.Record) error {
	doc, err := toSanityDocument(rec)
	if err != nil {
		return err
	}
	return r.client.Mutate(ctx, Mutation{"create": doc})
}

// toSanityDocument converts a record to the stored shape: _type set, slug
// strings as slug objects and the author as a reference.
func toSanityDocument(rec content.Record) (map[string]any, error) {
	if !rec.RecordKind().Valid() {
		return nil, fmt.Errorf("create %T: %w", rec, store.ErrUnsupportedRecord)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", rec.RecordKind(), err)
	}
	doc := map[string]any{}
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encode %s: %w", rec.RecordKind(), err)
	}

	doc["_type"] = string(rec.RecordKind())
	if rec.RecordID() == "" {
		doc["_id"] = uuid.NewString()
	}
	delete(doc, "_updatedAt")

	slugField := "slug"
	if rec.RecordKind() == content.KindFeaturedContent {
		slugField = "sectionKey"
	}
	if s := rec.RecordSlug(); s != "" {
		doc[slugField] = map[string]any{"_type": "slug", "current": s}
	}

	if d, ok := rec.(*content.Document); ok && d.Author != nil && d.Author.ID != "" {
		doc["author"] = map[string]any{"_type": "reference", "_ref": d.Author.ID}
	}
	if _, ok := doc["publishedAt"]; !ok && rec.RecordKind() == content.KindChiefOfStaff {
		doc["publishedAt"] = time.Now().UTC().Format(time.RFC3339)
	}
	return doc, nil
}
