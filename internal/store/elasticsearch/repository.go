// Package elasticsearch is the search-index backend of the content store.
// Every record lives in one index, discriminated by doc_type.
package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"

	infraes "github.com/Londondannyboy/thechief-quest/infrastructure/elasticsearch"
	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

const (
	maxListSize = 1000
	pingTimeout = 5 * time.Second
)

// Repository implements store.Backend over one index.
type Repository struct {
	client *es.Client
	index  string
	log    logger.Logger
}

var _ store.Backend = (*Repository)(nil)

// NewRepository wraps an already verified client.
func NewRepository(client *es.Client, index string, log logger.Logger) *Repository {
	if log == nil {
		log = logger.NewNop()
	}
	return &Repository{client: client, index: index, log: log}
}

// indexedDoc is the stored document: flat filter fields plus the record.
type indexedDoc struct {
	DocType    content.Kind    `json:"doc_type"`
	ID         string          `json:"id"`
	Slug       string          `json:"slug,omitempty"`
	Title      string          `json:"title,omitempty"`
	PageTitle  string          `json:"page_title,omitempty"`
	MetaTitle  string          `json:"meta_title,omitempty"`
	Location   string          `json:"location,omitempty"`
	Industry   string          `json:"industry,omitempty"`
	Region     string          `json:"region,omitempty"`
	Name       string          `json:"name,omitempty"`
	Question   string          `json:"question,omitempty"`
	Rating     float64         `json:"rating,omitempty"`
	Helpful    int             `json:"helpful,omitempty"`
	IsActive   bool            `json:"is_active,omitempty"`
	PostedDate *time.Time      `json:"posted_date,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Payload    json.RawMessage `json:"payload"`
}

func newIndexedDoc(rec content.Record, now time.Time) (*indexedDoc, error) {
	d := &indexedDoc{
		DocType:   rec.RecordKind(),
		ID:        rec.RecordID(),
		Slug:      rec.RecordSlug(),
		UpdatedAt: now,
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	switch r := rec.(type) {
	case *content.Document:
		d.Title, d.PageTitle, d.MetaTitle = r.Title, r.PageTitle, r.MetaTitle
		d.Location, d.Industry, d.Region = r.Location, r.Industry, r.Region
	case *content.FeaturedSection:
		d.Title, d.IsActive = r.Title, r.IsActive
	case *content.Agency:
		d.Name, d.Rating = r.Name, r.Rating
	case *content.FAQ:
		d.Question, d.Helpful = r.Question, r.Helpful
	case *content.Job:
		d.Title, d.IsActive = r.Title, r.IsActive
		if !r.PostedDate.IsZero() {
			t := r.PostedDate.Time
			d.PostedDate = &t
		}
	case *content.Author:
		d.Name = r.Name
	default:
		return nil, fmt.Errorf("index %T: %w", rec, store.ErrUnsupportedRecord)
	}

	payload, err := encodePayload(rec, d)
	if err != nil {
		return nil, err
	}
	d.Payload = payload
	return d, nil
}

// encodePayload stores the record with the system fields the index owns.
func encodePayload(rec content.Record, d *indexedDoc) (json.RawMessage, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", d.DocType, err)
	}
	var fields map[string]any
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("encode %s: %w", d.DocType, err)
	}
	fields["_id"] = d.ID
	fields["_updatedAt"] = d.UpdatedAt.Format(time.RFC3339)
	if d.DocType == content.KindChiefOfStaff {
		fields["_type"] = string(d.DocType)
	}
	return json.Marshal(fields)
}

func decodePayload[T any](d *indexedDoc) (*T, error) {
	var out T
	if err := json.Unmarshal(d.Payload, &out); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", d.DocType, err)
	}
	return &out, nil
}

// EnsureIndex creates the index with its mapping when missing.
func (r *Repository) EnsureIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, err := json.Marshal(indexMapping)
	if err != nil {
		return fmt.Errorf("encode mapping: %w", err)
	}
	res, err = r.client.Indices.Create(r.index,
		r.client.Indices.Create.WithContext(ctx),
		r.client.Indices.Create.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer res.Body.Close()
	if err = responseError("create index", res); err != nil {
		return err
	}

	r.log.Info("Created content index", logger.String("index", r.index))
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return infraes.Ping(ctx, r.client, pingTimeout)
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source indexedDoc `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (r *Repository) search(ctx context.Context, query map[string]any, sort []any, size int) ([]indexedDoc, error) {
	body := map[string]any{"query": query, "size": size}
	if len(sort) > 0 {
		body["sort"] = sort
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode search: %w", err)
	}

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(encoded)),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()
	if err = responseError("search", res); err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err = json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]indexedDoc, len(parsed.Hits.Hits))
	for i, h := range parsed.Hits.Hits {
		out[i] = h.Source
	}
	return out, nil
}

func (r *Repository) count(ctx context.Context, query map[string]any) (int, error) {
	encoded, err := json.Marshal(map[string]any{"query": query})
	if err != nil {
		return 0, fmt.Errorf("encode count: %w", err)
	}

	res, err := r.client.Count(
		r.client.Count.WithContext(ctx),
		r.client.Count.WithIndex(r.index),
		r.client.Count.WithBody(bytes.NewReader(encoded)),
	)
	if err != nil {
		return 0, fmt.Errorf("count request failed: %w", err)
	}
	defer res.Body.Close()
	if err = responseError("count", res); err != nil {
		return 0, err
	}

	var parsed struct {
		Count int `json:"count"`
	}
	if err = json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("decode count response: %w", err)
	}
	return parsed.Count, nil
}

func responseError(op string, res *esapi.Response) error {
	if !res.IsError() {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
	return fmt.Errorf("%s returned error [%d]: %s", op, res.StatusCode, strings.TrimSpace(string(body)))
}

func (r *Repository) firstDocument(ctx context.Context, query map[string]any) (*content.Document, error) {
	hits, err := r.search(ctx, query, tieBreak, 1)
	if err != nil || len(hits) == 0 {
		return nil, err
	}
	return decodePayload[content.Document](&hits[0])
}

func (r *Repository) DocumentBySlug(ctx context.Context, slug string) (*content.Document, error) {
	return r.firstDocument(ctx, filtered([]any{ofType(content.KindChiefOfStaff), term(fieldSlug, slug)}, nil))
}

func (r *Repository) DocumentByTitlePattern(ctx context.Context, pattern string) (*content.Document, error) {
	return r.firstDocument(ctx, titlePatternQuery(pattern))
}

func (r *Repository) LocationContent(ctx context.Context, code string) (*content.Document, error) {
	return r.firstDocument(ctx, filtered(
		[]any{ofType(content.KindChiefOfStaff), term(fieldLocation, code)},
		[]any{exists(fieldIndustry)},
	))
}

func (r *Repository) IndustryContent(ctx context.Context, code string) (*content.Document, error) {
	return r.firstDocument(ctx, filtered(
		[]any{ofType(content.KindChiefOfStaff), term(fieldIndustry, code)},
		[]any{exists(fieldLocation)},
	))
}

func (r *Repository) ComboContent(ctx context.Context, location, industry string) (*content.Document, error) {
	return r.firstDocument(ctx, filtered(
		[]any{ofType(content.KindChiefOfStaff), term(fieldLocation, location), term(fieldIndustry, industry)},
		nil,
	))
}

func (r *Repository) FeaturedBySectionKey(ctx context.Context, key string) (*content.FeaturedSection, error) {
	hits, err := r.search(ctx, filtered(
		[]any{ofType(content.KindFeaturedContent), term(fieldSlug, key)}, nil,
	), tieBreak, 1)
	if err != nil || len(hits) == 0 {
		return nil, err
	}
	return decodePayload[content.FeaturedSection](&hits[0])
}

func decodeAll[T any](hits []indexedDoc) ([]T, error) {
	out := make([]T, 0, len(hits))
	for i := range hits {
		v, err := decodePayload[T](&hits[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *Repository) Agencies(ctx context.Context) ([]content.Agency, error) {
	hits, err := r.search(ctx, filtered([]any{ofType(content.KindRecruitmentAgency)}, nil),
		sortBy(fieldRating, "desc", fieldName, "asc"), maxListSize)
	if err != nil {
		return nil, err
	}
	return decodeAll[content.Agency](hits)
}

func (r *Repository) AgencyBySlug(ctx context.Context, slug string) (*content.Agency, error) {
	hits, err := r.search(ctx, filtered([]any{ofType(content.KindRecruitmentAgency), term(fieldSlug, slug)}, nil), tieBreak, 1)
	if err != nil || len(hits) == 0 {
		return nil, err
	}
	return decodePayload[content.Agency](&hits[0])
}

func (r *Repository) FAQs(ctx context.Context) ([]content.FAQ, error) {
	hits, err := r.search(ctx, filtered([]any{ofType(content.KindFAQ)}, nil),
		sortBy(fieldHelpful, "desc", fieldQuestion, "asc"), maxListSize)
	if err != nil {
		return nil, err
	}
	return decodeAll[content.FAQ](hits)
}

func (r *Repository) FAQBySlug(ctx context.Context, slug string) (*content.FAQ, error) {
	hits, err := r.search(ctx, filtered([]any{ofType(content.KindFAQ), term(fieldSlug, slug)}, nil), tieBreak, 1)
	if err != nil || len(hits) == 0 {
		return nil, err
	}
	return decodePayload[content.FAQ](&hits[0])
}

func (r *Repository) ActiveJobs(ctx context.Context, limit int) ([]content.Job, error) {
	if limit <= 0 {
		limit = maxListSize
	}
	hits, err := r.search(ctx, filtered([]any{ofType(content.KindJobListing), term(fieldIsActive, true)}, nil),
		sortBy(fieldPostedDate, "desc", fieldSlug, "asc"), limit)
	if err != nil {
		return nil, err
	}
	return decodeAll[content.Job](hits)
}

func (r *Repository) JobBySlug(ctx context.Context, slug string) (*content.Job, error) {
	hits, err := r.search(ctx, filtered([]any{ofType(content.KindJobListing), term(fieldSlug, slug)}, nil), tieBreak, 1)
	if err != nil || len(hits) == 0 {
		return nil, err
	}
	return decodePayload[content.Job](&hits[0])
}

func (r *Repository) SitemapDocuments(ctx context.Context) ([]store.SitemapDocument, error) {
	hits, err := r.search(ctx, map[string]any{
		"terms": map[string]any{fieldDocType: []string{
			string(content.KindChiefOfStaff), string(content.KindRecruitmentAgency), string(content.KindFAQ),
		}},
	}, sortBy(fieldDocType, "asc", fieldSlug, "asc"), maxListSize)
	if err != nil {
		return nil, err
	}

	out := make([]store.SitemapDocument, 0, len(hits))
	for _, h := range hits {
		if h.Slug == "" {
			continue
		}
		out = append(out, store.SitemapDocument{Slug: h.Slug, Type: h.DocType, UpdatedAt: h.UpdatedAt})
	}
	return out, nil
}

func (r *Repository) Count(ctx context.Context, q store.CountQuery) (int, error) {
	var query map[string]any
	switch q {
	case store.CountActiveJobs:
		query = filtered([]any{ofType(content.KindJobListing), term(fieldIsActive, true)}, nil)
	case store.CountLocationFacets:
		query = filtered([]any{ofType(content.KindChiefOfStaff), exists(fieldLocation)}, []any{exists(fieldIndustry)})
	case store.CountIndustryFacets:
		query = filtered([]any{ofType(content.KindChiefOfStaff), exists(fieldIndustry)}, []any{exists(fieldLocation)})
	case store.CountAgencies:
		query = filtered([]any{ofType(content.KindRecruitmentAgency)}, nil)
	default:
		return 0, fmt.Errorf("unknown count query %q", q)
	}
	return r.count(ctx, query)
}

func (r *Repository) UKAverageSalary(ctx context.Context) (content.Money, error) {
	doc, err := r.firstDocument(ctx, filtered([]any{
		ofType(content.KindChiefOfStaff),
		map[string]any{"terms": map[string]any{fieldRegion: []string{content.RegionUK, "UK"}}},
	}, nil))
	if err != nil || doc == nil || doc.SalaryData == nil {
		return content.Money{}, err
	}
	return doc.SalaryData.Average, nil
}

// AllDocuments lists every record in the index.
func (r *Repository) AllDocuments(ctx context.Context) ([]content.Record, error) {
	hits, err := r.search(ctx, map[string]any{"match_all": map[string]any{}},
		sortBy(fieldDocType, "asc", fieldSlug, "asc"), maxListSize)
	if err != nil {
		return nil, err
	}

	out := make([]content.Record, 0, len(hits))
	for i := range hits {
		rec, err := decodeRecord(&hits[i])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeRecord(d *indexedDoc) (content.Record, error) {
	switch d.DocType {
	case content.KindChiefOfStaff:
		return decodePayload[content.Document](d)
	case content.KindFeaturedContent:
		return decodePayload[content.FeaturedSection](d)
	case content.KindRecruitmentAgency:
		return decodePayload[content.Agency](d)
	case content.KindFAQ:
		return decodePayload[content.FAQ](d)
	case content.KindJobListing:
		return decodePayload[content.Job](d)
	case content.KindAuthor:
		return decodePayload[content.Author](d)
	default:
		return nil, fmt.Errorf("decode %q: %w", d.DocType, store.ErrUnsupportedRecord)
	}
}

func (r *Repository) Exists(ctx context.Context, kind content.Kind, slug string) (bool, error) {
	n, err := r.count(ctx, filtered([]any{ofType(kind), term(fieldSlug, slug)}, nil))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create indexes rec and waits for it to become searchable.
func (r *Repository) Create(ctx context.Context, rec content.Record) error {
	doc, err := newIndexedDoc(rec, time.Now().UTC())
	if err != nil {
		return err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	res, err := r.client.Index(r.index, bytes.NewReader(body),
		r.client.Index.WithContext(ctx),
		r.client.Index.WithDocumentID(doc.ID),
		r.client.Index.WithRefresh("wait_for"),
	)
	if err != nil {
		return fmt.Errorf("index request failed: %w", err)
	}
	defer res.Body.Close()
	return responseError("index", res)
}
