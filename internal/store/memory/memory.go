// Package memory is an in-process content store. It backs tests and the
// "memory" backend used for local development.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

// Store is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	docs     []content.Document
	featured []content.FeaturedSection
	agencies []content.Agency
	faqs     []content.FAQ
	jobs     []content.Job
	authors  []content.Author
	now      func() time.Time
}

var _ store.Backend = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{now: time.Now}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

// Create stores a copy of rec, stamping _updatedAt when unset.
func (s *Store) Create(_ context.Context, rec content.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := content.At(s.now().UTC())
	switch r := rec.(type) {
	case *content.Document:
		d := *r.Clone()
		d.Type = content.KindChiefOfStaff
		if d.UpdatedAt.IsZero() {
			d.UpdatedAt = stamp
		}
		s.docs = append(s.docs, d)
	case *content.FeaturedSection:
		f := *r.Clone()
		if f.UpdatedAt.IsZero() {
			f.UpdatedAt = stamp
		}
		s.featured = append(s.featured, f)
	case *content.Agency:
		a := *r.Clone()
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = stamp
		}
		s.agencies = append(s.agencies, a)
	case *content.FAQ:
		f := *r.Clone()
		if f.UpdatedAt.IsZero() {
			f.UpdatedAt = stamp
		}
		s.faqs = append(s.faqs, f)
	case *content.Job:
		j := *r.Clone()
		if j.UpdatedAt.IsZero() {
			j.UpdatedAt = stamp
		}
		s.jobs = append(s.jobs, j)
	case *content.Author:
		s.authors = append(s.authors, *r.Clone())
	default:
		return fmt.Errorf("create %T: %w", rec, store.ErrUnsupportedRecord)
	}
	return nil
}

// Exists reports whether a record of kind with slug is stored.
func (s *Store) Exists(_ context.Context, kind content.Kind, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch kind {
	case content.KindChiefOfStaff:
		return slices.ContainsFunc(s.docs, func(d content.Document) bool { return d.Slug == slug }), nil
	case content.KindFeaturedContent:
		return slices.ContainsFunc(s.featured, func(f content.FeaturedSection) bool { return f.SectionKey == slug }), nil
	case content.KindRecruitmentAgency:
		return slices.ContainsFunc(s.agencies, func(a content.Agency) bool { return a.Slug == slug }), nil
	case content.KindFAQ:
		return slices.ContainsFunc(s.faqs, func(f content.FAQ) bool { return f.Slug == slug }), nil
	case content.KindJobListing:
		return slices.ContainsFunc(s.jobs, func(j content.Job) bool { return j.Slug == slug }), nil
	case content.KindAuthor:
		return slices.ContainsFunc(s.authors, func(a content.Author) bool { return a.Slug == slug }), nil
	default:
		return false, fmt.Errorf("exists %q: %w", kind, store.ErrUnsupportedRecord)
	}
}

// first returns a deep copy of the lowest (slug, id) item that matches.
func first[T any, P interface {
	*T
	content.Record
	Clone() *T
}](items []T, match func(*T) bool) *T {
	var best *T
	for i := range items {
		item := &items[i]
		if !match(item) {
			continue
		}
		if best == nil || less(P(item), P(best)) {
			best = item
		}
	}
	if best == nil {
		return nil
	}
	return P(best).Clone()
}

// cloneAll deep-copies items so callers never alias stored records.
func cloneAll[T any, P interface {
	*T
	Clone() *T
}](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i := range items {
		out[i] = *P(&items[i]).Clone()
	}
	return out
}

func less(a, b content.Record) bool {
	if c := strings.Compare(a.RecordSlug(), b.RecordSlug()); c != 0 {
		return c < 0
	}
	return a.RecordID() < b.RecordID()
}

func (s *Store) DocumentBySlug(_ context.Context, slug string) (*content.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return first(s.docs, func(d *content.Document) bool { return d.Slug == slug }), nil
}

// DocumentByTitlePattern matches metaTitle, pageTitle or title.
func (s *Store) DocumentByTitlePattern(_ context.Context, pattern string) (*content.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return first(s.docs, func(d *content.Document) bool {
		return matchNonEmpty(pattern, d.MetaTitle) ||
			matchNonEmpty(pattern, d.PageTitle) ||
			matchNonEmpty(pattern, d.Title)
	}), nil
}

// An absent field never matches, even the pattern "**".
func matchNonEmpty(pattern, s string) bool {
	return s != "" && content.MatchPattern(pattern, s)
}

// FeaturedBySectionKey ignores isActive: a hidden section still resolves by
// its key.
func (s *Store) FeaturedBySectionKey(_ context.Context, key string) (*content.FeaturedSection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return first(s.featured, func(f *content.FeaturedSection) bool { return f.SectionKey == key }), nil
}

// LocationContent never matches an empty code; articles carry no location.
func (s *Store) LocationContent(_ context.Context, code string) (*content.Document, error) {
	if code == "" {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return first(s.docs, func(d *content.Document) bool { return d.Location == code && d.Industry == "" }), nil
}

func (s *Store) IndustryContent(_ context.Context, code string) (*content.Document, error) {
	if code == "" {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return first(s.docs, func(d *content.Document) bool { return d.Industry == code && d.Location == "" }), nil
}

func (s *Store) ComboContent(_ context.Context, location, industry string) (*content.Document, error) {
	if location == "" || industry == "" {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return first(s.docs, func(d *content.Document) bool { return d.Location == location && d.Industry == industry }), nil
}

func (s *Store) Agencies(context.Context) ([]content.Agency, error) {
	s.mu.RLock()
	out := cloneAll(s.agencies)
	s.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b content.Agency) int {
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (s *Store) AgencyBySlug(_ context.Context, slug string) (*content.Agency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return first(s.agencies, func(a *content.Agency) bool { return a.Slug == slug }), nil
}

func (s *Store) FAQs(context.Context) ([]content.FAQ, error) {
	s.mu.RLock()
	out := cloneAll(s.faqs)
	s.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b content.FAQ) int {
		if c := cmp.Compare(b.Helpful, a.Helpful); c != 0 {
			return c
		}
		return strings.Compare(a.Question, b.Question)
	})
	return out, nil
}

func (s *Store) FAQBySlug(_ context.Context, slug string) (*content.FAQ, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return first(s.faqs, func(f *content.FAQ) bool { return f.Slug == slug }), nil
}

func (s *Store) ActiveJobs(_ context.Context, limit int) ([]content.Job, error) {
	s.mu.RLock()
	var out []content.Job
	for _, j := range s.jobs {
		if j.IsActive {
			out = append(out, *j.Clone())
		}
	}
	s.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b content.Job) int {
		if c := b.PostedDate.Compare(a.PostedDate.Time); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) JobBySlug(_ context.Context, slug string) (*content.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return first(s.jobs, func(j *content.Job) bool { return j.Slug == slug }), nil
}

func (s *Store) SitemapDocuments(context.Context) ([]store.SitemapDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.SitemapDocument, 0, len(s.docs)+len(s.agencies)+len(s.faqs))
	for _, d := range s.docs {
		out = append(out, store.SitemapDocument{Slug: d.Slug, Type: content.KindChiefOfStaff, UpdatedAt: d.UpdatedAt.Time})
	}
	for _, a := range s.agencies {
		out = append(out, store.SitemapDocument{Slug: a.Slug, Type: content.KindRecruitmentAgency, UpdatedAt: a.UpdatedAt.Time})
	}
	for _, f := range s.faqs {
		out = append(out, store.SitemapDocument{Slug: f.Slug, Type: content.KindFAQ, UpdatedAt: f.UpdatedAt.Time})
	}
	return out, nil
}

func (s *Store) Count(_ context.Context, q store.CountQuery) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	switch q {
	case store.CountActiveJobs:
		for _, j := range s.jobs {
			if j.IsActive {
				n++
			}
		}
	case store.CountLocationFacets:
		for i := range s.docs {
			if s.docs[i].IsLocationFacet() {
				n++
			}
		}
	case store.CountIndustryFacets:
		for i := range s.docs {
			if s.docs[i].IsIndustryFacet() {
				n++
			}
		}
	case store.CountAgencies:
		n = len(s.agencies)
	default:
		return 0, fmt.Errorf("unknown count query %q", q)
	}
	return n, nil
}

func (s *Store) UKAverageSalary(context.Context) (content.Money, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := first(s.docs, func(d *content.Document) bool { return store.IsUK(d.Region) })
	if doc == nil || doc.SalaryData == nil {
		return content.Money{}, nil
	}
	return doc.SalaryData.Average, nil
}

// AllDocuments returns copies of every record.
func (s *Store) AllDocuments(context.Context) ([]content.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []content.Record
	for i := range s.authors {
		out = append(out, s.authors[i].Clone())
	}
	for i := range s.docs {
		out = append(out, s.docs[i].Clone())
	}
	for i := range s.featured {
		out = append(out, s.featured[i].Clone())
	}
	for i := range s.agencies {
		out = append(out, s.agencies[i].Clone())
	}
	for i := range s.faqs {
		out = append(out, s.faqs[i].Clone())
	}
	for i := range s.jobs {
		out = append(out, s.jobs[i].Clone())
	}
	return out, nil
}
