// Package seed writes the sample content set into a content store. Runs are
// idempotent: a record whose kind and slug already exist is skipped.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

// Action is what happened to one fixture.
type Action string

const (
	ActionCreated Action = "created"
	ActionSkipped Action = "skipped"
	// ActionPlanned marks a fixture a dry run would have created.
	ActionPlanned Action = "planned"
)

// Item is the outcome for one fixture.
type Item struct {
	Kind   content.Kind
	Slug   string
	Action Action
}

// Summary totals a run. In a dry run Created counts planned creations.
type Summary struct {
	Created int
	Skipped int
	DryRun  bool
	Items   []Item
}

// Seeder creates fixtures through a store.Writer.
type Seeder struct {
	writer store.Writer
	log    logger.Logger
	dryRun bool
	now    func() time.Time
	newID  func() string
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithDryRun reports what would be created without writing.
func WithDryRun(dryRun bool) Option {
	return func(s *Seeder) { s.dryRun = dryRun }
}

// WithClock overrides time.Now for publishedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

// New returns a Seeder writing to w.
func New(w store.Writer, log logger.Logger, opts ...Option) *Seeder {
	s := &Seeder{
		writer: w,
		log:    log,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	return s
}

// Run creates every fixture that does not exist yet. It stops at the first
// store error and returns the summary so far.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	sum := Summary{DryRun: s.dryRun}

	for _, rec := range Fixtures(s.now()) {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		kind, slug := rec.RecordKind(), rec.RecordSlug()
		exists, err := s.writer.Exists(ctx, kind, slug)
		if err != nil {
			return sum, fmt.Errorf("check %s %q: %w", kind, slug, err)
		}
		if exists {
			s.log.Debug("Skipping existing record", logger.String("kind", string(kind)), logger.Slug(slug))
			sum.Skipped++
			sum.Items = append(sum.Items, Item{Kind: kind, Slug: slug, Action: ActionSkipped})
			continue
		}

		if s.dryRun {
			sum.Created++
			sum.Items = append(sum.Items, Item{Kind: kind, Slug: slug, Action: ActionPlanned})
			continue
		}

		s.assignID(rec)
		if err := s.writer.Create(ctx, rec); err != nil {
			return sum, fmt.Errorf("create %s %q: %w", kind, slug, err)
		}
		s.log.Info("Created record", logger.String("kind", string(kind)), logger.Slug(slug))
		sum.Created++
		sum.Items = append(sum.Items, Item{Kind: kind, Slug: slug, Action: ActionCreated})
	}

	s.log.Info("Seeding complete",
		logger.Int("created", sum.Created),
		logger.Int("skipped", sum.Skipped),
		logger.Bool("dry_run", sum.DryRun),
	)
	return sum, nil
}

func (s *Seeder) assignID(rec content.Record) {
	if rec.RecordID() != "" {
		return
	}
	id := s.newID()
	switch r := rec.(type) {
	case *content.Document:
		r.ID = id
	case *content.Agency:
		r.ID = id
	case *content.FAQ:
		r.ID = id
	case *content.Job:
		r.ID = id
	case *content.FeaturedSection:
		r.ID = id
	case *content.Author:
		r.ID = id
	}
}
