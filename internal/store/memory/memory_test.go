package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/store"
	"github.com/Londondannyboy/thechief-quest/internal/store/memory"
)

func seeded(t *testing.T) *memory.Store {
	t.Helper()

	ctx := context.Background()
	s := memory.New()
	records := []content.Record{
		&content.Document{ID: "b", Slug: "zz-guide", MetaTitle: "Chief of Staff Salary Guide | TheChief"},
		&content.Document{ID: "a", Slug: "aa-guide", PageTitle: "Chief of Staff salary overview"},
		&content.Document{ID: "c", Slug: "chief-of-staff-london", Location: "london", Region: "uk",
			SalaryData: &content.SalaryData{Average: content.Amount(150000)}},
		&content.Document{ID: "d", Slug: "chief-of-staff-private-equity", Industry: "private-equity"},
		&content.Document{ID: "e", Slug: "chief-of-staff-london-private-equity", Location: "london", Industry: "private-equity"},
		&content.FeaturedSection{ID: "f1", SectionKey: "top-picks", Title: "Top Picks", IsActive: true},
		&content.FeaturedSection{ID: "f2", SectionKey: "hidden", Title: "Hidden", IsActive: false},
		&content.Agency{ID: "g1", Slug: "beta", Name: "Beta", Rating: 4.5},
		&content.Agency{ID: "g2", Slug: "alpha", Name: "Alpha", Rating: 4.5},
		&content.Agency{ID: "g3", Slug: "gamma", Name: "Gamma", Rating: 4.8},
		&content.FAQ{ID: "q1", Slug: "b", Question: "B?", Helpful: 1},
		&content.FAQ{ID: "q2", Slug: "a", Question: "A?", Helpful: 1},
		&content.FAQ{ID: "q3", Slug: "c", Question: "C?", Helpful: 9},
		&content.Job{ID: "j1", Slug: "old", IsActive: true, PostedDate: content.At(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))},
		&content.Job{ID: "j2", Slug: "new", IsActive: true, PostedDate: content.At(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))},
		&content.Job{ID: "j3", Slug: "closed", IsActive: false},
	}
	for _, r := range records {
		require.NoError(t, s.Create(ctx, r))
	}
	return s
}

func TestStore_Lookups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := seeded(t)

	doc, err := s.DocumentBySlug(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, doc)

	doc, err = s.DocumentByTitlePattern(ctx, content.TitlePattern("chief-of-staff-salary"))
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "aa-guide", doc.Slug, "ties break on slug ascending")

	loc, err := s.LocationContent(ctx, "london")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "c", loc.ID, "combo documents are not location facets")

	ind, err := s.IndustryContent(ctx, "private-equity")
	require.NoError(t, err)
	require.NotNil(t, ind)
	assert.Equal(t, "d", ind.ID)

	combo, err := s.ComboContent(ctx, "london", "private-equity")
	require.NoError(t, err)
	require.NotNil(t, combo)
	assert.Equal(t, "e", combo.ID)

	featured, err := s.FeaturedBySectionKey(ctx, "hidden")
	require.NoError(t, err)
	require.NotNil(t, featured, "inactive sections still resolve by key")
	assert.Equal(t, "f2", featured.ID)
}

func TestStore_EmptyFacetCodeNeverMatches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := seeded(t)

	loc, err := s.LocationContent(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, loc, "plain articles have no location")

	ind, err := s.IndustryContent(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, ind, "plain articles have no industry")

	combo, err := s.ComboContent(ctx, "", "")
	require.NoError(t, err)
	assert.Nil(t, combo)
}

func TestStore_ResultsDoNotAliasStoredRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.New()
	src := &content.Document{
		ID: "x", Slug: "chief-of-staff-leeds", Location: "leeds",
		Author:     &content.AuthorRef{ID: "au", Name: "Jane Editor"},
		SalaryData: &content.SalaryData{Average: content.Amount(80000), TopEmployers: []string{"Asda"}},
		Body:       content.TextBlocks("First paragraph."),
	}
	require.NoError(t, s.Create(ctx, src))
	src.SalaryData.TopEmployers[0] = "changed after create"

	got, err := s.DocumentBySlug(ctx, "chief-of-staff-leeds")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Asda", got.SalaryData.TopEmployers[0])

	got.SalaryData.Average = content.Amount(1)
	got.SalaryData.TopEmployers[0] = "mutated"
	got.Author.Name = "mutated"
	got.Body.Blocks[0].Children[0].Text = "mutated"

	again, err := s.LocationContent(ctx, "leeds")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, content.Amount(80000), again.SalaryData.Average)
	assert.Equal(t, "Asda", again.SalaryData.TopEmployers[0])
	assert.Equal(t, "Jane Editor", again.Author.Name)
	assert.Equal(t, "First paragraph.", again.Body.Text())

	require.NoError(t, s.Create(ctx, &content.Agency{ID: "g", Slug: "g", Name: "G", Industries: []string{"private-equity"}}))
	list, err := s.Agencies(ctx)
	require.NoError(t, err)
	list[0].Industries[0] = "mutated"
	list, err = s.Agencies(ctx)
	require.NoError(t, err)
	assert.Equal(t, "private-equity", list[0].Industries[0])
}

func TestStore_Ordering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := seeded(t)

	agencies, err := s.Agencies(ctx)
	require.NoError(t, err)
	names := []string{agencies[0].Name, agencies[1].Name, agencies[2].Name}
	assert.Equal(t, []string{"Gamma", "Alpha", "Beta"}, names)

	faqs, err := s.FAQs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "C?", faqs[0].Question)
	assert.Equal(t, "A?", faqs[1].Question)

	jobs, err := s.ActiveJobs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "new", jobs[0].Slug)
}

func TestStore_CountsAndSalary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := seeded(t)

	tests := []struct {
		q    store.CountQuery
		want int
	}{
		{q: store.CountActiveJobs, want: 2},
		{q: store.CountLocationFacets, want: 1},
		{q: store.CountIndustryFacets, want: 1},
		{q: store.CountAgencies, want: 3},
	}
	for _, tt := range tests {
		got, err := s.Count(ctx, tt.q)
		require.NoError(t, err)
		if got != tt.want {
			t.Errorf("Count(%s) = %d, want %d", tt.q, got, tt.want)
		}
	}

	_, err := s.Count(ctx, store.CountQuery("bogus"))
	require.Error(t, err)

	avg, err := s.UKAverageSalary(ctx)
	require.NoError(t, err)
	v, ok := avg.Float()
	assert.True(t, ok)
	assert.InDelta(t, 150000.0, v, 0.001)
}

func TestStore_WriterAndCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := seeded(t)

	ok, err := s.Exists(ctx, content.KindRecruitmentAgency, "alpha")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(ctx, content.KindFAQ, "nope")
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := s.AllDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 16)

	docs, err := s.SitemapDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 5+3+3)
	for _, d := range docs {
		assert.False(t, d.UpdatedAt.IsZero(), "Create stamps _updatedAt")
	}
}
