package schema_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/schema"
)

const (
	validMetaDescription = "Find Chief of Staff jobs in London. Salary benchmarks, top employers and hiring trends for senior operators working alongside UK CEOs."
	validTLDR            = "London Chief of Staff roles pay around £150,000 with demand led by private equity and technology firms."
	validAgencyDesc      = "Executive search firm placing Chiefs of Staff with founders, CEOs and boards across London, Europe and the Middle East markets."
)

func validDocument() *content.Document {
	return &content.Document{
		Slug:            "chief-of-staff-london",
		PageTitle:       "Chief of Staff Jobs in London",
		MetaTitle:       "Chief of Staff Jobs in London | TheChief.quest",
		MetaDescription: validMetaDescription,
		TLDR:            validTLDR,
		Question:        "What does a Chief of Staff earn in London?",
		Location:        "london",
		Region:          content.RegionUK,
		Author:          &content.AuthorRef{ID: "author-editorial"},
		PublishedAt:     content.At(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
		SalaryData: &content.SalaryData{
			Min:      105000,
			Max:      210000,
			Average:  content.Amount(150000),
			Currency: "GBP",
		},
	}
}

func fields(vs []schema.Violation) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Field
	}
	return out
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(d *content.Document)
		want   []string
	}{
		{name: "valid", mutate: func(*content.Document) {}, want: []string{}},
		{
			name:   "meta title without brand",
			mutate: func(d *content.Document) { d.MetaTitle = "Chief of Staff Jobs in London and the UK" },
			want:   []string{"metaTitle"},
		},
		{
			name:   "meta title too short",
			mutate: func(d *content.Document) { d.MetaTitle = "TheChief London" },
			want:   []string{"metaTitle"},
		},
		{
			name:   "meta description too short",
			mutate: func(d *content.Document) { d.MetaDescription = "Too short." },
			want:   []string{"metaDescription"},
		},
		{
			name:   "tldr too long",
			mutate: func(d *content.Document) { d.TLDR = strings.Repeat("x", 151) },
			want:   []string{"tldr"},
		},
		{
			name:   "unknown region and location",
			mutate: func(d *content.Document) { d.Region = "asia"; d.Location = "tokyo" },
			want:   []string{"region", "location"},
		},
		{
			name:   "missing author and date",
			mutate: func(d *content.Document) { d.Author = nil; d.PublishedAt = content.Timestamp{} },
			want:   []string{"author", "publishedAt"},
		},
		{
			name: "negative salary and bad currency",
			mutate: func(d *content.Document) {
				d.SalaryData.Min = -1
				d.SalaryData.Currency = "JPY"
			},
			want: []string{"salaryData.min", "salaryData.currency"},
		},
		{
			name:   "city currency accepted",
			mutate: func(d *content.Document) { d.SalaryData.Currency = "AED" },
			want:   []string{},
		},
		{
			name: "missing required strings",
			mutate: func(d *content.Document) {
				d.Slug = ""
				d.PageTitle = ""
				d.Question = " "
			},
			want: []string{"slug", "pageTitle", "question"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := validDocument()
			tt.mutate(d)
			assert.Equal(t, tt.want, fields(schema.Validate(d)))
		})
	}
}

func TestValidateAgency(t *testing.T) {
	t.Parallel()

	valid := content.Agency{
		Name:            "Sterling Search",
		Slug:            "sterling-search",
		Description:     validAgencyDesc,
		Specializations: []string{"chief-of-staff", "c-suite"},
		Rating:          4.7,
		ReviewCount:     12,
	}
	assert.Empty(t, schema.Validate(&valid))

	bad := valid
	bad.Description = "Short."
	bad.Specializations = []string{"chief-of-staff", "plumbing"}
	bad.Rating = 4.75
	bad.ReviewCount = -1
	got := schema.Validate(&bad)
	assert.Equal(t, []string{"description", "specializations[1]", "rating", "reviewCount"}, fields(got))

	bad.Rating = 6
	got = schema.Validate(&bad)
	require.Len(t, got, 4)
	assert.Contains(t, got[2].Message, "between 0 and 5")
}

func TestValidateFAQ(t *testing.T) {
	t.Parallel()

	f := &content.FAQ{Slug: "what-is", Question: "What is a Chief of Staff?", ShortAnswer: "A senior advisor.", Category: "general"}
	assert.Empty(t, schema.Validate(f))

	f.ShortAnswer = strings.Repeat("a", 201)
	f.Category = "gossip"
	assert.Equal(t, []string{"shortAnswer", "category"}, fields(schema.Validate(f)))
}

func TestValidateJob(t *testing.T) {
	t.Parallel()

	j := &content.Job{
		Title:       "Chief of Staff to the CEO",
		Slug:        "cos-ceo-london",
		Company:     content.Company{Name: "Acme"},
		Location:    content.JobLocation{City: "London", Remote: "hybrid"},
		PostedDate:  content.At(time.Now()),
		Description: content.PlainBody("Lead strategic initiatives."),
		Status:      "active",
	}
	assert.Empty(t, schema.Validate(j))

	j.Company.Name = ""
	j.Description = content.Body{}
	j.Status = "archived"
	j.Location.Remote = "moon"
	assert.Equal(t, []string{"company.name", "description", "status", "location.remote"}, fields(schema.Validate(j)))
}

func TestValidateFeaturedAndAuthor(t *testing.T) {
	t.Parallel()

	f := &content.FeaturedSection{Title: "Top", SectionKey: "homepage-hero", DisplayType: "grid"}
	assert.Empty(t, schema.Validate(f))

	f.Items = make([]content.FeaturedItem, 11)
	f.DisplayType = "marquee"
	assert.Equal(t, []string{"featuredItems", "displayType"}, fields(schema.Validate(f)))

	assert.Equal(t, []string{"name"}, fields(schema.Validate(&content.Author{})))
}

func TestAcceptedCurrencies(t *testing.T) {
	t.Parallel()

	got := schema.AcceptedCurrencies()
	assert.Equal(t, []string{"GBP", "EUR", "USD"}, got[:3])
	assert.Contains(t, got, "CHF")
	assert.Contains(t, got, "AED")
}
