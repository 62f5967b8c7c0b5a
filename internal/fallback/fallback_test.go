package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/fallback"
	"github.com/Londondannyboy/thechief-quest/internal/metrics"
)

func TestFirst(t *testing.T) {
	t.Parallel()

	if got := fallback.FirstString("", "b", "c"); got != "b" {
		t.Errorf("FirstString() = %q, want %q", got, "b")
	}
	if got := fallback.FirstInt(0, 0, 7); got != 7 {
		t.Errorf("FirstInt() = %d, want %d", got, 7)
	}
	if got := fallback.FirstString(); got != "" {
		t.Errorf("FirstString() = %q, want empty", got)
	}
	assert.Equal(t, []string{"x"}, fallback.FirstSlice(nil, []string{}, []string{"x"}))
	assert.Equal(t, 3, fallback.Or(0, 3))
}

func TestLocation_MockDubai(t *testing.T) {
	t.Parallel()

	v, ok := fallback.Location("dubai", nil)
	require.True(t, ok)
	assert.Equal(t, "AED 600,000", v.AvgSalary)
	assert.Equal(t, 89, v.JobCount)
	assert.Equal(t, "Chief of Staff Jobs in Dubai, UAE", v.Heading)
	assert.Equal(t, 4, v.IndustryCount)
	assert.Equal(t, metrics.SourceMock, v.Source)
}

func TestLocation_MockWithSEOPrefix(t *testing.T) {
	t.Parallel()

	v, ok := fallback.Location("chief-of-staff-zurich", nil)
	require.True(t, ok)
	assert.Equal(t, "Zurich", v.Name)
	assert.Equal(t, "zurich", v.Slug)
}

func TestLocation_Unknown(t *testing.T) {
	t.Parallel()

	_, ok := fallback.Location("atlantis", nil)
	assert.False(t, ok)
}

func TestLocation_ContentChains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		doc         *content.Document
		wantName    string
		wantCountry string
		wantSalary  string
		wantJobs    int
		wantHeading string
	}{
		{
			name: "full content",
			doc: &content.Document{
				PageTitle: "Chief of Staff Jobs in Leeds, UK",
				MetaTitle: "Chief of Staff Leeds | TheChief.quest",
				Location:  "leeds",
				Region:    "uk",
				SalaryData: &content.SalaryData{
					Average:  content.Amount(80000),
					Currency: "GBP",
					JobCount: 35,
				},
			},
			wantName:    "Leeds",
			wantCountry: "uk",
			wantSalary:  "£80,000",
			wantJobs:    35,
			wantHeading: "Chief of Staff Leeds | TheChief.quest",
		},
		{
			name:        "bare document",
			doc:         &content.Document{Location: "leeds"},
			wantName:    "leeds",
			wantCountry: "UK",
			wantSalary:  "£150,000",
			wantJobs:    100,
			wantHeading: "Chief of Staff Jobs in leeds, UK",
		},
		{
			name: "text salary passes through",
			doc: &content.Document{
				Location:   "doha",
				Region:     "middle-east",
				SalaryData: &content.SalaryData{Average: content.MoneyText("QAR 550,000")},
			},
			wantName:    "doha",
			wantCountry: "middle-east",
			wantSalary:  "QAR 550,000",
			wantJobs:    100,
			wantHeading: "Chief of Staff Jobs in doha, middle-east",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, ok := fallback.Location("chief-of-staff-leeds", tt.doc)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, v.Name)
			assert.Equal(t, tt.wantCountry, v.Country)
			assert.Equal(t, tt.wantSalary, v.AvgSalary)
			assert.Equal(t, tt.wantJobs, v.JobCount)
			assert.Equal(t, tt.wantHeading, v.Heading)
			assert.Equal(t, metrics.SourceContent, v.Source)
		})
	}
}

func TestLocation_DefaultLists(t *testing.T) {
	t.Parallel()

	v, ok := fallback.Location("leeds", &content.Document{Location: "leeds"})
	require.True(t, ok)
	assert.Equal(t, []string{"Private Equity", "Technology"}, v.Industries)
	assert.Equal(t, []string{"Top Employer 1", "Top Employer 2"}, v.TopEmployers)
	assert.Equal(t, 2, v.IndustryCount)
}

func TestIndustry(t *testing.T) {
	t.Parallel()

	v, ok := fallback.Industry("private-equity", nil)
	require.True(t, ok)
	assert.Equal(t, "Private Equity", v.Name)
	assert.Equal(t, "£180,000", v.AvgSalary)
	assert.Equal(t, 156, v.JobCount)
	assert.Equal(t, "Chief of Staff Jobs in Private Equity | TheChief.quest", v.MetaTitle)

	_, ok = fallback.Industry("fintech", nil)
	assert.False(t, ok)

	v, ok = fallback.Industry("utilities", &content.Document{
		Industry:   "utilities",
		TLDR:       "Utilities roles.",
		SalaryData: &content.SalaryData{Average: content.Amount(95000), Currency: "GBP", JobCount: 42},
	})
	require.True(t, ok)
	assert.Equal(t, "Utilities", v.Name)
	assert.Equal(t, "£95,000", v.AvgSalary)
	assert.Equal(t, 42, v.JobCount)
	assert.Equal(t, "Utilities roles.", v.Description)
	assert.Equal(t, metrics.SourceContent, v.Source)
}

func TestArticle(t *testing.T) {
	t.Parallel()

	v := fallback.Article(&content.Document{PageTitle: "Page", TLDR: "Short"})
	assert.Equal(t, "Page", v.Title)
	assert.Equal(t, "Page", v.MetaTitle)
	assert.Equal(t, "Short", v.MetaDescription)
	assert.Equal(t, "TheChief.quest Team", v.Author)

	v = fallback.Article(&content.Document{})
	assert.Equal(t, "Article", v.Title)
	assert.Equal(t, "TheChief.quest", v.MetaTitle)
	assert.Equal(t, "Expert insights on Chief of Staff careers", v.MetaDescription)

	v = fallback.Article(&content.Document{Title: "T", Author: &content.AuthorRef{Name: "Ana", Role: "Editor"}})
	assert.Equal(t, "Ana", v.Author)
	assert.Equal(t, "Editor", v.AuthorRole)
}

func TestFormatSalary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		money    content.Money
		currency string
		want     string
	}{
		{content.Amount(150000), "GBP", "£150,000"},
		{content.Amount(140000), "EUR", "€140,000"},
		{content.Amount(99999.6), "USD", "$100,000"},
		{content.Amount(600000), "AED", "AED 600,000"},
		{content.Amount(150000), "", "£150,000"},
		{content.MoneyText("£150K"), "GBP", "£150K"},
		{content.Money{}, "GBP", ""},
	}
	for _, tt := range tests {
		if got := fallback.FormatSalary(tt.money, tt.currency); got != tt.want {
			t.Errorf("FormatSalary(%v, %q) = %q, want %q", tt.money, tt.currency, got, tt.want)
		}
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "C Suite", fallback.SpecializationLabel("c-suite"))
	assert.Equal(t, "Private Equity", fallback.SpecializationLabel("private-equity"))
	assert.Equal(t, "Venture Capital", fallback.DisplayName("venture-capital"))
	assert.Equal(t, "£120K", fallback.FormatSalaryShort(120000, "GBP"))
}

func TestGroupFAQs(t *testing.T) {
	t.Parallel()

	faqs := []content.FAQ{
		{Question: "q1", Category: "salary"},
		{Question: "q2"},
		{Question: "q3", Category: "zeta"},
		{Question: "q4", Category: "alpha"},
		{Question: "q5", Category: "general"},
		{Question: "q6", Category: "career"},
	}

	groups := fallback.GroupFAQs(faqs)
	cats := make([]string, len(groups))
	for i, g := range groups {
		cats[i] = g.Category
	}
	assert.Equal(t, []string{"general", "career", "salary", "alpha", "zeta"}, cats)
	assert.Len(t, groups[0].FAQs, 2)
	assert.Equal(t, "q2", groups[0].FAQs[0].Question)
	assert.Equal(t, "General Questions", groups[0].Label)
	assert.Equal(t, "Salary & Compensation", groups[2].Label)
	assert.Equal(t, "alpha", groups[3].Label)
}

func TestFeaturedLocations(t *testing.T) {
	t.Parallel()

	got := fallback.FeaturedLocations()
	require.Len(t, got, 3)
	assert.Equal(t, fallback.FeaturedLocation{Slug: "london", Name: "London", Jobs: 234}, got[0])
	assert.Equal(t, 20, countCities())
}

func countCities() int {
	n := 0
	for _, g := range fallback.LocationsIndex {
		n += len(g.Cities)
	}
	return n
}
