package render_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/fallback"
	"github.com/Londondannyboy/thechief-quest/internal/render"
	"github.com/Londondannyboy/thechief-quest/internal/stats"
)

func renderDoc(t *testing.T, page string, meta render.Meta, data any) *goquery.Document {
	t.Helper()

	r, err := render.New("https://thechief.quest/")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page, meta, data))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRender_LayoutMeta(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, render.PageNotFound, render.Meta{
		Title:       "Page Not Found - TheChief.quest",
		Description: "The requested page could not be found.",
		Path:        "/missing",
	}, nil)

	assert.Equal(t, "Page Not Found - TheChief.quest", doc.Find("title").Text())
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, "The requested page could not be found.", desc)
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://thechief.quest/missing", canonical)
	assert.Equal(t, "Page Not Found", doc.Find("main h1").Text())
}

func TestRender_LocationMock(t *testing.T) {
	t.Parallel()

	view, ok := fallback.Location("dubai", nil)
	require.True(t, ok)

	doc := renderDoc(t, render.PageLocation, render.Meta{Title: view.MetaTitle, Path: "/locations/dubai"}, view)
	assert.Equal(t, "Chief of Staff Jobs in Dubai, UAE", doc.Find("main h1").Text())
	assert.Equal(t, "AED 600,000", doc.Find("#avg-salary").Text())
	assert.Equal(t, "89", doc.Find("#job-count").Text())
	assert.Equal(t, 5, doc.Find(".employer").Length())
}

func TestRender_ArticleBody(t *testing.T) {
	t.Parallel()

	view := fallback.Article(&content.Document{
		Title:       "What does a Chief of Staff do?",
		PublishedAt: content.At(time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)),
		Body:        content.PlainBody("## Heading\n\nplain text\n\n- item1\n- item2"),
	})

	doc := renderDoc(t, render.PageArticle, render.Meta{Title: view.MetaTitle}, view)
	prose := doc.Find(".prose")
	assert.Equal(t, "Heading", prose.Find("h2").Text())
	assert.Equal(t, "plain text", prose.Find("p").Text())
	assert.Equal(t, 2, prose.Find("ul li").Length())
	assert.Equal(t, "7 March 2025", doc.Find("time").Text())
	assert.Equal(t, "TheChief.quest Team", doc.Find(".author").Text())
}

func TestRender_EscapesContent(t *testing.T) {
	t.Parallel()

	view := fallback.Article(&content.Document{Title: "<script>alert(1)</script>"})
	r, err := render.New("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, render.PageArticle, render.Meta{}, view))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestRender_JobsComingSoon(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, render.PageJobs, render.Meta{}, render.JobsData{Featured: fallback.FeaturedLocations()})
	assert.Equal(t, "Job Board Coming Soon", doc.Find(".coming-soon h2").Text())
	assert.Equal(t, 3, doc.Find(".featured-locations a").Length())

	doc = renderDoc(t, render.PageJobs, render.Meta{}, render.JobsData{Jobs: []content.Job{{
		Slug:    "cos-acme",
		Title:   "Chief of Staff",
		Company: content.Company{Name: "Acme"},
		Salary:  &content.JobSalary{Min: 90000, Max: 120000, Currency: "GBP"},
	}}})
	assert.Equal(t, 0, doc.Find(".coming-soon").Length())
	assert.Equal(t, "Acme", doc.Find(".job .company").Text())
	assert.Contains(t, doc.Find(".job .meta").Text(), "£90,000 - £120,000")
}

func TestRender_HomeStats(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, render.PageHome, render.Meta{}, render.HomeData{
		Stats:            stats.Tiles(nil),
		PopularLocations: fallback.PopularLocations,
		Industries:       fallback.IndustriesIndex,
	})

	var values []string
	doc.Find(".stats .stat-value").Each(func(_ int, s *goquery.Selection) {
		values = append(values, s.Text())
	})
	assert.Equal(t, []string{"20+", "500+", "£120K", "50K+"}, values)
	assert.Equal(t, 6, doc.Find(".popular-locations a").Length())
	href, _ := doc.Find(".industries a").First().Attr("href")
	assert.Equal(t, "/industries/private-equity", href)
}

func TestRender_AgenciesLabels(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, render.PageAgencies, render.Meta{}, render.AgenciesData{Agencies: []content.Agency{{
		Slug: "acme", Name: "Acme", Rating: 4.5, ReviewCount: 12,
		Specializations: []string{"private-equity", "c-suite"},
	}}})

	var tags []string
	doc.Find(".tag").Each(func(_ int, s *goquery.Selection) { tags = append(tags, s.Text()) })
	assert.Equal(t, []string{"Private Equity", "C Suite"}, tags)
	assert.True(t, strings.HasPrefix(doc.Find(".rating").Text(), "4.5"))
}

func TestRender_AllPagesParse(t *testing.T) {
	t.Parallel()

	r, err := render.New("")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "nope", render.Meta{}, nil)
	require.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	assert.Empty(t, render.FormatDate(content.Timestamp{}))
	assert.Equal(t, "1 January 2025", render.FormatDate(content.At(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))))
}
