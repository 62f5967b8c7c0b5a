// Package api serves the site's pages. Every page reads the content store
// and falls back to static data when the store has nothing; store failures
// are logged and never shown to visitors.
package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/fallback"
	"github.com/Londondannyboy/thechief-quest/internal/metrics"
	"github.com/Londondannyboy/thechief-quest/internal/render"
	"github.com/Londondannyboy/thechief-quest/internal/resolver"
	"github.com/Londondannyboy/thechief-quest/internal/sitemap"
	"github.com/Londondannyboy/thechief-quest/internal/stats"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

const (
	htmlContentType = "text/html; charset=utf-8"
	xmlContentType  = "application/xml; charset=utf-8"

	// JobsPageLimit caps the job board.
	JobsPageLimit = 10

	notFoundTitle         = "Page Not Found - TheChief.quest"
	notFoundDescription   = "The requested page could not be found."
	locationNotFoundTitle = "Location Not Found | TheChief.quest"
	locationNotFoundDesc  = "The requested location page could not be found."
)

// Static page metadata.
var (
	homeMeta = render.Meta{
		Title:       "TheChief.quest - Chief of Staff Careers | UK, Europe & Middle East",
		Description: "The authority on Chief of Staff careers. Find roles, salaries, and expert guidance across UK, Europe & Middle East. Join 50,000+ professionals advancing their careers.",
		Path:        "/",
	}
	locationsMeta = render.Meta{
		Title:       "Chief of Staff Jobs by Location | TheChief.quest",
		Description: "Find Chief of Staff opportunities across 20+ cities in UK, Europe, and Middle East. Browse by location.",
		Path:        "/locations",
	}
	industriesMeta = render.Meta{
		Title:       "Chief of Staff Jobs by Industry | TheChief.quest",
		Description: "Explore Chief of Staff roles across industries: Private Equity, Hedge Funds, Technology, and more.",
		Path:        "/industries",
	}
	agenciesMeta = render.Meta{
		Title:       "Chief of Staff Recruitment Agencies | TheChief.quest",
		Description: "Top recruitment agencies specializing in Chief of Staff placements across UK, Europe, and Middle East.",
		Path:        "/agencies",
	}
	faqMeta = render.Meta{
		Title:       "Chief of Staff FAQ | TheChief.quest",
		Description: "Frequently asked questions about Chief of Staff careers, salaries, skills, and career progression.",
		Path:        "/faq",
	}
	jobsMeta = render.Meta{
		Title:       "Chief of Staff Jobs | TheChief.quest",
		Description: "Browse the latest Chief of Staff job opportunities across UK, Europe, and Middle East.",
		Path:        "/jobs",
	}
	salaryGuideMeta = render.Meta{
		Title:       "Chief of Staff Salary Guide | TheChief.quest",
		Description: "Chief of Staff salaries by city and industry across the UK, Europe and the Middle East.",
		Path:        "/salary-guide",
	}
)

// StatsSource supplies the latest statistics snapshot, or nil.
type StatsSource interface {
	Latest() *stats.Stats
}

// Handler holds the page handlers.
type Handler struct {
	store      store.Store
	articles   *resolver.Resolver
	locations  *resolver.Resolver
	industries *resolver.Resolver
	renderer   *render.Renderer
	stats      StatsSource
	sitemap    *sitemap.Builder
	metrics    *metrics.Metrics
	logger     logger.Logger
	now        func() time.Time
}

// NewHandler wires the resolver chains over s. statsSource may be nil, in
// which case the home page shows the static figures.
func NewHandler(
	s store.Store,
	renderer *render.Renderer,
	statsSource StatsSource,
	baseURL string,
	m *metrics.Metrics,
	log logger.Logger,
) *Handler {
	return &Handler{
		store:      s,
		articles:   resolver.ArticleChain(s, m, log),
		locations:  resolver.LocationChain(s, m, log),
		industries: resolver.IndustryChain(s, m, log),
		renderer:   renderer,
		stats:      statsSource,
		sitemap:    sitemap.NewBuilder(s, baseURL),
		metrics:    m,
		logger:     log,
		now:        time.Now,
	}
}

func (h *Handler) log(c *gin.Context) logger.Logger {
	return logger.FromContextOr(c.Request.Context(), h.logger)
}

func (h *Handler) latestStats() *stats.Stats {
	if h.stats == nil {
		return nil
	}
	return h.stats.Latest()
}

// render writes page with status code. A template failure answers a bare 500.
func (h *Handler) render(c *gin.Context, code int, page string, meta render.Meta, data any) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, meta, data); err != nil {
		h.log(c).Error("Failed to render page",
			logger.String("page", page),
			logger.Path(c.Request.URL.Path),
			logger.Error(err),
		)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(code, htmlContentType, buf.Bytes())
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, render.PageNotFound, render.Meta{
		Title:       notFoundTitle,
		Description: notFoundDescription,
		Path:        c.Request.URL.Path,
	}, nil)
}

// storeWarn logs a store failure that the page absorbs.
func (h *Handler) storeWarn(c *gin.Context, op string, err error) {
	h.log(c).Warn("Content store query failed, using fallback",
		logger.String("operation", op),
		logger.Path(c.Request.URL.Path),
		logger.Error(err),
	)
}

// Home renders the landing page.
func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, render.PageHome, homeMeta, render.HomeData{
		Stats:            stats.Tiles(h.latestStats()),
		PopularLocations: fallback.PopularLocations,
		Industries:       fallback.IndustriesIndex,
	})
}

// LocationsIndex renders the static locations table.
func (h *Handler) LocationsIndex(c *gin.Context) {
	h.render(c, http.StatusOK, render.PageLocations, locationsMeta, render.LocationsData{
		Regions: fallback.LocationsIndex,
	})
}

// Location renders one location page from content or the mock table.
func (h *Handler) Location(c *gin.Context) {
	slug := c.Param("slug")
	var doc *content.Document
	if res, ok := h.locations.Resolve(c.Request.Context(), slug); ok {
		doc = res.Document
	}

	view, ok := fallback.Location(slug, doc)
	h.metrics.Fallback(render.PageLocation, view.Source)
	if !ok {
		h.render(c, http.StatusNotFound, render.PageNotFound, render.Meta{
			Title:       locationNotFoundTitle,
			Description: locationNotFoundDesc,
			Path:        c.Request.URL.Path,
		}, nil)
		return
	}

	h.render(c, http.StatusOK, render.PageLocation, render.Meta{
		Title:       view.MetaTitle,
		Description: view.MetaDescription,
		Path:        sitemap.RouteLocations + "/" + slug,
	}, view)
}

// IndustriesIndex renders the static industries table.
func (h *Handler) IndustriesIndex(c *gin.Context) {
	h.render(c, http.StatusOK, render.PageIndustries, industriesMeta, render.IndustriesData{
		Industries: fallback.IndustriesIndex,
	})
}

// Industry renders one industry page from content merged with the mock table.
func (h *Handler) Industry(c *gin.Context) {
	slug := c.Param("slug")
	var doc *content.Document
	if res, ok := h.industries.Resolve(c.Request.Context(), slug); ok {
		doc = res.Document
	}

	view, ok := fallback.Industry(slug, doc)
	h.metrics.Fallback(render.PageIndustry, view.Source)
	if !ok {
		h.NotFound(c)
		return
	}

	h.render(c, http.StatusOK, render.PageIndustry, render.Meta{
		Title:       view.MetaTitle,
		Description: view.MetaDescription,
		Path:        sitemap.RouteIndustries + "/" + slug,
	}, view)
}

// Article renders a top-level slug through the article chain.
func (h *Handler) Article(c *gin.Context) {
	slug := c.Param("slug")
	res, ok := h.articles.Resolve(c.Request.Context(), slug)
	if !ok {
		h.metrics.Fallback(render.PageArticle, metrics.SourceNone)
		h.NotFound(c)
		return
	}
	h.metrics.Fallback(render.PageArticle, metrics.SourceContent)

	view := fallback.Article(res.Document)
	h.render(c, http.StatusOK, render.PageArticle, render.Meta{
		Title:       view.MetaTitle,
		Description: view.MetaDescription,
		Path:        "/" + slug,
	}, view)
}

// Agencies lists agencies; a store failure renders an empty list.
func (h *Handler) Agencies(c *gin.Context) {
	agencies, err := h.store.Agencies(c.Request.Context())
	if err != nil {
		h.storeWarn(c, "agencies", err)
		agencies = nil
	}
	h.render(c, http.StatusOK, render.PageAgencies, agenciesMeta, render.AgenciesData{Agencies: agencies})
}

// Agency renders one agency profile.
func (h *Handler) Agency(c *gin.Context) {
	agency, err := h.store.AgencyBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.storeWarn(c, "agency_by_slug", err)
	}
	if agency == nil {
		h.NotFound(c)
		return
	}
	h.render(c, http.StatusOK, render.PageAgency, render.Meta{
		Title:       agency.Name + " | Chief of Staff Recruitment | TheChief.quest",
		Description: fallback.FirstString(agency.Description, agenciesMeta.Description),
		Path:        "/agencies/" + agency.Slug,
	}, agency)
}

// FAQ renders all FAQs grouped by category.
func (h *Handler) FAQ(c *gin.Context) {
	faqs, err := h.store.FAQs(c.Request.Context())
	if err != nil {
		h.storeWarn(c, "faqs", err)
		faqs = nil
	}
	h.render(c, http.StatusOK, render.PageFAQ, faqMeta, render.FAQData{Groups: fallback.GroupFAQs(faqs)})
}

// FAQEntry renders one FAQ.
func (h *Handler) FAQEntry(c *gin.Context) {
	faq, err := h.store.FAQBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.storeWarn(c, "faq_by_slug", err)
	}
	if faq == nil {
		h.NotFound(c)
		return
	}
	h.render(c, http.StatusOK, render.PageFAQEntry, render.Meta{
		Title:       faq.Question + " | TheChief.quest",
		Description: faq.ShortAnswer,
		Path:        "/faq/" + faq.Slug,
	}, faq)
}

// Jobs renders the job board, or the "coming soon" panel when it is empty.
func (h *Handler) Jobs(c *gin.Context) {
	jobs, err := h.store.ActiveJobs(c.Request.Context(), JobsPageLimit)
	if err != nil {
		h.storeWarn(c, "active_jobs", err)
		jobs = nil
	}

	data := render.JobsData{Jobs: jobs}
	if len(jobs) == 0 {
		data.Featured = fallback.FeaturedLocations()
	}
	h.render(c, http.StatusOK, render.PageJobs, jobsMeta, data)
}

// Job renders one listing.
func (h *Handler) Job(c *gin.Context) {
	job, err := h.store.JobBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.storeWarn(c, "job_by_slug", err)
	}
	if job == nil {
		h.NotFound(c)
		return
	}
	h.render(c, http.StatusOK, render.PageJob, render.Meta{
		Title:       job.Title + " at " + job.Company.Name + " | TheChief.quest",
		Description: fallback.FirstString(job.ShortDescription, jobsMeta.Description),
		Path:        "/jobs/" + job.Slug,
	}, job)
}

// SalaryGuide renders the salary tables with the live UK average when known.
func (h *Handler) SalaryGuide(c *gin.Context) {
	tiles := stats.Tiles(h.latestStats())
	h.render(c, http.StatusOK, render.PageSalaryGuide, salaryGuideMeta, render.SalaryGuideData{
		UKAverage:  tiles[2].Value,
		Regions:    fallback.LocationsIndex,
		Industries: fallback.IndustriesIndex,
	})
}

// Sitemap serves sitemap.xml. A store failure answers 500.
func (h *Handler) Sitemap(c *gin.Context) {
	entries, err := h.sitemap.Build(c.Request.Context(), h.now())
	if err != nil {
		h.log(c).Error("Failed to build sitemap", logger.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var buf bytes.Buffer
	if err = sitemap.WriteXML(&buf, entries); err != nil {
		h.log(c).Error("Failed to encode sitemap", logger.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(http.StatusOK, xmlContentType, buf.Bytes())
}
