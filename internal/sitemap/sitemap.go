// Package sitemap builds the site's sitemap from static routes and the
// publishable documents in the content store.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

// ChangeFreq is a sitemaps.org changefreq hint.
type ChangeFreq string

const (
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
)

// Entry is one sitemap URL.
type Entry struct {
	Loc          string
	LastModified time.Time
	ChangeFreq   ChangeFreq
	Priority     float64
}

const (
	RouteLocations  = "/locations"
	RouteIndustries = "/industries"

	seoPrefix = "chief-of-staff-"
)

type staticRoute struct {
	path     string
	freq     ChangeFreq
	priority float64
}

var staticRoutes = []staticRoute{
	{"", Daily, 1},
	{"/locations", Weekly, 0.9},
	{"/industries", Weekly, 0.9},
	{"/agencies", Weekly, 0.8},
	{"/jobs", Daily, 0.9},
	{"/faq", Monthly, 0.7},
	{"/salary-guide", Monthly, 0.8},
}

// industryMarkers are slug substrings that mark an industry page.
var industryMarkers = []string{
	"private-equity",
	"hedge-fund",
	"venture-capital",
	"startup",
	"utilities",
	"telecoms",
}

// Classify picks the route for a chiefOfStaff slug. A slug is a location
// page when it carries the SEO prefix and no industry marker; anything else
// is an industry page. cleanSlug has the first prefix removed.
func Classify(slug string) (route, cleanSlug string) {
	route = RouteIndustries
	if strings.Contains(slug, seoPrefix) && !hasIndustryMarker(slug) {
		route = RouteLocations
	}
	return route, strings.Replace(slug, seoPrefix, "", 1)
}

func hasIndustryMarker(slug string) bool {
	for _, m := range industryMarkers {
		if strings.Contains(slug, m) {
			return true
		}
	}
	return false
}

// Builder lists sitemap entries.
type Builder struct {
	store   store.Store
	baseURL string
}

func NewBuilder(s store.Store, baseURL string) *Builder {
	return &Builder{store: s, baseURL: strings.TrimRight(baseURL, "/")}
}

// Build returns static routes first, then documents, agencies and FAQs in
// store order. A store failure fails the build.
func (b *Builder) Build(ctx context.Context, now time.Time) ([]Entry, error) {
	docs, err := b.store.SitemapDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sitemap documents: %w", err)
	}

	entries := make([]Entry, 0, len(staticRoutes)+len(docs))
	for _, r := range staticRoutes {
		entries = append(entries, Entry{Loc: b.baseURL + r.path, LastModified: now, ChangeFreq: r.freq, Priority: r.priority})
	}

	for _, kind := range []content.Kind{content.KindChiefOfStaff, content.KindRecruitmentAgency, content.KindFAQ} {
		for _, d := range docs {
			if d.Type != kind || d.Slug == "" {
				continue
			}
			entries = append(entries, b.documentEntry(d, now))
		}
	}
	return entries, nil
}

func (b *Builder) documentEntry(d store.SitemapDocument, now time.Time) Entry {
	modified := d.UpdatedAt
	if modified.IsZero() {
		modified = now
	}

	switch d.Type {
	case content.KindRecruitmentAgency:
		return Entry{Loc: b.baseURL + "/agencies/" + d.Slug, LastModified: modified, ChangeFreq: Monthly, Priority: 0.7}
	case content.KindFAQ:
		return Entry{Loc: b.baseURL + "/faq/" + d.Slug, LastModified: modified, ChangeFreq: Monthly, Priority: 0.6}
	default:
		route, clean := Classify(d.Slug)
		return Entry{Loc: b.baseURL + route + "/" + clean, LastModified: modified, ChangeFreq: Weekly, Priority: 0.8}
	}
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// WriteXML writes entries as a sitemaps.org urlset.
func WriteXML(w io.Writer, entries []Entry) error {
	set := urlset{XMLNS: sitemapNS, URLs: make([]xmlURL, len(entries))}
	for i, e := range entries {
		set.URLs[i] = xmlURL{
			Loc:        e.Loc,
			LastMod:    e.LastModified.UTC().Format(time.RFC3339),
			ChangeFreq: string(e.ChangeFreq),
			Priority:   fmt.Sprintf("%.1f", e.Priority),
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return enc.Flush()
}
