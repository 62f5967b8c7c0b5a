// Package render executes the site's embedded HTML templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/fallback"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	PageHome        = "home"
	PageLocations   = "locations"
	PageLocation    = "location"
	PageIndustries  = "industries"
	PageIndustry    = "industry"
	PageArticle     = "article"
	PageAgencies    = "agencies"
	PageAgency      = "agency"
	PageFAQ         = "faq"
	PageFAQEntry    = "faq_entry"
	PageJobs        = "jobs"
	PageJob         = "job"
	PageSalaryGuide = "salary_guide"
	PageNotFound    = "not_found"
)

var pageNames = []string{
	PageHome, PageLocations, PageLocation, PageIndustries, PageIndustry,
	PageArticle, PageAgencies, PageAgency, PageFAQ, PageFAQEntry,
	PageJobs, PageJob, PageSalaryGuide, PageNotFound,
}

// DateLayout is the en-GB long date format.
const DateLayout = "2 January 2006"

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages   map[string]*template.Template
	baseURL string
	now     func() time.Time
}

// New parses the embedded templates. baseURL is used for canonical links.
func New(baseURL string) (*Renderer, error) {
	r := &Renderer{
		pages:   make(map[string]*template.Template, len(pageNames)),
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}

	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/partials.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Meta is the head metadata of a page.
type Meta struct {
	Title       string
	Description string
	Path        string
}

// Page is what the layout receives.
type Page struct {
	Meta
	Canonical string
	Year      int
	Data      any
}

// Render writes page name with data. The page is buffered so a template
// error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, meta Meta, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	page := Page{
		Meta:      meta,
		Canonical: r.baseURL + meta.Path,
		Year:      r.now().Year(),
		Data:      data,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"blocks":     BodyBlocks,
	"date":       FormatDate,
	"label":      fallback.SpecializationLabel,
	"title":      func(s string) string { return cases.Title(language.English).String(s) },
	"rating":     func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"lower":      strings.ToLower,
	"urlize":     func(s string) string { return strings.ToLower(strings.ReplaceAll(s, " ", "-")) },
	"salary":     jobSalary,
	"join":       strings.Join,
	"hasContent": func(b content.Body) bool { return !b.IsZero() && strings.TrimSpace(b.Text()) != "" },
	"crumbs":     crumbs,
}

// Crumb is one breadcrumb link. The current page has no Href.
type Crumb struct {
	Label string
	Href  string
}

// crumbs pairs up label, href arguments.
func crumbs(pairs ...string) []Crumb {
	out := make([]Crumb, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Crumb{Label: pairs[i], Href: pairs[i+1]})
	}
	return out
}

// FormatDate renders a timestamp as "2 January 2006", or "" when unset.
func FormatDate(t content.Timestamp) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

func jobSalary(j content.Job) string {
	if j.SalaryRange != "" {
		return j.SalaryRange
	}
	if j.Salary == nil || (j.Salary.Min == 0 && j.Salary.Max == 0) {
		return ""
	}
	lo := fallback.FormatSalary(content.Amount(j.Salary.Min), j.Salary.Currency)
	hi := fallback.FormatSalary(content.Amount(j.Salary.Max), j.Salary.Currency)
	switch {
	case j.Salary.Min == 0:
		return "Up to " + hi
	case j.Salary.Max == 0:
		return "From " + lo
	default:
		return lo + " - " + hi
	}
}
