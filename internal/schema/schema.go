// Package schema holds the editorial rules content documents must satisfy
// before they are published, and the SEO checklist score for articles.
package schema

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Londondannyboy/thechief-quest/internal/content"
)

// Violation is one broken rule on one field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Limits from the content schemas.
const (
	MetaTitleMin       = 30
	MetaTitleMax       = 70
	MetaTitleBrand     = "TheChief"
	MetaDescriptionMin = 120
	MetaDescriptionMax = 200
	TLDRMax            = 150
	AgencyDescMin      = 100
	AgencyDescMax      = 500
	ShortAnswerMax     = 200
	FeaturedItemsMax   = 10
	RatingMax          = 5
)

// Validate dispatches on the record kind. Unknown record types report a
// single violation on "_type".
func Validate(rec content.Record) []Violation {
	switch r := rec.(type) {
	case *content.Document:
		return ValidateDocument(r)
	case *content.Agency:
		return ValidateAgency(r)
	case *content.FAQ:
		return ValidateFAQ(r)
	case *content.Job:
		return ValidateJob(r)
	case *content.FeaturedSection:
		return ValidateFeatured(r)
	case *content.Author:
		return ValidateAuthor(r)
	default:
		return []Violation{{Field: "_type", Message: fmt.Sprintf("unsupported record %T", rec)}}
	}
}

// checker accumulates violations.
type checker struct {
	violations []Violation
}

func (c *checker) add(field, format string, args ...any) {
	c.violations = append(c.violations, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		c.add(field, "is required")
		return false
	}
	return true
}

func (c *checker) length(field, value string, lo, hi int) {
	n := utf8.RuneCountInString(value)
	switch {
	case lo > 0 && n < lo:
		c.add(field, "must be at least %d characters (got %d)", lo, n)
	case hi > 0 && n > hi:
		c.add(field, "must be at most %d characters (got %d)", hi, n)
	}
}

// oneOf ignores empty values; pair it with required where the field is
// mandatory.
func (c *checker) oneOf(field, value string, allowed []string) {
	if value == "" || slices.Contains(allowed, value) {
		return
	}
	c.add(field, "must be one of: %s", strings.Join(allowed, ", "))
}

func (c *checker) nonNegative(field string, v float64) {
	if v < 0 {
		c.add(field, "must be >= 0")
	}
}

// ValidateDocument checks a chiefOfStaff article or facet page.
func ValidateDocument(d *content.Document) []Violation {
	c := &checker{}

	c.required("slug", d.Slug)
	c.required("pageTitle", d.PageTitle)
	c.required("question", d.Question)

	if c.required("metaTitle", d.MetaTitle) {
		c.length("metaTitle", d.MetaTitle, MetaTitleMin, MetaTitleMax)
		if !strings.Contains(d.MetaTitle, MetaTitleBrand) {
			c.add("metaTitle", "must contain %q", MetaTitleBrand)
		}
	}
	if c.required("metaDescription", d.MetaDescription) {
		c.length("metaDescription", d.MetaDescription, MetaDescriptionMin, MetaDescriptionMax)
	}
	if c.required("tldr", d.TLDR) {
		c.length("tldr", d.TLDR, 0, TLDRMax)
	}

	if c.required("region", d.Region) {
		c.oneOf("region", d.Region, content.Regions)
	}
	c.oneOf("location", d.Location, content.LocationCodes())
	c.oneOf("industry", d.Industry, content.SectorCodes())

	if d.Author == nil || (d.Author.ID == "" && d.Author.Name == "") {
		c.add("author", "is required")
	}
	if d.PublishedAt.IsZero() {
		c.add("publishedAt", "is required")
	}

	if s := d.SalaryData; s != nil {
		c.nonNegative("salaryData.min", s.Min)
		c.nonNegative("salaryData.max", s.Max)
		if v, ok := s.Average.Float(); ok {
			c.nonNegative("salaryData.average", v)
		}
		c.oneOf("salaryData.currency", s.Currency, AcceptedCurrencies())
	}

	return c.violations
}

// AcceptedCurrencies is the editorial currency list plus the local currency
// of every covered city.
func AcceptedCurrencies() []string {
	out := slices.Clone(content.Currencies)
	for _, city := range content.Cities {
		if !slices.Contains(out, city.Currency) {
			out = append(out, city.Currency)
		}
	}
	return out
}

// ValidateAgency checks a recruitment agency listing.
func ValidateAgency(a *content.Agency) []Violation {
	c := &checker{}

	c.required("name", a.Name)
	c.required("slug", a.Slug)
	if a.Description != "" {
		c.length("description", a.Description, AgencyDescMin, AgencyDescMax)
	}
	for i, s := range a.Specializations {
		c.oneOf(fmt.Sprintf("specializations[%d]", i), s, content.Specializations)
	}
	if a.Rating < 0 || a.Rating > RatingMax {
		c.add("rating", "must be between 0 and %d", RatingMax)
	} else if math.Abs(a.Rating*10-math.Round(a.Rating*10)) > 1e-9 {
		c.add("rating", "must have at most one decimal place")
	}
	if a.ReviewCount < 0 {
		c.add("reviewCount", "must be >= 0")
	}

	return c.violations
}

// ValidateFAQ checks an FAQ entry.
func ValidateFAQ(f *content.FAQ) []Violation {
	c := &checker{}

	c.required("question", f.Question)
	c.required("slug", f.Slug)
	if c.required("shortAnswer", f.ShortAnswer) {
		c.length("shortAnswer", f.ShortAnswer, 0, ShortAnswerMax)
	}
	c.oneOf("category", f.Category, content.FAQCategories)

	return c.violations
}

// ValidateJob checks a job listing.
func ValidateJob(j *content.Job) []Violation {
	c := &checker{}

	c.required("title", j.Title)
	c.required("slug", j.Slug)
	c.required("company.name", j.Company.Name)
	c.required("location.city", j.Location.City)
	if j.PostedDate.IsZero() {
		c.add("postedDate", "is required")
	}
	if j.Description.IsZero() || strings.TrimSpace(j.Description.Text()) == "" {
		c.add("description", "is required")
	}
	c.oneOf("status", j.Status, content.JobStatuses)
	c.oneOf("location.remote", j.Location.Remote, content.RemoteOptions)
	if j.Salary != nil {
		c.nonNegative("salary.min", j.Salary.Min)
		c.nonNegative("salary.max", j.Salary.Max)
		c.oneOf("salary.currency", j.Salary.Currency, content.Currencies)
	}

	return c.violations
}

// ValidateFeatured checks a featured content section.
func ValidateFeatured(f *content.FeaturedSection) []Violation {
	c := &checker{}

	c.required("title", f.Title)
	c.required("sectionKey", f.SectionKey)
	if len(f.Items) > FeaturedItemsMax {
		c.add("featuredItems", "must have at most %d items (got %d)", FeaturedItemsMax, len(f.Items))
	}
	c.oneOf("displayType", f.DisplayType, content.DisplayTypes)

	return c.violations
}

// ValidateAuthor checks an author.
func ValidateAuthor(a *content.Author) []Violation {
	c := &checker{}
	c.required("name", a.Name)
	return c.violations
}
