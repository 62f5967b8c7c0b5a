package fallback

import (
	"fmt"
	"strings"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/metrics"
	"github.com/Londondannyboy/thechief-quest/internal/resolver"
)

const (
	siteName                  = "TheChief.quest"
	defaultAuthor             = "TheChief.quest Team"
	defaultArticleDescription = "Expert insights on Chief of Staff careers"
)

// Location page defaults.
const (
	defaultCountry   = "UK"
	defaultAvgSalary = "£150,000"
	defaultJobCount  = 100
)

var (
	defaultIndustries   = []string{"Private Equity", "Technology"}
	defaultTopEmployers = []string{"Top Employer 1", "Top Employer 2"}
	defaultKeyLocations = []string{"London"}
	defaultTopFirms     = []string{"Top Firm 1", "Top Firm 2"}
	defaultSkills       = []string{"Strategic planning", "Stakeholder management", "Operations", "Executive communication"}
)

// LocationView is everything the location page displays.
type LocationView struct {
	Slug            string
	Name            string
	Country         string
	AvgSalary       string
	JobCount        int
	IndustryCount   int
	Description     string
	Industries      []string
	TopEmployers    []string
	Heading         string
	MetaTitle       string
	MetaDescription string
	Body            content.Body
	Source          string
}

// Location merges a resolved document, or the mock row for the stripped
// slug, into a view. ok is false when neither exists.
func Location(slug string, doc *content.Document) (LocationView, bool) {
	code := resolver.LocationCode(slug)
	v := LocationView{Slug: code}

	switch {
	case doc != nil:
		salary := salaryOf(doc)
		v.Name = FirstString(nameFromPageTitle(doc.PageTitle), doc.Location)
		v.Country = Or(doc.Region, defaultCountry)
		v.AvgSalary = Or(FormatSalary(salary.Average, salary.Currency), defaultAvgSalary)
		v.JobCount = Or(salary.JobCount, defaultJobCount)
		v.Description = FirstString(doc.TLDR, doc.MetaDescription)
		v.Industries = FirstSlice(salary.TopIndustries, defaultIndustries)
		v.TopEmployers = FirstSlice(salary.TopEmployers, defaultTopEmployers)
		v.MetaTitle = doc.MetaTitle
		v.MetaDescription = doc.MetaDescription
		v.Body = doc.Body
		v.Source = metrics.SourceContent
	default:
		mock, ok := MockLocation(code)
		if !ok {
			return LocationView{Slug: code, Source: metrics.SourceNone}, false
		}
		v.Name = mock.Name
		v.Country = mock.Country
		v.AvgSalary = mock.AvgSalary
		v.JobCount = mock.JobCount
		v.Description = mock.Description
		v.Industries = mock.Industries
		v.TopEmployers = mock.TopEmployers
		v.Source = metrics.SourceMock
	}

	v.IndustryCount = len(v.Industries)
	v.Heading = Or(v.MetaTitle, fmt.Sprintf("Chief of Staff Jobs in %s, %s", v.Name, v.Country))
	v.MetaTitle = Or(v.MetaTitle, v.Heading+" | "+siteName)
	v.MetaDescription = FirstString(v.MetaDescription, v.Description)
	return v, true
}

// IndustryView is everything the industry page displays.
type IndustryView struct {
	Slug            string
	Name            string
	AvgSalary       string
	JobCount        int
	Description     string
	KeyLocations    []string
	TopFirms        []string
	Skills          []string
	Heading         string
	MetaTitle       string
	MetaDescription string
	Body            content.Body
	Source          string
}

// Industry merges a resolved document with the mock row for the slug. Each
// field falls back from content to the mock row to a literal. ok is false
// when there is neither content nor a mock row.
func Industry(slug string, doc *content.Document) (IndustryView, bool) {
	code := resolver.LocationCode(slug)
	mock, hasMock := MockIndustry(code)
	if doc == nil && !hasMock {
		return IndustryView{Slug: code, Source: metrics.SourceNone}, false
	}

	v := IndustryView{Slug: code, Source: metrics.SourceMock}
	var salary content.SalaryData
	if doc != nil {
		salary = salaryOf(doc)
		v.Name = nameFromPageTitle(doc.PageTitle)
		v.Description = FirstString(doc.TLDR, doc.MetaDescription)
		v.MetaTitle = doc.MetaTitle
		v.MetaDescription = doc.MetaDescription
		v.Body = doc.Body
		v.Source = metrics.SourceContent
	}

	v.Name = FirstString(v.Name, mock.Name, DisplayName(code))
	v.AvgSalary = FirstString(FormatSalary(salary.Average, salary.Currency), mock.AvgSalary, defaultAvgSalary)
	v.JobCount = FirstInt(salary.JobCount, mock.JobCount, defaultJobCount)
	v.Description = FirstString(v.Description, mock.Description)
	v.KeyLocations = FirstSlice(mock.KeyLocations, defaultKeyLocations)
	v.TopFirms = FirstSlice(salary.TopEmployers, mock.TopFirms, defaultTopFirms)
	v.Skills = FirstSlice(mock.Skills, defaultSkills)

	v.Heading = "Chief of Staff Jobs in " + v.Name
	v.MetaTitle = Or(v.MetaTitle, v.Heading+" | "+siteName)
	v.MetaDescription = Or(v.MetaDescription,
		fmt.Sprintf("Explore Chief of Staff opportunities in the %s industry. Find roles, salaries, and career insights.", v.Name))
	return v, true
}

// ArticleView is everything an article page displays.
type ArticleView struct {
	Slug            string
	Title           string
	MetaTitle       string
	MetaDescription string
	TLDR            string
	Author          string
	AuthorRole      string
	PublishedAt     content.Timestamp
	Body            content.Body
}

// Article builds the article view. doc must not be nil; a missing article
// is a 404, not a fallback.
func Article(doc *content.Document) ArticleView {
	v := ArticleView{
		Slug:            doc.Slug,
		Title:           FirstString(doc.Title, doc.PageTitle, "Article"),
		MetaTitle:       FirstString(doc.MetaTitle, doc.Title, doc.PageTitle, siteName),
		MetaDescription: FirstString(doc.MetaDescription, doc.TLDR, defaultArticleDescription),
		TLDR:            doc.TLDR,
		Author:          defaultAuthor,
		PublishedAt:     doc.PublishedAt,
		Body:            doc.Body,
	}
	if doc.Author != nil {
		v.Author = Or(doc.Author.Name, v.Author)
		v.AuthorRole = doc.Author.Role
	}
	return v
}

func salaryOf(doc *content.Document) content.SalaryData {
	if doc == nil || doc.SalaryData == nil {
		return content.SalaryData{}
	}
	return *doc.SalaryData
}

// nameFromPageTitle extracts "London" from "Chief of Staff Jobs in London, UK".
func nameFromPageTitle(title string) string {
	_, after, found := strings.Cut(title, " in ")
	if !found {
		return ""
	}
	name, _, _ := strings.Cut(after, ",")
	return strings.TrimSpace(name)
}
