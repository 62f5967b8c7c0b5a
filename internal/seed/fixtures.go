package seed

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/Londondannyboy/thechief-quest/internal/content"
)

// EditorialSlug is the slug of the seeded author.
const EditorialSlug = "editorial-team"

// ComboLocations is how many of content.Cities get location×industry pages.
const ComboLocations = 5

// EditorialAuthorID is stable across runs so documents seeded later still
// reference an author created earlier.
var EditorialAuthorID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://thechief.quest/authors/"+EditorialSlug)).String()

// industryMultipliers scale a city's average salary for a sector.
var industryMultipliers = map[string]float64{
	"private-equity":  1.3,
	"hedge-fund":      1.25,
	"venture-capital": 1.1,
	"startup":         0.9,
	"utilities":       0.95,
	"telecoms":        1.0,
}

type agencyFixture struct {
	name            string
	description     string
	specializations []string
	website         string
	rating          float64
	reviewCount     int
}

var agencyFixtures = []agencyFixture{
	{
		name:            "Knightsbridge Recruitment",
		description:     "Leading executive search firm specialising in Chief of Staff placements across EMEA, from founder-led scale-ups to FTSE 100 leadership teams.",
		specializations: []string{"chief-of-staff", "executive-assistant", "c-suite"},
		website:         "https://www.knightsbridgerecruitment.com",
		rating:          4.8,
		reviewCount:     86,
	},
	{
		name:            "Chief of Staff Network",
		description:     "Specialist recruiter focused exclusively on Chief of Staff and strategic leadership roles, with a community of vetted candidates in London and Dubai.",
		specializations: []string{"chief-of-staff", "board-advisory"},
		website:         "https://www.chiefofstaffnetwork.com",
		rating:          4.6,
		reviewCount:     54,
	},
	{
		name:            "Executive Appointments",
		description:     "Boutique search firm for C-suite and Chief of Staff positions in financial services, covering private equity, hedge funds and asset managers.",
		specializations: []string{"chief-of-staff", "c-suite", "interim"},
		website:         "https://www.executiveappointments.com",
		rating:          4.5,
		reviewCount:     31,
	},
}

type faqFixture struct {
	question    string
	shortAnswer string
	category    string
}

var faqFixtures = []faqFixture{
	{
		question:    "What does a Chief of Staff do?",
		shortAnswer: "A Chief of Staff acts as a strategic partner to C-suite executives, managing critical initiatives and driving organizational alignment.",
		category:    "general",
	},
	{
		question:    "What is the typical career path to Chief of Staff?",
		shortAnswer: "Most Chiefs of Staff come from consulting (40%), investment banking (25%), or internal operations (20%) backgrounds.",
		category:    "career",
	},
	{
		question:    "How long do Chief of Staff roles typically last?",
		shortAnswer: "Chief of Staff positions typically last 18-24 months before transitioning to senior executive roles.",
		category:    "career",
	},
	{
		question:    "What is the difference between Chief of Staff and Executive Assistant?",
		shortAnswer: "Chief of Staff is a strategic role managing initiatives, while Executive Assistant focuses on administrative support.",
		category:    "general",
	},
	{
		question:    "Do I need an MBA to become a Chief of Staff?",
		shortAnswer: "While 60% of Chiefs of Staff have MBAs, it's not required. Relevant experience and skills are equally valued.",
		category:    "career",
	},
	{
		question:    "What industries pay the highest Chief of Staff salaries?",
		shortAnswer: "Private Equity, Hedge Funds, and Technology typically offer the highest Chief of Staff compensation packages.",
		category:    "salary",
	},
}

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	nonAlnumRun    = regexp.MustCompile(`[^a-z0-9]+`)
	regionPhrasing = map[string]string{
		content.RegionUK:         "the UK",
		content.RegionEurope:     "Europe",
		content.RegionMiddleEast: "the Middle East",
	}
)

// AgencySlug lowercases name and replaces whitespace runs with "-".
func AgencySlug(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// FAQSlug lowercases question, replaces non-alphanumeric runs with "-" and
// drops one trailing "-".
func FAQSlug(question string) string {
	return strings.TrimSuffix(nonAlnumRun.ReplaceAllString(strings.ToLower(question), "-"), "-")
}

func round(v float64) float64 {
	return math.Round(v)
}

func amount(currency string, v float64) string {
	return currency + " " + humanize.Comma(int64(v))
}

// Fixtures returns every sample record in creation order, author first.
// IDs are left empty; the Seeder assigns them.
func Fixtures(now time.Time) []content.Record {
	today := now.UTC().Format(time.DateOnly)
	author := &content.AuthorRef{ID: EditorialAuthorID}

	out := []content.Record{&content.Author{
		ID:          EditorialAuthorID,
		Slug:        EditorialSlug,
		Name:        "TheChief Editorial Team",
		Role:        "Editorial",
		Bio:         "Expert team providing insights on Chief of Staff careers across the UK, Europe and the Middle East.",
		Credentials: "Combined 50+ years in executive search and Chief of Staff roles",
	}}

	for _, city := range content.Cities {
		out = append(out, locationDocument(city, author, now, today))
	}
	for _, city := range content.Cities[:ComboLocations] {
		for _, sector := range content.Sectors {
			out = append(out, comboDocument(city, sector, author, now, today))
		}
	}
	for _, a := range agencyFixtures {
		out = append(out, &content.Agency{
			Slug:            AgencySlug(a.name),
			Name:            a.name,
			Description:     a.description,
			Website:         a.website,
			Specializations: a.specializations,
			Industries:      []string{"private-equity", "hedge-funds", "technology"},
			Locations: []content.Office{
				{City: "London", Email: "london@example.com"},
				{City: "Dubai", Email: "dubai@example.com"},
			},
			Rating:      a.rating,
			ReviewCount: a.reviewCount,
			Verified:    true,
		})
	}
	for i, f := range faqFixtures {
		out = append(out, &content.FAQ{
			Slug:           FAQSlug(f.question),
			Question:       f.question,
			ShortAnswer:    f.shortAnswer,
			DetailedAnswer: content.TextBlocks(f.shortAnswer + " Understanding this is crucial for career planning in the Chief of Staff field."),
			Category:       f.category,
			Keywords:       []string{"chief of staff", "career", "executive"},
			Order:          i + 1,
		})
	}
	return out
}

func locationDocument(city content.City, author *content.AuthorRef, now time.Time, today string) *content.Document {
	avg := amount(city.Currency, city.AvgSalary)
	return &content.Document{
		Slug:            "chief-of-staff-" + city.Code,
		PageTitle:       "Chief of Staff Jobs in " + city.Name,
		MetaTitle:       fmt.Sprintf("Chief of Staff %s - Jobs & Salaries | TheChief", city.Name),
		MetaDescription: fmt.Sprintf("Chief of Staff jobs in %s, %s. Average salary %s. Top employers, hiring trends and career insights for senior operators working alongside CEOs.", city.Name, city.Country, avg),
		TLDR:            fmt.Sprintf("%s offers Chief of Staff roles with an average salary of %s", city.Name, avg),
		Question:        fmt.Sprintf("What are Chief of Staff opportunities in %s?", city.Name),
		Location:        city.Code,
		Region:          city.Region,
		Author:          author,
		PublishedAt:     content.At(now),
		SalaryData: &content.SalaryData{
			Min:         round(city.AvgSalary * 0.7),
			Max:         round(city.AvgSalary * 1.4),
			Average:     content.Amount(city.AvgSalary),
			Currency:    city.Currency,
			LastUpdated: today,
			DataSource:  "Market research",
		},
		Body: content.TextBlocks(fmt.Sprintf(
			"%s is a key market for Chief of Staff positions in %s. The city offers diverse opportunities across multiple industries with competitive compensation packages.",
			city.Name, regionPhrasing[city.Region])),
	}
}

func comboDocument(city content.City, sector content.Sector, author *content.AuthorRef, now time.Time, today string) *content.Document {
	adjusted := round(city.AvgSalary * industryMultipliers[sector.Code])
	avg := amount(city.Currency, adjusted)
	return &content.Document{
		Slug:            fmt.Sprintf("chief-of-staff-%s-%s", city.Code, sector.Code),
		PageTitle:       fmt.Sprintf("%s Chief of Staff - %s", sector.Name, city.Name),
		MetaTitle:       fmt.Sprintf("%s Chief of Staff %s | TheChief", sector.Name, city.Name),
		MetaDescription: fmt.Sprintf("Chief of Staff roles in the %s sector in %s. Average salary %s, with pay bands, employers and the skills hiring managers look for.", sector.Name, city.Name, avg),
		TLDR:            fmt.Sprintf("%s Chief of Staff in %s: %s average", sector.Name, city.Name, avg),
		Question:        fmt.Sprintf("What are %s Chief of Staff roles in %s?", sector.Name, city.Name),
		Location:        city.Code,
		Industry:        sector.Code,
		Region:          city.Region,
		Author:          author,
		PublishedAt:     content.At(now),
		SalaryData: &content.SalaryData{
			Min:         round(adjusted * 0.8),
			Max:         round(adjusted * 1.3),
			Average:     content.Amount(adjusted),
			Currency:    city.Currency,
			LastUpdated: today,
			DataSource:  "Industry analysis",
		},
		Body: content.TextBlocks(fmt.Sprintf(
			"The %s sector in %s offers specialized Chief of Staff opportunities with unique challenges and rewards.",
			sector.Name, city.Name)),
	}
}
