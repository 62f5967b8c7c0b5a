// Package content defines the documents the site reads from its content
// store: chiefOfStaff articles and location/industry facets, featured
// sections, agencies, FAQs, job listings and authors.
package content

// Kind is the document type discriminator (_type in the store).
type Kind string

const (
	KindChiefOfStaff      Kind = "chiefOfStaff"
	KindFeaturedContent   Kind = "featuredContent"
	KindRecruitmentAgency Kind = "recruitmentAgency"
	KindFAQ               Kind = "faqContent"
	KindJobListing        Kind = "jobListing"
	KindAuthor            Kind = "author"
)

// Kinds lists every document kind in a stable order.
var Kinds = []Kind{
	KindChiefOfStaff,
	KindFeaturedContent,
	KindRecruitmentAgency,
	KindFAQ,
	KindJobListing,
	KindAuthor,
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Record is implemented by every storable document.
type Record interface {
	RecordKind() Kind
	RecordSlug() string
	RecordID() string
}

// Document is a chiefOfStaff record. Location and industry facets are
// Documents with Location and/or Industry set; articles usually have
// neither.
type Document struct {
	ID              string      `json:"_id,omitempty"`
	Type            Kind        `json:"_type,omitempty"`
	Slug            string      `json:"slug,omitempty"`
	Title           string      `json:"title,omitempty"`
	PageTitle       string      `json:"pageTitle,omitempty"`
	MetaTitle       string      `json:"metaTitle,omitempty"`
	MetaDescription string      `json:"metaDescription,omitempty"`
	TLDR            string      `json:"tldr,omitempty"`
	Question        string      `json:"question,omitempty"`
	Location        string      `json:"location,omitempty"`
	Industry        string      `json:"industry,omitempty"`
	Region          string      `json:"region,omitempty"`
	Body            Body        `json:"content,omitzero"`
	PublishedAt     Timestamp   `json:"publishedAt,omitzero"`
	UpdatedAt       Timestamp   `json:"_updatedAt,omitzero"`
	Author          *AuthorRef  `json:"author,omitempty"`
	SalaryData      *SalaryData `json:"salaryData,omitempty"`
}

func (d *Document) RecordKind() Kind   { return KindChiefOfStaff }
func (d *Document) RecordSlug() string { return d.Slug }
func (d *Document) RecordID() string   { return d.ID }

// IsLocationFacet reports a location page document (no industry).
func (d *Document) IsLocationFacet() bool {
	return d.Location != "" && d.Industry == ""
}

// IsIndustryFacet reports an industry page document (no location).
func (d *Document) IsIndustryFacet() bool {
	return d.Industry != "" && d.Location == ""
}

// AuthorRef is the dereferenced author on a Document. On write only ID is
// used, as a reference.
type AuthorRef struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

// SalaryData is the compensation summary on facet documents.
type SalaryData struct {
	Min           float64  `json:"min,omitempty"`
	Max           float64  `json:"max,omitempty"`
	Average       Money    `json:"average,omitzero"`
	Range         string   `json:"range,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	JobCount      int      `json:"jobCount,omitempty"`
	TopEmployers  []string `json:"topEmployers,omitempty"`
	TopIndustries []string `json:"topIndustries,omitempty"`
	GrowthRate    string   `json:"growthRate,omitempty"`
	LastUpdated   string   `json:"lastUpdated,omitempty"`
	DataSource    string   `json:"dataSource,omitempty"`
}

// FeaturedSection is a curated block keyed by SectionKey.
type FeaturedSection struct {
	ID          string         `json:"_id,omitempty"`
	Title       string         `json:"title,omitempty"`
	SectionKey  string         `json:"sectionKey,omitempty"`
	DisplayType string         `json:"displayType,omitempty"`
	IsActive    bool           `json:"isActive"`
	Order       int            `json:"order,omitempty"`
	Items       []FeaturedItem `json:"featuredItems,omitempty"`
	PublishedAt Timestamp      `json:"publishedAt,omitzero"`
	UpdatedAt   Timestamp      `json:"_updatedAt,omitzero"`
}

func (f *FeaturedSection) RecordKind() Kind   { return KindFeaturedContent }
func (f *FeaturedSection) RecordSlug() string { return f.SectionKey }
func (f *FeaturedSection) RecordID() string   { return f.ID }

// FeaturedItem is a dereferenced entry of a featured section.
type FeaturedItem struct {
	ID    string `json:"_id,omitempty"`
	Type  Kind   `json:"_type,omitempty"`
	Title string `json:"title,omitempty"`
	Slug  string `json:"slug,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Author is an article author.
type Author struct {
	ID          string `json:"_id,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Name        string `json:"name,omitempty"`
	Role        string `json:"role,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Credentials string `json:"credentials,omitempty"`
	LinkedIn    string `json:"linkedin,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
}

func (a *Author) RecordKind() Kind   { return KindAuthor }
func (a *Author) RecordSlug() string { return a.Slug }
func (a *Author) RecordID() string   { return a.ID }
