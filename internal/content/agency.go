package content

import "encoding/json"

// Agency is a recruitment agency listing.
type Agency struct {
	ID              string    `json:"_id,omitempty"`
	Slug            string    `json:"slug,omitempty"`
	Name            string    `json:"name,omitempty"`
	Description     string    `json:"description,omitempty"`
	Website         string    `json:"website,omitempty"`
	LinkedIn        string    `json:"linkedin,omitempty"`
	Specializations []string  `json:"specializations,omitempty"`
	Industries      []string  `json:"industries,omitempty"`
	Locations       []Office  `json:"locations,omitempty"`
	Size            string    `json:"size,omitempty"`
	Rating          float64   `json:"rating,omitempty"`
	ReviewCount     int       `json:"reviewCount,omitempty"`
	Verified        bool      `json:"verified,omitempty"`
	UpdatedAt       Timestamp `json:"_updatedAt,omitzero"`
}

func (a *Agency) RecordKind() Kind   { return KindRecruitmentAgency }
func (a *Agency) RecordSlug() string { return a.Slug }
func (a *Agency) RecordID() string   { return a.ID }

// Office is one agency location. Older documents store a bare city name.
type Office struct {
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

func (o *Office) UnmarshalJSON(data []byte) error {
	var city string
	if err := json.Unmarshal(data, &city); err == nil {
		*o = Office{City: city}
		return nil
	}
	type plain Office
	return json.Unmarshal(data, (*plain)(o))
}

// FAQ is a question with a short and a detailed answer.
type FAQ struct {
	ID             string    `json:"_id,omitempty"`
	Slug           string    `json:"slug,omitempty"`
	Question       string    `json:"question,omitempty"`
	ShortAnswer    string    `json:"shortAnswer,omitempty"`
	DetailedAnswer Body      `json:"detailedAnswer,omitzero"`
	Category       string    `json:"category,omitempty"`
	Keywords       []string  `json:"keywords,omitempty"`
	Helpful        int       `json:"helpful"`
	NotHelpful     int       `json:"notHelpful"`
	Order          int       `json:"order,omitempty"`
	UpdatedAt      Timestamp `json:"_updatedAt,omitzero"`
}

func (f *FAQ) RecordKind() Kind   { return KindFAQ }
func (f *FAQ) RecordSlug() string { return f.Slug }
func (f *FAQ) RecordID() string   { return f.ID }

// Job is a job listing.
type Job struct {
	ID               string      `json:"_id,omitempty"`
	Slug             string      `json:"slug,omitempty"`
	Title            string      `json:"title,omitempty"`
	Company          Company     `json:"company,omitzero"`
	Location         JobLocation `json:"location,omitzero"`
	Industry         string      `json:"industry,omitempty"`
	Salary           *JobSalary  `json:"salary,omitempty"`
	SalaryRange      string      `json:"salaryRange,omitempty"`
	ExperienceLevel  string      `json:"experienceLevel,omitempty"`
	ShortDescription string      `json:"shortDescription,omitempty"`
	Description      Body        `json:"description,omitzero"`
	Requirements     []string    `json:"requirements,omitempty"`
	Benefits         []string    `json:"benefits,omitempty"`
	ApplicationURL   string      `json:"applicationUrl,omitempty"`
	PostedDate       Timestamp   `json:"postedDate,omitzero"`
	Status           string      `json:"status,omitempty"`
	IsActive         bool        `json:"isActive"`
	UpdatedAt        Timestamp   `json:"_updatedAt,omitzero"`
}

func (j *Job) RecordKind() Kind   { return KindJobListing }
func (j *Job) RecordSlug() string { return j.Slug }
func (j *Job) RecordID() string   { return j.ID }

// Company is the hiring company. Older documents store a bare name.
type Company struct {
	Name    string `json:"name,omitempty"`
	Website string `json:"website,omitempty"`
	Size    string `json:"size,omitempty"`
}

func (c *Company) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = Company{Name: name}
		return nil
	}
	type plain Company
	return json.Unmarshal(data, (*plain)(c))
}

// JobLocation is where a job is based. Older documents store a bare city.
type JobLocation struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Remote  string `json:"remote,omitempty"`
}

func (l *JobLocation) UnmarshalJSON(data []byte) error {
	var city string
	if err := json.Unmarshal(data, &city); err == nil {
		*l = JobLocation{City: city}
		return nil
	}
	type plain JobLocation
	return json.Unmarshal(data, (*plain)(l))
}

// JobSalary is the advertised pay band.
type JobSalary struct {
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
	Currency string  `json:"currency,omitempty"`
	Period   string  `json:"period,omitempty"`
}
