package fallback

// LocationDetail is the static record for a location page.
type LocationDetail struct {
	Name         string
	Country      string
	AvgSalary    string
	JobCount     int
	Description  string
	Industries   []string
	TopEmployers []string
}

var mockLocations = map[string]LocationDetail{
	"london": {
		Name:         "London",
		Country:      "UK",
		AvgSalary:    "£150,000",
		JobCount:     234,
		Description:  "London is the premier destination for Chief of Staff roles in Europe, with the highest concentration of C-suite opportunities.",
		Industries:   []string{"Private Equity", "Hedge Funds", "Technology", "Financial Services"},
		TopEmployers: []string{"Goldman Sachs", "JP Morgan", "BlackRock", "KKR", "Carlyle Group"},
	},
	"dubai": {
		Name:         "Dubai",
		Country:      "UAE",
		AvgSalary:    "AED 600,000",
		JobCount:     89,
		Description:  "Dubai offers tax-free Chief of Staff opportunities in a rapidly growing business hub connecting East and West.",
		Industries:   []string{"Private Equity", "Real Estate", "Technology", "Government"},
		TopEmployers: []string{"Mubadala", "ADNOC", "Emirates NBD", "Dubai Holding", "Majid Al Futtaim"},
	},
	"zurich": {
		Name:         "Zurich",
		Country:      "Switzerland",
		AvgSalary:    "CHF 180,000",
		JobCount:     45,
		Description:  "Zurich provides Chief of Staff roles in global financial institutions and multinational headquarters.",
		Industries:   []string{"Banking", "Insurance", "Pharmaceuticals", "Technology"},
		TopEmployers: []string{"UBS", "Credit Suisse", "Swiss Re", "Zurich Insurance", "Novartis"},
	},
}

// IndustryDetail is the static record for an industry page.
type IndustryDetail struct {
	Name         string
	AvgSalary    string
	JobCount     int
	Description  string
	KeyLocations []string
	TopFirms     []string
	Skills       []string
}

var mockIndustries = map[string]IndustryDetail{
	"private-equity": {
		Name:         "Private Equity",
		AvgSalary:    "£180,000",
		JobCount:     156,
		Description:  "Private Equity offers the highest-paying Chief of Staff roles, working directly with Partners and Portfolio Company CEOs.",
		KeyLocations: []string{"London", "Dubai", "Zurich"},
		TopFirms:     []string{"KKR", "Blackstone", "Carlyle", "Apollo", "CVC Capital"},
		Skills:       []string{"Financial modeling", "Due diligence", "Portfolio management", "Strategic planning"},
	},
	"hedge-funds": {
		Name:         "Hedge Funds",
		AvgSalary:    "£165,000",
		JobCount:     89,
		Description:  "Hedge Fund Chief of Staff roles combine operational excellence with investment strategy support.",
		KeyLocations: []string{"London", "Geneva", "Dubai"},
		TopFirms:     []string{"Bridgewater", "Man Group", "Brevan Howard", "Millennium", "Citadel"},
		Skills:       []string{"Risk management", "Regulatory compliance", "Operations", "Investor relations"},
	},
	"venture-capital": {
		Name:         "Venture Capital",
		AvgSalary:    "£140,000",
		JobCount:     67,
		Description:  "VC Chief of Staff roles focus on portfolio support, fundraising, and ecosystem building.",
		KeyLocations: []string{"London", "Berlin", "Tel Aviv"},
		TopFirms:     []string{"Sequoia", "Index Ventures", "Balderton", "Accel", "Atomico"},
		Skills:       []string{"Startup operations", "Network building", "Deal flow management", "Portfolio support"},
	},
	"technology": {
		Name:         "Technology",
		AvgSalary:    "£130,000",
		JobCount:     234,
		Description:  "Tech Chief of Staff roles drive product strategy, organizational scaling, and strategic initiatives.",
		KeyLocations: []string{"London", "Dublin", "Amsterdam"},
		TopFirms:     []string{"Google", "Meta", "Microsoft", "Amazon", "Apple"},
		Skills:       []string{"Product management", "Agile methodologies", "Data analysis", "Growth strategies"},
	},
}

// MockLocation returns the static location record for a stripped slug.
func MockLocation(code string) (LocationDetail, bool) {
	d, ok := mockLocations[code]
	return d, ok
}

// MockIndustry returns the static industry record for a stripped slug.
func MockIndustry(code string) (IndustryDetail, bool) {
	d, ok := mockIndustries[code]
	return d, ok
}

// CityCard is one entry of the locations index.
type CityCard struct {
	ID        string
	Name      string
	Jobs      int
	AvgSalary string
}

// RegionGroup is one section of the locations index.
type RegionGroup struct {
	Name   string
	Cities []CityCard
}

// LocationsIndex is the static locations table, grouped by region.
var LocationsIndex = []RegionGroup{
	{Name: "United Kingdom", Cities: []CityCard{
		{ID: "london", Name: "London", Jobs: 234, AvgSalary: "£150K"},
		{ID: "manchester", Name: "Manchester", Jobs: 67, AvgSalary: "£95K"},
		{ID: "birmingham", Name: "Birmingham", Jobs: 45, AvgSalary: "£85K"},
		{ID: "edinburgh", Name: "Edinburgh", Jobs: 42, AvgSalary: "£90K"},
		{ID: "glasgow", Name: "Glasgow", Jobs: 38, AvgSalary: "£85K"},
		{ID: "leeds", Name: "Leeds", Jobs: 35, AvgSalary: "£80K"},
		{ID: "bristol", Name: "Bristol", Jobs: 32, AvgSalary: "£85K"},
		{ID: "cardiff", Name: "Cardiff", Jobs: 28, AvgSalary: "£75K"},
		{ID: "liverpool", Name: "Liverpool", Jobs: 25, AvgSalary: "£75K"},
		{ID: "newcastle", Name: "Newcastle", Jobs: 22, AvgSalary: "£70K"},
		{ID: "sheffield", Name: "Sheffield", Jobs: 20, AvgSalary: "£70K"},
	}},
	{Name: "Europe", Cities: []CityCard{
		{ID: "zurich", Name: "Zurich", Jobs: 45, AvgSalary: "CHF 180K"},
		{ID: "geneva", Name: "Geneva", Jobs: 34, AvgSalary: "CHF 165K"},
		{ID: "luxembourg", Name: "Luxembourg City", Jobs: 28, AvgSalary: "€140K"},
	}},
	{Name: "Middle East", Cities: []CityCard{
		{ID: "dubai", Name: "Dubai", Jobs: 89, AvgSalary: "AED 600K"},
		{ID: "abu-dhabi", Name: "Abu Dhabi", Jobs: 56, AvgSalary: "AED 650K"},
		{ID: "doha", Name: "Doha", Jobs: 42, AvgSalary: "QAR 550K"},
		{ID: "riyadh", Name: "Riyadh", Jobs: 38, AvgSalary: "SAR 500K"},
		{ID: "kuwait-city", Name: "Kuwait City", Jobs: 25, AvgSalary: "KWD 45K"},
		{ID: "manama", Name: "Manama", Jobs: 18, AvgSalary: "BHD 50K"},
	}},
}

// IndustryCard is one entry of the industries index.
type IndustryCard struct {
	ID          string
	Name        string
	AvgSalary   string
	Jobs        int
	Description string
	TopFirms    []string
}

// IndustriesIndex is the static industries table.
var IndustriesIndex = []IndustryCard{
	{ID: "private-equity", Name: "Private Equity", AvgSalary: "£180,000", Jobs: 156,
		Description: "Work with Partners and Portfolio Company CEOs in high-stakes environments.",
		TopFirms:    []string{"KKR", "Blackstone", "Carlyle", "Apollo"}},
	{ID: "hedge-funds", Name: "Hedge Funds", AvgSalary: "£165,000", Jobs: 89,
		Description: "Support investment strategy and operational excellence.",
		TopFirms:    []string{"Bridgewater", "Man Group", "Brevan Howard", "Millennium"}},
	{ID: "venture-capital", Name: "Venture Capital", AvgSalary: "£140,000", Jobs: 67,
		Description: "Drive portfolio support and ecosystem building.",
		TopFirms:    []string{"Sequoia", "Index Ventures", "Balderton", "Accel"}},
	{ID: "technology", Name: "Technology", AvgSalary: "£130,000", Jobs: 234,
		Description: "Lead product strategy and organizational scaling.",
		TopFirms:    []string{"Google", "Meta", "Microsoft", "Amazon"}},
	{ID: "startups", Name: "Startups", AvgSalary: "£110,000", Jobs: 145,
		Description: "Shape company direction in fast-growing environments.",
		TopFirms:    []string{"Series A-C companies", "Scale-ups", "Unicorns"}},
	{ID: "utilities", Name: "Utilities", AvgSalary: "£95,000", Jobs: 42,
		Description: "Drive transformation in essential services.",
		TopFirms:    []string{"National Grid", "Centrica", "SSE", "E.ON"}},
}

// PopularLocation is a home page location card.
type PopularLocation struct {
	Slug      string
	Name      string
	Country   string
	Jobs      int
	AvgSalary string
}

// PopularLocations are the home page cards.
var PopularLocations = []PopularLocation{
	{Slug: "london", Name: "London", Country: "UK", Jobs: 234, AvgSalary: "£150K"},
	{Slug: "dubai", Name: "Dubai", Country: "UAE", Jobs: 89, AvgSalary: "AED 600K"},
	{Slug: "zurich", Name: "Zurich", Country: "Switzerland", Jobs: 45, AvgSalary: "CHF 180K"},
	{Slug: "manchester", Name: "Manchester", Country: "UK", Jobs: 67, AvgSalary: "£95K"},
	{Slug: "geneva", Name: "Geneva", Country: "Switzerland", Jobs: 34, AvgSalary: "CHF 165K"},
	{Slug: "edinburgh", Name: "Edinburgh", Country: "UK", Jobs: 42, AvgSalary: "£85K"},
}

// FeaturedLocation is a jobs page "coming soon" card.
type FeaturedLocation struct {
	Slug string
	Name string
	Jobs int
}

// FeaturedLocations are the location cards shown while the job board is
// empty, in display order.
func FeaturedLocations() []FeaturedLocation {
	out := make([]FeaturedLocation, 0, 3)
	for _, code := range []string{"london", "dubai", "zurich"} {
		d := mockLocations[code]
		out = append(out, FeaturedLocation{Slug: code, Name: d.Name, Jobs: d.JobCount})
	}
	return out
}
