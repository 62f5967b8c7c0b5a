package content

// Region codes.
const (
	RegionUK         = "uk"
	RegionEurope     = "europe"
	RegionMiddleEast = "middle-east"
)

// Regions lists the region codes in display order.
var Regions = []string{RegionUK, RegionEurope, RegionMiddleEast}

// RegionName is the display name of a region code.
func RegionName(code string) string {
	switch code {
	case RegionUK:
		return "United Kingdom"
	case RegionEurope:
		return "Europe"
	case RegionMiddleEast:
		return "Middle East"
	default:
		return code
	}
}

// City is one covered location.
type City struct {
	Code      string
	Name      string
	Country   string
	Region    string
	AvgSalary float64
	Currency  string
}

// Cities is the fixed set of covered locations, UK first.
var Cities = []City{
	{Code: "london", Name: "London", Country: "UK", Region: RegionUK, AvgSalary: 150000, Currency: "GBP"},
	{Code: "manchester", Name: "Manchester", Country: "UK", Region: RegionUK, AvgSalary: 95000, Currency: "GBP"},
	{Code: "birmingham", Name: "Birmingham", Country: "UK", Region: RegionUK, AvgSalary: 85000, Currency: "GBP"},
	{Code: "edinburgh", Name: "Edinburgh", Country: "UK", Region: RegionUK, AvgSalary: 90000, Currency: "GBP"},
	{Code: "glasgow", Name: "Glasgow", Country: "UK", Region: RegionUK, AvgSalary: 85000, Currency: "GBP"},
	{Code: "leeds", Name: "Leeds", Country: "UK", Region: RegionUK, AvgSalary: 80000, Currency: "GBP"},
	{Code: "bristol", Name: "Bristol", Country: "UK", Region: RegionUK, AvgSalary: 85000, Currency: "GBP"},
	{Code: "cardiff", Name: "Cardiff", Country: "UK", Region: RegionUK, AvgSalary: 75000, Currency: "GBP"},
	{Code: "liverpool", Name: "Liverpool", Country: "UK", Region: RegionUK, AvgSalary: 75000, Currency: "GBP"},
	{Code: "newcastle", Name: "Newcastle", Country: "UK", Region: RegionUK, AvgSalary: 70000, Currency: "GBP"},
	{Code: "sheffield", Name: "Sheffield", Country: "UK", Region: RegionUK, AvgSalary: 70000, Currency: "GBP"},
	{Code: "zurich", Name: "Zurich", Country: "Switzerland", Region: RegionEurope, AvgSalary: 180000, Currency: "CHF"},
	{Code: "geneva", Name: "Geneva", Country: "Switzerland", Region: RegionEurope, AvgSalary: 165000, Currency: "CHF"},
	{Code: "luxembourg", Name: "Luxembourg City", Country: "Luxembourg", Region: RegionEurope, AvgSalary: 140000, Currency: "EUR"},
	{Code: "dubai", Name: "Dubai", Country: "UAE", Region: RegionMiddleEast, AvgSalary: 600000, Currency: "AED"},
	{Code: "abu-dhabi", Name: "Abu Dhabi", Country: "UAE", Region: RegionMiddleEast, AvgSalary: 650000, Currency: "AED"},
	{Code: "doha", Name: "Doha", Country: "Qatar", Region: RegionMiddleEast, AvgSalary: 550000, Currency: "QAR"},
	{Code: "riyadh", Name: "Riyadh", Country: "Saudi Arabia", Region: RegionMiddleEast, AvgSalary: 500000, Currency: "SAR"},
	{Code: "kuwait-city", Name: "Kuwait City", Country: "Kuwait", Region: RegionMiddleEast, AvgSalary: 45000, Currency: "KWD"},
	{Code: "manama", Name: "Manama", Country: "Bahrain", Region: RegionMiddleEast, AvgSalary: 50000, Currency: "BHD"},
}

// CityByCode looks up a covered location.
func CityByCode(code string) (City, bool) {
	for _, c := range Cities {
		if c.Code == code {
			return c, true
		}
	}
	return City{}, false
}

// Sector is an industry facet code with its display name.
type Sector struct {
	Code string
	Name string
}

// Sectors is the industry enum used on chiefOfStaff documents.
var Sectors = []Sector{
	{Code: "private-equity", Name: "Private Equity"},
	{Code: "hedge-fund", Name: "Hedge Fund"},
	{Code: "venture-capital", Name: "Venture Capital"},
	{Code: "startup", Name: "Startup"},
	{Code: "utilities", Name: "Utilities"},
	{Code: "telecoms", Name: "Telecoms"},
}

// Currencies accepted on salary data.
var Currencies = []string{"GBP", "EUR", "USD"}

// Agency and FAQ enums.
var (
	Specializations = []string{"chief-of-staff", "executive-assistant", "c-suite", "board-advisory", "interim"}
	FAQCategories   = []string{"general", "career", "salary", "skills", "application", "industry"}
	JobStatuses     = []string{"active", "expired", "filled", "on-hold"}
	RemoteOptions   = []string{"onsite", "hybrid", "remote"}
	DisplayTypes    = []string{"grid", "list", "carousel", "hero"}
)

// LocationCodes returns the codes of Cities in order.
func LocationCodes() []string {
	codes := make([]string, len(Cities))
	for i, c := range Cities {
		codes[i] = c.Code
	}
	return codes
}

// SectorCodes returns the codes of Sectors in order.
func SectorCodes() []string {
	codes := make([]string, len(Sectors))
	for i, s := range Sectors {
		codes[i] = s.Code
	}
	return codes
}
