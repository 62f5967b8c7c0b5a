package fallback

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Londondannyboy/thechief-quest/internal/content"
)

var currencySymbols = map[string]string{
	"GBP": "£",
	"EUR": "€",
	"USD": "$",
}

// CurrencyPrefix is "£" for GBP and similar, otherwise the code and a space.
func CurrencyPrefix(currency string) string {
	if sym, ok := currencySymbols[strings.ToUpper(currency)]; ok {
		return sym
	}
	if currency == "" {
		return currencySymbols["GBP"]
	}
	return strings.ToUpper(currency) + " "
}

// FormatSalary renders an amount with thousands separators, "£150,000" or
// "AED 600,000". Text values are editor-formatted and pass through.
func FormatSalary(m content.Money, currency string) string {
	if m.IsZero() {
		return ""
	}
	if m.IsText() {
		return m.Text
	}
	v, _ := m.Float()
	return CurrencyPrefix(currency) + humanize.Comma(int64(math.Round(v)))
}

// FormatSalaryShort renders thousands as "£120K".
func FormatSalaryShort(v float64, currency string) string {
	if v <= 0 {
		return ""
	}
	return CurrencyPrefix(currency) + humanize.Comma(int64(math.Round(v/1000))) + "K"
}

// SpecializationLabel turns "c-suite" into "C Suite". Only the first
// hyphen becomes a space.
func SpecializationLabel(tag string) string {
	return titleCase(strings.Replace(tag, "-", " ", 1))
}

// DisplayName turns an industry slug into a heading name.
func DisplayName(slug string) string {
	return titleCase(strings.Replace(slug, "-", " ", 1))
}

func titleCase(s string) string {
	// Casers keep state and must not be shared between goroutines.
	return cases.Title(language.English).String(s)
}
