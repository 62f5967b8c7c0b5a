package fallback

import (
	"sort"

	"github.com/Londondannyboy/thechief-quest/internal/content"
)

const defaultFAQCategory = "general"

var faqCategoryOrder = []string{"general", "career", "salary", "skills", "application", "industry"}

var faqCategoryLabels = map[string]string{
	"general":     "General Questions",
	"career":      "Career Path",
	"salary":      "Salary & Compensation",
	"skills":      "Skills & Requirements",
	"application": "Application Process",
	"industry":    "Industry Specific",
}

// FAQGroup is one category section of the FAQ page.
type FAQGroup struct {
	Category string
	Label    string
	FAQs     []content.FAQ
}

// FAQCategoryLabel returns the display label, or the category itself.
func FAQCategoryLabel(category string) string {
	return Or(faqCategoryLabels[category], category)
}

// GroupFAQs groups by category, keeping input order within a group. Known
// categories come first in a fixed order, then unknown ones alphabetically.
func GroupFAQs(faqs []content.FAQ) []FAQGroup {
	byCategory := make(map[string][]content.FAQ)
	for _, f := range faqs {
		cat := Or(f.Category, defaultFAQCategory)
		byCategory[cat] = append(byCategory[cat], f)
	}

	groups := make([]FAQGroup, 0, len(byCategory))
	for _, cat := range faqCategoryOrder {
		if items, ok := byCategory[cat]; ok {
			groups = append(groups, FAQGroup{Category: cat, Label: FAQCategoryLabel(cat), FAQs: items})
			delete(byCategory, cat)
		}
	}

	rest := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		rest = append(rest, cat)
	}
	sort.Strings(rest)
	for _, cat := range rest {
		groups = append(groups, FAQGroup{Category: cat, Label: FAQCategoryLabel(cat), FAQs: byCategory[cat]})
	}
	return groups
}
