package resolver

import (
	"context"
	"strings"

	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/metrics"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

// Strategy names, also used as metric labels.
const (
	StrategySlug            = "slug"
	StrategyTitlePattern    = "title_pattern"
	StrategyFeaturedSection = "featured_section"
	StrategyLocation        = "location"
	StrategyIndustry        = "industry"
	StrategyIndustryAlias   = "industry_alias"
	StrategyCombo           = "combo"
)

// SEOPrefix is the prefix of the SEO form of location and industry URLs.
const SEOPrefix = "chief-of-staff-"

// industryAliases maps the URL form of an industry to the code stored on
// documents, both ways.
var industryAliases = map[string]string{
	"hedge-funds": "hedge-fund",
	"hedge-fund":  "hedge-funds",
	"startups":    "startup",
	"startup":     "startups",
}

// LocationCode strips one leading SEO prefix, so both /locations/london
// and /locations/chief-of-staff-london resolve to "london".
func LocationCode(slug string) string {
	return strings.TrimPrefix(slug, SEOPrefix)
}

// IndustryAlias returns the singular or plural form of an industry code.
func IndustryAlias(code string) (string, bool) {
	alias, ok := industryAliases[code]
	return alias, ok
}

// BySlug matches the document's canonical slug.
func BySlug(s store.Store) Strategy {
	return Strategy{Name: StrategySlug, Find: s.DocumentBySlug}
}

// ByTitlePattern turns the slug into a title glob.
func ByTitlePattern(s store.Store) Strategy {
	return Strategy{
		Name: StrategyTitlePattern,
		Find: func(ctx context.Context, slug string) (*content.Document, error) {
			return s.DocumentByTitlePattern(ctx, content.TitlePattern(slug))
		},
	}
}

// ByFeaturedSection probes featured sections keyed by the slug and
// projects a hit into a Document.
func ByFeaturedSection(s store.Store) Strategy {
	return Strategy{
		Name: StrategyFeaturedSection,
		Find: func(ctx context.Context, slug string) (*content.Document, error) {
			section, err := s.FeaturedBySectionKey(ctx, slug)
			if err != nil || section == nil {
				return nil, err
			}
			return FeaturedDocument(section), nil
		},
	}
}

// FeaturedDocument projects a featured section: every text field is the
// section title.
func FeaturedDocument(f *content.FeaturedSection) *content.Document {
	return &content.Document{
		ID:              f.ID,
		Type:            content.KindFeaturedContent,
		Slug:            f.SectionKey,
		Title:           f.Title,
		PageTitle:       f.Title,
		MetaTitle:       f.Title,
		MetaDescription: f.Title,
		TLDR:            f.Title,
		Body:            content.PlainBody(f.Title),
		PublishedAt:     f.PublishedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

// ByLocation looks the stripped slug up as a location code. An empty code
// is a miss.
func ByLocation(s store.Store) Strategy {
	return Strategy{
		Name: StrategyLocation,
		Find: func(ctx context.Context, slug string) (*content.Document, error) {
			code := LocationCode(slug)
			if code == "" {
				return nil, nil
			}
			return s.LocationContent(ctx, code)
		},
	}
}

// ByIndustry looks the stripped slug up as an industry code. An empty code
// is a miss.
func ByIndustry(s store.Store) Strategy {
	return Strategy{
		Name: StrategyIndustry,
		Find: func(ctx context.Context, slug string) (*content.Document, error) {
			code := LocationCode(slug)
			if code == "" {
				return nil, nil
			}
			return s.IndustryContent(ctx, code)
		},
	}
}

// SplitCombo splits a stripped "{location}-{industry}" slug at a known
// industry code or alias suffix. The alias is mapped to the stored code.
func SplitCombo(code string) (location, industry string, ok bool) {
	for _, sector := range content.Sectors {
		candidates := []string{sector.Code}
		if alias, found := IndustryAlias(sector.Code); found {
			candidates = append(candidates, alias)
		}
		for _, c := range candidates {
			loc, found := strings.CutSuffix(code, "-"+c)
			if found && loc != "" {
				return loc, sector.Code, true
			}
		}
	}
	return "", "", false
}

// ByCombo resolves location×industry slugs such as london-private-equity.
func ByCombo(s store.Store) Strategy {
	return Strategy{
		Name: StrategyCombo,
		Find: func(ctx context.Context, slug string) (*content.Document, error) {
			location, industry, ok := SplitCombo(LocationCode(slug))
			if !ok {
				return nil, nil
			}
			return s.ComboContent(ctx, location, industry)
		},
	}
}

// ByIndustryAlias retries the industry lookup with the singular or plural
// form of the code.
func ByIndustryAlias(s store.Store) Strategy {
	return Strategy{
		Name: StrategyIndustryAlias,
		Find: func(ctx context.Context, slug string) (*content.Document, error) {
			alias, ok := IndustryAlias(LocationCode(slug))
			if !ok {
				return nil, nil
			}
			return s.IndustryContent(ctx, alias)
		},
	}
}

// ArticleChain resolves /:slug pages.
func ArticleChain(s store.Store, m *metrics.Metrics, log logger.Logger) *Resolver {
	return New("article", []Strategy{BySlug(s), ByTitlePattern(s), ByFeaturedSection(s)}, m, log)
}

// LocationChain resolves /locations/:slug pages.
func LocationChain(s store.Store, m *metrics.Metrics, log logger.Logger) *Resolver {
	return New("location", []Strategy{ByLocation(s)}, m, log)
}

// IndustryChain resolves /industries/:slug pages.
func IndustryChain(s store.Store, m *metrics.Metrics, log logger.Logger) *Resolver {
	return New("industry", []Strategy{ByIndustry(s), ByIndustryAlias(s), ByCombo(s)}, m, log)
}
