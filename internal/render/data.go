package render

import (
	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/fallback"
	"github.com/Londondannyboy/thechief-quest/internal/stats"
)

// Page data for the listing pages. Detail pages render the fallback views
// or content records directly.

type HomeData struct {
	Stats            []stats.Tile
	PopularLocations []fallback.PopularLocation
	Industries       []fallback.IndustryCard
}

type LocationsData struct {
	Regions []fallback.RegionGroup
}

type IndustriesData struct {
	Industries []fallback.IndustryCard
}

type AgenciesData struct {
	Agencies []content.Agency
}

type FAQData struct {
	Groups []fallback.FAQGroup
}

// JobsData renders the board, or the "coming soon" panel with Featured
// locations when Jobs is empty.
type JobsData struct {
	Jobs     []content.Job
	Featured []fallback.FeaturedLocation
}

type SalaryGuideData struct {
	UKAverage  string
	Regions    []fallback.RegionGroup
	Industries []fallback.IndustryCard
}
