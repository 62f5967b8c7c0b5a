package stats

import (
	"github.com/dustin/go-humanize"

	"github.com/Londondannyboy/thechief-quest/internal/fallback"
)

// Tile is one home page figure.
type Tile struct {
	Value string
	Label string
}

const visitorsFigure = "50K+"

// StaticTiles are the marketing figures shown before any snapshot exists.
var StaticTiles = []Tile{
	{Value: "20+", Label: "Cities Covered"},
	{Value: "500+", Label: "Active Jobs"},
	{Value: "£120K", Label: "Average Salary"},
	{Value: visitorsFigure, Label: "Monthly Visitors"},
}

// Tiles renders a snapshot for the home page. Zero counts fall back to the
// static figure for that tile.
func Tiles(s *Stats) []Tile {
	if s == nil {
		return StaticTiles
	}

	avg := StaticTiles[2].Value
	if v, ok := s.AvgSalaryUK.Float(); ok && v > 0 {
		avg = fallback.FormatSalaryShort(v, "GBP")
	} else if s.AvgSalaryUK.IsText() {
		avg = s.AvgSalaryUK.Text
	}

	return []Tile{
		{Value: countOr(s.TotalLocations, StaticTiles[0].Value), Label: StaticTiles[0].Label},
		{Value: countOr(s.TotalJobs, StaticTiles[1].Value), Label: StaticTiles[1].Label},
		{Value: avg, Label: StaticTiles[2].Label},
		{Value: visitorsFigure, Label: StaticTiles[3].Label},
	}
}

func countOr(n int, def string) string {
	if n <= 0 {
		return def
	}
	return humanize.Comma(int64(n))
}
