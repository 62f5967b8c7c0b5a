package render

import (
	"strings"

	"github.com/Londondannyboy/thechief-quest/internal/content"
)

// BlockKind is the kind of a parsed body unit.
type BlockKind string

const (
	BlockHeading2  BlockKind = "h2"
	BlockHeading3  BlockKind = "h3"
	BlockList      BlockKind = "list"
	BlockParagraph BlockKind = "p"
)

// Block is one rendered unit of a body. Items is set for lists only.
type Block struct {
	Kind  BlockKind
	Text  string
	Items []string
}

const (
	markerH3     = "### "
	markerH2     = "## "
	markerItem   = "- "
	escapeMarker = `\`
)

// ParseBody splits normalized body text on blank lines and classifies each
// unit:
//
//	unit := escaped | heading3 | heading2 | list | paragraph
//
// A unit starting with a backslash is a paragraph with the backslash
// removed. Headings strip one marker. A list keeps only its "- " lines.
// Empty units are dropped.
func ParseBody(text string) []Block {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var blocks []Block
	for _, unit := range strings.Split(text, "\n\n") {
		unit = strings.TrimSpace(unit)
		if unit == "" {
			continue
		}
		blocks = append(blocks, parseUnit(unit))
	}
	return blocks
}

func parseUnit(unit string) Block {
	switch {
	case strings.HasPrefix(unit, escapeMarker):
		return Block{Kind: BlockParagraph, Text: strings.TrimPrefix(unit, escapeMarker)}
	case strings.HasPrefix(unit, markerH3):
		return Block{Kind: BlockHeading3, Text: strings.TrimSpace(strings.TrimPrefix(unit, markerH3))}
	case strings.HasPrefix(unit, markerH2):
		return Block{Kind: BlockHeading2, Text: strings.TrimSpace(strings.TrimPrefix(unit, markerH2))}
	case strings.HasPrefix(unit, markerItem):
		var items []string
		for _, line := range strings.Split(unit, "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, markerItem) {
				items = append(items, strings.TrimPrefix(line, markerItem))
			}
		}
		return Block{Kind: BlockList, Items: items}
	default:
		return Block{Kind: BlockParagraph, Text: unit}
	}
}

// BodyBlocks normalizes and parses a document body.
func BodyBlocks(b content.Body) []Block {
	return ParseBody(b.Text())
}
