package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Body is a document body stored either as one plain string or as
// portable-text blocks.
type Body struct {
	Plain  string
	Blocks []Block
}

// Block is one portable-text block. Only blocks of type "block" carry text.
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
}

// Span is an inline run of text.
type Span struct {
	Type  string   `json:"_type"`
	Key   string   `json:"_key,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef is an annotation referenced by span marks (links).
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// PlainBody wraps a string body.
func PlainBody(s string) Body {
	return Body{Plain: s}
}

// TextBlocks builds a portable-text body with one normal block per paragraph.
func TextBlocks(paragraphs ...string) Body {
	blocks := make([]Block, 0, len(paragraphs))
	for i, p := range paragraphs {
		blocks = append(blocks, Block{
			Type:     "block",
			Key:      fmt.Sprintf("block%d", i+1),
			Style:    "normal",
			Children: []Span{{Type: "span", Key: fmt.Sprintf("span%d", i+1), Text: p}},
			MarkDefs: []MarkDef{},
		})
	}
	return Body{Blocks: blocks}
}

// IsZero reports an absent body.
func (b Body) IsZero() bool {
	return b.Plain == "" && b.Blocks == nil
}

// IsBlocks reports whether the body came as portable text.
func (b Body) IsBlocks() bool {
	return b.Blocks != nil
}

// Text normalizes the body to one string: a "block" contributes its spans
// joined with "", any other block type contributes "", and blocks are
// joined with a blank line.
func (b Body) Text() string {
	if b.Blocks == nil {
		return b.Plain
	}
	parts := make([]string, len(b.Blocks))
	for i, block := range b.Blocks {
		if block.Type != "block" {
			continue
		}
		var sb strings.Builder
		for _, span := range block.Children {
			sb.WriteString(span.Text)
		}
		parts[i] = sb.String()
	}
	return strings.Join(parts, "\n\n")
}

func (b Body) MarshalJSON() ([]byte, error) {
	if b.Blocks != nil {
		return json.Marshal(b.Blocks)
	}
	return json.Marshal(b.Plain)
}

func (b *Body) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*b = Body{}
		return nil
	case len(data) > 0 && data[0] == '[':
		var blocks []Block
		if err := json.Unmarshal(data, &blocks); err != nil {
			return fmt.Errorf("decode portable text: %w", err)
		}
		if blocks == nil {
			blocks = []Block{}
		}
		*b = Body{Blocks: blocks}
		return nil
	default:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode body: %w", err)
		}
		*b = Body{Plain: s}
		return nil
	}
}
