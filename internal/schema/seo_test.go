package schema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/schema"
)

func TestSEOScore_PortableText(t *testing.T) {
	t.Parallel()

	body := content.TextBlocks(strings.Repeat("word ", 1000), "Why hire a chief of staff?")
	body.Blocks[1].Children[0].Marks = []string{"strong"}
	body.Blocks[1].MarkDefs = []content.MarkDef{{Key: "l1", Type: "internalLink"}}

	doc := &content.Document{
		Title:     "Hiring guide",
		MetaTitle: "Chief of Staff Hiring Guide | TheChief.quest",
		PageTitle: "How to Hire a Chief of Staff",
		Body:      body,
	}

	got := schema.SEOScore(doc, "Chief of Staff")
	assert.Equal(t, schema.SEOReport{
		Score:               100,
		HasKeywordInTitle:   true,
		HasKeywordInH1:      true,
		HasKeywordInContent: true,
		HasBoldKeyword:      true,
		HasInternalLinks:    true,
		WordCount:           1006,
	}, got)
}

func TestSEOScore_Plain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  content.Document
		want int
	}{
		{
			name: "nothing",
			doc:  content.Document{Title: "Salaries", Body: content.PlainBody("short")},
			want: 0,
		},
		{
			name: "title falls back and body mentions keyword",
			doc:  content.Document{Title: "Chief of Staff salaries", Body: content.PlainBody("A chief of staff earns well.")},
			want: 60,
		},
		{
			name: "markdown bold and link with medium length",
			doc: content.Document{
				Body: content.PlainBody("**Chief of staff** roles. See [london](/chief-of-staff-london). " + strings.Repeat("w ", 300)),
			},
			want: 20 + 10 + 10 + 10,
		},
		{
			name: "unclosed bold does not count",
			doc:  content.Document{Body: content.PlainBody("**chief of staff")},
			want: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := schema.SEOScore(&tt.doc, "chief of staff")
			assert.Equal(t, tt.want, got.Score)
		})
	}
}

func TestSEOScore_EmptyKeyword(t *testing.T) {
	t.Parallel()

	doc := &content.Document{Title: "Anything", Body: content.PlainBody("text")}
	got := schema.SEOScore(doc, "  ")
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, 1, got.WordCount)
}
