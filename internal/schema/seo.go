package schema

import (
	"strings"

	"github.com/Londondannyboy/thechief-quest/internal/content"
)

// Word-count thresholds for the length component of the score.
const (
	MinWords  = 300
	GoodWords = 1000
)

// SEOReport is the on-page checklist for one article and keyword.
type SEOReport struct {
	Score               int  `json:"score"`
	HasKeywordInTitle   bool `json:"hasKeywordInTitle"`
	HasKeywordInH1      bool `json:"hasKeywordInH1"`
	HasKeywordInContent bool `json:"hasKeywordInContent"`
	HasBoldKeyword      bool `json:"hasBoldKeyword"`
	HasInternalLinks    bool `json:"hasInternalLinks"`
	WordCount           int  `json:"wordCount"`
}

// SEOScore scores doc against keyword. Keyword matching is case-insensitive.
// The title is the meta title when set, the H1 is the page title, each
// falling back to Title. Weights: title 20, H1 20, body 20, bold 10,
// internal links 10, length up to 20.
func SEOScore(doc *content.Document, keyword string) SEOReport {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	text := doc.Body.Text()

	r := SEOReport{
		HasKeywordInTitle:   containsFold(firstNonEmpty(doc.MetaTitle, doc.Title), kw),
		HasKeywordInH1:      containsFold(firstNonEmpty(doc.PageTitle, doc.Title), kw),
		HasKeywordInContent: containsFold(text, kw),
		HasBoldKeyword:      hasBold(doc.Body, kw),
		HasInternalLinks:    hasInternalLinks(doc.Body),
		WordCount:           len(strings.Fields(text)),
	}

	for _, c := range []struct {
		ok     bool
		points int
	}{
		{r.HasKeywordInTitle, 20},
		{r.HasKeywordInH1, 20},
		{r.HasKeywordInContent, 20},
		{r.HasBoldKeyword, 10},
		{r.HasInternalLinks, 10},
		{r.WordCount >= GoodWords, 20},
		{r.WordCount >= MinWords && r.WordCount < GoodWords, 10},
	} {
		if c.ok {
			r.Score += c.points
		}
	}
	return r
}

func containsFold(s, kw string) bool {
	return kw != "" && strings.Contains(strings.ToLower(s), kw)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// hasBold looks for a strong span containing the keyword. Plain bodies use
// **markdown** emphasis.
func hasBold(b content.Body, kw string) bool {
	if kw == "" {
		return false
	}
	if !b.IsBlocks() {
		rest := b.Plain
		for {
			_, after, ok := strings.Cut(rest, "**")
			if !ok {
				return false
			}
			inner, tail, closed := strings.Cut(after, "**")
			if !closed {
				return false
			}
			if containsFold(inner, kw) {
				return true
			}
			rest = tail
		}
	}
	for _, block := range b.Blocks {
		for _, span := range block.Children {
			for _, mark := range span.Marks {
				if mark == "strong" && containsFold(span.Text, kw) {
					return true
				}
			}
		}
	}
	return false
}

// hasInternalLinks reports an internalLink annotation or a site-relative
// href. Plain bodies count markdown links to "/".
func hasInternalLinks(b content.Body) bool {
	if !b.IsBlocks() {
		return strings.Contains(b.Plain, "](/")
	}
	for _, block := range b.Blocks {
		for _, def := range block.MarkDefs {
			if def.Type == "internalLink" || strings.HasPrefix(def.Href, "/") {
				return true
			}
		}
	}
	return false
}
