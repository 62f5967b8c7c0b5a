package elasticsearch

import "github.com/Londondannyboy/thechief-quest/internal/content"

// Query bodies are plain maps, the same shape the REST API documents.

func term(field string, value any) map[string]any {
	return map[string]any{"term": map[string]any{field: value}}
}

func exists(field string) map[string]any {
	return map[string]any{"exists": map[string]any{"field": field}}
}

func ofType(kind content.Kind) map[string]any {
	return term(fieldDocType, string(kind))
}

// filtered builds a bool query of non-scoring filters plus must_not clauses.
func filtered(filters []any, mustNot []any) map[string]any {
	b := map[string]any{"filter": filters}
	if len(mustNot) > 0 {
		b["must_not"] = mustNot
	}
	return map[string]any{"bool": b}
}

// titlePatternQuery matches the glob against meta_title, page_title or
// title, ignoring case.
func titlePatternQuery(pattern string) map[string]any {
	should := make([]any, 0, 3)
	for _, field := range []string{fieldMetaTitle, fieldPageTitle, fieldTitle} {
		should = append(should, map[string]any{
			"wildcard": map[string]any{
				field: map[string]any{"value": pattern, "case_insensitive": true},
			},
		})
	}
	return map[string]any{
		"bool": map[string]any{
			"filter":               []any{ofType(content.KindChiefOfStaff)},
			"should":               should,
			"minimum_should_match": 1,
		},
	}
}

func sortBy(pairs ...string) []any {
	out := make([]any, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, map[string]any{pairs[i]: map[string]any{"order": pairs[i+1], "unmapped_type": "keyword"}})
	}
	return out
}

// tieBreak orders multiple matches by slug, then id.
var tieBreak = sortBy(fieldSlug, "asc", fieldID, "asc")
