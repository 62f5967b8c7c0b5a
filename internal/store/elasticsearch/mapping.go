package elasticsearch

const (
	fieldDocType    = "doc_type"
	fieldID         = "id"
	fieldSlug       = "slug"
	fieldTitle      = "title"
	fieldPageTitle  = "page_title"
	fieldMetaTitle  = "meta_title"
	fieldLocation   = "location"
	fieldIndustry   = "industry"
	fieldRegion     = "region"
	fieldName       = "name"
	fieldQuestion   = "question"
	fieldRating     = "rating"
	fieldHelpful    = "helpful"
	fieldIsActive   = "is_active"
	fieldPostedDate = "posted_date"
)

// indexMapping stores filterable fields flat and the full record, as the
// content API returns it, in a non-indexed payload object.
var indexMapping = map[string]any{
	"mappings": map[string]any{
		"dynamic": "strict",
		"properties": map[string]any{
			fieldDocType:    map[string]any{"type": "keyword"},
			fieldID:         map[string]any{"type": "keyword"},
			fieldSlug:       map[string]any{"type": "keyword"},
			fieldTitle:      map[string]any{"type": "keyword"},
			fieldPageTitle:  map[string]any{"type": "keyword"},
			fieldMetaTitle:  map[string]any{"type": "keyword"},
			fieldLocation:   map[string]any{"type": "keyword"},
			fieldIndustry:   map[string]any{"type": "keyword"},
			fieldRegion:     map[string]any{"type": "keyword"},
			fieldName:       map[string]any{"type": "keyword"},
			fieldQuestion:   map[string]any{"type": "keyword"},
			fieldRating:     map[string]any{"type": "float"},
			fieldHelpful:    map[string]any{"type": "integer"},
			fieldIsActive:   map[string]any{"type": "boolean"},
			fieldPostedDate: map[string]any{"type": "date"},
			"updated_at":    map[string]any{"type": "date"},
			"payload":       map[string]any{"type": "object", "enabled": false},
		},
	},
}
