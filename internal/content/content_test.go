package content_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Londondannyboy/thechief-quest/internal/content"
)

func TestBody_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain string", raw: `"## Heading\n\nText"`, want: "## Heading\n\nText"},
		{
			name: "blocks joined by blank line",
			raw: `[{"_type":"block","children":[{"_type":"span","text":"Hello "},{"_type":"span","text":"world"}]},
			       {"_type":"block","children":[{"_type":"span","text":"Second"}]}]`,
			want: "Hello world\n\nSecond",
		},
		{
			name: "non-text block contributes empty string",
			raw:  `[{"_type":"block","children":[{"_type":"span","text":"A"}]},{"_type":"image"},{"_type":"block","children":[{"_type":"span","text":"B"}]}]`,
			want: "A\n\n\n\nB",
		},
		{name: "null", raw: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var b content.Body
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &b))
			if got := b.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocument_DecodesStoreShape(t *testing.T) {
	t.Parallel()

	raw := `{
		"_id": "abc",
		"_type": "chiefOfStaff",
		"slug": "chief-of-staff-london",
		"location": "london",
		"content": [{"_type":"block","children":[{"_type":"span","text":"London is a key market."}]}],
		"publishedAt": "2025-03-01T09:00:00Z",
		"_updatedAt": "2025-03-02",
		"salaryData": {"average": "£150K", "jobCount": 234}
	}`

	var doc content.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.True(t, doc.IsLocationFacet())
	assert.False(t, doc.IsIndustryFacet())
	assert.Equal(t, "London is a key market.", doc.Body.Text())
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), doc.UpdatedAt.Time)
	require.NotNil(t, doc.SalaryData)
	assert.True(t, doc.SalaryData.Average.IsText())
	assert.Equal(t, "£150K", doc.SalaryData.Average.Text)
}

func TestMoney(t *testing.T) {
	t.Parallel()

	var m content.Money
	require.NoError(t, json.Unmarshal([]byte(`150000`), &m))
	v, ok := m.Float()
	assert.True(t, ok)
	assert.InDelta(t, 150000.0, v, 0.001)

	require.NoError(t, json.Unmarshal([]byte(`"120,000"`), &m))
	v, ok = m.Float()
	assert.True(t, ok)
	assert.InDelta(t, 120000.0, v, 0.001)

	require.NoError(t, json.Unmarshal([]byte(`"£150K"`), &m))
	_, ok = m.Float()
	assert.False(t, ok)

	out, err := json.Marshal(content.SalaryData{})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "average")
}

func TestLenientObjects(t *testing.T) {
	t.Parallel()

	var job content.Job
	require.NoError(t, json.Unmarshal([]byte(`{"company":"Acme","location":{"city":"London","remote":"hybrid"}}`), &job))
	assert.Equal(t, "Acme", job.Company.Name)
	assert.Equal(t, "London", job.Location.City)

	var agency content.Agency
	require.NoError(t, json.Unmarshal([]byte(`{"locations":["London",{"city":"Dubai","email":"d@example.com"}]}`), &agency))
	require.Len(t, agency.Locations, 2)
	assert.Equal(t, "Dubai", agency.Locations[1].City)
}

func TestTitlePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		slug string
		want string
	}{
		{slug: "chief-of-staff-salary", want: "*chief*of*staff*salary*"},
		{slug: "Remote-Work", want: "*remote*work*"},
		{slug: "", want: "**"},
	}

	for _, tt := range tests {
		if got := content.TitlePattern(tt.slug); got != tt.want {
			t.Errorf("TitlePattern(%q) = %q, want %q", tt.slug, got, tt.want)
		}
	}
}

func TestMatchPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		s       string
		want    bool
	}{
		{pattern: "*chief*of*staff*salary*", s: "Chief of Staff Salary Guide 2025", want: true},
		{pattern: "*chief*of*staff*salary*", s: "Salary of a Chief of Staff", want: false},
		{pattern: "*london*", s: "Chief of Staff Jobs in LONDON", want: true},
		{pattern: "exact", s: "exact", want: true},
		{pattern: "exact", s: "exactly", want: false},
		{pattern: "**", s: "", want: true},
	}

	for _, tt := range tests {
		if got := content.MatchPattern(tt.pattern, tt.s); got != tt.want {
			t.Errorf("MatchPattern(%q, %q) = %v, want %v", tt.pattern, tt.s, got, tt.want)
		}
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	assert.Len(t, content.Cities, 20)
	city, ok := content.CityByCode("luxembourg")
	require.True(t, ok)
	assert.Equal(t, "Luxembourg City", city.Name)
	assert.Equal(t, "EUR", city.Currency)
	assert.Len(t, content.SectorCodes(), 6)
	assert.True(t, content.KindFAQ.Valid())
	assert.False(t, content.Kind("page").Valid())
}
