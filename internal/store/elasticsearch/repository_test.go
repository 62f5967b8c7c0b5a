package elasticsearch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/internal/content"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

// fakeES records request bodies and answers with a canned response per
// endpoint suffix.
type fakeES struct {
	mu        sync.Mutex
	bodies    map[string][]map[string]any
	responses map[string]string
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	endpoint := r.URL.Path[strings.LastIndex(r.URL.Path, "/"):]
	if strings.Contains(r.URL.Path, "/_doc/") {
		endpoint = "/_doc"
	}

	raw, _ := io.ReadAll(r.Body)
	if len(raw) > 0 {
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err == nil {
			f.mu.Lock()
			f.bodies[endpoint] = append(f.bodies[endpoint], body)
			f.mu.Unlock()
		}
	}

	resp, ok := f.responses[endpoint]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"not found"}`)
		return
	}
	_, _ = io.WriteString(w, resp)
}

func (f *fakeES) lastBody(t *testing.T, endpoint string) map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.bodies[endpoint], "no request to %s", endpoint)
	return f.bodies[endpoint][len(f.bodies[endpoint])-1]
}

func newTestRepository(t *testing.T, responses map[string]string) (*Repository, *fakeES) {
	t.Helper()

	fake := &fakeES{bodies: map[string][]map[string]any{}, responses: responses}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := es.NewClient(es.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewRepository(client, "thechief_content", logger.NewNop()), fake
}

func hits(payloads ...string) string {
	parts := make([]string, len(payloads))
	for i, p := range payloads {
		parts[i] = `{"_source":` + p + `}`
	}
	return `{"hits":{"total":{"value":` + strconv.Itoa(len(payloads)) + `},"hits":[` + strings.Join(parts, ",") + `]}}`
}

func TestRepository_DocumentByTitlePattern(t *testing.T) {
	t.Parallel()

	repo, fake := newTestRepository(t, map[string]string{
		"/_search": hits(`{"doc_type":"chiefOfStaff","id":"d1","slug":"cos-salary-uk","payload":{"_id":"d1","_type":"chiefOfStaff","slug":"cos-salary-uk","title":"Chief of Staff Salary UK","content":"Pay"}}`),
	})

	doc, err := repo.DocumentByTitlePattern(context.Background(), "*Salary*")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "cos-salary-uk", doc.Slug)
	assert.Equal(t, "Pay", doc.Body.Text())

	body := fake.lastBody(t, "/_search")
	assert.InDelta(t, 1, body["size"], 0)

	encoded, err := json.Marshal(body["query"])
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"case_insensitive":true`)
	assert.Contains(t, string(encoded), `"meta_title"`)
	assert.Contains(t, string(encoded), `"minimum_should_match":1`)

	sort, err := json.Marshal(body["sort"])
	require.NoError(t, err)
	assert.Contains(t, string(sort), `"slug"`)
}

func TestRepository_LookupMissReturnsNil(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t, map[string]string{"/_search": hits()})

	doc, err := repo.LocationContent(context.Background(), "atlantis")
	require.NoError(t, err)
	assert.Nil(t, doc)

	agency, err := repo.AgencyBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, agency)

	avg, err := repo.UKAverageSalary(context.Background())
	require.NoError(t, err)
	assert.True(t, avg.IsZero())
}

func TestRepository_LocationContentExcludesIndustry(t *testing.T) {
	t.Parallel()

	repo, fake := newTestRepository(t, map[string]string{"/_search": hits()})

	_, err := repo.LocationContent(context.Background(), "london")
	require.NoError(t, err)

	encoded, err := json.Marshal(fake.lastBody(t, "/_search")["query"])
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"must_not":[{"exists":{"field":"industry"}}]`)
	assert.Contains(t, string(encoded), `{"term":{"location":"london"}}`)
}

func TestRepository_FeaturedIgnoresActiveFlag(t *testing.T) {
	t.Parallel()

	repo, fake := newTestRepository(t, map[string]string{
		"/_search": hits(`{"doc_type":"featuredContent","id":"f1","slug":"homepage-hero","payload":{"_id":"f1","title":"Homepage Hero","sectionKey":"homepage-hero","isActive":false}}`),
	})

	section, err := repo.FeaturedBySectionKey(context.Background(), "homepage-hero")
	require.NoError(t, err)
	require.NotNil(t, section)
	assert.Equal(t, "Homepage Hero", section.Title)

	encoded, err := json.Marshal(fake.lastBody(t, "/_search")["query"])
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `{"term":{"slug":"homepage-hero"}}`)
	assert.NotContains(t, string(encoded), "is_active")
}

func TestRepository_ActiveJobsLimit(t *testing.T) {
	t.Parallel()

	repo, fake := newTestRepository(t, map[string]string{
		"/_search": hits(`{"doc_type":"jobListing","id":"j1","slug":"cos-acme","payload":{"_id":"j1","slug":"cos-acme","title":"CoS","company":"Acme","isActive":true}}`),
	})

	jobs, err := repo.ActiveJobs(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme", jobs[0].Company.Name)
	assert.InDelta(t, 10, fake.lastBody(t, "/_search")["size"], 0)
}

func TestRepository_Count(t *testing.T) {
	t.Parallel()

	repo, fake := newTestRepository(t, map[string]string{"/_count": `{"count":7}`})

	n, err := repo.Count(context.Background(), store.CountAgencies)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	encoded, err := json.Marshal(fake.lastBody(t, "/_count")["query"])
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"recruitmentAgency"`)

	_, err = repo.Count(context.Background(), store.CountQuery("bogus"))
	require.Error(t, err)
}

func TestRepository_SearchErrorSurfaces(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t, map[string]string{})

	_, err := repo.DocumentBySlug(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search returned error [404]")
}

func TestRepository_CreateIndexesFlatFields(t *testing.T) {
	t.Parallel()

	repo, fake := newTestRepository(t, map[string]string{"/_doc": `{"result":"created"}`})

	err := repo.Create(context.Background(), &content.Agency{Slug: "acme", Name: "Acme", Rating: 4.5})
	require.NoError(t, err)

	body := fake.lastBody(t, "/_doc")
	assert.Equal(t, "recruitmentAgency", body["doc_type"])
	assert.Equal(t, "acme", body["slug"])
	assert.Equal(t, "Acme", body["name"])
	assert.NotEmpty(t, body["id"])

	payload, ok := body["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, body["id"], payload["_id"])
	assert.NotEmpty(t, payload["_updatedAt"])
}

func TestRepository_CreateRejectsUnknownRecord(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t, map[string]string{})
	err := repo.Create(context.Background(), unknownRecord{})
	require.ErrorIs(t, err, store.ErrUnsupportedRecord)
}

type unknownRecord struct{}

func (unknownRecord) RecordKind() content.Kind { return "mystery" }
func (unknownRecord) RecordSlug() string       { return "m" }
func (unknownRecord) RecordID() string         { return "" }

func TestRepository_AllDocumentsDecodesByType(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t, map[string]string{
		"/_search": hits(
			`{"doc_type":"faqContent","id":"f1","slug":"what","payload":{"_id":"f1","slug":"what","question":"What?"}}`,
			`{"doc_type":"author","id":"a1","slug":"ana","payload":{"_id":"a1","slug":"ana","name":"Ana"}}`,
		),
	})

	recs, err := repo.AllDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, content.KindFAQ, recs[0].RecordKind())
	assert.Equal(t, content.KindAuthor, recs[1].RecordKind())
}

func TestRepository_Exists(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t, map[string]string{"/_count": `{"count":0}`})

	ok, err := repo.Exists(context.Background(), content.KindFAQ, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}
