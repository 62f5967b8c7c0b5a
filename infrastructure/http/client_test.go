package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	infrahttp "github.com/Londondannyboy/thechief-quest/infrastructure/http"
)

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	c := infrahttp.NewClient(nil)
	if c.Timeout != infrahttp.DefaultTimeout {
		t.Errorf("Timeout got = %v, want %v", c.Timeout, infrahttp.DefaultTimeout)
	}

	c = infrahttp.NewClient(&infrahttp.ClientConfig{Timeout: 3 * time.Second})
	if c.Timeout != 3*time.Second {
		t.Errorf("Timeout got = %v, want 3s", c.Timeout)
	}
}

func TestNewClient_UserAgent(t *testing.T) {
	t.Parallel()

	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.UserAgent())
	}))
	defer srv.Close()

	c := infrahttp.NewClient(&infrahttp.ClientConfig{UserAgent: "chiefctl/test"})

	resp, err := c.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL, http.NoBody)
	req.Header.Set("User-Agent", "custom")
	resp, err = c.Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	resp.Body.Close()

	want := []string{"chiefctl/test", "custom"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("User-Agent got = %v, want %v", got, want)
	}
}
