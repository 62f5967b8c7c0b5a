// Package sanity is the Sanity content lake backend: a small GROQ HTTP
// client and a repository implementing the store interfaces on top of it.
package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Londondannyboy/thechief-quest/infrastructure/circuitbreaker"
	infraerrors "github.com/Londondannyboy/thechief-quest/infrastructure/errors"
	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/infrastructure/retry"
)

const (
	defaultAPIVersion = "2024-01-01"
	defaultDataset    = "production"
	defaultTimeout    = 10 * time.Second
)

// ErrMissingProjectID is returned when no project is configured.
var ErrMissingProjectID = errors.New("sanity project_id is required")

// Config holds the Sanity project settings.
type Config struct {
	ProjectID  string        `env:"SANITY_PROJECT_ID"  yaml:"project_id"`
	Dataset    string        `env:"SANITY_DATASET"     yaml:"dataset"`
	APIVersion string        `env:"SANITY_API_VERSION" yaml:"api_version"`
	Token      string        `env:"SANITY_API_TOKEN"   yaml:"token"`
	UseCDN     bool          `env:"SANITY_USE_CDN"     yaml:"use_cdn"`
	Timeout    time.Duration `env:"SANITY_TIMEOUT"     yaml:"timeout"`

	// BaseURL overrides the project API host; tests point it at httptest.
	BaseURL string `yaml:"-"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Dataset == "" {
		c.Dataset = defaultDataset
	}
	if c.APIVersion == "" {
		c.APIVersion = defaultAPIVersion
	}
	c.APIVersion = strings.TrimPrefix(c.APIVersion, "v")
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
}

// Client talks to the Sanity HTTP API. Queries run through a circuit
// breaker so an outage fails fast into the page fallbacks.
type Client struct {
	cfg        Config
	httpClient *http.Client
	breaker    *circuitbreaker.Breaker
	retry      retry.Config
	log        logger.Logger
	queryHost  string
	apiHost    string
}

// NewClient builds a client. httpClient comes from infrastructure/http.
func NewClient(cfg Config, httpClient *http.Client, log logger.Logger) (*Client, error) {
	cfg.SetDefaults()
	if cfg.ProjectID == "" && cfg.BaseURL == "" {
		return nil, ErrMissingProjectID
	}
	if log == nil {
		log = logger.NewNop()
	}

	apiHost := cfg.BaseURL
	queryHost := cfg.BaseURL
	if apiHost == "" {
		apiHost = fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
		queryHost = apiHost
		if cfg.UseCDN && cfg.Token == "" {
			queryHost = fmt.Sprintf("https://%s.apicdn.sanity.io", cfg.ProjectID)
		}
	}

	c := &Client{
		cfg:        cfg,
		httpClient: httpClient,
		log:        log,
		apiHost:    strings.TrimRight(apiHost, "/"),
		queryHost:  strings.TrimRight(queryHost, "/"),
		retry: retry.Config{
			MaxAttempts:  3,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			IsRetryable:  isTransient,
		},
	}
	c.breaker = circuitbreaker.New(circuitbreaker.Config{
		OnStateChange: func(from, to circuitbreaker.State) {
			log.Warn("Sanity circuit breaker state changed",
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	}, isTransient)
	return c, nil
}

// isTransient is true for 429/5xx answers and network failures.
func isTransient(err error) bool {
	if infraerrors.IsRetryable(err) {
		return true
	}
	if _, isHTTP := infraerrors.StatusCode(err); isHTTP {
		return false
	}
	return retry.DefaultIsRetryable(err)
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	MS     int             `json:"ms"`
}

// Fetch runs a GROQ query and decodes its result into out. Each params
// entry is sent as a $name query parameter holding its JSON encoding. A
// null result leaves pointer targets nil.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]any, out any) error {
	values := url.Values{}
	values.Set("query", query)
	for name, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}
	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s", c.queryHost, c.cfg.APIVersion, c.cfg.Dataset, values.Encode())

	var resp queryResponse
	err := c.breaker.Execute(func() error {
		return retry.Do(ctx, c.retry, func() error {
			return c.do(ctx, http.MethodGet, endpoint, nil, &resp)
		})
	})
	if err != nil {
		return fmt.Errorf("sanity query: %w", err)
	}

	c.log.Debug("Sanity query completed", logger.Int("server_ms", resp.MS))

	if len(resp.Result) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("decode sanity result: %w", err)
	}
	return nil
}

// Mutation is one entry of a mutate request, e.g. {"create": {...}}.
type Mutation map[string]any

// Mutate applies mutations in one transaction. It needs a write token.
func (c *Client) Mutate(ctx context.Context, mutations ...Mutation) error {
	if c.cfg.Token == "" {
		return errors.New("sanity mutate: api token is required")
	}

	body, err := json.Marshal(map[string]any{"mutations": mutations})
	if err != nil {
		return fmt.Errorf("encode mutations: %w", err)
	}
	endpoint := fmt.Sprintf("%s/v%s/data/mutate/%s", c.apiHost, c.cfg.APIVersion, c.cfg.Dataset)

	if err = c.do(ctx, http.MethodPost, endpoint, body, nil); err != nil {
		return fmt.Errorf("sanity mutate: %w", err)
	}
	return nil
}

// Ping runs a trivial query.
func (c *Client) Ping(ctx context.Context) error {
	var n int
	return c.Fetch(ctx, `count(*[_type == "author"][0...1])`, nil, &n)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if httpErr := infraerrors.ParseHTTPError(resp); httpErr != nil {
		return httpErr
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
