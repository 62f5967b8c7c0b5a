package elasticsearch

import (
	"time"

	"github.com/Londondannyboy/thechief-quest/infrastructure/retry"
)

// Config holds Elasticsearch connection settings. Only one auth method is
// used: API key first, then basic auth.
type Config struct {
	URL         string        `env:"ELASTICSEARCH_URL"      yaml:"url"`
	Username    string        `env:"ELASTICSEARCH_USERNAME" yaml:"username"`
	Password    string        `env:"ELASTICSEARCH_PASSWORD" yaml:"password"`
	APIKey      string        `env:"ELASTICSEARCH_API_KEY"  yaml:"api_key"`
	Index       string        `env:"ELASTICSEARCH_INDEX"    yaml:"index"`
	Timeout     time.Duration `env:"ELASTICSEARCH_TIMEOUT"  yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
	PingTimeout time.Duration `yaml:"ping_timeout"`

	// Retry governs connection verification at startup.
	Retry retry.Config `yaml:"-"`
}

const (
	defaultURL         = "http://localhost:9200"
	defaultIndex       = "thechief_content"
	defaultTimeout     = 10 * time.Second
	defaultMaxRetries  = 3
	defaultPingTimeout = 5 * time.Second
)

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.URL == "" {
		c.URL = defaultURL
	}
	if c.Index == "" {
		c.Index = defaultIndex
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.PingTimeout == 0 {
		c.PingTimeout = defaultPingTimeout
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry = retry.Config{
			MaxAttempts:  5,
			InitialDelay: 2 * time.Second,
			MaxDelay:     10 * time.Second,
			Multiplier:   2.0,
		}
	}
}
