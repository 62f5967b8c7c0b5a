// Package cache keeps rendered pages in Redis for a revalidation window so
// repeat views skip the content store.
package cache

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/internal/metrics"
)

const (
	// KeyPrefix namespaces page entries.
	KeyPrefix = "thechief:page:"
	// DefaultTTL matches the pages' revalidate interval.
	DefaultTTL = time.Hour
	// Header reports HIT or MISS.
	Header = "X-Cache"

	fieldContentType = "content_type"
	fieldBody        = "body"
	fieldHeader      = "header:"
	scanBatch        = 100
)

// Cache lookup results, also used as metric labels.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// bypassPrefixes are never cached.
var bypassPrefixes = []string{"/health", "/metrics"}

// replayHeaders are stored with a page and set again on a hit.
var replayHeaders = []string{"Cache-Control", "Content-Language", "Last-Modified"}

// PageCache stores 200 responses keyed by request path.
type PageCache struct {
	client  *redis.Client
	ttl     time.Duration
	log     logger.Logger
	metrics *metrics.Metrics
}

// New returns a PageCache. A ttl <= 0 uses DefaultTTL.
func New(client *redis.Client, ttl time.Duration, m *metrics.Metrics, log logger.Logger) *PageCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &PageCache{client: client, ttl: ttl, log: log, metrics: m}
}

// Key returns the Redis key for path.
func Key(path string) string {
	return KeyPrefix + path
}

// Page is a cached response. Header holds the replayed response headers.
type Page struct {
	ContentType string
	Header      http.Header
	Body        []byte
}

// Get returns the cached page for path, or (nil, nil) on a miss.
func (p *PageCache) Get(ctx context.Context, path string) (*Page, error) {
	vals, err := p.client.HGetAll(ctx, Key(path)).Result()
	if err != nil {
		return nil, fmt.Errorf("get page %s: %w", path, err)
	}
	body, ok := vals[fieldBody]
	if !ok {
		return nil, nil
	}
	page := &Page{ContentType: vals[fieldContentType], Body: []byte(body)}
	for field, v := range vals {
		if name, ok := strings.CutPrefix(field, fieldHeader); ok {
			if page.Header == nil {
				page.Header = http.Header{}
			}
			page.Header.Set(name, v)
		}
	}
	return page, nil
}

// Set stores page under path with the cache TTL.
func (p *PageCache) Set(ctx context.Context, path string, page Page) error {
	key := Key(path)
	values := []any{fieldContentType, page.ContentType, fieldBody, page.Body}
	for _, name := range replayHeaders {
		if v := page.Header.Get(name); v != "" {
			values = append(values, fieldHeader+name, v)
		}
	}
	_, err := p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, values...)
		pipe.Expire(ctx, key, p.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("set page %s: %w", path, err)
	}
	return nil
}

// Delete drops one path.
func (p *PageCache) Delete(ctx context.Context, path string) error {
	if err := p.client.Del(ctx, Key(path)).Err(); err != nil {
		return fmt.Errorf("delete page %s: %w", path, err)
	}
	return nil
}

// Purge deletes every cached page and returns how many keys went.
func (p *PageCache) Purge(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := p.client.Scan(ctx, cursor, KeyPrefix+"*", scanBatch).Result()
		if err != nil {
			return deleted, fmt.Errorf("scan pages: %w", err)
		}
		if len(keys) > 0 {
			n, err := p.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("delete pages: %w", err)
			}
			deleted += int(n)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	p.log.Info("Page cache purged", logger.Int("deleted", deleted))
	return deleted, nil
}

// Ping checks the Redis connection for health reporting.
func (p *PageCache) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close releases the Redis connection pool.
func (p *PageCache) Close() error {
	return p.client.Close()
}

// Middleware serves cached GET pages and stores fresh 200 responses. Redis
// failures are logged and the request is served uncached.
func (p *PageCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || bypass(path) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		page, err := p.Get(ctx, path)
		switch {
		case err != nil:
			p.metrics.PageCache(ResultError)
			logger.FromContextOr(ctx, p.log).Warn("Page cache unavailable", logger.Path(path), logger.Error(err))
			c.Next()
			return
		case page != nil:
			p.metrics.PageCache(ResultHit)
			for name, vals := range page.Header {
				if len(vals) > 0 {
					c.Header(name, vals[0])
				}
			}
			c.Header(Header, "HIT")
			c.Data(http.StatusOK, page.ContentType, page.Body)
			c.Abort()
			return
		}

		p.metrics.PageCache(ResultMiss)
		c.Header(Header, "MISS")
		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if w.Status() != http.StatusOK || w.buf.Len() == 0 {
			return
		}
		//nolint:contextcheck // the response is already written; store even if the client left
		storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		fresh := Page{ContentType: w.Header().Get("Content-Type"), Header: w.Header(), Body: w.buf.Bytes()}
		if err := p.Set(storeCtx, path, fresh); err != nil {
			logger.FromContextOr(ctx, p.log).Warn("Page cache store failed", logger.Path(path), logger.Error(err))
		}
	}
}

func bypass(path string) bool {
	for _, prefix := range bypassPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// captureWriter tees the response body.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
