package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	ports "aivault-portal/internal/core/ports/output"
	"aivault-portal/internal/metrics"
)

const contentTypeJSON = "application/json"

// optionalResource marks paths whose 404 means "not created yet" rather than a failure.
const optionalResource = "operational-info"

// ErrAbsent is returned for a 404 on an optional resource path.
var ErrAbsent = errors.New("optional resource does not exist")

// HTTPError is a non-2xx answer from the platform API.
type HTTPError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// StatusCode extracts the upstream status from err, if it carries one.
func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, true
	}
	return 0, false
}

// Client talks to the platform REST API and keeps successful GET responses in a
// ResponseCache keyed by absolute URL. Any successful mutation clears the whole cache.
// A Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      ports.ResponseCache
}

func NewClient(baseURL string, timeout time.Duration, cache ports.ResponseCache) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: cache,
	}
}

var _ ports.PlatformClient = (*Client)(nil)

// BaseURL is the API root every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL resolves path against the base URL. The result is also the cache key.
func (c *Client) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Get answers from the cache when it can and otherwise fetches path, caching the body on
// success. out may be nil when only the side effect is wanted.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	key := c.URL(path)
	if body, ok := c.lookup(ctx, key); ok {
		return decode(body, out)
	}
	if ports.IsCacheOnly(ctx) {
		return ports.ErrCacheMiss
	}

	body, err := c.send(ctx, http.MethodGet, path, nil, contentTypeJSON)
	if err != nil {
		return err
	}
	if err := decode(body, out); err != nil {
		return err
	}
	c.store(ctx, key, body)
	return nil
}

// Mutate sends a POST, PATCH or DELETE with a JSON body (nil for none) and clears the cache
// once the platform accepts it.
func (c *Client) Mutate(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.send(ctx, method, path, body, contentTypeJSON)
	if err != nil {
		return err
	}
	c.invalidate(ctx)
	return decode(resp, out)
}

// FromCache decodes the cached response for path into out without touching the network.
// It reports false on a miss.
func (c *Client) FromCache(ctx context.Context, path string, out any) bool {
	body, ok := c.lookup(ctx, c.URL(path))
	if !ok {
		return false
	}
	if err := decode(body, out); err != nil {
		log.WithError(err).WithField("path", path).Warn("discarding undecodable cache entry")
		return false
	}
	return true
}

// Prefetch warms the cache for path. It blocks until the request finishes; callers that
// navigate on without waiting run it in a goroutine. Failures are logged and dropped.
func (c *Client) Prefetch(ctx context.Context, path string) {
	if _, ok := c.lookup(ctx, c.URL(path)); ok {
		return
	}
	if err := c.Get(ctx, path, nil); err != nil && !errors.Is(err, ErrAbsent) {
		log.WithError(err).WithField("path", path).Warn("prefetch failed")
	}
}

// CacheLen reports how many responses are currently cached.
func (c *Client) CacheLen(ctx context.Context) int {
	n, err := c.cache.Len(ctx)
	if err != nil {
		log.WithError(err).Warn("response cache length unavailable")
		return 0
	}
	return n
}

func (c *Client) lookup(ctx context.Context, key string) ([]byte, bool) {
	body, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("response cache read failed, treating as miss")
		ok = false
	}
	if ok {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
	} else {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}
	return body, ok
}

// store caches body unless it is not JSON. An unparseable 2xx answer, such as a proxy's
// maintenance page, is never served back from the cache.
func (c *Client) store(ctx context.Context, key string, body []byte) {
	if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
		log.WithField("key", key).Warn("not caching non-JSON response")
		return
	}
	if err := c.cache.Set(ctx, key, body); err != nil {
		log.WithError(err).WithField("key", key).Warn("response cache write failed")
	}
}

func (c *Client) invalidate(ctx context.Context) {
	metrics.CacheClears.Inc()
	if err := c.cache.Clear(ctx); err != nil {
		log.WithError(err).Error("response cache clear failed")
	}
}

// Response is an upstream answer as relayed by the gateway.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
	Cached      bool
}

// send performs one request and returns the body of a 2xx response.
func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	resp, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}
	if err := c.check(method, path, resp); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*Response, error) {
	if ports.IsCacheOnly(ctx) {
		return nil, ports.ErrCacheMiss
	}
	url := c.URL(path)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create platform request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", contentTypeJSON)

	log.WithFields(log.Fields{
		"method": method,
		"url":    url,
	}).Debug("calling platform api")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(method, "error").Inc()
		return nil, fmt.Errorf("platform request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequests.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read platform response: %w", err)
	}

	return &Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

// check turns a non-2xx response into ErrAbsent or an *HTTPError.
func (c *Client) check(method, path string, resp *Response) error {
	if resp.Status >= 200 && resp.Status <= 299 {
		return nil
	}
	if resp.Status == http.StatusNotFound && strings.Contains(path, optionalResource) {
		return ErrAbsent
	}

	url := c.URL(path)
	log.WithFields(log.Fields{
		"method": method,
		"url":    url,
		"status": resp.Status,
		"body":   string(resp.Body),
	}).Error("API Error")
	return &HTTPError{Method: method, URL: url, Status: resp.Status, Body: string(resp.Body)}
}

func decode(body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode platform response: %w", err)
	}
	return nil
}
