package platform

import (
	"context"
	"errors"
	"io"
	"net/http"
)

var nullBody = []byte("null")

// Forward relays a request to the platform with the same cache rules as the typed calls:
// GETs are answered from the cache when possible, successful mutations clear it. Upstream
// error statuses are returned as a Response, not an error; only transport failures are.
func (c *Client) Forward(ctx context.Context, method, path string, body io.Reader, contentType string) (*Response, error) {
	if method == http.MethodGet {
		return c.forwardGet(ctx, path)
	}

	resp, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}
	switch err := c.check(method, path, resp); {
	case errors.Is(err, ErrAbsent):
		return absent(), nil
	case err != nil:
		return resp, nil
	}
	c.invalidate(ctx)
	return resp, nil
}

func (c *Client) forwardGet(ctx context.Context, path string) (*Response, error) {
	key := c.URL(path)
	if cached, ok := c.lookup(ctx, key); ok {
		return &Response{
			Status:      http.StatusOK,
			ContentType: contentTypeJSON,
			Body:        cached,
			Cached:      true,
		}, nil
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	switch err := c.check(http.MethodGet, path, resp); {
	case errors.Is(err, ErrAbsent):
		return absent(), nil
	case err != nil:
		return resp, nil
	}
	c.store(ctx, key, resp.Body)
	return resp, nil
}

func absent() *Response {
	return &Response{Status: http.StatusOK, ContentType: contentTypeJSON, Body: nullBody}
}
