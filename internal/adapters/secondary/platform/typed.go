package platform

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

func getJSON[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var out T
	if err := c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getList never returns a nil slice on success so callers can range and count freely.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var out []T
	if err := c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func mutateJSON[T any](ctx context.Context, c *Client, method, path string, in any) (*T, error) {
	var out T
	if err := c.Mutate(ctx, method, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// withQuery appends encoded params. Keys come out sorted, which matches the order the
// front end always used (business_id, limit, offset), so cache keys line up.
func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

func page(limit, offset int) url.Values {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))
	v.Set("offset", strconv.Itoa(offset))
	return v
}

func businessPage(businessID uuid.UUID, limit, offset int) url.Values {
	v := page(limit, offset)
	v.Set("business_id", businessID.String())
	return v
}

func forBusiness(businessID uuid.UUID) url.Values {
	v := url.Values{}
	v.Set("business_id", businessID.String())
	return v
}

// Paths used by page loaders to seed state from the cache.

func BusinessPath(id uuid.UUID) string {
	return "/business/" + id.String()
}

func BusinessListPath(limit, offset int) string {
	return withQuery("/business/", page(limit, offset))
}

func ServiceListPath(businessID uuid.UUID, limit, offset int) string {
	return withQuery("/services/", businessPage(businessID, limit, offset))
}

func MediaListPath(businessID uuid.UUID, limit, offset int) string {
	return withQuery("/media/", businessPage(businessID, limit, offset))
}

func CouponListPath(businessID uuid.UUID, limit, offset int) string {
	return withQuery("/coupons/", businessPage(businessID, limit, offset))
}

func OperationalInfoPath(businessID uuid.UUID) string {
	return "/operational-info/by-business/" + businessID.String()
}
