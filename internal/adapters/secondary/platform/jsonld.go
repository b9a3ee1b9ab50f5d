package platform

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"aivault-portal/internal/core/domain"
)

func (c *Client) GenerateJSONLD(ctx context.Context, businessID uuid.UUID) (*domain.JSONLDFeed, error) {
	return mutateJSON[domain.JSONLDFeed](ctx, c, http.MethodPost, withQuery("/jsonld/generate", forBusiness(businessID)), nil)
}

func (c *Client) ListJSONLD(ctx context.Context, businessID uuid.UUID) ([]domain.JSONLDFeed, error) {
	return getList[domain.JSONLDFeed](ctx, c, withQuery("/jsonld/", forBusiness(businessID)))
}

func (c *Client) GetJSONLD(ctx context.Context, id uuid.UUID) (*domain.JSONLDFeed, error) {
	return getJSON[domain.JSONLDFeed](ctx, c, "/jsonld/"+id.String())
}

func (c *Client) DeleteJSONLD(ctx context.Context, id uuid.UUID) error {
	return c.Mutate(ctx, http.MethodDelete, "/jsonld/"+id.String(), nil, nil)
}
