package platform

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"aivault-portal/internal/core/domain"
)

func (c *Client) CreateService(ctx context.Context, in domain.ServiceCreate) (*domain.Service, error) {
	return mutateJSON[domain.Service](ctx, c, http.MethodPost, "/services/", in)
}

func (c *Client) GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return getJSON[domain.Service](ctx, c, "/services/"+id.String())
}

func (c *Client) ListServices(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.Service, error) {
	return getList[domain.Service](ctx, c, ServiceListPath(businessID, limit, offset))
}

func (c *Client) UpdateService(ctx context.Context, id uuid.UUID, in domain.ServiceUpdate) (*domain.Service, error) {
	return mutateJSON[domain.Service](ctx, c, http.MethodPatch, "/services/"+id.String(), in)
}

func (c *Client) DeleteService(ctx context.Context, id uuid.UUID) error {
	return c.Mutate(ctx, http.MethodDelete, "/services/"+id.String(), nil, nil)
}
