package platform

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"aivault-portal/internal/core/domain"
)

func (c *Client) CreateBusiness(ctx context.Context, in domain.BusinessCreate) (*domain.Business, error) {
	return mutateJSON[domain.Business](ctx, c, http.MethodPost, "/business/", in)
}

func (c *Client) ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, error) {
	return getList[domain.Business](ctx, c, BusinessListPath(limit, offset))
}

func (c *Client) GetBusiness(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	return getJSON[domain.Business](ctx, c, BusinessPath(id))
}

func (c *Client) GetBusinessByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Business, error) {
	return getJSON[domain.Business](ctx, c, "/business/by-owner/"+ownerID.String())
}

func (c *Client) UpdateBusiness(ctx context.Context, id uuid.UUID, in domain.BusinessUpdate) (*domain.Business, error) {
	return mutateJSON[domain.Business](ctx, c, http.MethodPatch, BusinessPath(id), in)
}
