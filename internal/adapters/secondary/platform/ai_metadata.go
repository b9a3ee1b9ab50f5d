package platform

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"aivault-portal/internal/core/domain"
)

func (c *Client) CreateAiMetadata(ctx context.Context, in domain.AiMetadataCreate) (*domain.AiMetadata, error) {
	return mutateJSON[domain.AiMetadata](ctx, c, http.MethodPost, "/ai-metadata/", in)
}

func (c *Client) GetAiMetadata(ctx context.Context, id uuid.UUID) (*domain.AiMetadata, error) {
	return getJSON[domain.AiMetadata](ctx, c, "/ai-metadata/"+id.String())
}

func (c *Client) ListAiMetadata(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.AiMetadata, error) {
	return getList[domain.AiMetadata](ctx, c, withQuery("/ai-metadata/", businessPage(businessID, limit, offset)))
}

func (c *Client) GenerateAiMetadata(ctx context.Context, businessID uuid.UUID) (*domain.AiMetadata, error) {
	return mutateJSON[domain.AiMetadata](ctx, c, http.MethodPost, withQuery("/ai-metadata/generate", forBusiness(businessID)), nil)
}

func (c *Client) DeleteAiMetadata(ctx context.Context, id uuid.UUID) error {
	return c.Mutate(ctx, http.MethodDelete, "/ai-metadata/"+id.String(), nil, nil)
}
