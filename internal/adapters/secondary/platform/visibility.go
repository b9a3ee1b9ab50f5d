package platform

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"aivault-portal/internal/core/domain"
)

func (c *Client) RunVisibilityCheck(ctx context.Context, businessID uuid.UUID) (*domain.VisibilityResult, error) {
	return mutateJSON[domain.VisibilityResult](ctx, c, http.MethodPost, withQuery("/visibility/run", forBusiness(businessID)), nil)
}

func (c *Client) ListVisibilityResults(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.VisibilityResult, error) {
	return getList[domain.VisibilityResult](ctx, c, withQuery("/visibility/result", businessPage(businessID, limit, offset)))
}

func (c *Client) ListVisibilitySuggestions(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.VisibilitySuggestion, error) {
	return getList[domain.VisibilitySuggestion](ctx, c, withQuery("/visibility/suggestion", businessPage(businessID, limit, offset)))
}
