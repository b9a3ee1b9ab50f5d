package platform

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"aivault-portal/internal/core/domain"
)

func (c *Client) CreateOperationalInfo(ctx context.Context, in domain.OperationalInfoCreate) (*domain.OperationalInfo, error) {
	return mutateJSON[domain.OperationalInfo](ctx, c, http.MethodPost, "/operational-info/", in)
}

// GetOperationalInfoByBusiness resolves to NotFound when the business has not filled in its
// hours yet.
func (c *Client) GetOperationalInfoByBusiness(ctx context.Context, businessID uuid.UUID) domain.Result[domain.OperationalInfo] {
	info, err := getJSON[domain.OperationalInfo](ctx, c, OperationalInfoPath(businessID))
	switch {
	case errors.Is(err, ErrAbsent):
		return domain.NotFound[domain.OperationalInfo]()
	case err != nil:
		return domain.Failed[domain.OperationalInfo](err)
	}
	return domain.Found(*info)
}

// UpdateOperationalInfoByBusiness returns nil, nil when there is nothing to update.
func (c *Client) UpdateOperationalInfoByBusiness(ctx context.Context, businessID uuid.UUID, in domain.OperationalInfoUpdate) (*domain.OperationalInfo, error) {
	info, err := mutateJSON[domain.OperationalInfo](ctx, c, http.MethodPatch, OperationalInfoPath(businessID), in)
	if errors.Is(err, ErrAbsent) {
		return nil, nil
	}
	return info, err
}

// DeleteOperationalInfoByBusiness treats an already-absent record as deleted.
func (c *Client) DeleteOperationalInfoByBusiness(ctx context.Context, businessID uuid.UUID) error {
	err := c.Mutate(ctx, http.MethodDelete, OperationalInfoPath(businessID), nil, nil)
	if errors.Is(err, ErrAbsent) {
		return nil
	}
	return err
}
