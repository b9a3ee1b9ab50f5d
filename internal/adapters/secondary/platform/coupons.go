package platform

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"aivault-portal/internal/core/domain"
)

func (c *Client) CreateCoupon(ctx context.Context, in domain.CouponCreate) (*domain.Coupon, error) {
	return mutateJSON[domain.Coupon](ctx, c, http.MethodPost, "/coupons/", in)
}

func (c *Client) GetCoupon(ctx context.Context, id uuid.UUID) (*domain.Coupon, error) {
	return getJSON[domain.Coupon](ctx, c, "/coupons/"+id.String())
}

func (c *Client) ListCoupons(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.Coupon, error) {
	return getList[domain.Coupon](ctx, c, CouponListPath(businessID, limit, offset))
}

func (c *Client) UpdateCoupon(ctx context.Context, id uuid.UUID, in domain.CouponUpdate) (*domain.Coupon, error) {
	return mutateJSON[domain.Coupon](ctx, c, http.MethodPatch, "/coupons/"+id.String(), in)
}

func (c *Client) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	return c.Mutate(ctx, http.MethodDelete, "/coupons/"+id.String(), nil, nil)
}
