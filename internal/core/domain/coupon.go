package domain

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	ID              uuid.UUID `json:"coupon_id"`
	BusinessID      uuid.UUID `json:"business_id"`
	Code            string    `json:"code"`
	Description     *string   `json:"description"`
	DiscountValue   string    `json:"discount_value"`
	ValidFrom       Timestamp `json:"valid_from"`
	ValidUntil      Timestamp `json:"valid_until"`
	TermsConditions *string   `json:"terms_conditions"`
	IsActive        bool      `json:"is_active"`
}

// Live reports whether the coupon is active and inside its validity window at now.
func (c Coupon) Live(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if !c.ValidFrom.IsZero() && now.Before(c.ValidFrom.Time) {
		return false
	}
	if !c.ValidUntil.IsZero() && now.After(c.ValidUntil.Time) {
		return false
	}
	return true
}

type CouponCreate struct {
	BusinessID      uuid.UUID `json:"business_id"`
	Code            string    `json:"code"`
	Description     *string   `json:"description,omitempty"`
	DiscountValue   string    `json:"discount_value"`
	ValidFrom       Timestamp `json:"valid_from"`
	ValidUntil      Timestamp `json:"valid_until"`
	TermsConditions *string   `json:"terms_conditions,omitempty"`
	IsActive        bool      `json:"is_active"`
}

type CouponUpdate struct {
	Code            *string    `json:"code,omitempty"`
	Description     *string    `json:"description,omitempty"`
	DiscountValue   *string    `json:"discount_value,omitempty"`
	ValidFrom       *Timestamp `json:"valid_from,omitempty"`
	ValidUntil      *Timestamp `json:"valid_until,omitempty"`
	TermsConditions *string    `json:"terms_conditions,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
}
