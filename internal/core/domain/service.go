package domain

import "github.com/google/uuid"

type Service struct {
	ID              uuid.UUID    `json:"service_id"`
	BusinessID      uuid.UUID    `json:"business_id"`
	ServiceType     BusinessType `json:"service_type"`
	Name            string       `json:"name"`
	Description     *string      `json:"description"`
	Price           float64      `json:"price"`
	DurationMinutes *int         `json:"duration_minutes"`
	CreatedAt       Timestamp    `json:"created_at"`
}

type ServiceCreate struct {
	BusinessID      uuid.UUID    `json:"business_id"`
	ServiceType     BusinessType `json:"service_type"`
	Name            string       `json:"name"`
	Description     *string      `json:"description,omitempty"`
	Price           float64      `json:"price"`
	DurationMinutes *int         `json:"duration_minutes,omitempty"`
}

type ServiceUpdate struct {
	ServiceType     *BusinessType `json:"service_type,omitempty"`
	Name            *string       `json:"name,omitempty"`
	Description     *string       `json:"description,omitempty"`
	Price           *float64      `json:"price,omitempty"`
	DurationMinutes *int          `json:"duration_minutes,omitempty"`
}
