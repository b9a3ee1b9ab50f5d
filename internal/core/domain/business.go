package domain

import (
	"github.com/google/uuid"
)

type BusinessType string

const (
	BusinessTypeRestaurant BusinessType = "restaurant"
	BusinessTypeSalon      BusinessType = "salon"
	BusinessTypeClinic     BusinessType = "clinic"
)

type Business struct {
	ID                 uuid.UUID     `json:"business_id"`
	OwnerID            uuid.UUID     `json:"owner_id"`
	Name               string        `json:"name"`
	Description        *string       `json:"description"`
	BusinessType       *BusinessType `json:"business_type"`
	Phone              *string       `json:"phone"`
	Website            *string       `json:"website"`
	Address            *string       `json:"address"`
	Latitude           *float64      `json:"latitude"`
	Longitude          *float64      `json:"LONGITUDDE"`
	Timezone           *string       `json:"timezone"`
	QuoteSlogan        *string       `json:"quote_slogan"`
	IdentificationMark *string       `json:"identification_mark"`
	Published          bool          `json:"published"`
	Version            int           `json:"version"`
	CreatedAt          Timestamp     `json:"created_at"`
	Updated            *Timestamp    `json:"updated"`
}

type BusinessCreate struct {
	OwnerID            uuid.UUID     `json:"owner_id"`
	Name               string        `json:"name"`
	Description        *string       `json:"description,omitempty"`
	BusinessType       *BusinessType `json:"business_type,omitempty"`
	Phone              *string       `json:"phone,omitempty"`
	Website            *string       `json:"website,omitempty"`
	Address            *string       `json:"address,omitempty"`
	Latitude           *float64      `json:"latitude,omitempty"`
	Longitude          *float64      `json:"LONGITUDDE,omitempty"`
	Timezone           *string       `json:"timezone,omitempty"`
	QuoteSlogan        *string       `json:"quote_slogan,omitempty"`
	IdentificationMark *string       `json:"identification_mark,omitempty"`
	Published          bool          `json:"published"`
}

// BusinessUpdate is a partial update; nil fields are left untouched by the backend.
type BusinessUpdate struct {
	Name               *string       `json:"name,omitempty"`
	Description        *string       `json:"description,omitempty"`
	BusinessType       *BusinessType `json:"business_type,omitempty"`
	Phone              *string       `json:"phone,omitempty"`
	Website            *string       `json:"website,omitempty"`
	Address            *string       `json:"address,omitempty"`
	Latitude           *float64      `json:"latitude,omitempty"`
	Longitude          *float64      `json:"LONGITUDDE,omitempty"`
	Timezone           *string       `json:"timezone,omitempty"`
	QuoteSlogan        *string       `json:"quote_slogan,omitempty"`
	IdentificationMark *string       `json:"identification_mark,omitempty"`
	Published          *bool         `json:"published,omitempty"`
}

// DisplayName falls back to a placeholder for the auto-created business a new owner gets.
func (b Business) DisplayName() string {
	if b.Name == "" {
		return "Untitled business"
	}
	return b.Name
}
