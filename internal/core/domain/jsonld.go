package domain

import "github.com/google/uuid"

type SchemaType string

const (
	SchemaTypeRestaurant    SchemaType = "Restaurant"
	SchemaTypeHairSalon     SchemaType = "HairSalon"
	SchemaTypeMedicalClinic SchemaType = "MedicalClinic"
)

func (t SchemaType) Valid() bool {
	switch t {
	case SchemaTypeRestaurant, SchemaTypeHairSalon, SchemaTypeMedicalClinic:
		return true
	}
	return false
}

type JSONLDFeed struct {
	ID               uuid.UUID  `json:"feed_id"`
	BusinessID       uuid.UUID  `json:"business_id"`
	SchemaType       SchemaType `json:"schema_type"`
	JSONLDData       string     `json:"jsonld_data"`
	IsValid          bool       `json:"is_valid"`
	ValidationErrors *string    `json:"validation_errors"`
	GeneratedAt      Timestamp  `json:"generated_at"`
}
