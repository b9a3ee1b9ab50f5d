package domain

import "github.com/google/uuid"

type AiMetadata struct {
	ID                uuid.UUID `json:"ai_metadata_id"`
	BusinessID        uuid.UUID `json:"business_id"`
	ExtractedInsights *string   `json:"extracted_insights"`
	DetectedEntities  *string   `json:"detected_entities"`
	Keywords          *string   `json:"keywords"`
	IntentLabels      *string   `json:"intent_labels"`
	GeneratedAt       Timestamp `json:"generated_at"`
}

type AiMetadataCreate struct {
	BusinessID        uuid.UUID `json:"business_id"`
	ExtractedInsights *string   `json:"extracted_insights,omitempty"`
	DetectedEntities  *string   `json:"detected_entities,omitempty"`
	Keywords          *string   `json:"keywords,omitempty"`
	IntentLabels      *string   `json:"intent_labels,omitempty"`
}
