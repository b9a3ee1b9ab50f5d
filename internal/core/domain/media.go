package domain

import "github.com/google/uuid"

type MediaType string

const (
	MediaTypeImage    MediaType = "image"
	MediaTypeVideo    MediaType = "video"
	MediaTypeDocument MediaType = "document"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeImage, MediaTypeVideo, MediaTypeDocument:
		return true
	}
	return false
}

type MediaAsset struct {
	ID         uuid.UUID `json:"asset_id"`
	BusinessID uuid.UUID `json:"business_id"`
	MediaType  MediaType `json:"media_type"`
	URL        string    `json:"url"`
	AltText    *string   `json:"alt_text"`
	UploadedAt Timestamp `json:"uploaded_at"`
}
