package domain

import "errors"

// ============================================================================
// Session Errors
// ============================================================================

var (
	ErrNotLoggedIn = errors.New("not logged in: no user_id in session")
	ErrNoBusiness  = errors.New("no business selected: pass a business id or log in again")
)

// ============================================================================
// Validation Errors
// ============================================================================

var (
	ErrInvalidID         = errors.New("invalid id: expected a UUID")
	ErrMissingEmail      = errors.New("email is required")
	ErrMissingPassword   = errors.New("password is required")
	ErrMissingBusiness   = errors.New("business name and address are required")
	ErrInvalidMediaType  = errors.New("media type must be one of image, video, document")
	ErrInvalidSchemaType = errors.New("schema type must be one of Restaurant, HairSalon, MedicalClinic")
	ErrEmptyJSONLD       = errors.New("jsonld_data is empty")
)
