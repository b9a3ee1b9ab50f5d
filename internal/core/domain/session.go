package domain

import "github.com/google/uuid"

// Session is everything the platform keeps about a signed-in owner on the client side.
type Session struct {
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	BusinessID *uuid.UUID `json:"business_id,omitempty"`
}

func (s Session) LoggedIn() bool {
	return s.UserID != nil && *s.UserID != uuid.Nil
}

// RequireUser gates protected operations.
func (s Session) RequireUser() (uuid.UUID, error) {
	if !s.LoggedIn() {
		return uuid.Nil, ErrNotLoggedIn
	}
	return *s.UserID, nil
}

// ResolveBusiness prefers an explicit id over the one remembered in the session.
func (s Session) ResolveBusiness(explicit string) (uuid.UUID, error) {
	if explicit != "" {
		id, err := uuid.Parse(explicit)
		if err != nil {
			return uuid.Nil, ErrInvalidID
		}
		return id, nil
	}
	if s.BusinessID == nil || *s.BusinessID == uuid.Nil {
		return uuid.Nil, ErrNoBusiness
	}
	return *s.BusinessID, nil
}
