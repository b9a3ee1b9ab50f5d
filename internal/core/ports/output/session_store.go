package ports

import "aivault-portal/internal/core/domain"

// SessionStore persists the signed-in owner's ids between invocations.
type SessionStore interface {
	Load() (domain.Session, error)
	Save(s domain.Session) error
	Clear() error
}
