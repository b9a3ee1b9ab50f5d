package domain

import "github.com/google/uuid"

type User struct {
	ID           uuid.UUID  `json:"user_id"`
	Email        string     `json:"email"`
	Name         *string    `json:"name"`
	AuthProvider string     `json:"auth_provider"`
	CreatedAt    Timestamp  `json:"created_at"`
	LastLogin    *Timestamp `json:"last_login"`
	IsActive     bool       `json:"is_active"`
}

type UserCreate struct {
	Email        string  `json:"email"`
	Name         *string `json:"name,omitempty"`
	AuthProvider string  `json:"auth_provider"`
	PasswordHash *string `json:"password_hash,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID uuid.UUID `json:"user_id"`
}
