package dto

import (
	"github.com/google/uuid"

	"aivault-portal/internal/core/domain"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name" binding:"required"`
	BusinessType string `json:"business_type"`
	Address      string `json:"address" binding:"required"`
}

// SessionResponse carries the ids the browser keeps in local storage.
type SessionResponse struct {
	UserID     *uuid.UUID `json:"user_id"`
	BusinessID *uuid.UUID `json:"business_id"`
}

func ToSessionResponse(s domain.Session) SessionResponse {
	return SessionResponse{UserID: s.UserID, BusinessID: s.BusinessID}
}
