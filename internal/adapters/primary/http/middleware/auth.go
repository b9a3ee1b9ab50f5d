package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aivault-portal/internal/core/domain"
)

const (
	HeaderUserID = "X-User-ID"

	userIDKey = "user_id"
)

// RequireUser rejects requests that do not carry the signed-in owner's id, the gateway's
// counterpart of the front end's protected routes.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(HeaderUserID))
		if err != nil || id == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrNotLoggedIn.Error()})
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// UserID returns the id RequireUser accepted.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
