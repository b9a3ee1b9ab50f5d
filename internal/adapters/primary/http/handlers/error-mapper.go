package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"aivault-portal/internal/adapters/primary/http/dto"
	"aivault-portal/internal/adapters/secondary/platform"
	"aivault-portal/internal/core/domain"
	ports "aivault-portal/internal/core/ports/output"
)

func mapDomainError(c *gin.Context, err error) {
	var urlErr *url.Error

	switch {
	// Nothing cached yet for a cache-only read
	case errors.Is(err, ports.ErrCacheMiss):
		c.Status(http.StatusNoContent)

	// Session errors
	case errors.Is(err, domain.ErrNotLoggedIn):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrNoBusiness),
		errors.Is(err, domain.ErrMissingEmail),
		errors.Is(err, domain.ErrMissingPassword),
		errors.Is(err, domain.ErrMissingBusiness),
		errors.Is(err, domain.ErrInvalidMediaType),
		errors.Is(err, domain.ErrInvalidSchemaType):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	// Upstream answered with an error status: relay it
	case isUpstreamStatus(err):
		status, _ := platform.StatusCode(err)
		c.JSON(status, dto.ErrorResponse{Error: err.Error()})

	// Upstream unreachable
	case errors.As(err, &urlErr):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "platform api unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func isUpstreamStatus(err error) bool {
	_, ok := platform.StatusCode(err)
	return ok
}
