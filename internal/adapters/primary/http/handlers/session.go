package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"aivault-portal/internal/adapters/primary/http/dto"
	"aivault-portal/internal/core/domain"
	"aivault-portal/internal/core/services"
)

func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := h.accounts().Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.WithError(err).Warn("login failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(sess))
}

func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := h.accounts().Register(c.Request.Context(), services.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		BusinessName: req.BusinessName,
		BusinessType: domain.BusinessType(req.BusinessType),
		Address:      req.Address,
	})
	if err != nil {
		log.WithError(err).Warn("registration failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSessionResponse(sess))
}
