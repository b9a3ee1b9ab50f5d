package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"aivault-portal/internal/adapters/primary/http/dto"
)

const headerCache = "X-Cache"

// Proxy relays /api/* to the platform API through the response cache.
func (h *Handler) Proxy(c *gin.Context) {
	method := c.Request.Method
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete:
	default:
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "method not allowed"})
		return
	}

	// The escaped form keeps encoded separators such as %2F inside one segment.
	prefix := strings.TrimSuffix(c.FullPath(), "/*path")
	path := strings.TrimPrefix(c.Request.URL.EscapedPath(), prefix)
	if raw := c.Request.URL.RawQuery; raw != "" {
		path += "?" + raw
	}

	resp, err := h.upstream.Forward(c.Request.Context(), method, path, c.Request.Body, c.GetHeader("Content-Type"))
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"method": method,
			"path":   path,
		}).Error("forward to platform failed")
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "platform api unavailable"})
		return
	}

	if method == http.MethodGet {
		if resp.Cached {
			c.Header(headerCache, "HIT")
		} else {
			c.Header(headerCache, "MISS")
		}
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.Status, contentType, resp.Body)
}

// Prefetch warms the cache for the given API paths without waiting for the results.
func (h *Handler) Prefetch(c *gin.Context) {
	var req dto.PrefetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("ignoring malformed prefetch request")
		c.JSON(http.StatusAccepted, dto.PrefetchResponse{})
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	for _, p := range req.Paths {
		go h.upstream.Prefetch(ctx, p)
	}
	c.JSON(http.StatusAccepted, dto.PrefetchResponse{Accepted: len(req.Paths)})
}
