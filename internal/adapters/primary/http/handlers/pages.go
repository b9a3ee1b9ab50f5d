package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"aivault-portal/internal/adapters/primary/http/dto"
	"aivault-portal/internal/adapters/primary/http/middleware"
	"aivault-portal/internal/core/domain"
	ports "aivault-portal/internal/core/ports/output"
)

// servePage answers with the page for the :id business. With ?cache=only the page is built
// from already-fetched responses, which is how the front end seeds a view before the fresh
// request returns.
func servePage[T any](c *gin.Context, name string, load func(context.Context, uuid.UUID) (T, error)) {
	respond(requestContext(c), c, name, load)
}

// respond loads the page for the :id business with ctx and writes it.
func respond[T any](ctx context.Context, c *gin.Context, name string, load func(context.Context, uuid.UUID) (T, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domain.ErrInvalidID.Error()})
		return
	}

	page, err := load(ctx, id)
	if err != nil {
		if !ports.IsCacheOnly(ctx) {
			fields := log.Fields{"page": name, "business_id": id}
			if userID, ok := middleware.UserID(c); ok {
				fields["user_id"] = userID
			}
			log.WithError(err).WithFields(fields).Error("load page failed")
		}
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if c.Query("cache") == "only" {
		ctx = ports.CacheOnly(ctx)
	}
	return ctx
}

func (h *Handler) DirectoryPage(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := h.pageSvc.Directory(requestContext(c), limit, offset)
	if errors.Is(err, ports.ErrCacheMiss) {
		c.Status(http.StatusNoContent)
		return
	}
	resp := dto.DirectoryResponse{DirectoryPage: page}
	if err != nil {
		log.WithError(err).Error("list directory failed")
		resp.Error = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) BusinessPage(c *gin.Context) {
	servePage(c, "business", h.pageSvc.BusinessDetail)
}

func (h *Handler) ProfilePage(c *gin.Context) {
	servePage(c, "profile", h.pageSvc.PublicProfile)
}

func (h *Handler) DashboardPage(c *gin.Context) {
	servePage(c, "dashboard", h.pageSvc.Dashboard)
}

func (h *Handler) VisibilityPage(c *gin.Context) {
	servePage(c, "visibility", h.pageSvc.Visibility)
}

// RunVisibilityCheck always reaches the platform: a check cannot be answered from cache.
func (h *Handler) RunVisibilityCheck(c *gin.Context) {
	respond(c.Request.Context(), c, "visibility_run", h.pageSvc.RunVisibilityCheck)
}

func (h *Handler) ServicesPage(c *gin.Context) {
	servePage(c, "services", h.pageSvc.Services)
}

func (h *Handler) CouponsPage(c *gin.Context) {
	servePage(c, "coupons", h.pageSvc.Coupons)
}

func (h *Handler) MediaPage(c *gin.Context) {
	servePage(c, "media", h.pageSvc.Media)
}

func (h *Handler) MetadataPage(c *gin.Context) {
	servePage(c, "metadata", h.pageSvc.Metadata)
}

func (h *Handler) JSONLDPage(c *gin.Context) {
	servePage(c, "jsonld", h.pageSvc.JSONLD)
}

func (h *Handler) HoursPage(c *gin.Context) {
	servePage(c, "hours", h.pageSvc.Hours)
}
