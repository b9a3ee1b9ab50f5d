package handlers

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"

	"aivault-portal/internal/adapters/primary/http/middleware"
	"aivault-portal/internal/adapters/secondary/platform"
	"aivault-portal/internal/core/services"
)

// Upstream is the part of the platform client the gateway relays through.
type Upstream interface {
	Forward(ctx context.Context, method, path string, body io.Reader, contentType string) (*platform.Response, error)
	Prefetch(ctx context.Context, path string)
}

type Handler struct {
	upstream Upstream
	pageSvc  *services.PageService
	accounts func() *services.AccountService
}

// New wires the gateway handlers. accounts builds a fresh AccountService per sign-in so no
// session state is shared between browsers.
func New(upstream Upstream, pageSvc *services.PageService, accounts func() *services.AccountService) *Handler {
	return &Handler{
		upstream: upstream,
		pageSvc:  pageSvc,
		accounts: accounts,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Platform API pass-through
	r.Any("/api/*path", h.Proxy)
	r.POST("/prefetch", h.Prefetch)

	// Session
	r.POST("/session/login", h.Login)
	r.POST("/session/register", h.Register)

	// Public pages
	r.GET("/pages/directory", h.DirectoryPage)
	r.GET("/pages/business/:id", h.BusinessPage)
	r.GET("/pages/profile/:id", h.ProfilePage)

	// Owner pages
	owner := r.Group("/pages", middleware.RequireUser())
	owner.GET("/dashboard/:id", h.DashboardPage)
	owner.GET("/visibility/:id", h.VisibilityPage)
	owner.POST("/visibility/:id/run", h.RunVisibilityCheck)
	owner.GET("/services/:id", h.ServicesPage)
	owner.GET("/coupons/:id", h.CouponsPage)
	owner.GET("/media/:id", h.MediaPage)
	owner.GET("/metadata/:id", h.MetadataPage)
	owner.GET("/jsonld/:id", h.JSONLDPage)
	owner.GET("/hours/:id", h.HoursPage)
}
