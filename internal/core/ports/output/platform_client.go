package ports

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"aivault-portal/internal/core/domain"
)

// ErrCacheMiss is returned by PlatformClient reads made with a CacheOnly context when the
// response has not been fetched yet.
var ErrCacheMiss = errors.New("response not cached")

type cacheOnlyKey struct{}

// CacheOnly marks ctx so that reads are answered from the response cache only and never hit
// the network. Page loaders use it to render what the session already fetched.
func CacheOnly(ctx context.Context) context.Context {
	return context.WithValue(ctx, cacheOnlyKey{}, true)
}

func IsCacheOnly(ctx context.Context) bool {
	v, _ := ctx.Value(cacheOnlyKey{}).(bool)
	return v
}

// Upload is a file sent to the media upload endpoint.
type Upload struct {
	BusinessID uuid.UUID
	MediaType  domain.MediaType
	Filename   string
	Content    io.Reader
}

// PlatformClient is the typed surface of the platform REST API.
type PlatformClient interface {
	// Auth & users
	Login(ctx context.Context, email, password string) (*domain.LoginResponse, error)
	CreateUser(ctx context.Context, in domain.UserCreate) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// Business
	CreateBusiness(ctx context.Context, in domain.BusinessCreate) (*domain.Business, error)
	ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, error)
	GetBusiness(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	GetBusinessByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Business, error)
	UpdateBusiness(ctx context.Context, id uuid.UUID, in domain.BusinessUpdate) (*domain.Business, error)

	// Services
	CreateService(ctx context.Context, in domain.ServiceCreate) (*domain.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	ListServices(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.Service, error)
	UpdateService(ctx context.Context, id uuid.UUID, in domain.ServiceUpdate) (*domain.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	// Operational info (optional one-to-one)
	CreateOperationalInfo(ctx context.Context, in domain.OperationalInfoCreate) (*domain.OperationalInfo, error)
	GetOperationalInfoByBusiness(ctx context.Context, businessID uuid.UUID) domain.Result[domain.OperationalInfo]
	UpdateOperationalInfoByBusiness(ctx context.Context, businessID uuid.UUID, in domain.OperationalInfoUpdate) (*domain.OperationalInfo, error)
	DeleteOperationalInfoByBusiness(ctx context.Context, businessID uuid.UUID) error

	// Media
	UploadMedia(ctx context.Context, up Upload) (*domain.MediaAsset, error)
	GetMedia(ctx context.Context, id uuid.UUID) (*domain.MediaAsset, error)
	ListMedia(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.MediaAsset, error)
	DeleteMedia(ctx context.Context, id uuid.UUID) error
	MediaURL(relative string) string

	// Coupons
	CreateCoupon(ctx context.Context, in domain.CouponCreate) (*domain.Coupon, error)
	GetCoupon(ctx context.Context, id uuid.UUID) (*domain.Coupon, error)
	ListCoupons(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.Coupon, error)
	UpdateCoupon(ctx context.Context, id uuid.UUID, in domain.CouponUpdate) (*domain.Coupon, error)
	DeleteCoupon(ctx context.Context, id uuid.UUID) error

	// AI metadata
	CreateAiMetadata(ctx context.Context, in domain.AiMetadataCreate) (*domain.AiMetadata, error)
	GetAiMetadata(ctx context.Context, id uuid.UUID) (*domain.AiMetadata, error)
	ListAiMetadata(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.AiMetadata, error)
	GenerateAiMetadata(ctx context.Context, businessID uuid.UUID) (*domain.AiMetadata, error)
	DeleteAiMetadata(ctx context.Context, id uuid.UUID) error

	// JSON-LD
	GenerateJSONLD(ctx context.Context, businessID uuid.UUID) (*domain.JSONLDFeed, error)
	ListJSONLD(ctx context.Context, businessID uuid.UUID) ([]domain.JSONLDFeed, error)
	GetJSONLD(ctx context.Context, id uuid.UUID) (*domain.JSONLDFeed, error)
	DeleteJSONLD(ctx context.Context, id uuid.UUID) error

	// Visibility
	RunVisibilityCheck(ctx context.Context, businessID uuid.UUID) (*domain.VisibilityResult, error)
	ListVisibilityResults(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.VisibilityResult, error)
	ListVisibilitySuggestions(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.VisibilitySuggestion, error)

	// Cache warm-up
	Prefetch(ctx context.Context, path string)
}
