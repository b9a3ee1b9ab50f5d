package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aivault-portal/internal/core/domain"
	ports "aivault-portal/internal/core/ports/output"
)

// MockPlatformClient is a mock of PlatformClient.
type MockPlatformClient struct {
	mock.Mock
}

var _ ports.PlatformClient = (*MockPlatformClient)(nil)

func (m *MockPlatformClient) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginResponse), args.Error(1)
}

func (m *MockPlatformClient) CreateUser(ctx context.Context, in domain.UserCreate) (*domain.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockPlatformClient) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockPlatformClient) CreateBusiness(ctx context.Context, in domain.BusinessCreate) (*domain.Business, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockPlatformClient) ListBusinesses(ctx context.Context, limit, offset int) ([]domain.Business, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockPlatformClient) GetBusiness(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockPlatformClient) GetBusinessByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockPlatformClient) UpdateBusiness(ctx context.Context, id uuid.UUID, in domain.BusinessUpdate) (*domain.Business, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockPlatformClient) CreateService(ctx context.Context, in domain.ServiceCreate) (*domain.Service, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockPlatformClient) GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockPlatformClient) ListServices(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.Service, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockPlatformClient) UpdateService(ctx context.Context, id uuid.UUID, in domain.ServiceUpdate) (*domain.Service, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockPlatformClient) DeleteService(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlatformClient) CreateOperationalInfo(ctx context.Context, in domain.OperationalInfoCreate) (*domain.OperationalInfo, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperationalInfo), args.Error(1)
}

func (m *MockPlatformClient) GetOperationalInfoByBusiness(ctx context.Context, businessID uuid.UUID) domain.Result[domain.OperationalInfo] {
	args := m.Called(ctx, businessID)
	return args.Get(0).(domain.Result[domain.OperationalInfo])
}

func (m *MockPlatformClient) UpdateOperationalInfoByBusiness(ctx context.Context, businessID uuid.UUID, in domain.OperationalInfoUpdate) (*domain.OperationalInfo, error) {
	args := m.Called(ctx, businessID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperationalInfo), args.Error(1)
}

func (m *MockPlatformClient) DeleteOperationalInfoByBusiness(ctx context.Context, businessID uuid.UUID) error {
	args := m.Called(ctx, businessID)
	return args.Error(0)
}

func (m *MockPlatformClient) UploadMedia(ctx context.Context, up ports.Upload) (*domain.MediaAsset, error) {
	args := m.Called(ctx, up)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MediaAsset), args.Error(1)
}

func (m *MockPlatformClient) GetMedia(ctx context.Context, id uuid.UUID) (*domain.MediaAsset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MediaAsset), args.Error(1)
}

func (m *MockPlatformClient) ListMedia(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.MediaAsset, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaAsset), args.Error(1)
}

func (m *MockPlatformClient) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlatformClient) MediaURL(relative string) string {
	args := m.Called(relative)
	return args.String(0)
}

func (m *MockPlatformClient) CreateCoupon(ctx context.Context, in domain.CouponCreate) (*domain.Coupon, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}

func (m *MockPlatformClient) GetCoupon(ctx context.Context, id uuid.UUID) (*domain.Coupon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}

func (m *MockPlatformClient) ListCoupons(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.Coupon, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coupon), args.Error(1)
}

func (m *MockPlatformClient) UpdateCoupon(ctx context.Context, id uuid.UUID, in domain.CouponUpdate) (*domain.Coupon, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}

func (m *MockPlatformClient) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlatformClient) CreateAiMetadata(ctx context.Context, in domain.AiMetadataCreate) (*domain.AiMetadata, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AiMetadata), args.Error(1)
}

func (m *MockPlatformClient) GetAiMetadata(ctx context.Context, id uuid.UUID) (*domain.AiMetadata, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AiMetadata), args.Error(1)
}

func (m *MockPlatformClient) ListAiMetadata(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.AiMetadata, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AiMetadata), args.Error(1)
}

func (m *MockPlatformClient) GenerateAiMetadata(ctx context.Context, businessID uuid.UUID) (*domain.AiMetadata, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AiMetadata), args.Error(1)
}

func (m *MockPlatformClient) DeleteAiMetadata(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlatformClient) GenerateJSONLD(ctx context.Context, businessID uuid.UUID) (*domain.JSONLDFeed, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JSONLDFeed), args.Error(1)
}

func (m *MockPlatformClient) ListJSONLD(ctx context.Context, businessID uuid.UUID) ([]domain.JSONLDFeed, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JSONLDFeed), args.Error(1)
}

func (m *MockPlatformClient) GetJSONLD(ctx context.Context, id uuid.UUID) (*domain.JSONLDFeed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JSONLDFeed), args.Error(1)
}

func (m *MockPlatformClient) DeleteJSONLD(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlatformClient) RunVisibilityCheck(ctx context.Context, businessID uuid.UUID) (*domain.VisibilityResult, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VisibilityResult), args.Error(1)
}

func (m *MockPlatformClient) ListVisibilityResults(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.VisibilityResult, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisibilityResult), args.Error(1)
}

func (m *MockPlatformClient) ListVisibilitySuggestions(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]domain.VisibilitySuggestion, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisibilitySuggestion), args.Error(1)
}

func (m *MockPlatformClient) Prefetch(ctx context.Context, path string) {
	m.Called(ctx, path)
}

// MockSessionStore is a mock of SessionStore.
type MockSessionStore struct {
	mock.Mock
}

var _ ports.SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Load() (domain.Session, error) {
	args := m.Called()
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockSessionStore) Save(s domain.Session) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockSessionStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}
