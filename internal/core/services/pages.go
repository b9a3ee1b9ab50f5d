package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"aivault-portal/internal/core/domain"
	ports "aivault-portal/internal/core/ports/output"
)

const (
	pageListLimit  = 100
	auditListLimit = 20
	directoryLimit = 10

	noScore = "—"
)

// PageService assembles the data each portal page shows. Every loader works in both passes
// of Revalidate: with a CacheOnly context it returns what is already cached.
type PageService struct {
	api       ports.PlatformClient
	validator *JSONLDValidator
	now       func() time.Time
}

func NewPageService(api ports.PlatformClient, validator *JSONLDValidator) *PageService {
	return &PageService{api: api, validator: validator, now: time.Now}
}

// ============================================================================
// Dashboard home
// ============================================================================

type DashboardPage struct {
	BusinessID      uuid.UUID        `json:"business_id"`
	ProfileOK       bool             `json:"profile_ok"`
	Business        *domain.Business `json:"business,omitempty"`
	ServiceCount    int              `json:"service_count"`
	VisibilityScore *float64         `json:"visibility_score"`
	ScoreLabel      string           `json:"score_label"`
	ScoreBand       string           `json:"score_band"`
}

func (s *PageService) Dashboard(ctx context.Context, businessID uuid.UUID) (*DashboardPage, error) {
	page := &DashboardPage{BusinessID: businessID, ScoreLabel: noScore, ScoreBand: "unknown"}

	var (
		business *domain.Business
		services []domain.Service
		latest   []domain.VisibilityResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.api.GetBusiness(gctx, businessID)
		if errors.Is(err, ports.ErrCacheMiss) {
			return err
		}
		business = soft(gctx, "business", (*domain.Business)(nil), func(context.Context) (*domain.Business, error) {
			return b, err
		})
		return nil
	})
	g.Go(func() error {
		services = soft(gctx, "services", []domain.Service(nil), func(c context.Context) ([]domain.Service, error) {
			return s.api.ListServices(c, businessID, pageListLimit, 0)
		})
		return nil
	})
	g.Go(func() error {
		latest = soft(gctx, "visibility", []domain.VisibilityResult(nil), func(c context.Context) ([]domain.VisibilityResult, error) {
			return s.api.ListVisibilityResults(c, businessID, 1, 0)
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page.Business = business
	page.ProfileOK = business != nil
	page.ServiceCount = len(services)
	if len(latest) > 0 && latest[0].VisibilityScore != nil {
		page.VisibilityScore = latest[0].VisibilityScore
		page.ScoreLabel = strconv.FormatFloat(*latest[0].VisibilityScore, 'f', -1, 64)
		page.ScoreBand = latest[0].ScoreBand()
	}
	return page, nil
}

// ============================================================================
// Public pages
// ============================================================================

// ProfilePage is the public business page: the business with its services and media.
type ProfilePage struct {
	Business *domain.Business `json:"business"`
	Services []domain.Service `json:"services"`
	Media    []MediaView      `json:"media"`
}

// MediaView pairs an asset with a URL a browser can load directly.
type MediaView struct {
	domain.MediaAsset
	AbsoluteURL string `json:"absolute_url"`
}

func (s *PageService) PublicProfile(ctx context.Context, businessID uuid.UUID) (*ProfilePage, error) {
	page := &ProfilePage{Services: []domain.Service{}, Media: []MediaView{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.api.GetBusiness(gctx, businessID)
		if err != nil {
			return fmt.Errorf("load business %s: %w", businessID, err)
		}
		page.Business = b
		return nil
	})
	g.Go(func() error {
		page.Services = soft(gctx, "services", []domain.Service{}, func(c context.Context) ([]domain.Service, error) {
			return s.api.ListServices(c, businessID, pageListLimit, 0)
		})
		return nil
	})
	g.Go(func() error {
		page.Media = s.mediaViews(soft(gctx, "media", []domain.MediaAsset{}, func(c context.Context) ([]domain.MediaAsset, error) {
			return s.api.ListMedia(c, businessID, pageListLimit, 0)
		}))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

// DetailPage is the full public listing: profile plus hours and coupons.
type DetailPage struct {
	Business  *domain.Business        `json:"business"`
	Hours     *domain.OperationalInfo `json:"hours"`
	HoursText string                  `json:"hours_text,omitempty"`
	Media     []MediaView             `json:"media"`
	Services  []domain.Service        `json:"services"`
	Coupons   []domain.Coupon         `json:"coupons"`
}

func (s *PageService) BusinessDetail(ctx context.Context, businessID uuid.UUID) (*DetailPage, error) {
	b, err := s.api.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("load business %s: %w", businessID, err)
	}
	entry := s.enrich(ctx, *b)
	page := &DetailPage{
		Business: b,
		Hours:    entry.Hours,
		Media:    entry.Media,
		Services: entry.Services,
		Coupons:  entry.Coupons,
	}
	if entry.Hours != nil {
		page.HoursText = entry.Hours.Hours()
	}
	return page, nil
}

type DirectoryEntry struct {
	Business domain.Business         `json:"business"`
	Hours    *domain.OperationalInfo `json:"hours"`
	Media    []MediaView             `json:"media"`
	Services []domain.Service        `json:"services"`
	Coupons  []domain.Coupon         `json:"coupons"`
}

type DirectoryPage struct {
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
	Entries []DirectoryEntry `json:"entries"`
}

// Directory lists businesses and enriches each one concurrently. A failed listing yields an
// empty directory together with the error so callers can still render the page.
func (s *PageService) Directory(ctx context.Context, limit, offset int) (*DirectoryPage, error) {
	if limit <= 0 {
		limit = directoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	page := &DirectoryPage{Limit: limit, Offset: offset, Entries: []DirectoryEntry{}}

	businesses, err := s.api.ListBusinesses(ctx, limit, offset)
	if err != nil {
		return page, fmt.Errorf("list businesses: %w", err)
	}

	entries := make([]DirectoryEntry, len(businesses))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range businesses {
		g.Go(func() error {
			entries[i] = s.enrich(gctx, b)
			return nil
		})
	}
	_ = g.Wait()

	page.Entries = entries
	return page, nil
}

// enrich loads the per-business extras shown in listings; every part defaults on failure.
func (s *PageService) enrich(ctx context.Context, b domain.Business) DirectoryEntry {
	entry := DirectoryEntry{Business: b}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entry.Hours = s.hours(gctx, b.ID)
		return nil
	})
	g.Go(func() error {
		entry.Media = s.mediaViews(soft(gctx, "media", []domain.MediaAsset{}, func(c context.Context) ([]domain.MediaAsset, error) {
			return s.api.ListMedia(c, b.ID, pageListLimit, 0)
		}))
		return nil
	})
	g.Go(func() error {
		entry.Services = soft(gctx, "services", []domain.Service{}, func(c context.Context) ([]domain.Service, error) {
			return s.api.ListServices(c, b.ID, pageListLimit, 0)
		})
		return nil
	})
	g.Go(func() error {
		entry.Coupons = soft(gctx, "coupons", []domain.Coupon{}, func(c context.Context) ([]domain.Coupon, error) {
			return s.api.ListCoupons(c, b.ID, pageListLimit, 0)
		})
		return nil
	})
	_ = g.Wait()

	return entry
}

func (s *PageService) hours(ctx context.Context, businessID uuid.UUID) *domain.OperationalInfo {
	res := s.api.GetOperationalInfoByBusiness(ctx, businessID)
	if err := res.Err(); err != nil {
		soft(ctx, "hours", (*domain.OperationalInfo)(nil), func(context.Context) (*domain.OperationalInfo, error) {
			return nil, err
		})
	}
	return res.Ptr()
}

func (s *PageService) mediaViews(assets []domain.MediaAsset) []MediaView {
	views := make([]MediaView, 0, len(assets))
	for _, a := range assets {
		views = append(views, MediaView{MediaAsset: a, AbsoluteURL: s.api.MediaURL(a.URL)})
	}
	return views
}

// ============================================================================
// Dashboard sections
// ============================================================================

type VisibilityPage struct {
	Results     []domain.VisibilityResult     `json:"results"`
	Suggestions []domain.VisibilitySuggestion `json:"suggestions"`
}

func (s *PageService) Visibility(ctx context.Context, businessID uuid.UUID) (*VisibilityPage, error) {
	page := &VisibilityPage{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		results, err := s.api.ListVisibilityResults(gctx, businessID, auditListLimit, 0)
		if err != nil {
			return fmt.Errorf("list visibility results: %w", err)
		}
		page.Results = results
		return nil
	})
	g.Go(func() error {
		page.Suggestions = soft(gctx, "suggestions", []domain.VisibilitySuggestion{}, func(c context.Context) ([]domain.VisibilitySuggestion, error) {
			return s.api.ListVisibilitySuggestions(c, businessID, auditListLimit, 0)
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

// RunVisibilityCheck starts an audit and returns the refreshed page with the new result
// first.
func (s *PageService) RunVisibilityCheck(ctx context.Context, businessID uuid.UUID) (*VisibilityPage, error) {
	result, err := s.api.RunVisibilityCheck(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("run visibility check: %w", err)
	}

	page, err := s.Visibility(ctx, businessID)
	if err != nil {
		page = &VisibilityPage{Suggestions: []domain.VisibilitySuggestion{}}
	}
	for _, r := range page.Results {
		if r.ID == result.ID {
			return page, nil
		}
	}
	page.Results = append([]domain.VisibilityResult{*result}, page.Results...)
	return page, nil
}

type ServicesPage struct {
	Services []domain.Service `json:"services"`
}

func (s *PageService) Services(ctx context.Context, businessID uuid.UUID) (*ServicesPage, error) {
	services, err := s.api.ListServices(ctx, businessID, pageListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return &ServicesPage{Services: services}, nil
}

type CouponsPage struct {
	Coupons []domain.Coupon `json:"coupons"`
	Live    int             `json:"live"`
}

func (s *PageService) Coupons(ctx context.Context, businessID uuid.UUID) (*CouponsPage, error) {
	coupons, err := s.api.ListCoupons(ctx, businessID, auditListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	page := &CouponsPage{Coupons: coupons}
	now := s.now()
	for _, c := range coupons {
		if c.Live(now) {
			page.Live++
		}
	}
	return page, nil
}

type MediaPage struct {
	Media []MediaView `json:"media"`
}

func (s *PageService) Media(ctx context.Context, businessID uuid.UUID) (*MediaPage, error) {
	assets, err := s.api.ListMedia(ctx, businessID, pageListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return &MediaPage{Media: s.mediaViews(assets)}, nil
}

type MetadataPage struct {
	Items []domain.AiMetadata `json:"items"`
}

func (s *PageService) Metadata(ctx context.Context, businessID uuid.UUID) (*MetadataPage, error) {
	items, err := s.api.ListAiMetadata(ctx, businessID, auditListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("list ai metadata: %w", err)
	}
	return &MetadataPage{Items: items}, nil
}

type HoursPage struct {
	Exists    bool                    `json:"exists"`
	Hours     *domain.OperationalInfo `json:"hours"`
	HoursText string                  `json:"hours_text,omitempty"`
}

func (s *PageService) Hours(ctx context.Context, businessID uuid.UUID) (*HoursPage, error) {
	res := s.api.GetOperationalInfoByBusiness(ctx, businessID)
	switch res.State() {
	case domain.StateNotFound:
		return &HoursPage{}, nil
	case domain.StateError:
		return nil, fmt.Errorf("load operational info: %w", res.Err())
	}
	info := res.Ptr()
	return &HoursPage{Exists: true, Hours: info, HoursText: info.Hours()}, nil
}

// FeedView is a feed together with the problems local validation found in its document.
type FeedView struct {
	domain.JSONLDFeed
	Problems []string `json:"problems"`
}

type JSONLDPage struct {
	Feeds []FeedView `json:"feeds"`
}

func (s *PageService) JSONLD(ctx context.Context, businessID uuid.UUID) (*JSONLDPage, error) {
	feeds, err := s.api.ListJSONLD(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("list jsonld feeds: %w", err)
	}
	page := &JSONLDPage{Feeds: make([]FeedView, 0, len(feeds))}
	for _, f := range feeds {
		view := FeedView{JSONLDFeed: f, Problems: []string{}}
		if s.validator != nil {
			view.Problems = s.validator.Validate(f)
		}
		page.Feeds = append(page.Feeds, view)
	}
	return page, nil
}
