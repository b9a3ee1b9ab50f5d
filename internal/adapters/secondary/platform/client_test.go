package platform

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aivault-portal/internal/adapters/secondary/cache"
	"aivault-portal/internal/core/domain"
	ports "aivault-portal/internal/core/ports/output"
	"aivault-portal/internal/testutil"
)

func newTestClient(t *testing.T, f *testutil.FakePlatform) (*Client, *cache.MemoryStore) {
	t.Helper()
	store := cache.NewMemoryStore()
	return NewClient(f.URL(), 5*time.Second, store), store
}

func TestGet_CachedURLSkipsNetwork(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)
	id := uuid.New()
	f.JSON(http.MethodGet, "/business/"+id.String(), http.StatusOK, map[string]any{"business_id": id, "name": "Acme"})

	first, err := c.GetBusiness(context.Background(), id)
	require.NoError(t, err)
	second, err := c.GetBusiness(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Acme", first.Name)
	assert.Equal(t, "Acme", second.Name)
	assert.Equal(t, 1, f.Count())
}

func TestGet_UncachedURLFetchesOnceAndPopulates(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, store := newTestClient(t, f)
	id := uuid.New()
	f.JSON(http.MethodGet, "/services/", http.StatusOK, []map[string]any{{"name": "Haircut", "price": 20}})

	services, err := c.ListServices(context.Background(), id, 100, 0)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, 1, f.Count())

	n, _ := store.Len(context.Background())
	assert.Equal(t, 1, n)

	_, ok, _ := store.Get(context.Background(), f.URL()+"/services/?business_id="+id.String()+"&limit=100&offset=0")
	assert.True(t, ok, "cache key should be the absolute request URL")
}

func TestGet_NonJSONSuccessIsNotCached(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, store := newTestClient(t, f)
	id := uuid.New()
	f.Handle(http.MethodGet, "/business/"+id.String(), func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	})

	_, err := c.GetBusiness(context.Background(), id)
	require.Error(t, err)
	n, _ := store.Len(context.Background())
	assert.Equal(t, 0, n)

	f.JSON(http.MethodGet, "/business/"+id.String(), http.StatusOK, map[string]any{"business_id": id, "name": "Acme"})
	b, err := c.GetBusiness(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Acme", b.Name)
	assert.Equal(t, 2, f.Count())
}

func TestPrefetch_NonJSONSuccessIsNotCached(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)
	f.Handle(http.MethodGet, "/business/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("maintenance"))
	})

	c.Prefetch(context.Background(), "/business/")

	assert.Equal(t, 0, c.CacheLen(context.Background()))
}

func TestMutations_ClearEveryCachedEntry(t *testing.T) {
	cases := []struct {
		name   string
		method string
		path   string
		call   func(c *Client, id uuid.UUID) error
	}{
		{"post", http.MethodPost, "/coupons/", func(c *Client, id uuid.UUID) error {
			_, err := c.CreateCoupon(context.Background(), domain.CouponCreate{BusinessID: id, Code: "SAVE10"})
			return err
		}},
		{"patch", http.MethodPatch, "", func(c *Client, id uuid.UUID) error {
			name := "Renamed"
			_, err := c.UpdateBusiness(context.Background(), id, domain.BusinessUpdate{Name: &name})
			return err
		}},
		{"delete", http.MethodDelete, "/media/", func(c *Client, id uuid.UUID) error {
			return c.DeleteMedia(context.Background(), id)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := testutil.NewFakePlatform(t)
			c, store := newTestClient(t, f)
			id := uuid.New()

			f.JSON(http.MethodGet, "/business/"+id.String(), http.StatusOK, map[string]any{"name": "Acme"})
			f.JSON(http.MethodGet, "/services/", http.StatusOK, []any{})
			path := tc.path
			switch {
			case path == "":
				path = "/business/" + id.String()
			case strings.HasSuffix(path, "/media/"):
				path += id.String()
			}
			f.JSON(tc.method, path, http.StatusOK, map[string]any{})

			_, err := c.GetBusiness(context.Background(), id)
			require.NoError(t, err)
			_, err = c.ListServices(context.Background(), id, 10, 0)
			require.NoError(t, err)
			n, _ := store.Len(context.Background())
			require.Equal(t, 2, n)

			require.NoError(t, tc.call(c, id))

			n, _ = store.Len(context.Background())
			assert.Equal(t, 0, n)
		})
	}
}

func TestMutation_FailureKeepsCache(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, store := newTestClient(t, f)
	id := uuid.New()
	f.JSON(http.MethodGet, "/business/"+id.String(), http.StatusOK, map[string]any{"name": "Acme"})
	f.JSON(http.MethodPatch, "/business/"+id.String(), http.StatusUnprocessableEntity, map[string]any{"detail": "bad"})

	_, err := c.GetBusiness(context.Background(), id)
	require.NoError(t, err)
	_, err = c.UpdateBusiness(context.Background(), id, domain.BusinessUpdate{})
	require.Error(t, err)

	n, _ := store.Len(context.Background())
	assert.Equal(t, 1, n)
}

func TestOperationalInfo_404IsNotFound(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)

	res := c.GetOperationalInfoByBusiness(context.Background(), uuid.New())

	assert.True(t, res.IsNotFound())
	assert.NoError(t, res.Err())
	assert.Nil(t, res.Ptr())
}

func TestOperationalInfo_Found(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)
	id := uuid.New()
	f.JSON(http.MethodGet, "/operational-info/by-business/"+id.String(), http.StatusOK, map[string]any{
		"business_id": id, "opening_hours": "09:00", "closing_hours": "17:00", "wifi_available": true,
	})

	res := c.GetOperationalInfoByBusiness(context.Background(), id)

	info, ok := res.Get()
	require.True(t, ok)
	assert.Equal(t, "09:00", info.OpeningHours)
	assert.True(t, info.WifiAvailable)
}

func TestOperationalInfo_ServerErrorIsError(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)
	id := uuid.New()
	f.JSON(http.MethodGet, "/operational-info/by-business/"+id.String(), http.StatusInternalServerError, map[string]any{"detail": "boom"})

	res := c.GetOperationalInfoByBusiness(context.Background(), id)

	assert.Equal(t, domain.StateError, res.State())
	status, ok := StatusCode(res.Err())
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestNon2xx_ErrorCarriesStatusAndBody(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)
	id := uuid.New()

	_, err := c.GetBusiness(context.Background(), id)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
	assert.Contains(t, err.Error(), "Not Found")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestPrefetch(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)
	id := uuid.New()
	f.JSON(http.MethodGet, "/business/"+id.String(), http.StatusOK, map[string]any{"name": "Acme"})

	c.Prefetch(context.Background(), BusinessPath(id))
	assert.Equal(t, 1, f.Count())

	c.Prefetch(context.Background(), BusinessPath(id))
	assert.Equal(t, 1, f.Count(), "cached path must not be fetched again")

	assert.NotPanics(t, func() {
		c.Prefetch(context.Background(), "/does-not-exist")
	})
	assert.Equal(t, 2, f.Count())
}

func TestPrefetch_UnreachableUpstreamIsSwallowed(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, cache.NewMemoryStore())

	assert.NotPanics(t, func() {
		c.Prefetch(context.Background(), "/business/")
	})
}

func TestCacheSeedScenario(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)
	id := uuid.New()
	f.JSON(http.MethodGet, "/business/"+id.String(), http.StatusOK, map[string]any{"name": "Acme"})
	f.JSON(http.MethodPatch, "/business/"+id.String(), http.StatusOK, map[string]any{"name": "Acme Ltd"})

	_, err := c.GetBusiness(context.Background(), id)
	require.NoError(t, err)

	var seeded domain.Business
	require.True(t, c.FromCache(context.Background(), BusinessPath(id), &seeded))
	assert.Equal(t, "Acme", seeded.Name)

	name := "Acme Ltd"
	_, err = c.UpdateBusiness(context.Background(), id, domain.BusinessUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, 0, c.CacheLen(context.Background()))
	assert.False(t, c.FromCache(context.Background(), BusinessPath(id), &seeded))
}

func TestCacheOnlyContext(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)
	id := uuid.New()

	_, err := c.GetBusiness(ports.CacheOnly(context.Background()), id)

	assert.ErrorIs(t, err, ports.ErrCacheMiss)
	assert.Equal(t, 0, f.Count())
}

func TestCacheOnlyContext_BlocksMutations(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)
	f.JSON(http.MethodPost, "/visibility/run", http.StatusOK, map[string]any{"visibility_score": 80})

	_, err := c.RunVisibilityCheck(ports.CacheOnly(context.Background()), uuid.New())

	assert.ErrorIs(t, err, ports.ErrCacheMiss)
	assert.Equal(t, 0, f.Count())
}

func TestSeparateStoresDoNotShareState(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	id := uuid.New()
	f.JSON(http.MethodGet, "/business/"+id.String(), http.StatusOK, map[string]any{"name": "Acme"})
	a, _ := newTestClient(t, f)
	b, _ := newTestClient(t, f)

	_, err := a.GetBusiness(context.Background(), id)
	require.NoError(t, err)

	var out domain.Business
	assert.False(t, b.FromCache(context.Background(), BusinessPath(id), &out))
}

func TestLogin_SendsJSON(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)
	userID := uuid.New()
	f.Handle(http.MethodPost, "/auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req domain.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)
		_ = json.NewEncoder(w).Encode(map[string]any{"user_id": userID})
	})

	resp, err := c.Login(context.Background(), "alice@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, userID, resp.UserID)
}

func TestGetUserByEmail_EscapesPath(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)
	f.JSON(http.MethodGet, "/users/by-email/a b@example.com", http.StatusOK, map[string]any{"email": "a b@example.com"})

	u, err := c.GetUserByEmail(context.Background(), "a b@example.com")

	require.NoError(t, err)
	assert.Equal(t, "a b@example.com", u.Email)
}

func TestUploadMedia_Multipart(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, store := newTestClient(t, f)
	id := uuid.New()
	require.NoError(t, store.Set(context.Background(), "k", []byte("{}")))

	f.Handle(http.MethodPost, "/media/upload", func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, id.String(), r.FormValue("business_id"))
		assert.Equal(t, "image", r.FormValue("media_type"))
		file, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		data, _ := io.ReadAll(file)
		assert.Equal(t, "logo.png", hdr.Filename)
		assert.Equal(t, "png-bytes", string(data))
		_ = json.NewEncoder(w).Encode(map[string]any{"business_id": id, "media_type": "image", "url": "/static/logo.png"})
	})

	asset, err := c.UploadMedia(context.Background(), ports.Upload{
		BusinessID: id,
		MediaType:  domain.MediaTypeImage,
		Filename:   "logo.png",
		Content:    strings.NewReader("png-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "/static/logo.png", asset.URL)
	assert.Equal(t, f.URL()+"/static/logo.png", c.MediaURL(asset.URL))
	n, _ := store.Len(context.Background())
	assert.Equal(t, 0, n)
}

func TestUploadMedia_RejectsUnknownType(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)

	_, err := c.UploadMedia(context.Background(), ports.Upload{MediaType: "gif", Content: strings.NewReader("")})

	assert.ErrorIs(t, err, domain.ErrInvalidMediaType)
	assert.Equal(t, 0, f.Count())
}

func TestConcurrentGets(t *testing.T) {
	f := testutil.NewFakePlatform(t)
	c, _ := newTestClient(t, f)
	id := uuid.New()
	var served atomic.Int32
	f.Handle(http.MethodGet, "/business/"+id.String(), func(w http.ResponseWriter, r *http.Request) {
		served.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{"name": "Acme"})
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := c.GetBusiness(context.Background(), id)
			assert.NoError(t, err)
			assert.Equal(t, "Acme", b.Name)
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, served.Load(), int32(1))
	assert.Equal(t, 1, c.CacheLen(context.Background()))
}
