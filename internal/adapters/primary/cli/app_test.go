package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aivault-portal/internal/config"
	"aivault-portal/internal/core/domain"
	"aivault-portal/internal/testutil"
)

const sessionFile = "/home/owner/.aivault/session.json"

type harness struct {
	f  *testutil.FakePlatform
	fs afero.Fs
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{f: testutil.NewFakePlatform(t), fs: afero.NewMemMapFs()}
}

func (h *harness) run(args ...string) (string, error) {
	cfg := &config.Config{
		API:     config.APIConfig{BaseURL: h.f.URL(), Timeout: 5 * time.Second},
		Cache:   config.CacheConfig{Backend: "memory"},
		Session: config.SessionConfig{File: sessionFile},
		Logger:  config.LoggerConfig{Level: "error"},
	}
	var out bytes.Buffer
	err := New(cfg, h.fs, &out).Run(context.Background(), args)
	return out.String(), err
}

// login stores a session for userID and businessID through the real login command.
func (h *harness) login(t *testing.T, userID, businessID uuid.UUID) {
	t.Helper()
	h.f.JSON(http.MethodPost, "/auth/login", http.StatusOK, map[string]any{"user_id": userID})
	h.f.JSON(http.MethodGet, "/business/by-owner/"+userID.String(), http.StatusOK, map[string]any{"business_id": businessID})
	_, err := h.run("login", "--email", "owner@acme.test", "--password", "pw")
	require.NoError(t, err)
}

func TestLoginThenWhoami(t *testing.T) {
	h := newHarness(t)
	userID, businessID := uuid.New(), uuid.New()
	h.login(t, userID, businessID)

	exists, err := afero.Exists(h.fs, sessionFile)
	require.NoError(t, err)
	assert.True(t, exists)

	out, err := h.run("whoami")
	require.NoError(t, err)
	var sess domain.Session
	require.NoError(t, json.Unmarshal([]byte(out), &sess))
	assert.Equal(t, userID, *sess.UserID)
	assert.Equal(t, businessID, *sess.BusinessID)

	_, err = h.run("logout")
	require.NoError(t, err)
	_, err = h.run("whoami")
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestProtectedCommandsNeedSession(t *testing.T) {
	h := newHarness(t)

	for _, args := range [][]string{
		{"dashboard"},
		{"services", "list"},
		{"hours", "show"},
		{"coupons", "rm", uuid.NewString()},
		{"visibility", "run"},
	} {
		_, err := h.run(args...)
		assert.ErrorIs(t, err, domain.ErrNotLoggedIn, "aivault %s", strings.Join(args, " "))
	}
	assert.Equal(t, 0, h.f.Count())
}

func TestRegister(t *testing.T) {
	h := newHarness(t)
	userID, businessID := uuid.New(), uuid.New()
	h.f.JSON(http.MethodPost, "/users/", http.StatusOK, map[string]any{"user_id": userID})
	h.f.JSON(http.MethodGet, "/business/by-owner/"+userID.String(), http.StatusOK, map[string]any{"business_id": businessID})
	var patched map[string]any
	h.f.Handle(http.MethodPatch, "/business/"+businessID.String(), func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&patched)
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := h.run("register", "--email", "a@b.c", "--password", "pw", "--business-name", "Acme",
		"--business-type", "clinic", "--address", "1 Main St")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Acme", "business_type": "clinic", "address": "1 Main St"}, patched)

	out, err := h.run("whoami")
	require.NoError(t, err)
	assert.Contains(t, out, businessID.String())
}

func TestServicesList_UsesSessionBusiness(t *testing.T) {
	h := newHarness(t)
	userID, businessID := uuid.New(), uuid.New()
	h.login(t, userID, businessID)
	h.f.JSON(http.MethodGet, "/services/", http.StatusOK, []map[string]any{{"name": "Cut", "price": 20}})

	out, err := h.run("services", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"Cut"`)
	assert.Contains(t, h.f.Calls(), "GET /services/?business_id="+businessID.String()+"&limit=100&offset=0")
}

func TestYAMLOutput(t *testing.T) {
	h := newHarness(t)
	h.login(t, uuid.New(), uuid.New())
	h.f.JSON(http.MethodGet, "/services/", http.StatusOK, []map[string]any{{"name": "Cut"}})

	out, err := h.run("--output", "yaml", "services", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "services:")
	assert.Contains(t, out, "name: Cut")
}

func TestHoursSet_CreatesWhenMissing(t *testing.T) {
	h := newHarness(t)
	businessID := uuid.New()
	h.login(t, uuid.New(), businessID)

	var created map[string]any
	h.f.Handle(http.MethodPost, "/operational-info/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&created)
		_, _ = w.Write([]byte(`{"opening_hours":"09:00","closing_hours":"17:00"}`))
	})

	_, err := h.run("hours", "set", "--open", "09:00", "--close", "17:00", "--wifi", "--parking", "street")
	require.NoError(t, err)
	assert.Equal(t, businessID.String(), created["business_id"])
	assert.Equal(t, true, created["wifi_available"])
	assert.Equal(t, "street", created["neaby_parking_spot"])
}

func TestHoursSet_UpdatesExisting(t *testing.T) {
	h := newHarness(t)
	businessID := uuid.New()
	h.login(t, uuid.New(), businessID)
	path := "/operational-info/by-business/" + businessID.String()
	h.f.JSON(http.MethodGet, path, http.StatusOK, map[string]any{"opening_hours": "08:00", "closing_hours": "16:00"})
	h.f.JSON(http.MethodPatch, path, http.StatusOK, map[string]any{"opening_hours": "09:00", "closing_hours": "17:00"})

	_, err := h.run("hours", "set", "--open", "09:00", "--close", "17:00")
	require.NoError(t, err)
	assert.Contains(t, h.f.Calls(), "PATCH "+path+"?")
	assert.NotContains(t, h.f.Calls(), "POST /operational-info/?")
}

func TestMediaUpload(t *testing.T) {
	h := newHarness(t)
	businessID := uuid.New()
	h.login(t, uuid.New(), businessID)
	require.NoError(t, afero.WriteFile(h.fs, "/tmp/logo.png", []byte("png-bytes"), 0o644))

	var filename, content, mediaType string
	h.f.Handle(http.MethodPost, "/media/upload", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err == nil {
			data, _ := io.ReadAll(file)
			filename, content = header.Filename, string(data)
		}
		mediaType = r.FormValue("media_type")
		_, _ = w.Write([]byte(`{"url":"/static/logo.png","media_type":"image"}`))
	})

	out, err := h.run("media", "upload", "/tmp/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "logo.png", filename)
	assert.Equal(t, "png-bytes", content)
	assert.Equal(t, "image", mediaType)
	assert.Contains(t, out, h.f.URL()+"/static/logo.png")
}

func TestJSONLDValidate_ReportsProblems(t *testing.T) {
	h := newHarness(t)
	h.login(t, uuid.New(), uuid.New())
	feedID := uuid.New()
	h.f.JSON(http.MethodGet, "/jsonld/"+feedID.String(), http.StatusOK, map[string]any{
		"feed_id":     feedID,
		"schema_type": "Restaurant",
		"jsonld_data": `{"@context":"https://schema.org","@type":"Restaurant"}`,
	})

	out, err := h.run("jsonld", "validate", feedID.String())
	assert.ErrorContains(t, err, "problem")
	assert.Contains(t, out, "name")
}

func TestCouponsToggle(t *testing.T) {
	h := newHarness(t)
	h.login(t, uuid.New(), uuid.New())
	couponID := uuid.New()
	h.f.JSON(http.MethodGet, "/coupons/"+couponID.String(), http.StatusOK, map[string]any{"coupon_id": couponID, "is_active": true})
	var update map[string]any
	h.f.Handle(http.MethodPatch, "/coupons/"+couponID.String(), func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&update)
		_, _ = w.Write([]byte(`{"is_active":false}`))
	})

	_, err := h.run("coupons", "toggle", couponID.String())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"is_active": false}, update)
}

func TestDirectory_ListFailurePrintsEmptyPage(t *testing.T) {
	h := newHarness(t)
	h.f.JSON(http.MethodGet, "/business/", http.StatusInternalServerError, map[string]any{"detail": "down"})

	out, err := h.run("directory")
	assert.ErrorContains(t, err, "HTTP 500")
	assert.Contains(t, out, `"entries": []`)
}

func TestBusinessShow_InvalidID(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("business", "show", "42")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestCouponWindow(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	start, end, err := couponWindow("", "", now)
	require.NoError(t, err)
	assert.Equal(t, now, start.Time)
	assert.Equal(t, now.AddDate(0, 0, 30), end.Time)

	start, end, err = couponWindow("2025-04-01", "2025-04-15", now)
	require.NoError(t, err)
	assert.Equal(t, 2025, start.Year())
	assert.Equal(t, time.April, end.Month())
	assert.Equal(t, 15, end.Day())

	_, _, err = couponWindow("2025-04-15", "2025-04-01", now)
	assert.Error(t, err)

	_, _, err = couponWindow("soon", "", now)
	assert.Error(t, err)
}
