package http

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-user-list/internal/app"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/service"
	"github.com/MKhiriev/go-user-list/internal/store"
	"github.com/MKhiriev/go-user-list/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cfg := testTransportConfig()

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, cfg, h.cfg)
	assert.NotNil(t, h.limiter)
}

// ─────────────────────────────────────────────
// Init: routes
// ─────────────────────────────────────────────

func TestInit_ListUsers(t *testing.T) {
	h, mocks := newTestHandler(t, testTransportConfig())
	users := []models.User{
		{ID: "1", Name: "Ann", Address: "X"},
		{ID: "2", Name: "Bo", Address: "Y"},
	}
	mocks.users.EXPECT().ListUsers(gomock.Any()).Return(users, nil)

	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/users")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))

	var got []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, users, got)
}

func TestInit_ListUsers_EmptyTableIsEmptyArray(t *testing.T) {
	h, mocks := newTestHandler(t, testTransportConfig())
	mocks.users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestInit_ListUsers_ServiceError(t *testing.T) {
	h, mocks := newTestHandler(t, testTransportConfig())
	mocks.users.EXPECT().ListUsers(gomock.Any()).
		Return(nil, errors.Join(service.ErrListingUsers, store.ErrExecutingQuery))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, app.MsgInternalServerError, body.Error)
	assert.Equal(t, "trace-42", body.TraceID)
}

func TestInit_ListUsers_Gzip(t *testing.T) {
	h, mocks := newTestHandler(t, testTransportConfig())
	mocks.users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{ID: "1", Name: "Ann"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","name":"Ann","address":""}]`, string(raw))
}

func TestInit_ListUsers_RateLimited(t *testing.T) {
	cfg := testTransportConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	h, mocks := newTestHandler(t, cfg)
	mocks.users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{}, nil).Times(1)

	router := h.Init()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/users", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
}

func TestInit_VersionIsNotRateLimited(t *testing.T) {
	cfg := testTransportConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	h, mocks := newTestHandler(t, cfg)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(3)

	router := h.Init()
	for range 3 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestInit_ServesAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.json"),
		[]byte(`{"apiUrl":"http://localhost:8080","env":"dev"}`),
		0o644,
	))

	cfg := testTransportConfig()
	cfg.AssetsDir = dir
	h, _ := newTestHandler(t, cfg)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/config.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"apiUrl":"http://localhost:8080","env":"dev"}`, rec.Body.String())
}

func TestInit_AssetsDisabledWithoutDir(t *testing.T) {
	h, _ := newTestHandler(t, testTransportConfig())

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/config.json", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_UnknownRoute(t *testing.T) {
	h, _ := newTestHandler(t, testTransportConfig())

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
