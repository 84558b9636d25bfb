package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-user-list/internal/config"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigSource_PicksImplementation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		wantHTTP bool
	}{
		{name: "http url", location: "http://localhost:8080/assets/config.json", wantHTTP: true},
		{name: "https url", location: "HTTPS://example.com/config.json", wantHTTP: true},
		{name: "relative path", location: "assets/config.json"},
		{name: "absolute path", location: "/etc/user-list/config.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewConfigSource(config.ClientAdapter{ConfigSource: tt.location}, logger.Nop())
			require.NoError(t, err)

			_, isHTTP := src.(*httpConfigSource)
			assert.Equal(t, tt.wantHTTP, isHTTP)
			assert.Equal(t, tt.location, src.Location())
		})
	}
}

func TestNewConfigSource_Empty(t *testing.T) {
	src, err := NewConfigSource(config.ClientAdapter{ConfigSource: "  "}, logger.Nop())

	assert.Nil(t, src)
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestHTTPConfigSource_Read(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assets/config.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"apiUrl":"https://api.example.com","env":"prod"}`))
	}))
	defer srv.Close()

	src, err := NewConfigSource(config.ClientAdapter{ConfigSource: srv.URL + "/assets/config.json"}, logger.Nop())
	require.NoError(t, err)

	cfg, err := src.Read(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.RuntimeConfig{APIURL: "https://api.example.com", Env: "prod"}, cfg)
}

func TestHTTPConfigSource_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	src, err := NewConfigSource(config.ClientAdapter{ConfigSource: srv.URL + "/assets/config.json"}, logger.Nop())
	require.NoError(t, err)

	_, err = src.Read(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestHTTPConfigSource_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`apiUrl=nope`))
	}))
	defer srv.Close()

	src, err := NewConfigSource(config.ClientAdapter{ConfigSource: srv.URL}, logger.Nop())
	require.NoError(t, err)

	_, err = src.Read(context.Background())

	assert.ErrorIs(t, err, ErrDecodeResponse)
}

func TestFileConfigSource_Read(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"apiUrl":"http://localhost:8080","env":"dev"}`), 0o600))

	src, err := NewConfigSource(config.ClientAdapter{ConfigSource: p}, logger.Nop())
	require.NoError(t, err)

	cfg, err := src.Read(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.Equal(t, "dev", cfg.Env)
}

func TestFileConfigSource_Missing(t *testing.T) {
	src, err := NewConfigSource(config.ClientAdapter{ConfigSource: filepath.Join(t.TempDir(), "nope.json")}, logger.Nop())
	require.NoError(t, err)

	_, err = src.Read(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileConfigSource_MalformedJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"apiUrl":`), 0o600))

	src, err := NewConfigSource(config.ClientAdapter{ConfigSource: p}, logger.Nop())
	require.NoError(t, err)

	_, err = src.Read(context.Background())

	assert.ErrorIs(t, err, ErrDecodeResponse)
}
