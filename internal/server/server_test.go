package server

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-list/internal/config"
	"github.com/MKhiriev/go-user-list/internal/handler"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/mock"
	"github.com/MKhiriev/go-user-list/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandlers(t *testing.T, cfg config.ServerTransport) *handler.Handlers {
	t.Helper()
	ctrl := gomock.NewController(t)
	healthSvc := mock.NewMockHealthService(ctrl)
	healthSvc.EXPECT().Check(gomock.Any()).Return(nil).AnyTimes()

	services := &service.Services{
		UserService:    mock.NewMockUserService(ctrl),
		AppInfoService: mock.NewMockAppInfoService(ctrl),
		HealthService:  healthSvc,
	}
	handlers, err := handler.NewHandlers(services, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ServerTransport
		wantHTTP bool
		wantGRPC bool
	}{
		{
			name:     "both",
			cfg:      config.ServerTransport{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0", RateLimitRPS: 1, RateLimitBurst: 1},
			wantHTTP: true,
			wantGRPC: true,
		},
		{
			name:     "http only",
			cfg:      config.ServerTransport{HTTPAddress: "127.0.0.1:0", RateLimitRPS: 1, RateLimitBurst: 1},
			wantHTTP: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(newTestHandlers(t, tt.cfg), tt.cfg, logger.Nop())
			require.NoError(t, err)

			s := srv.(*server)
			assert.Equal(t, tt.wantHTTP, s.httpServer != nil)
			assert.Equal(t, tt.wantGRPC, s.gRPCServer != nil)
		})
	}
}

func TestNewServer_NoTransports(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.ServerTransport{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_Run_StopsOnCancel(t *testing.T) {
	cfg := config.ServerTransport{
		HTTPAddress:    "127.0.0.1:0",
		GRPCAddress:    "127.0.0.1:0",
		RateLimitRPS:   1,
		RateLimitBurst: 1,
	}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServer_Run_Empty(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.Run(context.Background()), errNoServersAreCreated)
}

func TestServer_BackgroundWorkers(t *testing.T) {
	withGRPC := config.ServerTransport{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0", RateLimitRPS: 1, RateLimitBurst: 1}
	httpOnly := config.ServerTransport{HTTPAddress: "127.0.0.1:0", RateLimitRPS: 1, RateLimitBurst: 1}

	srv, err := NewServer(newTestHandlers(t, withGRPC), withGRPC, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, srv.(*server).backgroundWorkers().Len())

	srv, err = NewServer(newTestHandlers(t, httpOnly), httpOnly, logger.Nop())
	require.NoError(t, err)
	assert.Zero(t, srv.(*server).backgroundWorkers().Len())
}
