package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/mock"
	"github.com/MKhiriev/go-user-list/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockHealthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	healthSvc := mock.NewMockHealthService(ctrl)
	return NewHandler(&service.Services{HealthService: healthSvc}, logger.Nop()), healthSvc
}

// dialHealth serves h on an in-memory listener and returns a health client.
func dialHealth(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	h.Register(server)
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func checkStatus(t *testing.T, client healthpb.HealthClient, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_StartsNotServing(t *testing.T) {
	h, _ := newTestHandler(t)
	client := dialHealth(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, client, UsersServiceName))
}

func TestHandler_Refresh(t *testing.T) {
	tests := []struct {
		name     string
		checkErr error
		want     healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "healthy", want: healthpb.HealthCheckResponse_SERVING},
		{name: "database down", checkErr: errors.New("ping failed"), want: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, healthSvc := newTestHandler(t)
			healthSvc.EXPECT().Check(gomock.Any()).Return(tt.checkErr)
			client := dialHealth(t, h)

			got := h.Refresh(context.Background())

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, checkStatus(t, client, ""))
			assert.Equal(t, tt.want, checkStatus(t, client, UsersServiceName))
		})
	}
}

func TestHandler_MonitorHealth_StopsOnCancel(t *testing.T) {
	h, healthSvc := newTestHandler(t)
	healthSvc.EXPECT().Check(gomock.Any()).Return(nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.MonitorHealth(ctx, 10*time.Millisecond)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("MonitorHealth did not return after cancel")
	}
}

func TestHandler_Shutdown(t *testing.T) {
	h, healthSvc := newTestHandler(t)
	healthSvc.EXPECT().Check(gomock.Any()).Return(nil).AnyTimes()
	client := dialHealth(t, h)

	h.Refresh(context.Background())
	h.Shutdown()
	h.Refresh(context.Background())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, client, ""))
}
