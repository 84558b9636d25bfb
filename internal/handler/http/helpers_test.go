package http

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-user-list/internal/config"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/mock"
	"github.com/MKhiriev/go-user-list/internal/service"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

// staticLimiter answers Allow with a fixed value.
type staticLimiter struct {
	allow bool
}

func (s *staticLimiter) Allow() bool {
	return s.allow
}

type testServices struct {
	users   *mock.MockUserService
	appInfo *mock.MockAppInfoService
}

func testTransportConfig() config.ServerTransport {
	return config.ServerTransport{
		HTTPAddress:    ":0",
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}
}

func newTestHandler(t *testing.T, cfg config.ServerTransport) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		users:   mock.NewMockUserService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		UserService:    mocks.users,
		AppInfoService: mocks.appInfo,
	}
	return NewHandler(services, cfg, logger.Nop()), mocks
}

// withBufferedLogger attaches a JSON logger writing to buf to the request
// context, the way withTraceID does.
func withBufferedLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf)
	return r.WithContext(l.WithContext(r.Context()))
}
