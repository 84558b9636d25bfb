package adapter

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-user-list/internal/config"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/utils"
	"github.com/MKhiriev/go-user-list/models"
)

type httpUsersAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUsersAdapter constructs the resty implementation of [UsersFetcher].
// adapterCfg.RequestTimeout bounds each request; zero means no timeout.
func NewHTTPUsersAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) UsersFetcher {
	return &httpUsersAdapter{
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout),
		logger: logger,
	}
}

// FetchUsers implements [UsersFetcher]. It sends one GET to url and decodes
// the body as a JSON array of users.
func (h *httpUsersAdapter) FetchUsers(ctx context.Context, url string) ([]models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, &FetchError{
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(string(resp.Body())),
			Err:        ErrDecodeResponse,
		}
	}

	h.logger.Debug().Int("count", len(users)).Str("url", url).Msg("users fetched")
	return users, nil
}
