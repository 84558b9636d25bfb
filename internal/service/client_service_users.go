package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-user-list/internal/adapter"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/models"
)

const usersPath = "/users"

// fetchErrorAlertFormat is the text of the alert raised on a failed fetch.
const fetchErrorAlertFormat = "Error when fetching users: %d"

type userListController struct {
	configProvider ConfigProvider
	fetcher        adapter.UsersFetcher
	notifier       Notifier
	policy         FailureLabelPolicy
	busyLabel      string

	mu        sync.Mutex
	phase     models.LoadPhase
	label     string
	idleLabel string
	users     []models.User

	logger *logger.Logger
}

// UserListControllerOptions holds the labels and failure policy of the
// controller.
type UserListControllerOptions struct {
	IdleLabel     string
	BusyLabel     string
	FailurePolicy FailureLabelPolicy
}

// NewUserListController creates an idle controller showing opts.IdleLabel
// with an empty user list.
func NewUserListController(
	configProvider ConfigProvider,
	fetcher adapter.UsersFetcher,
	notifier Notifier,
	opts UserListControllerOptions,
	logger *logger.Logger,
) UserListController {
	return &userListController{
		configProvider: configProvider,
		fetcher:        fetcher,
		notifier:       notifier,
		policy:         opts.FailurePolicy,
		busyLabel:      opts.BusyLabel,
		phase:          models.PhaseIdle,
		label:          opts.IdleLabel,
		idleLabel:      opts.IdleLabel,
		users:          []models.User{},
		logger:         logger,
	}
}

// Trigger implements UserListController.
func (c *userListController) Trigger(ctx context.Context) (<-chan models.FetchResult, error) {
	cfg, loaded := c.configProvider.State().Config()
	if !loaded {
		c.logger.Warn().Msg("load users rejected: runtime config is not loaded")
		return nil, ErrConfigNotLoaded
	}

	c.mu.Lock()
	if c.phase == models.PhaseLoading {
		c.mu.Unlock()
		c.logger.Debug().Msg("load users rejected: already loading")
		return nil, ErrLoadInProgress
	}
	previousLabel := c.idleLabel
	c.phase = models.PhaseLoading
	c.label = c.busyLabel
	c.mu.Unlock()

	url := cfg.APIURL + usersPath
	c.logger.Debug().Str("url", url).Msg("fetching users")

	results := make(chan models.FetchResult, 1)
	go func() {
		defer close(results)

		users, err := c.fetcher.FetchUsers(ctx, url)
		if err != nil {
			results <- c.fail(previousLabel, err)
			return
		}
		results <- c.succeed(previousLabel, users)
	}()

	return results, nil
}

func (c *userListController) succeed(previousLabel string, users []models.User) models.FetchResult {
	replaced := make([]models.User, len(users))
	copy(replaced, users)

	c.mu.Lock()
	c.users = replaced
	c.label = previousLabel
	c.phase = models.PhaseIdle
	c.mu.Unlock()

	c.logger.Info().Int("count", len(replaced)).Msg("users loaded")
	return models.FetchResult{Users: c.Users()}
}

func (c *userListController) fail(previousLabel string, err error) models.FetchResult {
	status, body := 0, ""
	var fetchErr *adapter.FetchError
	if errors.As(err, &fetchErr) {
		status, body = fetchErr.StatusCode, fetchErr.Body
	}

	c.logger.Err(err).
		Int("status", status).
		Str("body", body).
		Msg("error when fetching users")

	c.mu.Lock()
	if c.policy == RestoreLabelOnFailure {
		c.label = previousLabel
	}
	c.phase = models.PhaseIdle
	c.mu.Unlock()

	if c.notifier != nil {
		c.notifier.Alert(fmt.Sprintf(fetchErrorAlertFormat, status))
	}

	return models.FetchResult{Err: err}
}

// State implements UserListController.
func (c *userListController) State() models.LoadState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.LoadState{Phase: c.phase, Label: c.label}
}

// Users implements UserListController.
func (c *userListController) Users() []models.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	users := make([]models.User, len(c.users))
	copy(users, c.users)
	return users
}

// SetIdleLabel implements UserListController.
func (c *userListController) SetIdleLabel(label string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == models.PhaseLoading {
		return ErrLoadInProgress
	}

	c.idleLabel = label
	c.label = label
	return nil
}
