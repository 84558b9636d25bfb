package service

import (
	"context"

	"github.com/MKhiriev/go-user-list/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ConfigLoader obtains the process-wide runtime configuration exactly once.
type ConfigLoader interface {
	// Load reads the configuration resource on the first call and stores it.
	// Later calls return the first outcome without touching the resource.
	// Failures are wrapped in [ErrConfigLoad]; the state stays Unloaded.
	Load(ctx context.Context) error

	// State returns the current Unloaded/Loaded state.
	State() models.ConfigState
}

// ConfigProvider is the read side of [ConfigLoader] consumed by the
// controller.
type ConfigProvider interface {
	State() models.ConfigState
}

// Notifier shows a blocking, user-visible alert.
type Notifier interface {
	Alert(message string)
}

// UserListController mediates the "load users" action: it owns the busy/idle
// label and the current user list.
type UserListController interface {
	// Trigger starts one fetch of {apiUrl}/users. The busy label is applied
	// before the request is dispatched. The returned channel yields exactly
	// one result, after the state has been reconciled, and is then closed.
	//
	// Returns [ErrConfigNotLoaded] before the runtime config is available and
	// [ErrLoadInProgress] while a previous fetch is outstanding; neither
	// issues a request or changes state.
	Trigger(ctx context.Context) (<-chan models.FetchResult, error)

	// State returns a snapshot of the load control.
	State() models.LoadState

	// Users returns a copy of the current user list.
	Users() []models.User

	// SetIdleLabel replaces the idle label. It is rejected with
	// [ErrLoadInProgress] while a fetch is outstanding.
	SetIdleLabel(label string) error
}
