package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-list/internal/adapter"
	"github.com/MKhiriev/go-user-list/internal/config"
	"github.com/MKhiriev/go-user-list/internal/logger"
)

type ClientServices struct {
	ConfigLoader       ConfigLoader
	UserListController UserListController
}

// NewClientServices wires the config loader into the user-list controller.
func NewClientServices(
	widgetCfg config.ClientWidget,
	source adapter.ConfigSource,
	fetcher adapter.UsersFetcher,
	notifier Notifier,
	logger *logger.Logger,
) (*ClientServices, error) {
	policy, err := ParseFailureLabelPolicy(widgetCfg.FailurePolicy)
	if err != nil {
		return nil, fmt.Errorf("error creating client services: %w", err)
	}

	loader := NewConfigLoader(source, logger)
	controller := NewUserListController(loader, fetcher, notifier, UserListControllerOptions{
		IdleLabel:     widgetCfg.IdleLabel,
		BusyLabel:     widgetCfg.BusyLabel,
		FailurePolicy: policy,
	}, logger)

	return &ClientServices{
		ConfigLoader:       loader,
		UserListController: controller,
	}, nil
}
