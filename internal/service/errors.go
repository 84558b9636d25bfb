package service

import "errors"

var (
	// ErrConfigLoad wraps every failure to obtain the runtime config.
	ErrConfigLoad = errors.New("runtime config load failed")
	// ErrAPIURLMissing means the runtime config was read but has no apiUrl.
	ErrAPIURLMissing = errors.New("runtime config has no apiUrl")
	// ErrConfigNotLoaded rejects a load trigger issued before the runtime
	// config is available.
	ErrConfigNotLoaded = errors.New("runtime config is not loaded")
	// ErrLoadInProgress rejects a load trigger while a fetch is outstanding.
	ErrLoadInProgress = errors.New("users are already loading")
	// ErrUnknownFailurePolicy is returned for an unrecognised policy name.
	ErrUnknownFailurePolicy = errors.New("unknown failure label policy")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrListingUsers          = errors.New("cannot list users")
)

// ErrStorageUnavailable is returned by the health check when the database
// does not answer.
var ErrStorageUnavailable = errors.New("storage is unavailable")
