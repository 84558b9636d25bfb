package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-list/internal/app"
	"github.com/MKhiriev/go-user-list/internal/service"
	"github.com/MKhiriev/go-user-list/internal/store"
	"github.com/MKhiriev/go-user-list/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrUserAlreadyExists:    http.StatusConflict,

	ErrRateLimited:      http.StatusTooManyRequests,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a JSON body carrying
// the request trace id. Internal error details are not exposed for 5xx.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := app.MsgInternalServerError
	if status < http.StatusInternalServerError {
		message = err.Error()
	}

	traceID, _ := utils.GetTraceIDFromContext(r.Context())
	utils.WriteJSON(w, errorResponse{Error: message, TraceID: traceID}, status)
}
