package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-list/internal/utils"
)

type versionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}

// getServerVersion answers with the server version as plain text, or with
// the version and build metadata as JSON when the client asks for
// application/json.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)

	if r.Header.Get("Accept") != "application/json" {
		utils.WriteText(w, serverVersion, http.StatusOK)
		return
	}

	build := h.services.AppInfoService.GetBuildInfo(ctx)
	utils.WriteJSON(w, versionResponse{
		Version:     serverVersion,
		BuildDate:   build.BuildDate(),
		BuildCommit: build.BuildCommit(),
	}, http.StatusOK)
}
