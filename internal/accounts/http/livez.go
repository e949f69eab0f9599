package http

import (
	"net/http"
	"time"

	"github.com/tuskhq/gatehouse/pkg/accountsdk"
	"github.com/tuskhq/gatehouse/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns 200 OK with uptime and version whenever the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	accountsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, accountsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
