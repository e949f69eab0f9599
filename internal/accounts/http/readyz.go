package http

import (
	"net/http"
	"time"

	"github.com/tuskhq/gatehouse/internal/accounts/store"
	"github.com/tuskhq/gatehouse/pkg/accountsdk"
	"github.com/tuskhq/gatehouse/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks that the database is reachable. A failed check reports 503 with a degraded status.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	accountsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	accountsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &accountsdk.HealthChecks{Database: "ok"}
		status := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, accountsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
