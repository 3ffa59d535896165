package handlers

import (
	"net/http"
)

// HealthHandler godoc
// @Summary Store connectivity check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResult
// @Failure 503 {object} apierr.ResponseError "DbError"
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if store == nil {
		writeJSON(w, http.StatusOK, HealthResult{Status: "ok"})
		return
	}
	if err := store.PingContext(r.Context()); err != nil {
		writeErrorStatus(w, r, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, HealthResult{Status: "ok"})
}
