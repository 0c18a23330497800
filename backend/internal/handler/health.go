package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/threads-be/threads/shared/logger"
	"github.com/threads-be/threads/shared/utils"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health reports liveness and whether the database answers a ping.
// Returns 503 when the database is unreachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.WithError(err).Warn("health check: database unavailable")
		utils.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Database: "unavailable"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "ok"})
}
