package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/pkg/respond"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store  Pinger
	logger *zap.Logger
}

func NewHealthHandler(store Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		respond.Fail(w, r, http.StatusServiceUnavailable, "store unavailable", map[string]string{"status": "down"})
		return
	}
	respond.Success(w, r, http.StatusOK, "ok", map[string]string{"status": "ok"})
}
