package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/xavierca1/agency-site/internal/infra/database"
)

// QueueStatus é satisfeito por *queue.RabbitMQ.
type QueueStatus interface {
	Healthy() bool
}

type HealthHandler struct {
	Store     interface{ Active() database.Kind }
	Queue     QueueStatus
	Version   string
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Store        database.Kind     `json:"store"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(store interface{ Active() database.Kind }, q QueueStatus, version string) *HealthHandler {
	return &HealthHandler{
		Store:     store,
		Queue:     q,
		Version:   version,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Banco: não dispara probe, só informa a escolha atual
	kind := h.Store.Active()
	switch kind {
	case database.KindPrimary:
		deps["database"] = "healthy"
	case database.KindFallback:
		deps["database"] = "fallback"
	default:
		deps["database"] = "not selected"
	}

	// RabbitMQ
	if h.Queue != nil {
		if h.Queue.Healthy() {
			deps["rabbitmq"] = "healthy"
		} else {
			deps["rabbitmq"] = "unhealthy: connection closed"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	status := "healthy"
	if kind == database.KindFallback || deps["rabbitmq"] == "unhealthy: connection closed" {
		status = "degraded"
	}

	response := HealthResponse{
		Status:       status,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Store:        kind,
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
