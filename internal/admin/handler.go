package admin

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kvora/kvora/internal/registry"
)

type handler struct {
	registry *registry.Registry
}

func newHandler(r *registry.Registry) *handler {
	return &handler{registry: r}
}

func (h *handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

type connectionView struct {
	ID         string    `json:"id"`
	RemoteAddr string    `json:"remote_addr"`
	AcceptedAt time.Time `json:"accepted_at"`
}

func (h *handler) handleConnections(w http.ResponseWriter, r *http.Request) {
	entries := h.registry.Snapshot()
	views := make([]connectionView, 0, len(entries))
	for _, e := range entries {
		views = append(views, connectionView{
			ID:         e.ID,
			RemoteAddr: e.RemoteAddr,
			AcceptedAt: e.AcceptedAt,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"count":       len(views),
		"connections": views,
	})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
