package admin

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kvora/kvora/internal/registry"
	"github.com/kvora/kvora/internal/telemetry/metric"
)

type fakeAddr string

func (a fakeAddr) Network() string { return "tcp" }
func (a fakeAddr) String() string  { return string(a) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleHealthz(t *testing.T) {
	reg := registry.New()
	router := NewRouter(&RouterConfig{Registry: reg, Metrics: metric.NewRegistry(), Logger: testLogger()})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestHandleConnections(t *testing.T) {
	reg := registry.New()
	id := registry.NewID()
	reg.Register(id, fakeAddr("10.0.0.1:5555"))

	router := NewRouter(&RouterConfig{Registry: reg, Metrics: metric.NewRegistry(), Logger: testLogger()})

	req := httptest.NewRequest(http.MethodGet, "/connections", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Count       int `json:"count"`
		Connections []struct {
			ID         string `json:"id"`
			RemoteAddr string `json:"remote_addr"`
		} `json:"connections"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Count != 1 {
		t.Fatalf("count = %d, want 1", body.Count)
	}
	if body.Connections[0].ID != id {
		t.Errorf("connection id = %q, want %q", body.Connections[0].ID, id)
	}
	if body.Connections[0].RemoteAddr != "10.0.0.1:5555" {
		t.Errorf("remote addr = %q, want 10.0.0.1:5555", body.Connections[0].RemoteAddr)
	}
}

func TestHandleMetrics(t *testing.T) {
	reg := registry.New()
	metrics := metric.NewRegistry()
	router := NewRouter(&RouterConfig{Registry: reg, Metrics: metrics, Logger: testLogger()})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestServer_ShutdownWithoutStart(t *testing.T) {
	reg := registry.New()
	router := NewRouter(&RouterConfig{Registry: reg, Metrics: metric.NewRegistry(), Logger: testLogger()})

	s := New("127.0.0.1:0", router)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() on an unstarted server should not error, got: %v", err)
	}
}
