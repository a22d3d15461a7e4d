// Package http exposes an engine over HTTP: POST binary bytes to
// /decode and get the decoded value as JSON, POST a JSON value to
// /encode and get the wire bytes back. Request counters are served on
// /metrics.
package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/wicker"
)

// Server wires an engine to the HTTP routes.
type Server struct {
	Engine *wicker.Engine

	requests *prometheus.CounterVec
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine *wicker.Engine) http.Handler {
	server := &Server{
		Engine: engine,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wicker_requests_total",
				Help: "Codec requests served, by operation and outcome.",
			},
			[]string{"op", "outcome"},
		),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(server.requests)

	r := chi.NewRouter()
	r.Post("/decode", server.Decode)
	r.Post("/encode", server.Encode)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Decode handles POST /decode: the request body is the binary input,
// the response is the decoded value as JSON.
func (s *Server) Decode(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		s.requests.WithLabelValues("decode", "error").Inc()
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	value, err := s.Engine.ParseBuffer(data)
	if err != nil {
		s.requests.WithLabelValues("decode", "error").Inc()
		http.Error(w, fmt.Sprintf("Decode error: %v", err), http.StatusUnprocessableEntity)
		slog.Warn("decode failed", "error", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		s.requests.WithLabelValues("decode", "error").Inc()
		slog.Error("response write failed", "error", err)
		return
	}
	s.requests.WithLabelValues("decode", "ok").Inc()
}

// Encode handles POST /encode: the request body is a JSON value, the
// response is the encoded wire bytes.
func (s *Server) Encode(w http.ResponseWriter, r *http.Request) {
	var value map[string]any
	if err := json.NewDecoder(r.Body).Decode(&value); err != nil {
		s.requests.WithLabelValues("encode", "error").Inc()
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	wire, err := s.Engine.EncodeObject(value)
	if err != nil {
		s.requests.WithLabelValues("encode", "error").Inc()
		http.Error(w, fmt.Sprintf("Encode error: %v", err), http.StatusUnprocessableEntity)
		slog.Warn("encode failed", "error", err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(wire); err != nil {
		s.requests.WithLabelValues("encode", "error").Inc()
		slog.Error("response write failed", "error", err)
		return
	}
	s.requests.WithLabelValues("encode", "ok").Inc()
}
