package handlers

import (
	"net/http"
)

// Health handles the health check endpoint for deployment probes.
type Health struct{}

// NewHealth creates a health check handler.
func NewHealth() *Health {
	return &Health{}
}

// RegisterRoutes registers the health check route on the given mux.
func (*Health) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /info", health)
}

// health is a simple health check endpoint.
// Returns 200 OK if the process is alive.
func health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Health Ok!"))
}
