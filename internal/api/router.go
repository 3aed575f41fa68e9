package api

import (
	"distance-matrix-service/internal/api/handlers"
	"distance-matrix-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.LookupRepository, provider ports.MatrixProvider) http.Handler {
	mux := http.NewServeMux()

	distanceHandler := &handlers.DistanceHandler{Provider: provider, Repo: repo}
	lookupHandler := &handlers.LookupHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/distance", distanceHandler.Lookup)
	mux.HandleFunc("/lookups", lookupHandler.List)

	return loggingMiddleware(mux)
}
