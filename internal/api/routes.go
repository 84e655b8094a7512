package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/seed", handler.GetSeed).Methods("GET")
	api.HandleFunc("/series", handler.GetSeries).Methods("GET")
	api.HandleFunc("/transits", handler.GetTransits).Methods("GET")
	api.HandleFunc("/report", handler.GetReport).Methods("GET")
	api.HandleFunc("/history", handler.GetHistory).Methods("GET")

	return r
}
