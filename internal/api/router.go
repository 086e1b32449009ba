package api

import (
	"net/http"

	"delivery-analytics-service/internal/api/handlers"
	"delivery-analytics-service/internal/lookup"
	"delivery-analytics-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.DeliveryRepository,
	mads ports.MadDelayStore,
	cache ports.ResultCache,
	depots *lookup.DepotTable,
	carriers *lookup.CarrierTable,
) http.Handler {
	mux := http.NewServeMux()

	recordHandler := &handlers.RecordHandler{Repo: repo}
	analysisHandler := &handlers.AnalysisHandler{
		Repo:     repo,
		Mads:     mads,
		Cache:    cache,
		Depots:   depots,
		Carriers: carriers,
	}
	madHandler := &handlers.MadDelayHandler{Store: mads}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/tours", recordHandler.ListTours)
	mux.HandleFunc("/tasks", recordHandler.ListTasks)
	mux.HandleFunc("/analysis", analysisHandler.Analyze)
	mux.HandleFunc("/mad-delays", madHandler.Handle)

	return loggingMiddleware(mux)
}
