package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleetflow/fleetflow/backend/spec"
)

// Routes returns the /api route tree. Process-wide middleware (logging,
// CORS, metrics, body limits) is attached by the caller; this router only
// maps paths to handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", s.ListVehicles)
			r.Post("/", s.CreateVehicle)
			r.Get("/{id}", s.GetVehicle)
			r.Put("/{id}", s.UpdateVehicle)
			r.Delete("/{id}", s.DeleteVehicle)
		})

		r.Route("/drivers", func(r chi.Router) {
			r.Get("/", s.ListDrivers)
			r.Post("/", s.CreateDriver)
			r.Put("/{id}/status", s.UpdateDriverStatus)
			r.Get("/{id}/performance", s.GetDriverPerformance)
		})

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)
			r.Get("/{id}", s.GetTrip)
			r.Put("/{id}/status", s.UpdateTripStatus)
		})

		r.Route("/maintenance", func(r chi.Router) {
			r.Get("/", s.ListMaintenance)
			r.Post("/", s.CreateMaintenance)
			r.Put("/{id}/status", s.UpdateMaintenanceStatus)
		})

		r.Route("/fuel", func(r chi.Router) {
			r.Post("/", s.CreateFuelLog)
			r.Get("/vehicle/{id}", s.ListFuelLogs)
			r.Delete("/{id}", s.DeleteFuelLog)
		})

		r.Get("/finance/vehicle-costs/{id}", s.GetVehicleCosts)
		r.Get("/dashboard/summary", s.GetDashboardSummary)
	})

	return r
}

// serveOpenAPI serves the embedded API contract. Serving it from the binary
// means the contract and the running code are always in sync.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(spec.OpenAPI)
}
