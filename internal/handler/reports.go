package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

type vehicleCostsResponse struct {
	VehicleID       string  `json:"vehicle_id"`
	VehicleName     string  `json:"vehicle_name"`
	FuelCost        float64 `json:"fuel_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	TotalCost       float64 `json:"total_cost"`
	Revenue         float64 `json:"revenue"`
	Net             float64 `json:"net"`
}

type fleetSummaryResponse struct {
	TotalVehicles    int                          `json:"total_vehicles"`
	VehiclesByStatus map[domain.VehicleStatus]int `json:"vehicles_by_status"`
	TotalDrivers     int                          `json:"total_drivers"`
	DriversByStatus  map[domain.DriverStatus]int  `json:"drivers_by_status"`
	ActiveTrips      int64                        `json:"active_trips"`
}

// GetVehicleCosts handles GET /finance/vehicle-costs/{id}.
func (s *Server) GetVehicleCosts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid vehicle id")
		return
	}

	costs, err := s.finance.VehicleCosts(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, vehicleCostsResponse{
		VehicleID:       costs.VehicleID.String(),
		VehicleName:     costs.VehicleName,
		FuelCost:        costs.FuelCost,
		MaintenanceCost: costs.MaintenanceCost,
		TotalCost:       costs.TotalCost,
		Revenue:         costs.Revenue,
		Net:             costs.Net,
	})
}

// GetDashboardSummary handles GET /dashboard/summary.
func (s *Server) GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.dashboard.Summary(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, fleetSummaryResponse{
		TotalVehicles:    summary.TotalVehicles,
		VehiclesByStatus: summary.VehiclesByStatus,
		TotalDrivers:     summary.TotalDrivers,
		DriversByStatus:  summary.DriversByStatus,
		ActiveTrips:      summary.ActiveTrips,
	})
}
