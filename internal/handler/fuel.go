package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

type fuelLogResponse struct {
	ID        string             `json:"id"`
	VehicleID string             `json:"vehicle_id"`
	Liters    float64            `json:"liters"`
	Cost      float64            `json:"cost"`
	FuelDate  openapi_types.Date `json:"fuel_date"`
	CreatedAt time.Time          `json:"created_at"`
}

type createFuelLogRequest struct {
	VehicleID uuid.UUID          `json:"vehicle_id"`
	Liters    float64            `json:"liters"`
	Cost      float64            `json:"cost"`
	FuelDate  openapi_types.Date `json:"fuel_date"`
}

// CreateFuelLog handles POST /fuel.
func (s *Server) CreateFuelLog(w http.ResponseWriter, r *http.Request) {
	var req createFuelLogRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.fuel.Create(r.Context(), domain.FuelLog{
		VehicleID: req.VehicleID,
		Liters:    req.Liters,
		Cost:      req.Cost,
		FuelDate:  req.FuelDate.Time,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, fuelLogToResponse(created))
}

// ListFuelLogs handles GET /fuel/vehicle/{id}.
func (s *Server) ListFuelLogs(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid vehicle id")
		return
	}

	logs, err := s.fuel.ListByVehicle(r.Context(), vehicleID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	data := make([]fuelLogResponse, len(logs))
	for i, l := range logs {
		data[i] = fuelLogToResponse(l)
	}
	respondList(w, data, len(data))
}

// DeleteFuelLog handles DELETE /fuel/{id}.
func (s *Server) DeleteFuelLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid fuel log id")
		return
	}

	if err := s.fuel.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"id": id.String()})
}

func fuelLogToResponse(f domain.FuelLog) fuelLogResponse {
	return fuelLogResponse{
		ID:        f.ID.String(),
		VehicleID: f.VehicleID.String(),
		Liters:    f.Liters,
		Cost:      f.Cost,
		FuelDate:  openapi_types.Date{Time: f.FuelDate},
		CreatedAt: f.CreatedAt,
	}
}
