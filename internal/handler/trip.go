package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

// tripResponse is the wire shape of a trip, including the joined vehicle and
// driver display fields list views need.
type tripResponse struct {
	ID              string     `json:"id"`
	Origin          string     `json:"origin"`
	Destination     string     `json:"destination"`
	CargoWeight     float64    `json:"cargo_weight"`
	VehicleID       *string    `json:"vehicle_id"`
	DriverID        *string    `json:"driver_id"`
	Status          string     `json:"status"`
	Revenue         *float64   `json:"revenue"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	VehicleName     string     `json:"vehicle_name,omitempty"`
	LicensePlate    string     `json:"license_plate,omitempty"`
	MaxLoadCapacity float64    `json:"max_load_capacity,omitempty"`
	DriverName      string     `json:"driver_name,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type createTripRequest struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	CargoWeight float64    `json:"cargo_weight"`
	VehicleID   *uuid.UUID `json:"vehicle_id"`
	DriverID    *uuid.UUID `json:"driver_id"`
	Revenue     *float64   `json:"revenue"`
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	respondList(w, data, len(data))
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, tripToResponse(trip))
}

// CreateTrip handles POST /trips. Trips are always created in Draft; vehicle
// and driver are feasibility-checked but not seized.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.trips.Create(r.Context(), domain.NewTrip{
		Origin:      req.Origin,
		Destination: req.Destination,
		CargoWeight: req.CargoWeight,
		VehicleID:   req.VehicleID,
		DriverID:    req.DriverID,
		Revenue:     req.Revenue,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, tripToResponse(created))
}

// UpdateTripStatus handles PUT /trips/{id}/status — the trip lifecycle
// engine's HTTP entry point.
func (s *Server) UpdateTripStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	var req updateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	status, err := s.trips.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"id": id.String(), "status": string(status)})
}

func tripToResponse(t domain.Trip) tripResponse {
	resp := tripResponse{
		ID:              t.ID.String(),
		Origin:          t.Origin,
		Destination:     t.Destination,
		CargoWeight:     t.CargoWeight,
		Status:          string(t.Status),
		Revenue:         t.Revenue,
		StartDate:       t.StartDate,
		EndDate:         t.EndDate,
		VehicleName:     t.VehicleName,
		LicensePlate:    t.LicensePlate,
		MaxLoadCapacity: t.MaxLoadCapacity,
		DriverName:      t.DriverName,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if t.VehicleID != nil {
		id := t.VehicleID.String()
		resp.VehicleID = &id
	}
	if t.DriverID != nil {
		id := t.DriverID.String()
		resp.DriverID = &id
	}
	return resp
}
