package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

// vehicleResponse is the wire shape of a vehicle.
type vehicleResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Model           string    `json:"model,omitempty"`
	LicensePlate    string    `json:"license_plate"`
	MaxLoadCapacity float64   `json:"max_load_capacity"`
	Odometer        int64     `json:"odometer"`
	Status          string    `json:"status"`
	VehicleType     string    `json:"vehicle_type"`
	Region          string    `json:"region,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type createVehicleRequest struct {
	Name            string  `json:"name"`
	Model           string  `json:"model"`
	LicensePlate    string  `json:"license_plate"`
	MaxLoadCapacity float64 `json:"max_load_capacity"`
	Odometer        int64   `json:"odometer"`
	Status          string  `json:"status"`
	VehicleType     string  `json:"vehicle_type"`
	Region          string  `json:"region"`
}

type updateVehicleRequest struct {
	Name            *string  `json:"name"`
	Model           *string  `json:"model"`
	LicensePlate    *string  `json:"license_plate"`
	MaxLoadCapacity *float64 `json:"max_load_capacity"`
	Odometer        *int64   `json:"odometer"`
	Status          *string  `json:"status"`
	VehicleType     *string  `json:"vehicle_type"`
	Region          *string  `json:"region"`
}

// ListVehicles handles GET /vehicles.
func (s *Server) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.vehicles.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	data := make([]vehicleResponse, len(vehicles))
	for i, v := range vehicles {
		data[i] = vehicleToResponse(v)
	}
	respondList(w, data, len(data))
}

// GetVehicle handles GET /vehicles/{id}.
func (s *Server) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid vehicle id")
		return
	}

	vehicle, err := s.vehicles.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, vehicleToResponse(vehicle))
}

// CreateVehicle handles POST /vehicles.
func (s *Server) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.vehicles.Create(r.Context(), domain.Vehicle{
		Name:            req.Name,
		Model:           req.Model,
		LicensePlate:    req.LicensePlate,
		MaxLoadCapacity: req.MaxLoadCapacity,
		Odometer:        req.Odometer,
		Status:          domain.VehicleStatus(req.Status),
		VehicleType:     domain.VehicleType(req.VehicleType),
		Region:          req.Region,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, vehicleToResponse(created))
}

// UpdateVehicle handles PUT /vehicles/{id}. Absent fields are left unchanged.
func (s *Server) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid vehicle id")
		return
	}

	var req updateVehicleRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	update := domain.VehicleUpdate{
		ID:              id,
		Name:            req.Name,
		Model:           req.Model,
		LicensePlate:    req.LicensePlate,
		MaxLoadCapacity: req.MaxLoadCapacity,
		Odometer:        req.Odometer,
		Region:          req.Region,
	}
	if req.Status != nil {
		status, err := domain.ParseVehicleStatus(*req.Status)
		if err != nil {
			respondError(w, r, err)
			return
		}
		update.Status = &status
	}
	if req.VehicleType != nil {
		vt, err := domain.ParseVehicleType(*req.VehicleType)
		if err != nil {
			respondError(w, r, err)
			return
		}
		update.VehicleType = &vt
	}

	updated, err := s.vehicles.Update(r.Context(), update)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, vehicleToResponse(updated))
}

// DeleteVehicle handles DELETE /vehicles/{id}. Soft delete: the vehicle is
// retired to Out of Service and its history kept.
func (s *Server) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid vehicle id")
		return
	}

	if err := s.vehicles.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"id": id.String(), "status": string(domain.VehicleOutOfService)})
}

func vehicleToResponse(v domain.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:              v.ID.String(),
		Name:            v.Name,
		Model:           v.Model,
		LicensePlate:    v.LicensePlate,
		MaxLoadCapacity: v.MaxLoadCapacity,
		Odometer:        v.Odometer,
		Status:          string(v.Status),
		VehicleType:     string(v.VehicleType),
		Region:          v.Region,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
