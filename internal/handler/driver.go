package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

// driverResponse is the wire shape of a driver. LicenseExpiry is a date-only
// field and serializes as YYYY-MM-DD.
type driverResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	LicenseNumber string             `json:"license_number"`
	LicenseExpiry openapi_types.Date `json:"license_expiry"`
	SafetyScore   int                `json:"safety_score"`
	Region        string             `json:"region,omitempty"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type createDriverRequest struct {
	Name          string             `json:"name"`
	LicenseNumber string             `json:"license_number"`
	LicenseExpiry openapi_types.Date `json:"license_expiry"`
	SafetyScore   int                `json:"safety_score"`
	Region        string             `json:"region"`
	Status        string             `json:"status"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type performanceResponse struct {
	Driver         driverResponse `json:"driver"`
	TotalTrips     int64          `json:"total_trips"`
	CompletedTrips int64          `json:"completed_trips"`
	CompletionRate float64        `json:"completion_rate"`
	TripHistory    []tripResponse `json:"trip_history"`
}

// ListDrivers handles GET /drivers.
func (s *Server) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := s.drivers.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	data := make([]driverResponse, len(drivers))
	for i, d := range drivers {
		data[i] = driverToResponse(d)
	}
	respondList(w, data, len(data))
}

// CreateDriver handles POST /drivers.
func (s *Server) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req createDriverRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.drivers.Create(r.Context(), domain.Driver{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry.Time,
		SafetyScore:   req.SafetyScore,
		Region:        req.Region,
		Status:        domain.DriverStatus(req.Status),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, driverToResponse(created))
}

// UpdateDriverStatus handles PUT /drivers/{id}/status. This is the only
// write path for duty status; the trip engine reads but never changes it.
func (s *Server) UpdateDriverStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid driver id")
		return
	}

	var req updateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	status, err := s.drivers.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"id": id.String(), "status": string(status)})
}

// GetDriverPerformance handles GET /drivers/{id}/performance.
func (s *Server) GetDriverPerformance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid driver id")
		return
	}

	perf, err := s.drivers.Performance(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	history := make([]tripResponse, len(perf.TripHistory))
	for i, t := range perf.TripHistory {
		history[i] = tripToResponse(t)
	}
	respondData(w, http.StatusOK, performanceResponse{
		Driver:         driverToResponse(perf.Driver),
		TotalTrips:     perf.TotalTrips,
		CompletedTrips: perf.CompletedTrips,
		CompletionRate: perf.CompletionRate,
		TripHistory:    history,
	})
}

func driverToResponse(d domain.Driver) driverResponse {
	return driverResponse{
		ID:            d.ID.String(),
		Name:          d.Name,
		LicenseNumber: d.LicenseNumber,
		LicenseExpiry: openapi_types.Date{Time: d.LicenseExpiry},
		SafetyScore:   d.SafetyScore,
		Region:        d.Region,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
