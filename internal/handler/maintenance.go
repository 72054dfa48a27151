package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

// maintenanceResponse is the wire shape of a service ticket with its
// vehicle display fields.
type maintenanceResponse struct {
	ID             string              `json:"id"`
	VehicleID      string              `json:"vehicle_id"`
	ServiceType    string              `json:"service_type"`
	Description    string              `json:"description,omitempty"`
	Cost           float64             `json:"cost"`
	ServiceDate    openapi_types.Date  `json:"service_date"`
	Status         string              `json:"status"`
	NextServiceDue *openapi_types.Date `json:"next_service_due"`
	VehicleName    string              `json:"vehicle_name,omitempty"`
	LicensePlate   string              `json:"license_plate,omitempty"`
	VehicleStatus  string              `json:"vehicle_status,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type createMaintenanceRequest struct {
	VehicleID      uuid.UUID           `json:"vehicle_id"`
	ServiceType    string              `json:"service_type"`
	Description    string              `json:"description"`
	Cost           float64             `json:"cost"`
	ServiceDate    openapi_types.Date  `json:"service_date"`
	Status         string              `json:"status"`
	NextServiceDue *openapi_types.Date `json:"next_service_due"`
}

// ListMaintenance handles GET /maintenance.
func (s *Server) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	records, err := s.maintenance.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	data := make([]maintenanceResponse, len(records))
	for i, rec := range records {
		data[i] = maintenanceToResponse(rec)
	}
	respondList(w, data, len(data))
}

// CreateMaintenance handles POST /maintenance.
func (s *Server) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	var req createMaintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	input := domain.NewMaintenanceRecord{
		VehicleID:   req.VehicleID,
		ServiceType: req.ServiceType,
		Description: req.Description,
		Cost:        req.Cost,
		ServiceDate: req.ServiceDate.Time,
		Status:      domain.MaintenanceStatus(req.Status),
	}
	if req.NextServiceDue != nil {
		due := req.NextServiceDue.Time
		input.NextServiceDue = &due
	}

	created, err := s.maintenance.Create(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, maintenanceToResponse(created))
}

// UpdateMaintenanceStatus handles PUT /maintenance/{id}/status — the
// maintenance lifecycle engine's HTTP entry point.
func (s *Server) UpdateMaintenanceStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid maintenance id")
		return
	}

	var req updateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	status, err := s.maintenance.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, map[string]string{"id": id.String(), "status": string(status)})
}

func maintenanceToResponse(m domain.MaintenanceRecord) maintenanceResponse {
	resp := maintenanceResponse{
		ID:            m.ID.String(),
		VehicleID:     m.VehicleID.String(),
		ServiceType:   m.ServiceType,
		Description:   m.Description,
		Cost:          m.Cost,
		ServiceDate:   openapi_types.Date{Time: m.ServiceDate},
		Status:        string(m.Status),
		VehicleName:   m.VehicleName,
		LicensePlate:  m.LicensePlate,
		VehicleStatus: string(m.VehicleStatus),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.NextServiceDue != nil {
		due := openapi_types.Date{Time: *m.NextServiceDue}
		resp.NextServiceDue = &due
	}
	return resp
}
