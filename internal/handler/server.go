// Package handler implements the HTTP layer of the FleetFlow API.
// All handlers are methods on Server; methods are split into entity-specific
// files (vehicle.go, trip.go, etc.) but share the same struct so they can
// access its dependencies. Responses use a uniform envelope:
//
//	{"success": true, "data": ..., "count": n}
//	{"success": false, "error": {"message": ..., "code": ...}}
//
// Identity and role checks happen upstream; this layer trusts the caller.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

// The *Servicer interfaces define the business operations each handler
// depends on. Defining them here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.

// VehicleServicer covers the vehicle registry operations.
type VehicleServicer interface {
	Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)
	Update(ctx context.Context, u domain.VehicleUpdate) (domain.Vehicle, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DriverServicer covers the driver roster and performance operations.
type DriverServicer interface {
	Create(ctx context.Context, d domain.Driver) (domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (domain.DriverStatus, error)
	Performance(ctx context.Context, id uuid.UUID) (domain.DriverPerformance, error)
}

// TripServicer covers trip creation and the trip lifecycle engine.
type TripServicer interface {
	Create(ctx context.Context, input domain.NewTrip) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (domain.TripStatus, error)
}

// MaintenanceServicer covers maintenance tickets and their lifecycle engine.
type MaintenanceServicer interface {
	Create(ctx context.Context, input domain.NewMaintenanceRecord) (domain.MaintenanceRecord, error)
	List(ctx context.Context) ([]domain.MaintenanceRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (domain.MaintenanceStatus, error)
}

// FuelServicer covers fuel-log bookkeeping.
type FuelServicer interface {
	Create(ctx context.Context, f domain.FuelLog) (domain.FuelLog, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FinanceServicer covers per-vehicle financial summaries.
type FinanceServicer interface {
	VehicleCosts(ctx context.Context, vehicleID uuid.UUID) (domain.VehicleCosts, error)
}

// DashboardServicer covers the fleet-wide dashboard snapshot.
type DashboardServicer interface {
	Summary(ctx context.Context) (domain.FleetSummary, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in entity-specific files but all operate on this struct.
type Server struct {
	vehicles    VehicleServicer
	drivers     DriverServicer
	trips       TripServicer
	maintenance MaintenanceServicer
	fuel        FuelServicer
	finance     FinanceServicer
	dashboard   DashboardServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	vehicles VehicleServicer,
	drivers DriverServicer,
	trips TripServicer,
	maintenance MaintenanceServicer,
	fuel FuelServicer,
	finance FinanceServicer,
	dashboard DashboardServicer,
) *Server {
	return &Server{
		vehicles:    vehicles,
		drivers:     drivers,
		trips:       trips,
		maintenance: maintenance,
		fuel:        fuel,
		finance:     finance,
		dashboard:   dashboard,
	}
}
