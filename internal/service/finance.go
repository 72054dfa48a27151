package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/repo"
)

// FinanceService aggregates per-vehicle financials for the finance
// dashboard. Read-only.
type FinanceService struct {
	vehicles    repo.VehicleRepo
	fuel        repo.FuelRepo
	maintenance repo.MaintenanceRepo
	trips       repo.TripRepo
}

// NewFinanceService constructs a FinanceService.
func NewFinanceService(vehicles repo.VehicleRepo, fuel repo.FuelRepo, maintenance repo.MaintenanceRepo, trips repo.TripRepo) *FinanceService {
	return &FinanceService{vehicles: vehicles, fuel: fuel, maintenance: maintenance, trips: trips}
}

// VehicleCosts returns lifetime fuel and maintenance spend for a vehicle
// against revenue from its completed trips.
func (s *FinanceService) VehicleCosts(ctx context.Context, vehicleID uuid.UUID) (domain.VehicleCosts, error) {
	vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return domain.VehicleCosts{}, fmt.Errorf("service.FinanceService.VehicleCosts: %w", err)
	}

	fuelCost, err := s.fuel.CostByVehicle(ctx, vehicleID)
	if err != nil {
		return domain.VehicleCosts{}, fmt.Errorf("service.FinanceService.VehicleCosts: %w", err)
	}
	maintCost, err := s.maintenance.CostByVehicle(ctx, vehicleID)
	if err != nil {
		return domain.VehicleCosts{}, fmt.Errorf("service.FinanceService.VehicleCosts: %w", err)
	}
	revenue, err := s.trips.RevenueByVehicle(ctx, vehicleID)
	if err != nil {
		return domain.VehicleCosts{}, fmt.Errorf("service.FinanceService.VehicleCosts: %w", err)
	}

	total := fuelCost + maintCost
	return domain.VehicleCosts{
		VehicleID:       vehicle.ID,
		VehicleName:     vehicle.Name,
		FuelCost:        fuelCost,
		MaintenanceCost: maintCost,
		TotalCost:       total,
		Revenue:         revenue,
		Net:             revenue - total,
	}, nil
}
