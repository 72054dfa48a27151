package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/repo"
)

// FuelService implements fuel-log bookkeeping.
type FuelService struct {
	fuel     repo.FuelRepo
	vehicles repo.VehicleRepo
}

// NewFuelService constructs a FuelService.
func NewFuelService(fuel repo.FuelRepo, vehicles repo.VehicleRepo) *FuelService {
	return &FuelService{fuel: fuel, vehicles: vehicles}
}

// Create records a fill-up. The vehicle must exist.
func (s *FuelService) Create(ctx context.Context, log domain.FuelLog) (domain.FuelLog, error) {
	if log.Liters <= 0 {
		return domain.FuelLog{}, fmt.Errorf("%w: liters must be positive", domain.ErrValidation)
	}
	if log.Cost < 0 {
		return domain.FuelLog{}, fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}
	if log.FuelDate.IsZero() {
		return domain.FuelLog{}, fmt.Errorf("%w: fuel_date is required", domain.ErrValidation)
	}

	if _, err := s.vehicles.GetByID(ctx, log.VehicleID); err != nil {
		return domain.FuelLog{}, fmt.Errorf("service.FuelService.Create: vehicle: %w", err)
	}

	created, err := s.fuel.Create(ctx, log)
	if err != nil {
		return domain.FuelLog{}, fmt.Errorf("service.FuelService.Create: %w", err)
	}
	return created, nil
}

// ListByVehicle returns a vehicle's fuel logs.
// Always returns a non-nil slice so callers can safely range over it.
func (s *FuelService) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelLog, error) {
	logs, err := s.fuel.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("service.FuelService.ListByVehicle: %w", err)
	}
	if logs == nil {
		return []domain.FuelLog{}, nil
	}
	return logs, nil
}

// Delete removes a fuel log entry.
func (s *FuelService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.fuel.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.FuelService.Delete: %w", err)
	}
	return nil
}
