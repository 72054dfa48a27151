package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/repo"
)

// VehicleService implements registry operations for vehicles. Status here
// is only touched by explicit administrative updates; lifecycle-driven
// changes go through the trip and maintenance services.
type VehicleService struct {
	vehicles repo.VehicleRepo
}

// NewVehicleService constructs a VehicleService.
func NewVehicleService(vehicles repo.VehicleRepo) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

// Create registers a new vehicle. Status defaults to Idle when empty.
// Returns domain.ErrDuplicate if the license plate is already registered.
func (s *VehicleService) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	if v.Status == "" {
		v.Status = domain.VehicleIdle
	}
	if err := validateVehicle(v); err != nil {
		return domain.Vehicle{}, err
	}
	created, err := s.vehicles.Create(ctx, v)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.Create: %w", err)
	}
	return created, nil
}

// List returns all vehicles, including retired ones.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VehicleService.List: %w", err)
	}
	if vehicles == nil {
		return []domain.Vehicle{}, nil
	}
	return vehicles, nil
}

// GetByID returns a single vehicle by ID.
func (s *VehicleService) GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.GetByID: %w", err)
	}
	return vehicle, nil
}

// Update applies a partial administrative update.
func (s *VehicleService) Update(ctx context.Context, u domain.VehicleUpdate) (domain.Vehicle, error) {
	if u.MaxLoadCapacity != nil && *u.MaxLoadCapacity < 0 {
		return domain.Vehicle{}, fmt.Errorf("%w: max_load_capacity must not be negative", domain.ErrValidation)
	}
	if u.Odometer != nil && *u.Odometer < 0 {
		return domain.Vehicle{}, fmt.Errorf("%w: odometer must not be negative", domain.ErrValidation)
	}
	updated, err := s.vehicles.Update(ctx, u)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.Update: %w", err)
	}
	return updated, nil
}

// Delete retires the vehicle to Out of Service. The row is kept so trip
// and maintenance history stays intact.
func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.vehicles.Retire(ctx, id); err != nil {
		return fmt.Errorf("service.VehicleService.Delete: %w", err)
	}
	return nil
}

func validateVehicle(v domain.Vehicle) error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(v.LicensePlate) == "" {
		return fmt.Errorf("%w: license_plate is required", domain.ErrValidation)
	}
	if _, err := domain.ParseVehicleType(string(v.VehicleType)); err != nil {
		return err
	}
	if _, err := domain.ParseVehicleStatus(string(v.Status)); err != nil {
		return err
	}
	if v.MaxLoadCapacity < 0 {
		return fmt.Errorf("%w: max_load_capacity must not be negative", domain.ErrValidation)
	}
	if v.Odometer < 0 {
		return fmt.Errorf("%w: odometer must not be negative", domain.ErrValidation)
	}
	return nil
}
