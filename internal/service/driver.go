package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/repo"
)

// DriverService implements roster operations for drivers. Duty status is
// written here, and only here — the trip engine reads it but never changes
// it (shift scheduling owns it, decoupled from trip lifecycle).
type DriverService struct {
	drivers repo.DriverRepo
	trips   repo.TripRepo
}

// NewDriverService constructs a DriverService.
func NewDriverService(drivers repo.DriverRepo, trips repo.TripRepo) *DriverService {
	return &DriverService{drivers: drivers, trips: trips}
}

// Create registers a new driver. Status defaults to Off Duty when empty.
func (s *DriverService) Create(ctx context.Context, d domain.Driver) (domain.Driver, error) {
	if d.Status == "" {
		d.Status = domain.DriverOffDuty
	}
	if err := validateDriver(d); err != nil {
		return domain.Driver{}, err
	}
	created, err := s.drivers.Create(ctx, d)
	if err != nil {
		return domain.Driver{}, fmt.Errorf("service.DriverService.Create: %w", err)
	}
	return created, nil
}

// List returns all drivers.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DriverService) List(ctx context.Context) ([]domain.Driver, error) {
	drivers, err := s.drivers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DriverService.List: %w", err)
	}
	if drivers == nil {
		return []domain.Driver{}, nil
	}
	return drivers, nil
}

// UpdateStatus sets a driver's duty status directly.
func (s *DriverService) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (domain.DriverStatus, error) {
	status, err := domain.ParseDriverStatus(rawStatus)
	if err != nil {
		return "", err
	}
	if err := s.drivers.SetStatus(ctx, id, status); err != nil {
		return "", fmt.Errorf("service.DriverService.UpdateStatus: %w", err)
	}
	return status, nil
}

// Performance returns a driver's profile with trip KPIs and history.
func (s *DriverService) Performance(ctx context.Context, id uuid.UUID) (domain.DriverPerformance, error) {
	driver, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return domain.DriverPerformance{}, fmt.Errorf("service.DriverService.Performance: %w", err)
	}

	total, completed, err := s.drivers.TripStats(ctx, id)
	if err != nil {
		return domain.DriverPerformance{}, fmt.Errorf("service.DriverService.Performance: %w", err)
	}

	history, err := s.trips.ListByDriver(ctx, id)
	if err != nil {
		return domain.DriverPerformance{}, fmt.Errorf("service.DriverService.Performance: %w", err)
	}
	if history == nil {
		history = []domain.Trip{}
	}

	perf := domain.DriverPerformance{
		Driver:         driver,
		TotalTrips:     total,
		CompletedTrips: completed,
		TripHistory:    history,
	}
	if total > 0 {
		// One decimal place, matching the dashboard display.
		perf.CompletionRate = math.Round(float64(completed)/float64(total)*1000) / 10
	}
	return perf, nil
}

func validateDriver(d domain.Driver) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(d.LicenseNumber) == "" {
		return fmt.Errorf("%w: license_number is required", domain.ErrValidation)
	}
	if d.LicenseExpiry.IsZero() {
		return fmt.Errorf("%w: license_expiry is required", domain.ErrValidation)
	}
	if d.SafetyScore < 0 || d.SafetyScore > 100 {
		return fmt.Errorf("%w: safety_score must be between 0 and 100", domain.ErrValidation)
	}
	if _, err := domain.ParseDriverStatus(string(d.Status)); err != nil {
		return err
	}
	return nil
}
