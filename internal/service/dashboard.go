package service

import (
	"context"
	"fmt"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/repo"
)

// DashboardService produces the fleet-wide summary for the manager
// dashboard. Read-only.
type DashboardService struct {
	vehicles repo.VehicleRepo
	drivers  repo.DriverRepo
	trips    repo.TripRepo
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(vehicles repo.VehicleRepo, drivers repo.DriverRepo, trips repo.TripRepo) *DashboardService {
	return &DashboardService{vehicles: vehicles, drivers: drivers, trips: trips}
}

// Summary returns fleet counts grouped by status plus the active trip count.
func (s *DashboardService) Summary(ctx context.Context) (domain.FleetSummary, error) {
	vehicleCounts, err := s.vehicles.CountByStatus(ctx)
	if err != nil {
		return domain.FleetSummary{}, fmt.Errorf("service.DashboardService.Summary: %w", err)
	}
	driverCounts, err := s.drivers.CountByStatus(ctx)
	if err != nil {
		return domain.FleetSummary{}, fmt.Errorf("service.DashboardService.Summary: %w", err)
	}
	active, err := s.trips.CountActive(ctx)
	if err != nil {
		return domain.FleetSummary{}, fmt.Errorf("service.DashboardService.Summary: %w", err)
	}

	summary := domain.FleetSummary{
		VehiclesByStatus: vehicleCounts,
		DriversByStatus:  driverCounts,
		ActiveTrips:      active,
	}
	for _, n := range vehicleCounts {
		summary.TotalVehicles += n
	}
	for _, n := range driverCounts {
		summary.TotalDrivers += n
	}
	return summary, nil
}
