package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/service"
)

func TestFinanceService_VehicleCosts(t *testing.T) {
	vehicle := idleTruck()

	vehicles := &mockVehicleRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Vehicle, error) {
			return vehicle, nil
		},
	}
	fuel := &mockFuelRepo{
		costByVehicle: func(_ context.Context, _ uuid.UUID) (float64, error) { return 350.50, nil },
	}
	maintenance := &mockMaintenanceRepo{
		costByVehicle: func(_ context.Context, _ uuid.UUID) (float64, error) { return 1200, nil },
	}
	trips := &mockTripRepo{
		revenueByVehicle: func(_ context.Context, _ uuid.UUID) (float64, error) { return 5000, nil },
	}
	svc := service.NewFinanceService(vehicles, fuel, maintenance, trips)

	got, err := svc.VehicleCosts(context.Background(), vehicle.ID)

	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, got.VehicleID)
	assert.Equal(t, vehicle.Name, got.VehicleName)
	assert.InDelta(t, 350.50, got.FuelCost, 0.001)
	assert.InDelta(t, 1200, got.MaintenanceCost, 0.001)
	assert.InDelta(t, 1550.50, got.TotalCost, 0.001)
	assert.InDelta(t, 5000, got.Revenue, 0.001)
	assert.InDelta(t, 3449.50, got.Net, 0.001)
}

func TestFinanceService_VehicleCosts_VehicleNotFound(t *testing.T) {
	vehicles := &mockVehicleRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Vehicle, error) {
			return domain.Vehicle{}, domain.ErrNotFound
		},
	}
	svc := service.NewFinanceService(vehicles, nil, nil, nil)

	_, err := svc.VehicleCosts(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDashboardService_Summary(t *testing.T) {
	vehicles := &mockVehicleRepo{
		countByStatus: func(_ context.Context) (map[domain.VehicleStatus]int, error) {
			return map[domain.VehicleStatus]int{
				domain.VehicleIdle:   3,
				domain.VehicleOnTrip: 2,
				domain.VehicleInShop: 1,
			}, nil
		},
	}
	drivers := &mockDriverRepo{
		countByStatus: func(_ context.Context) (map[domain.DriverStatus]int, error) {
			return map[domain.DriverStatus]int{
				domain.DriverOnDuty:  4,
				domain.DriverOffDuty: 2,
			}, nil
		},
	}
	trips := &mockTripRepo{
		countActive: func(_ context.Context) (int64, error) { return 2, nil },
	}
	svc := service.NewDashboardService(vehicles, drivers, trips)

	got, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6, got.TotalVehicles)
	assert.Equal(t, 6, got.TotalDrivers)
	assert.Equal(t, int64(2), got.ActiveTrips)
	assert.Equal(t, 2, got.VehiclesByStatus[domain.VehicleOnTrip])
}
