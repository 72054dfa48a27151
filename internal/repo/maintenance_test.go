package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/repo"
)

func maintenanceFixture(vehicleID uuid.UUID) domain.NewMaintenanceRecord {
	return domain.NewMaintenanceRecord{
		VehicleID:   vehicleID,
		ServiceType: "Oil Change",
		Description: "Scheduled service",
		Cost:        180,
		ServiceDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:      domain.MaintenanceScheduled,
	}
}

func TestMaintenanceRepo_Create(t *testing.T) {
	tx := testTx(t)
	vehicle, err := repo.NewVehicleRepo(tx).Create(context.Background(), vehicleFixture())
	require.NoError(t, err)
	r := repo.NewMaintenanceRepo(tx)

	got, err := r.Create(context.Background(), maintenanceFixture(vehicle.ID))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, vehicle.ID, got.VehicleID)
	assert.Equal(t, domain.MaintenanceScheduled, got.Status)
	assert.Nil(t, got.NextServiceDue)
}

func TestMaintenanceRepo_GetByIDForUpdate_JoinsVehicle(t *testing.T) {
	tx := testTx(t)
	vehicle, err := repo.NewVehicleRepo(tx).Create(context.Background(), vehicleFixture())
	require.NoError(t, err)
	r := repo.NewMaintenanceRepo(tx)

	created, err := r.Create(context.Background(), maintenanceFixture(vehicle.ID))
	require.NoError(t, err)

	got, err := r.GetByIDForUpdate(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, vehicle.Name, got.VehicleName)
	assert.Equal(t, vehicle.LicensePlate, got.LicensePlate)
	assert.Equal(t, domain.VehicleIdle, got.VehicleStatus)
}

func TestMaintenanceRepo_UpdateStatus(t *testing.T) {
	tx := testTx(t)
	vehicle, err := repo.NewVehicleRepo(tx).Create(context.Background(), vehicleFixture())
	require.NoError(t, err)
	r := repo.NewMaintenanceRepo(tx)
	ctx := context.Background()

	created, err := r.Create(ctx, maintenanceFixture(vehicle.ID))
	require.NoError(t, err)

	require.NoError(t, r.UpdateStatus(ctx, created.ID, domain.MaintenanceInProgress))

	got, err := r.GetByIDForUpdate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceInProgress, got.Status)
}

func TestMaintenanceRepo_CostByVehicle(t *testing.T) {
	tx := testTx(t)
	vehicle, err := repo.NewVehicleRepo(tx).Create(context.Background(), vehicleFixture())
	require.NoError(t, err)
	r := repo.NewMaintenanceRepo(tx)
	ctx := context.Background()

	_, err = r.Create(ctx, maintenanceFixture(vehicle.ID))
	require.NoError(t, err)
	second := maintenanceFixture(vehicle.ID)
	second.Cost = 320
	_, err = r.Create(ctx, second)
	require.NoError(t, err)

	total, err := r.CostByVehicle(ctx, vehicle.ID)

	require.NoError(t, err)
	assert.InDelta(t, 500.0, total, 0.001)
}
