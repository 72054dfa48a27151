package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Each mock exposes one
// func field per method; tests set only the fields they need. A nil field
// that gets called panics, which is a test bug worth hearing about.

// ---- TxManager -------------------------------------------------------------

// mockTxManager runs fn against a prepared repo.Tx bundle. There is no real
// transaction; atomicity is the engine's responsibility to request, and
// these tests assert it does so by counting InTx calls.
type mockTxManager struct {
	tx    repo.Tx
	calls int
}

func (m *mockTxManager) InTx(_ context.Context, fn func(tx repo.Tx) error) error {
	m.calls++
	return fn(m.tx)
}

var _ repo.TxManager = (*mockTxManager)(nil)

// ---- TripRepo --------------------------------------------------------------

type mockTripRepo struct {
	create           func(ctx context.Context, t domain.Trip) (domain.Trip, error)
	getByID          func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	getByIDForUpdate func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list             func(ctx context.Context) ([]domain.Trip, error)
	listByDriver     func(ctx context.Context, driverID uuid.UUID) ([]domain.Trip, error)
	updateStatus     func(ctx context.Context, id uuid.UUID, status domain.TripStatus, setStart, setEnd bool) error
	countActive      func(ctx context.Context) (int64, error)
	revenueByVehicle func(ctx context.Context, vehicleID uuid.UUID) (float64, error)
}

func (m *mockTripRepo) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByIDForUpdate(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]domain.Trip, error) {
	return m.listByDriver(ctx, driverID)
}
func (m *mockTripRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TripStatus, setStart, setEnd bool) error {
	return m.updateStatus(ctx, id, status, setStart, setEnd)
}
func (m *mockTripRepo) CountActive(ctx context.Context) (int64, error) {
	return m.countActive(ctx)
}
func (m *mockTripRepo) RevenueByVehicle(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	return m.revenueByVehicle(ctx, vehicleID)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- VehicleRepo -----------------------------------------------------------

type mockVehicleRepo struct {
	create           func(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	getByID          func(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)
	getByIDForUpdate func(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)
	list             func(ctx context.Context) ([]domain.Vehicle, error)
	update           func(ctx context.Context, u domain.VehicleUpdate) (domain.Vehicle, error)
	setStatus        func(ctx context.Context, id uuid.UUID, status domain.VehicleStatus) error
	seizeForDispatch func(ctx context.Context, id uuid.UUID) (bool, error)
	retire           func(ctx context.Context, id uuid.UUID) error
	countByStatus    func(ctx context.Context) (map[domain.VehicleStatus]int, error)
}

func (m *mockVehicleRepo) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	return m.create(ctx, v)
}
func (m *mockVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	return m.getByID(ctx, id)
}
func (m *mockVehicleRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	return m.getByIDForUpdate(ctx, id)
}
func (m *mockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	return m.list(ctx)
}
func (m *mockVehicleRepo) Update(ctx context.Context, u domain.VehicleUpdate) (domain.Vehicle, error) {
	return m.update(ctx, u)
}
func (m *mockVehicleRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.VehicleStatus) error {
	return m.setStatus(ctx, id, status)
}
func (m *mockVehicleRepo) SeizeForDispatch(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.seizeForDispatch(ctx, id)
}
func (m *mockVehicleRepo) Retire(ctx context.Context, id uuid.UUID) error {
	return m.retire(ctx, id)
}
func (m *mockVehicleRepo) CountByStatus(ctx context.Context) (map[domain.VehicleStatus]int, error) {
	return m.countByStatus(ctx)
}

var _ repo.VehicleRepo = (*mockVehicleRepo)(nil)

// ---- DriverRepo ------------------------------------------------------------

type mockDriverRepo struct {
	create        func(ctx context.Context, d domain.Driver) (domain.Driver, error)
	getByID       func(ctx context.Context, id uuid.UUID) (domain.Driver, error)
	list          func(ctx context.Context) ([]domain.Driver, error)
	setStatus     func(ctx context.Context, id uuid.UUID, status domain.DriverStatus) error
	tripStats     func(ctx context.Context, driverID uuid.UUID) (int64, int64, error)
	countByStatus func(ctx context.Context) (map[domain.DriverStatus]int, error)
}

func (m *mockDriverRepo) Create(ctx context.Context, d domain.Driver) (domain.Driver, error) {
	return m.create(ctx, d)
}
func (m *mockDriverRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Driver, error) {
	return m.getByID(ctx, id)
}
func (m *mockDriverRepo) List(ctx context.Context) ([]domain.Driver, error) {
	return m.list(ctx)
}
func (m *mockDriverRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.DriverStatus) error {
	return m.setStatus(ctx, id, status)
}
func (m *mockDriverRepo) TripStats(ctx context.Context, driverID uuid.UUID) (int64, int64, error) {
	return m.tripStats(ctx, driverID)
}
func (m *mockDriverRepo) CountByStatus(ctx context.Context) (map[domain.DriverStatus]int, error) {
	return m.countByStatus(ctx)
}

var _ repo.DriverRepo = (*mockDriverRepo)(nil)

// ---- MaintenanceRepo -------------------------------------------------------

type mockMaintenanceRepo struct {
	create           func(ctx context.Context, rec domain.NewMaintenanceRecord) (domain.MaintenanceRecord, error)
	getByIDForUpdate func(ctx context.Context, id uuid.UUID) (domain.MaintenanceRecord, error)
	list             func(ctx context.Context) ([]domain.MaintenanceRecord, error)
	updateStatus     func(ctx context.Context, id uuid.UUID, status domain.MaintenanceStatus) error
	costByVehicle    func(ctx context.Context, vehicleID uuid.UUID) (float64, error)
}

func (m *mockMaintenanceRepo) Create(ctx context.Context, rec domain.NewMaintenanceRecord) (domain.MaintenanceRecord, error) {
	return m.create(ctx, rec)
}
func (m *mockMaintenanceRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.MaintenanceRecord, error) {
	return m.getByIDForUpdate(ctx, id)
}
func (m *mockMaintenanceRepo) List(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	return m.list(ctx)
}
func (m *mockMaintenanceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MaintenanceStatus) error {
	return m.updateStatus(ctx, id, status)
}
func (m *mockMaintenanceRepo) CostByVehicle(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	return m.costByVehicle(ctx, vehicleID)
}

var _ repo.MaintenanceRepo = (*mockMaintenanceRepo)(nil)

// ---- FuelRepo --------------------------------------------------------------

type mockFuelRepo struct {
	create        func(ctx context.Context, f domain.FuelLog) (domain.FuelLog, error)
	listByVehicle func(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelLog, error)
	delete        func(ctx context.Context, id uuid.UUID) error
	costByVehicle func(ctx context.Context, vehicleID uuid.UUID) (float64, error)
}

func (m *mockFuelRepo) Create(ctx context.Context, f domain.FuelLog) (domain.FuelLog, error) {
	return m.create(ctx, f)
}
func (m *mockFuelRepo) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelLog, error) {
	return m.listByVehicle(ctx, vehicleID)
}
func (m *mockFuelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockFuelRepo) CostByVehicle(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	return m.costByVehicle(ctx, vehicleID)
}

var _ repo.FuelRepo = (*mockFuelRepo)(nil)
