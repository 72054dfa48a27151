package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

// FuelRepo defines the persistence operations for fuel logs.
type FuelRepo interface {
	Create(ctx context.Context, f domain.FuelLog) (domain.FuelLog, error)

	// ListByVehicle returns a vehicle's fuel logs, newest fill-up first.
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelLog, error)

	// Delete removes a fuel log. Returns domain.ErrNotFound if it does not
	// exist. Fuel logs are plain expense entries, so hard delete is fine.
	Delete(ctx context.Context, id uuid.UUID) error

	// CostByVehicle sums the fuel spend for a vehicle.
	CostByVehicle(ctx context.Context, vehicleID uuid.UUID) (float64, error)
}

type pgFuelRepo struct {
	db db
}

// NewFuelRepo constructs a FuelRepo backed by the provided db connection.
func NewFuelRepo(db db) FuelRepo {
	return &pgFuelRepo{db: db}
}

func (r *pgFuelRepo) Create(ctx context.Context, f domain.FuelLog) (domain.FuelLog, error) {
	const q = `
		INSERT INTO fuel_logs (vehicle_id, liters, cost, fuel_date)
		VALUES (@vehicle_id, @liters, @cost, @fuel_date)
		RETURNING id, vehicle_id, liters, cost, fuel_date, created_at`

	args := pgx.NamedArgs{
		"vehicle_id": f.VehicleID,
		"liters":     f.Liters,
		"cost":       f.Cost,
		"fuel_date":  f.FuelDate,
	}

	result, err := scanFuelLog(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.FuelLog{}, fmt.Errorf("repo.FuelRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgFuelRepo) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.FuelLog, error) {
	const q = `
		SELECT id, vehicle_id, liters, cost, fuel_date, created_at
		FROM fuel_logs
		WHERE vehicle_id = @vehicle_id
		ORDER BY fuel_date DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"vehicle_id": vehicleID})
	if err != nil {
		return nil, fmt.Errorf("repo.FuelRepo.ListByVehicle: %w", err)
	}
	defer rows.Close()

	var logs []domain.FuelLog
	for rows.Next() {
		f, err := scanFuelLog(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.FuelRepo.ListByVehicle: scan: %w", err)
		}
		logs = append(logs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.FuelRepo.ListByVehicle: rows: %w", err)
	}
	return logs, nil
}

func (r *pgFuelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM fuel_logs WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.FuelRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.FuelRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgFuelRepo) CostByVehicle(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	const q = `SELECT COALESCE(SUM(cost), 0) FROM fuel_logs WHERE vehicle_id = @vehicle_id`

	var sum float64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"vehicle_id": vehicleID}).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("repo.FuelRepo.CostByVehicle: %w", err)
	}
	return sum, nil
}

func scanFuelLog(s scanner) (domain.FuelLog, error) {
	var (
		f         domain.FuelLog
		id        pgtype.UUID
		vehicleID pgtype.UUID
		fuelDate  pgtype.Date
	)

	err := s.Scan(&id, &vehicleID, &f.Liters, &f.Cost, &fuelDate, &f.CreatedAt)
	if err != nil {
		return domain.FuelLog{}, mapPgError(err)
	}

	f.ID = uuid.UUID(id.Bytes)
	f.VehicleID = uuid.UUID(vehicleID.Bytes)
	f.FuelDate = fuelDate.Time
	return f, nil
}
