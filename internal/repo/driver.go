package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

// DriverRepo defines the persistence operations for drivers.
type DriverRepo interface {
	// Create inserts a new driver and returns the persisted record.
	Create(ctx context.Context, d domain.Driver) (domain.Driver, error)

	// GetByID retrieves a driver by primary key.
	// Returns domain.ErrNotFound if no driver with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Driver, error)

	// List returns all drivers ordered by created_at descending.
	List(ctx context.Context) ([]domain.Driver, error)

	// SetStatus writes the driver duty status directly. Driver status is
	// owned by administrative/safety actions, never by the trip engine.
	// Returns domain.ErrNotFound if the driver does not exist.
	SetStatus(ctx context.Context, id uuid.UUID, status domain.DriverStatus) error

	// TripStats returns the total and completed shipment counts for a driver.
	TripStats(ctx context.Context, driverID uuid.UUID) (total, completed int64, err error)

	// CountByStatus returns the number of drivers in each duty status.
	CountByStatus(ctx context.Context) (map[domain.DriverStatus]int, error)
}

const driverColumns = `id, name, license_number, license_expiry, safety_score,
		       region, status, created_at, updated_at`

type pgDriverRepo struct {
	db db
}

// NewDriverRepo constructs a DriverRepo backed by the provided db connection.
func NewDriverRepo(db db) DriverRepo {
	return &pgDriverRepo{db: db}
}

func (r *pgDriverRepo) Create(ctx context.Context, d domain.Driver) (domain.Driver, error) {
	const q = `
		INSERT INTO drivers (name, license_number, license_expiry, safety_score, region, status)
		VALUES (@name, @license_number, @license_expiry, @safety_score, @region, @status)
		RETURNING ` + driverColumns

	args := pgx.NamedArgs{
		"name":           d.Name,
		"license_number": d.LicenseNumber,
		"license_expiry": d.LicenseExpiry,
		"safety_score":   d.SafetyScore,
		"region":         d.Region,
		"status":         string(d.Status),
	}

	result, err := scanDriver(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Driver{}, fmt.Errorf("repo.DriverRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgDriverRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Driver, error) {
	const q = `SELECT ` + driverColumns + ` FROM drivers WHERE id = @id`

	result, err := scanDriver(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Driver{}, fmt.Errorf("repo.DriverRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgDriverRepo) List(ctx context.Context) ([]domain.Driver, error) {
	const q = `SELECT ` + driverColumns + ` FROM drivers ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DriverRepo.List: %w", err)
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DriverRepo.List: scan: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DriverRepo.List: rows: %w", err)
	}
	return drivers, nil
}

func (r *pgDriverRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.DriverStatus) error {
	const q = `UPDATE drivers SET status = @status, updated_at = now() WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)})
	if err != nil {
		return fmt.Errorf("repo.DriverRepo.SetStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DriverRepo.SetStatus: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgDriverRepo) TripStats(ctx context.Context, driverID uuid.UUID) (int64, int64, error) {
	const q = `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = @completed)
		FROM shipments
		WHERE driver_id = @driver_id`

	var total, completed int64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"driver_id": driverID,
		"completed": string(domain.TripCompleted),
	}).Scan(&total, &completed)
	if err != nil {
		return 0, 0, fmt.Errorf("repo.DriverRepo.TripStats: %w", err)
	}
	return total, completed, nil
}

func (r *pgDriverRepo) CountByStatus(ctx context.Context) (map[domain.DriverStatus]int, error) {
	const q = `SELECT status, COUNT(*) FROM drivers GROUP BY status`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DriverRepo.CountByStatus: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.DriverStatus]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("repo.DriverRepo.CountByStatus: scan: %w", err)
		}
		counts[domain.DriverStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DriverRepo.CountByStatus: rows: %w", err)
	}
	return counts, nil
}

// scanDriver maps a single database row into a domain.Driver.
// license_expiry is a DATE column; it scans to midnight UTC.
func scanDriver(s scanner) (domain.Driver, error) {
	var (
		d      domain.Driver
		id     pgtype.UUID
		expiry pgtype.Date
		status string
	)

	err := s.Scan(&id, &d.Name, &d.LicenseNumber, &expiry, &d.SafetyScore,
		&d.Region, &status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return domain.Driver{}, mapPgError(err)
	}

	d.ID = uuid.UUID(id.Bytes)
	d.LicenseExpiry = expiry.Time
	d.Status = domain.DriverStatus(status)
	return d, nil
}
