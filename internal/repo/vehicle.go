package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

// VehicleRepo defines the persistence operations for vehicles.
type VehicleRepo interface {
	// Create inserts a new vehicle and returns the persisted record.
	// Returns domain.ErrDuplicate if the license plate is already taken.
	Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)

	// GetByID retrieves a vehicle by primary key.
	// Returns domain.ErrNotFound if no vehicle with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)

	// GetByIDForUpdate retrieves a vehicle and takes an exclusive row lock
	// on it for the duration of the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)

	// List returns all vehicles ordered by created_at descending.
	List(ctx context.Context) ([]domain.Vehicle, error)

	// Update applies a partial update; nil fields are left unchanged.
	// Returns domain.ErrNotFound or domain.ErrDuplicate as appropriate.
	Update(ctx context.Context, u domain.VehicleUpdate) (domain.Vehicle, error)

	// SetStatus writes the vehicle status unconditionally.
	// Returns domain.ErrNotFound if the vehicle does not exist.
	SetStatus(ctx context.Context, id uuid.UUID, status domain.VehicleStatus) error

	// SeizeForDispatch atomically moves the vehicle from Idle to On Trip.
	// It reports false, without error, when the vehicle exists but is not
	// Idle — the caller decides how to surface that. The conditional update
	// closes the read-then-write race between concurrent dispatch attempts:
	// only one transaction can match status = 'Idle'.
	SeizeForDispatch(ctx context.Context, id uuid.UUID) (bool, error)

	// Retire soft-deletes the vehicle by setting it Out of Service.
	// The row is never physically removed.
	Retire(ctx context.Context, id uuid.UUID) error

	// CountByStatus returns the number of vehicles in each status.
	CountByStatus(ctx context.Context) (map[domain.VehicleStatus]int, error)
}

const vehicleColumns = `id, name, model, license_plate, max_load_capacity,
		       odometer, status, vehicle_type, region, created_at, updated_at`

type pgVehicleRepo struct {
	db db
}

// NewVehicleRepo constructs a VehicleRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests or inside an
// engine transaction pass a pgx.Tx.
func NewVehicleRepo(db db) VehicleRepo {
	return &pgVehicleRepo{db: db}
}

func (r *pgVehicleRepo) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	const q = `
		INSERT INTO vehicles (name, model, license_plate, max_load_capacity,
		                      odometer, status, vehicle_type, region)
		VALUES (@name, @model, @license_plate, @max_load_capacity,
		        @odometer, @status, @vehicle_type, @region)
		RETURNING ` + vehicleColumns

	args := pgx.NamedArgs{
		"name":              v.Name,
		"model":             v.Model,
		"license_plate":     v.LicensePlate,
		"max_load_capacity": v.MaxLoadCapacity,
		"odometer":          v.Odometer,
		"status":            string(v.Status),
		"vehicle_type":      string(v.VehicleType),
		"region":            v.Region,
	}

	result, err := scanVehicle(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = @id`

	result, err := scanVehicle(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgVehicleRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = @id FOR UPDATE`

	result, err := scanVehicle(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.GetByIDForUpdate: %w", err)
	}
	return result, nil
}

func (r *pgVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.List: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VehicleRepo.List: scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.List: rows: %w", err)
	}
	return vehicles, nil
}

func (r *pgVehicleRepo) Update(ctx context.Context, u domain.VehicleUpdate) (domain.Vehicle, error) {
	const q = `
		UPDATE vehicles
		SET name              = COALESCE(@name, name),
		    model             = COALESCE(@model, model),
		    license_plate     = COALESCE(@license_plate, license_plate),
		    max_load_capacity = COALESCE(@max_load_capacity, max_load_capacity),
		    odometer          = COALESCE(@odometer, odometer),
		    status            = COALESCE(@status, status),
		    vehicle_type      = COALESCE(@vehicle_type, vehicle_type),
		    region            = COALESCE(@region, region),
		    updated_at        = now()
		WHERE id = @id
		RETURNING ` + vehicleColumns

	args := pgx.NamedArgs{
		"id":                u.ID,
		"name":              u.Name,
		"model":             u.Model,
		"license_plate":     u.LicensePlate,
		"max_load_capacity": u.MaxLoadCapacity,
		"odometer":          u.Odometer,
		"status":            statusArg(u.Status),
		"vehicle_type":      typeArg(u.VehicleType),
		"region":            u.Region,
	}

	result, err := scanVehicle(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgVehicleRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.VehicleStatus) error {
	const q = `UPDATE vehicles SET status = @status, updated_at = now() WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)})
	if err != nil {
		return fmt.Errorf("repo.VehicleRepo.SetStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.VehicleRepo.SetStatus: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgVehicleRepo) SeizeForDispatch(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `
		UPDATE vehicles
		SET status = @on_trip, updated_at = now()
		WHERE id = @id AND status = @idle`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":      id,
		"on_trip": string(domain.VehicleOnTrip),
		"idle":    string(domain.VehicleIdle),
	})
	if err != nil {
		return false, fmt.Errorf("repo.VehicleRepo.SeizeForDispatch: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *pgVehicleRepo) Retire(ctx context.Context, id uuid.UUID) error {
	if err := r.SetStatus(ctx, id, domain.VehicleOutOfService); err != nil {
		return fmt.Errorf("repo.VehicleRepo.Retire: %w", err)
	}
	return nil
}

func (r *pgVehicleRepo) CountByStatus(ctx context.Context) (map[domain.VehicleStatus]int, error) {
	const q = `SELECT status, COUNT(*) FROM vehicles GROUP BY status`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.CountByStatus: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.VehicleStatus]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("repo.VehicleRepo.CountByStatus: scan: %w", err)
		}
		counts[domain.VehicleStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.CountByStatus: rows: %w", err)
	}
	return counts, nil
}

// statusArg converts an optional status into a nullable SQL argument.
func statusArg(s *domain.VehicleStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func typeArg(t *domain.VehicleType) *string {
	if t == nil {
		return nil
	}
	v := string(*t)
	return &v
}

// scanVehicle maps a single database row into a domain.Vehicle.
func scanVehicle(s scanner) (domain.Vehicle, error) {
	var (
		v      domain.Vehicle
		id     pgtype.UUID
		status string
		vtype  string
	)

	err := s.Scan(&id, &v.Name, &v.Model, &v.LicensePlate, &v.MaxLoadCapacity,
		&v.Odometer, &status, &vtype, &v.Region, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return domain.Vehicle{}, mapPgError(err)
	}

	v.ID = uuid.UUID(id.Bytes)
	v.Status = domain.VehicleStatus(status)
	v.VehicleType = domain.VehicleType(vtype)
	return v, nil
}
