package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

// TripRepo defines the persistence operations for trips (shipments).
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record.
	Create(ctx context.Context, t domain.Trip) (domain.Trip, error)

	// GetByID retrieves a trip with its joined vehicle/driver display
	// fields. Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// GetByIDForUpdate retrieves the bare trip row and takes an exclusive
	// lock on it, serializing concurrent status updates for the same trip.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips with display fields, newest first.
	List(ctx context.Context) ([]domain.Trip, error)

	// ListByDriver returns a driver's trips, newest first.
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]domain.Trip, error)

	// UpdateStatus writes the trip status; setStart/setEnd additionally
	// stamp start_date/end_date with the database clock.
	// Returns domain.ErrNotFound if the trip does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TripStatus, setStart, setEnd bool) error

	// CountActive returns the number of Dispatched trips.
	CountActive(ctx context.Context) (int64, error)

	// RevenueByVehicle sums revenue of the vehicle's Completed trips.
	RevenueByVehicle(ctx context.Context, vehicleID uuid.UUID) (float64, error)
}

// tripSelect joins the optional vehicle and driver for display. FOR UPDATE
// cannot be combined with a LEFT JOIN's nullable side, so the locking read
// uses the bare-row query below instead.
const tripSelect = `
	SELECT s.id, s.origin, s.destination, s.cargo_weight, s.vehicle_id, s.driver_id,
	       s.status, s.revenue, s.start_date, s.end_date, s.created_at, s.updated_at,
	       COALESCE(v.name, ''), COALESCE(v.license_plate, ''),
	       COALESCE(v.max_load_capacity, 0), COALESCE(d.name, '')
	FROM shipments s
	LEFT JOIN vehicles v ON s.vehicle_id = v.id
	LEFT JOIN drivers d ON s.driver_id = d.id`

type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; inside an engine transaction or a test,
// pass a pgx.Tx.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

func (r *pgTripRepo) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO shipments (origin, destination, cargo_weight, vehicle_id, driver_id, status, revenue)
		VALUES (@origin, @destination, @cargo_weight, @vehicle_id, @driver_id, @status, @revenue)
		RETURNING id, origin, destination, cargo_weight, vehicle_id, driver_id,
		          status, revenue, start_date, end_date, created_at, updated_at`

	args := pgx.NamedArgs{
		"origin":       t.Origin,
		"destination":  t.Destination,
		"cargo_weight": t.CargoWeight,
		"vehicle_id":   t.VehicleID, // nil becomes NULL
		"driver_id":    t.DriverID,
		"status":       string(t.Status),
		"revenue":      t.Revenue,
	}

	result, err := scanTripRow(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	q := tripSelect + ` WHERE s.id = @id`

	result, err := scanTripJoined(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT id, origin, destination, cargo_weight, vehicle_id, driver_id,
		       status, revenue, start_date, end_date, created_at, updated_at
		FROM shipments
		WHERE id = @id
		FOR UPDATE`

	result, err := scanTripRow(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByIDForUpdate: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	q := tripSelect + ` ORDER BY s.created_at DESC`

	return r.queryTrips(ctx, q, nil, "List")
}

func (r *pgTripRepo) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]domain.Trip, error) {
	q := tripSelect + ` WHERE s.driver_id = @driver_id ORDER BY s.created_at DESC`

	return r.queryTrips(ctx, q, pgx.NamedArgs{"driver_id": driverID}, "ListByDriver")
}

func (r *pgTripRepo) queryTrips(ctx context.Context, q string, args pgx.NamedArgs, op string) ([]domain.Trip, error) {
	var rows pgx.Rows
	var err error
	if args == nil {
		rows, err = r.db.Query(ctx, q)
	} else {
		rows, err = r.db.Query(ctx, q, args)
	}
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.%s: %w", op, err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTripJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.%s: scan: %w", op, err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.%s: rows: %w", op, err)
	}
	return trips, nil
}

func (r *pgTripRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TripStatus, setStart, setEnd bool) error {
	const q = `
		UPDATE shipments
		SET status     = @status,
		    start_date = CASE WHEN @set_start THEN now() ELSE start_date END,
		    end_date   = CASE WHEN @set_end THEN now() ELSE end_date END,
		    updated_at = now()
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":        id,
		"status":    string(status),
		"set_start": setStart,
		"set_end":   setEnd,
	})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.UpdateStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.UpdateStatus: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTripRepo) CountActive(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM shipments WHERE status = @status`

	var n int64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"status": string(domain.TripDispatched)}).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.CountActive: %w", err)
	}
	return n, nil
}

func (r *pgTripRepo) RevenueByVehicle(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	const q = `
		SELECT COALESCE(SUM(revenue), 0)
		FROM shipments
		WHERE vehicle_id = @vehicle_id AND status = @status`

	var sum float64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"vehicle_id": vehicleID,
		"status":     string(domain.TripCompleted),
	}).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.RevenueByVehicle: %w", err)
	}
	return sum, nil
}

// scanTripRow maps a bare shipments row (no joins) into a domain.Trip.
func scanTripRow(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		vehicleID pgtype.UUID
		driverID  pgtype.UUID
		status    string
	)

	err := s.Scan(&id, &t.Origin, &t.Destination, &t.CargoWeight, &vehicleID, &driverID,
		&status, &t.Revenue, &t.StartDate, &t.EndDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Trip{}, mapPgError(err)
	}

	t.ID = uuid.UUID(id.Bytes)
	t.Status = domain.TripStatus(status)
	if vehicleID.Valid {
		v := uuid.UUID(vehicleID.Bytes)
		t.VehicleID = &v
	}
	if driverID.Valid {
		d := uuid.UUID(driverID.Bytes)
		t.DriverID = &d
	}
	return t, nil
}

// scanTripJoined maps a tripSelect row, including display fields.
func scanTripJoined(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		vehicleID pgtype.UUID
		driverID  pgtype.UUID
		status    string
	)

	err := s.Scan(&id, &t.Origin, &t.Destination, &t.CargoWeight, &vehicleID, &driverID,
		&status, &t.Revenue, &t.StartDate, &t.EndDate, &t.CreatedAt, &t.UpdatedAt,
		&t.VehicleName, &t.LicensePlate, &t.MaxLoadCapacity, &t.DriverName)
	if err != nil {
		return domain.Trip{}, mapPgError(err)
	}

	t.ID = uuid.UUID(id.Bytes)
	t.Status = domain.TripStatus(status)
	if vehicleID.Valid {
		v := uuid.UUID(vehicleID.Bytes)
		t.VehicleID = &v
	}
	if driverID.Valid {
		d := uuid.UUID(driverID.Bytes)
		t.DriverID = &d
	}
	return t, nil
}
