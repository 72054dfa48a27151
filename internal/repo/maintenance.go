package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

// MaintenanceRepo defines the persistence operations for maintenance tickets.
type MaintenanceRepo interface {
	// Create inserts a new maintenance record and returns the persisted
	// record.
	Create(ctx context.Context, m domain.NewMaintenanceRecord) (domain.MaintenanceRecord, error)

	// GetByIDForUpdate retrieves a record joined with its vehicle and locks
	// both rows exclusively. Locking the vehicle row too prevents a
	// concurrent dispatch from racing the maintenance side effect.
	// Returns domain.ErrNotFound if no record with that ID exists.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.MaintenanceRecord, error)

	// List returns all records with vehicle display fields, newest first.
	List(ctx context.Context) ([]domain.MaintenanceRecord, error)

	// UpdateStatus writes the record status.
	// Returns domain.ErrNotFound if the record does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MaintenanceStatus) error

	// CostByVehicle sums the maintenance spend for a vehicle.
	CostByVehicle(ctx context.Context, vehicleID uuid.UUID) (float64, error)
}

const maintenanceColumns = `m.id, m.vehicle_id, m.service_type, m.description, m.cost,
		       m.service_date, m.status, m.next_service_due, m.created_at, m.updated_at`

type pgMaintenanceRepo struct {
	db db
}

// NewMaintenanceRepo constructs a MaintenanceRepo backed by the provided db
// connection.
func NewMaintenanceRepo(db db) MaintenanceRepo {
	return &pgMaintenanceRepo{db: db}
}

func (r *pgMaintenanceRepo) Create(ctx context.Context, m domain.NewMaintenanceRecord) (domain.MaintenanceRecord, error) {
	const q = `
		INSERT INTO maintenance_logs (vehicle_id, service_type, description, cost,
		                              service_date, status, next_service_due)
		VALUES (@vehicle_id, @service_type, @description, @cost,
		        @service_date, @status, @next_service_due)
		RETURNING id, vehicle_id, service_type, description, cost,
		          service_date, status, next_service_due, created_at, updated_at`

	args := pgx.NamedArgs{
		"vehicle_id":       m.VehicleID,
		"service_type":     m.ServiceType,
		"description":      m.Description,
		"cost":             m.Cost,
		"service_date":     m.ServiceDate,
		"status":           string(m.Status),
		"next_service_due": m.NextServiceDue,
	}

	result, err := scanMaintenance(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.MaintenanceRecord{}, fmt.Errorf("repo.MaintenanceRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgMaintenanceRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.MaintenanceRecord, error) {
	// FOR UPDATE on the join locks both the maintenance row and its vehicle
	// row inside the enclosing transaction.
	const q = `
		SELECT ` + maintenanceColumns + `, v.name, v.license_plate, v.status
		FROM maintenance_logs m
		JOIN vehicles v ON m.vehicle_id = v.id
		WHERE m.id = @id
		FOR UPDATE`

	result, err := scanMaintenanceJoined(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.MaintenanceRecord{}, fmt.Errorf("repo.MaintenanceRepo.GetByIDForUpdate: %w", err)
	}
	return result, nil
}

func (r *pgMaintenanceRepo) List(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	const q = `
		SELECT ` + maintenanceColumns + `, v.name, v.license_plate, v.status
		FROM maintenance_logs m
		JOIN vehicles v ON m.vehicle_id = v.id
		ORDER BY m.created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.MaintenanceRepo.List: %w", err)
	}
	defer rows.Close()

	var records []domain.MaintenanceRecord
	for rows.Next() {
		m, err := scanMaintenanceJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.MaintenanceRepo.List: scan: %w", err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MaintenanceRepo.List: rows: %w", err)
	}
	return records, nil
}

func (r *pgMaintenanceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MaintenanceStatus) error {
	const q = `UPDATE maintenance_logs SET status = @status, updated_at = now() WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)})
	if err != nil {
		return fmt.Errorf("repo.MaintenanceRepo.UpdateStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.MaintenanceRepo.UpdateStatus: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgMaintenanceRepo) CostByVehicle(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	const q = `SELECT COALESCE(SUM(cost), 0) FROM maintenance_logs WHERE vehicle_id = @vehicle_id`

	var sum float64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"vehicle_id": vehicleID}).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("repo.MaintenanceRepo.CostByVehicle: %w", err)
	}
	return sum, nil
}

func scanMaintenance(s scanner) (domain.MaintenanceRecord, error) {
	var (
		m           domain.MaintenanceRecord
		id          pgtype.UUID
		vehicleID   pgtype.UUID
		serviceDate pgtype.Date
		nextDue     pgtype.Date
		status      string
	)

	err := s.Scan(&id, &vehicleID, &m.ServiceType, &m.Description, &m.Cost,
		&serviceDate, &status, &nextDue, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.MaintenanceRecord{}, mapPgError(err)
	}

	m.ID = uuid.UUID(id.Bytes)
	m.VehicleID = uuid.UUID(vehicleID.Bytes)
	m.ServiceDate = serviceDate.Time
	m.Status = domain.MaintenanceStatus(status)
	if nextDue.Valid {
		d := nextDue.Time
		m.NextServiceDue = &d
	}
	return m, nil
}

func scanMaintenanceJoined(s scanner) (domain.MaintenanceRecord, error) {
	var (
		m           domain.MaintenanceRecord
		id          pgtype.UUID
		vehicleID   pgtype.UUID
		serviceDate pgtype.Date
		nextDue     pgtype.Date
		status      string
		vStatus     string
	)

	err := s.Scan(&id, &vehicleID, &m.ServiceType, &m.Description, &m.Cost,
		&serviceDate, &status, &nextDue, &m.CreatedAt, &m.UpdatedAt,
		&m.VehicleName, &m.LicensePlate, &vStatus)
	if err != nil {
		return domain.MaintenanceRecord{}, mapPgError(err)
	}

	m.ID = uuid.UUID(id.Bytes)
	m.VehicleID = uuid.UUID(vehicleID.Bytes)
	m.ServiceDate = serviceDate.Time
	m.Status = domain.MaintenanceStatus(status)
	m.VehicleStatus = domain.VehicleStatus(vStatus)
	if nextDue.Valid {
		d := nextDue.Time
		m.NextServiceDue = &d
	}
	return m, nil
}
