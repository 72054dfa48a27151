package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/repo"
)

// MaintenanceService implements the maintenance lifecycle engine: ticket
// status drives the vehicle's shop state, inside one transaction per
// operation.
type MaintenanceService struct {
	tx      repo.TxManager
	records repo.MaintenanceRepo
}

// NewMaintenanceService constructs a MaintenanceService.
func NewMaintenanceService(tx repo.TxManager, records repo.MaintenanceRepo) *MaintenanceService {
	return &MaintenanceService{tx: tx, records: records}
}

// Create verifies the vehicle exists, inserts the ticket, and — when the
// initial status is In Progress — pulls the vehicle into the shop, all in
// one transaction. The vehicle row is locked before the insert so a
// concurrent dispatch cannot seize the vehicle mid-creation.
func (s *MaintenanceService) Create(ctx context.Context, input domain.NewMaintenanceRecord) (domain.MaintenanceRecord, error) {
	if input.Status == "" {
		input.Status = domain.MaintenanceScheduled
	}
	if _, err := domain.ParseMaintenanceStatus(string(input.Status)); err != nil {
		return domain.MaintenanceRecord{}, err
	}
	if err := validateNewMaintenance(input); err != nil {
		return domain.MaintenanceRecord{}, err
	}

	var created domain.MaintenanceRecord
	err := s.tx.InTx(ctx, func(tx repo.Tx) error {
		vehicle, err := tx.Vehicles.GetByIDForUpdate(ctx, input.VehicleID)
		if err != nil {
			return fmt.Errorf("service.MaintenanceService.Create: vehicle: %w", err)
		}

		created, err = tx.Maintenance.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("service.MaintenanceService.Create: %w", err)
		}

		if input.Status == domain.MaintenanceInProgress && vehicle.Status != domain.VehicleInShop {
			if err := tx.Vehicles.SetStatus(ctx, vehicle.ID, domain.VehicleInShop); err != nil {
				return fmt.Errorf("service.MaintenanceService.Create: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.MaintenanceRecord{}, err
	}
	return created, nil
}

// UpdateStatus drives the maintenance state machine and its vehicle side
// effect: In Progress puts the vehicle In Shop (skipping the write when it
// already is), Completed or Scheduled releases it to Idle. The record and
// its vehicle are locked together, serializing against concurrent trip
// dispatches of the same vehicle. Returns the record's resulting status.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (domain.MaintenanceStatus, error) {
	target, err := domain.ParseMaintenanceStatus(rawStatus)
	if err != nil {
		return "", err
	}

	err = s.tx.InTx(ctx, func(tx repo.Tx) error {
		record, err := tx.Maintenance.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("service.MaintenanceService.UpdateStatus: %w", err)
		}

		if err := domain.MaintenanceTransition(record.Status, target); err != nil {
			if errors.Is(err, domain.ErrNoStatusChange) {
				return nil
			}
			return err
		}

		if err := tx.Maintenance.UpdateStatus(ctx, record.ID, target); err != nil {
			return fmt.Errorf("service.MaintenanceService.UpdateStatus: %w", err)
		}

		newVehicleStatus := domain.MaintenanceVehicleStatus(target)
		if newVehicleStatus == domain.VehicleInShop && record.VehicleStatus == domain.VehicleInShop {
			// Already in the shop; idempotent on the vehicle side.
			return nil
		}
		if err := tx.Vehicles.SetStatus(ctx, record.VehicleID, newVehicleStatus); err != nil {
			return fmt.Errorf("service.MaintenanceService.UpdateStatus: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return target, nil
}

// List returns all maintenance records with vehicle display fields.
// Always returns a non-nil slice so callers can safely range over it.
func (s *MaintenanceService) List(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.MaintenanceService.List: %w", err)
	}
	if records == nil {
		return []domain.MaintenanceRecord{}, nil
	}
	return records, nil
}

func validateNewMaintenance(input domain.NewMaintenanceRecord) error {
	if strings.TrimSpace(input.ServiceType) == "" {
		return fmt.Errorf("%w: service_type is required", domain.ErrValidation)
	}
	if input.ServiceDate.IsZero() {
		return fmt.Errorf("%w: service_date is required", domain.ErrValidation)
	}
	if input.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}
	return nil
}
