// Package service contains the business logic for the FleetFlow API.
// Services validate inputs, enforce lifecycle rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations. The trip and maintenance services are the only writers
// of vehicle status, and they only do it inside a repo.TxManager
// transaction holding the relevant row locks.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/repo"
)

// TripService implements trip creation and the trip lifecycle engine.
//
// The plain repos (trips, vehicles, drivers) are pool-bound and serve the
// non-transactional reads; every status change runs through tx so the trip
// row, vehicle row, and driver read share one transaction.
type TripService struct {
	tx       repo.TxManager
	trips    repo.TripRepo
	vehicles repo.VehicleRepo
	drivers  repo.DriverRepo
}

// NewTripService constructs a TripService.
func NewTripService(tx repo.TxManager, trips repo.TripRepo, vehicles repo.VehicleRepo, drivers repo.DriverRepo) *TripService {
	return &TripService{tx: tx, trips: trips, vehicles: vehicles, drivers: drivers}
}

// Create validates feasibility and persists a new trip in Draft.
//
// Feasibility gates entry into the lifecycle but seizes nothing: cargo must
// fit the assigned vehicle, an assigned driver must be On Duty with an
// unexpired license. Vehicle and driver status are untouched until
// dispatch.
func (s *TripService) Create(ctx context.Context, input domain.NewTrip) (domain.Trip, error) {
	if err := validateNewTrip(input); err != nil {
		return domain.Trip{}, err
	}

	if input.VehicleID != nil {
		vehicle, err := s.vehicles.GetByID(ctx, *input.VehicleID)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: vehicle: %w", err)
		}
		if input.CargoWeight > vehicle.MaxLoadCapacity {
			return domain.Trip{}, fmt.Errorf("%w: cargo weight (%g kg) exceeds vehicle max capacity (%g kg)",
				domain.ErrCargoCapacity, input.CargoWeight, vehicle.MaxLoadCapacity)
		}
	}

	if input.DriverID != nil {
		driver, err := s.drivers.GetByID(ctx, *input.DriverID)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: driver: %w", err)
		}
		if driver.Status != domain.DriverOnDuty {
			return domain.Trip{}, fmt.Errorf("%w: driver is not %q", domain.ErrValidation, domain.DriverOnDuty)
		}
		if driver.LicenseExpiry.Before(domain.StartOfDay(time.Now())) {
			return domain.Trip{}, fmt.Errorf("%w: driver license is expired", domain.ErrValidation)
		}
	}

	trip := domain.Trip{
		Origin:      input.Origin,
		Destination: input.Destination,
		CargoWeight: input.CargoWeight,
		VehicleID:   input.VehicleID,
		DriverID:    input.DriverID,
		Revenue:     input.Revenue,
		Status:      domain.TripDraft, // always Draft, regardless of input
	}
	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// UpdateStatus drives the trip state machine and its vehicle side effects.
//
// The requested status is validated before any transaction is opened. The
// transition itself runs under an exclusive lock on the trip row; the
// vehicle is seized with a conditional update (Idle → On Trip) so two
// concurrent dispatches of the same vehicle cannot both succeed. Everything
// commits or rolls back together. Returns the trip's resulting status,
// which for an idempotent no-op is the unchanged current status.
func (s *TripService) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (domain.TripStatus, error) {
	target, err := domain.ParseTripStatus(rawStatus)
	if err != nil {
		return "", err
	}

	err = s.tx.InTx(ctx, func(tx repo.Tx) error {
		trip, err := tx.Trips.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("service.TripService.UpdateStatus: %w", err)
		}

		if err := domain.TripTransition(trip.Status, target); err != nil {
			if errors.Is(err, domain.ErrNoStatusChange) {
				// Duplicate request; succeed without side effects.
				return nil
			}
			return err
		}

		switch target {
		case domain.TripDispatched:
			return s.dispatch(ctx, tx, trip)
		case domain.TripCompleted:
			if err := tx.Trips.UpdateStatus(ctx, trip.ID, target, false, true); err != nil {
				return fmt.Errorf("service.TripService.UpdateStatus: %w", err)
			}
			return s.releaseVehicle(ctx, tx, trip)
		case domain.TripCancelled:
			if err := tx.Trips.UpdateStatus(ctx, trip.ID, target, false, false); err != nil {
				return fmt.Errorf("service.TripService.UpdateStatus: %w", err)
			}
			// A Draft trip never seized its vehicle; only a cancelled
			// dispatch releases one.
			if trip.Status == domain.TripDispatched {
				return s.releaseVehicle(ctx, tx, trip)
			}
			return nil
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return target, nil
}

// dispatch applies the Draft → Dispatched side effects inside tx: seize the
// vehicle, verify the driver, stamp start_date.
func (s *TripService) dispatch(ctx context.Context, tx repo.Tx, trip domain.Trip) error {
	if trip.VehicleID != nil {
		seized, err := tx.Vehicles.SeizeForDispatch(ctx, *trip.VehicleID)
		if err != nil {
			return fmt.Errorf("service.TripService.UpdateStatus: %w", err)
		}
		if !seized {
			// Locked re-read to name the offending state in the rejection.
			vehicle, err := tx.Vehicles.GetByIDForUpdate(ctx, *trip.VehicleID)
			if err != nil {
				return fmt.Errorf("service.TripService.UpdateStatus: %w", err)
			}
			return vehicle.Dispatchable()
		}
	}

	if trip.DriverID != nil {
		driver, err := tx.Drivers.GetByID(ctx, *trip.DriverID)
		if err != nil {
			return fmt.Errorf("service.TripService.UpdateStatus: %w", err)
		}
		// Driver status is read as a precondition only; the trip engine
		// never writes it. Duty status belongs to shift management.
		if err := driver.Assignable(time.Now()); err != nil {
			return err
		}
	}

	if err := tx.Trips.UpdateStatus(ctx, trip.ID, domain.TripDispatched, true, false); err != nil {
		return fmt.Errorf("service.TripService.UpdateStatus: %w", err)
	}
	return nil
}

// releaseVehicle returns a finished trip's vehicle to Idle.
func (s *TripService) releaseVehicle(ctx context.Context, tx repo.Tx, trip domain.Trip) error {
	if trip.VehicleID == nil {
		return nil
	}
	if err := tx.Vehicles.SetStatus(ctx, *trip.VehicleID, domain.VehicleIdle); err != nil {
		return fmt.Errorf("service.TripService.UpdateStatus: %w", err)
	}
	return nil
}

// List returns all trips with their display fields.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

func validateNewTrip(input domain.NewTrip) error {
	if strings.TrimSpace(input.Origin) == "" {
		return fmt.Errorf("%w: origin is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if input.CargoWeight < 0 {
		return fmt.Errorf("%w: cargo_weight must not be negative", domain.ErrValidation)
	}
	if input.Revenue != nil && *input.Revenue < 0 {
		return fmt.Errorf("%w: revenue must not be negative", domain.ErrValidation)
	}
	return nil
}
