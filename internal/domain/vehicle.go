// Package domain contains the core data types for the FleetFlow application.
// This package owns the status vocabulary and lifecycle rules for every
// entity and is imported by every other internal package (repo, service,
// handler). It has no knowledge of SQL or HTTP.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VehicleStatus is the availability state of a fleet vehicle.
// The string values are stored verbatim in the database and returned on the
// wire, so they are the single source of truth for boundary validation too.
type VehicleStatus string

const (
	VehicleIdle         VehicleStatus = "Idle"
	VehicleOnTrip       VehicleStatus = "On Trip"
	VehicleInShop       VehicleStatus = "In Shop"
	VehicleOutOfService VehicleStatus = "Out of Service"
)

// VehicleType classifies a vehicle by load profile.
type VehicleType string

const (
	VehicleTruck VehicleType = "Truck"
	VehicleVan   VehicleType = "Van"
	VehicleBike  VehicleType = "Bike"
)

// Vehicle is a registered fleet asset. Status is mutated only by the trip
// and maintenance lifecycle engines, or by an explicit administrative
// update; vehicles are never deleted, only retired to Out of Service.
type Vehicle struct {
	ID              uuid.UUID
	Name            string
	Model           string
	LicensePlate    string
	MaxLoadCapacity float64
	Odometer        int64
	Status          VehicleStatus
	VehicleType     VehicleType
	Region          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// VehicleUpdate carries a partial administrative update. Nil fields are
// left unchanged.
type VehicleUpdate struct {
	ID              uuid.UUID
	Name            *string
	Model           *string
	LicensePlate    *string
	MaxLoadCapacity *float64
	Odometer        *int64
	Status          *VehicleStatus
	VehicleType     *VehicleType
	Region          *string
}

// Dispatchable is the vehicle availability guard: a vehicle may only be
// seized for a dispatch when Idle. Pure predicate, no side effects.
// The returned error names the vehicle and its offending status.
func (v Vehicle) Dispatchable() error {
	if v.Status != VehicleIdle {
		return fmt.Errorf("%w: vehicle %s is currently %q, not %q",
			ErrStateTransition, v.ID, v.Status, VehicleIdle)
	}
	return nil
}

// ParseVehicleStatus validates a raw status string against the vehicle
// vocabulary. Returns ErrInvalidStatus for anything outside the set.
func ParseVehicleStatus(s string) (VehicleStatus, error) {
	switch VehicleStatus(s) {
	case VehicleIdle, VehicleOnTrip, VehicleInShop, VehicleOutOfService:
		return VehicleStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q is not a vehicle status", ErrInvalidStatus, s)
}

// ParseVehicleType validates a raw vehicle type string.
func ParseVehicleType(s string) (VehicleType, error) {
	switch VehicleType(s) {
	case VehicleTruck, VehicleVan, VehicleBike:
		return VehicleType(s), nil
	}
	return "", fmt.Errorf("%w: %q is not a vehicle type", ErrValidation, s)
}
