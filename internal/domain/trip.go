package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a trip (shipment).
// Completed and Cancelled are terminal: the trip machine defines no events
// out of them, so a finished trip can never be re-dispatched.
type TripStatus string

const (
	TripDraft      TripStatus = "Draft"
	TripDispatched TripStatus = "Dispatched"
	TripCompleted  TripStatus = "Completed"
	TripCancelled  TripStatus = "Cancelled"
)

// Trip is a shipment from origin to destination. Vehicle and driver are
// optional: a Draft trip may be created unassigned and dispatched later
// once assets are attached.
//
// StartDate is set when the trip is dispatched, EndDate when it completes.
type Trip struct {
	ID          uuid.UUID
	Origin      string
	Destination string
	CargoWeight float64
	VehicleID   *uuid.UUID
	DriverID    *uuid.UUID
	Status      TripStatus
	Revenue     *float64
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Display fields populated by list/detail queries via LEFT JOIN.
	// Zero values when the trip is unassigned.
	VehicleName     string
	LicensePlate    string
	MaxLoadCapacity float64
	DriverName      string
}

// NewTrip carries the caller-supplied fields for trip creation. Trips are
// always created in Draft regardless of input; asset seizure happens only
// at dispatch time.
type NewTrip struct {
	Origin      string
	Destination string
	CargoWeight float64
	VehicleID   *uuid.UUID
	DriverID    *uuid.UUID
	Revenue     *float64
}

// ParseTripStatus validates a raw status string against the trip
// vocabulary. Returns ErrInvalidStatus for anything outside the set.
func ParseTripStatus(s string) (TripStatus, error) {
	switch TripStatus(s) {
	case TripDraft, TripDispatched, TripCompleted, TripCancelled:
		return TripStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q must be one of: Draft, Dispatched, Completed, Cancelled",
		ErrInvalidStatus, s)
}
