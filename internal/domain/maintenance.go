package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaintenanceStatus is the lifecycle state of a maintenance ticket.
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceCompleted  MaintenanceStatus = "Completed"
)

// MaintenanceRecord is a service ticket against a vehicle. The record's
// status drives the vehicle's shop state: In Progress pulls the vehicle
// into the shop, Completed or Scheduled releases it back to Idle.
type MaintenanceRecord struct {
	ID             uuid.UUID
	VehicleID      uuid.UUID
	ServiceType    string
	Description    string
	Cost           float64
	ServiceDate    time.Time // date only
	Status         MaintenanceStatus
	NextServiceDue *time.Time // date only
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Display fields populated by joined queries.
	VehicleName   string
	LicensePlate  string
	VehicleStatus VehicleStatus
}

// NewMaintenanceRecord carries the caller-supplied fields for ticket
// creation. Status defaults to Scheduled when empty.
type NewMaintenanceRecord struct {
	VehicleID      uuid.UUID
	ServiceType    string
	Description    string
	Cost           float64
	ServiceDate    time.Time
	Status         MaintenanceStatus
	NextServiceDue *time.Time
}

// ParseMaintenanceStatus validates a raw status string against the
// maintenance vocabulary. Returns ErrInvalidStatus for anything outside
// the set.
func ParseMaintenanceStatus(s string) (MaintenanceStatus, error) {
	switch MaintenanceStatus(s) {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted:
		return MaintenanceStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q must be one of: Scheduled, In Progress, Completed",
		ErrInvalidStatus, s)
}
