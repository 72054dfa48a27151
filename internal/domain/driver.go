package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DriverStatus is the duty state of a driver. Duty status is managed
// directly through the driver endpoints (shift scheduling, safety actions)
// and is deliberately never written by the trip lifecycle engine, which
// only reads it as a dispatch precondition.
type DriverStatus string

const (
	DriverOnDuty    DriverStatus = "On Duty"
	DriverOffDuty   DriverStatus = "Off Duty"
	DriverSuspended DriverStatus = "Suspended"
)

// Driver is a licensed fleet driver.
type Driver struct {
	ID            uuid.UUID
	Name          string
	LicenseNumber string
	LicenseExpiry time.Time // date only; time-of-day is always midnight UTC
	SafetyScore   int
	Region        string
	Status        DriverStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Assignable is the driver availability guard: a driver may only be newly
// assigned to a dispatch when On Duty with an unexpired license. The expiry
// comparison is against start-of-day of asOf, so a license expiring today is
// still valid. Pure predicate, no side effects.
func (d Driver) Assignable(asOf time.Time) error {
	if d.Status != DriverOnDuty {
		return fmt.Errorf("%w: driver %s is currently %q, not %q",
			ErrStateTransition, d.ID, d.Status, DriverOnDuty)
	}
	if d.LicenseExpiry.Before(StartOfDay(asOf)) {
		return fmt.Errorf("%w: driver %s license expired on %s",
			ErrStateTransition, d.ID, d.LicenseExpiry.Format("2006-01-02"))
	}
	return nil
}

// StartOfDay truncates t to midnight UTC. License expiry dates are stored
// as dates, so all comparisons happen on UTC day boundaries.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDriverStatus validates a raw status string against the driver
// vocabulary. Returns ErrInvalidStatus for anything outside the set.
func ParseDriverStatus(s string) (DriverStatus, error) {
	switch DriverStatus(s) {
	case DriverOnDuty, DriverOffDuty, DriverSuspended:
		return DriverStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q is not a driver status", ErrInvalidStatus, s)
}

// DriverPerformance is the profile plus trip KPIs served by the safety
// dashboard.
type DriverPerformance struct {
	Driver
	TotalTrips     int64
	CompletedTrips int64
	CompletionRate float64 // percentage, one decimal place
	TripHistory    []Trip
}
