package domain

import (
	"time"

	"github.com/google/uuid"
)

// FuelLog is a single refuelling entry for a vehicle.
type FuelLog struct {
	ID        uuid.UUID
	VehicleID uuid.UUID
	Liters    float64
	Cost      float64
	FuelDate  time.Time // date only
	CreatedAt time.Time
}
