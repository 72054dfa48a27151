package domain

import "github.com/google/uuid"

// VehicleCosts is the per-vehicle financial summary: lifetime fuel and
// maintenance spend against revenue from completed trips.
type VehicleCosts struct {
	VehicleID       uuid.UUID
	VehicleName     string
	FuelCost        float64
	MaintenanceCost float64
	TotalCost       float64
	Revenue         float64
	Net             float64
}

// FleetSummary is the dashboard snapshot of fleet state.
type FleetSummary struct {
	TotalVehicles    int
	VehiclesByStatus map[VehicleStatus]int
	TotalDrivers     int
	DriversByStatus  map[DriverStatus]int
	ActiveTrips      int64
}
