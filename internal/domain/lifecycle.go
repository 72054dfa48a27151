package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
)

// The trip and maintenance transition sets live here, behind a single
// checker per entity, so the engines, boundary validation, and tests all
// consult one machine instead of duplicating literal status lists.

// Trip machine events. Each inbound target status maps to exactly one
// event; a target with no event (Draft) is unreachable once left.
const (
	tripEventDispatch = "dispatch"
	tripEventComplete = "complete"
	tripEventCancel   = "cancel"
)

var tripEvents = fsm.Events{
	{Name: tripEventDispatch, Src: []string{string(TripDraft)}, Dst: string(TripDispatched)},
	{Name: tripEventComplete, Src: []string{string(TripDispatched)}, Dst: string(TripCompleted)},
	{Name: tripEventCancel, Src: []string{string(TripDraft), string(TripDispatched)}, Dst: string(TripCancelled)},
}

var tripEventByTarget = map[TripStatus]string{
	TripDispatched: tripEventDispatch,
	TripCompleted:  tripEventComplete,
	TripCancelled:  tripEventCancel,
}

// TripTransition validates the move from one trip status to another.
//
// A same-status request returns ErrNoStatusChange so callers can skip side
// effects and report success. Any move not in the machine (including every
// move out of Completed or Cancelled, and any move back into Draft) returns
// ErrStateTransition.
func TripTransition(from, to TripStatus) error {
	if from == to {
		return ErrNoStatusChange
	}
	event, ok := tripEventByTarget[to]
	if !ok {
		return fmt.Errorf("%w: trip cannot re-enter %q", ErrStateTransition, to)
	}
	m := fsm.NewFSM(string(from), tripEvents, nil)
	if err := m.Event(context.Background(), event); err != nil {
		var invalid fsm.InvalidEventError
		if errors.As(err, &invalid) {
			return fmt.Errorf("%w: trip cannot move from %q to %q", ErrStateTransition, from, to)
		}
		return fmt.Errorf("domain.TripTransition: %w", err)
	}
	return nil
}

// Maintenance machine events. Every non-identical pair of maintenance
// statuses is legal; the machine exists so the legal set has one owner and
// the source of each event is explicit.
const (
	maintEventBegin      = "begin"
	maintEventComplete   = "complete"
	maintEventReschedule = "reschedule"
)

var maintenanceEvents = fsm.Events{
	{Name: maintEventBegin, Src: []string{string(MaintenanceScheduled), string(MaintenanceCompleted)}, Dst: string(MaintenanceInProgress)},
	{Name: maintEventComplete, Src: []string{string(MaintenanceScheduled), string(MaintenanceInProgress)}, Dst: string(MaintenanceCompleted)},
	{Name: maintEventReschedule, Src: []string{string(MaintenanceInProgress), string(MaintenanceCompleted)}, Dst: string(MaintenanceScheduled)},
}

var maintenanceEventByTarget = map[MaintenanceStatus]string{
	MaintenanceInProgress: maintEventBegin,
	MaintenanceCompleted:  maintEventComplete,
	MaintenanceScheduled:  maintEventReschedule,
}

// MaintenanceTransition validates the move from one maintenance status to
// another. A same-status request returns ErrNoStatusChange.
func MaintenanceTransition(from, to MaintenanceStatus) error {
	if from == to {
		return ErrNoStatusChange
	}
	event, ok := maintenanceEventByTarget[to]
	if !ok {
		return fmt.Errorf("%w: maintenance cannot enter %q", ErrStateTransition, to)
	}
	m := fsm.NewFSM(string(from), maintenanceEvents, nil)
	if err := m.Event(context.Background(), event); err != nil {
		var invalid fsm.InvalidEventError
		if errors.As(err, &invalid) {
			return fmt.Errorf("%w: maintenance cannot move from %q to %q", ErrStateTransition, from, to)
		}
		return fmt.Errorf("domain.MaintenanceTransition: %w", err)
	}
	return nil
}

// MaintenanceVehicleStatus returns the vehicle status implied by a
// maintenance ticket entering the given status: In Progress pulls the
// vehicle into the shop, anything else releases it to Idle.
func MaintenanceVehicleStatus(to MaintenanceStatus) VehicleStatus {
	if to == MaintenanceInProgress {
		return VehicleInShop
	}
	return VehicleIdle
}
