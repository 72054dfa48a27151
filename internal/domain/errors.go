package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, driver not on duty).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrInvalidStatus is returned when a caller supplies a status value outside
// the enumerated set for an entity. It is checked before any transaction or
// row lock is taken. Handlers should map this to HTTP 400.
var ErrInvalidStatus = errors.New("invalid status")

// ErrStateTransition is returned when a lifecycle transition is requested but
// not permitted: the move is absent from the entity's transition machine, or
// a dependent asset fails its availability guard (vehicle not Idle at
// dispatch, driver not On Duty, license expired).
// Handlers should map this to HTTP 409.
var ErrStateTransition = errors.New("invalid state transition")

// ErrCargoCapacity is returned when a trip's cargo weight exceeds the
// assigned vehicle's maximum load capacity. Handlers should map this to
// HTTP 400.
var ErrCargoCapacity = errors.New("cargo exceeds capacity")

// ErrDuplicate is returned when an insert or update violates a uniqueness
// constraint (duplicate license plate). Handlers should map this to HTTP 409.
var ErrDuplicate = errors.New("duplicate value")

// ErrNoStatusChange reports that a requested status equals the current one.
// It is not a failure: the lifecycle engines treat it as an idempotent no-op
// and skip all side effects, so duplicate client retries succeed harmlessly.
var ErrNoStatusChange = errors.New("status unchanged")
