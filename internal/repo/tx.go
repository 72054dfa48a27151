package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Tx bundles the repositories bound to a single database transaction.
// Everything executed through these repos commits or rolls back together,
// which is what lets the lifecycle engines update a trip row and its
// vehicle row atomically under one set of row locks.
type Tx struct {
	Trips       TripRepo
	Vehicles    VehicleRepo
	Drivers     DriverRepo
	Maintenance MaintenanceRepo
}

// TxManager runs a function inside a database transaction. The service
// layer depends on this interface, not on pgx, so engine logic can be
// unit-tested with an in-memory fake that simply invokes fn.
type TxManager interface {
	// InTx begins a transaction, calls fn with repos bound to it, and
	// commits if fn returns nil. Any error from fn (or from commit) rolls
	// back every write made through the bound repos.
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

type pgTxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager constructs a TxManager backed by the provided pool.
func NewTxManager(pool *pgxpool.Pool) TxManager {
	return &pgTxManager{pool: pool}
}

func (m *pgTxManager) InTx(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.TxManager.InTx: begin: %w", err)
	}
	// Rollback after a successful commit is a harmless no-op.
	defer tx.Rollback(ctx) //nolint:errcheck

	bound := Tx{
		Trips:       NewTripRepo(tx),
		Vehicles:    NewVehicleRepo(tx),
		Drivers:     NewDriverRepo(tx),
		Maintenance: NewMaintenanceRepo(tx),
	}
	if err := fn(bound); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.TxManager.InTx: commit: %w", err)
	}
	return nil
}
