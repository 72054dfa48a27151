package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/repo"
)

func driverFixture() domain.Driver {
	return domain.Driver{
		Name:          "Maria Weber",
		LicenseNumber: "B-" + uuid.NewString()[:8],
		LicenseExpiry: time.Date(2028, 5, 1, 0, 0, 0, 0, time.UTC),
		SafetyScore:   92,
		Region:        "North",
		Status:        domain.DriverOnDuty,
	}
}

func TestDriverRepo_Create(t *testing.T) {
	r := repo.NewDriverRepo(testTx(t))
	ctx := context.Background()

	input := driverFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, input.Name, got.Name)
	// license_expiry is a DATE column; the round-trip keeps the day.
	assert.True(t, got.LicenseExpiry.Equal(input.LicenseExpiry),
		"LicenseExpiry mismatch: got %v want %v", got.LicenseExpiry, input.LicenseExpiry)
}

func TestDriverRepo_SetStatus(t *testing.T) {
	r := repo.NewDriverRepo(testTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, driverFixture())
	require.NoError(t, err)

	require.NoError(t, r.SetStatus(ctx, created.ID, domain.DriverSuspended))

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DriverSuspended, got.Status)
}

func TestDriverRepo_SetStatus_NotFound(t *testing.T) {
	r := repo.NewDriverRepo(testTx(t))

	err := r.SetStatus(context.Background(), uuid.New(), domain.DriverOnDuty)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDriverRepo_TripStats(t *testing.T) {
	tx := testTx(t)
	_, driver, trip := tripFixtures(t, tx)
	trips := repo.NewTripRepo(tx)
	drivers := repo.NewDriverRepo(tx)
	ctx := context.Background()

	total, completed, err := drivers.TripStats(ctx, driver.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Zero(t, completed)

	require.NoError(t, trips.UpdateStatus(ctx, trip.ID, domain.TripCompleted, false, true))

	total, completed, err = drivers.TripStats(ctx, driver.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(1), completed)
}
