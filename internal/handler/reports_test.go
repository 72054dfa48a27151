package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/handler"
)

type mockFinanceServicer struct {
	vehicleCosts func(ctx context.Context, vehicleID uuid.UUID) (domain.VehicleCosts, error)
}

func (m *mockFinanceServicer) VehicleCosts(ctx context.Context, vehicleID uuid.UUID) (domain.VehicleCosts, error) {
	return m.vehicleCosts(ctx, vehicleID)
}

type mockDashboardServicer struct {
	summary func(ctx context.Context) (domain.FleetSummary, error)
}

func (m *mockDashboardServicer) Summary(ctx context.Context) (domain.FleetSummary, error) {
	return m.summary(ctx)
}

var (
	_ handler.FinanceServicer   = (*mockFinanceServicer)(nil)
	_ handler.DashboardServicer = (*mockDashboardServicer)(nil)
)

// ---- report endpoint tests -------------------------------------------------

func TestGetVehicleCosts_Success(t *testing.T) {
	vehicleID := uuid.New()
	svc := &mockFinanceServicer{
		vehicleCosts: func(_ context.Context, id uuid.UUID) (domain.VehicleCosts, error) {
			assert.Equal(t, vehicleID, id)
			return domain.VehicleCosts{
				VehicleID:       id,
				VehicleName:     "Scania R450",
				FuelCost:        350.50,
				MaintenanceCost: 1200,
				TotalCost:       1550.50,
				Revenue:         5000,
				Net:             3449.50,
			}, nil
		},
	}
	router := handler.NewServer(nil, nil, nil, nil, nil, svc, nil).Routes()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/api/finance/vehicle-costs/"+vehicleID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var data struct {
		TotalCost float64 `json:"total_cost"`
		Net       float64 `json:"net"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.InDelta(t, 1550.50, data.TotalCost, 0.001)
	assert.InDelta(t, 3449.50, data.Net, 0.001)
}

func TestGetVehicleCosts_NotFound(t *testing.T) {
	svc := &mockFinanceServicer{
		vehicleCosts: func(_ context.Context, _ uuid.UUID) (domain.VehicleCosts, error) {
			return domain.VehicleCosts{}, domain.ErrNotFound
		},
	}
	router := handler.NewServer(nil, nil, nil, nil, nil, svc, nil).Routes()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/api/finance/vehicle-costs/"+uuid.NewString(), nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestGetDashboardSummary_Success(t *testing.T) {
	svc := &mockDashboardServicer{
		summary: func(_ context.Context) (domain.FleetSummary, error) {
			return domain.FleetSummary{
				TotalVehicles: 6,
				VehiclesByStatus: map[domain.VehicleStatus]int{
					domain.VehicleIdle:   3,
					domain.VehicleOnTrip: 2,
					domain.VehicleInShop: 1,
				},
				TotalDrivers: 6,
				DriversByStatus: map[domain.DriverStatus]int{
					domain.DriverOnDuty:  4,
					domain.DriverOffDuty: 2,
				},
				ActiveTrips: 2,
			}, nil
		},
	}
	router := handler.NewServer(nil, nil, nil, nil, nil, nil, svc).Routes()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var data struct {
		TotalVehicles    int            `json:"total_vehicles"`
		VehiclesByStatus map[string]int `json:"vehicles_by_status"`
		ActiveTrips      int64          `json:"active_trips"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 6, data.TotalVehicles)
	assert.Equal(t, 2, data.VehiclesByStatus["On Trip"])
	assert.Equal(t, int64(2), data.ActiveTrips)
}
