package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
	"github.com/fleetflow/fleetflow/backend/internal/handler"
)

type mockMaintenanceServicer struct {
	create       func(ctx context.Context, input domain.NewMaintenanceRecord) (domain.MaintenanceRecord, error)
	list         func(ctx context.Context) ([]domain.MaintenanceRecord, error)
	updateStatus func(ctx context.Context, id uuid.UUID, status string) (domain.MaintenanceStatus, error)
}

func (m *mockMaintenanceServicer) Create(ctx context.Context, input domain.NewMaintenanceRecord) (domain.MaintenanceRecord, error) {
	return m.create(ctx, input)
}
func (m *mockMaintenanceServicer) List(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	return m.list(ctx)
}
func (m *mockMaintenanceServicer) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (domain.MaintenanceStatus, error) {
	return m.updateStatus(ctx, id, status)
}

var _ handler.MaintenanceServicer = (*mockMaintenanceServicer)(nil)

func maintenanceRouter(svc handler.MaintenanceServicer) http.Handler {
	return handler.NewServer(nil, nil, nil, svc, nil, nil, nil).Routes()
}

func TestCreateMaintenance_201(t *testing.T) {
	record := domain.MaintenanceRecord{
		ID:          uuid.New(),
		VehicleID:   uuid.New(),
		ServiceType: "Oil Change",
		Cost:        180,
		ServiceDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:      domain.MaintenanceScheduled,
	}
	svc := &mockMaintenanceServicer{
		create: func(_ context.Context, input domain.NewMaintenanceRecord) (domain.MaintenanceRecord, error) {
			assert.Equal(t, "Oil Change", input.ServiceType)
			return record, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"vehicle_id":   record.VehicleID.String(),
		"service_type": "Oil Change",
		"cost":         180,
		"service_date": "2026-03-10",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/maintenance", body)
	rec := httptest.NewRecorder()

	maintenanceRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var got map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	// Date-only fields serialize as YYYY-MM-DD.
	assert.Equal(t, "2026-03-10", got["service_date"])
}

func TestUpdateMaintenanceStatus_200(t *testing.T) {
	id := uuid.New()
	svc := &mockMaintenanceServicer{
		updateStatus: func(_ context.Context, _ uuid.UUID, status string) (domain.MaintenanceStatus, error) {
			assert.Equal(t, "In Progress", status)
			return domain.MaintenanceInProgress, nil
		},
	}

	body := jsonBody(t, map[string]string{"status": "In Progress"})
	req := httptest.NewRequest(http.MethodPut, "/api/maintenance/"+id.String()+"/status", body)
	rec := httptest.NewRecorder()

	maintenanceRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var got map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "In Progress", got["status"])
}

func TestUpdateMaintenanceStatus_400_InvalidStatus(t *testing.T) {
	svc := &mockMaintenanceServicer{
		updateStatus: func(_ context.Context, _ uuid.UUID, _ string) (domain.MaintenanceStatus, error) {
			return "", fmt.Errorf("%w: %q must be one of: Scheduled, In Progress, Completed",
				domain.ErrInvalidStatus, "Paused")
		},
	}

	body := jsonBody(t, map[string]string{"status": "Paused"})
	req := httptest.NewRequest(http.MethodPut, "/api/maintenance/"+uuid.NewString()+"/status", body)
	rec := httptest.NewRecorder()

	maintenanceRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_STATUS", env.Error.Code)
}
