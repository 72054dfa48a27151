package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetflow/fleetflow/backend/internal/middleware"
)

// The collectors are registered on the process-global registry, so the test
// only asserts passthrough behavior: the wrapped handler's response must
// reach the client unchanged.
func TestMetrics_PassesResponseThrough(t *testing.T) {
	teapot := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := middleware.NewMetrics()(teapot)

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
