package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHealthEndpoints_AllAnswer(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "transportconnect-api")

	for _, endpoint := range []string{"/ping", "/healthz", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, endpoint, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, endpoint)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var buildInfo BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buildInfo))
	assert.Equal(t, "transportconnect-api", buildInfo.ServiceName)
	assert.False(t, buildInfo.ServerTime.IsZero())
}

type fakeChecker struct {
	err error
}

func (f fakeChecker) CheckHealth(ctx context.Context) error { return f.err }

func TestHealthService_OneFailureMarksUnhealthy(t *testing.T) {
	svc := NewHealthService()
	svc.AddChecker("postgres", fakeChecker{})
	svc.AddChecker("redis", fakeChecker{err: fmt.Errorf("connection refused")})

	response := svc.CheckAllHealth(context.Background())

	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
	assert.Equal(t, "connection refused", response.Dependencies["redis"].Error)
}

func TestRegisterEnhancedHealthEndpoints_DetailedReflectsDependencies(t *testing.T) {
	e := echo.New()
	svc := NewHealthService()
	svc.AddChecker("postgres", fakeChecker{err: fmt.Errorf("down")})
	RegisterEnhancedHealthEndpoints(e, "transportconnect-api", "1.0.0", svc)

	req := httptest.NewRequest(http.MethodGet, "/health/detailed", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "transportconnect-api", response.Service)

	req = httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "liveness must not depend on downstreams")
}
