package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/config"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler answers with build information for the service
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		ServiceName: serviceName,
		Version:     config.GetEnv("APP_VERSION", "development"),
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}

	return func(c echo.Context) error {
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// RegisterHealthEndpoints registers the liveness endpoints shared by every
// binary. Dependency-aware readiness lives under /health via
// RegisterEnhancedHealthEndpoints.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	e.GET("/ping", NewPingHandler(serviceName))
	e.GET("/healthz", alive)
	e.GET("/ready", alive)
}

func alive(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
