package server

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewGracefulServer_DefaultsShutdownTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), 8080, 0)
	assert.Equal(t, 10*time.Second, gs.shutdownTimeout)

	gs = NewGracefulServer(echo.New(), 8080, 3*time.Second)
	assert.Equal(t, 3*time.Second, gs.shutdownTimeout)
}

func TestShutdownManager_RunsInRegistrationOrder(t *testing.T) {
	sm := NewShutdownManager()
	order := []string{}

	sm.Register(func(ctx context.Context) error {
		order = append(order, "db")
		return nil
	})
	sm.Register(func(ctx context.Context) error {
		order = append(order, "redis")
		return fmt.Errorf("close failed")
	})
	sm.Register(func(ctx context.Context) error {
		order = append(order, "nsq")
		return nil
	})

	err := sm.Shutdown(context.Background())

	assert.NoError(t, err, "a failing cleanup must not abort shutdown")
	assert.Equal(t, []string{"db", "redis", "nsq"}, order)
}

func TestShutdownManager_IgnoresNilFunction(t *testing.T) {
	sm := NewShutdownManager()

	assert.NotPanics(t, func() {
		sm.Register(nil)
	})
	assert.NoError(t, sm.Shutdown(context.Background()))
}
