package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and converts the panic into a generic 500 envelope.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					userID := "anonymous"
					if uid := c.Get("user_id"); uid != nil {
						userID = fmt.Sprintf("%v", uid)
					}

					zapLogger.Error("Panic recovered",
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("user_id", userID),
						logger.Any("panic", r),
						logger.String("stacktrace", string(debug.Stack())),
					)

					_ = utils.InternalServerErrorResponse(c, "")
				}
			}()

			return next(c)
		}
	}
}
