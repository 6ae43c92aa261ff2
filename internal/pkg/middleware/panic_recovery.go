package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gavraq/lifetrack/internal/pkg/logger"
	"github.com/gavraq/lifetrack/internal/utils"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack and
// returns a 500 instead of tearing down the server
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					recovered := fmt.Errorf("panic recovered: %v", r)

					logger.Error("Handler panic",
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.String("stack", string(debug.Stack())),
						logger.Err(recovered))

					if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
						txn.NoticeError(recovered)
					}

					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
