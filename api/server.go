package api

import (
	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/tidepool-org/clinic-reports/errors"
)

func NewServer(handler *Handler, healthCheck *HealthCheck, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Skip request logging for readiness probe
	skipper := RouteSkipper([]string{"/ready"})

	e.Use(middleware.Recover())
	e.Use(skipMiddleware(skipper, echozap.ZapLogger(logger)))

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterHandlers(e, handler)

	return e, nil
}

func skipMiddleware(skipper middleware.Skipper, m echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		wrapped := m(next)
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			return wrapped(c)
		}
	}
}
