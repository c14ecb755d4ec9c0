package api

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/clinic-reports/reports"
)

const (
	ParamOrganizationId = "organizationId"
	QueryStartDate      = "startDate"
	QueryEndDate        = "endDate"
)

type Handler struct {
	reports reports.Service
	logger  *zap.SugaredLogger
}

type Params struct {
	fx.In

	Reports reports.Service
	Logger  *zap.SugaredLogger
}

func NewHandler(p Params) *Handler {
	return &Handler{
		reports: p.Reports,
		logger:  p.Logger,
	}
}

func RegisterHandlers(e *echo.Echo, h *Handler) {
	v1 := e.Group("/v1")
	v1.GET("/organizations/:organizationId/reports/practice", h.GetPracticeReport)
	v1.GET("/organizations/:organizationId/reports/practice/xlsx", h.GetPracticeReportXlsx)
	v1.GET("/reports/subscriptions", h.GetSubscriptionReport)
	v1.GET("/reports/subscriptions/xlsx", h.GetSubscriptionReportXlsx)
}
