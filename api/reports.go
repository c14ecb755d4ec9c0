package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tealeg/xlsx/v3"

	"github.com/tidepool-org/clinic-reports/analytics"
	"github.com/tidepool-org/clinic-reports/reports"
)

func (h *Handler) GetPracticeReport(ec echo.Context) error {
	report, err := h.practiceReport(ec)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewPracticeReportDto(report, h.reports.Format()))
}

func (h *Handler) GetPracticeReportXlsx(ec echo.Context) error {
	report, err := h.practiceReport(ec)
	if err != nil {
		return err
	}

	file, err := reports.NewPracticeWorkbook(report, h.reports.Format()).Generate()
	if err != nil {
		return fmt.Errorf("unable to generate practice workbook: %w", err)
	}

	filename := fmt.Sprintf("practice-report-%s-%s.xlsx", report.OrganizationId, report.Range.Start.Format(analytics.DateLayout))
	return writeWorkbook(ec, filename, file)
}

func (h *Handler) GetSubscriptionReport(ec echo.Context) error {
	report, err := h.subscriptionReport(ec)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewSubscriptionReportDto(report, h.reports.Format()))
}

func (h *Handler) GetSubscriptionReportXlsx(ec echo.Context) error {
	report, err := h.subscriptionReport(ec)
	if err != nil {
		return err
	}

	file, err := reports.NewSubscriptionWorkbook(report, h.reports.Format()).Generate()
	if err != nil {
		return fmt.Errorf("unable to generate subscription workbook: %w", err)
	}

	filename := fmt.Sprintf("subscription-report-%s.xlsx", report.Range.Start.Format(analytics.DateLayout))
	return writeWorkbook(ec, filename, file)
}

func (h *Handler) practiceReport(ec echo.Context) (*analytics.PracticeReport, error) {
	dateRange, err := h.reports.ParseDateRange(ec.QueryParam(QueryStartDate), ec.QueryParam(QueryEndDate))
	if err != nil {
		return nil, err
	}

	report, err := h.reports.PracticeReport(ec.Request().Context(), ec.Param(ParamOrganizationId), dateRange)
	if err != nil {
		return nil, err
	}
	if len(report.DegradedSources) > 0 {
		h.logger.Warnw("serving report with missing data", "reportId", report.Id, "organizationId", report.OrganizationId, "degraded", report.DegradedSources)
	}
	return report, nil
}

func (h *Handler) subscriptionReport(ec echo.Context) (*analytics.SubscriptionReport, error) {
	dateRange, err := h.reports.ParseDateRange(ec.QueryParam(QueryStartDate), ec.QueryParam(QueryEndDate))
	if err != nil {
		return nil, err
	}

	report, err := h.reports.SubscriptionReport(ec.Request().Context(), dateRange)
	if err != nil {
		return nil, err
	}
	if len(report.DegradedSources) > 0 {
		h.logger.Warnw("serving report with missing data", "reportId", report.Id, "degraded", report.DegradedSources)
	}
	return report, nil
}

func writeWorkbook(ec echo.Context, filename string, file *xlsx.File) error {
	buf := &bytes.Buffer{}
	if err := file.Write(buf); err != nil {
		return fmt.Errorf("unable to write workbook: %w", err)
	}

	ec.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ec.Blob(http.StatusOK, reports.XlsxContentType, buf.Bytes())
}
