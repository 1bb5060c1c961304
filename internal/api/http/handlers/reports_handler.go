package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/service"
	"github.com/spec-kit/timesheet-service/pkg/util"
)

// ReportsHandler exposes aggregate report and CSV export endpoints.
type ReportsHandler struct {
	reports *service.ReportService
	export  *service.ExportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService, export *service.ExportService) *ReportsHandler {
	return &ReportsHandler{reports: reports, export: export}
}

// Get handles GET /reports?type=summary|department|project.
func (h *ReportsHandler) Get(c *fiber.Ctx) error {
	reportType := c.Query("type", "summary")

	switch reportType {
	case "summary":
		summary, err := h.reports.Summary(c.UserContext())
		if err != nil {
			return util.NewOperationFailed("failed to generate report", err)
		}
		return c.JSON(summary)

	case "department":
		rows, err := h.reports.ByDepartment(c.UserContext())
		if err != nil {
			return util.NewOperationFailed("failed to generate report", err)
		}
		return c.JSON(rows)

	case "project":
		from, err := parseDateQuery(c, "start_date")
		if err != nil {
			return err
		}
		to, err := parseDateQuery(c, "end_date")
		if err != nil {
			return err
		}
		rows, err := h.reports.ByProject(c.UserContext(), from, to)
		if err != nil {
			return util.NewOperationFailed("failed to generate report", err)
		}
		return c.JSON(rows)

	default:
		return fiber.NewError(http.StatusBadRequest, "invalid report type")
	}
}

// Export handles GET /reports/export, serving the filtered entries as a CSV
// download named by the current date.
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	criteria := service.FilterCriteria{
		StaffID:   c.Query("staff_id"),
		ProjectID: c.Query("project_id"),
	}
	var err error
	if criteria.From, err = parseDateQuery(c, "start_date"); err != nil {
		return err
	}
	if criteria.To, err = parseDateQuery(c, "end_date"); err != nil {
		return err
	}

	csv, err := h.export.Export(c.UserContext(), criteria)
	if err != nil {
		return util.NewOperationFailed("failed to export time entries", err)
	}

	filename := fmt.Sprintf("time-entries-%s.csv", time.Now().Format(domain.DateLayout))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.SendString(csv)
}
