package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timesheet-service/internal/api/dto"
	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/repository"
	"github.com/spec-kit/timesheet-service/internal/service"
	"github.com/spec-kit/timesheet-service/pkg/util"
)

// TimeEntriesHandler exposes time entry endpoints.
type TimeEntriesHandler struct {
	svc *service.TimeEntryService
}

// NewTimeEntriesHandler constructs handler.
func NewTimeEntriesHandler(svc *service.TimeEntryService) *TimeEntriesHandler {
	return &TimeEntriesHandler{svc: svc}
}

// List handles GET /time-entries with optional staff/project/date filters.
func (h *TimeEntriesHandler) List(c *fiber.Ctx) error {
	filter, err := parseEntryFilter(c)
	if err != nil {
		return err
	}

	list, err := h.svc.List(c.UserContext(), filter)
	if err != nil {
		return util.NewOperationFailed("failed to fetch time entries", err)
	}

	resp := make([]dto.TimeEntryResponse, 0, len(list))
	for i := range list {
		resp = append(resp, timeEntryResponse(&list[i]))
	}
	return c.JSON(resp)
}

// Create handles POST /time-entries and returns the expanded row.
func (h *TimeEntriesHandler) Create(c *fiber.Ctx) error {
	var req dto.TimeEntryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.StaffID == "" || req.ProjectID == "" {
		return fiber.NewError(http.StatusBadRequest, "staff_id and project_id required")
	}
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid date")
	}

	entry := &domain.TimeEntry{
		StaffID:     req.StaffID,
		ProjectID:   req.ProjectID,
		Description: req.Description,
		Hours:       req.Hours,
		Date:        date,
	}
	expanded, err := h.svc.Log(c.UserContext(), entry)
	if err != nil {
		return util.NewOperationFailed("failed to create time entry", err)
	}
	return c.Status(http.StatusCreated).JSON(timeEntryResponse(expanded))
}

func parseEntryFilter(c *fiber.Ctx) (repository.TimeEntryFilter, error) {
	var filter repository.TimeEntryFilter

	if staffID := c.Query("staff_id"); staffID != "" {
		filter.StaffID = &staffID
	}
	if projectID := c.Query("project_id"); projectID != "" {
		filter.ProjectID = &projectID
	}

	var err error
	if filter.DateFrom, err = parseDateQuery(c, "start_date"); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parseDateQuery(c, "end_date"); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	val := c.Query(key)
	if val == "" {
		return nil, nil
	}
	parsed, err := time.Parse(domain.DateLayout, val)
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "invalid "+key)
	}
	return &parsed, nil
}

func timeEntryResponse(entry *domain.TimeEntry) dto.TimeEntryResponse {
	resp := dto.TimeEntryResponse{
		ID:          entry.ID,
		StaffID:     entry.StaffID,
		ProjectID:   entry.ProjectID,
		Description: entry.Description,
		Hours:       entry.Hours,
		Date:        entry.Date.Format(domain.DateLayout),
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
	if entry.Staff != nil {
		resp.Staff = &dto.StaffSummaryResponse{
			ID:    entry.Staff.ID,
			Name:  entry.Staff.Name,
			Email: entry.Staff.Email,
		}
	}
	if entry.Project != nil {
		resp.Project = &dto.ProjectSummaryResponse{
			ID:     entry.Project.ID,
			Name:   entry.Project.Name,
			Client: entry.Project.Client,
		}
	}
	return resp
}
