package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timesheet-service/internal/api/dto"
	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/service"
	"github.com/spec-kit/timesheet-service/pkg/util"
)

// StaffHandler exposes staff CRUD endpoints.
type StaffHandler struct {
	svc *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(svc *service.StaffService) *StaffHandler {
	return &StaffHandler{svc: svc}
}

// List handles GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.UserContext())
	if err != nil {
		return util.NewOperationFailed("failed to fetch staff", err)
	}

	resp := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		resp = append(resp, staffResponse(&list[i]))
	}
	return c.JSON(resp)
}

// ListWithStats handles GET /admin/staff, enriching each row with derived
// hour totals.
func (h *StaffHandler) ListWithStats(c *fiber.Ctx) error {
	list, err := h.svc.ListWithStats(c.UserContext())
	if err != nil {
		return util.NewOperationFailed("failed to fetch staff", err)
	}

	resp := make([]dto.StaffStatsResponse, 0, len(list))
	for i := range list {
		resp = append(resp, dto.StaffStatsResponse{
			StaffResponse: staffResponse(&list[i].Staff),
			TotalHours:    list[i].TotalHours,
			ThisWeekHours: list[i].ThisWeekHours,
			EntryCount:    list[i].EntryCount,
		})
	}
	return c.JSON(resp)
}

// Create handles POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "email and name required")
	}

	staff := &domain.Staff{
		Email:      req.Email,
		Name:       req.Name,
		Department: req.Department,
		Role:       domain.Role(req.Role),
		ExternalID: req.ExternalID,
	}
	if err := h.svc.Create(c.UserContext(), staff); err != nil {
		return util.NewOperationFailed("failed to create staff member", err)
	}
	return c.Status(http.StatusCreated).JSON(staffResponse(staff))
}

// Update handles PUT /staff with a full replacement of the mutable fields.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var req dto.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ID == "" {
		return fiber.NewError(http.StatusBadRequest, "id required")
	}

	staff := &domain.Staff{
		ID:         req.ID,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Role:       domain.Role(req.Role),
	}
	if err := h.svc.Update(c.UserContext(), staff); err != nil {
		return util.NewOperationFailed("failed to update staff member", err)
	}
	return c.JSON(staffResponse(staff))
}

// Delete handles DELETE /staff?id=.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return fiber.NewError(http.StatusBadRequest, "staff id required")
	}

	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return util.NewOperationFailed("failed to delete staff member", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func staffResponse(staff *domain.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:         staff.ID,
		Email:      staff.Email,
		Name:       staff.Name,
		Department: staff.Department,
		Role:       string(staff.Role),
		ExternalID: staff.ExternalID,
		CreatedAt:  staff.CreatedAt,
		UpdatedAt:  staff.UpdatedAt,
	}
}
