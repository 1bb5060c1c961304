package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timesheet-service/internal/api/dto"
	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/service"
	"github.com/spec-kit/timesheet-service/pkg/util"
)

// ProjectsHandler exposes project endpoints.
type ProjectsHandler struct {
	svc *service.ProjectService
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(svc *service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{svc: svc}
}

// List handles GET /projects.
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.UserContext())
	if err != nil {
		return util.NewOperationFailed("failed to fetch projects", err)
	}

	resp := make([]dto.ProjectResponse, 0, len(list))
	for i := range list {
		resp = append(resp, projectResponse(&list[i]))
	}
	return c.JSON(resp)
}

// Create handles POST /projects.
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProjectCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	project := &domain.Project{
		Name:        req.Name,
		Description: req.Description,
		Client:      req.Client,
		Status:      domain.ProjectStatus(req.Status),
	}
	if err := h.svc.Create(c.UserContext(), project); err != nil {
		return util.NewOperationFailed("failed to create project", err)
	}
	return c.Status(http.StatusCreated).JSON(projectResponse(project))
}

func projectResponse(project *domain.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Client:      project.Client,
		Status:      string(project.Status),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
