package service

import (
	"context"

	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/repository"
)

// ProjectService coordinates project management.
type ProjectService struct {
	projects repository.ProjectRepository
}

// NewProjectService builds the service.
func NewProjectService(projects repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// List returns all projects ordered by name.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

// Create persists a new project, defaulting its status to active.
func (s *ProjectService) Create(ctx context.Context, project *domain.Project) error {
	if project.Status == "" {
		project.Status = domain.ProjectStatusActive
	}
	return s.projects.Create(ctx, project)
}
