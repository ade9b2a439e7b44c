package project

import (
	"context"
	"fmt"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/project"
)

type ProjectServiceImpl struct {
	projectRepo project.ProjectRepository
}

func NewProjectService(projectRepo project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
	}
}

// CreateProject implements project.ProjectService.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	status := project.Status(req.Status)
	if req.Status == "" {
		status = project.StatusActive
	}

	created, err := s.projectRepo.Create(ctx, project.Project{
		Name:         req.Name,
		Client:       req.Client,
		Status:       status,
		Progress:     req.Progress,
		Budget:       req.Budget,
		MarginTarget: req.MarginTarget,
	})
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to create project: %w", err)
	}

	return mapProjectToResponse(created), nil
}

// GetProject implements project.ProjectService.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, id string) (project.ProjectResponse, error) {
	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to get project: %w", err)
	}
	return mapProjectToResponse(p), nil
}

// ListProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, mapProjectToResponse(p))
	}
	return responses, nil
}

func mapProjectToResponse(p project.Project) project.ProjectResponse {
	return project.ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		Client:       p.Client,
		Status:       string(p.Status),
		Progress:     p.Progress,
		Budget:       p.Budget,
		MarginTarget: p.MarginTarget,
		CreatedAt:    p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
