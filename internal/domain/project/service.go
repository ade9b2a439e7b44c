package project

import "context"

// ProjectService defines the interface for project management
type ProjectService interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetProject(ctx context.Context, id string) (ProjectResponse, error)
	ListProjects(ctx context.Context) ([]ProjectResponse, error)
}
