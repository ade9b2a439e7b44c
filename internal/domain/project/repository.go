package project

import "context"

// ProjectRepository defines data access methods for manpower projects.
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, p Project) (Project, error)

	// GetByID retrieves a project by ID
	GetByID(ctx context.Context, id string) (Project, error)

	// List retrieves all projects
	List(ctx context.Context) ([]Project, error)
}
