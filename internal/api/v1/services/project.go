// Package services provides business logic for the v1 API.
package services

import (
	"context"
	"errors"

	"github.com/tracklabs/projtrack/internal/db/models"
	"github.com/tracklabs/projtrack/internal/db/repos"
	"github.com/tracklabs/projtrack/internal/types"
)

// ErrIDMismatch is returned by Update when the id in the request body
// disagrees with the id addressed by the route.
var ErrIDMismatch = errors.New("route id and project id must match")

// ProjectService validates project payloads and delegates persistence to
// the repository. It holds no state between calls.
type ProjectService struct {
	repo *repos.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(repo *repos.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// List retrieves projects, optionally filtered by status.
func (s *ProjectService) List(ctx context.Context, opts *models.ListOptions) ([]models.Project, error) {
	return s.repo.List(ctx, opts)
}

// Get retrieves a project by id.
func (s *ProjectService) Get(ctx context.Context, id uint) (*models.Project, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the payload and inserts a new project. The returned
// project carries the assigned id and initial version. On validation
// failure the returned error is a types.ValidationErrors listing every
// violated field.
func (s *ProjectService) Create(ctx context.Context, req *types.ProjectRequest) (*models.Project, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}
	project := req.ToModel()
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update replaces the project identified by id with the request payload.
// The body id must match the route id, the payload must pass the same
// validation as a create, and the version must still match the stored row.
func (s *ProjectService) Update(ctx context.Context, id uint, req *types.ProjectRequest) error {
	if req.ID != id {
		return ErrIDMismatch
	}
	if errs := req.Validate(); len(errs) > 0 {
		return errs
	}
	return s.repo.Update(ctx, req.ToModel())
}

// Delete removes the project identified by id.
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
