// Package repos provides database repository implementations
package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tracklabs/projtrack/internal/db/models"
)

var (
	// ErrProjectNotFound is returned when no project row matches the id.
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectStale is returned when a replace loses an optimistic
	// concurrency race: the row exists but its version no longer matches
	// the one the caller read.
	ErrProjectStale = errors.New("project was modified by another writer")
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create inserts a new project. The store assigns the id and the initial
// version; any id on the passed project is ignored.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	project.ID = 0
	project.Version = 1
	return r.db.WithContext(ctx).Create(project).Error
}

// Get retrieves a project by id from the database
func (r *ProjectRepository) Get(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// List retrieves projects in insertion order, optionally filtered by status.
// A nil options value returns every row.
func (r *ProjectRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.Project, error) {
	projects := []models.Project{}
	query := r.db.WithContext(ctx).Order("id")
	if opts != nil {
		if opts.Status != nil {
			query = query.Where("status = ?", *opts.Status)
		}
		if opts.Limit > 0 {
			query = query.Limit(opts.Limit).Offset(opts.Offset)
		}
	}
	err := query.Find(&projects).Error
	return projects, err
}

// Update replaces every mutable field of the row identified by project.ID,
// guarded by the version the caller last observed. On success the version on
// the passed project is advanced to the stored value. The write is a single
// UPDATE statement, so no partial replace is ever observable.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	res := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ? AND version = ?", project.ID, project.Version).
		Updates(map[string]interface{}{
			"name":        project.Name,
			"description": project.Description,
			"owner":       project.Owner,
			"status":      project.Status,
			"start_date":  project.StartDate,
			"end_date":    project.EndDate,
			"version":     project.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish a missing row from a stale version.
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Project{}).
			Where("id = ?", project.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrProjectNotFound
		}
		return ErrProjectStale
	}
	project.Version++
	return nil
}

// Delete removes a project by id. Deleting an id that does not exist returns
// ErrProjectNotFound, so the loser of racing deletes gets a clean outcome
// rather than a silent second success.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
