package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"project-planner/internal/model"
)

// ProjectRepository manages projects.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// FindByID loads a project together with its tasks.
func (r *ProjectRepository) FindByID(ctx context.Context, projectID string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Preload("Tasks").First(&project, "id = ?", projectID).Error; err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) ListAll(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
