package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"project-planner/internal/model"
)

// DeletePolicy names what happens to a series' generated instances when
// its template is deleted.
type DeletePolicy int

const (
	// OrphanInstances leaves generated instances in place; their series
	// link keeps pointing at the deleted template. Default behavior.
	OrphanInstances DeletePolicy = iota
	// CascadeInstances deletes the template's instances together with it.
	CascadeInstances
)

// TaskRepository handles CRUD for tasks and the series-index lookups the
// recurrence engine relies on.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// CreateInstances persists a batch of generated instances in one insert.
func (r *TaskRepository) CreateInstances(ctx context.Context, instances []model.Task) error {
	if len(instances) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&instances).Error; err != nil {
		return fmt.Errorf("create instances: %w", err)
	}
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ?", taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).
		Order("due_date, created_at").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListTemplates returns the recurring templates of a project.
func (r *TaskRepository) ListTemplates(ctx context.Context, projectID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND is_recurring = ? AND original_task_id IS NULL", projectID, true).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// LatestInstance returns the instance of a series with the highest
// occurrence number, or nil when none has been generated yet. Generation
// resumes from this record, so this lookup is what keeps repeated
// generation runs from duplicating instances.
func (r *TaskRepository) LatestInstance(ctx context.Context, templateID string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Where("original_task_id = ?", templateID).
		Order("occurrence_number DESC").
		First(&task).Error
	switch {
	case err == nil:
		return &task, nil
	case err == gorm.ErrRecordNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("find latest instance: %w", err)
	}
}

func (r *TaskRepository) MarkCompleted(ctx context.Context, task *model.Task, completedAt time.Time) error {
	task.Completed = true
	task.Status = model.StatusDone
	task.CompletedAt = &completedAt
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	return nil
}

// Delete removes a single task regardless of its role in a series.
func (r *TaskRepository) Delete(ctx context.Context, taskID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", taskID).
		Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// DeleteTemplate removes a recurring template under an explicit ownership
// policy for its generated instances.
func (r *TaskRepository) DeleteTemplate(ctx context.Context, templateID string, policy DeletePolicy) error {
	db := r.db.WithContext(ctx)
	if policy == CascadeInstances {
		if err := db.Where("original_task_id = ?", templateID).
			Delete(&model.Task{}).Error; err != nil {
			return fmt.Errorf("delete instances: %w", err)
		}
	}
	if err := db.Where("id = ?", templateID).
		Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}
