package service

import (
	"context"
	"fmt"
	"time"

	"project-planner/internal/model"
	"project-planner/internal/recurrence"
	"project-planner/internal/repository"
)

// TaskInput represents data required to create a task. Setting Recurrence
// makes the task a recurring template.
type TaskInput struct {
	ProjectID   string
	Name        string
	Description string
	Assignee    string
	Priority    string
	DueDate     time.Time
	Recurrence  *model.RecurrencePattern
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTask persists a new task. Recurrence patterns are validated before
// they are stored; the engine itself never re-validates, so a bad pattern
// must not make it into the database.
func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if input.ProjectID == "" {
		return nil, fmt.Errorf("project is required")
	}

	task := model.Task{
		ProjectID:   input.ProjectID,
		Name:        input.Name,
		Description: input.Description,
		Assignee:    input.Assignee,
		Priority:    input.Priority,
		Status:      model.StatusTodo,
		DueDate:     input.DueDate,
	}

	if input.Recurrence != nil {
		if err := recurrence.ValidatePattern(*input.Recurrence); err != nil {
			return nil, fmt.Errorf("invalid recurrence pattern: %w", err)
		}
		if input.DueDate.IsZero() {
			return nil, fmt.Errorf("a recurring task needs a due date to anchor its series")
		}
		task.IsRecurring = true
		task.Recurrence = input.Recurrence
		task.OccurrenceNumber = 1
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdatePattern replaces the recurrence pattern of an existing template.
func (s *TaskService) UpdatePattern(ctx context.Context, taskID string, pattern model.RecurrencePattern) (*model.Task, error) {
	if err := recurrence.ValidatePattern(pattern); err != nil {
		return nil, fmt.Errorf("invalid recurrence pattern: %w", err)
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsTemplate() {
		return nil, fmt.Errorf("task %s is not a recurring template", taskID)
	}

	task.Recurrence = &pattern
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, taskID)
}

func (s *TaskService) ListByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	return s.taskRepo.ListByProject(ctx, projectID)
}

// CompleteTask marks a task as done.
func (s *TaskService) CompleteTask(ctx context.Context, taskID string, completedAt time.Time) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.MarkCompleted(ctx, task, completedAt); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a single task, template or not. Deleting a template
// this way orphans its instances; use DeleteTemplate to choose explicitly.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	return s.taskRepo.Delete(ctx, taskID)
}

// DeleteTemplate removes a recurring template under the given instance
// ownership policy.
func (s *TaskService) DeleteTemplate(ctx context.Context, templateID string, policy repository.DeletePolicy) error {
	return s.taskRepo.DeleteTemplate(ctx, templateID, policy)
}

// Summary renders a template's pattern as a short human-readable badge.
func (s *TaskService) Summary(task *model.Task) string {
	if task == nil || task.Recurrence == nil {
		return ""
	}
	return recurrence.Describe(*task.Recurrence)
}
