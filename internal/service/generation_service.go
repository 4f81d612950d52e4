package service

import (
	"context"

	"project-planner/internal/logger"
	"project-planner/internal/recurrence"
	"project-planner/internal/repository"
)

// GenerationService backfills due instances of recurring series. The
// engine decides what should exist; this service loads projects, hands
// them to the engine, and persists only what the engine produced. Because
// the engine resumes each series from the highest persisted occurrence
// number, running the backfill repeatedly creates no duplicates.
type GenerationService struct {
	projectRepo *repository.ProjectRepository
	taskRepo    *repository.TaskRepository
	engine      *recurrence.Engine
}

func NewGenerationService(projectRepo *repository.ProjectRepository, taskRepo *repository.TaskRepository, engine *recurrence.Engine) *GenerationService {
	return &GenerationService{projectRepo: projectRepo, taskRepo: taskRepo, engine: engine}
}

// GenerateDueInstances materializes instances due within daysAhead for one
// project and returns how many were created.
func (s *GenerationService) GenerateDueInstances(ctx context.Context, projectID string, daysAhead int) (int, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return 0, err
	}

	updated := s.engine.CheckAndGenerateDueInstances(project, daysAhead)
	created := updated.Tasks[len(project.Tasks):]
	if len(created) == 0 {
		return 0, nil
	}

	if err := s.taskRepo.CreateInstances(ctx, created); err != nil {
		return 0, err
	}

	logger.Log.Info().
		Str("project_id", projectID).
		Int("instances", len(created)).
		Msg("generated due instances")
	return len(created), nil
}

// GenerateAll runs the backfill across every project, returning the total
// number of instances created. A failing project aborts the run; the cron
// collaborator owns retry semantics.
func (s *GenerationService) GenerateAll(ctx context.Context, daysAhead int) (int, error) {
	projects, err := s.projectRepo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, project := range projects {
		n, err := s.GenerateDueInstances(ctx, project.ID, daysAhead)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// Preview projects the next occurrences of a template for UI display.
func (s *GenerationService) Preview(ctx context.Context, taskID string, count int) ([]recurrence.Occurrence, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return s.engine.PreviewOccurrences(task, count)
}
