package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-backend/internal/repository"
)

// ============================================
// Task Service
// ============================================

type TaskService interface {
	List(ctx context.Context) ([]*repository.ProjectTask, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repository.ProjectTask, error)
	GetByName(ctx context.Context, name string) (*repository.ProjectTask, error)
	ListWithStatus(ctx context.Context, status string) ([]*repository.ProjectTask, error)
	ListInPriorityRange(ctx context.Context, low, high int) ([]*repository.ProjectTask, error)
	Create(ctx context.Context, projectID uuid.UUID, name, status, description string, priority int) (*repository.ProjectTask, error)
	Update(ctx context.Context, taskID, projectID uuid.UUID, name, status, description string, priority int) (*repository.ProjectTask, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskService struct {
	taskRepo      repository.TaskRepository
	projectChecks repository.CheckProjectRepository
	taskChecks    repository.CheckTaskRepository
	validator     TaskValidator
}

func NewTaskService(taskRepo repository.TaskRepository, projectChecks repository.CheckProjectRepository, taskChecks repository.CheckTaskRepository, validator TaskValidator) TaskService {
	return &taskService{
		taskRepo:      taskRepo,
		projectChecks: projectChecks,
		taskChecks:    taskChecks,
		validator:     validator,
	}
}

func (s *taskService) List(ctx context.Context) ([]*repository.ProjectTask, error) {
	return s.taskRepo.FindAll(ctx)
}

func (s *taskService) GetByID(ctx context.Context, id uuid.UUID) (*repository.ProjectTask, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	if task == nil {
		return nil, ErrNotFound
	}
	return task, nil
}

func (s *taskService) GetByName(ctx context.Context, name string) (*repository.ProjectTask, error) {
	task, err := s.taskRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	if task == nil {
		return nil, ErrNotFound
	}
	return task, nil
}

func (s *taskService) ListWithStatus(ctx context.Context, status string) ([]*repository.ProjectTask, error) {
	return s.taskRepo.FindWithStatus(ctx, status)
}

func (s *taskService) ListInPriorityRange(ctx context.Context, low, high int) ([]*repository.ProjectTask, error) {
	return s.taskRepo.FindInPriorityRange(ctx, low, high)
}

func (s *taskService) Create(ctx context.Context, projectID uuid.UUID, name, status, description string, priority int) (*repository.ProjectTask, error) {
	task := &repository.ProjectTask{
		ID:              uuid.New(),
		ProjectID:       projectID,
		TaskName:        strings.TrimSpace(name),
		TaskStatus:      status,
		TaskDescription: description,
		Priority:        priority,
	}

	if err := s.validator.ValidateForCreate(ctx, task, projectID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return task, nil
}

func (s *taskService) Update(ctx context.Context, taskID, projectID uuid.UUID, name, status, description string, priority int) (*repository.ProjectTask, error) {
	exists, err := s.taskChecks.TaskExists(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	belongs, err := s.taskChecks.TaskBelongsToProject(ctx, taskID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task ownership: %w", err)
	}
	if !belongs {
		// TaskBelongsToProject is false both for a missing project and for a
		// task owned elsewhere; distinguish the former for a proper 404.
		projectExists, err := s.projectChecks.ProjectExists(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to check project: %w", err)
		}
		if !projectExists {
			return nil, ErrProjectNotFound
		}
		return nil, ErrTaskNotInProject
	}

	task := &repository.ProjectTask{
		ID:              taskID,
		ProjectID:       projectID,
		TaskName:        strings.TrimSpace(name),
		TaskStatus:      status,
		TaskDescription: description,
		Priority:        priority,
	}

	if err := s.validator.ValidateForUpdate(ctx, task, projectID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.taskChecks.TaskExists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
