package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-backend/internal/repository"
)

// ============================================
// Project Service
// ============================================

type ProjectService interface {
	List(ctx context.Context) ([]*repository.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Project, error)
	GetByName(ctx context.Context, name string) (*repository.Project, error)
	ListWithStatus(ctx context.Context, status string) ([]*repository.Project, error)
	ListInPriorityRange(ctx context.Context, low, high int) ([]*repository.Project, error)
	ListStartInRange(ctx context.Context, start, end time.Time) ([]*repository.Project, error)
	ListStartAfter(ctx context.Context, start time.Time) ([]*repository.Project, error)
	ListEndBefore(ctx context.Context, end time.Time) ([]*repository.Project, error)
	ListTasks(ctx context.Context, projectID uuid.UUID) ([]*repository.ProjectTask, error)
	Create(ctx context.Context, name string, start, end time.Time, status string, priority int) (*repository.Project, error)
	Update(ctx context.Context, id uuid.UUID, name string, start, end time.Time, status string, priority int) (*repository.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	checks      repository.CheckProjectRepository
	validator   ProjectValidator
}

func NewProjectService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository, checks repository.CheckProjectRepository, validator ProjectValidator) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		checks:      checks,
		validator:   validator,
	}
}

func (s *projectService) List(ctx context.Context) ([]*repository.Project, error) {
	return s.projectRepo.FindAll(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) (*repository.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

func (s *projectService) GetByName(ctx context.Context, name string) (*repository.Project, error) {
	project, err := s.projectRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

func (s *projectService) ListWithStatus(ctx context.Context, status string) ([]*repository.Project, error) {
	return s.projectRepo.FindWithStatus(ctx, status)
}

func (s *projectService) ListInPriorityRange(ctx context.Context, low, high int) ([]*repository.Project, error) {
	return s.projectRepo.FindInPriorityRange(ctx, low, high)
}

func (s *projectService) ListStartInRange(ctx context.Context, start, end time.Time) ([]*repository.Project, error) {
	return s.projectRepo.FindStartInRange(ctx, start, end)
}

func (s *projectService) ListStartAfter(ctx context.Context, start time.Time) ([]*repository.Project, error) {
	return s.projectRepo.FindStartAfter(ctx, start)
}

func (s *projectService) ListEndBefore(ctx context.Context, end time.Time) ([]*repository.Project, error) {
	return s.projectRepo.FindEndBefore(ctx, end)
}

func (s *projectService) ListTasks(ctx context.Context, projectID uuid.UUID) ([]*repository.ProjectTask, error) {
	exists, err := s.checks.ProjectExists(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.taskRepo.FindByProjectID(ctx, projectID)
}

func (s *projectService) Create(ctx context.Context, name string, start, end time.Time, status string, priority int) (*repository.Project, error) {
	project := &repository.Project{
		ID:             uuid.New(),
		ProjectName:    strings.TrimSpace(name),
		StartDate:      start,
		CompletionDate: end,
		ProjectStatus:  status,
		Priority:       priority,
	}

	if err := s.validator.ValidateForCreate(ctx, project); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		// The unique index is the authoritative guard; the validator's name
		// check above can race with a concurrent create.
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, name string, start, end time.Time, status string, priority int) (*repository.Project, error) {
	exists, err := s.checks.ProjectExists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	project := &repository.Project{
		ID:             id,
		ProjectName:    strings.TrimSpace(name),
		StartDate:      start,
		CompletionDate: end,
		ProjectStatus:  status,
		Priority:       priority,
	}

	if err := s.validator.ValidateForUpdate(ctx, project); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return project, nil
}

// Delete removes the project and all of its tasks. The cascade runs inside
// one repository transaction, so it either fully applies or not at all.
func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.checks.ProjectExists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.projectRepo.DeleteWithTasks(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
