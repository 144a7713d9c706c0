package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-backend/internal/repository"
)

// TaskValidator gates task writes: owning project must exist, the task name
// must be unique within that project, and the priority must be in bounds.
// Checks run sequentially; the first failure wins.
type TaskValidator interface {
	ValidateForCreate(ctx context.Context, task *repository.ProjectTask, projectID uuid.UUID) error
	ValidateForUpdate(ctx context.Context, task *repository.ProjectTask, projectID uuid.UUID) error
	PriorityIsValid(priority int) bool
}

type taskValidator struct {
	projectChecks repository.CheckProjectRepository
	taskChecks    repository.CheckTaskRepository
	priorityMax   int
}

func NewTaskValidator(projectChecks repository.CheckProjectRepository, taskChecks repository.CheckTaskRepository, priorityMax int) TaskValidator {
	return &taskValidator{
		projectChecks: projectChecks,
		taskChecks:    taskChecks,
		priorityMax:   priorityMax,
	}
}

// PriorityIsValid accepts priorities in [1, priorityMax], both ends inclusive.
func (v *taskValidator) PriorityIsValid(priority int) bool {
	return priority >= 1 && priority <= v.priorityMax
}

func (v *taskValidator) ValidateForCreate(ctx context.Context, task *repository.ProjectTask, projectID uuid.UUID) error {
	if task == nil {
		return ErrInvalidInput
	}
	exists, err := v.projectChecks.ProjectExists(ctx, projectID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProjectNotFound
	}
	taken, err := v.taskChecks.TaskNameTakenInProject(ctx, task.TaskName, projectID)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}
	if !v.PriorityIsValid(task.Priority) {
		return ErrPriorityOutOfRange
	}
	return nil
}

// ValidateForUpdate lets the task keep its own name within the project.
func (v *taskValidator) ValidateForUpdate(ctx context.Context, task *repository.ProjectTask, projectID uuid.UUID) error {
	if task == nil {
		return ErrInvalidInput
	}
	exists, err := v.projectChecks.ProjectExists(ctx, projectID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProjectNotFound
	}
	taken, err := v.taskChecks.TaskNameTakenInProjectByOther(ctx, task.TaskName, projectID, task.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}
	if !v.PriorityIsValid(task.Priority) {
		return ErrPriorityOutOfRange
	}
	return nil
}
