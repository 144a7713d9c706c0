package service

import (
	"context"
	"time"

	"github.com/taskhub/taskhub-backend/internal/repository"
)

// ProjectValidator gates project writes. It composes checker results with
// structural rules and is the single source of business-rule truth for
// projects. Checks run sequentially; the first failure wins and nothing is
// mutated.
type ProjectValidator interface {
	ValidateForCreate(ctx context.Context, project *repository.Project) error
	ValidateForUpdate(ctx context.Context, project *repository.Project) error
	PriorityIsValid(priority int) bool
	DatesAreValid(start, end time.Time) bool
}

type projectValidator struct {
	checks      repository.CheckProjectRepository
	priorityMax int
}

func NewProjectValidator(checks repository.CheckProjectRepository, priorityMax int) ProjectValidator {
	return &projectValidator{checks: checks, priorityMax: priorityMax}
}

// PriorityIsValid accepts priorities in [1, priorityMax], both ends inclusive.
func (v *projectValidator) PriorityIsValid(priority int) bool {
	return priority >= 1 && priority <= v.priorityMax
}

// DatesAreValid requires the start date to be strictly before the end date.
func (v *projectValidator) DatesAreValid(start, end time.Time) bool {
	return start.Before(end)
}

func (v *projectValidator) ValidateForCreate(ctx context.Context, project *repository.Project) error {
	if project == nil {
		return ErrInvalidInput
	}
	if !v.DatesAreValid(project.StartDate, project.CompletionDate) {
		return ErrInvalidDates
	}
	taken, err := v.checks.ProjectNameTaken(ctx, project.ProjectName)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}
	if !v.PriorityIsValid(project.Priority) {
		return ErrPriorityOutOfRange
	}
	return nil
}

// ValidateForUpdate runs the same checks as ValidateForCreate but lets the
// project keep its own name.
func (v *projectValidator) ValidateForUpdate(ctx context.Context, project *repository.Project) error {
	if project == nil {
		return ErrInvalidInput
	}
	if !v.DatesAreValid(project.StartDate, project.CompletionDate) {
		return ErrInvalidDates
	}
	taken, err := v.checks.ProjectNameTakenByOther(ctx, project.ProjectName, project.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}
	if !v.PriorityIsValid(project.Priority) {
		return ErrPriorityOutOfRange
	}
	return nil
}
