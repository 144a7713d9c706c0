package service

import (
	"errors"

	"github.com/taskhub/taskhub-backend/internal/config"
	"github.com/taskhub/taskhub-backend/internal/repository"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDates       = errors.New("start date must be before completion date")
	ErrNameTaken          = errors.New("name already taken")
	ErrPriorityOutOfRange = errors.New("priority out of range")
	ErrTaskNotInProject   = errors.New("task does not belong to project")
	ErrPersistence        = errors.New("persistence failure")
)

// ============================================
// Services Container
// ============================================

type Services struct {
	Project ProjectService
	Task    TaskService
}

type ServiceDeps struct {
	Config *config.Config
	Repos  *repository.Repositories
}

func NewServices(deps *ServiceDeps) *Services {
	projectValidator := NewProjectValidator(deps.Repos.CheckProjectRepo, deps.Config.PriorityMax)
	taskValidator := NewTaskValidator(deps.Repos.CheckProjectRepo, deps.Repos.CheckTaskRepo, deps.Config.PriorityMax)

	return &Services{
		Project: NewProjectService(deps.Repos.ProjectRepo, deps.Repos.TaskRepo, deps.Repos.CheckProjectRepo, projectValidator),
		Task:    NewTaskService(deps.Repos.TaskRepo, deps.Repos.CheckProjectRepo, deps.Repos.CheckTaskRepo, taskValidator),
	}
}
