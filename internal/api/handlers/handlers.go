package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhub/taskhub-backend/internal/config"
	"github.com/taskhub/taskhub-backend/internal/models"
	"github.com/taskhub/taskhub-backend/internal/repository"
	"github.com/taskhub/taskhub-backend/internal/service"
)

// Machine-readable error codes carried in every error response.
const (
	CodeNotFound           = "not_found"
	CodeInvalidInput       = "invalid_input"
	CodeInvalidDates       = "invalid_dates"
	CodePriorityOutOfRange = "priority_out_of_range"
	CodeNameTaken          = "name_taken"
	CodeTaskNotInProject   = "task_not_in_project"
	CodePersistenceFailure = "persistence_failure"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Project *ProjectHandler
	Task    *TaskHandler
}

// NewHandlers creates all handlers
func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Project: &ProjectHandler{projectService: services.Project, priorityMax: cfg.PriorityMax},
		Task:    &TaskHandler{taskService: services.Task, priorityMax: cfg.PriorityMax},
	}
}

// ============================================
// Response Mappers
// ============================================

func toProjectResponse(p *repository.Project) models.ProjectResponse {
	return models.ProjectResponse{
		ID:             p.ID.String(),
		ProjectName:    p.ProjectName,
		StartDate:      p.StartDate,
		CompletionDate: p.CompletionDate,
		ProjectStatus:  p.ProjectStatus,
		Priority:       p.Priority,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toTaskResponse(t *repository.ProjectTask) models.TaskResponse {
	return models.TaskResponse{
		ID:              t.ID.String(),
		ProjectID:       t.ProjectID.String(),
		TaskName:        t.TaskName,
		TaskStatus:      t.TaskStatus,
		TaskDescription: t.TaskDescription,
		Priority:        t.Priority,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func toProjectResponses(projects []*repository.Project) []models.ProjectResponse {
	response := make([]models.ProjectResponse, len(projects))
	for i, p := range projects {
		response[i] = toProjectResponse(p)
	}
	return response
}

func toTaskResponses(tasks []*repository.ProjectTask) []models.TaskResponse {
	response := make([]models.TaskResponse, len(tasks))
	for i, t := range tasks {
		response[i] = toTaskResponse(t)
	}
	return response
}

// ============================================
// Error Mapping
// ============================================

func respondError(c *gin.Context, status int, message, code string) {
	c.JSON(status, models.ErrorResponse{Error: message, Code: code})
}

// respondServiceError translates service sentinel errors to HTTP statuses:
// 404 for missing entities, 400 for structural validation, 409 for name
// conflicts, 422 for ownership mismatches and failed writes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, "Resource not found", CodeNotFound)
	case errors.Is(err, service.ErrProjectNotFound):
		respondError(c, http.StatusNotFound, "Project not found", CodeNotFound)
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "Invalid input", CodeInvalidInput)
	case errors.Is(err, service.ErrInvalidDates):
		respondError(c, http.StatusBadRequest, "Project should start before it ends", CodeInvalidDates)
	case errors.Is(err, service.ErrPriorityOutOfRange):
		respondError(c, http.StatusBadRequest, "Priority is out of range", CodePriorityOutOfRange)
	case errors.Is(err, service.ErrNameTaken):
		respondError(c, http.StatusConflict, "This name is already taken", CodeNameTaken)
	case errors.Is(err, service.ErrTaskNotInProject):
		respondError(c, http.StatusUnprocessableEntity, "Task does not belong to the given project", CodeTaskNotInProject)
	case errors.Is(err, service.ErrPersistence):
		respondError(c, http.StatusUnprocessableEntity, "Something went wrong while saving changes", CodePersistenceFailure)
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error", CodePersistenceFailure)
	}
}
