package models

import "time"

// ============================================
// Project DTOs
// ============================================

type CreateProjectRequest struct {
	ProjectName    string    `json:"projectName" binding:"required"`
	StartDate      time.Time `json:"startDate" binding:"required"`
	CompletionDate time.Time `json:"completionDate" binding:"required"`
	ProjectStatus  string    `json:"projectStatus" binding:"required,oneof=not_started active completed"`
	Priority       int       `json:"priority" binding:"required"`
}

type UpdateProjectRequest struct {
	ProjectName    string    `json:"projectName" binding:"required"`
	StartDate      time.Time `json:"startDate" binding:"required"`
	CompletionDate time.Time `json:"completionDate" binding:"required"`
	ProjectStatus  string    `json:"projectStatus" binding:"required,oneof=not_started active completed"`
	Priority       int       `json:"priority" binding:"required"`
}

// ProjectResponse is the project summary shape: never includes tasks.
type ProjectResponse struct {
	ID             string    `json:"id"`
	ProjectName    string    `json:"projectName"`
	StartDate      time.Time `json:"startDate"`
	CompletionDate time.Time `json:"completionDate"`
	ProjectStatus  string    `json:"projectStatus"`
	Priority       int       `json:"priority"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ============================================
// Task DTOs
// ============================================

type CreateTaskRequest struct {
	TaskName        string `json:"taskName" binding:"required"`
	TaskStatus      string `json:"taskStatus" binding:"required,oneof=todo in_progress done"`
	TaskDescription string `json:"taskDescription"`
	Priority        int    `json:"priority" binding:"required"`
}

type UpdateTaskRequest struct {
	TaskName        string `json:"taskName" binding:"required"`
	TaskStatus      string `json:"taskStatus" binding:"required,oneof=todo in_progress done"`
	TaskDescription string `json:"taskDescription"`
	Priority        int    `json:"priority" binding:"required"`
}

// TaskResponse carries the owning project id instead of a nested project.
type TaskResponse struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"projectId"`
	TaskName        string    `json:"taskName"`
	TaskStatus      string    `json:"taskStatus"`
	TaskDescription string    `json:"taskDescription"`
	Priority        int       `json:"priority"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ============================================
// Errors
// ============================================

// ErrorResponse pairs a human-readable message with a stable machine
// readable code.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
