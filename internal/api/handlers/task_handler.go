package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taskhub/taskhub-backend/internal/models"
	"github.com/taskhub/taskhub-backend/internal/service"
	"github.com/taskhub/taskhub-backend/internal/types"
)

// ============================================
// Task Handler
// ============================================

type TaskHandler struct {
	taskService service.TaskService
	priorityMax int
}

func NewTaskHandler(taskService service.TaskService, priorityMax int) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		priorityMax: priorityMax,
	}
}

// List - List all tasks
// GET /tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch tasks", CodePersistenceFailure)
		return
	}
	if len(tasks) == 0 {
		respondError(c, http.StatusNotFound, "There are no tasks here yet", CodeNotFound)
		return
	}
	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// Get - Get a task by ID
// GET /tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// GetByName - Get a task by its (case/whitespace-insensitive) name
// GET /tasks/name/:name
func (h *TaskHandler) GetByName(c *gin.Context) {
	task, err := h.taskService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// ListWithStatus - List tasks having the given status
// GET /tasks/with-status/:status
func (h *TaskHandler) ListWithStatus(c *gin.Context) {
	status, err := types.ParseTaskStatus(c.Param("status"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), CodeInvalidInput)
		return
	}

	tasks, err := h.taskService.ListWithStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch tasks", CodePersistenceFailure)
		return
	}
	if len(tasks) == 0 {
		respondError(c, http.StatusNotFound, "No tasks have this status", CodeNotFound)
		return
	}
	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// ListInPriorityRange - List tasks with priority inside [low, high]
// GET /tasks/in-priority-range?low=&high=
func (h *TaskHandler) ListInPriorityRange(c *gin.Context) {
	low, high, ok := parsePriorityBounds(c, h.priorityMax)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListInPriorityRange(c.Request.Context(), low, high)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch tasks", CodePersistenceFailure)
		return
	}
	if len(tasks) == 0 {
		respondError(c, http.StatusNotFound, "No tasks were found in the given range", CodeNotFound)
		return
	}
	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// Create - Create a task inside a project
// POST /tasks/create/in-project/:projectId
func (h *TaskHandler) Create(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), CodeInvalidInput)
		return
	}

	_, err := h.taskService.Create(
		c.Request.Context(),
		projectID,
		req.TaskName,
		req.TaskStatus,
		req.TaskDescription,
		req.Priority,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Update - Replace a task's mutable fields
// PUT /tasks/update/:taskId?projectId=
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Query("projectId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid projectId", CodeInvalidInput)
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), CodeInvalidInput)
		return
	}

	_, err = h.taskService.Update(
		c.Request.Context(),
		taskID,
		projectID,
		req.TaskName,
		req.TaskStatus,
		req.TaskDescription,
		req.Priority,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete - Delete a task
// DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
