package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taskhub/taskhub-backend/internal/models"
	"github.com/taskhub/taskhub-backend/internal/service"
	"github.com/taskhub/taskhub-backend/internal/types"
)

// ============================================
// Project Handler
// ============================================

type ProjectHandler struct {
	projectService service.ProjectService
	priorityMax    int
}

func NewProjectHandler(projectService service.ProjectService, priorityMax int) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		priorityMax:    priorityMax,
	}
}

// parseIDParam reads a UUID route parameter; on failure it has already
// written a 400 response.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid id", CodeInvalidInput)
		return uuid.Nil, false
	}
	return id, true
}

// parseTimeQuery reads an RFC 3339 timestamp from the query string.
func parseTimeQuery(c *gin.Context, name string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, c.Query(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+name+" date, expected RFC 3339", CodeInvalidInput)
		return time.Time{}, false
	}
	return t, true
}

// parsePriorityBounds reads and validates the low/high query bounds. Both
// bounds are inclusive and must satisfy 1 <= low <= high <= priorityMax.
func parsePriorityBounds(c *gin.Context, priorityMax int) (int, int, bool) {
	low, errLow := strconv.Atoi(c.Query("low"))
	high, errHigh := strconv.Atoi(c.Query("high"))
	if errLow != nil || errHigh != nil {
		respondError(c, http.StatusBadRequest, "Priority bounds must be integers", CodeInvalidInput)
		return 0, 0, false
	}
	if low < 1 || high > priorityMax || low > high {
		respondError(c, http.StatusBadRequest,
			"Priority bounds must satisfy 1 <= low <= high <= "+strconv.Itoa(priorityMax),
			CodePriorityOutOfRange)
		return 0, 0, false
	}
	return low, high, true
}

// List - List all projects (without tasks)
// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch projects", CodePersistenceFailure)
		return
	}
	if len(projects) == 0 {
		respondError(c, http.StatusNotFound, "There are no projects here yet", CodeNotFound)
		return
	}
	c.JSON(http.StatusOK, toProjectResponses(projects))
}

// Get - Get a project by ID
// GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(project))
}

// GetByName - Get a project by its (case/whitespace-insensitive) name
// GET /projects/name/:name
func (h *ProjectHandler) GetByName(c *gin.Context) {
	project, err := h.projectService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(project))
}

// ListWithStatus - List projects having the given status
// GET /projects/with-status/:status
func (h *ProjectHandler) ListWithStatus(c *gin.Context) {
	status, err := types.ParseProjectStatus(c.Param("status"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), CodeInvalidInput)
		return
	}

	projects, err := h.projectService.ListWithStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch projects", CodePersistenceFailure)
		return
	}
	if len(projects) == 0 {
		respondError(c, http.StatusNotFound, "No projects have this status", CodeNotFound)
		return
	}
	c.JSON(http.StatusOK, toProjectResponses(projects))
}

// ListInPriorityRange - List projects with priority inside [low, high]
// GET /projects/in-priority-range?low=&high=
func (h *ProjectHandler) ListInPriorityRange(c *gin.Context) {
	low, high, ok := parsePriorityBounds(c, h.priorityMax)
	if !ok {
		return
	}

	projects, err := h.projectService.ListInPriorityRange(c.Request.Context(), low, high)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch projects", CodePersistenceFailure)
		return
	}
	if len(projects) == 0 {
		respondError(c, http.StatusNotFound, "No projects were found in the given range", CodeNotFound)
		return
	}
	c.JSON(http.StatusOK, toProjectResponses(projects))
}

// ListStartInRange - List projects starting inside the given date range
// GET /projects/start-in-date-range?start=&end=
func (h *ProjectHandler) ListStartInRange(c *gin.Context) {
	start, ok := parseTimeQuery(c, "start")
	if !ok {
		return
	}
	end, ok := parseTimeQuery(c, "end")
	if !ok {
		return
	}
	if !start.Before(end) {
		respondError(c, http.StatusBadRequest, "Start date should be before the end date", CodeInvalidDates)
		return
	}

	projects, err := h.projectService.ListStartInRange(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch projects", CodePersistenceFailure)
		return
	}
	if len(projects) == 0 {
		respondError(c, http.StatusNotFound, "No projects were found in the given range", CodeNotFound)
		return
	}
	c.JSON(http.StatusOK, toProjectResponses(projects))
}

// ListStartAfter - List projects starting strictly after the given date
// GET /projects/start-after-date?start=
func (h *ProjectHandler) ListStartAfter(c *gin.Context) {
	start, ok := parseTimeQuery(c, "start")
	if !ok {
		return
	}

	projects, err := h.projectService.ListStartAfter(c.Request.Context(), start)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch projects", CodePersistenceFailure)
		return
	}
	if len(projects) == 0 {
		respondError(c, http.StatusNotFound, "No projects start after the given date", CodeNotFound)
		return
	}
	c.JSON(http.StatusOK, toProjectResponses(projects))
}

// ListEndBefore - List projects ending strictly before the given date
// GET /projects/ends-before-date?end=
func (h *ProjectHandler) ListEndBefore(c *gin.Context) {
	end, ok := parseTimeQuery(c, "end")
	if !ok {
		return
	}

	projects, err := h.projectService.ListEndBefore(c.Request.Context(), end)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch projects", CodePersistenceFailure)
		return
	}
	if len(projects) == 0 {
		respondError(c, http.StatusNotFound, "No projects end before the given date", CodeNotFound)
		return
	}
	c.JSON(http.StatusOK, toProjectResponses(projects))
}

// ListTasks - List tasks of a project
// GET /projects/:id/tasks
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := h.projectService.ListTasks(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(tasks) == 0 {
		respondError(c, http.StatusNotFound, "Project has no tasks", CodeNotFound)
		return
	}
	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// Create - Create a new project
// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), CodeInvalidInput)
		return
	}

	_, err := h.projectService.Create(
		c.Request.Context(),
		req.ProjectName,
		req.StartDate,
		req.CompletionDate,
		req.ProjectStatus,
		req.Priority,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Update - Replace a project's mutable fields
// PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), CodeInvalidInput)
		return
	}

	_, err := h.projectService.Update(
		c.Request.Context(),
		id,
		req.ProjectName,
		req.StartDate,
		req.CompletionDate,
		req.ProjectStatus,
		req.Priority,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete - Delete a project together with its tasks
// DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
