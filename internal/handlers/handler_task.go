package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
)

// taskHandler handles HTTP requests for tasks.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

// newTaskHandler creates a new taskHandler.
func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts}
}

// registerTaskRoutes registers all task-related routes.
func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

// listTasks godoc
// @Summary List tasks
// @Description Retrieves tasks, newest first, with assignee display names.
// @Tags tasks
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.Envelope{data=[]dto.TaskResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	var params dto.ListTasksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorEnvelope("Invalid query parameters"))
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list tasks")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToListTaskResponse(tasks))
}

// createTask godoc
// @Summary Create a task
// @Description Creates a task. Assigning it to another user notifies them.
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.Envelope{data=dto.TaskResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorEnvelope("Invalid request body: "+err.Error()))
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to create task")
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToTaskResponse(task))
}

// updateTask godoc
// @Summary Update a task
// @Description Applies the provided fields to a task. Reassignment notifies the new assignee.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.TaskResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *taskHandler) updateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorEnvelope("Invalid request body: "+err.Error()))
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Task not found")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToTaskResponse(task))
}

// deleteTask godoc
// @Summary Delete a task
// @Description Removes a task.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *taskHandler) deleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Task not found")
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"message": "Task deleted"})
}
