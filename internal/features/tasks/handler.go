package tasks

import (
	"github.com/gin-gonic/gin"

	"github.com/durvibangera/sorte/internal/middleware"
	"github.com/durvibangera/sorte/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary List tasks
// @Description All tasks of the authenticated user, each joined with its course name and color
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=[]TaskView}
// @Failure 401 {object} response.APIResponse
// @Router /tasks [get]
func (h *Handler) List(c *gin.Context) {
	tasks, err := h.service.ListAll(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, tasks)
}

// ListByCourse godoc
// @Summary List tasks of a course
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.APIResponse{data=[]Task}
// @Failure 404 {object} response.APIResponse
// @Router /tasks/course/{courseId} [get]
func (h *Handler) ListByCourse(c *gin.Context) {
	tasks, err := h.service.ListByCourse(c.Request.Context(), middleware.UserID(c), c.Param("courseId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, tasks)
}

// Create godoc
// @Summary Create a task
// @Description The task takes its course's current color
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} response.APIResponse{data=Task}
// @Failure 404 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /tasks [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	task, err := h.service.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, task)
}

// Get godoc
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} response.APIResponse{data=TaskView}
// @Failure 404 {object} response.APIResponse
// @Router /tasks/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	task, err := h.service.GetByID(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, task)
}

// Update godoc
// @Summary Update a task
// @Description Change title, description, dueDate or completed
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body UpdateTaskRequest true "Fields to change"
// @Success 200 {object} response.APIResponse{data=TaskView}
// @Failure 404 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /tasks/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	task, err := h.service.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, task)
}

// Toggle godoc
// @Summary Toggle task completion
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} response.APIResponse{data=Task}
// @Failure 404 {object} response.APIResponse
// @Router /tasks/{id}/toggle [patch]
func (h *Handler) Toggle(c *gin.Context) {
	task, err := h.service.ToggleCompletion(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, task)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /tasks/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, nil, "Task deleted successfully")
}
