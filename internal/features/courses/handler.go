package courses

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
// @Summary List courses
// @Description Get every course owned by the authenticated user
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=[]Course}
// @Failure 401 {object} response.APIResponse
// @Router /courses [get]
func (h *Handler) List(c *gin.Context) {
	courses, err := h.service.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, courses)
}

// Create godoc
// @Summary Create a course
// @Description The name is stored uppercase; color defaults to yellow
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCourseRequest true "Course data"
// @Success 201 {object} response.APIResponse{data=Course}
// @Failure 401 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /courses [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	course, err := h.service.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, course)
}

// Get godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} response.APIResponse{data=Course}
// @Failure 404 {object} response.APIResponse
// @Router /courses/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	course, err := h.service.GetByID(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, course)
}

// Update godoc
// @Summary Update a course
// @Description Partial update; a new name is stored uppercase
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body UpdateCourseRequest true "Fields to change"
// @Success 200 {object} response.APIResponse{data=Course}
// @Failure 404 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /courses/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	course, err := h.service.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, course)
}

// Delete godoc
// @Summary Delete a course
// @Description Deletes the course and every task under it
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} response.APIResponse{data=DeleteResult}
// @Failure 404 {object} response.APIResponse
// @Router /courses/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result, "Course deleted successfully")
}
