package schedule

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durvibangera/sorte/internal/pkg/response"
)

const icsFilename = "sorte-schedule.ics"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary List schedule events
// @Description Every event of the shared calendar, ordered by start time
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=[]Event}
// @Failure 401 {object} response.APIResponse
// @Router /schedule [get]
func (h *Handler) List(c *gin.Context) {
	events, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, events)
}

// Create godoc
// @Summary Create a schedule event
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEventRequest true "Event data"
// @Success 201 {object} response.APIResponse{data=Event}
// @Failure 422 {object} response.APIResponse
// @Router /schedule [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	event, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, event)
}

// Get godoc
// @Summary Get a schedule event
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} response.APIResponse{data=Event}
// @Failure 404 {object} response.APIResponse
// @Router /schedule/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	event, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, event)
}

// Update godoc
// @Summary Update a schedule event
// @Description Partial update; the merged event must still end after it starts
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body UpdateEventRequest true "Fields to change"
// @Success 200 {object} response.APIResponse{data=Event}
// @Failure 404 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /schedule/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	event, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, event)
}

// Delete godoc
// @Summary Delete a schedule event
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /schedule/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, nil, "Schedule event deleted successfully")
}

// Sync godoc
// @Summary Sync with Google Calendar
// @Description Not implemented; always answers 501
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Failure 501 {object} response.APIResponse
// @Router /schedule/sync [post]
// @Router /schedule/sync-google [post]
func (h *Handler) Sync(c *gin.Context) {
	if err := h.service.SyncExternalCalendar(c.Request.Context()); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, nil)
}

// ExportICS godoc
// @Summary Export the schedule as iCalendar
// @Tags schedule
// @Produce text/calendar
// @Security BearerAuth
// @Success 200 {string} string "VCALENDAR document"
// @Router /schedule/export.ics [get]
func (h *Handler) ExportICS(c *gin.Context) {
	body, err := h.service.ExportICS(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+icsFilename+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}
