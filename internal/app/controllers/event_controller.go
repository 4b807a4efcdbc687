package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/uniconnect/backend/internal/app/models/dto"
	"github.com/uniconnect/backend/internal/app/services"
	"github.com/uniconnect/backend/internal/middleware"
)

// EventController handles campus event endpoints
type EventController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// List retrieves events, optionally narrowed by query parameters
// @Summary List events
// @Tags events
// @Produce json
// @Param search query string false "Keyword matched against title, description, type and venue"
// @Param type query string false "Exact event type"
// @Param mode query string false "Exact event mode"
// @Param location query string false "Substring matched against venue and address"
// @Success 200 {array} models.Event
// @Router /api/events [get]
func (c *EventController) List(ctx *gin.Context) {
	filter := dto.EventFilter{
		Search:   ctx.Query("search"),
		Type:     ctx.Query("type"),
		Mode:     ctx.Query("mode"),
		Location: ctx.Query("location"),
	}

	events, err := c.eventService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// GetByID retrieves a single event
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} dto.MessageResponse "Event not found"
// @Router /api/events/{id} [get]
func (c *EventController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid event ID"))
		return
	}

	event, err := c.eventService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// Create publishes a new event for the authenticated college
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 200 {object} models.Event
// @Failure 403 {object} dto.MessageResponse "College ID does not match the authenticated account"
// @Router /api/events [post]
func (c *EventController) Create(ctx *gin.Context) {
	accountID, ok := middleware.AccountID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Authentication required"))
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.FormatBindingError(err, "Invalid event data")))
		return
	}

	event, err := c.eventService.Create(ctx.Request.Context(), accountID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("eventID", event.ID).Int64("collegeID", event.CollegeID).Msg("Event created")
	ctx.JSON(http.StatusOK, event)
}

// Update applies a partial update to an event owned by the authenticated college
// @Summary Update event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} models.Event
// @Failure 403 {object} dto.MessageResponse "Event belongs to another college"
// @Failure 404 {object} dto.MessageResponse "Event not found"
// @Router /api/events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid event ID"))
		return
	}

	accountID, ok := middleware.AccountID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Authentication required"))
		return
	}

	var updates dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.FormatBindingError(err, "Invalid event data")))
		return
	}

	event, err := c.eventService.Update(ctx.Request.Context(), id, accountID, &updates)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// Delete removes an event owned by the authenticated college
// @Summary Delete event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse "Event belongs to another college"
// @Failure 404 {object} dto.MessageResponse "Event not found"
// @Router /api/events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid event ID"))
		return
	}

	accountID, ok := middleware.AccountID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Authentication required"))
		return
	}

	if err := c.eventService.Delete(ctx.Request.Context(), id, accountID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("eventID", id).Msg("Event deleted")
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Event deleted successfully"))
}
