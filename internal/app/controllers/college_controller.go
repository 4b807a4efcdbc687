package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/uniconnect/backend/internal/app/models/dto"
	"github.com/uniconnect/backend/internal/app/services"
	"github.com/uniconnect/backend/internal/middleware"
	"github.com/uniconnect/backend/internal/pkg/auth"
)

// CollegeController handles college account endpoints
type CollegeController struct {
	collegeService services.CollegeService
	eventService   services.EventService
	logger         zerolog.Logger
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService, eventService services.EventService, logger zerolog.Logger) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
		eventService:   eventService,
		logger:         logger,
	}
}

// Register handles college registration
// @Summary Register a new college
// @Tags colleges
// @Accept json
// @Produce json
// @Param request body dto.RegisterCollegeRequest true "College information"
// @Success 200 {object} models.College
// @Failure 400 {object} dto.MessageResponse "Duplicate or invalid college data"
// @Router /api/colleges/register [post]
func (c *CollegeController) Register(ctx *gin.Context) {
	var req dto.RegisterCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.FormatBindingError(err, "Invalid college data")))
		return
	}

	college, err := c.collegeService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("collegeID", college.ID).Str("code", college.Code).Msg("College registered")
	ctx.JSON(http.StatusOK, college)
}

// Login handles college login
// @Summary College login
// @Tags colleges
// @Accept json
// @Produce json
// @Param request body dto.CollegeLoginRequest true "Login credentials"
// @Success 200 {object} dto.CollegeAuthResponse
// @Failure 401 {object} dto.MessageResponse "Invalid credentials"
// @Router /api/colleges/login [post]
func (c *CollegeController) Login(ctx *gin.Context) {
	var req dto.CollegeLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Login failed"))
		return
	}

	response, err := c.collegeService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetByID retrieves a college by ID
// @Summary Get college by ID
// @Tags colleges
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} models.College
// @Failure 404 {object} dto.MessageResponse "College not found"
// @Router /api/colleges/{id} [get]
func (c *CollegeController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid college ID"))
		return
	}

	college, err := c.collegeService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, college)
}

// Update applies a partial profile update for the authenticated college
// @Summary Update college profile
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Param request body dto.UpdateCollegeRequest true "Fields to update"
// @Success 200 {object} models.College
// @Failure 403 {object} dto.MessageResponse "Not the account owner"
// @Failure 404 {object} dto.MessageResponse "College not found"
// @Router /api/colleges/{id} [put]
func (c *CollegeController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid college ID"))
		return
	}

	// Colleges may only edit their own profile
	accountID, ok := middleware.AccountID(ctx)
	if !ok || ctx.GetString(middleware.ContextRole) != auth.RoleCollege || accountID != id {
		ctx.JSON(http.StatusForbidden, dto.NewMessageResponse("Permission denied"))
		return
	}

	var updates dto.UpdateCollegeRequest
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.FormatBindingError(err, "Invalid college data")))
		return
	}

	college, err := c.collegeService.Update(ctx.Request.Context(), id, &updates)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, college)
}

// ListEvents retrieves all events published by a college
// @Summary List a college's events
// @Tags colleges
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {array} models.Event
// @Failure 400 {object} dto.MessageResponse "Invalid college ID"
// @Router /api/colleges/{id}/events [get]
func (c *CollegeController) ListEvents(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid college ID"))
		return
	}

	events, err := c.eventService.ListByCollege(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}
