// Package controllers handles HTTP request handling
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

// StudentController handles student account endpoints
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// Register handles student registration
// @Summary Register a new student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.MessageResponse "Duplicate or invalid student data"
// @Router /api/students/register [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.FormatBindingError(err, "Invalid student data")))
		return
	}

	student, err := c.studentService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", student.ID).Str("regNumber", student.RegNumber).Msg("Student registered")
	ctx.JSON(http.StatusOK, student)
}

// Login handles student login
// @Summary Student login
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Login credentials"
// @Success 200 {object} dto.StudentAuthResponse
// @Failure 401 {object} dto.MessageResponse "Invalid credentials"
// @Router /api/students/login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Login failed"))
		return
	}

	response, err := c.studentService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetByID retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Router /api/students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid student ID"))
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// Update applies a partial profile update for the authenticated student
// @Summary Update student profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} models.Student
// @Failure 403 {object} dto.MessageResponse "Not the account owner"
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Router /api/students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid student ID"))
		return
	}

	// Students may only edit their own profile
	accountID, ok := middleware.AccountID(ctx)
	if !ok || ctx.GetString(middleware.ContextRole) != auth.RoleStudent || accountID != id {
		ctx.JSON(http.StatusForbidden, dto.NewMessageResponse("Permission denied"))
		return
	}

	var updates dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.FormatBindingError(err, "Invalid student data")))
		return
	}

	student, err := c.studentService.Update(ctx.Request.Context(), id, &updates)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}
