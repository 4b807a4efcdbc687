package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uniconnect/backend/internal/app/controllers"
	"github.com/uniconnect/backend/internal/middleware"
	"github.com/uniconnect/backend/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	collegeController *controllers.CollegeController,
	eventController *controllers.EventController,
	authController *controllers.AuthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/api/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// --- Auth routes ---
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/refresh", authController.Refresh)
	}

	// --- Student routes ---
	students := api.Group("/students")
	{
		students.POST("/register", studentController.Register)
		students.POST("/login", studentController.Login)
		students.GET("/:id", studentController.GetByID)

		// Profile edits require a valid student token
		studentsProtected := students.Group("")
		studentsProtected.Use(authMiddleware.JWTAuth())
		{
			studentsProtected.PUT("/:id", studentController.Update)
		}
	}

	// --- College routes ---
	colleges := api.Group("/colleges")
	{
		colleges.POST("/register", collegeController.Register)
		colleges.POST("/login", collegeController.Login)
		colleges.GET("/:id", collegeController.GetByID)
		colleges.GET("/:id/events", collegeController.ListEvents)

		collegesProtected := colleges.Group("")
		collegesProtected.Use(authMiddleware.JWTAuth())
		{
			collegesProtected.PUT("/:id", collegeController.Update)
		}
	}

	// --- Event routes ---
	events := api.Group("/events")
	{
		events.GET("", eventController.List)
		events.GET("/:id", eventController.GetByID)

		// Only colleges may publish or manage events
		eventsCollegeProtected := events.Group("")
		eventsCollegeProtected.Use(authMiddleware.JWTAuth())
		eventsCollegeProtected.Use(authMiddleware.RoleRequired(auth.RoleCollege))
		{
			eventsCollegeProtected.POST("", eventController.Create)
			eventsCollegeProtected.PUT("/:id", eventController.Update)
			eventsCollegeProtected.DELETE("/:id", eventController.Delete)
		}
	}
}
