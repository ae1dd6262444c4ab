package api

import (
	"net/http"

	"gymapp/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers onto the router. Route casing is part of
// the published contract and preserved as-is.
func SetupRoutes(
	router *gin.Engine,
	userService service.UserService,
	exerciseService service.ExerciseService,
	planService service.WorkoutPlanService,
	mediaService service.MediaService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	planHandler := NewWorkoutPlanHandler(planService)
	mediaHandler := NewMediaHandler(mediaService)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Gym App Backend Running!")
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, "Gym App API Running!")
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", userHandler.Register)
			userGroup.POST("/createprofile", userHandler.CreateProfile)
			userGroup.GET("/profile", userHandler.GetProfile)
			userGroup.POST("/avatar/upload-url", mediaHandler.GenerateAvatarUploadURL)
		}

		workoutGroup := apiGroup.Group("/workout")
		{
			workoutGroup.GET("/getAllExercises", exerciseHandler.GetAllExercises)
			workoutGroup.POST("/CreateWorkoutPlan", planHandler.CreateWorkoutPlan)
			workoutGroup.GET("/GetWorkoutPlans", planHandler.GetWorkoutPlans)
			workoutGroup.GET("/GetWorkoutPlanById", planHandler.GetWorkoutPlanByID)
			workoutGroup.PUT("/UpdateWorkoutPlan/:id", planHandler.UpdateWorkoutPlan)
			workoutGroup.DELETE("/DeleteWorkoutPlan/:id", planHandler.DeleteWorkoutPlan)
			workoutGroup.GET("/GetSplitTemplates", planHandler.GetSplitTemplates)
		}
	}
}
