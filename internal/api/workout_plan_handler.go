package api

import (
	"net/http"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/repository"
	"gymapp/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutPlanHandler holds the workout plan service dependency.
type WorkoutPlanHandler struct {
	planService service.WorkoutPlanService
}

// NewWorkoutPlanHandler creates a new WorkoutPlanHandler.
func NewWorkoutPlanHandler(planService service.WorkoutPlanService) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{planService: planService}
}

// --- DTOs ---

// CreateWorkoutPlanRequest carries the full nested plan structure. Pointer
// metadata fields distinguish "omitted" from an explicit zero value so that
// schema defaults apply only when the caller left the field out.
type CreateWorkoutPlanRequest struct {
	UserID            string                `json:"userId"`
	Name              string                `json:"name"`
	Description       string                `json:"description"`
	Difficulty        domain.FitnessLevel   `json:"difficulty"`
	EstimatedDuration int                   `json:"estimatedDuration"`
	IsActive          *bool                 `json:"isActive"`
	IsTemplate        *bool                 `json:"isTemplate"`
	WeeklySchedule    domain.WeeklySchedule `json:"weeklySchedule"`
	Stats             *domain.PlanStats     `json:"stats"`
}

// UpdateWorkoutPlanRequest names the top-level fields a full-document update
// may replace. Absent fields keep their stored values.
type UpdateWorkoutPlanRequest struct {
	Name              *string                `json:"name"`
	Description       *string                `json:"description"`
	Difficulty        *domain.FitnessLevel   `json:"difficulty"`
	EstimatedDuration *int                   `json:"estimatedDuration"`
	IsActive          *bool                  `json:"isActive"`
	IsTemplate        *bool                  `json:"isTemplate"`
	WeeklySchedule    *domain.WeeklySchedule `json:"weeklySchedule"`
	Stats             *domain.PlanStats      `json:"stats"`
}

// DeleteWorkoutPlanResponse confirms a deletion; the removed document is not
// echoed back.
type DeleteWorkoutPlanResponse struct {
	Message string `json:"message"`
}

// --- Handler Methods ---

// CreateWorkoutPlan handles POST /api/workout/CreateWorkoutPlan.
func (h *WorkoutPlanHandler) CreateWorkoutPlan(c *gin.Context) {
	var req CreateWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body: "+err.Error(), nil)
		return
	}

	var userID primitive.ObjectID
	if req.UserID != "" {
		var err error
		userID, err = primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			respondValidationError(c, "Invalid user ID format", nil)
			return
		}
	}

	plan := &domain.WorkoutPlan{
		UserID:            userID,
		Name:              req.Name,
		Description:       req.Description,
		Difficulty:        req.Difficulty,
		EstimatedDuration: req.EstimatedDuration,
		WeeklySchedule:    req.WeeklySchedule,
		IsActive:          true,
		IsTemplate:        false,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if req.IsTemplate != nil {
		plan.IsTemplate = *req.IsTemplate
	}
	if req.Stats != nil {
		plan.Stats = *req.Stats
	}

	created, err := h.planService.CreatePlan(c.Request.Context(), plan)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetWorkoutPlans handles GET /api/workout/GetWorkoutPlans?userId=.
// Fails before touching the store when userId is absent.
func (h *WorkoutPlanHandler) GetWorkoutPlans(c *gin.Context) {
	userIDStr := c.Query("userId")
	if userIDStr == "" {
		respondValidationError(c, "User ID is required", nil)
		return
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		respondValidationError(c, "Invalid user ID format", nil)
		return
	}

	plans, err := h.planService.ListPlans(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetWorkoutPlanByID handles GET /api/workout/GetWorkoutPlanById?id=.
func (h *WorkoutPlanHandler) GetWorkoutPlanByID(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		respondValidationError(c, "Workout plan ID is required", nil)
		return
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		respondValidationError(c, "Invalid workout plan ID format", nil)
		return
	}

	plan, err := h.planService.GetPlanByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// UpdateWorkoutPlan handles PUT /api/workout/UpdateWorkoutPlan/:id.
func (h *WorkoutPlanHandler) UpdateWorkoutPlan(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondValidationError(c, "Invalid workout plan ID format", nil)
		return
	}

	var req UpdateWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body: "+err.Error(), nil)
		return
	}

	update := &repository.WorkoutPlanUpdate{
		Name:              req.Name,
		Description:       req.Description,
		Difficulty:        req.Difficulty,
		EstimatedDuration: req.EstimatedDuration,
		IsActive:          req.IsActive,
		IsTemplate:        req.IsTemplate,
		WeeklySchedule:    req.WeeklySchedule,
		Stats:             req.Stats,
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), id, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeleteWorkoutPlan handles DELETE /api/workout/DeleteWorkoutPlan/:id.
func (h *WorkoutPlanHandler) DeleteWorkoutPlan(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondValidationError(c, "Invalid workout plan ID format", nil)
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteWorkoutPlanResponse{
		Message: "Workout plan deleted successfully",
	})
}

// GetSplitTemplates handles GET /api/workout/GetSplitTemplates. Static data;
// never fails.
func (h *WorkoutPlanHandler) GetSplitTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.planService.ListSplitTemplates())
}
