package api

import (
	"net/http"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs ---

// RegisterRequest defines the expected JSON for registering a user.
type RegisterRequest struct {
	Email       string              `json:"email"`
	UserID      string              `json:"userid"`
	Phone       string              `json:"phone"`
	Profile     *domain.Profile     `json:"profile"`
	Preferences *domain.Preferences `json:"preferences"`
	Age         *int                `json:"age"`
}

// CreateProfileRequest defines the expected JSON for attaching a profile.
type CreateProfileRequest struct {
	UserID      string          `json:"userId"`
	ProfileData *domain.Profile `json:"profileData"`
}

// --- Handler Methods ---

// Register handles POST /api/user/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body: "+err.Error(), nil)
		return
	}

	if req.Email == "" || req.UserID == "" {
		respondValidationError(c, "Email, and user ID are required", nil)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), service.RegisterInput{
		Email:       req.Email,
		UserID:      req.UserID,
		Phone:       req.Phone,
		Profile:     req.Profile,
		Preferences: req.Preferences,
		Age:         req.Age,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{
		Success: true,
		Message: "User registered successfully",
		Data:    user,
	})
}

// CreateProfile handles POST /api/user/createprofile. The user is addressed
// by internal id here, unlike GetProfile.
func (h *UserHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body: "+err.Error(), nil)
		return
	}

	if req.UserID == "" || req.ProfileData == nil {
		respondValidationError(c, "User ID and profile data are required", nil)
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respondValidationError(c, "Invalid user ID format", nil)
		return
	}

	user, err := h.userService.CreateProfile(c.Request.Context(), userID, req.ProfileData)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		Success: true,
		Message: "Profile created successfully",
		Data:    user,
	})
}

// GetProfile handles GET /api/user/profile?userId=<external id>. Lookup is
// by the external userid field, not the internal ObjectID.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userid := c.Query("userId")
	if userid == "" {
		respondValidationError(c, "User ID is required", nil)
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    user,
	})
}
