package api

import (
	"net/http"

	"gymapp/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaHandler holds the media service dependency.
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// AvatarUploadURLRequest asks for a presigned avatar upload slot.
type AvatarUploadURLRequest struct {
	UserID      string `json:"userId"`
	ContentType string `json:"contentType"`
}

// GenerateAvatarUploadURL handles POST /api/user/avatar/upload-url. The
// returned downloadUrl is what the client stores as profile.profilePicture
// after completing the PUT upload.
func (h *MediaHandler) GenerateAvatarUploadURL(c *gin.Context) {
	var req AvatarUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "Invalid request body: "+err.Error(), nil)
		return
	}
	if req.UserID == "" {
		respondValidationError(c, "User ID is required", nil)
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respondValidationError(c, "Invalid user ID format", nil)
		return
	}

	urls, err := h.mediaService.GenerateAvatarUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, urls)
}
