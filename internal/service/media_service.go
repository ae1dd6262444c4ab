package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"gymapp/backend/internal/repository"
	"gymapp/backend/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrInvalidContentType = errors.New("invalid or missing image content type")
	ErrUploadURLError     = errors.New("failed to generate upload URL")
)

// AvatarUploadURL bundles everything the client needs to upload an avatar
// directly to object storage and reference it from the profile.
type AvatarUploadURL struct {
	UploadURL   string `json:"uploadUrl"`
	DownloadURL string `json:"downloadUrl"`
	ObjectKey   string `json:"objectKey"`
}

// MediaService hands out presigned URLs for profile avatar uploads. The
// actual byte transfer goes straight to the storage provider; the service
// never proxies file content.
type MediaService interface {
	GenerateAvatarUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*AvatarUploadURL, error)
}

type mediaService struct {
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewMediaService creates a new instance of mediaService.
func NewMediaService(userRepo repository.UserRepository, fileStorage storage.FileStorage) MediaService {
	return &mediaService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

// GenerateAvatarUploadURL validates the target user and content type, then
// produces a presigned PUT URL for the upload and a presigned GET URL the
// caller can store as profile.profilePicture.
func (s *mediaService) GenerateAvatarUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*AvatarUploadURL, error) {
	if contentType == "" || !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, ErrInvalidContentType
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	fileExtension := ""
	if parts := strings.Split(contentType, "/"); len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("avatars", user.ID.Hex(), fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}
	downloadURL, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.AvatarDownloadURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &AvatarUploadURL{
		UploadURL:   uploadURL,
		DownloadURL: downloadURL,
		ObjectKey:   objectKey,
	}, nil
}
