package service

import (
	"context"
	"errors"
	"time"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound = errors.New("user not found")
)

// RegisterInput carries the caller-supplied registration fields. The userid
// is an externally issued identifier (e.g. from a third-party auth provider)
// and is trusted as-is; there is no verification.
type RegisterInput struct {
	Email       string
	UserID      string
	Phone       string
	Profile     *domain.Profile
	Preferences *domain.Preferences
	// Age is accepted on the wire for compatibility with older clients but
	// has no top-level home in the document; age lives on the profile.
	Age *int
}

// UserService manages user accounts and their profile sub-documents.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	CreateProfile(ctx context.Context, userID primitive.ObjectID, profile *domain.Profile) (*domain.User, error)
	// GetProfile looks the user up by the external userid, not the internal
	// id. The asymmetry with CreateProfile is part of the contract.
	GetProfile(ctx context.Context, userid string) (*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a new user with default stats and preferences. Duplicate
// email or phone surfaces as *repository.DuplicateKeyError with the field
// identified.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	verr := &domain.ValidationError{}
	if input.Email == "" {
		verr.Problems = append(verr.Problems, "email is required")
	}
	if input.UserID == "" {
		verr.Problems = append(verr.Problems, "userid is required")
	}
	if len(verr.Problems) > 0 {
		return nil, verr
	}
	if err := domain.ValidateProfile(input.Profile); err != nil {
		return nil, err
	}

	prefs := domain.DefaultPreferences()
	if input.Preferences != nil {
		if err := domain.ValidatePreferences(*input.Preferences); err != nil {
			return nil, err
		}
		prefs = *input.Preferences
	}

	user := &domain.User{
		Email:       input.Email,
		UserID:      input.UserID,
		Phone:       input.Phone,
		Profile:     input.Profile,
		Preferences: prefs,
		IsActive:    true,
		Friends:     []domain.Friend{},
		FriendRequests: domain.FriendRequests{
			Sent:     []domain.SentFriendRequest{},
			Received: []domain.ReceivedFriendRequest{},
		},
		Stats: domain.UserStats{
			JoinedAt: time.Now().UTC(),
		},
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID
	return user, nil
}

// CreateProfile replaces the user's profile sub-document wholesale.
func (s *userService) CreateProfile(ctx context.Context, userID primitive.ObjectID, profile *domain.Profile) (*domain.User, error) {
	if err := domain.ValidateProfile(profile); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, profile); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetProfile returns the full user document for an external userid.
func (s *userService) GetProfile(ctx context.Context, userid string) (*domain.User, error) {
	user, err := s.userRepo.GetByExternalID(ctx, userid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
