package repository

import (
	"gymapp/backend/internal/domain"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// DuplicateKeyError reports a unique-constraint violation with the offending
// field identified, so callers never have to sniff driver error internals.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key on field %q", e.Field)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// GetByExternalID looks a user up by the externally issued userid field,
	// not the internal ObjectID.
	GetByExternalID(ctx context.Context, userid string) (*domain.User, error)
	// UpdateProfile replaces the profile sub-document wholesale and
	// refreshes updatedAt.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, profile *domain.Profile) error
}

// ExerciseRepository defines the interface for the read-only exercise catalog.
type ExerciseRepository interface {
	GetAll(ctx context.Context) ([]domain.Exercise, error)
}

// WorkoutPlanRepository defines the interface for workout plan data.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutPlan, error)
	// Update applies the supplied top-level fields to an existing document
	// and returns the post-update document. It never inserts.
	Update(ctx context.Context, id primitive.ObjectID, update *WorkoutPlanUpdate) (*domain.WorkoutPlan, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WorkoutPlanUpdate names the top-level plan fields that a full-document
// update may replace. Nil pointers leave the stored value untouched.
type WorkoutPlanUpdate struct {
	Name              *string
	Description       *string
	Difficulty        *domain.FitnessLevel
	EstimatedDuration *int
	IsActive          *bool
	IsTemplate        *bool
	WeeklySchedule    *domain.WeeklySchedule
	Stats             *domain.PlanStats
}
