package service

import (
	"context"
	"errors"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound = errors.New("workout plan not found")
)

// WorkoutPlanService manages a user's weekly workout plans. Plans are
// created and updated wholesale; there is no field-level patching beyond the
// named top-level fields of an update.
type WorkoutPlanService interface {
	CreatePlan(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error)
	ListPlans(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutPlan, error)
	GetPlanByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, id primitive.ObjectID, update *repository.WorkoutPlanUpdate) (*domain.WorkoutPlan, error)
	DeletePlan(ctx context.Context, id primitive.ObjectID) error
	ListSplitTemplates() []domain.SplitTemplate
}

type workoutPlanService struct {
	planRepo repository.WorkoutPlanRepository
}

// NewWorkoutPlanService creates a new instance of workoutPlanService.
func NewWorkoutPlanService(planRepo repository.WorkoutPlanRepository) WorkoutPlanService {
	return &workoutPlanService{planRepo: planRepo}
}

// CreatePlan validates the full nested structure and persists it as given,
// applying defaults for omitted metadata. The userId and exerciseId
// references are advisory and not checked for existence.
func (s *workoutPlanService) CreatePlan(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	if err := domain.ValidateWorkoutPlan(plan); err != nil {
		return nil, err
	}

	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = planID
	return plan, nil
}

// ListPlans returns all plans owned by the user, regardless of isActive or
// isTemplate.
func (s *workoutPlanService) ListPlans(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	return s.planRepo.GetByUserID(ctx, userID)
}

// GetPlanByID fetches a single plan.
func (s *workoutPlanService) GetPlanByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// UpdatePlan merges the supplied top-level fields into an existing plan and
// returns the post-update document. It never creates a plan.
func (s *workoutPlanService) UpdatePlan(ctx context.Context, id primitive.ObjectID, update *repository.WorkoutPlanUpdate) (*domain.WorkoutPlan, error) {
	verr := &domain.ValidationError{}
	if update.Name != nil && *update.Name == "" {
		verr.Problems = append(verr.Problems, "name must not be empty")
	}
	if update.Difficulty != nil && !domain.ValidFitnessLevel(*update.Difficulty) {
		verr.Problems = append(verr.Problems, "difficulty is not one of beginner, intermediate, advanced")
	}
	if update.EstimatedDuration != nil && *update.EstimatedDuration <= 0 {
		verr.Problems = append(verr.Problems, "estimatedDuration must be positive")
	}
	if len(verr.Problems) > 0 {
		return nil, verr
	}
	if update.WeeklySchedule != nil {
		if err := domain.ValidateWeeklySchedule(update.WeeklySchedule); err != nil {
			return nil, err
		}
	}

	plan, err := s.planRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// DeletePlan removes a plan by id.
func (s *workoutPlanService) DeletePlan(ctx context.Context, id primitive.ObjectID) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

// ListSplitTemplates returns the built-in split templates. Static data; no
// store involvement.
func (s *workoutPlanService) ListSplitTemplates() []domain.SplitTemplate {
	return domain.SplitTemplates()
}
