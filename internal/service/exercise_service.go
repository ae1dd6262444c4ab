package service

import (
	"context"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/repository"
)

// ExerciseService exposes the read-only exercise catalog.
type ExerciseService interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

// ListExercises returns every catalog entry, unfiltered.
func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetAll(ctx)
}
