package api

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/repository"
	"gymapp/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing full-stack handler tests: real
// services, real routes, no mongo.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
	calls int
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*domain.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.calls++
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return primitive.NilObjectID, &repository.DuplicateKeyError{Field: "email"}
		}
		if user.Phone != "" && existing.Phone == user.Phone {
			return primitive.NilObjectID, &repository.DuplicateKeyError{Field: "phone"}
		}
	}
	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	r.users[user.ID] = &clone
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByExternalID(ctx context.Context, userid string) (*domain.User, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.UserID == userid {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id primitive.ObjectID, profile *domain.Profile) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.Profile = profile
	user.UpdatedAt = time.Now().UTC()
	return nil
}

type fakeExerciseRepo struct {
	exercises []domain.Exercise
	err       error
}

func (r *fakeExerciseRepo) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.exercises == nil {
		return []domain.Exercise{}, nil
	}
	return r.exercises, nil
}

type fakePlanRepo struct {
	plans map[primitive.ObjectID]*domain.WorkoutPlan
	calls int
	err   error
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[primitive.ObjectID]*domain.WorkoutPlan{}}
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	r.calls++
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	clone := *plan
	r.plans[plan.ID] = &clone
	return plan.ID, nil
}

func (r *fakePlanRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	plan, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *plan
	return &clone, nil
}

func (r *fakePlanRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	result := []domain.WorkoutPlan{}
	for _, plan := range r.plans {
		if plan.UserID == userID {
			result = append(result, *plan)
		}
	}
	return result, nil
}

func (r *fakePlanRepo) Update(ctx context.Context, id primitive.ObjectID, update *repository.WorkoutPlanUpdate) (*domain.WorkoutPlan, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	plan, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Name != nil {
		plan.Name = *update.Name
	}
	if update.Description != nil {
		plan.Description = *update.Description
	}
	if update.Difficulty != nil {
		plan.Difficulty = *update.Difficulty
	}
	if update.EstimatedDuration != nil {
		plan.EstimatedDuration = *update.EstimatedDuration
	}
	if update.IsActive != nil {
		plan.IsActive = *update.IsActive
	}
	if update.IsTemplate != nil {
		plan.IsTemplate = *update.IsTemplate
	}
	if update.WeeklySchedule != nil {
		plan.WeeklySchedule = *update.WeeklySchedule
	}
	if update.Stats != nil {
		plan.Stats = *update.Stats
	}
	plan.UpdatedAt = time.Now().UTC()
	clone := *plan
	return &clone, nil
}

func (r *fakePlanRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	if _, ok := r.plans[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}

type fakeFileStorage struct{}

func (f *fakeFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	return "https://storage.test/put/" + objectKey, nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return "https://storage.test/get/" + objectKey, nil
}

type testEnv struct {
	router       *gin.Engine
	userRepo     *fakeUserRepo
	exerciseRepo *fakeExerciseRepo
	planRepo     *fakePlanRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		userRepo:     newFakeUserRepo(),
		exerciseRepo: &fakeExerciseRepo{},
		planRepo:     newFakePlanRepo(),
	}

	router := gin.New()
	SetupRoutes(router,
		service.NewUserService(env.userRepo),
		service.NewExerciseService(env.exerciseRepo),
		service.NewWorkoutPlanService(env.planRepo),
		service.NewMediaService(env.userRepo, &fakeFileStorage{}),
	)
	env.router = router
	return env
}

func (e *testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d, body: %s", want, w.Code, w.Body.String())
	}
}
