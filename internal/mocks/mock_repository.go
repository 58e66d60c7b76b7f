package mocks

import (
	"context"
	"dietai/internal/models"
	"dietai/internal/repository"
	"time"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Shared MockUserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) FindByUserID(ctx context.Context, userID uint) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Shared MockNutritionGoalRepository
type MockNutritionGoalRepository struct {
	mock.Mock
}

func (m *MockNutritionGoalRepository) FindByUserID(ctx context.Context, userID uint) (*models.NutritionGoal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionGoal), args.Error(1)
}

func (m *MockNutritionGoalRepository) Upsert(ctx context.Context, goal *models.NutritionGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

// Shared MockOnboardingSessionRepository
type MockOnboardingSessionRepository struct {
	mock.Mock
}

func (m *MockOnboardingSessionRepository) FindByUserID(ctx context.Context, userID uint) (*models.OnboardingSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OnboardingSession), args.Error(1)
}

func (m *MockOnboardingSessionRepository) Save(ctx context.Context, session *models.OnboardingSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockOnboardingSessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockOnboardingSessionRepository) DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockFoodLogRepository
type MockFoodLogRepository struct {
	mock.Mock
}

func (m *MockFoodLogRepository) FindByUserAndDate(ctx context.Context, userID uint, date string) ([]models.ConsumedFood, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ConsumedFood), args.Error(1)
}

func (m *MockFoodLogRepository) Insert(ctx context.Context, entry *models.ConsumedFood) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFoodLogRepository) Delete(ctx context.Context, userID uint, date, id string) (bool, error) {
	args := m.Called(ctx, userID, date, id)
	return args.Bool(0), args.Error(1)
}

// Shared MockChatMessageRepository
type MockChatMessageRepository struct {
	mock.Mock
}

func (m *MockChatMessageRepository) Create(ctx context.Context, messages ...*models.ChatMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func (m *MockChatMessageRepository) FindRecentByUserID(ctx context.Context, userID uint, limit int) ([]models.ChatMessage, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

var (
	_ repository.UserRepository              = (*MockUserRepository)(nil)
	_ repository.UserProfileRepository       = (*MockUserProfileRepository)(nil)
	_ repository.NutritionGoalRepository     = (*MockNutritionGoalRepository)(nil)
	_ repository.OnboardingSessionRepository = (*MockOnboardingSessionRepository)(nil)
	_ repository.FoodLogRepository           = (*MockFoodLogRepository)(nil)
	_ repository.ChatMessageRepository       = (*MockChatMessageRepository)(nil)
)
