package services

import (
	"context"
	"dietai/internal/metabolism"
	"dietai/internal/mocks"
	"dietai/internal/models"
	"dietai/internal/onboarding"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type onboardingMocks struct {
	sessions *mocks.MockOnboardingSessionRepository
	profiles *mocks.MockUserProfileRepository
	goals    *mocks.MockNutritionGoalRepository
}

func newOnboardingService() (*OnboardingService, onboardingMocks) {
	m := onboardingMocks{
		sessions: new(mocks.MockOnboardingSessionRepository),
		profiles: new(mocks.MockUserProfileRepository),
		goals:    new(mocks.MockNutritionGoalRepository),
	}
	svc := NewOnboardingService(m.sessions, m.profiles, m.goals, hoChiMinh, nil).
		WithClock(func() time.Time { return fixedNow })
	return svc, m
}

func sessionAt(t *testing.T, step onboarding.Step, data onboarding.Data) *models.OnboardingSession {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return &models.OnboardingSession{ID: 1, UserID: 1, Step: string(step), Data: raw}
}

func completeData() onboarding.Data {
	d := onboarding.NewData(fixedNow)
	female := metabolism.Female
	age := 30
	height := 165.0
	weight := 60.0
	target := 55.0
	d.Gender = &female
	d.Age = &age
	d.Height = &height
	d.Weight = &weight
	d.TargetWeight = &target
	d.ActivityLevel = metabolism.Moderate
	d.WeightLossSpeed = 0.5
	d.Name = "Lan"
	return d
}

func TestOnboardingGetStartsFresh(t *testing.T) {
	svc, m := newOnboardingService()
	m.sessions.On("FindByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	state, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, onboarding.StepOnboarding, state.Step)
	assert.Equal(t, 1, state.Progress)
	assert.Equal(t, len(onboarding.Steps), state.TotalSteps)
	assert.Equal(t, "2026-03-10", state.Data.EventDate)
	assert.Equal(t, 0, state.Metrics.BMR)
	assert.Nil(t, state.Data.Weight)
	require.NotNil(t, state.Display.Weight)
	assert.Equal(t, 70.0, *state.Display.Weight)
	assert.Equal(t, 170.0, *state.Display.Height)
	assert.Equal(t, 25, *state.Display.Age)
	assert.Equal(t, metabolism.Male, *state.Display.Gender)
	assert.Equal(t, 65.0, state.Display.DisplayTargetWeight)
	m.sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestOnboardingGetStorageFailure(t *testing.T) {
	svc, m := newOnboardingService()
	m.sessions.On("FindByUserID", mock.Anything, uint(1)).Return(nil, errors.New("db down"))

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestOnboardingSubmitPersistsAnswer(t *testing.T) {
	svc, m := newOnboardingService()
	m.sessions.On("FindByUserID", mock.Anything, uint(1)).
		Return(sessionAt(t, onboarding.StepGender, onboarding.NewData(fixedNow)), nil)

	var saved *models.OnboardingSession
	m.sessions.On("Save", mock.Anything, mock.MatchedBy(func(s *models.OnboardingSession) bool {
		saved = s
		return true
	})).Return(nil)

	gender := "female"
	state, err := svc.Submit(context.Background(), 1, onboarding.Answer{Gender: &gender})
	require.NoError(t, err)
	assert.Equal(t, onboarding.StepAge, state.Step)

	require.NotNil(t, saved)
	assert.Equal(t, uint(1), saved.UserID)
	assert.Equal(t, "age", saved.Step)
	var data onboarding.Data
	require.NoError(t, json.Unmarshal(saved.Data, &data))
	require.NotNil(t, data.Gender)
	assert.Equal(t, metabolism.Female, *data.Gender)
}

func TestOnboardingSubmitValidation(t *testing.T) {
	svc, m := newOnboardingService()
	m.sessions.On("FindByUserID", mock.Anything, uint(1)).
		Return(sessionAt(t, onboarding.StepAge, onboarding.NewData(fixedNow)), nil)

	age := 5
	_, err := svc.Submit(context.Background(), 1, onboarding.Answer{Age: &age})
	assert.True(t, onboarding.IsValidation(err))
	m.sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestOnboardingSetStepAndBack(t *testing.T) {
	svc, m := newOnboardingService()
	m.sessions.On("FindByUserID", mock.Anything, uint(1)).
		Return(sessionAt(t, onboarding.StepHeight, onboarding.NewData(fixedNow)), nil)
	m.sessions.On("Save", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.SetStep(context.Background(), 1, "summary")
	assert.ErrorIs(t, err, onboarding.ErrInvalidTransition)

	_, err = svc.SetStep(context.Background(), 1, "nowhere")
	assert.ErrorIs(t, err, onboarding.ErrUnknownStep)

	state, err := svc.SetStep(context.Background(), 1, "weight")
	require.NoError(t, err)
	assert.Equal(t, onboarding.StepWeight, state.Step)

	state, err = svc.Back(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, onboarding.StepAge, state.Step)
}

func TestOnboardingCorruptSessionRestarts(t *testing.T) {
	svc, m := newOnboardingService()
	m.sessions.On("FindByUserID", mock.Anything, uint(1)).
		Return(&models.OnboardingSession{UserID: 1, Step: "age", Data: []byte("{broken")}, nil)

	state, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, onboarding.StepOnboarding, state.Step)
}

func TestOnboardingMetrics(t *testing.T) {
	svc, m := newOnboardingService()
	m.sessions.On("FindByUserID", mock.Anything, uint(1)).
		Return(sessionAt(t, onboarding.StepName, completeData()), nil)

	metrics, err := svc.Metrics(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1384, metrics.BMR)
	assert.Equal(t, 2145, metrics.TDEE)
	assert.Equal(t, 1595, metrics.TargetCalories)
}

func TestOnboardingCompleteRequiresSummary(t *testing.T) {
	svc, m := newOnboardingService()
	m.sessions.On("FindByUserID", mock.Anything, uint(1)).
		Return(sessionAt(t, onboarding.StepName, completeData()), nil)

	_, err := svc.Complete(context.Background(), 1)
	assert.ErrorIs(t, err, onboarding.ErrInvalidTransition)
	m.profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestOnboardingCompleteRequiresName(t *testing.T) {
	svc, m := newOnboardingService()
	data := completeData()
	data.Name = "  "
	m.sessions.On("FindByUserID", mock.Anything, uint(1)).
		Return(sessionAt(t, onboarding.StepSummary, data), nil)

	_, err := svc.Complete(context.Background(), 1)
	assert.True(t, onboarding.IsValidation(err))
}

func TestOnboardingComplete(t *testing.T) {
	svc, m := newOnboardingService()
	m.sessions.On("FindByUserID", mock.Anything, uint(1)).
		Return(sessionAt(t, onboarding.StepSummary, completeData()), nil)
	m.profiles.On("Upsert", mock.Anything, mock.MatchedBy(func(p *models.UserProfile) bool {
		return p.UserID == 1 && p.Name == "Lan" && p.Gender == "female"
	})).Return(nil)
	m.goals.On("FindByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
	m.goals.On("Upsert", mock.Anything, mock.MatchedBy(func(g *models.NutritionGoal) bool {
		return g.Calories == 1595 && g.TargetWeight == 55
	})).Return(nil)
	m.sessions.On("DeleteByUserID", mock.Anything, uint(1)).Return(nil)

	result, err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1384, result.Profile.BMR)
	assert.Equal(t, 2145, result.Profile.TDEE)
	assert.Equal(t, 1595, result.Profile.TargetCalories)
	require.NotNil(t, result.Profile.BMI)
	assert.Equal(t, 22.0, *result.Profile.BMI)
	assert.Equal(t, 120.0, result.Goal.Protein, "untouched goal fields keep their defaults")

	m.profiles.AssertExpectations(t)
	m.goals.AssertExpectations(t)
	m.sessions.AssertExpectations(t)
}

func TestOnboardingCompleteProfileFailure(t *testing.T) {
	svc, m := newOnboardingService()
	m.sessions.On("FindByUserID", mock.Anything, uint(1)).
		Return(sessionAt(t, onboarding.StepSummary, completeData()), nil)
	m.profiles.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("unique violation"))

	_, err := svc.Complete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStorage)
	m.sessions.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
}

func TestOnboardingReset(t *testing.T) {
	svc, m := newOnboardingService()
	m.sessions.On("DeleteByUserID", mock.Anything, uint(1)).Return(nil).Once()
	m.sessions.On("DeleteByUserID", mock.Anything, uint(2)).Return(errors.New("locked")).Once()

	assert.NoError(t, svc.Reset(context.Background(), 1))
	assert.ErrorIs(t, svc.Reset(context.Background(), 2), ErrStorage)
}
