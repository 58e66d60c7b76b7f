package controllers_test

import (
	"dietai/internal/controllers"
	"dietai/internal/metabolism"
	"dietai/internal/mocks"
	"dietai/internal/models"
	"dietai/internal/onboarding"
	"dietai/internal/services"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type onboardingFixture struct {
	router   *gin.Engine
	sessions *mocks.MockOnboardingSessionRepository
	profiles *mocks.MockUserProfileRepository
	goals    *mocks.MockNutritionGoalRepository
}

func setupOnboarding(t *testing.T) onboardingFixture {
	t.Helper()
	f := onboardingFixture{
		sessions: new(mocks.MockOnboardingSessionRepository),
		profiles: new(mocks.MockUserProfileRepository),
		goals:    new(mocks.MockNutritionGoalRepository),
	}
	now := time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC)
	svc := services.NewOnboardingService(f.sessions, f.profiles, f.goals, time.UTC, nil).
		WithClock(func() time.Time { return now })
	controller := controllers.NewOnboardingController(svc)

	f.router = setupTestRouter()
	f.router.Use(addAuthMiddleware(1))
	f.router.GET("/onboarding", controller.GetOnboarding)
	f.router.POST("/onboarding/answer", controller.SubmitAnswer)
	f.router.POST("/onboarding/back", controller.GoBack)
	f.router.PUT("/onboarding/step", controller.SetStep)
	f.router.GET("/onboarding/metrics", controller.GetMetrics)
	f.router.POST("/onboarding/complete", controller.Complete)
	f.router.DELETE("/onboarding", controller.Reset)
	return f
}

func storedSession(t *testing.T, step onboarding.Step, mutate func(*onboarding.Data)) *models.OnboardingSession {
	t.Helper()
	data := onboarding.NewData(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	if mutate != nil {
		mutate(&data)
	}
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return &models.OnboardingSession{UserID: 1, Step: string(step), Data: raw}
}

func TestGetOnboardingFresh(t *testing.T) {
	f := setupOnboarding(t)
	f.sessions.On("FindByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	w, response := performRequest(t, f.router, http.MethodGet, "/onboarding", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "onboarding", data["step"])
	assert.Equal(t, float64(1), data["progress"])
	assert.Equal(t, float64(14), data["total_steps"])
	assert.Equal(t, []interface{}{"gender", "login"}, data["allowed_steps"])
	assert.Nil(t, data["data"].(map[string]interface{})["weight"])
	display := data["display"].(map[string]interface{})
	assert.Equal(t, 70.0, display["weight"])
	assert.Equal(t, 170.0, display["display_height"])
}

func TestSubmitAnswer(t *testing.T) {
	tests := []struct {
		name           string
		step           onboarding.Step
		body           string
		expectSave     bool
		expectedStatus int
		expectedStep   string
	}{
		{"login branch", onboarding.StepOnboarding, `{"login":true}`, true, http.StatusOK, "login"},
		{"age accepted", onboarding.StepAge, `{"age":30}`, true, http.StatusOK, "height"},
		{"height in feet", onboarding.StepHeight, `{"height":5.5,"height_unit":"ft"}`, true, http.StatusOK, "weight"},
		{"age out of range", onboarding.StepAge, `{"age":120}`, false, http.StatusBadRequest, ""},
		{"summary has no next step", onboarding.StepSummary, `{}`, false, http.StatusConflict, ""},
		{"malformed json", onboarding.StepAge, `{"age":`, false, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupOnboarding(t)
			f.sessions.On("FindByUserID", mock.Anything, uint(1)).Return(storedSession(t, tt.step, nil), nil).Maybe()
			if tt.expectSave {
				f.sessions.On("Save", mock.Anything, mock.MatchedBy(func(s *models.OnboardingSession) bool {
					return s.Step == tt.expectedStep
				})).Return(nil)
			}

			w, response := performRequest(t, f.router, http.MethodPost, "/onboarding/answer", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, tt.expectedStep, data["step"])
			} else {
				f.sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			}
			f.sessions.AssertExpectations(t)
		})
	}
}

func TestSubmitAnswerStorageFailure(t *testing.T) {
	f := setupOnboarding(t)
	f.sessions.On("FindByUserID", mock.Anything, uint(1)).Return(storedSession(t, onboarding.StepAge, nil), nil)
	f.sessions.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	w, response := performRequest(t, f.router, http.MethodPost, "/onboarding/answer", `{"age":30}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to save onboarding", response["message"])
}

func TestGoBackAndSetStep(t *testing.T) {
	f := setupOnboarding(t)
	f.sessions.On("FindByUserID", mock.Anything, uint(1)).Return(storedSession(t, onboarding.StepOnboarding, nil), nil)
	f.sessions.On("Save", mock.Anything, mock.Anything).Return(nil)

	w, _ := performRequest(t, f.router, http.MethodPost, "/onboarding/back", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = performRequest(t, f.router, http.MethodPut, "/onboarding/step", `{"step":"name"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = performRequest(t, f.router, http.MethodPut, "/onboarding/step", `{"step":"bogus"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, response := performRequest(t, f.router, http.MethodPut, "/onboarding/step", `{"step":"login"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "login", response["data"].(map[string]interface{})["step"])
}

func TestGetMetrics(t *testing.T) {
	f := setupOnboarding(t)
	f.sessions.On("FindByUserID", mock.Anything, uint(1)).Return(storedSession(t, onboarding.StepActivityLevel, func(d *onboarding.Data) {
		gender, age, height, weight := metabolism.Female, 30, 165.0, 60.0
		d.Gender, d.Age, d.Height, d.Weight = &gender, &age, &height, &weight
		d.ActivityLevel = metabolism.Moderate
	}), nil)

	w, response := performRequest(t, f.router, http.MethodGet, "/onboarding/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1384), data["bmr"])
	assert.Equal(t, float64(2145), data["tdee"])
	assert.Equal(t, 22.0, data["bmi"])
	assert.Equal(t, "normal", data["bmi_category"])
}

func TestCompleteOnboarding(t *testing.T) {
	t.Run("not at summary", func(t *testing.T) {
		f := setupOnboarding(t)
		f.sessions.On("FindByUserID", mock.Anything, uint(1)).Return(storedSession(t, onboarding.StepName, nil), nil)

		w, _ := performRequest(t, f.router, http.MethodPost, "/onboarding/complete", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		f := setupOnboarding(t)
		f.sessions.On("FindByUserID", mock.Anything, uint(1)).Return(storedSession(t, onboarding.StepSummary, nil), nil)

		w, _ := performRequest(t, f.router, http.MethodPost, "/onboarding/complete", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("completed", func(t *testing.T) {
		f := setupOnboarding(t)
		f.sessions.On("FindByUserID", mock.Anything, uint(1)).Return(storedSession(t, onboarding.StepSummary, func(d *onboarding.Data) {
			d.Name = "Lan"
		}), nil)
		f.profiles.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		f.goals.On("FindByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
		f.goals.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		f.sessions.On("DeleteByUserID", mock.Anything, uint(1)).Return(nil)

		w, response := performRequest(t, f.router, http.MethodPost, "/onboarding/complete", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		data := response["data"].(map[string]interface{})
		assert.Equal(t, "Lan", data["profile"].(map[string]interface{})["name"])
		f.sessions.AssertExpectations(t)
	})
}

func TestResetOnboarding(t *testing.T) {
	f := setupOnboarding(t)
	f.sessions.On("DeleteByUserID", mock.Anything, uint(1)).Return(nil)

	w, _ := performRequest(t, f.router, http.MethodDelete, "/onboarding", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
