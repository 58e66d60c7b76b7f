package services

import (
	"context"
	"dietai/internal/models"
	"dietai/internal/onboarding"
	"dietai/internal/repository"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OnboardingState is what every onboarding endpoint returns. Display is only
// for rendering; Metrics is always computed from Data.
type OnboardingState struct {
	Step       onboarding.Step    `json:"step" example:"gender"`
	Progress   int                `json:"progress" example:"3"`
	TotalSteps int                `json:"total_steps" example:"14"`
	Allowed    []onboarding.Step  `json:"allowed_steps"`
	Data       onboarding.Data    `json:"data"`
	Display    onboarding.View    `json:"display"`
	Metrics    onboarding.Metrics `json:"metrics"`
}

type OnboardingResult struct {
	Profile models.UserProfile   `json:"profile"`
	Goal    models.NutritionGoal `json:"goal"`
}

type OnboardingService struct {
	sessions repository.OnboardingSessionRepository
	profiles repository.UserProfileRepository
	goals    repository.NutritionGoalRepository
	loc      *time.Location
	now      func() time.Time
	log      *zap.Logger
}

func NewOnboardingService(
	sessions repository.OnboardingSessionRepository,
	profiles repository.UserProfileRepository,
	goals repository.NutritionGoalRepository,
	loc *time.Location,
	log *zap.Logger,
) *OnboardingService {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OnboardingService{
		sessions: sessions,
		profiles: profiles,
		goals:    goals,
		loc:      loc,
		now:      time.Now,
		log:      log,
	}
}

func (s *OnboardingService) WithClock(now func() time.Time) *OnboardingService {
	s.now = now
	return s
}

// Get returns the user's session, or a fresh one when none is stored yet.
// A fresh session is not persisted until the first change.
func (s *OnboardingService) Get(ctx context.Context, userID uint) (*OnboardingState, error) {
	flow, err := s.loadFlow(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stateOf(flow), nil
}

func (s *OnboardingService) Submit(ctx context.Context, userID uint, answer onboarding.Answer) (*OnboardingState, error) {
	return s.mutate(ctx, userID, func(f *onboarding.Flow) error {
		return f.Submit(answer)
	})
}

func (s *OnboardingService) Back(ctx context.Context, userID uint) (*OnboardingState, error) {
	return s.mutate(ctx, userID, func(f *onboarding.Flow) error {
		return f.Back()
	})
}

func (s *OnboardingService) SetStep(ctx context.Context, userID uint, rawStep string) (*OnboardingState, error) {
	step, err := onboarding.ParseStep(rawStep)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userID, func(f *onboarding.Flow) error {
		return f.SetStep(step)
	})
}

func (s *OnboardingService) Metrics(ctx context.Context, userID uint) (onboarding.Metrics, error) {
	flow, err := s.loadFlow(ctx, userID)
	if err != nil {
		return onboarding.Metrics{}, err
	}
	return flow.Data.Metrics(), nil
}

// Complete copies the collected answers into the user's profile, derives the
// nutrition goal from the target calories and discards the session.
func (s *OnboardingService) Complete(ctx context.Context, userID uint) (*OnboardingResult, error) {
	flow, err := s.loadFlow(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := flow.ReadyToComplete(); err != nil {
		return nil, err
	}

	profile := profileFromData(userID, flow.Data)
	if err := s.profiles.Upsert(ctx, &profile); err != nil {
		s.log.Error("Failed to save profile from onboarding", zap.Uint("user_id", userID), zap.Error(err))
		return nil, storageError("save profile", err)
	}

	goal, err := s.goals.FindByUserID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		def := models.DefaultNutritionGoal(userID)
		goal = &def
	case err != nil:
		s.log.Error("Failed to load nutrition goal", zap.Uint("user_id", userID), zap.Error(err))
		return nil, storageError("load nutrition goal", err)
	}
	if profile.TargetCalories > 0 {
		goal.Calories = float64(profile.TargetCalories)
	}
	if profile.TargetWeight != nil {
		goal.TargetWeight = *profile.TargetWeight
	}
	if err := s.goals.Upsert(ctx, goal); err != nil {
		s.log.Error("Failed to save nutrition goal", zap.Uint("user_id", userID), zap.Error(err))
		return nil, storageError("save nutrition goal", err)
	}

	if err := s.sessions.DeleteByUserID(ctx, userID); err != nil {
		// profile and goal are already saved; a stale session is purged by the cleanup job
		s.log.Warn("Failed to discard onboarding session", zap.Uint("user_id", userID), zap.Error(err))
	}

	s.log.Info("Onboarding completed",
		zap.Uint("user_id", userID),
		zap.Int("target_calories", profile.TargetCalories),
	)
	return &OnboardingResult{Profile: profile, Goal: *goal}, nil
}

// Reset throws the session away so the next Get starts over.
func (s *OnboardingService) Reset(ctx context.Context, userID uint) error {
	if err := s.sessions.DeleteByUserID(ctx, userID); err != nil {
		s.log.Error("Failed to reset onboarding", zap.Uint("user_id", userID), zap.Error(err))
		return storageError("reset onboarding", err)
	}
	return nil
}

func (s *OnboardingService) mutate(ctx context.Context, userID uint, change func(*onboarding.Flow) error) (*OnboardingState, error) {
	flow, err := s.loadFlow(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := change(flow); err != nil {
		return nil, err
	}
	if err := s.saveFlow(ctx, userID, flow); err != nil {
		return nil, err
	}
	return stateOf(flow), nil
}

func (s *OnboardingService) loadFlow(ctx context.Context, userID uint) (*onboarding.Flow, error) {
	session, err := s.sessions.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return onboarding.NewFlow(s.now().In(s.loc)), nil
	}
	if err != nil {
		s.log.Error("Failed to load onboarding session", zap.Uint("user_id", userID), zap.Error(err))
		return nil, storageError("load onboarding session", err)
	}

	step, err := onboarding.ParseStep(session.Step)
	if err != nil {
		s.log.Warn("Discarding onboarding session with unknown step",
			zap.Uint("user_id", userID),
			zap.String("step", session.Step),
		)
		return onboarding.NewFlow(s.now().In(s.loc)), nil
	}

	flow := onboarding.NewFlow(s.now().In(s.loc))
	flow.Step = step
	if len(session.Data) > 0 {
		if err := json.Unmarshal(session.Data, &flow.Data); err != nil {
			s.log.Warn("Discarding unreadable onboarding data", zap.Uint("user_id", userID), zap.Error(err))
			return onboarding.NewFlow(s.now().In(s.loc)), nil
		}
	}
	return flow, nil
}

func (s *OnboardingService) saveFlow(ctx context.Context, userID uint, flow *onboarding.Flow) error {
	data, err := json.Marshal(flow.Data)
	if err != nil {
		return fmt.Errorf("marshal onboarding data: %w", err)
	}

	session := &models.OnboardingSession{
		UserID: userID,
		Step:   string(flow.Step),
		Data:   datatypes.JSON(data),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		s.log.Error("Failed to save onboarding session",
			zap.Uint("user_id", userID),
			zap.String("step", string(flow.Step)),
			zap.Error(err),
		)
		return storageError("save onboarding session", err)
	}
	return nil
}

func stateOf(flow *onboarding.Flow) *OnboardingState {
	current, total := flow.Progress()
	return &OnboardingState{
		Step:       flow.Step,
		Progress:   current,
		TotalSteps: total,
		Allowed:    onboarding.Allowed(flow.Step),
		Data:       flow.Data,
		Display:    flow.Data.View(),
		Metrics:    flow.Data.Metrics(),
	}
}

func profileFromData(userID uint, d onboarding.Data) models.UserProfile {
	p := models.UserProfile{
		UserID:          userID,
		Name:            d.Name,
		Age:             d.Age,
		Height:          d.Height,
		HeightUnit:      string(d.HeightUnit),
		Weight:          d.Weight,
		WeightUnit:      string(d.WeightUnit),
		TargetWeight:    d.TargetWeight,
		Goal:            string(d.Goal),
		EventDate:       d.EventDate,
		ActivityLevel:   string(d.ActivityLevel),
		WeightLossSpeed: d.WeightLossSpeed,
		HealthCondition: string(d.HealthCondition),
	}
	if d.Gender != nil {
		p.Gender = string(*d.Gender)
	}
	p.Recalculate()
	return p
}
