package onboarding

import (
	"dietai/internal/metabolism"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ValidationError is an input-boundary failure for a single answer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Answer carries the value a screen submits. Only the fields of the current
// step are read.
type Answer struct {
	Login            *bool    `json:"login,omitempty"`
	UID              *string  `json:"uid,omitempty"`
	Gender           *string  `json:"gender,omitempty"`
	Age              *int     `json:"age,omitempty"`
	Height           *float64 `json:"height,omitempty"`
	HeightUnit       *string  `json:"height_unit,omitempty"`
	Weight           *float64 `json:"weight,omitempty"`
	WeightUnit       *string  `json:"weight_unit,omitempty"`
	Goal             *string  `json:"goal,omitempty"`
	TargetWeight     *float64 `json:"target_weight,omitempty"`
	TargetWeightUnit *string  `json:"target_weight_unit,omitempty"`
	EventDate        *string  `json:"event_date,omitempty"`
	ActivityLevel    *string  `json:"activity_level,omitempty"`
	WeightLossSpeed  *float64 `json:"weight_loss_speed,omitempty"`
	HealthCondition  *string  `json:"health_condition,omitempty"`
	Name             *string  `json:"name,omitempty"`
}

// Flow is the onboarding step sequencer together with the data it collects.
type Flow struct {
	Step Step `json:"step"`
	Data Data `json:"data"`
}

func NewFlow(today time.Time) *Flow {
	return &Flow{Step: StepOnboarding, Data: NewData(today)}
}

// SetStep moves to an arbitrary step, as long as the transition table allows it.
func (f *Flow) SetStep(to Step) error {
	if !to.Valid() {
		return ErrUnknownStep
	}
	if to == f.Step {
		return nil
	}
	if !CanTransition(f.Step, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, f.Step, to)
	}
	f.Step = to
	return nil
}

func (f *Flow) Back() error {
	t, ok := transitions[f.Step]
	if !ok {
		return ErrUnknownStep
	}
	if t.back == "" {
		return ErrNoPreviousStep
	}
	f.Step = t.back
	return nil
}

// Progress returns the 1-based position of the current step and the step count.
func (f *Flow) Progress() (int, int) {
	return f.Step.index() + 1, len(Steps)
}

// Submit validates the answer for the current step, stores it and advances
// along the forward edge.
func (f *Flow) Submit(a Answer) error {
	next, err := f.apply(a)
	if err != nil {
		return err
	}
	return f.SetStep(next)
}

func (f *Flow) apply(a Answer) (Step, error) {
	d := &f.Data
	switch f.Step {
	case StepOnboarding:
		if a.Login != nil && *a.Login {
			return StepLogin, nil
		}
		return StepGender, nil

	case StepLogin:
		if a.UID == nil || strings.TrimSpace(*a.UID) == "" {
			return "", invalid("uid", "login id is required")
		}
		d.UID = strings.TrimSpace(*a.UID)

	case StepGender:
		if a.Gender == nil {
			return "", invalid("gender", "gender is required")
		}
		g := metabolism.Gender(strings.ToLower(strings.TrimSpace(*a.Gender)))
		if g != metabolism.Male && g != metabolism.Female {
			return "", invalid("gender", "gender must be male or female")
		}
		d.Gender = &g

	case StepAge:
		if a.Age == nil {
			return "", invalid("age", "age is required")
		}
		if *a.Age < MinAge || *a.Age > MaxAge {
			return "", invalid("age", "age must be between %d and %d", MinAge, MaxAge)
		}
		age := *a.Age
		d.Age = &age

	case StepHeight:
		unit, err := parseHeightUnit(a.HeightUnit, d.HeightUnit)
		if err != nil {
			return "", err
		}
		if a.Height == nil {
			return "", invalid("height", "height is required")
		}
		cm := *a.Height
		if unit == HeightFt {
			cm = metabolism.FtToCm(cm)
		}
		if cm < MinHeightCm || cm > MaxHeightCm {
			return "", invalid("height", "height must be between %.0f and %.0f cm", MinHeightCm, MaxHeightCm)
		}
		d.Height, d.HeightUnit = &cm, unit

	case StepWeight:
		kg, unit, err := parseWeight("weight", a.Weight, a.WeightUnit, d.WeightUnit)
		if err != nil {
			return "", err
		}
		d.Weight, d.WeightUnit = &kg, unit

	case StepGoals:
		if a.Goal == nil {
			return "", invalid("goal", "goal is required")
		}
		g := metabolism.Goal(strings.TrimSpace(*a.Goal))
		switch g {
		case metabolism.LoseWeight, metabolism.GainWeight, metabolism.ImproveHealth:
		default:
			return "", invalid("goal", "goal must be lose_weight, gain_weight or improve_health")
		}
		d.Goal = g

	case StepTargetWeight:
		kg, unit, err := parseWeight("targetWeight", a.TargetWeight, a.TargetWeightUnit, d.TargetWeightUnit)
		if err != nil {
			return "", err
		}
		d.TargetWeight, d.TargetWeightUnit = &kg, unit

	case StepEventDate:
		if a.EventDate == nil {
			return "", invalid("eventDate", "event date is required")
		}
		date, err := time.Parse(DateLayout, strings.TrimSpace(*a.EventDate))
		if err != nil {
			return "", invalid("eventDate", "invalid date %q (expected YYYY-MM-DD)", *a.EventDate)
		}
		d.EventDate = date.Format(DateLayout)

	case StepActivityLevel:
		if a.ActivityLevel == nil {
			return "", invalid("activityLevel", "activity level is required")
		}
		level := metabolism.ActivityLevel(strings.TrimSpace(*a.ActivityLevel))
		if !metabolism.ValidActivityLevel(level) {
			return "", invalid("activityLevel", "activity level must be sedentary, light, moderate or very_active")
		}
		d.ActivityLevel = level

	case StepWeightLossSpeed:
		if a.WeightLossSpeed == nil {
			return "", invalid("weightLossSpeed", "weight loss speed is required")
		}
		if *a.WeightLossSpeed < MinWeightLossSpeed || *a.WeightLossSpeed > MaxWeightLossSpeed {
			return "", invalid("weightLossSpeed", "weight loss speed must be between %.1f and %.1f kg/week", MinWeightLossSpeed, MaxWeightLossSpeed)
		}
		d.WeightLossSpeed = *a.WeightLossSpeed

	case StepHealthCondition:
		if a.HealthCondition == nil {
			return "", invalid("healthCondition", "health condition is required")
		}
		hc := HealthCondition(strings.TrimSpace(*a.HealthCondition))
		if !hc.Valid() {
			return "", invalid("healthCondition", "health condition must be none, hypertension, diabetes, cholesterol or other")
		}
		d.HealthCondition = hc

	case StepName:
		if a.Name == nil {
			return "", invalid("name", "name is required")
		}
		if err := ValidateName(*a.Name); err != nil {
			return "", err
		}
		d.Name = strings.TrimSpace(*a.Name)

	case StepSummary:
		return "", ErrFlowFinished

	default:
		return "", ErrUnknownStep
	}

	return transitions[f.Step].next[0], nil
}

func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("name", "name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return invalid("name", "name must be at most %d characters", MaxNameLen)
	}
	return nil
}

// ReadyToComplete reports whether the flow can hand off to the main app.
func (f *Flow) ReadyToComplete() error {
	if f.Step != StepSummary {
		return fmt.Errorf("%w: onboarding is at step %s", ErrInvalidTransition, f.Step)
	}
	return ValidateName(f.Data.Name)
}

func parseHeightUnit(raw *string, current HeightUnit) (HeightUnit, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		if current == "" {
			return HeightCm, nil
		}
		return current, nil
	}
	switch u := HeightUnit(strings.ToLower(strings.TrimSpace(*raw))); u {
	case HeightCm, HeightFt:
		return u, nil
	}
	return "", invalid("heightUnit", "height unit must be cm or ft")
}

func parseWeight(field string, value *float64, rawUnit *string, current WeightUnit) (float64, WeightUnit, error) {
	unit := current
	if unit == "" {
		unit = WeightKg
	}
	if rawUnit != nil && strings.TrimSpace(*rawUnit) != "" {
		switch u := WeightUnit(strings.ToLower(strings.TrimSpace(*rawUnit))); u {
		case WeightKg, WeightLbs:
			unit = u
		default:
			return 0, "", invalid(field+"Unit", "weight unit must be kg or lbs")
		}
	}
	if value == nil {
		return 0, "", invalid(field, "%s is required", field)
	}
	kg := *value
	if unit == WeightLbs {
		kg = metabolism.LbsToKg(kg)
	}
	if kg < MinWeightKg || kg > MaxWeightKg {
		return 0, "", invalid(field, "%s must be between %.0f and %.0f kg", field, MinWeightKg, MaxWeightKg)
	}
	return kg, unit, nil
}

// IsValidation reports whether err is an answer validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
