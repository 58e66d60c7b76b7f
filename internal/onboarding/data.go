package onboarding

import (
	"dietai/internal/metabolism"
	"fmt"
	"time"
)

type HeightUnit string

const (
	HeightCm HeightUnit = "cm"
	HeightFt HeightUnit = "ft"
)

type WeightUnit string

const (
	WeightKg  WeightUnit = "kg"
	WeightLbs WeightUnit = "lbs"
)

type HealthCondition string

const (
	ConditionNone         HealthCondition = "none"
	ConditionHypertension HealthCondition = "hypertension"
	ConditionDiabetes     HealthCondition = "diabetes"
	ConditionCholesterol  HealthCondition = "cholesterol"
	ConditionOther        HealthCondition = "other"
)

func (h HealthCondition) Valid() bool {
	switch h {
	case ConditionNone, ConditionHypertension, ConditionDiabetes, ConditionCholesterol, ConditionOther:
		return true
	}
	return false
}

const (
	DefaultWeightLossSpeed = 0.32
	MinWeightLossSpeed     = 0.1
	MaxWeightLossSpeed     = 1.0

	MinAge      = 10
	MaxAge      = 100
	MinHeightCm = 100.0
	MaxHeightCm = 250.0
	MinWeightKg = 30.0
	MaxWeightKg = 200.0
	MaxNameLen  = 32

	// outside this band the target-weight screen shows a warning
	safeTargetMinKg = 40.0
	safeTargetMaxKg = 150.0
)

const DateLayout = "2006-01-02"

// Data is the partially filled profile collected across onboarding screens.
// Height is always centimetres and weights always kilograms; the unit fields
// only remember what the user picked for display.
type Data struct {
	UID              string                   `json:"uid,omitempty"`
	Gender           *metabolism.Gender       `json:"gender"`
	Age              *int                     `json:"age"`
	Height           *float64                 `json:"height"`
	HeightUnit       HeightUnit               `json:"height_unit"`
	Weight           *float64                 `json:"weight"`
	WeightUnit       WeightUnit               `json:"weight_unit"`
	TargetWeight     *float64                 `json:"target_weight"`
	TargetWeightUnit WeightUnit               `json:"target_weight_unit"`
	Goal             metabolism.Goal          `json:"goal"`
	EventDate        string                   `json:"event_date"`
	ActivityLevel    metabolism.ActivityLevel `json:"activity_level"`
	WeightLossSpeed  float64                  `json:"weight_loss_speed"`
	HealthCondition  HealthCondition          `json:"health_condition"`
	Name             string                   `json:"name"`
}

func NewData(today time.Time) Data {
	return Data{
		HeightUnit:       HeightCm,
		WeightUnit:       WeightKg,
		TargetWeightUnit: WeightKg,
		Goal:             metabolism.LoseWeight,
		EventDate:        today.Format(DateLayout),
		ActivityLevel:    metabolism.Sedentary,
		WeightLossSpeed:  DefaultWeightLossSpeed,
		HealthCondition:  ConditionNone,
	}
}

// WithPlaceholders fills unset numeric fields with display placeholders so a
// summary can render from partial data. The result must not feed the estimator.
func (d Data) WithPlaceholders() Data {
	out := d
	if out.Gender == nil {
		g := metabolism.Male
		out.Gender = &g
	}
	if out.Age == nil {
		a := 25
		out.Age = &a
	}
	if out.Height == nil {
		h := 170.0
		out.Height = &h
	}
	if out.Weight == nil {
		w := 70.0
		out.Weight = &w
	}
	if out.TargetWeight == nil {
		tw := 65.0
		out.TargetWeight = &tw
	}
	return out
}

// View is the placeholder-filled profile a client renders, with lengths and
// weights also given in the units the user picked.
type View struct {
	Data
	DisplayHeight       float64 `json:"display_height"`
	DisplayWeight       float64 `json:"display_weight"`
	DisplayTargetWeight float64 `json:"display_target_weight"`
}

// View never feeds the estimator; Metrics stays on the raw data.
func (d Data) View() View {
	v := View{Data: d.WithPlaceholders()}
	v.DisplayHeight = *v.Height
	if v.HeightUnit == HeightFt {
		v.DisplayHeight = metabolism.CmToFt(*v.Height)
	}
	v.DisplayWeight = toWeightUnit(*v.Weight, v.WeightUnit)
	v.DisplayTargetWeight = toWeightUnit(*v.TargetWeight, v.TargetWeightUnit)
	return v
}

func toWeightUnit(kg float64, unit WeightUnit) float64 {
	if unit == WeightLbs {
		return metabolism.KgToLbs(kg)
	}
	return kg
}

// TargetWeightWarning returns a cosmetic hint when the target weight looks
// unsafe or contradicts the goal. It never blocks the flow.
func (d Data) TargetWeightWarning() string {
	if d.TargetWeight == nil {
		return ""
	}
	tw := *d.TargetWeight
	if tw < safeTargetMinKg || tw > safeTargetMaxKg {
		return fmt.Sprintf("target weight %.1f kg is outside the recommended %.0f-%.0f kg range", tw, safeTargetMinKg, safeTargetMaxKg)
	}
	if d.Weight == nil {
		return ""
	}
	switch d.Goal {
	case metabolism.LoseWeight:
		if tw >= *d.Weight {
			return "target weight is not below current weight for a weight-loss goal"
		}
	case metabolism.GainWeight:
		if tw <= *d.Weight {
			return "target weight is not above current weight for a weight-gain goal"
		}
	}
	return ""
}

type Metrics struct {
	BMR                int                    `json:"bmr"`
	TDEE               int                    `json:"tdee"`
	ActivityMultiplier float64                `json:"activity_multiplier"`
	BMI                float64                `json:"bmi"`
	BMICategory        metabolism.BMICategory `json:"bmi_category,omitempty"`
	DailyCalorieDelta  int                    `json:"daily_calorie_delta"`
	TargetCalories     int                    `json:"target_calories"`
	TargetWeightHint   string                 `json:"target_weight_hint,omitempty"`
}

// Metrics is recomputed on every call from whatever has been collected so far.
func (d Data) Metrics() Metrics {
	bmr := metabolism.BMR(d.Gender, d.Weight, d.Height, d.Age)
	tdee := metabolism.TDEE(bmr, d.ActivityLevel)

	m := Metrics{
		BMR:                bmr,
		TDEE:               tdee,
		ActivityMultiplier: metabolism.ActivityMultiplier(d.ActivityLevel),
		DailyCalorieDelta:  metabolism.DailyCalorieDeficit(d.WeightLossSpeed),
		TargetCalories:     metabolism.TargetCalories(tdee, d.Goal, d.WeightLossSpeed),
		TargetWeightHint:   d.TargetWeightWarning(),
	}
	if d.Weight != nil && d.Height != nil {
		m.BMI = metabolism.BMI(*d.Weight, *d.Height)
		if m.BMI > 0 {
			m.BMICategory = metabolism.CategoryForBMI(m.BMI)
		}
	}
	return m
}
