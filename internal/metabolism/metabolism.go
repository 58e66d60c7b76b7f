// Package metabolism holds the body-metabolism estimates shown during
// onboarding and on the profile screen. Everything here is pure.
package metabolism

import "math"

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	VeryActive ActivityLevel = "very_active"
)

var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	VeryActive: 1.725,
}

const defaultActivityMultiplier = 1.2

// kcal per kilogram of body fat
const kcalPerKg = 7700.0

func ValidActivityLevel(level ActivityLevel) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// BMR estimates basal metabolic rate with the revised Harris-Benedict
// equation. Any missing input yields 0.
func BMR(gender *Gender, weightKg, heightCm *float64, age *int) int {
	if gender == nil || weightKg == nil || heightCm == nil || age == nil {
		return 0
	}
	if *weightKg <= 0 || *heightCm <= 0 || *age <= 0 {
		return 0
	}

	w, h, a := *weightKg, *heightCm, float64(*age)
	switch *gender {
	case Male:
		return int(math.Round(88.362 + 13.397*w + 4.799*h - 5.677*a))
	case Female:
		return int(math.Round(447.593 + 9.247*w + 3.098*h - 4.330*a))
	default:
		return 0
	}
}

// ActivityMultiplier falls back to the sedentary factor for unknown levels.
func ActivityMultiplier(level ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return defaultActivityMultiplier
}

func TDEE(bmr int, level ActivityLevel) int {
	return int(math.Round(float64(bmr) * ActivityMultiplier(level)))
}

// BMI is rounded to one decimal place. Returns 0 when height is not positive.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

type BMICategory string

const (
	Underweight BMICategory = "underweight"
	Normal      BMICategory = "normal"
	Overweight  BMICategory = "overweight"
	Obese       BMICategory = "obese"
)

func CategoryForBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// DailyCalorieDeficit converts a weekly weight-change pace into a daily kcal delta.
func DailyCalorieDeficit(speedKgPerWeek float64) int {
	if speedKgPerWeek <= 0 {
		return 0
	}
	return int(math.Round(speedKgPerWeek * kcalPerKg / 7))
}

type Goal string

const (
	LoseWeight    Goal = "lose_weight"
	GainWeight    Goal = "gain_weight"
	ImproveHealth Goal = "improve_health"
)

// TargetCalories applies the pace-derived delta to TDEE in the direction of the goal.
func TargetCalories(tdee int, goal Goal, speedKgPerWeek float64) int {
	delta := DailyCalorieDeficit(speedKgPerWeek)
	switch goal {
	case LoseWeight:
		if tdee-delta < 0 {
			return 0
		}
		return tdee - delta
	case GainWeight:
		return tdee + delta
	default:
		return tdee
	}
}

func CmToFt(cm float64) float64 {
	return math.Round(cm/30.48*10) / 10
}

func FtToCm(ft float64) float64 {
	return math.Round(ft * 30.48)
}

func KgToLbs(kg float64) float64 {
	return math.Round(kg * 2.20462)
}

func LbsToKg(lbs float64) float64 {
	return math.Round(lbs / 2.20462)
}
