package models

import (
	"dietai/internal/nutrition"
	"time"
)

// ConsumedFood is one food log entry. Each entry is its own row so adding
// and removing never rewrites the rest of the day.
type ConsumedFood struct {
	ID                  string              `gorm:"primaryKey;type:varchar(32)" json:"id" example:"1760000000000"`
	UserID              uint                `gorm:"primaryKey;autoIncrement:false;index:idx_consumed_foods_user_date,priority:1" json:"-"`
	Date                string              `gorm:"type:varchar(10);not null;index:idx_consumed_foods_user_date,priority:2" json:"date" example:"2026-03-10"`
	Food                nutrition.FoodItem  `gorm:"embedded;embeddedPrefix:food_" json:"food"`
	Quantity            float64             `gorm:"not null" json:"quantity" example:"150"`
	MealType            string              `gorm:"type:varchar(16);not null" json:"meal_type" example:"lunch"`
	ConsumedAt          time.Time           `gorm:"index" json:"consumed_at"`
	CalculatedNutrients nutrition.Nutrients `gorm:"embedded;embeddedPrefix:calc_" json:"calculated_nutrients"`
	CreatedAt           time.Time           `json:"-"`
}

type AddFoodRequest struct {
	Date     string             `json:"date" example:"2026-03-10"`
	Food     nutrition.FoodItem `json:"food" binding:"required"`
	Quantity float64            `json:"quantity" binding:"required,gt=0" example:"150"`
	MealType string             `json:"meal_type" binding:"required" example:"lunch"`
}

// DailyLog is the response shape for a single day of the food log.
type DailyLog struct {
	Date    string              `json:"date" example:"2026-03-10"`
	Entries []ConsumedFood      `json:"entries"`
	Totals  nutrition.Nutrients `json:"totals"`
}

type DailySummary struct {
	Date      string              `json:"date" example:"2026-03-10"`
	Totals    nutrition.Nutrients `json:"totals"`
	Goal      NutritionGoal       `json:"goal"`
	Remaining MacroBalance        `json:"remaining"`
	Entries   int                 `json:"entries" example:"4"`
}

// MacroBalance is target minus consumed; negative values mean over target.
type MacroBalance struct {
	Calories      float64 `json:"calories" example:"820"`
	Protein       float64 `json:"protein" example:"45.5"`
	Carbohydrates float64 `json:"carbohydrates" example:"110"`
	Fat           float64 `json:"fat" example:"20.25"`
}
