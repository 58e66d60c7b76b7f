package models

import "time"

type NutritionGoal struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	UserID        uint      `gorm:"uniqueIndex" json:"user_id" example:"1"`
	TargetWeight  float64   `json:"target_weight" binding:"omitnil,min=0" example:"60"`
	Calories      float64   `json:"calories" binding:"omitnil,min=0" example:"2000"`
	Protein       float64   `json:"protein" binding:"omitnil,min=0" example:"120"`
	Carbohydrates float64   `json:"carbohydrates" binding:"omitnil,min=0" example:"250"`
	Fat           float64   `json:"fat" binding:"omitnil,min=0" example:"65"`
	Water         int       `json:"water" binding:"omitnil,min=0" example:"2000"`
	Steps         int       `json:"steps" binding:"omitnil,min=0" example:"10000"`
}

// DefaultNutritionGoal returns the targets a user starts with before editing them.
func DefaultNutritionGoal(userID uint) NutritionGoal {
	return NutritionGoal{
		UserID:        userID,
		TargetWeight:  60,
		Calories:      2000,
		Protein:       120,
		Carbohydrates: 250,
		Fat:           65,
		Water:         2000,
		Steps:         10000,
	}
}

type UpdateGoalRequest struct {
	TargetWeight  *float64 `json:"target_weight" binding:"omitnil,min=0" example:"58"`
	Calories      *float64 `json:"calories" binding:"omitnil,min=0" example:"1800"`
	Protein       *float64 `json:"protein" binding:"omitnil,min=0" example:"110"`
	Carbohydrates *float64 `json:"carbohydrates" binding:"omitnil,min=0" example:"200"`
	Fat           *float64 `json:"fat" binding:"omitnil,min=0" example:"60"`
	Water         *int     `json:"water" binding:"omitnil,min=0" example:"2500"`
	Steps         *int     `json:"steps" binding:"omitnil,min=0" example:"8000"`
}
