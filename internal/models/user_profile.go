package models

import (
	"dietai/internal/metabolism"
	"time"

	"gorm.io/gorm"
)

// UserProfile holds the onboarding answers once onboarding is complete.
// Height is stored in centimetres and weights in kilograms.
type UserProfile struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID          uint           `gorm:"uniqueIndex" json:"user_id" example:"1"`
	Name            string         `gorm:"size:64" json:"name" example:"Lan"`
	Gender          string         `gorm:"size:16" json:"gender" example:"female"`
	Age             *int           `json:"age" example:"30"`
	Height          *float64       `json:"height" example:"165"`
	HeightUnit      string         `gorm:"size:4;default:cm" json:"height_unit" example:"cm"`
	Weight          *float64       `json:"weight" example:"60"`
	WeightUnit      string         `gorm:"size:4;default:kg" json:"weight_unit" example:"kg"`
	TargetWeight    *float64       `json:"target_weight" example:"55"`
	Goal            string         `gorm:"size:32" json:"goal" example:"lose_weight"`
	EventDate       string         `gorm:"size:10" json:"event_date" example:"2026-06-01"`
	ActivityLevel   string         `gorm:"size:16" json:"activity_level" example:"moderate"`
	WeightLossSpeed float64        `json:"weight_loss_speed" example:"0.32"`
	HealthCondition string         `gorm:"size:32" json:"health_condition" example:"none"`
	BMI             *float64       `json:"bmi" example:"22.0"`
	BMR             int            `json:"bmr" example:"1350"`
	TDEE            int            `json:"tdee" example:"2093"`
	TargetCalories  int            `json:"target_calories" example:"1741"`
}

// Recalculate refreshes the derived fields from the stored answers.
func (p *UserProfile) Recalculate() {
	var gender *metabolism.Gender
	if p.Gender != "" {
		g := metabolism.Gender(p.Gender)
		gender = &g
	}
	level := metabolism.ActivityLevel(p.ActivityLevel)

	p.BMR = metabolism.BMR(gender, p.Weight, p.Height, p.Age)
	p.TDEE = metabolism.TDEE(p.BMR, level)
	p.TargetCalories = metabolism.TargetCalories(p.TDEE, metabolism.Goal(p.Goal), p.WeightLossSpeed)

	p.BMI = nil
	if p.Weight != nil && p.Height != nil && *p.Height > 0 {
		bmi := metabolism.BMI(*p.Weight, *p.Height)
		p.BMI = &bmi
	}
}

// ProfileRequest is the body of PUT and PATCH /profile. PUT treats absent
// fields as cleared, PATCH leaves them untouched. Height is centimetres and
// weights are kilograms regardless of the display units.
type ProfileRequest struct {
	Name            *string  `json:"name" binding:"omitnil,max=32" example:"Lan"`
	Gender          *string  `json:"gender" binding:"omitnil,oneof=male female" example:"female"`
	Age             *int     `json:"age" binding:"omitnil,gte=10,lte=100" example:"30"`
	Height          *float64 `json:"height" binding:"omitnil,gte=100,lte=250" example:"165"`
	HeightUnit      *string  `json:"height_unit" binding:"omitnil,oneof=cm ft" example:"cm"`
	Weight          *float64 `json:"weight" binding:"omitnil,gte=30,lte=200" example:"60"`
	WeightUnit      *string  `json:"weight_unit" binding:"omitnil,oneof=kg lbs" example:"kg"`
	TargetWeight    *float64 `json:"target_weight" binding:"omitnil,gte=30,lte=200" example:"55"`
	Goal            *string  `json:"goal" binding:"omitnil,oneof=lose_weight gain_weight improve_health" example:"lose_weight"`
	EventDate       *string  `json:"event_date" binding:"omitnil,datetime=2006-01-02" example:"2026-06-01"`
	ActivityLevel   *string  `json:"activity_level" binding:"omitnil,oneof=sedentary light moderate very_active" example:"moderate"`
	WeightLossSpeed *float64 `json:"weight_loss_speed" binding:"omitnil,gte=0.1,lte=1" example:"0.5"`
	HealthCondition *string  `json:"health_condition" binding:"omitnil,oneof=none hypertension diabetes cholesterol other" example:"none"`
}
