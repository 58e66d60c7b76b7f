package models

import (
	"time"

	"gorm.io/datatypes"
)

// OnboardingSession is the in-progress onboarding state of a single user.
type OnboardingSession struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Step      string         `gorm:"size:32;not null" json:"step"`
	Data      datatypes.JSON `json:"data" swaggertype:"object"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
}
