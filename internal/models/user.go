package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name      string         `gorm:"size:64" json:"name" example:"Lan"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email" example:"lan@example.com"`
	Password  string         `gorm:"not null" json:"-"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=64" example:"Lan"`
	Email    string `json:"email" binding:"required,email" example:"lan@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"s3cretpass"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"lan@example.com"`
	Password string `json:"password" binding:"required" example:"s3cretpass"`
}
