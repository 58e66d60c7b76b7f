package models

import "time"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	UserID    uint      `gorm:"not null;index" json:"user_id" example:"1"`
	Role      string    `gorm:"type:varchar(16);not null" json:"role" example:"assistant"`
	Content   string    `gorm:"type:text;not null" json:"content" example:"Bữa sáng nên có đủ đạm và chất xơ."`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required" example:"Tôi nên ăn gì vào bữa sáng?"`
}

type ChatReply struct {
	Question ChatMessage `json:"question"`
	Answer   ChatMessage `json:"answer"`
}
