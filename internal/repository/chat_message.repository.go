package repository

import (
	"context"
	"dietai/internal/models"

	"gorm.io/gorm"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, messages ...*models.ChatMessage) error
	FindRecentByUserID(ctx context.Context, userID uint, limit int) ([]models.ChatMessage, error)
}

type chatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

func (r *chatMessageRepository) Create(ctx context.Context, messages ...*models.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(messages).Error
}

// FindRecentByUserID returns the newest limit messages in chronological order.
func (r *chatMessageRepository) FindRecentByUserID(ctx context.Context, userID uint, limit int) ([]models.ChatMessage, error) {
	messages := []models.ChatMessage{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
