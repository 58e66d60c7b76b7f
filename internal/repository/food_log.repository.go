package repository

import (
	"context"
	"dietai/internal/models"

	"gorm.io/gorm"
)

// FoodLogRepository stores one row per consumed food. Insert and Delete are
// single statements, so concurrent writers for the same day never lose entries.
type FoodLogRepository interface {
	FindByUserAndDate(ctx context.Context, userID uint, date string) ([]models.ConsumedFood, error)
	Insert(ctx context.Context, entry *models.ConsumedFood) error
	Delete(ctx context.Context, userID uint, date, id string) (bool, error)
}

type foodLogRepository struct {
	db *gorm.DB
}

func NewFoodLogRepository(db *gorm.DB) FoodLogRepository {
	return &foodLogRepository{db: db}
}

func (r *foodLogRepository) FindByUserAndDate(ctx context.Context, userID uint, date string) ([]models.ConsumedFood, error) {
	entries := []models.ConsumedFood{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("consumed_at ASC").
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *foodLogRepository) Insert(ctx context.Context, entry *models.ConsumedFood) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Delete reports false when no entry with that id exists for the user and day.
func (r *foodLogRepository) Delete(ctx context.Context, userID uint, date, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND id = ?", userID, date, id).
		Delete(&models.ConsumedFood{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
