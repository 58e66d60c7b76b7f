package repository

import (
	"context"
	"dietai/internal/models"
	"errors"

	"gorm.io/gorm"
)

type NutritionGoalRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*models.NutritionGoal, error)
	Upsert(ctx context.Context, goal *models.NutritionGoal) error
}

type nutritionGoalRepository struct {
	db *gorm.DB
}

func NewNutritionGoalRepository(db *gorm.DB) NutritionGoalRepository {
	return &nutritionGoalRepository{db: db}
}

func (r *nutritionGoalRepository) FindByUserID(ctx context.Context, userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *nutritionGoalRepository) Upsert(ctx context.Context, goal *models.NutritionGoal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.NutritionGoal
		err := tx.Where("user_id = ?", goal.UserID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(goal).Error
		case err != nil:
			return err
		}
		goal.ID = existing.ID
		goal.CreatedAt = existing.CreatedAt
		return tx.Save(goal).Error
	})
}
