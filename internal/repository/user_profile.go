package repository

import (
	"context"
	"dietai/internal/models"
	"errors"

	"gorm.io/gorm"
)

type UserProfileRepository interface {
	Create(ctx context.Context, profile *models.UserProfile) error
	FindByUserID(ctx context.Context, userID uint) (*models.UserProfile, error)
	Update(ctx context.Context, profile *models.UserProfile) error
	Upsert(ctx context.Context, profile *models.UserProfile) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

func (r *userProfileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *userProfileRepository) FindByUserID(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Upsert replaces the user's profile, keeping the existing row identity.
func (r *userProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.UserProfile
		err := tx.Where("user_id = ?", profile.UserID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(profile).Error
		case err != nil:
			return err
		}
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		return tx.Save(profile).Error
	})
}

func (r *userProfileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).Unscoped().Where("user_id = ?", userID).Delete(&models.UserProfile{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
