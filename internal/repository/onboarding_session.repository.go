package repository

import (
	"context"
	"dietai/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

type OnboardingSessionRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*models.OnboardingSession, error)
	Save(ctx context.Context, session *models.OnboardingSession) error
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type onboardingSessionRepository struct {
	db *gorm.DB
}

func NewOnboardingSessionRepository(db *gorm.DB) OnboardingSessionRepository {
	return &onboardingSessionRepository{db: db}
}

func (r *onboardingSessionRepository) FindByUserID(ctx context.Context, userID uint) (*models.OnboardingSession, error) {
	var session models.OnboardingSession
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Save creates the user's session or overwrites the existing one.
func (r *onboardingSessionRepository) Save(ctx context.Context, session *models.OnboardingSession) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.OnboardingSession
		err := tx.Select("id", "created_at").Where("user_id = ?", session.UserID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(session).Error
		case err != nil:
			return err
		}
		session.ID = existing.ID
		session.CreatedAt = existing.CreatedAt
		return tx.Save(session).Error
	})
}

func (r *onboardingSessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.OnboardingSession{}).Error
}

func (r *onboardingSessionRepository) DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("updated_at < ?", cutoff).Delete(&models.OnboardingSession{})
	return res.RowsAffected, res.Error
}
