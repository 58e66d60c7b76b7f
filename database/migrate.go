package database

import (
	"dietai/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateDatabase(db *gorm.DB, log *zap.Logger) error {
	log.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.NutritionGoal{},
		&models.OnboardingSession{},
		&models.ConsumedFood{},
		&models.ChatMessage{},
	)
	if err != nil {
		log.Error("Error during migration", zap.Error(err))
		return err
	}

	log.Info("Database migrations completed successfully")
	return nil
}
