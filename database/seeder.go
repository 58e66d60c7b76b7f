package database

import (
	"context"
	"dietai/internal/metabolism"
	"dietai/internal/models"
	"dietai/internal/nutrition"
	"dietai/internal/utils"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultNumUsers  = 20
	TestUserPassword = "TestPassword123!"

	testUserEmailPattern = "testuser%@example.com"
	seedBatchSize        = 100
)

// SeedOptions controls how much demo data SeedUsers writes.
type SeedOptions struct {
	Users int
	// Days of food log written per user, ending today.
	Days     int
	Location *time.Location
	// Seed makes the generated profiles reproducible. Zero picks one from the clock.
	Seed int64
}

var sampleFoods = []nutrition.FoodItem{
	{FdcID: 168878, Description: "Rice, white, long-grain, cooked", ServingSize: 100, ServingSizeUnit: "g",
		Nutrients: nutrition.Nutrients{Calories: 130, Protein: 2.69, Carbohydrates: 28.17, Fat: 0.28, Fiber: 0.4, Sodium: 1}},
	{FdcID: 171077, Description: "Chicken, broilers or fryers, breast, meat only, cooked, roasted", ServingSize: 100, ServingSizeUnit: "g",
		Nutrients: nutrition.Nutrients{Calories: 165, Protein: 31.02, Fat: 3.57, Sodium: 74}},
	{FdcID: 173944, Description: "Bananas, raw", ServingSize: 118, ServingSizeUnit: "g",
		Nutrients: nutrition.Nutrients{Calories: 105, Protein: 1.29, Carbohydrates: 26.95, Fat: 0.39, Fiber: 3.1, Sugar: 14.43, Sodium: 1}},
	{FdcID: 172421, Description: "Noodles, egg, cooked, enriched", ServingSize: 160, ServingSizeUnit: "g",
		Nutrients: nutrition.Nutrients{Calories: 221, Protein: 7.26, Carbohydrates: 40.26, Fat: 3.31, Fiber: 1.9, Sodium: 8}},
	{FdcID: 170379, Description: "Broccoli, raw", ServingSize: 91, ServingSizeUnit: "g",
		Nutrients: nutrition.Nutrients{Calories: 31, Protein: 2.57, Carbohydrates: 6.04, Fat: 0.34, Fiber: 2.4, Sugar: 1.55, Sodium: 30}},
}

// SeedUsers creates demo users with a completed profile, matching nutrition
// goals and a few days of food log. Existing test users are left untouched.
func SeedUsers(ctx context.Context, db *gorm.DB, opts SeedOptions, log *zap.Logger) (int, error) {
	if opts.Users <= 0 {
		opts.Users = DefaultNumUsers
	}
	if opts.Days < 0 {
		opts.Days = 0
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(opts.Seed))

	hash, err := utils.HashPassword(TestUserPassword)
	if err != nil {
		return 0, fmt.Errorf("hash test password: %w", err)
	}

	var start int64
	if err := db.WithContext(ctx).Unscoped().Model(&models.User{}).
		Where("email LIKE ?", testUserEmailPattern).Count(&start).Error; err != nil {
		return 0, fmt.Errorf("count test users: %w", err)
	}

	ids := utils.NewIDGenerator(nil)
	now := time.Now()
	created := 0

	for batchStart := 0; batchStart < opts.Users; batchStart += seedBatchSize {
		batchEnd := batchStart + seedBatchSize
		if batchEnd > opts.Users {
			batchEnd = opts.Users
		}

		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for i := batchStart; i < batchEnd; i++ {
				index := int(start) + i + 1
				user := models.User{
					Name:     fmt.Sprintf("Test User %d", index),
					Email:    fmt.Sprintf("testuser%d@example.com", index),
					Password: hash,
				}
				if err := tx.Create(&user).Error; err != nil {
					return fmt.Errorf("create %s: %w", user.Email, err)
				}

				profile := randomProfile(user, r)
				if err := tx.Create(&profile).Error; err != nil {
					return fmt.Errorf("create profile for %s: %w", user.Email, err)
				}

				goal := models.DefaultNutritionGoal(user.ID)
				goal.Calories = float64(profile.TargetCalories)
				goal.TargetWeight = *profile.TargetWeight
				if err := tx.Create(&goal).Error; err != nil {
					return fmt.Errorf("create goal for %s: %w", user.Email, err)
				}

				entries := randomFoodLog(user.ID, opts.Days, now, opts.Location, ids, r)
				if len(entries) > 0 {
					if err := tx.Create(&entries).Error; err != nil {
						return fmt.Errorf("create food log for %s: %w", user.Email, err)
					}
				}
			}
			return nil
		})
		if err != nil {
			return created, err
		}
		created = batchEnd
		log.Info("Seeded users", zap.Int("done", created), zap.Int("total", opts.Users))
	}

	return created, nil
}

// CountTestUsers counts users created by SeedUsers.
func CountTestUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&models.User{}).Where("email LIKE ?", testUserEmailPattern).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count test users: %w", err)
	}
	return count, nil
}

// DeleteTestUsers hard-deletes seeded users together with everything they own.
func DeleteTestUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	var deleted int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Unscoped().Model(&models.User{}).
			Where("email LIKE ?", testUserEmailPattern).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		for _, table := range []interface{}{
			&models.ConsumedFood{},
			&models.ChatMessage{},
			&models.OnboardingSession{},
			&models.NutritionGoal{},
			&models.UserProfile{},
		} {
			if err := tx.Unscoped().Where("user_id IN ?", ids).Delete(table).Error; err != nil {
				return fmt.Errorf("clear %T: %w", table, err)
			}
		}

		result := tx.Unscoped().Where("id IN ?", ids).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete test users: %w", err)
	}
	return deleted, nil
}

// ClearAllData empties every table. Only meant for local databases.
func ClearAllData(ctx context.Context, db *gorm.DB) error {
	tables := []interface{}{
		&models.ConsumedFood{},
		&models.ChatMessage{},
		&models.OnboardingSession{},
		&models.NutritionGoal{},
		&models.UserProfile{},
		&models.User{},
	}

	for _, table := range tables {
		if err := db.WithContext(ctx).Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("error clearing table %T: %w", table, err)
		}
	}
	return nil
}

func randomProfile(user models.User, r *rand.Rand) models.UserProfile {
	gender := metabolism.Male
	height := 160 + r.Float64()*25
	if r.Intn(2) == 0 {
		gender = metabolism.Female
		height -= 10
	}
	age := 18 + r.Intn(50)
	weight := nutrition.Round2(50 + r.Float64()*40)
	target := nutrition.Round2(weight - 2 - r.Float64()*8)
	height = nutrition.Round2(height)

	levels := []metabolism.ActivityLevel{metabolism.Sedentary, metabolism.Light, metabolism.Moderate, metabolism.VeryActive}

	p := models.UserProfile{
		UserID:          user.ID,
		Name:            user.Name,
		Gender:          string(gender),
		Age:             &age,
		Height:          &height,
		HeightUnit:      "cm",
		Weight:          &weight,
		WeightUnit:      "kg",
		TargetWeight:    &target,
		Goal:            string(metabolism.LoseWeight),
		ActivityLevel:   string(levels[r.Intn(len(levels))]),
		WeightLossSpeed: nutrition.Round2(0.1 + r.Float64()*0.9),
		HealthCondition: "none",
	}
	p.Recalculate()
	return p
}

func randomFoodLog(userID uint, days int, now time.Time, loc *time.Location, ids *utils.IDGenerator, r *rand.Rand) []models.ConsumedFood {
	meals := []nutrition.MealType{nutrition.MealBreakfast, nutrition.MealLunch, nutrition.MealDinner, nutrition.MealSnack}

	var entries []models.ConsumedFood
	for d := 0; d < days; d++ {
		day := now.AddDate(0, 0, -d)
		date := utils.DateKey(day, loc)
		for _, meal := range meals {
			if meal == nutrition.MealSnack && r.Intn(2) == 0 {
				continue
			}
			food := sampleFoods[r.Intn(len(sampleFoods))]
			quantity := float64(50 + 10*r.Intn(16))
			entries = append(entries, models.ConsumedFood{
				ID:                  ids.Next(),
				UserID:              userID,
				Date:                date,
				Food:                food,
				Quantity:            quantity,
				MealType:            string(meal),
				ConsumedAt:          day.UTC(),
				CalculatedNutrients: nutrition.Scale(food.Nutrients, quantity, food.ServingSize),
			})
		}
	}
	return entries
}
