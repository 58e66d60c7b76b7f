package repository

import (
	"context"
	"dietai/internal/models"
	"dietai/internal/nutrition"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.NutritionGoal{},
		&models.OnboardingSession{},
		&models.ConsumedFood{},
		&models.ChatMessage{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Lan", Email: email, Password: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func rice(id string, userID uint, date string, at time.Time) *models.ConsumedFood {
	return &models.ConsumedFood{
		ID:     id,
		UserID: userID,
		Date:   date,
		Food: nutrition.FoodItem{
			FdcID:           171705,
			Description:     "Rice, white, cooked",
			ServingSize:     100,
			ServingSizeUnit: "g",
			Nutrients:       nutrition.Nutrients{Calories: 130, Protein: 2.7, Carbohydrates: 28},
		},
		Quantity:            150,
		MealType:            string(nutrition.MealLunch),
		ConsumedAt:          at,
		CalculatedNutrients: nutrition.Nutrients{Calories: 195, Protein: 4.05, Carbohydrates: 42},
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := createUser(t, db, "lan@example.com")
	assert.NotZero(t, user.ID)

	found, err := repo.FindByEmail(ctx, "lan@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	dup := &models.User{Name: "Other", Email: "lan@example.com", Password: "x"}
	assert.Error(t, repo.Create(ctx, dup))
}

func TestUserRepositoryDeleteRemovesOwnedData(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := createUser(t, db, "lan@example.com")

	require.NoError(t, NewUserProfileRepository(db).Create(ctx, &models.UserProfile{UserID: user.ID, Name: "Lan"}))
	goal := models.DefaultNutritionGoal(user.ID)
	require.NoError(t, NewNutritionGoalRepository(db).Upsert(ctx, &goal))
	require.NoError(t, NewFoodLogRepository(db).Insert(ctx, rice("1", user.ID, "2026-03-10", time.Now())))

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = NewUserProfileRepository(db).FindByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	entries, err := NewFoodLogRepository(db).FindByUserAndDate(ctx, user.ID, "2026-03-10")
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, repo.Delete(ctx, user.ID), gorm.ErrRecordNotFound)
}

func TestUserProfileUpsertKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserProfileRepository(db)
	user := createUser(t, db, "lan@example.com")

	first := &models.UserProfile{UserID: user.ID, Name: "Lan"}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &models.UserProfile{UserID: user.ID, Name: "Lan Nguyen", Goal: "gain_weight"}
	require.NoError(t, repo.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	found, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lan Nguyen", found.Name)
	assert.Equal(t, "gain_weight", found.Goal)

	require.NoError(t, repo.DeleteByUserID(ctx, user.ID))
	assert.ErrorIs(t, repo.DeleteByUserID(ctx, user.ID), gorm.ErrRecordNotFound)
}

func TestNutritionGoalUpsert(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewNutritionGoalRepository(db)

	_, err := repo.FindByUserID(ctx, 7)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	goal := models.DefaultNutritionGoal(7)
	require.NoError(t, repo.Upsert(ctx, &goal))

	goal.Calories = 1750
	require.NoError(t, repo.Upsert(ctx, &goal))

	found, err := repo.FindByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1750.0, found.Calories)
	assert.Equal(t, 10000, found.Steps)
}

func TestOnboardingSessionRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewOnboardingSessionRepository(db)

	session := &models.OnboardingSession{UserID: 3, Step: "gender", Data: []byte(`{"name":""}`)}
	require.NoError(t, repo.Save(ctx, session))

	session2 := &models.OnboardingSession{UserID: 3, Step: "age", Data: []byte(`{"gender":"male"}`)}
	require.NoError(t, repo.Save(ctx, session2))
	assert.Equal(t, session.ID, session2.ID)

	found, err := repo.FindByUserID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "age", found.Step)
	assert.JSONEq(t, `{"gender":"male"}`, string(found.Data))

	stale := &models.OnboardingSession{UserID: 4, Step: "name", Data: []byte(`{}`)}
	require.NoError(t, repo.Save(ctx, stale))
	require.NoError(t, db.Model(stale).UpdateColumn("updated_at", time.Now().Add(-48*time.Hour)).Error)

	n, err := repo.DeleteUpdatedBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.FindByUserID(ctx, 4)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.DeleteByUserID(ctx, 3))
	_, err = repo.FindByUserID(ctx, 3)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFoodLogRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewFoodLogRepository(db)
	base := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)

	entries, err := repo.FindByUserAndDate(ctx, 1, "2026-03-10")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	require.NoError(t, repo.Insert(ctx, rice("200", 1, "2026-03-10", base.Add(2*time.Hour))))
	require.NoError(t, repo.Insert(ctx, rice("100", 1, "2026-03-10", base)))
	require.NoError(t, repo.Insert(ctx, rice("300", 1, "2026-03-11", base)))
	require.NoError(t, repo.Insert(ctx, rice("100", 2, "2026-03-10", base)))

	entries, err = repo.FindByUserAndDate(ctx, 1, "2026-03-10")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "100", entries[0].ID)
	assert.Equal(t, "200", entries[1].ID)
	assert.Equal(t, 130.0, entries[0].Food.Nutrients.Calories)
	assert.Equal(t, 195.0, entries[0].CalculatedNutrients.Calories)

	ok, err := repo.Delete(ctx, 1, "2026-03-10", "100")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, 1, "2026-03-10", "100")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(ctx, 1, "2026-03-10", "300")
	require.NoError(t, err)
	assert.False(t, ok, "entry belongs to another day")

	other, err := repo.FindByUserAndDate(ctx, 2, "2026-03-10")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestChatMessageRepositoryOrdersChronologically(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewChatMessageRepository(db)

	for i, content := range []string{"a", "b", "c", "d"} {
		msg := &models.ChatMessage{
			UserID:    1,
			Role:      models.ChatRoleUser,
			Content:   content,
			CreatedAt: time.Date(2026, 3, 10, 8, i, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Create(ctx, msg))
	}
	require.NoError(t, repo.Create(ctx))

	recent, err := repo.FindRecentByUserID(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "b", recent[0].Content)
	assert.Equal(t, "d", recent[2].Content)

	none, err := repo.FindRecentByUserID(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}
