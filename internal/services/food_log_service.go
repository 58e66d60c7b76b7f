package services

import (
	"context"
	"dietai/internal/models"
	"dietai/internal/nutrition"
	"dietai/internal/repository"
	"dietai/internal/utils"
	"errors"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("food log entry not found")

type FoodLogService struct {
	repo  repository.FoodLogRepository
	goals repository.NutritionGoalRepository
	ids   *utils.IDGenerator
	loc   *time.Location
	now   func() time.Time
	log   *zap.Logger
}

func NewFoodLogService(repo repository.FoodLogRepository, goals repository.NutritionGoalRepository, loc *time.Location, log *zap.Logger) *FoodLogService {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FoodLogService{
		repo:  repo,
		goals: goals,
		ids:   utils.NewIDGenerator(time.Now),
		loc:   loc,
		now:   time.Now,
		log:   log,
	}
}

// WithClock replaces the time source, used by tests.
func (s *FoodLogService) WithClock(now func() time.Time) *FoodLogService {
	s.now = now
	s.ids = utils.NewIDGenerator(now)
	return s
}

// Load returns every entry for the day ordered by consumption time, with totals.
func (s *FoodLogService) Load(ctx context.Context, userID uint, rawDate string) (*models.DailyLog, error) {
	date, err := utils.ResolveDate(rawDate, s.now(), s.loc)
	if err != nil {
		return nil, invalidInput("%s", err.Error())
	}
	return s.load(ctx, userID, date)
}

func (s *FoodLogService) load(ctx context.Context, userID uint, date string) (*models.DailyLog, error) {
	entries, err := s.repo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		s.log.Error("Failed to load food log",
			zap.Uint("user_id", userID),
			zap.String("date", date),
			zap.Error(err),
		)
		return nil, storageError("load food log", err)
	}

	return &models.DailyLog{
		Date:    date,
		Entries: entries,
		Totals:  totalsOf(entries),
	}, nil
}

// Add appends one entry and returns it together with the refreshed day.
func (s *FoodLogService) Add(ctx context.Context, userID uint, req models.AddFoodRequest) (*models.ConsumedFood, *models.DailyLog, error) {
	date, err := utils.ResolveDate(req.Date, s.now(), s.loc)
	if err != nil {
		return nil, nil, invalidInput("%s", err.Error())
	}
	meal, err := nutrition.ParseMealType(req.MealType)
	if err != nil {
		return nil, nil, invalidInput("%s", err.Error())
	}
	food := req.Food
	food.Description = strings.TrimSpace(food.Description)
	if food.Description == "" {
		return nil, nil, invalidInput("food description is required")
	}
	if food.ServingSize <= 0 {
		food.ServingSize = nutrition.DefaultServingSize
	}
	if strings.TrimSpace(food.ServingSizeUnit) == "" {
		food.ServingSizeUnit = "g"
	}

	entry := &models.ConsumedFood{
		ID:                  s.ids.Next(),
		UserID:              userID,
		Date:                date,
		Food:                food,
		Quantity:            req.Quantity,
		MealType:            string(meal),
		ConsumedAt:          s.now().UTC(),
		CalculatedNutrients: nutrition.Scale(food.Nutrients, req.Quantity, food.ServingSize),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.log.Error("Failed to add food log entry",
			zap.Uint("user_id", userID),
			zap.String("date", date),
			zap.Error(err),
		)
		return nil, nil, storageError("add food log entry", err)
	}

	day, err := s.load(ctx, userID, date)
	if err != nil {
		return nil, nil, err
	}
	return entry, day, nil
}

// Remove deletes a single entry from the day and returns what is left.
func (s *FoodLogService) Remove(ctx context.Context, userID uint, rawDate, id string) (*models.DailyLog, error) {
	date, err := utils.ResolveDate(rawDate, s.now(), s.loc)
	if err != nil {
		return nil, invalidInput("%s", err.Error())
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, invalidInput("entry id is required")
	}

	deleted, err := s.repo.Delete(ctx, userID, date, id)
	if err != nil {
		s.log.Error("Failed to remove food log entry",
			zap.Uint("user_id", userID),
			zap.String("date", date),
			zap.String("entry_id", id),
			zap.Error(err),
		)
		return nil, storageError("remove food log entry", err)
	}
	if !deleted {
		return nil, ErrEntryNotFound
	}

	return s.load(ctx, userID, date)
}

// Summary compares the day's totals with the user's nutrition goal.
func (s *FoodLogService) Summary(ctx context.Context, userID uint, rawDate string) (*models.DailySummary, error) {
	day, err := s.Load(ctx, userID, rawDate)
	if err != nil {
		return nil, err
	}

	goal, err := s.goals.FindByUserID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		def := models.DefaultNutritionGoal(userID)
		goal = &def
	case err != nil:
		s.log.Error("Failed to load nutrition goal", zap.Uint("user_id", userID), zap.Error(err))
		return nil, storageError("load nutrition goal", err)
	}

	return &models.DailySummary{
		Date:   day.Date,
		Totals: day.Totals,
		Goal:   *goal,
		Remaining: models.MacroBalance{
			Calories:      math.Round(goal.Calories - day.Totals.Calories),
			Protein:       nutrition.Round2(goal.Protein - day.Totals.Protein),
			Carbohydrates: nutrition.Round2(goal.Carbohydrates - day.Totals.Carbohydrates),
			Fat:           nutrition.Round2(goal.Fat - day.Totals.Fat),
		},
		Entries: len(day.Entries),
	}, nil
}

func totalsOf(entries []models.ConsumedFood) nutrition.Nutrients {
	list := make([]nutrition.Nutrients, 0, len(entries))
	for _, e := range entries {
		list = append(list, e.CalculatedNutrients)
	}
	return nutrition.Aggregate(list)
}
