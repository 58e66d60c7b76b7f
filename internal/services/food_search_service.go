package services

import (
	"context"
	"dietai/internal/cache"
	"dietai/internal/nutrition"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FoodDatabase is the external food catalogue (USDA FoodData Central).
type FoodDatabase interface {
	SearchFoods(ctx context.Context, query string) ([]nutrition.FoodSearchResult, error)
	GetFoodDetails(ctx context.Context, fdcID int64) (nutrition.FoodItem, error)
}

type FoodCache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

// FoodSearchService fronts the food database with an optional cache. Cache
// failures are logged and otherwise ignored.
type FoodSearchService struct {
	foods FoodDatabase
	cache FoodCache
	ttl   time.Duration
	log   *zap.Logger
}

// NewFoodSearchService accepts a nil cache, in which case every call goes to
// the food database.
func NewFoodSearchService(foods FoodDatabase, foodCache FoodCache, ttl time.Duration, log *zap.Logger) *FoodSearchService {
	if log == nil {
		log = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &FoodSearchService{foods: foods, cache: foodCache, ttl: ttl, log: log}
}

func (s *FoodSearchService) Search(ctx context.Context, query string) ([]nutrition.FoodSearchResult, error) {
	query = strings.TrimSpace(query)
	key := cache.FoodSearchKey(query)

	var cached []nutrition.FoodSearchResult
	if query != "" && s.lookup(ctx, key, &cached) {
		return cached, nil
	}

	results, err := s.foods.SearchFoods(ctx, query)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, results)
	return results, nil
}

func (s *FoodSearchService) Details(ctx context.Context, fdcID int64) (nutrition.FoodItem, error) {
	if fdcID <= 0 {
		return nutrition.FoodItem{}, invalidInput("fdc id must be a positive integer")
	}
	key := cache.FoodDetailKey(fdcID)

	var cached nutrition.FoodItem
	if s.lookup(ctx, key, &cached) {
		return cached, nil
	}

	food, err := s.foods.GetFoodDetails(ctx, fdcID)
	if err != nil {
		return nutrition.FoodItem{}, err
	}
	s.store(ctx, key, food)
	return food, nil
}

func (s *FoodSearchService) lookup(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.GetJSON(ctx, key, dst)
	if err != nil {
		s.log.Warn("Food cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

func (s *FoodSearchService) store(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, v, s.ttl); err != nil {
		s.log.Warn("Food cache write failed", zap.String("key", key), zap.Error(err))
	}
}
