package controllers

import (
	"context"
	"dietai/internal/nutrition"
	"dietai/internal/services"
	"dietai/internal/usda"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const msgEmptySearch = "Vui lòng nhập tên thực phẩm cần tìm"

type FoodSearcher interface {
	Search(ctx context.Context, query string) ([]nutrition.FoodSearchResult, error)
	Details(ctx context.Context, fdcID int64) (nutrition.FoodItem, error)
}

type FoodController struct {
	service FoodSearcher
}

func NewFoodController(service FoodSearcher) *FoodController {
	return &FoodController{service: service}
}

// SearchFoods godoc
// @Summary Search foods
// @Description Text search against USDA FoodData Central
// @Tags foods
// @Produce json
// @Security BearerAuth
// @Param query query string true "Food name"
// @Success 200 {object} map[string]interface{} "Foods found"
// @Failure 400 {object} map[string]interface{} "Empty query"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Failure 502 {object} map[string]interface{} "Food database error"
// @Failure 503 {object} map[string]interface{} "Food database unavailable"
// @Router /foods/search [get]
func (fc *FoodController) SearchFoods(c *gin.Context) {
	results, err := fc.service.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondFoodError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Foods found", results)
}

// GetFood godoc
// @Summary Get food details
// @Description Nutrients per serving for a single food
// @Tags foods
// @Produce json
// @Security BearerAuth
// @Param fdcId path int true "FoodData Central id"
// @Success 200 {object} map[string]interface{} "Food retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food id"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 502 {object} map[string]interface{} "Food database error"
// @Router /foods/{fdcId} [get]
func (fc *FoodController) GetFood(c *gin.Context) {
	fdcID, err := strconv.ParseInt(c.Param("fdcId"), 10, 64)
	if err != nil || fdcID <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid food id", errors.New("fdcId must be a positive integer"))
		return
	}

	food, err := fc.service.Details(c.Request.Context(), fdcID)
	if err != nil {
		respondFoodError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Food retrieved successfully", food)
}

func respondFoodError(c *gin.Context, err error) {
	var apiErr *usda.APIError
	switch {
	case errors.Is(err, usda.ErrEmptyQuery):
		respondError(c, http.StatusBadRequest, msgEmptySearch, nil)
	case errors.Is(err, services.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
	case errors.As(err, &apiErr):
		status := http.StatusBadGateway
		if apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode == http.StatusServiceUnavailable {
			status = apiErr.StatusCode
		}
		respondError(c, status, apiErr.Message, nil)
	default:
		respondError(c, http.StatusBadGateway, "Không thể tìm kiếm thực phẩm. Vui lòng thử lại.", nil)
	}
}
