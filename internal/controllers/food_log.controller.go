package controllers

import (
	"context"
	"dietai/internal/models"
	"dietai/internal/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FoodLogger interface {
	Load(ctx context.Context, userID uint, date string) (*models.DailyLog, error)
	Add(ctx context.Context, userID uint, req models.AddFoodRequest) (*models.ConsumedFood, *models.DailyLog, error)
	Remove(ctx context.Context, userID uint, date, id string) (*models.DailyLog, error)
	Summary(ctx context.Context, userID uint, date string) (*models.DailySummary, error)
}

type FoodLogController struct {
	service FoodLogger
}

func NewFoodLogController(service FoodLogger) *FoodLogController {
	return &FoodLogController{service: service}
}

// GetFoodLog godoc
// @Summary Get food log for a day
// @Description Entries ordered by consumption time with nutrient totals; defaults to today
// @Tags food-log
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day as YYYY-MM-DD"
// @Success 200 {object} map[string]interface{} "Food log retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to load food log"
// @Router /food-log [get]
func (fc *FoodLogController) GetFoodLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	day, err := fc.service.Load(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondFoodLogError(c, err, "Failed to load food log")
		return
	}
	respondSuccess(c, http.StatusOK, "Food log retrieved successfully", day)
}

// AddFood godoc
// @Summary Log a food
// @Description Scale the food's nutrients to the quantity eaten and append it to the day
// @Tags food-log
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body models.AddFoodRequest true "Food entry"
// @Success 201 {object} map[string]interface{} "Food added"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to add food"
// @Router /food-log [post]
func (fc *FoodLogController) AddFood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.AddFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	entry, day, err := fc.service.Add(c.Request.Context(), userID, req)
	if err != nil {
		respondFoodLogError(c, err, "Failed to add food")
		return
	}
	respondSuccess(c, http.StatusCreated, "Food added", gin.H{
		"entry": entry,
		"day":   day,
	})
}

// RemoveFood godoc
// @Summary Remove a logged food
// @Tags food-log
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry id"
// @Param date query string false "Day as YYYY-MM-DD"
// @Success 200 {object} map[string]interface{} "Food removed"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Failure 500 {object} map[string]interface{} "Failed to remove food"
// @Router /food-log/{id} [delete]
func (fc *FoodLogController) RemoveFood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	day, err := fc.service.Remove(c.Request.Context(), userID, c.Query("date"), c.Param("id"))
	if err != nil {
		respondFoodLogError(c, err, "Failed to remove food")
		return
	}
	respondSuccess(c, http.StatusOK, "Food removed", day)
}

// GetSummary godoc
// @Summary Daily nutrition summary
// @Description Totals for the day compared with the user's nutrition goals
// @Tags food-log
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day as YYYY-MM-DD"
// @Success 200 {object} map[string]interface{} "Summary calculated"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to load summary"
// @Router /food-log/summary [get]
func (fc *FoodLogController) GetSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := fc.service.Summary(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondFoodLogError(c, err, "Failed to load summary")
		return
	}
	respondSuccess(c, http.StatusOK, "Summary calculated", summary)
}

func respondFoodLogError(c *gin.Context, err error, failure string) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
	case errors.Is(err, services.ErrEntryNotFound):
		respondError(c, http.StatusNotFound, "Entry not found", err)
	default:
		respondError(c, http.StatusInternalServerError, failure, nil)
	}
}
