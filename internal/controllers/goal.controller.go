package controllers

import (
	"dietai/internal/models"
	"dietai/internal/repository"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type GoalController struct {
	repo repository.NutritionGoalRepository
	log  *zap.Logger
}

func NewGoalController(repo repository.NutritionGoalRepository, log *zap.Logger) *GoalController {
	if log == nil {
		log = zap.NewNop()
	}
	return &GoalController{repo: repo, log: log}
}

// GetGoals godoc
// @Summary Get nutrition goals
// @Description Daily targets for calories, macros, water and steps; defaults when never set
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Goals retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve goals"
// @Router /goals [get]
func (gc *GoalController) GetGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goal, err := gc.load(c, userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve goals", nil)
		return
	}
	respondSuccess(c, http.StatusOK, "Goals retrieved successfully", goal)
}

// UpdateGoals godoc
// @Summary Update nutrition goals
// @Description Change any subset of the daily targets
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param goals body models.UpdateGoalRequest true "Targets to change"
// @Success 200 {object} map[string]interface{} "Goals updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to update goals"
// @Router /goals [put]
func (gc *GoalController) UpdateGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	goal, err := gc.load(c, userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update goals", nil)
		return
	}

	if req.TargetWeight != nil {
		goal.TargetWeight = *req.TargetWeight
	}
	if req.Calories != nil {
		goal.Calories = *req.Calories
	}
	if req.Protein != nil {
		goal.Protein = *req.Protein
	}
	if req.Carbohydrates != nil {
		goal.Carbohydrates = *req.Carbohydrates
	}
	if req.Fat != nil {
		goal.Fat = *req.Fat
	}
	if req.Water != nil {
		goal.Water = *req.Water
	}
	if req.Steps != nil {
		goal.Steps = *req.Steps
	}

	if err := gc.repo.Upsert(c.Request.Context(), goal); err != nil {
		gc.log.Error("Failed to update goals", zap.Uint("user_id", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update goals", nil)
		return
	}
	respondSuccess(c, http.StatusOK, "Goals updated successfully", goal)
}

func (gc *GoalController) load(c *gin.Context, userID uint) (*models.NutritionGoal, error) {
	goal, err := gc.repo.FindByUserID(c.Request.Context(), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := models.DefaultNutritionGoal(userID)
		return &def, nil
	}
	if err != nil {
		gc.log.Error("Failed to load goals", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return goal, nil
}
