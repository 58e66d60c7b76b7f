package controllers

import (
	"dietai/internal/models"
	"dietai/internal/onboarding"
	"dietai/internal/repository"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserProfileController struct {
	repo repository.UserProfileRepository
	log  *zap.Logger
}

func NewUserProfileController(repo repository.UserProfileRepository, log *zap.Logger) *UserProfileController {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserProfileController{repo: repo, log: log}
}

// GetUserProfile godoc
// @Summary Get user profile
// @Description Retrieve the authenticated user's profile with BMR, TDEE and target calories
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /profile [get]
func (pc *UserProfileController) GetUserProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := pc.repo.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		pc.respondLookupError(c, userID, err)
		return
	}

	respondSuccess(c, http.StatusOK, "User profile retrieved successfully", profile)
}

// UpdateUserProfile godoc
// @Summary Replace user profile
// @Description Create or replace the authenticated user's profile; derived values are recalculated
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.ProfileRequest true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to update profile"
// @Router /profile [put]
func (pc *UserProfileController) UpdateUserProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	profile := models.UserProfile{UserID: userID, HeightUnit: "cm", WeightUnit: "kg"}
	if err := applyProfileRequest(&profile, req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}
	profile.Recalculate()

	if err := pc.repo.Upsert(c.Request.Context(), &profile); err != nil {
		pc.log.Error("Failed to update profile", zap.Uint("user_id", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Profile updated successfully", profile)
}

// PatchUserProfile godoc
// @Summary Patch user profile
// @Description Update specific fields of the authenticated user's profile; derived values are recalculated
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.ProfileRequest true "Profile fields to update"
// @Success 200 {object} map[string]interface{} "Profile patched successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 500 {object} map[string]interface{} "Failed to update profile"
// @Router /profile [patch]
func (pc *UserProfileController) PatchUserProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	profile, err := pc.repo.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		pc.respondLookupError(c, userID, err)
		return
	}

	if err := applyProfileRequest(profile, req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}
	profile.Recalculate()

	if err := pc.repo.Update(c.Request.Context(), profile); err != nil {
		pc.log.Error("Failed to patch profile", zap.Uint("user_id", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Profile patched successfully", profile)
}

// DeleteUserProfile godoc
// @Summary Delete user profile
// @Description Delete the authenticated user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile deleted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete profile"
// @Router /profile [delete]
func (pc *UserProfileController) DeleteUserProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := pc.repo.DeleteByUserID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Profile not found", errors.New("no profile exists for this user"))
			return
		}
		pc.log.Error("Failed to delete profile", zap.Uint("user_id", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete profile", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Profile deleted successfully", nil)
}

func (pc *UserProfileController) respondLookupError(c *gin.Context, userID uint, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "Profile not found", errors.New("no profile exists for this user"))
		return
	}
	pc.log.Error("Failed to load profile", zap.Uint("user_id", userID), zap.Error(err))
	respondError(c, http.StatusInternalServerError, "Failed to retrieve profile", err)
}

// applyProfileRequest copies every field present in req onto p. Ranges and
// enums are enforced by the binding tags on models.ProfileRequest.
func applyProfileRequest(p *models.UserProfile, req models.ProfileRequest) error {
	if req.Name != nil {
		if err := onboarding.ValidateName(*req.Name); err != nil {
			return err
		}
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.Age != nil {
		p.Age = req.Age
	}
	if req.Height != nil {
		p.Height = req.Height
	}
	if req.HeightUnit != nil {
		p.HeightUnit = *req.HeightUnit
	}
	if req.Weight != nil {
		p.Weight = req.Weight
	}
	if req.WeightUnit != nil {
		p.WeightUnit = *req.WeightUnit
	}
	if req.TargetWeight != nil {
		p.TargetWeight = req.TargetWeight
	}
	if req.Goal != nil {
		p.Goal = *req.Goal
	}
	if req.EventDate != nil {
		p.EventDate = *req.EventDate
	}
	if req.ActivityLevel != nil {
		p.ActivityLevel = *req.ActivityLevel
	}
	if req.WeightLossSpeed != nil {
		p.WeightLossSpeed = *req.WeightLossSpeed
	}
	if req.HealthCondition != nil {
		p.HealthCondition = *req.HealthCondition
	}
	return nil
}
