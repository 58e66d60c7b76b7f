package controllers

import (
	"context"
	"dietai/internal/onboarding"
	"dietai/internal/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type OnboardingService interface {
	Get(ctx context.Context, userID uint) (*services.OnboardingState, error)
	Submit(ctx context.Context, userID uint, answer onboarding.Answer) (*services.OnboardingState, error)
	Back(ctx context.Context, userID uint) (*services.OnboardingState, error)
	SetStep(ctx context.Context, userID uint, step string) (*services.OnboardingState, error)
	Metrics(ctx context.Context, userID uint) (onboarding.Metrics, error)
	Complete(ctx context.Context, userID uint) (*services.OnboardingResult, error)
	Reset(ctx context.Context, userID uint) error
}

type OnboardingController struct {
	service OnboardingService
}

func NewOnboardingController(service OnboardingService) *OnboardingController {
	return &OnboardingController{service: service}
}

type SetStepRequest struct {
	Step string `json:"step" binding:"required" example:"height"`
}

// GetOnboarding godoc
// @Summary Get onboarding state
// @Description Current step, progress, collected answers and derived metrics
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Onboarding state retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to load onboarding"
// @Router /onboarding [get]
func (oc *OnboardingController) GetOnboarding(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	state, err := oc.service.Get(c.Request.Context(), userID)
	if err != nil {
		respondOnboardingError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Onboarding state retrieved successfully", state)
}

// SubmitAnswer godoc
// @Summary Answer the current step
// @Description Validate and store the answer for the current step, then advance
// @Tags onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer body onboarding.Answer true "Answer for the current step"
// @Success 200 {object} map[string]interface{} "Answer saved"
// @Failure 400 {object} map[string]interface{} "Invalid answer"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 409 {object} map[string]interface{} "Step not allowed"
// @Failure 500 {object} map[string]interface{} "Failed to save onboarding"
// @Router /onboarding/answer [post]
func (oc *OnboardingController) SubmitAnswer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var answer onboarding.Answer
	if err := c.ShouldBindJSON(&answer); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	state, err := oc.service.Submit(c.Request.Context(), userID, answer)
	if err != nil {
		respondOnboardingError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Answer saved", state)
}

// GoBack godoc
// @Summary Go to the previous step
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Moved to previous step"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 409 {object} map[string]interface{} "No previous step"
// @Router /onboarding/back [post]
func (oc *OnboardingController) GoBack(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	state, err := oc.service.Back(c.Request.Context(), userID)
	if err != nil {
		respondOnboardingError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Moved to previous step", state)
}

// SetStep godoc
// @Summary Jump to a step
// @Description Move to a step that is a next or back neighbour of the current one
// @Tags onboarding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param step body SetStepRequest true "Target step"
// @Success 200 {object} map[string]interface{} "Step changed"
// @Failure 400 {object} map[string]interface{} "Unknown step"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 409 {object} map[string]interface{} "Step not allowed"
// @Router /onboarding/step [put]
func (oc *OnboardingController) SetStep(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SetStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	state, err := oc.service.SetStep(c.Request.Context(), userID, req.Step)
	if err != nil {
		respondOnboardingError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Step changed", state)
}

// GetMetrics godoc
// @Summary Get onboarding metrics
// @Description BMR, TDEE, BMI and target calories computed from the answers so far
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Metrics calculated"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /onboarding/metrics [get]
func (oc *OnboardingController) GetMetrics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	metrics, err := oc.service.Metrics(c.Request.Context(), userID)
	if err != nil {
		respondOnboardingError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Metrics calculated", metrics)
}

// Complete godoc
// @Summary Complete onboarding
// @Description Save the answers as the user's profile, derive nutrition goals and discard the session
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Onboarding completed"
// @Failure 400 {object} map[string]interface{} "Name is required"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 409 {object} map[string]interface{} "Onboarding not finished"
// @Failure 500 {object} map[string]interface{} "Failed to complete onboarding"
// @Router /onboarding/complete [post]
func (oc *OnboardingController) Complete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := oc.service.Complete(c.Request.Context(), userID)
	if err != nil {
		respondOnboardingError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Onboarding completed", result)
}

// Reset godoc
// @Summary Restart onboarding
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Onboarding reset"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to reset onboarding"
// @Router /onboarding [delete]
func (oc *OnboardingController) Reset(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := oc.service.Reset(c.Request.Context(), userID); err != nil {
		respondOnboardingError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Onboarding reset", nil)
}

func respondOnboardingError(c *gin.Context, err error) {
	switch {
	case onboarding.IsValidation(err):
		respondError(c, http.StatusBadRequest, "Invalid answer", err)
	case errors.Is(err, onboarding.ErrUnknownStep):
		respondError(c, http.StatusBadRequest, "Unknown onboarding step", err)
	case errors.Is(err, onboarding.ErrInvalidTransition),
		errors.Is(err, onboarding.ErrNoPreviousStep),
		errors.Is(err, onboarding.ErrFlowFinished):
		respondError(c, http.StatusConflict, "Step not allowed", err)
	case errors.Is(err, services.ErrStorage):
		respondError(c, http.StatusInternalServerError, "Failed to save onboarding", nil)
	default:
		respondError(c, http.StatusInternalServerError, "Onboarding failed", err)
	}
}
