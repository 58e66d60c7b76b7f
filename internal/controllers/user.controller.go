package controllers

import (
	"dietai/internal/models"
	"dietai/internal/repository"
	"dietai/internal/utils"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserController struct {
	repo      repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       *zap.Logger
}

func NewUserController(repo repository.UserRepository, jwtSecret string, tokenTTL time.Duration, log *zap.Logger) *UserController {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserController{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with email and password and return an access token
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "User registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Failure 500 {object} map[string]interface{} "Failed to create user"
// @Router /users/register [post]
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := uc.repo.FindByEmail(c.Request.Context(), email); err == nil {
		respondError(c, http.StatusConflict, "Email already registered", nil)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		uc.log.Error("Failed to look up user", zap.String("email", email), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	user := models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
	}
	if err := uc.repo.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(c, http.StatusConflict, "Email already registered", nil)
			return
		}
		uc.log.Error("Failed to create user", zap.String("email", email), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	token, err := utils.GenerateToken(uc.jwtSecret, uc.tokenTTL, user.ID, user.Email, time.Now())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	uc.log.Info("User registered", zap.Uint("user_id", user.ID))
	respondSuccess(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":  user,
		"token": token,
	})
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for an access token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Router /users/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	user, err := uc.repo.FindByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			uc.log.Error("Failed to look up user", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to log in", err)
			return
		}
		respondError(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	token, err := utils.GenerateToken(uc.jwtSecret, uc.tokenTTL, user.ID, user.Email, time.Now())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}

// GetCurrentUser godoc
// @Summary Get current user
// @Description Retrieve the authenticated user's account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/me [get]
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := uc.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		uc.log.Error("Failed to load user", zap.Uint("user_id", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to retrieve user", err)
		return
	}

	respondSuccess(c, http.StatusOK, "User retrieved successfully", user)
}

// DeleteCurrentUser godoc
// @Summary Delete account
// @Description Delete the authenticated user together with profile, goals, onboarding session, food log and chat history
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User deleted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete user"
// @Router /users/me [delete]
func (uc *UserController) DeleteCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := uc.repo.Delete(c.Request.Context(), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		uc.log.Error("Failed to delete user", zap.Uint("user_id", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete user", err)
		return
	}

	uc.log.Info("User deleted", zap.Uint("user_id", userID))
	respondSuccess(c, http.StatusOK, "User deleted successfully", nil)
}
