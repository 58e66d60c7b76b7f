package routes_test

import (
	"dietai/internal/controllers"
	"dietai/internal/utils"
	"dietai/routes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-secret"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.RegisterUserRoutes(router, controllers.NewUserController(nil, testSecret, time.Hour, nil), testSecret)
	routes.RegisterUserProfileRoutes(router, controllers.NewUserProfileController(nil, nil), testSecret)
	routes.RegisterOnboardingRoutes(router, controllers.NewOnboardingController(nil), testSecret)
	routes.RegisterGoalRoutes(router, controllers.NewGoalController(nil, nil), testSecret)
	routes.RegisterFoodRoutes(router, controllers.NewFoodController(nil), testSecret)
	routes.RegisterFoodLogRoutes(router, controllers.NewFoodLogController(nil), testSecret)
	routes.RegisterChatRoutes(router, controllers.NewChatController(nil), testSecret)
	return router
}

func TestPrivateRoutesRequireToken(t *testing.T) {
	router := setupRouter()

	private := []struct{ method, path string }{
		{http.MethodGet, "/users/me"},
		{http.MethodDelete, "/users/me"},
		{http.MethodGet, "/profile"},
		{http.MethodPut, "/profile"},
		{http.MethodPatch, "/profile"},
		{http.MethodGet, "/onboarding"},
		{http.MethodPost, "/onboarding/answer"},
		{http.MethodPost, "/onboarding/back"},
		{http.MethodPut, "/onboarding/step"},
		{http.MethodGet, "/onboarding/metrics"},
		{http.MethodPost, "/onboarding/complete"},
		{http.MethodDelete, "/onboarding"},
		{http.MethodGet, "/goals"},
		{http.MethodPut, "/goals"},
		{http.MethodGet, "/foods/search"},
		{http.MethodGet, "/foods/171705"},
		{http.MethodGet, "/food-log"},
		{http.MethodPost, "/food-log"},
		{http.MethodGet, "/food-log/summary"},
		{http.MethodDelete, "/food-log/1"},
		{http.MethodPost, "/chat"},
		{http.MethodGet, "/chat/history"},
	}

	for _, r := range private {
		req := httptest.NewRequest(r.method, r.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", r.method, r.path)
	}
}

func TestTokenFromOtherSecretRejected(t *testing.T) {
	router := setupRouter()
	token, err := utils.GenerateToken("another-secret", time.Hour, 1, "lan@example.com", time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublicRoutesSkipAuth(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSwaggerRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.RegisterSwaggerRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/swagger", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/swagger/index.html", w.Header().Get("Location"))
}
