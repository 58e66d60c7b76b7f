package controllers_test

import (
	"context"
	"dietai/internal/controllers"
	"dietai/internal/nutrition"
	"dietai/internal/usda"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeFoodSearcher struct {
	results []nutrition.FoodSearchResult
	food    nutrition.FoodItem
	err     error
	queries []string
}

func (f *fakeFoodSearcher) Search(ctx context.Context, query string) ([]nutrition.FoodSearchResult, error) {
	f.queries = append(f.queries, query)
	if query == "" {
		return nil, usda.ErrEmptyQuery
	}
	return f.results, f.err
}

func (f *fakeFoodSearcher) Details(ctx context.Context, fdcID int64) (nutrition.FoodItem, error) {
	return f.food, f.err
}

func setupFoodRouter(searcher *fakeFoodSearcher) *gin.Engine {
	controller := controllers.NewFoodController(searcher)
	router := setupTestRouter()
	router.GET("/foods/search", controller.SearchFoods)
	router.GET("/foods/:fdcId", controller.GetFood)
	return router
}

func TestSearchFoods(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "results",
			path:           "/foods/search?query=rice",
			expectedStatus: http.StatusOK,
			expectedMsg:    "Foods found",
		},
		{
			name:           "empty query",
			path:           "/foods/search",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Vui lòng nhập tên thực phẩm cần tìm",
		},
		{
			name:           "rate limited upstream",
			path:           "/foods/search?query=rice",
			err:            &usda.APIError{StatusCode: http.StatusTooManyRequests, Message: "Quá nhiều yêu cầu. Vui lòng thử lại sau."},
			expectedStatus: http.StatusTooManyRequests,
			expectedMsg:    "Quá nhiều yêu cầu. Vui lòng thử lại sau.",
		},
		{
			name:           "upstream server error",
			path:           "/foods/search?query=rice",
			err:            &usda.APIError{StatusCode: http.StatusInternalServerError, Message: "Lỗi server"},
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "Lỗi server",
		},
		{
			name:           "unexpected failure",
			path:           "/foods/search?query=rice",
			err:            errors.New("boom"),
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "Không thể tìm kiếm thực phẩm. Vui lòng thử lại.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &fakeFoodSearcher{
				results: []nutrition.FoodSearchResult{{FdcID: 171705, Description: "Rice, white, cooked"}},
				err:     tt.err,
			}
			router := setupFoodRouter(searcher)

			w, response := performRequest(t, router, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMsg, response["message"])
			if tt.expectedStatus == http.StatusOK {
				data := response["data"].([]interface{})
				assert.Len(t, data, 1)
			}
		})
	}
}

func TestGetFood(t *testing.T) {
	searcher := &fakeFoodSearcher{food: nutrition.FoodItem{FdcID: 171705, Description: "Rice, white, cooked", ServingSize: 100}}
	router := setupFoodRouter(searcher)

	w, response := performRequest(t, router, http.MethodGet, "/foods/171705", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(171705), data["fdc_id"])

	for _, path := range []string{"/foods/abc", "/foods/0", "/foods/-4"} {
		w, _ := performRequest(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestGetFoodUpstreamUnavailable(t *testing.T) {
	searcher := &fakeFoodSearcher{err: &usda.APIError{StatusCode: http.StatusServiceUnavailable, Message: "Dịch vụ tạm thời không khả dụng"}}
	router := setupFoodRouter(searcher)

	w, response := performRequest(t, router, http.MethodGet, "/foods/171705", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Dịch vụ tạm thời không khả dụng", response["message"])
}
