package usda

import (
	"bytes"
	"context"
	"dietai/internal/nutrition"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL    = "https://api.nal.usda.gov/fdc/v1"
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 2
	searchPageSize    = 10
)

var searchDataTypes = []string{"Branded", "Foundation", "Survey (FNDDS)", "SR Legacy"}

var ErrEmptyQuery = errors.New("search query is empty")

// User-facing messages, shown verbatim by the app.
const (
	msgServerError     = "Lỗi server. API USDA có thể đang gặp vấn đề hoặc đã hết hạn mức API key."
	msgUnavailable     = "Dịch vụ API USDA tạm thời không khả dụng. Vui lòng thử lại sau."
	msgBadAPIKey       = "Lỗi API key. Vui lòng kiểm tra API key hoặc lấy key mới từ trang USDA."
	msgTooManyRequests = "Quá nhiều yêu cầu. Vui lòng thử lại sau."
	msgBadRequest      = "Yêu cầu không hợp lệ. Vui lòng kiểm tra tham số tìm kiếm."
	msgNoResponse      = "Không nhận được phản hồi từ server. Vui lòng kiểm tra kết nối internet."
	msgSearchFailed    = "Không thể tìm kiếm thực phẩm. Vui lòng thử lại."
	msgDetailsFailed   = "Không thể lấy thông tin thực phẩm. Vui lòng thử lại."
)

// APIError is a failed call to FoodData Central. StatusCode is 0 when no
// response was received.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("usda: status %d: %s", e.StatusCode, e.Message)
	}
	return "usda: " + e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	MaxRetries int
	// Backoff returns the wait before retry number attempt (1-based).
	Backoff func(attempt int) time.Duration
	Logger  *zap.Logger
}

func NewClient(apiKey, baseURL string, log *zap.Logger) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		MaxRetries: defaultMaxRetries,
		Backoff:    func(attempt int) time.Duration { return time.Duration(attempt) * time.Second },
		Logger:     log,
	}
}

// SearchFoods runs a text search, retrying timeouts and 500/503 responses.
func (c *Client) SearchFoods(ctx context.Context, query string) ([]nutrition.FoodSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	for attempt := 0; ; attempt++ {
		results, err := c.searchOnce(ctx, query)
		if err == nil {
			return results, nil
		}
		if attempt >= c.MaxRetries || !retryable(ctx, err) {
			return nil, searchError(err)
		}

		wait := c.backoff(attempt + 1)
		c.log().Warn("Retrying USDA search",
			zap.String("query", query),
			zap.Int("retry", attempt+1),
			zap.Int("max_retries", c.MaxRetries),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return nil, searchError(ctx.Err())
		case <-time.After(wait):
		}
	}
}

func (c *Client) searchOnce(ctx context.Context, query string) ([]nutrition.FoodSearchResult, error) {
	payload, err := json.Marshal(map[string]any{
		"query":    query,
		"pageSize": searchPageSize,
		"dataType": searchDataTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal USDA search payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/foods/search"), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create USDA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode USDA response: %w", err)
	}
	if parsed.Foods == nil {
		return nil, errors.New("USDA response has no foods array")
	}

	results := make([]nutrition.FoodSearchResult, 0, len(parsed.Foods))
	for _, f := range parsed.Foods {
		results = append(results, nutrition.FoodSearchResult{
			FdcID:           f.FdcID,
			Description:     f.Description,
			BrandOwner:      f.BrandOwner,
			DataType:        f.DataType,
			ServingSize:     servingSizeOrDefault(f.ServingSize),
			ServingSizeUnit: servingUnitOrDefault(f.ServingSizeUnit),
		})
	}
	return results, nil
}

// GetFoodDetails fetches one food and maps its nutrient list onto Nutrients.
func (c *Client) GetFoodDetails(ctx context.Context, fdcID int64) (nutrition.FoodItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(fmt.Sprintf("/food/%d", fdcID)), nil)
	if err != nil {
		return nutrition.FoodItem{}, &APIError{Message: msgDetailsFailed, Err: err}
	}

	body, err := c.do(req)
	if err != nil {
		return nutrition.FoodItem{}, detailsError(err)
	}

	var food foodResponse
	if err := json.Unmarshal(body, &food); err != nil {
		return nutrition.FoodItem{}, &APIError{Message: msgDetailsFailed, Err: fmt.Errorf("decode USDA response: %w", err)}
	}

	return nutrition.FoodItem{
		FdcID:           food.FdcID,
		Description:     food.Description,
		BrandOwner:      food.BrandOwner,
		ServingSize:     servingSizeOrDefault(food.ServingSize),
		ServingSizeUnit: servingUnitOrDefault(food.ServingSizeUnit),
		Nutrients:       mapNutrients(food.FoodNutrients),
	}, nil
}

// statusError carries a non-2xx response until it is turned into an APIError.
type statusError struct {
	code int
	body []byte
}

func (e *statusError) Error() string {
	return fmt.Sprintf("USDA request failed with status %d", e.code)
}

// noResponseError marks transport failures where the server never answered.
type noResponseError struct{ err error }

func (e *noResponseError) Error() string { return "no response from USDA: " + e.err.Error() }
func (e *noResponseError) Unwrap() error { return e.err }

func (c *Client) do(req *http.Request) ([]byte, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &noResponseError{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read USDA response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode, body: body}
	}
	return body, nil
}

func (c *Client) endpoint(path string) string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return fmt.Sprintf("%s%s?api_key=%s", base, path, url.QueryEscape(c.APIKey))
}

func (c *Client) backoff(attempt int) time.Duration {
	if c.Backoff == nil {
		return time.Duration(attempt) * time.Second
	}
	return c.Backoff(attempt)
}

func (c *Client) log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusInternalServerError || se.code == http.StatusServiceUnavailable
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func searchError(err error) error {
	var se *statusError
	if errors.As(err, &se) {
		return &APIError{StatusCode: se.code, Message: statusMessage(se.code), Err: err}
	}
	var nr *noResponseError
	if errors.As(err, &nr) {
		return &APIError{Message: msgNoResponse, Err: err}
	}
	return &APIError{Message: msgSearchFailed, Err: err}
}

func detailsError(err error) error {
	var se *statusError
	if errors.As(err, &se) {
		return &APIError{StatusCode: se.code, Message: msgDetailsFailed, Err: err}
	}
	return &APIError{Message: msgDetailsFailed, Err: err}
}

func statusMessage(code int) string {
	switch code {
	case http.StatusInternalServerError:
		return msgServerError
	case http.StatusServiceUnavailable:
		return msgUnavailable
	case http.StatusForbidden:
		return msgBadAPIKey
	case http.StatusTooManyRequests:
		return msgTooManyRequests
	case http.StatusBadRequest:
		return msgBadRequest
	}
	return msgSearchFailed
}

func servingSizeOrDefault(v float64) float64 {
	if v <= 0 {
		return nutrition.DefaultServingSize
	}
	return v
}

func servingUnitOrDefault(u string) string {
	if strings.TrimSpace(u) == "" {
		return "g"
	}
	return u
}

// mapNutrients matches free-text nutrient names by substring, checked in a
// fixed order. The first non-zero matching entry for a field wins; energy
// reported in kJ is skipped so calories stay in kcal.
func mapNutrients(list []foodNutrient) nutrition.Nutrients {
	var (
		out  nutrition.Nutrients
		seen = map[string]bool{}
	)
	set := func(field string, dst *float64, v float64) {
		if seen[field] {
			return
		}
		seen[field] = true
		*dst = v
	}

	for _, n := range list {
		if n.Amount == 0 {
			continue
		}
		name := strings.ToLower(n.Nutrient.Name)
		value := n.Amount

		switch {
		case strings.Contains(name, "energy") || strings.Contains(name, "calorie"):
			if strings.EqualFold(n.Nutrient.UnitName, "kj") {
				continue
			}
			set("calories", &out.Calories, math.Round(value))
		case strings.Contains(name, "protein"):
			set("protein", &out.Protein, nutrition.Round2(value))
		case strings.Contains(name, "carbohydrate"):
			set("carbohydrates", &out.Carbohydrates, nutrition.Round2(value))
		case strings.Contains(name, "total lipid") || strings.Contains(name, "fat"):
			set("fat", &out.Fat, nutrition.Round2(value))
		case strings.Contains(name, "fiber"):
			set("fiber", &out.Fiber, nutrition.Round2(value))
		case strings.Contains(name, "sugars"):
			set("sugar", &out.Sugar, nutrition.Round2(value))
		case strings.Contains(name, "sodium"):
			set("sodium", &out.Sodium, nutrition.Round2(value))
		}
	}
	return out
}

type searchResponse struct {
	Foods []searchFood `json:"foods"`
}

type searchFood struct {
	FdcID           int64   `json:"fdcId"`
	Description     string  `json:"description"`
	BrandOwner      string  `json:"brandOwner"`
	DataType        string  `json:"dataType"`
	ServingSize     float64 `json:"servingSize"`
	ServingSizeUnit string  `json:"servingSizeUnit"`
}

type foodResponse struct {
	FdcID           int64          `json:"fdcId"`
	Description     string         `json:"description"`
	BrandOwner      string         `json:"brandOwner"`
	ServingSize     float64        `json:"servingSize"`
	ServingSizeUnit string         `json:"servingSizeUnit"`
	FoodNutrients   []foodNutrient `json:"foodNutrients"`
}

type foodNutrient struct {
	Nutrient struct {
		Name     string `json:"name"`
		UnitName string `json:"unitName"`
	} `json:"nutrient"`
	Amount float64 `json:"amount"`
}
