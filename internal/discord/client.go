package discord

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/handler"
	"github.com/osse101/CropCalc_Go/internal/session"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
	maxRetries        = 3
	apiKeyHeader      = "X-API-Key"
	apiErrorPrefix    = "API error: "
)

// ErrMaxRetries is returned when every attempt hit a transport or server error
var ErrMaxRetries = errors.New("max retries exceeded")

// APIError is a non-2xx answer from the CropCalc API
type APIError struct {
	Status      int
	Message     string
	Suggestions []string
}

func (e *APIError) Error() string {
	return apiErrorPrefix + e.Message
}

// APIClient handles communication with the CropCalc API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: defaultTimeout,
		},
		APIKey:     apiKey,
		RetryDelay: defaultRetryDelay,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx answers
// with exponential backoff and jitter
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * c.RetryDelay / 500
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.APIKey != "" {
			req.Header.Set(apiKeyHeader, c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("%w: %v", ErrMaxRetries, lastErr)
}

// getJSON issues a request and decodes a 200 answer into out
func (c *APIClient) getJSON(method, path string, body, out interface{}) error {
	resp, err := c.doRequest(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var errResp handler.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		apiErr.Message = errResp.Error
		apiErr.Suggestions = errResp.Suggestions
	} else {
		apiErr.Message = fmt.Sprintf("status %d", resp.StatusCode)
	}
	return apiErr
}

// ListCrops returns the crops of a season, or every crop when season is empty
func (c *APIClient) ListCrops(season string) (*handler.CropListResponse, error) {
	path := "/api/v1/crops"
	if season != "" {
		path += "?" + url.Values{"season": {season}}.Encode()
	}

	var out handler.CropListResponse
	if err := c.getJSON(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProbability returns the quality odds for one farming level
func (c *APIClient) GetProbability(level int) (*domain.QualityProbabilityRow, error) {
	var out domain.QualityProbabilityRow
	if err := c.getJSON(http.MethodGet, "/api/v1/probabilities/"+strconv.Itoa(level), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuoteRequest selects the crop and profile for a quote
type QuoteRequest struct {
	Season  string
	Crop    string
	Seeds   int
	Level   int
	Tiller  bool
	Artisan bool
}

// QuoteCrop resolves a crop name and prices it per unit
func (c *APIClient) QuoteCrop(q QuoteRequest) (*domain.CropQuote, error) {
	query := url.Values{
		"seeds":   {strconv.Itoa(q.Seeds)},
		"level":   {strconv.Itoa(q.Level)},
		"tiller":  {strconv.FormatBool(q.Tiller)},
		"artisan": {strconv.FormatBool(q.Artisan)},
	}
	path := fmt.Sprintf("/api/v1/crops/%s/%s/quote?%s",
		url.PathEscape(q.Season), url.PathEscape(q.Crop), query.Encode())

	var out domain.CropQuote
	if err := c.getJSON(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Estimate prices a complete set of rows without creating a session
func (c *APIClient) Estimate(req handler.EstimateRequest) (*session.Report, error) {
	var out session.Report
	if err := c.getJSON(http.MethodPost, "/api/v1/estimate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Healthy reports whether the API answers its liveness probe
func (c *APIClient) Healthy() bool {
	resp, err := c.Client.Get(c.BaseURL + "/healthz")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
