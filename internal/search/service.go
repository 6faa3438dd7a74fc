package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL    = "https://www.googleapis.com/customsearch/v1"
	defaultNumResults = 5
	maxNumResults     = 10
	requestTimeout    = 10 * time.Second
)

var (
	// ErrNotConfigured means the Google API key or engine ID is missing.
	ErrNotConfigured = errors.New("search service is not configured")
	// ErrRateLimited means Google rejected the request with 429.
	ErrRateLimited = errors.New("search quota exceeded")
	// ErrAuthFailed means Google rejected the credentials with 403.
	ErrAuthFailed = errors.New("search authentication failed")
	// ErrTimeout means the request did not complete within the timeout.
	ErrTimeout = errors.New("search request timed out")
)

// Result is a single web search hit.
type Result struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`
}

// Response is the outcome of one search. TotalResults is a string because
// that is how Google reports it.
type Response struct {
	Query        string   `json:"query"`
	Results      []Result `json:"results"`
	TotalResults string   `json:"totalResults"`
	SearchTime   float64  `json:"searchTime"`
}

// Service queries the Google Custom Search JSON API.
type Service struct {
	apiKey   string
	engineID string
	baseURL  string
	client   *http.Client
	log      *zap.Logger
}

func NewService(apiKey, engineID string, timeout time.Duration, log *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return &Service{
		apiKey:   apiKey,
		engineID: engineID,
		baseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

// googleResponse mirrors the fields of the Custom Search API we use.
type googleResponse struct {
	Items []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Snippet     string `json:"snippet"`
		DisplayLink string `json:"displayLink"`
	} `json:"items"`
	SearchInformation struct {
		TotalResults string  `json:"totalResults"`
		SearchTime   float64 `json:"searchTime"`
	} `json:"searchInformation"`
}

// Search runs one safe-search query. numResults defaults to 5 and is capped
// at 10, the API maximum.
func (s *Service) Search(ctx context.Context, query string, numResults int) (Response, error) {
	if s.apiKey == "" || s.engineID == "" {
		return Response{}, ErrNotConfigured
	}
	if numResults <= 0 {
		numResults = defaultNumResults
	}
	if numResults > maxNumResults {
		numResults = maxNumResults
	}

	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("cx", s.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(numResults))
	params.Set("safe", "active")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Response{}, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return Response{}, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return Response{}, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return Response{}, ErrRateLimited
	case http.StatusForbidden:
		return Response{}, ErrAuthFailed
	default:
		return Response{}, fmt.Errorf("search request returned status %d", resp.StatusCode)
	}

	var body googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Response{}, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]Result, 0, len(body.Items))
	for _, item := range body.Items {
		results = append(results, Result{
			Title:       item.Title,
			Link:        item.Link,
			Snippet:     item.Snippet,
			DisplayLink: item.DisplayLink,
		})
	}

	s.log.Debug("search completed",
		zap.String("query", query),
		zap.Int("results", len(results)),
		zap.Float64("searchTime", body.SearchInformation.SearchTime))

	return Response{
		Query:        query,
		Results:      results,
		TotalResults: body.SearchInformation.TotalResults,
		SearchTime:   body.SearchInformation.SearchTime,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
