package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/coursehub/forumtree/shared/domain"
	mw "github.com/coursehub/forumtree/shared/middleware"
	"github.com/coursehub/forumtree/shared/middleware/metrics"
	"github.com/google/uuid"
)

const maxErrorBody = 4 << 10

// APIClient handles all communication with the course backend.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: &http.Client{Timeout: timeout},
	}
}

// do is the single helper for backend requests. endpoint is a fixed label
// for metrics, path is appended to BaseURL. The session, when present,
// authenticates the call.
func (c *APIClient) do(ctx context.Context, sess *domain.Session, endpoint, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}
	requestId := mw.RequestIdFromContext(ctx)
	if requestId == "" {
		requestId = uuid.NewString()
	}
	req.Header.Set(mw.RequestIdHeader, requestId)

	start := time.Now()
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		metrics.BackendRequestDuration.WithLabelValues(endpoint, "error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	metrics.BackendRequestDuration.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())
	return resp, nil
}

func readErrorBody(resp *http.Response) string {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return strings.TrimSpace(string(b))
}
