package recruithub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maxaizer/recruithub-bot/internal/metrics"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const DefaultTimeout = 15 * time.Second

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Credentials supplies the bearer header of the current session.
type Credentials interface {
	AuthHeader() (http.Header, error)
}

type Client struct {
	baseURL     string
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
	timeout     time.Duration
}

// NewClient targets the backend at baseURL; the /api prefix is appended when missing.
func NewClient(baseURL string) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasSuffix(trimmed, "/api") {
		trimmed += "/api"
	}
	return &Client{baseURL: trimmed, httpClient: &http.Client{}, timeout: DefaultTimeout}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	if maxRequestsPerSecond <= 0 {
		c.rateLimiter = nil
		return
	}
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

type request struct {
	operation string
	method    string
	path      string
	body      any
	auth      Credentials
}

func (c *Client) do(ctx context.Context, r request, out any) error {

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return c.wrapContextError(ctx, err)
		}
	}

	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.APIRequestsCounter.WithLabelValues(r.operation, "error").Inc()
		return errors.Wrap(c.wrapContextError(ctx, err), "error sending request")
	}
	defer resp.Body.Close()

	metrics.APIRequestDuration.WithLabelValues(r.operation).Observe(time.Since(start).Seconds())
	metrics.APIRequestsCounter.WithLabelValues(r.operation, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := c.handleResponse(resp)
	if err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(out); err != nil {
		return fmt.Errorf("error decoding JSON response: %w", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("error encoding request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if r.auth != nil {
		header, err := r.auth.AuthHeader()
		if err != nil {
			return nil, err
		}
		for key, values := range header {
			for _, value := range values {
				req.Header.Add(key, value)
			}
		}
	}
	return req, nil
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

func (c *Client) wrapContextError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}
