package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseBytes caps how much of a response body is read into a Result.
const maxResponseBytes = 1024 * 1024

// Result is the outcome of a successful submission. Payload holds the raw
// JSON response body when the endpoint returned one; it is nil for empty
// bodies such as 204 responses.
type Result struct {
	StatusCode int
	Payload    json.RawMessage
}

// Decode unmarshals the response payload into v.
func (r *Result) Decode(v any) error {
	if len(r.Payload) == 0 {
		return fmt.Errorf("%w: empty payload", ErrDecodeFailed)
	}
	if err := json.Unmarshal(r.Payload, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	return nil
}

// Client submits form values over HTTP. Zero value is not usable; use
// NewClient to create instances.
type Client struct {
	// client is reused across requests for connection pooling
	client *http.Client
}

// NewClient creates a submission client with a default HTTP client tuned for
// repeated form posts to a small set of endpoints.
func NewClient() *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second, // Per-request timeout, overridden by WithTimeout
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// NewClientWithClient creates a submission client with a custom HTTP client.
func NewClientWithClient(client *http.Client) *Client {
	if client == nil {
		return NewClient()
	}
	return &Client{client: client}
}

// Submit posts form values to formURL as application/x-www-form-urlencoded
// and returns the decoded response. Failures are classified into typed
// errors (ErrInvalidURL, ErrNetworkFailure, ErrTimeout, ErrUnexpectedStatus,
// ErrDecodeFailed) rather than being swallowed, so callers can branch on
// errors.Is. Temporary failures are retried with backoff; 4xx responses are
// treated as permanent (408, 425, and 429 excepted).
//
// Example:
//
//	result, err := client.Submit(ctx, "https://api.example.com/signup", form.Values())
//	if errors.Is(err, submit.ErrUnexpectedStatus) {
//	    // surface a retry-later message to the user
//	}
func (c *Client) Submit(ctx context.Context, formURL string, values url.Values, opts ...SubmitOption) (*Result, error) {
	if err := validateURL(formURL); err != nil {
		return nil, err
	}

	options := defaultSubmitOptions()
	for _, opt := range opts {
		opt(options)
	}

	client := c.client
	if options.httpClient != nil {
		client = options.httpClient
	}

	body := values.Encode()

	var lastErr error
	for attempt := 0; attempt <= options.maxRetries; attempt++ {
		if attempt > 0 {
			delay := options.backoff.NextInterval(attempt)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		start := time.Now()
		result, err := c.attempt(ctx, client, formURL, body, options)

		if options.onAttempt != nil {
			options.onAttempt(AttemptResult{
				StatusCode: statusCode(result),
				Attempt:    attempt + 1,
				Duration:   time.Since(start),
				Err:        err,
			})
		}

		if err == nil {
			return result, nil
		}

		lastErr = err

		// A body that fails to decode will not improve on retry.
		if errors.Is(err, ErrDecodeFailed) || isPermanentError(statusCode(result)) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrSubmissionFailed, options.maxRetries+1, lastErr)
}

func statusCode(result *Result) int {
	if result == nil {
		return 0
	}
	return result.StatusCode
}

// attempt makes a single POST. A non-nil Result is returned alongside status
// errors so the retry loop can classify them.
func (c *Client) attempt(ctx context.Context, client *http.Client, formURL, body string, options *submitOptions) (*Result, error) {
	reqCtx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, formURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "formkit-submit/1.0")
	for k, v := range options.headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	result := &Result{StatusCode: resp.StatusCode}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if len(respBody) > 0 {
		if !json.Valid(respBody) {
			return result, fmt.Errorf("%w: response body is not valid JSON", ErrDecodeFailed)
		}
		result.Payload = respBody
	}

	return result, nil
}

func validateURL(formURL string) error {
	if formURL == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}

	u, err := url.Parse(formURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	// Restrict to HTTP/HTTPS so form data never leaks over exotic schemes
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}

	return nil
}

// isPermanentError reports whether a status code should stop the retry loop.
// Most 4xx responses will not change on retry; 408, 425, and 429 are
// timing-related and may.
func isPermanentError(status int) bool {
	if status >= 400 && status < 500 {
		switch status {
		case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
			return false
		default:
			return true
		}
	}
	return false
}
