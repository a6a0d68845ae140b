package submit

import (
	"net/http"
	"time"
)

// AttemptResult describes a single delivery attempt, successful or not.
type AttemptResult struct {
	StatusCode int
	Attempt    int
	Duration   time.Duration
	Err        error
}

// AttemptHook is called after each delivery attempt. Useful for wiring in
// logging or metrics without coupling the client to an observability stack.
type AttemptHook func(result AttemptResult)

type submitOptions struct {
	timeout    time.Duration
	headers    map[string]string
	httpClient *http.Client

	maxRetries int
	backoff    BackoffStrategy

	onAttempt AttemptHook
}

func defaultSubmitOptions() *submitOptions {
	return &submitOptions{
		timeout:    10 * time.Second,
		headers:    make(map[string]string),
		maxRetries: 3,
		backoff:    DefaultBackoffStrategy(),
	}
}

// SubmitOption is a functional option for configuring a submission.
type SubmitOption func(*submitOptions)

// WithTimeout sets the per-request timeout. Default is 10 seconds.
func WithTimeout(timeout time.Duration) SubmitOption {
	return func(o *submitOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHeader adds a custom header to the request. Content-Type and Accept
// are set automatically.
func WithHeader(key, value string) SubmitOption {
	return func(o *submitOptions) {
		if key != "" && value != "" {
			o.headers[key] = value
		}
	}
}

// WithHeaders adds multiple custom headers to the request.
func WithHeaders(headers map[string]string) SubmitOption {
	return func(o *submitOptions) {
		for k, v := range headers {
			if k != "" && v != "" {
				o.headers[k] = v
			}
		}
	}
}

// WithHTTPClient overrides the client for this submission. Useful for custom
// transports, proxies, or testing.
func WithHTTPClient(client *http.Client) SubmitOption {
	return func(o *submitOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithMaxRetries sets the maximum number of retry attempts. Default is 3;
// zero disables retries.
func WithMaxRetries(n int) SubmitOption {
	return func(o *submitOptions) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

// WithBackoff sets the backoff strategy for retries. Default is exponential
// backoff with jitter.
func WithBackoff(strategy BackoffStrategy) SubmitOption {
	return func(o *submitOptions) {
		if strategy != nil {
			o.backoff = strategy
		}
	}
}

// WithBasicRetry configures retries with a fixed interval, handy for
// predictable timing in tests.
func WithBasicRetry(attempts int, interval time.Duration) SubmitOption {
	return func(o *submitOptions) {
		o.maxRetries = attempts
		o.backoff = FixedBackoff{Interval: interval}
	}
}

// WithNoRetry disables all retry attempts.
func WithNoRetry() SubmitOption {
	return func(o *submitOptions) {
		o.maxRetries = 0
	}
}

// WithOnAttempt sets a callback invoked after each delivery attempt.
func WithOnAttempt(hook AttemptHook) SubmitOption {
	return func(o *submitOptions) {
		o.onAttempt = hook
	}
}
