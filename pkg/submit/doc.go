// Package submit posts form field values to an HTTP endpoint and returns a
// typed outcome instead of swallowing failures.
//
// Every failure mode carries a stable sentinel identity checked with
// errors.Is: ErrInvalidURL for malformed targets, ErrNetworkFailure and
// ErrTimeout for transport problems, ErrUnexpectedStatus for non-2xx
// responses, and ErrDecodeFailed when a response body is not valid JSON.
// Successful submissions yield a Result holding the status code and raw JSON
// payload, decoded on demand with Result.Decode.
//
// Temporary failures are retried with a configurable backoff strategy;
// permanent 4xx responses and undecodable bodies fail fast. Defaults can be
// taken from the environment via Config:
//
//	cfg, err := submit.LoadConfig()
//	client := submit.NewClient()
//	result, err := client.Submit(ctx, cfg.Endpoint, form.Values(), cfg.Options()...)
package submit
