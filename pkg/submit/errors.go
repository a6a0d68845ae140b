package submit

import "errors"

// Domain errors for form submission, designed for errors.Is classification.
// The previous incarnation of this helper swallowed failures silently; every
// failure mode now carries a stable identity so callers can react
// deterministically.
var (
	ErrSubmissionFailed = errors.New("form submission failed")
	ErrInvalidURL       = errors.New("invalid submission URL")
	ErrNetworkFailure   = errors.New("network failure")
	ErrTimeout          = errors.New("submission request timeout")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrDecodeFailed     = errors.New("response decoding failed")
)
