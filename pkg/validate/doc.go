// Package validate provides stateless validation helpers for common web form
// fields: email addresses, password strength, required values, date shapes,
// and caller-supplied patterns.
//
// Two conventions coexist and both are part of the contract. Message-based
// validators (Email, Password) evaluate an ordered rule list and return the
// message of the first violated rule; an empty string means valid. Boolean
// validators (Required, Matches, ValidDateFormat) return false on failure
// with no diagnostic detail. No validator ever panics on malformed input;
// malformed input is the condition being tested.
//
// # Architecture
//
// Each source file groups a family of rules (`email_rules.go`,
// `password_rules.go`, `field_rules.go`). Every exported rule function
// constructs and returns a Rule value pairing a Check closure with
// translation-friendly error metadata. Rules compose two ways:
//
//   - First(rules...) evaluates in order and returns the first failure's
//     message, matching the single-message contract of form-field errors.
//   - Apply(rules...) evaluates everything and aggregates failures into a
//     ValidationErrors slice that satisfies the error interface.
//
// There is no hidden state, so the package is goroutine-safe without
// coordination.
//
// # Usage
//
//	if msg := validate.Email(input); msg != "" {
//	    form.SetError("email", msg)
//	}
//
//	err := validate.Apply(
//	    validate.RequiredField("username", username),
//	    validate.MatchesPattern("zip", zip, zipRegex),
//	)
//	if verrs := validate.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over field-level messages
//	}
//
// # Password Sequence Table
//
// The sequential-character rule matches candidate passwords against a fixed
// enumerated table of ascending runs rather than computing runs on the fly.
// Digits are tabulated as both 3- and 4-character runs while letters only as
// 3-character runs. The asymmetry is preserved deliberately so that callers
// migrating from the previous rule set observe identical accept/reject
// behavior.
package validate
