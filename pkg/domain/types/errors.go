package types

import "github.com/m-mizutani/goerr/v2"

// Error tags distinguish failure kinds so callers can react without
// string matching. Attach with goerr.T, check with goerr.HasTag.
var (
	// ErrTagConfig marks missing or invalid configuration, such as an
	// absent credential. Fatal, never retried.
	ErrTagConfig = goerr.NewTag("config")

	// ErrTagProvider marks a hosting provider API failure (HTTP error,
	// transport failure, unexpected response shape).
	ErrTagProvider = goerr.NewTag("provider")

	// ErrTagGit marks a local git subprocess failure.
	ErrTagGit = goerr.NewTag("git")

	// ErrTagValidation marks a lifecycle event field that failed format
	// validation.
	ErrTagValidation = goerr.NewTag("validation")
)
