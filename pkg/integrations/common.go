// Package integrations provides shared HTTP plumbing for registry clients.
//
// The only registry cargoport talks to is crates.io (see the crates
// subpackage), but the transport concerns live here: timeouts, retry
// classification of response codes, and response caching.
package integrations

import (
	"errors"
	"net/http"
	"time"
)

const httpTimeout = 30 * time.Second

var (
	// ErrNotFound is returned when a crate or version doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a timeout sized for crate
// archive downloads.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
