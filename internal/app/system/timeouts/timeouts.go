// Package timeouts provides centralized timeout values for handler
// operations.
//
// Every store round-trip initiated from a handler is bounded by one of
// these. Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads or lookups
//   - Medium: writes and multi-step reads touching a couple of collections
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for simple single-document operations.
// Examples: get by ID, lookup by barcode.
func Short() time.Duration { return short }

// Medium returns the timeout for writes and multi-collection reads.
// Examples: create family, add item (membership check + insert), scan join.
func Medium() time.Duration { return medium }
