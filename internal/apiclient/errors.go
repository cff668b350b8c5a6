// Package apiclient fetches evaluation data from the REST API and validates
// it at the boundary, so the rest of the program only sees typed records or a
// classified error.
package apiclient

import (
	"errors"
	"fmt"
)

// NetworkError represents a transport-level failure: the request could not be
// sent, or the server answered with a non-2xx status. These are faults and
// should surface as errors to the user.
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	Cause      error
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("network error during %s for %s: %v", e.Op, e.URL, e.Cause)
	}
	return fmt.Sprintf("network error during %s for %s: HTTP status %d", e.Op, e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// DataAbsentError represents a valid response without usable domain data,
// such as no active cycle or a matrix with insufficient inputs. This is a
// normal system state, not a fault: callers render a placeholder and exit
// cleanly instead of failing.
type DataAbsentError struct {
	Resource string
	Message  string
}

func (e *DataAbsentError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("no data for %s: %s", e.Resource, e.Message)
	}
	return fmt.Sprintf("no data for %s", e.Resource)
}

// ParseError represents a response whose payload could not be decoded or
// failed boundary validation.
type ParseError struct {
	Resource string
	Cause    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid payload for %s: %v", e.Resource, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// IsDataAbsent reports whether err (or anything it wraps) is a
// DataAbsentError.
func IsDataAbsent(err error) bool {
	var dae *DataAbsentError
	return errors.As(err, &dae)
}
