package search

import (
	"fmt"

	"github.com/pkg/errors"
)

// TransportError means the request never produced a readable response:
// the endpoint was unreachable, the request could not be built, or the body could not be read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("search service unreachable: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is returned for any non-2xx response
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("search service returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("search service returned HTTP %d: %s", e.StatusCode, e.Body)
}

// DecodeError means the response body was not JSON
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("search response is not valid JSON: %v", e.Err)
}
func (e *DecodeError) Unwrap() error { return e.Err }

// SchemaError means the body was JSON but did not match the search result contract
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("search response has unexpected shape: %v", e.Err)
}
func (e *SchemaError) Unwrap() error { return e.Err }

// IsRecoverable reports whether err is one of the search failure kinds.
// All of them are local to a single attempt; the view stays usable.
func IsRecoverable(err error) bool {
	var (
		te *TransportError
		se *StatusError
		de *DecodeError
		ce *SchemaError
	)
	return errors.As(err, &te) || errors.As(err, &se) || errors.As(err, &de) || errors.As(err, &ce)
}
