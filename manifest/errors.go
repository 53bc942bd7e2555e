// ABOUTME: Error taxonomy for manifest retrieval: RetrievalError, NetworkError, and ParseError.
// ABOUTME: All three unwrap to their cause so callers can use errors.Is and errors.As.
package manifest

import (
	"errors"
	"fmt"
)

// ErrMissingPath is wrapped by a ParseError when an asset has no path.
var ErrMissingPath = errors.New("asset missing 'path' field")

// ErrNotObject is wrapped by a ParseError when the document is not a single
// object, such as a bare null or an array.
var ErrNotObject = errors.New("manifest is not an object")

// RetrievalError reports a non-success HTTP response from the manifest endpoint.
type RetrievalError struct {
	StatusCode int
	URL        string
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("Failed to load manifest: %d", e.StatusCode)
}

// NetworkError reports a transport failure before any response was received.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching manifest %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a manifest body that could not be decoded.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing manifest %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
