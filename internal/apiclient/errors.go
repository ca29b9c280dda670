package apiclient

import (
	"errors"
	"fmt"
)

// ErrInvalidEndpoint is returned when the endpoint is not an absolute URL.
var ErrInvalidEndpoint = errors.New("endpoint must be an absolute URL")

// TransportError reports a connection-level failure: DNS, refused connection,
// cancelled context or a truncated body. HTTP error statuses are not transport errors.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure calling %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err, or anything it wraps, is a *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
