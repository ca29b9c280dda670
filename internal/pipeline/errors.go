package pipeline

import (
	"errors"
	"fmt"
)

// UpstreamError means the provider answered, but not with a usable 2xx JSON body.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned unusable response (status %d)", e.StatusCode)
}

// IsUpstreamFailure reports whether err wraps an *UpstreamError.
func IsUpstreamFailure(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// MappingError means a successful payload did not have the expected shape.
type MappingError struct {
	// Path locates the offending value, e.g. "weather[0].description" or "[3].id".
	Path   string
	Reason string
}

func (e *MappingError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("mapping failed: %s", e.Reason)
	}
	return fmt.Sprintf("mapping failed at %s: %s", e.Path, e.Reason)
}

// IsMappingError reports whether err wraps a *MappingError.
func IsMappingError(err error) bool {
	var me *MappingError
	return errors.As(err, &me)
}
