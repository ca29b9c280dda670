// Package pipeline composes a fetch step and a mapping step into a single
// run: fetch, check the success flag, map the payload, hand back a value.
package pipeline

import (
	"context"
	"fmt"

	"api-consumer/internal/apiclient"
)

// State is the lifecycle of a single run. A run moves from Pending to
// exactly one of Success or Failure and never leaves it.
type State int

const (
	Pending State = iota
	Success
	Failure
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("unknown (%d)", int(s))
	}
}

// FetchFunc performs the upstream round trip.
type FetchFunc func(ctx context.Context) (*apiclient.RawResponse, error)

// Result is the outcome of one run.
type Result[T any] struct {
	State      State
	Value      T
	StatusCode int
}

// Run executes fetch then mapFn, which turns the decoded payload into a
// domain value. On failure the returned error is one of
// *apiclient.TransportError, *UpstreamError or *MappingError, possibly
// wrapped; the caller decides which of them to swallow.
func Run[T any](ctx context.Context, fetch FetchFunc, mapFn func(payload any) (T, error)) (Result[T], error) {
	res := Result[T]{State: Pending}

	raw, err := fetch(ctx)
	if err != nil {
		res.State = Failure
		return res, err
	}
	if raw == nil {
		res.State = Failure
		return res, &UpstreamError{}
	}

	res.StatusCode = raw.StatusCode
	if !raw.Successful {
		res.State = Failure
		return res, &UpstreamError{StatusCode: raw.StatusCode, Body: raw.Body}
	}

	value, err := mapFn(raw.Payload)
	if err != nil {
		res.State = Failure
		return res, err
	}

	res.State = Success
	res.Value = value
	return res, nil
}
