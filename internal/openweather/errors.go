package openweather

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies why a fetch failed
type Kind int

const (
	KindUnavailable  Kind = iota // any other non-2xx or a malformed body
	KindNetwork                  // no response reached us
	KindNotFound                 // HTTP 404
	KindUnauthorized             // HTTP 401
	KindRateLimited              // HTTP 429
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "unavailable"
	}
}

// FetchError is returned by every failed client call
type FetchError struct {
	Kind       Kind
	StatusCode int   // 0 when no response was received
	Err        error // underlying cause, if any
}

// Sentinels for errors.Is. Matching compares Kind only.
var (
	ErrUnavailable  = &FetchError{Kind: KindUnavailable}
	ErrNetwork      = &FetchError{Kind: KindNetwork}
	ErrNotFound     = &FetchError{Kind: KindNotFound}
	ErrUnauthorized = &FetchError{Kind: KindUnauthorized}
	ErrRateLimited  = &FetchError{Kind: KindRateLimited}
)

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindNetwork:
		if e.Err != nil {
			return fmt.Sprintf("network error: %v", e.Err)
		}
		return "network error"
	case KindNotFound:
		return "City not found"
	case KindUnauthorized:
		return "Invalid API key"
	case KindRateLimited:
		return "Too many requests"
	default:
		return "Weather data unavailable"
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches any *FetchError of the same Kind
func (e *FetchError) Is(target error) bool {
	t, ok := target.(*FetchError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind carried by err. Errors that did not come from
// this package are reported as KindUnavailable.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnavailable
}

func errorForStatus(status int) *FetchError {
	switch status {
	case http.StatusNotFound:
		return &FetchError{Kind: KindNotFound, StatusCode: status}
	case http.StatusUnauthorized:
		return &FetchError{Kind: KindUnauthorized, StatusCode: status}
	case http.StatusTooManyRequests:
		return &FetchError{Kind: KindRateLimited, StatusCode: status}
	default:
		return &FetchError{
			Kind:       KindUnavailable,
			StatusCode: status,
			Err:        fmt.Errorf("unexpected status %d", status),
		}
	}
}
