package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTrackingNumberRequired  = errors.New("tracking number is required")
	ErrTrackingNumberImmutable = errors.New("tracking number cannot be changed")
	ErrInvalidCoordinates      = errors.New("invalid coordinate format")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUnauthenticated         = errors.New("not authenticated")
	ErrSessionNotFound         = errors.New("session not found")
	ErrShipmentNotFound        = errors.New("shipment not found")
)

// ValidationError blocks a submission before any remote call is made.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// TransportError means the remote shipment resource could not be reached.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseError means the remote resource answered with a non-2xx status or a
// body that could not be used.
type ResponseError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *ResponseError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	case e.Body != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	}
}

func (e *ResponseError) Unwrap() error { return e.Err }

// IsRemoteError reports whether err came from talking to the remote resource.
func IsRemoteError(err error) bool {
	var te *TransportError
	var re *ResponseError
	return errors.As(err, &te) || errors.As(err, &re)
}
