package domain

import (
	"fmt"
	"strings"
)

// FailureKind separates failures without a server envelope from failures the server reported.
type FailureKind int

const (
	// FailureTransport covers network errors and non-2xx responses without an error envelope.
	FailureTransport FailureKind = iota
	// FailureApplication covers responses whose envelope reports an error.
	FailureApplication
)

func (k FailureKind) String() string {
	if k == FailureApplication {
		return "application"
	}
	return "transport"
}

// GatewayError is the typed failure of a single gateway round trip.
// It matches ErrTransportFailure or ErrApplicationFailure with errors.Is.
type GatewayError struct {
	Kind FailureKind
	// Op names the call, e.g. "products.list".
	Op string
	// StatusCode is the HTTP status, or the envelope statusCode for application failures. Zero when no response arrived.
	StatusCode int
	// ServerMessage is the envelope statusMessage, if any.
	ServerMessage string
	// Err is the underlying cause.
	Err error
}

// Message returns the human-readable failure text shown to users.
func (e *GatewayError) Message() string {
	if e.ServerMessage != "" {
		return e.ServerMessage
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Kind.String() + " failure"
}

func (e *GatewayError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	b.WriteString(" failure")
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (%d)", e.StatusCode)
	}
	b.WriteString(": ")
	b.WriteString(e.Message())
	return b.String()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is matches the failure-kind sentinels.
func (e *GatewayError) Is(target error) bool {
	switch target {
	case ErrTransportFailure:
		return e.Kind == FailureTransport
	case ErrApplicationFailure:
		return e.Kind == FailureApplication
	default:
		return false
	}
}
