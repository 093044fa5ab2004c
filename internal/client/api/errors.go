package api

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindAuthentication Kind = iota + 1
	KindAuthorization
	KindServer
	KindNetwork
	KindBusiness
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	case KindBusiness:
		return "business"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrServer       = errors.New("server error")
	ErrUnavailable  = errors.New("service unavailable")
	ErrRejected     = errors.New("request rejected")
)

var kindSentinels = map[Kind]error{
	KindAuthentication: ErrUnauthorized,
	KindAuthorization:  ErrForbidden,
	KindServer:         ErrServer,
	KindNetwork:        ErrUnavailable,
	KindBusiness:       ErrRejected,
}

// Error is returned for every failed call. Message is the text shown to the
// user. Code is the envelope code, or the HTTP status when the body carried
// no envelope; Status is the HTTP status (0 when no response arrived).
type Error struct {
	Kind    Kind
	Code    int
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// fromEnvelope reports whether the failure came from a well-formed envelope
// with a non-success code rather than from the transport.
func (e *Error) fromEnvelope() bool {
	return e.Status >= 200 && e.Status < 300
}
