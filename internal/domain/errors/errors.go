package errors

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrEmptyAccesskey   = errors.New("accesskey is empty")
)

// AuthPhase names the step of an authorization service call that failed.
type AuthPhase string

const (
	AuthPhaseEncode  AuthPhase = "encode"
	AuthPhaseRequest AuthPhase = "request"
	AuthPhaseRead    AuthPhase = "read"
	AuthPhaseDecode  AuthPhase = "decode"
)

// AuthError is the only error kind returned by the authorization service client.
// Body holds the raw response text for decode failures.
type AuthError struct {
	Phase AuthPhase
	Body  string
	Err   error
}

func (e *AuthError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("auth %s (%s): %v", e.Phase, e.Body, e.Err)
	}
	return fmt.Sprintf("auth %s: %v", e.Phase, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
