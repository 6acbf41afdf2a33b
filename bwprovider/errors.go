package bwprovider

import (
	"fmt"
)

// AuthenticationError is returned when AWS credentials could not be resolved
// or were rejected. Err holds the SDK error, if any.
type AuthenticationError struct {
	Op      string
	Profile string
	Err     error
}

func (e *AuthenticationError) Error() string {
	msg := "authentication failed: " + e.Op
	if e.Profile != "" {
		msg += fmt.Sprintf(" (profile %q)", e.Profile)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// PackageNotFoundError is returned when neither the function nor the service
// declares a deployment artifact.
type PackageNotFoundError struct {
	Function string
}

func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf("no package artifact configured for function %q or for the service", e.Function)
}
