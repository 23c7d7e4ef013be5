package client

import "fmt"

// ConstructionError is returned by New when the transport is missing or
// incomplete.
type ConstructionError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return "client: cannot construct: " + e.Reason
}

// InvocationError wraps any failure of a single operation. The cause, such
// as a *soap.Fault or *transport.HTTPError, is available through errors.As.
type InvocationError struct {
	// Operation is the SOAP operation that failed.
	Operation string

	// RequestID correlates the error with the call's log lines.
	RequestID string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *InvocationError) Error() string {
	if e.RequestID == "" {
		return fmt.Sprintf("client: %s failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("client: %s failed (request %s): %v", e.Operation, e.RequestID, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InvocationError) Unwrap() error {
	return e.Err
}
