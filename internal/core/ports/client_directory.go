package ports

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for classifying client-directory failures with errors.Is.
var (
	// ErrClientNotFound marks a tax-id the directory does not know.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientDirectoryUnavailable marks transport-level failures talking
	// to the directory. Never folded into "not found".
	ErrClientDirectoryUnavailable = errors.New("Error communicating with Client API")
)

// ClientRecord is the directory's view of a customer. Read only for the core.
type ClientRecord struct {
	TaxID string
	Name  string
	Email string
}

// ClientNotFoundError reports a tax-id that the client directory could not
// resolve. Distinct from order validation errors so callers can map it to a
// different outward signal.
type ClientNotFoundError struct {
	TaxID string
}

// NewClientNotFoundError creates a ClientNotFoundError for the given tax-id.
func NewClientNotFoundError(taxID string) *ClientNotFoundError {
	return &ClientNotFoundError{TaxID: taxID}
}

func (e *ClientNotFoundError) Error() string {
	return fmt.Sprintf("Client with CPF %s not found.", e.TaxID)
}

func (e *ClientNotFoundError) Unwrap() error {
	return ErrClientNotFound
}

// ClientDirectoryError reports a communication failure with the directory.
type ClientDirectoryError struct {
	Cause error
}

// NewClientDirectoryError creates a ClientDirectoryError wrapping a cause.
func NewClientDirectoryError(cause error) *ClientDirectoryError {
	return &ClientDirectoryError{Cause: cause}
}

func (e *ClientDirectoryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", ErrClientDirectoryUnavailable, e.Cause)
	}
	return ErrClientDirectoryUnavailable.Error()
}

func (e *ClientDirectoryError) Unwrap() error {
	return ErrClientDirectoryUnavailable
}

// ClientDirectory resolves customer tax-ids against the external client
// service. Implementations return a ClientNotFoundError for unknown ids and
// a ClientDirectoryError for any transport failure.
type ClientDirectory interface {
	GetClientByTaxID(ctx context.Context, taxID string) (*ClientRecord, error)
}
