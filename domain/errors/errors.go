// Package errors defines the domain error taxonomy for the settlement service.
package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration is returned when required credentials or endpoints are missing
	ErrConfiguration = errors.New("not configured")

	// ErrNoCapacity is returned when the compute-pool order book has no matching order
	ErrNoCapacity = errors.New("no compute capacity available")

	// ErrNetwork is returned on RPC or transport failures talking to external systems
	ErrNetwork = errors.New("network error")

	// ErrTimeout is returned when a bounded wait elapses
	ErrTimeout = errors.New("operation timed out")

	// ErrTaskObservation is returned when the task-status stream reports a failure
	ErrTaskObservation = errors.New("task observation failed")

	// ErrResultFormat is returned when a completed task produced an unparseable result
	ErrResultFormat = errors.New("malformed task result")

	// ErrAlreadySettled is returned when the contract rejects a reused attestation
	ErrAlreadySettled = errors.New("attestation already settled")

	// ErrInsufficientTreasury is returned when the settlement contract balance is too low
	ErrInsufficientTreasury = errors.New("insufficient treasury balance")

	// ErrUnauthorizedExecutor is returned when the signer is not the configured executor
	ErrUnauthorizedExecutor = errors.New("unauthorized executor")

	// ErrExecution is returned for any other contract rejection or submission failure
	ErrExecution = errors.New("settlement execution failed")
)

// DomainError represents a domain-specific error with context
type DomainError struct {
	Type    error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return e.Type.Error()
}

// Is implements errors.Is interface
func (e *DomainError) Is(target error) bool {
	return errors.Is(e.Type, target)
}

// Unwrap implements errors.Unwrap interface
func (e *DomainError) Unwrap() error {
	return e.Type
}

// NewDomainError creates a new domain error
func NewDomainError(errType error, message string) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WithDetails adds details to the domain error
func (e *DomainError) WithDetails(key string, value interface{}) *DomainError {
	e.Details[key] = value
	return e
}

// ValidationError represents a validation error with field-specific errors
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d fields", len(e.Fields))
}

// Is lets callers match a ValidationError against ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return errors.Is(ErrInvalidInput, target)
}

// AddFieldError adds a field-specific error
func (e *ValidationError) AddFieldError(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors returns true if there are any field errors
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// BlockchainError represents a blockchain-specific error
type BlockchainError struct {
	Operation string
	ChainID   int64
	Err       error
}

// Error implements the error interface
func (e *BlockchainError) Error() string {
	return fmt.Sprintf("blockchain error during %s on chain %d: %v",
		e.Operation, e.ChainID, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *BlockchainError) Unwrap() error {
	return e.Err
}

// RepositoryError represents a repository-specific error
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s on %s: %v",
		e.Operation, e.Entity, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *RepositoryError) Unwrap() error {
	return e.Err
}
