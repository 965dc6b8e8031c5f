package services

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every audit configuration error
	ErrConfiguration = errors.New("invalid audit configuration")

	// ErrPersistence is matched by every failure to store a change record
	ErrPersistence = errors.New("failed to persist change")
)

// ConfigurationError reports a log_changes setting of an unsupported shape
type ConfigurationError struct {
	Setting any
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: log_changes must be a bool or a policy function, got %T", ErrConfiguration, e.Setting)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// PersistenceError reports which write of a change log attempt failed.
// Stage is "insert" or "tombstone".
type PersistenceError struct {
	Stage string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrPersistence, e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}
