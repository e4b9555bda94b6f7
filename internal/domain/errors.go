package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnknownFormat is returned when an output format is not supported
	ErrUnknownFormat = errors.New("unknown format")
)

// NetworkNotFoundErr is returned when a network name is not in the record
type NetworkNotFoundErr struct {
	Name        string
	Suggestions []string
}

func (e NetworkNotFoundErr) Error() string {
	msg := fmt.Sprintf("network '%s' not found", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e NetworkNotFoundErr) Unwrap() error {
	return ErrNotFound
}
