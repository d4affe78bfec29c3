// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates an unreadable run file.
	ErrNotFound = errors.New("config: run file not found")

	// ErrInvalidConfig indicates a run file that does not parse, validate or map.
	ErrInvalidConfig = errors.New("config: invalid run file")
)

// OpError carries the operation, file and offending field of a failure.
type OpError struct {
	Op    string
	Path  string
	Field string
	Kind  error // ErrNotFound or ErrInvalidConfig
	Err   error
}

func (e *OpError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is.
func (e *OpError) Unwrap() []error { return []error{e.Kind, e.Err} }

func invalidField(path, field string, err error) error {
	return &OpError{Op: "config.map_run", Path: path, Field: field, Kind: ErrInvalidConfig, Err: err}
}
