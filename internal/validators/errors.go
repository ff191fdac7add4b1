// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidInput    = errors.New("invalid input")
)

// FieldError describes one rejected field by its JSON name.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldsError collects every rejected field of one value. It unwraps to
// ErrInvalidInput.
type FieldsError struct {
	Fields []FieldError
}

func (e *FieldsError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return strings.Join(parts, "; ")
}

func (e *FieldsError) Unwrap() error {
	return ErrInvalidInput
}
