// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package pullers

import (
	"errors"
	"fmt"
)

// ErrorType classifies conversion failures. Every type is fatal to a run.
type ErrorType int

const (
	// ErrorTypeUnknown unclassified failure.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeNotFound the input file does not exist.
	ErrorTypeNotFound
	// ErrorTypeIO the input could not be opened or read.
	ErrorTypeIO
	// ErrorTypeMalformed the input is not valid JSON.
	ErrorTypeMalformed
	// ErrorTypeSchema the document or one of its records lacks a required key.
	ErrorTypeSchema
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeNotFound:
		return "not found"
	case ErrorTypeIO:
		return "io"
	case ErrorTypeMalformed:
		return "malformed input"
	case ErrorTypeSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// ConversionError describes why a document could not be converted.
type ConversionError struct {
	Type    ErrorType
	Message string
	// Index of the offending record in the data array, -1 when the failure is
	// not tied to a record.
	Index int
	// Field is the missing or invalid key, if any.
	Field string
	Err   error
}

func (e *ConversionError) Error() string {
	msg := e.Message
	if e.Index >= 0 {
		msg = fmt.Sprintf("record %d: %s", e.Index, msg)
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func newSchemaError(index int, field, message string) *ConversionError {
	return &ConversionError{
		Type:    ErrorTypeSchema,
		Message: message,
		Index:   index,
		Field:   field,
	}
}

func errorType(err error) ErrorType {
	var convErr *ConversionError
	if errors.As(err, &convErr) {
		return convErr.Type
	}

	return ErrorTypeUnknown
}

// IsNotFoundError reports whether the input file was missing.
func IsNotFoundError(err error) bool {
	return errorType(err) == ErrorTypeNotFound
}

// IsMalformedError reports whether the input was not valid JSON.
func IsMalformedError(err error) bool {
	return errorType(err) == ErrorTypeMalformed
}

// IsSchemaError reports whether the input lacked a required key.
func IsSchemaError(err error) bool {
	return errorType(err) == ErrorTypeSchema
}
