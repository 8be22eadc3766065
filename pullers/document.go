// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package pullers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Document is a parsed input file. Records are decoded lazily by Trips.
type Document struct {
	name    string
	records []json.RawMessage
}

// LoadFile reads and parses the document at path. The file is closed before
// returning on every path.
func LoadFile(path string) (doc *Document, err error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConversionError{
				Type:    ErrorTypeNotFound,
				Message: "opening input",
				Index:   -1,
				Err:     err,
			}
		}

		return nil, &ConversionError{
			Type:    ErrorTypeIO,
			Message: "opening input",
			Index:   -1,
			Err:     err,
		}
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing file: %w", cerr))
		}
	}()

	return Load(f, path)
}

// Load parses a whole document from r. Name is only used in error messages.
func Load(r io.Reader, name string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ConversionError{
			Type:    ErrorTypeIO,
			Message: "reading " + name,
			Index:   -1,
			Err:     err,
		}
	}

	if !utf8.Valid(data) {
		return nil, &ConversionError{
			Type:    ErrorTypeMalformed,
			Message: "parsing " + name + ": input is not valid UTF-8",
			Index:   -1,
		}
	}

	if !json.Valid(data) {
		var v any

		return nil, &ConversionError{
			Type:    ErrorTypeMalformed,
			Message: "parsing " + name,
			Index:   -1,
			Err:     json.Unmarshal(data, &v),
		}
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		convErr := newSchemaError(-1, "", "document is not an object")
		convErr.Err = err

		return nil, convErr
	}

	raw, ok := top[fieldData]
	if !ok {
		return nil, newSchemaError(-1, fieldData, fmt.Sprintf("missing key %q", fieldData))
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil || bytes.Equal(raw, []byte("null")) {
		convErr := newSchemaError(-1, fieldData, fmt.Sprintf("key %q is not an array", fieldData))
		convErr.Err = err

		return nil, convErr
	}

	return &Document{
		name:    name,
		records: records,
	}, nil
}

// Name returns the source the document was read from.
func (d *Document) Name() string {
	return d.name
}

// Len returns the number of entries in the data array.
func (d *Document) Len() int {
	return len(d.records)
}

// Trips yields the trips in input order. It stops after yielding the error of
// the first record that lacks a required key.
func (d *Document) Trips() iter.Seq2[Trip, error] {
	return func(yield func(Trip, error) bool) {
		for i, raw := range d.records {
			trip, err := decodeTrip(i, raw)
			if err != nil {
				yield(Trip{}, err)

				return
			}

			if !yield(trip, nil) {
				return
			}
		}
	}
}
