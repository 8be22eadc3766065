// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package pullers

import (
	"encoding/json"
	"fmt"

	"github.com/jcodagnone/carpullers/spatial"
)

const (
	fieldData        = "data"
	fieldOrigin      = "origin"
	fieldDestination = "destination"
)

// Record is one car puller entry of the input data array. Origin and
// Destination keep the JSON text of the coordinates untouched.
type Record struct {
	Origin      json.RawMessage
	Destination json.RawMessage
}

// Trip is the GeoJSON rendition of a Record.
type Trip struct {
	Origin      spatial.Geometry `json:"origin"`
	Destination spatial.Geometry `json:"destination"`
}

// NewRecord builds a Record from the keys of a decoded JSON object. It fails
// with a schema error when origin or destination is absent. A present null is
// accepted and passed through.
func NewRecord(fields map[string]json.RawMessage) (Record, error) {
	return newRecord(-1, fields)
}

func newRecord(index int, fields map[string]json.RawMessage) (Record, error) {
	origin, ok := fields[fieldOrigin]
	if !ok {
		return Record{}, newSchemaError(index, fieldOrigin, fmt.Sprintf("missing key %q", fieldOrigin))
	}

	destination, ok := fields[fieldDestination]
	if !ok {
		return Record{}, newSchemaError(index, fieldDestination, fmt.Sprintf("missing key %q", fieldDestination))
	}

	return Record{
		Origin:      origin,
		Destination: destination,
	}, nil
}

// Trip maps the record to its pair of Point geometries.
func (r Record) Trip() Trip {
	return Trip{
		Origin:      spatial.NewPointGeometry(r.Origin),
		Destination: spatial.NewPointGeometry(r.Destination),
	}
}

// TransformRecord converts a decoded input object into a Trip.
func TransformRecord(fields map[string]json.RawMessage) (Trip, error) {
	record, err := NewRecord(fields)
	if err != nil {
		return Trip{}, err
	}

	return record.Trip(), nil
}

func decodeTrip(index int, raw json.RawMessage) (Trip, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		convErr := newSchemaError(index, "", "record is not an object")
		convErr.Err = err

		return Trip{}, convErr
	}

	record, err := newRecord(index, fields)
	if err != nil {
		return Trip{}, err
	}

	return record.Trip(), nil
}
