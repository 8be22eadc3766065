// Copyright 2025 The CarPullers Authors
//
// SPDX-License-Identifier: Apache-2.0
package spatial

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/uber/h3-go/v4"
)

const (
	earthRadius = 6371008.8 // mean Earth radius, meters

	// GeometryPoint is the GeoJSON type name of a single position.
	GeometryPoint = "Point"

	// MaxResolution is the finest H3 resolution.
	MaxResolution = 15
)

// ErrInvalidPosition is returned when coordinates can not be read as [lng, lat].
var ErrInvalidPosition = errors.New("spatial: invalid position")

// Point represents a geographical point with latitude and longitude.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("POINT(%f %f)", p.Lng, p.Lat)
}

// HaversineDistance calculates the distance between two points on Earth in meters.
func (p *Point) HaversineDistance(other *Point) float64 {
	lat1 := p.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - p.Lat) * math.Pi / 180
	dLng := (other.Lng - p.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// Cell returns the H3 cell containing the point at the given resolution.
func (p Point) Cell(res int) (h3.Cell, error) {
	if res < 0 || res > MaxResolution {
		return 0, fmt.Errorf("spatial: h3 resolution %d out of range [0, %d]", res, MaxResolution)
	}

	cell, err := h3.LatLngToCell(h3.NewLatLng(p.Lat, p.Lng), res)
	if err != nil {
		return 0, fmt.Errorf("error converting to h3 cell at res %d: %w", res, err)
	}

	return cell, nil
}

// ParsePoint reads a "lng,lat" pair, the GeoJSON axis order.
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: %q: expected lng,lat", ErrInvalidPosition, s)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: longitude %q: %w", ErrInvalidPosition, parts[0], err)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: latitude %q: %w", ErrInvalidPosition, parts[1], err)
	}

	return Point{Lat: lat, Lng: lng}, nil
}

// Geometry is a GeoJSON Point geometry. Coordinates hold the JSON text of the
// position exactly as it was read: no reprojection, rounding or arity check.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// NewPointGeometry wraps a raw position into a Point geometry.
func NewPointGeometry(coordinates json.RawMessage) Geometry {
	return Geometry{
		Type:        GeometryPoint,
		Coordinates: coordinates,
	}
}

// Point decodes the first two components of the position as longitude and
// latitude. Extra components, such as altitude, are ignored.
func (g Geometry) Point() (Point, error) {
	if len(g.Coordinates) == 0 || bytes.Equal(g.Coordinates, []byte("null")) {
		return Point{}, fmt.Errorf("%w: empty coordinates", ErrInvalidPosition)
	}

	var position []float64
	if err := json.Unmarshal(g.Coordinates, &position); err != nil {
		return Point{}, fmt.Errorf("%w: %s: %w", ErrInvalidPosition, g.Coordinates, err)
	}

	if len(position) < 2 {
		return Point{}, fmt.Errorf("%w: %s: expected at least 2 components", ErrInvalidPosition, g.Coordinates)
	}

	return Point{Lng: position[0], Lat: position[1]}, nil
}
