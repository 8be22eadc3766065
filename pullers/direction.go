// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package pullers

import (
	"errors"
	"iter"
	"math"

	"github.com/jcodagnone/carpullers/spatial"
)

// Route is the trip of a driver looking for car pullers.
type Route struct {
	Origin      spatial.Point
	Destination spatial.Point
}

// SameDirection reports whether the puller travels the way of the driver:
// its destination is at least as close to the driver destination as its
// origin is, or its origin is at least as close to the driver origin as its
// destination is. Distances are compared in whole kilometers.
func (r *Route) SameDirection(trip Trip) (bool, error) {
	origin, err := trip.Origin.Point()
	if err != nil {
		convErr := newSchemaError(-1, fieldOrigin, "unreadable origin")
		convErr.Err = err

		return false, convErr
	}

	destination, err := trip.Destination.Point()
	if err != nil {
		convErr := newSchemaError(-1, fieldDestination, "unreadable destination")
		convErr.Err = err

		return false, convErr
	}

	destToDest := km(&destination, &r.Destination)
	origToDest := km(&origin, &r.Destination)
	origToOrig := km(&origin, &r.Origin)
	destToOrig := km(&destination, &r.Origin)

	return destToDest <= origToDest || origToOrig <= destToOrig, nil
}

// Filter keeps the trips of seq that follow the route. Errors from seq are
// passed through and end the sequence, as does a trip whose coordinates can
// not be read.
func (r *Route) Filter(seq iter.Seq2[Trip, error]) iter.Seq2[Trip, error] {
	return func(yield func(Trip, error) bool) {
		i := 0

		for trip, err := range seq {
			if err != nil {
				yield(Trip{}, err)

				return
			}

			ok, err := r.SameDirection(trip)
			if err != nil {
				var convErr *ConversionError
				if errors.As(err, &convErr) {
					convErr.Index = i
				}

				yield(Trip{}, err)

				return
			}

			i++

			if ok && !yield(trip, nil) {
				return
			}
		}
	}
}

func km(a, b *spatial.Point) float64 {
	return math.Round(a.HaversineDistance(b) / 1000)
}
