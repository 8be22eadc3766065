// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineDistance(t *testing.T) {
	sf := &Point{Lat: 37.7, Lng: -122.4}
	nyc := &Point{Lat: 40.7, Lng: -73.9}

	assert.InDelta(t, 0, sf.HaversineDistance(sf), 1e-9)
	assert.InDelta(t, 4_130_000, sf.HaversineDistance(nyc), 20_000)
	assert.InDelta(t, sf.HaversineDistance(nyc), nyc.HaversineDistance(sf), 1e-6)

	// One degree of latitude on the 6371008.8 m mean radius.
	equator := &Point{}
	north := &Point{Lat: 1}
	assert.InDelta(t, 111195.08, equator.HaversineDistance(north), 0.01)
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		input   string
		want    Point
		wantErr bool
	}{
		{"-122.4,37.7", Point{Lat: 37.7, Lng: -122.4}, false},
		{" 44.8006397 , 41.7094968 ", Point{Lat: 41.7094968, Lng: 44.8006397}, false},
		{"44.8", Point{}, true},
		{"a,b", Point{}, true},
		{"1,2,3", Point{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePoint(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidPosition)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGeometry(t *testing.T) {
	t.Run("keeps coordinates verbatim", func(t *testing.T) {
		g := NewPointGeometry(json.RawMessage(`[-122.4,37.7,12.5]`))

		out, err := json.Marshal(g)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"Point","coordinates":[-122.4,37.7,12.5]}`, string(out))
	})

	t.Run("decodes lng lat", func(t *testing.T) {
		p, err := NewPointGeometry(json.RawMessage(`[-73.9, 40.7, 3]`)).Point()
		require.NoError(t, err)
		assert.Equal(t, Point{Lat: 40.7, Lng: -73.9}, p)
	})

	invalid := []string{``, `null`, `[1]`, `"x"`, `{"lat":1,"lng":2}`}
	for _, raw := range invalid {
		t.Run("invalid "+raw, func(t *testing.T) {
			_, err := NewPointGeometry(json.RawMessage(raw)).Point()
			require.ErrorIs(t, err, ErrInvalidPosition)
		})
	}
}

func TestCell(t *testing.T) {
	p := Point{Lat: 41.7094968, Lng: 44.8006397}

	cell, err := p.Cell(8)
	require.NoError(t, err)
	assert.Equal(t, 8, cell.Resolution())

	coarse, err := p.Cell(5)
	require.NoError(t, err)
	assert.Equal(t, 5, coarse.Resolution())
	assert.NotEqual(t, cell, coarse)
	assert.True(t, cell.IsValid())

	_, err = p.Cell(MaxResolution + 1)
	require.Error(t, err)
}
