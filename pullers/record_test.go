// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package pullers

import (
	"encoding/json"
	"testing"

	"github.com/jcodagnone/carpullers/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformRecord(t *testing.T) {
	t.Run("passes coordinates through", func(t *testing.T) {
		got, err := TransformRecord(map[string]json.RawMessage{
			"origin":      json.RawMessage(`[-122.4, 37.7]`),
			"destination": json.RawMessage(`[-73.9, 40.7, 12]`),
			"_id":         json.RawMessage(`"abc"`),
		})
		require.NoError(t, err)

		assert.Equal(t, Trip{
			Origin: spatial.Geometry{
				Type:        "Point",
				Coordinates: json.RawMessage(`[-122.4, 37.7]`),
			},
			Destination: spatial.Geometry{
				Type:        "Point",
				Coordinates: json.RawMessage(`[-73.9, 40.7, 12]`),
			},
		}, got)
	})

	t.Run("null is passed through", func(t *testing.T) {
		got, err := TransformRecord(map[string]json.RawMessage{
			"origin":      json.RawMessage(`null`),
			"destination": json.RawMessage(`[1, 2]`),
		})
		require.NoError(t, err)

		out, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"origin":{"type":"Point","coordinates":null},"destination":{"type":"Point","coordinates":[1,2]}}`,
			string(out))
	})

	missing := []struct {
		name   string
		fields map[string]json.RawMessage
		field  string
	}{
		{
			name:   "no origin",
			fields: map[string]json.RawMessage{"destination": json.RawMessage(`[1, 2]`)},
			field:  "origin",
		},
		{
			name:   "no destination",
			fields: map[string]json.RawMessage{"origin": json.RawMessage(`[1, 2]`)},
			field:  "destination",
		},
		{
			name:   "empty object",
			fields: map[string]json.RawMessage{},
			field:  "origin",
		},
	}

	for _, tt := range missing {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TransformRecord(tt.fields)

			var convErr *ConversionError
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, ErrorTypeSchema, convErr.Type)
			assert.Equal(t, tt.field, convErr.Field)
			assert.Equal(t, -1, convErr.Index)
		})
	}
}
