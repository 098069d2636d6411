package spatial

import (
	"errors"
	"fmt"
)

// ErrMalformedPolyline indicates an encoded polyline that cannot be decoded
var ErrMalformedPolyline = errors.New("malformed polyline")

// DecodePolyline decodes a Google encoded polyline string into an ordered
// sequence of points. Coordinates are encoded as zig-zag deltas in units
// of 1e-5 degrees, five bits per byte, offset by 63.
func DecodePolyline(encoded string) ([]Point, error) {
	var points []Point
	var lat, lon int64

	index := 0
	for index < len(encoded) {
		dlat, next, err := decodeDelta(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next

		dlon, next, err := decodeDelta(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next

		lat += dlat
		lon += dlon
		points = append(points, Point{
			Lat: float64(lat) * 1e-5,
			Lon: float64(lon) * 1e-5,
		})
	}

	return points, nil
}

// decodeDelta reads one varint-encoded signed delta starting at index
func decodeDelta(encoded string, index int) (int64, int, error) {
	var result int64
	var shift uint

	for {
		if index >= len(encoded) {
			return 0, 0, fmt.Errorf("%w: truncated at byte %d", ErrMalformedPolyline, index)
		}
		b := int64(encoded[index]) - 63
		if b < 0 {
			return 0, 0, fmt.Errorf("%w: invalid character at byte %d", ErrMalformedPolyline, index)
		}
		index++

		result |= (b & 0x1f) << shift
		shift += 5

		if b < 0x20 {
			break
		}
		if shift > 35 {
			return 0, 0, fmt.Errorf("%w: delta overflow at byte %d", ErrMalformedPolyline, index)
		}
	}

	if result&1 == 1 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}
