package geo

import (
	"errors"
	"fmt"
	"strconv"
)

// Position is a geographic coordinate pair reported by the client's
// platform location API. The browser keeps permission/timeout handling;
// the API validates what it is sent.
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

var (
	// ErrPositionUnavailable covers missing or unparsable coordinates.
	ErrPositionUnavailable = errors.New("position unavailable")
	// ErrPositionOutOfRange covers coordinates outside the valid range.
	ErrPositionOutOfRange = errors.New("position out of range")
)

// ParsePosition parses and validates lat/lon query parameters.
func ParsePosition(latStr, lonStr string) (Position, error) {
	if latStr == "" || lonStr == "" {
		return Position{}, fmt.Errorf("%w: lat and lon are required", ErrPositionUnavailable)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return Position{}, fmt.Errorf("%w: invalid lat %q", ErrPositionUnavailable, latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return Position{}, fmt.Errorf("%w: invalid lon %q", ErrPositionUnavailable, lonStr)
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Position{}, fmt.Errorf("%w: lat=%g lon=%g", ErrPositionOutOfRange, lat, lon)
	}

	return Position{Lat: lat, Lon: lon}, nil
}
