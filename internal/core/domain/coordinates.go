package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coordinates is a geographic point whose members are both set or both nil.
type Coordinates struct {
	Latitude  *float64 `json:"latitude"  bson:"latitude"`
	Longitude *float64 `json:"longitude" bson:"longitude"`
}

// Complete reports whether both members are present.
func (c Coordinates) Complete() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// Empty reports whether both members are absent.
func (c Coordinates) Empty() bool {
	return c.Latitude == nil && c.Longitude == nil
}

// NewCoordinates builds a complete pair.
func NewCoordinates(lat, lng float64) Coordinates {
	return Coordinates{Latitude: &lat, Longitude: &lng}
}

// ParseCoordinatePair parses "lat,lng". Anything other than exactly two
// numeric parts separated by one comma yields nil; there is no partial result.
func ParseCoordinatePair(text string) *Coordinates {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return nil
	}
	lat, ok := parseFloat(parts[0])
	if !ok {
		return nil
	}
	lng, ok := parseFloat(parts[1])
	if !ok {
		return nil
	}
	c := NewCoordinates(lat, lng)
	return &c
}

// FormatCoordinatePair renders "lat,lng", or "" for an incomplete pair.
func FormatCoordinatePair(c Coordinates) string {
	if !c.Complete() {
		return ""
	}
	return formatFloat(*c.Latitude) + "," + formatFloat(*c.Longitude)
}

// ParseSingleCoordinate parses one independently edited latitude or longitude.
// Blank input is legitimately absent and yields (nil, nil); anything else that
// is not a number is an operator mistake and yields ErrInvalidCoordinates.
func ParseSingleCoordinate(text string) (*float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	v, ok := parseFloat(text)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidCoordinates, text)
	}
	return &v, nil
}

// parseFloat accepts finite decimal numbers only.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
