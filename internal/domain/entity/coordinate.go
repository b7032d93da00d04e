// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"math"

	"mazza/internal/errors"
)

// ErrInvalidCoordinate is returned when a latitude/longitude pair is NaN or
// outside its valid range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is an immutable latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate builds a validated Coordinate.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	c := Coordinate{Latitude: lat, Longitude: lon}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// Validate checks that both components are finite and within range:
// latitude in [-90, 90], longitude in [-180, 180].
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return errors.WithMessage(ErrInvalidCoordinate, "coordinate component is NaN")
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return errors.WithMessagef(ErrInvalidCoordinate, "latitude %f out of range", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return errors.WithMessagef(ErrInvalidCoordinate, "longitude %f out of range", c.Longitude)
	}

	return nil
}
