// Package geo provides pure great-circle math for the discovery ranking.
// All functions are deterministic and safe for concurrent use.
package geo

import (
	"fmt"
	"math"

	"mazza/internal/domain/entity"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean sphere radius used for ranking distances.
const earthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between two coordinates in
// kilometers, rounded to two decimal places and clamped to >= 0.
// It fails when either coordinate is NaN or out of range.
func DistanceKm(a, b entity.Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	latA := toRadians(a.Latitude)
	latB := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon

	km := 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))

	rounded := math.Round(km*100) / 100
	if rounded < 0 {
		rounded = 0
	}

	return rounded, nil
}

// FormatDistance renders a distance as whole meters below one kilometer and
// as one-decimal kilometers otherwise.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}

	return fmt.Sprintf("%.1f km", km)
}

// SearchBound returns a bounding box of roughly radiusKm around center.
// Discovery uses it as a cheap prefilter before exact haversine ranking;
// the box is padded, never exact, so it must only ever be used to skip
// stores that are definitely too far away.
func SearchBound(center entity.Coordinate, radiusKm float64) orb.Bound {
	// 1 degree of latitude is ~111 km; longitude degrees shrink with
	// the cosine of the latitude.
	latDelta := radiusKm / 111.0
	lonScale := math.Cos(toRadians(center.Latitude))
	if lonScale < 0.01 {
		lonScale = 0.01 // near the poles every longitude is close
	}
	lonDelta := radiusKm / (111.0 * lonScale)

	return orb.Bound{
		Min: orb.Point{center.Longitude - lonDelta, center.Latitude - latDelta},
		Max: orb.Point{center.Longitude + lonDelta, center.Latitude + latDelta},
	}
}

// InBound reports whether the coordinate falls inside the bound.
func InBound(bound orb.Bound, c entity.Coordinate) bool {
	return bound.Contains(orb.Point{c.Longitude, c.Latitude})
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
