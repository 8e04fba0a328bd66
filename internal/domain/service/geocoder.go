// Package service declares the interfaces for external collaborators
// consumed by the use case layer.
package service

import "context"

// Coordinate is a geographic point in WGS84.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves a free-form address into coordinates. Implementations
// call an external geocoding provider; failures are treated as bounded,
// recoverable dependency errors by callers.
type Geocoder interface {
	// AddressToCoordinate resolves the address to a coordinate.
	AddressToCoordinate(ctx context.Context, address string) (Coordinate, error)
}
