package entity

import "github.com/google/uuid"

// User carries the slice of account data the lifecycle engine needs: an
// identity and registered coordinates for the nearby-group query. Account
// management itself lives outside this service.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name      string    // Display name, used in alerts.
	Latitude  float64   // Registered latitude.
	Longitude float64   // Registered longitude.
	PushToken string    // FCM device token, empty when the user has no registered device.
}
