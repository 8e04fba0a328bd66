package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for group invite QR code generation
// and parsing.
type QRCodeService interface {
	// GenerateInviteQR generates a QR code encoding a join invite for the group.
	GenerateInviteQR(groupID uuid.UUID) ([]byte, error)

	// ParseInviteQR parses QR code data and returns the group ID.
	ParseInviteQR(qrData string) (uuid.UUID, error)
}
