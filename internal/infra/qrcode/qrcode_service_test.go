package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	groupID := uuid.New()

	png, err := service.GenerateInviteQR(groupID)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestQRCodeService_ParseInviteQR_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	groupID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		GroupID: groupID.String(),
		Type:    inviteQRType,
	})
	require.NoError(t, err)

	parsed, err := service.ParseInviteQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, groupID, parsed)
}

func TestQRCodeService_ParseInviteQR_WrongType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{
		GroupID: uuid.New().String(),
		Type:    "merchant_subscription",
	})
	require.NoError(t, err)

	_, err = service.ParseInviteQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseInviteQR_Malformed(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseInviteQR("not json at all")
	assert.Error(t, err)

	_, err = service.ParseInviteQR(`{"group_id":"not-a-uuid","type":"group_invite"}`)
	assert.Error(t, err)
}

func TestNewQRCodeService_UnknownLevelDefaultsToMedium(t *testing.T) {
	service := NewQRCodeService(128, "X")
	png, err := service.GenerateInviteQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
