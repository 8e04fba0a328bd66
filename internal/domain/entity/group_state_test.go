package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupState_Terminal(t *testing.T) {
	assert.False(t, StateRecruiting.Terminal())
	assert.False(t, StateThresholdMet.Terminal())
	assert.False(t, StatePreparing.Terminal())
	assert.False(t, StateShipping.Terminal())
	assert.False(t, StateShipmentPending.Terminal())

	assert.True(t, StateShipped.Terminal())
	assert.True(t, StateExpired.Terminal())
	assert.True(t, StatePaymentFailed.Terminal())
	assert.True(t, StateManagerLeft.Terminal())
	assert.True(t, StateDeleted.Terminal())
}

func TestGroupState_Valid(t *testing.T) {
	assert.True(t, StateRecruiting.Valid())
	assert.True(t, StateShipmentPending.Valid())
	assert.False(t, GroupState(2).Valid())
	assert.False(t, GroupState(-2).Valid())
	assert.False(t, GroupState(99).Valid())
}

func TestGroupState_CanTransition_AdminTable(t *testing.T) {
	cases := []struct {
		from    GroupState
		to      GroupState
		allowed bool
	}{
		{StateThresholdMet, StatePreparing, true},
		{StateThresholdMet, StatePaymentFailed, true},
		{StatePreparing, StateShipping, true},
		{StatePreparing, StateShipmentPending, true},
		{StateShipmentPending, StateShipping, true},
		{StateShipping, StateShipped, true},

		{StateRecruiting, StatePreparing, false},
		{StateRecruiting, StateShipped, false},
		{StateThresholdMet, StateShipping, false},
		{StateShipping, StatePreparing, false},
		{StateShipped, StateShipping, false},
		{StateExpired, StatePreparing, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(TriggerAdminSet, tc.to),
			"admin transition %d -> %d", tc.from, tc.to)
	}
}

func TestGroupState_CanTransition_LifecycleTriggers(t *testing.T) {
	assert.True(t, StateRecruiting.CanTransition(TriggerCapacityReached, StateThresholdMet))
	assert.False(t, StateThresholdMet.CanTransition(TriggerCapacityReached, StateThresholdMet))

	assert.True(t, StateRecruiting.CanTransition(TriggerDeadline, StateExpired))
	assert.False(t, StateThresholdMet.CanTransition(TriggerDeadline, StateExpired))

	// Manager withdrawal and seller deletion cut through any live state.
	assert.True(t, StateRecruiting.CanTransition(TriggerManagerLeft, StateManagerLeft))
	assert.True(t, StateShipping.CanTransition(TriggerManagerLeft, StateManagerLeft))
	assert.False(t, StateShipped.CanTransition(TriggerManagerLeft, StateManagerLeft))

	assert.True(t, StatePreparing.CanTransition(TriggerSellerDeleted, StateDeleted))
	assert.False(t, StateExpired.CanTransition(TriggerSellerDeleted, StateDeleted))
}

func TestGroupState_Message(t *testing.T) {
	msg, ok := StateThresholdMet.Message()
	require.True(t, ok)
	assert.NotEmpty(t, msg)

	// Recruiting is entered silently, never announced.
	_, ok = StateRecruiting.Message()
	assert.False(t, ok)
}

func TestGroup_FindParticipant(t *testing.T) {
	userID := uuid.New()
	group := &Group{
		Participants: []*Participant{
			{UserID: uuid.New(), Quantity: 1},
			{UserID: userID, Quantity: 2},
		},
	}

	found := group.FindParticipant(userID)
	require.NotNil(t, found)
	assert.Equal(t, 2, found.Quantity)

	assert.Nil(t, group.FindParticipant(uuid.New()))
}

func TestGroup_CommittedQuantity(t *testing.T) {
	group := &Group{
		Participants: []*Participant{
			{Quantity: 3},
			{Quantity: 2},
			{Quantity: 1},
		},
	}

	assert.Equal(t, 6, group.CommittedQuantity())
}
