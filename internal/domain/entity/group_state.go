package entity

import "strconv"

// GroupState is the lifecycle state of a group buy. Negative values are
// failure states, positive values follow the fulfillment flow.
type GroupState int

const (
	// StateRecruiting means the group is open and capacity remains.
	StateRecruiting GroupState = 0
	// StateThresholdMet means the minimum purchase quantity has been reached.
	StateThresholdMet GroupState = 1
	// StatePreparing means payment completed and the seller is preparing shipment.
	StatePreparing GroupState = 3
	// StateShipping means shipment is in progress.
	StateShipping GroupState = 4
	// StateShipped means shipment completed. Terminal success.
	StateShipped GroupState = 5
	// StateExpired means the deadline passed while still recruiting. Terminal.
	StateExpired GroupState = -1
	// StatePaymentFailed means payment failed. Terminal.
	StatePaymentFailed GroupState = -3
	// StateShipmentPending means shipment is delayed. Re-enterable.
	StateShipmentPending GroupState = -4
	// StateManagerLeft means the manager withdrew, cancelling the group. Terminal.
	StateManagerLeft GroupState = -6
	// StateDeleted means the seller removed the product or deleted the group. Terminal.
	StateDeleted GroupState = -7
)

// Trigger identifies what drives a state transition.
type Trigger int

const (
	// TriggerCapacityReached fires when remainedPersonnel hits exactly zero.
	TriggerCapacityReached Trigger = iota
	// TriggerDeadline fires when the recruiting deadline passes.
	TriggerDeadline
	// TriggerManagerLeft fires when the manager participant withdraws.
	TriggerManagerLeft
	// TriggerSellerDeleted fires when the seller removes the product or group.
	TriggerSellerDeleted
	// TriggerAdminSet fires on an explicit seller/admin state update.
	TriggerAdminSet
)

// adminTransitions is the closed table of legal seller/admin driven
// transitions. Anything not listed here is rejected.
var adminTransitions = map[GroupState][]GroupState{
	StateThresholdMet:    {StatePreparing, StatePaymentFailed},
	StatePreparing:       {StateShipping, StateShipmentPending},
	StateShipmentPending: {StateShipping},
	StateShipping:        {StateShipped},
}

// Terminal reports whether the state rejects any further participant mutation.
func (s GroupState) Terminal() bool {
	switch s {
	case StateShipped, StateExpired, StatePaymentFailed, StateManagerLeft, StateDeleted:
		return true
	default:
		return false
	}
}

// Valid reports whether s is one of the defined state codes.
func (s GroupState) Valid() bool {
	switch s {
	case StateRecruiting, StateThresholdMet, StatePreparing, StateShipping, StateShipped,
		StateExpired, StatePaymentFailed, StateShipmentPending, StateManagerLeft, StateDeleted:
		return true
	default:
		return false
	}
}

// CanTransition reports whether moving from s to target is legal for the
// given trigger.
func (s GroupState) CanTransition(trigger Trigger, target GroupState) bool {
	switch trigger {
	case TriggerCapacityReached:
		return s == StateRecruiting && target == StateThresholdMet
	case TriggerDeadline:
		return s == StateRecruiting && target == StateExpired
	case TriggerManagerLeft:
		return !s.Terminal() && target == StateManagerLeft
	case TriggerSellerDeleted:
		return !s.Terminal() && target == StateDeleted
	case TriggerAdminSet:
		for _, allowed := range adminTransitions[s] {
			if allowed == target {
				return true
			}
		}

		return false
	default:
		return false
	}
}

// String returns the wire representation of the state code.
func (s GroupState) String() string {
	return strconv.Itoa(int(s))
}

// stateMessages holds the participant-facing alert text per state. States
// without an entry produce no alert.
var stateMessages = map[GroupState]string{
	StateThresholdMet:    "已達最低成團數量,等待付款完成",
	StatePreparing:       "付款完成,賣家正在準備出貨",
	StateShipping:        "商品已出貨",
	StateShipped:         "商品配送完成,感謝您的參與",
	StateExpired:         "招募期限已到,此共同購買已取消",
	StatePaymentFailed:   "付款失敗,此共同購買已取消",
	StateShipmentPending: "出貨延遲,請耐心等候",
	StateManagerLeft:     "團長已退出,此共同購買已取消",
	StateDeleted:         "賣家已移除商品,此共同購買已取消",
}

// Message returns the alert text broadcast to participants when the group
// enters s. The second return value is false for unmapped states.
func (s GroupState) Message() (string, bool) {
	msg, ok := stateMessages[s]

	return msg, ok
}
