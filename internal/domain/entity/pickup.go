package entity

import (
	"time"

	"github.com/google/uuid"
)

// PickupStatus represents the lifecycle stage of a pickup.
type PickupStatus string

const (
	// PickupStatusScheduled is the initial status of every pickup.
	PickupStatusScheduled PickupStatus = "scheduled"
	// PickupStatusCompleted marks a fulfilled pickup. Terminal.
	PickupStatusCompleted PickupStatus = "completed"
	// PickupStatusCancelled marks an abandoned pickup. Terminal.
	PickupStatusCancelled PickupStatus = "cancelled"
)

// IsValid checks if the PickupStatus is a valid value.
func (s PickupStatus) IsValid() bool {
	switch s {
	case PickupStatusScheduled, PickupStatusCompleted, PickupStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed from this status.
func (s PickupStatus) IsTerminal() bool {
	return s == PickupStatusCompleted || s == PickupStatusCancelled
}

// PickupImpact is the recorded outcome of a completed pickup. Both fields are
// optional; missing impact data contributes zero to aggregate statistics.
type PickupImpact struct {
	PeopleHelped int     `json:"people_helped"`
	FoodSavedKg  float64 `json:"food_saved_kg"`
}

// Pickup is a reservation record linking one FoodItem, its Restaurant and the
// collecting Charity. The three references are immutable after creation;
// only status, rating and impact data change afterwards.
type Pickup struct {
	ID           uuid.UUID
	FoodItemID   uuid.UUID
	RestaurantID uuid.UUID
	CharityID    uuid.UUID
	Status       PickupStatus
	PickupTime   time.Time
	Rating       *float64      // Set by the charity after completion. Nil until rated.
	Impact       *PickupImpact // Recorded impact metrics. Nil when never reported.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// pickupTransition defines a valid status change and the role allowed to
// perform it.
type pickupTransition struct {
	From  PickupStatus
	To    PickupStatus
	Actor Role
}

// pickupTransitions is the authoritative state machine definition.
// Status moves monotonically forward; cancellation is the only branch.
var pickupTransitions = []pickupTransition{
	// The restaurant hands the food over and closes the pickup.
	{From: PickupStatusScheduled, To: PickupStatusCompleted, Actor: RoleRestaurant},
	// Either side can call a scheduled pickup off.
	{From: PickupStatusScheduled, To: PickupStatusCancelled, Actor: RoleRestaurant},
	{From: PickupStatusScheduled, To: PickupStatusCancelled, Actor: RoleCharity},
}

type pickupTransitionKey struct {
	From  PickupStatus
	To    PickupStatus
	Actor Role
}

var pickupTransitionSet = func() map[pickupTransitionKey]struct{} {
	set := make(map[pickupTransitionKey]struct{}, len(pickupTransitions))
	for _, t := range pickupTransitions {
		set[pickupTransitionKey{t.From, t.To, t.Actor}] = struct{}{}
	}

	return set
}()

// CanTransition reports whether the given actor role may move a pickup from
// one status to another.
func CanTransition(from, to PickupStatus, actor Role) bool {
	_, ok := pickupTransitionSet[pickupTransitionKey{From: from, To: to, Actor: actor}]

	return ok
}

// TransitionAllowedForAnyActor reports whether the status change itself is
// part of the state machine, regardless of who attempts it. It lets callers
// distinguish "impossible transition" from "wrong actor".
func TransitionAllowedForAnyActor(from, to PickupStatus) bool {
	for _, t := range pickupTransitions {
		if t.From == from && t.To == to {
			return true
		}
	}

	return false
}

// NextStatuses returns all statuses reachable from the given one, for error
// messages and documentation.
func NextStatuses(from PickupStatus) []PickupStatus {
	var next []PickupStatus
	seen := make(map[PickupStatus]bool)
	for _, t := range pickupTransitions {
		if t.From == from && !seen[t.To] {
			next = append(next, t.To)
			seen[t.To] = true
		}
	}

	return next
}
