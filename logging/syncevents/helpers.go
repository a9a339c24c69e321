// Package syncevents publishes structured events for the item and location
// sync loop.
package syncevents

import (
	"context"

	"tww-multiworld/world/logging"
)

const (
	// EventItemDelivered is emitted when an item lands in the in-game
	// delivery array.
	EventItemDelivered logging.EventType = "sync.item_delivered"
	// EventChecksSent is emitted when newly-checked locations go out.
	EventChecksSent logging.EventType = "sync.checks_sent"
	// EventGoalReported is emitted once, when the goal completes.
	EventGoalReported logging.EventType = "sync.goal_reported"
	// EventDeathSent is emitted when the local death is shared.
	EventDeathSent logging.EventType = "sync.death_sent"
	// EventDeathReceived is emitted when a remote death kills the player.
	EventDeathReceived logging.EventType = "sync.death_received"
)

// ItemPayload describes one delivered item.
type ItemPayload struct {
	Item   string `json:"item"`
	Index  int    `json:"index"`
	Sender int    `json:"sender,omitempty"`
}

// ChecksPayload lists the location ids sent to the server.
type ChecksPayload struct {
	Locations []int64 `json:"locations"`
}

// DeathPayload carries death-link metadata.
type DeathPayload struct {
	Source string `json:"source,omitempty"`
	Cause  string `json:"cause,omitempty"`
}

// ItemDelivered publishes a debug event per delivered item.
func ItemDelivered(ctx context.Context, pub logging.Publisher, slot int, payload ItemPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventItemDelivered,
		Severity: logging.SeverityDebug,
		Category: logging.CategorySync,
		Slot:     slot,
		Payload:  payload,
	})
}

// ChecksSent publishes an info event when checks go out.
func ChecksSent(ctx context.Context, pub logging.Publisher, slot int, payload ChecksPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventChecksSent,
		Severity: logging.SeverityInfo,
		Category: logging.CategorySync,
		Slot:     slot,
		Payload:  payload,
	})
}

// GoalReported publishes an info event when the goal completes.
func GoalReported(ctx context.Context, pub logging.Publisher, slot int) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventGoalReported,
		Severity: logging.SeverityInfo,
		Category: logging.CategorySync,
		Slot:     slot,
	})
}

// DeathSent publishes an info event when the local death is broadcast.
func DeathSent(ctx context.Context, pub logging.Publisher, slot int, payload DeathPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDeathSent,
		Severity: logging.SeverityInfo,
		Category: logging.CategorySync,
		Slot:     slot,
		Payload:  payload,
	})
}

// DeathReceived publishes an info event when a remote death is applied.
func DeathReceived(ctx context.Context, pub logging.Publisher, slot int, payload DeathPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDeathReceived,
		Severity: logging.SeverityInfo,
		Category: logging.CategorySync,
		Slot:     slot,
		Payload:  payload,
	})
}
