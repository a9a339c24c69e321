package connection

import (
	"context"

	"tww-multiworld/world/logging"
)

const (
	// EventServerConnected is emitted when the slot handshake succeeds.
	EventServerConnected logging.EventType = "connection.server_connected"
	// EventServerRefused is emitted when the server rejects the handshake.
	EventServerRefused logging.EventType = "connection.server_refused"
	// EventServerLost is emitted when the websocket drops.
	EventServerLost logging.EventType = "connection.server_lost"
	// EventEmulatorStatus is emitted on every emulator status transition.
	EventEmulatorStatus logging.EventType = "connection.emulator_status"
	// EventServerMessage is emitted for chat and event text from the server.
	EventServerMessage logging.EventType = "connection.server_message"
)

// ServerPayload captures connection details for server events.
type ServerPayload struct {
	URL    string   `json:"url,omitempty"`
	Slot   int      `json:"slot,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// EmulatorPayload captures the emulator status string.
type EmulatorPayload struct {
	Status string `json:"status"`
}

// ServerConnected publishes an info event after a successful handshake.
func ServerConnected(ctx context.Context, pub logging.Publisher, slot int, payload ServerPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventServerConnected,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryServer,
		Slot:     slot,
		Payload:  payload,
	})
}

// ServerRefused publishes an error event when the handshake is rejected.
func ServerRefused(ctx context.Context, pub logging.Publisher, payload ServerPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventServerRefused,
		Severity: logging.SeverityError,
		Category: logging.CategoryServer,
		Payload:  payload,
	})
}

// ServerLost publishes a warning event when the connection drops.
func ServerLost(ctx context.Context, pub logging.Publisher, slot int, payload ServerPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventServerLost,
		Severity: logging.SeverityWarn,
		Category: logging.CategoryServer,
		Slot:     slot,
		Payload:  payload,
	})
}

// MessagePayload carries flattened server text.
type MessagePayload struct {
	Text string `json:"text"`
}

// ServerMessage publishes server chat and event text.
func ServerMessage(ctx context.Context, pub logging.Publisher, slot int, text string) {
	if pub == nil || text == "" {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventServerMessage,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryServer,
		Slot:     slot,
		Payload:  MessagePayload{Text: text},
	})
}

// EmulatorStatus publishes the new emulator status.
func EmulatorStatus(ctx context.Context, pub logging.Publisher, severity logging.Severity, status string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventEmulatorStatus,
		Severity: severity,
		Category: logging.CategoryEmulator,
		Payload:  EmulatorPayload{Status: status},
	})
}
