package logging_test

import (
	"context"
	"testing"
	"time"

	"tww-multiworld/world/logging"
	"tww-multiworld/world/logging/sinks"
)

func newTestRouter(t *testing.T, cfg logging.Config) (*logging.Router, *sinks.MemorySink) {
	t.Helper()
	memory := sinks.NewMemorySink()
	router, err := logging.NewRouter(nil, cfg, []logging.NamedSink{{Name: "memory", Sink: memory}})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return router, memory
}

func closeRouter(t *testing.T, router *logging.Router) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := router.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestRouterDeliversToSink(t *testing.T) {
	cfg := logging.DefaultConfig()
	router, memory := newTestRouter(t, cfg)

	router.Publish(context.Background(), logging.Event{
		Type:     "server.connected",
		Severity: logging.SeverityInfo,
		Category: logging.CategoryServer,
		Slot:     3,
	})
	closeRouter(t, router)

	events := memory.Events()
	if len(events) != 1 {
		t.Fatalf("sink saw %d events, want 1", len(events))
	}
	if events[0].Slot != 3 {
		t.Errorf("slot = %d, want 3", events[0].Slot)
	}
	if events[0].Time.IsZero() {
		t.Error("router must stamp a time on unstamped events")
	}
	if got := router.Stats().EventsTotal; got != 1 {
		t.Errorf("EventsTotal = %d, want 1", got)
	}
}

func TestRouterFiltersBelowMinimumSeverity(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.MinimumSeverity = logging.SeverityWarn
	router, memory := newTestRouter(t, cfg)

	router.Publish(context.Background(), logging.Event{Type: "sync.tick", Severity: logging.SeverityDebug})
	router.Publish(context.Background(), logging.Event{Type: "server.lost", Severity: logging.SeverityError})
	closeRouter(t, router)

	events := memory.Events()
	if len(events) != 1 {
		t.Fatalf("sink saw %d events, want 1", len(events))
	}
	if events[0].Type != "server.lost" {
		t.Errorf("kept event = %q, want server.lost", events[0].Type)
	}
}

func TestRouterIgnoresUntypedEvents(t *testing.T) {
	router, memory := newTestRouter(t, logging.DefaultConfig())

	router.Publish(context.Background(), logging.Event{Severity: logging.SeverityError})
	closeRouter(t, router)

	if got := len(memory.Events()); got != 0 {
		t.Fatalf("sink saw %d events, want 0", got)
	}
}

func TestRouterMergesConfiguredFields(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.Fields = map[string]any{"slot_name": "Link"}
	router, memory := newTestRouter(t, cfg)

	router.Publish(context.Background(), logging.Event{
		Type:  "sync.checks_sent",
		Extra: map[string]any{"count": 2},
	})
	closeRouter(t, router)

	events := memory.Events()
	if len(events) != 1 {
		t.Fatalf("sink saw %d events, want 1", len(events))
	}
	if got := events[0].Extra["slot_name"]; got != "Link" {
		t.Errorf("slot_name = %v, want Link", got)
	}
	if got := events[0].Extra["count"]; got != 2 {
		t.Errorf("count = %v, want 2 (event extras must survive the merge)", got)
	}
}

func TestWithFieldsDoesNotOverrideEventExtras(t *testing.T) {
	var captured logging.Event
	pub := logging.WithFields(logging.PublisherFunc(func(_ context.Context, e logging.Event) {
		captured = e
	}), map[string]any{"slot_name": "Link"})

	pub.Publish(context.Background(), logging.Event{
		Type:  "sync.item",
		Extra: map[string]any{"slot_name": "Zelda"},
	})

	if got := captured.Extra["slot_name"]; got != "Zelda" {
		t.Errorf("slot_name = %v, want the event's own value to win", got)
	}
}
