package proto

import (
	"encoding/json"
	"testing"
)

func TestEncodeConnectFillsDefaults(t *testing.T) {
	encoded, err := EncodeConnect(Connect{
		Name:          "Player1",
		ItemsHandling: ItemsHandlingAll,
		Tags:          []string{TagDeathLink},
	})
	if err != nil {
		t.Fatalf("encode connect: %v", err)
	}

	var frames []map[string]any
	if err := json.Unmarshal(encoded, &frames); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("expected a single command, got %d", len(frames))
	}
	frame := frames[0]
	if frame["cmd"] != CmdConnect {
		t.Fatalf("expected cmd %q, got %v", CmdConnect, frame["cmd"])
	}
	if frame["game"] != GameName {
		t.Fatalf("expected game %q, got %v", GameName, frame["game"])
	}
	version, ok := frame["version"].(map[string]any)
	if !ok {
		t.Fatalf("expected version object, got %T", frame["version"])
	}
	if version["class"] != "Version" {
		t.Fatalf("expected version class tag, got %v", version["class"])
	}
	if handling, _ := frame["items_handling"].(float64); int(handling) != ItemsHandlingAll {
		t.Fatalf("expected items_handling %d, got %v", ItemsHandlingAll, frame["items_handling"])
	}
}

func TestEncodeLocationChecks(t *testing.T) {
	encoded, err := EncodeLocationChecks([]int64{2322432, 2322440})
	if err != nil {
		t.Fatalf("encode location checks: %v", err)
	}

	var frames []LocationChecks
	if err := json.Unmarshal(encoded, &frames); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if len(frames) != 1 || frames[0].Cmd != CmdLocationChecks {
		t.Fatalf("unexpected envelope: %+v", frames)
	}
	if len(frames[0].Locations) != 2 || frames[0].Locations[0] != 2322432 {
		t.Fatalf("unexpected locations: %v", frames[0].Locations)
	}
}

func TestEncodeStatusUpdateGoal(t *testing.T) {
	encoded, err := EncodeStatusUpdate(StatusGoal)
	if err != nil {
		t.Fatalf("encode status update: %v", err)
	}

	var frames []map[string]any
	if err := json.Unmarshal(encoded, &frames); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if status, _ := frames[0]["status"].(float64); int(status) != 30 {
		t.Fatalf("expected goal status 30, got %v", frames[0]["status"])
	}
}

func TestEncodeDeathLinkCarriesTag(t *testing.T) {
	encoded, err := EncodeDeathLink(DeathLinkData{
		Time:   1700000000.5,
		Source: "Player1",
		Cause:  "Player1 ran out of hearts.",
	})
	if err != nil {
		t.Fatalf("encode death link: %v", err)
	}

	var frames []Bounce
	if err := json.Unmarshal(encoded, &frames); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if frames[0].Cmd != CmdBounce {
		t.Fatalf("expected cmd %q, got %q", CmdBounce, frames[0].Cmd)
	}
	if len(frames[0].Tags) != 1 || frames[0].Tags[0] != TagDeathLink {
		t.Fatalf("expected death-link tag, got %v", frames[0].Tags)
	}
	if frames[0].Data.Source != "Player1" {
		t.Fatalf("unexpected source: %q", frames[0].Data.Source)
	}
}

func TestDecodeEnvelopeSplitsCommands(t *testing.T) {
	payload := []byte(`[
		{"cmd":"RoomInfo","seed_name":"seed123","games":["The Wind Waker"]},
		{"cmd":"ReceivedItems","index":2,"items":[{"item":2322499,"location":2322450,"player":1,"flags":1}]}
	]`)

	frames, err := DecodeEnvelope(payload)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}

	if frames[0].Cmd != CmdRoomInfo {
		t.Fatalf("expected first frame %q, got %q", CmdRoomInfo, frames[0].Cmd)
	}
	room, err := DecodeRoomInfo(frames[0].Raw)
	if err != nil {
		t.Fatalf("decode room info: %v", err)
	}
	if room.SeedName != "seed123" {
		t.Fatalf("unexpected seed name %q", room.SeedName)
	}

	if frames[1].Cmd != CmdReceivedItems {
		t.Fatalf("expected second frame %q, got %q", CmdReceivedItems, frames[1].Cmd)
	}
	received, err := DecodeReceivedItems(frames[1].Raw)
	if err != nil {
		t.Fatalf("decode received items: %v", err)
	}
	if received.Index != 2 {
		t.Fatalf("expected index 2, got %d", received.Index)
	}
	if len(received.Items) != 1 || received.Items[0].Item != 2322499 {
		t.Fatalf("unexpected items: %+v", received.Items)
	}
	if received.Items[0].Flags&FlagProgression == 0 {
		t.Fatal("expected progression flag on received item")
	}
}

func TestDecodeEnvelopeRejectsMissingCmd(t *testing.T) {
	if _, err := DecodeEnvelope([]byte(`[{"index":1}]`)); err == nil {
		t.Fatal("expected error for untagged command")
	}
	if _, err := DecodeEnvelope([]byte(`{"cmd":"RoomInfo"}`)); err == nil {
		t.Fatal("expected error for non-array payload")
	}
}

func TestDecodeConnectedSlotData(t *testing.T) {
	raw := json.RawMessage(`{
		"cmd":"Connected","team":0,"slot":3,
		"players":[{"team":0,"slot":3,"alias":"Link","name":"Player3"}],
		"missing_locations":[2322432],
		"checked_locations":[2322433,2322434],
		"slot_data":{"death_link":1}
	}`)

	msg, err := DecodeConnected(raw)
	if err != nil {
		t.Fatalf("decode connected: %v", err)
	}
	if msg.Slot != 3 {
		t.Fatalf("expected slot 3, got %d", msg.Slot)
	}
	if msg.SlotData.DeathLink != 1 {
		t.Fatal("expected death link enabled in slot data")
	}
	if len(msg.CheckedLocations) != 2 {
		t.Fatalf("expected 2 checked locations, got %d", len(msg.CheckedLocations))
	}
	if len(msg.Players) != 1 || msg.Players[0].Alias != "Link" {
		t.Fatalf("unexpected players: %+v", msg.Players)
	}
}

func TestBouncedIsDeathLink(t *testing.T) {
	withTag := Bounced{Tags: []string{"other", TagDeathLink}}
	if !withTag.IsDeathLink() {
		t.Fatal("expected death-link bounce to be recognized")
	}
	withoutTag := Bounced{Tags: []string{"other"}}
	if withoutTag.IsDeathLink() {
		t.Fatal("expected plain bounce to be ignored")
	}
}

func TestPrintJSONText(t *testing.T) {
	msg := PrintJSON{Data: []TextPart{
		{Text: "Player1 sent "},
		{Text: "Progressive Sword", Type: "item_name"},
		{Text: " to Player2"},
	}}
	if got := msg.Text(); got != "Player1 sent Progressive Sword to Player2" {
		t.Fatalf("unexpected flattened text: %q", got)
	}
}
