package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tww-multiworld/world/internal/dolphin"
	"tww-multiworld/world/internal/items"
	"tww-multiworld/world/internal/locations"
	"tww-multiworld/world/internal/proto"
)

type fakeServer struct {
	mu       sync.Mutex
	connects []proto.Connect
	tags     [][]string
	checks   [][]int64
	statuses []proto.ClientStatus
	deaths   []string
	syncs    int
	sendErr  error
}

func (f *fakeServer) Connect(msg proto.Connect) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connects = append(f.connects, msg)
	return f.sendErr
}

func (f *fakeServer) UpdateTags(tags []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tags = append(f.tags, tags)
	return f.sendErr
}

func (f *fakeServer) ReportChecks(locations []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.checks = append(f.checks, locations)
	return nil
}

func (f *fakeServer) ReportStatus(status proto.ClientStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeServer) SendDeathLink(source, cause string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.deaths = append(f.deaths, cause)
	return nil
}

func (f *fakeServer) Sync() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.syncs++
	return nil
}

type fixture struct {
	session *Session
	server  *fakeServer
	hook    *dolphin.FakeHook
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	hook := dolphin.NewFakeHook()
	hook.Seed(dolphin.GameIDAddr, []byte(dolphin.GameID))
	// An in-save stage name, distinct from the title and name screens.
	hook.Seed(dolphin.CurrStageNameAddr, []byte{'s', 'e', 'a', 0, 0, 0, 0, 0})
	// An empty delivery array is all free slots.
	free := make([]byte, dolphin.GiveItemArrayLen)
	for i := range free {
		free[i] = dolphin.GiveItemFreeSlot
	}
	hook.Seed(dolphin.GiveItemArrayAddr, free)
	// Full hearts.
	hook.Seed(dolphin.CurrHealthAddr, []byte{0x00, 0x0C})

	f := &fixture{
		server: &fakeServer{},
		hook:   hook,
		now:    time.Unix(1700000000, 0),
	}
	f.session = NewSession(Config{
		SlotName: "Player1",
		Memory:   dolphin.NewMemory(hook),
		Clock:    func() time.Time { return f.now },
		Sleep:    func(time.Duration) {},
	})
	f.session.AttachServer(f.server)
	if !f.session.AttemptHook() {
		t.Fatalf("hook refused, status %q", f.session.Status())
	}
	return f
}

func (f *fixture) connect(t *testing.T, deathLink int) {
	t.Helper()
	f.session.HandleConnected(proto.Connected{
		Slot:     1,
		SlotData: proto.SlotData{DeathLink: deathLink},
	})
}

func itemNetworkID(t *testing.T, name string) int64 {
	t.Helper()
	return items.NetworkID(items.MustGet(name).Code)
}

func locationNetworkID(t *testing.T, name string) int64 {
	t.Helper()
	return locations.NetworkID(locations.MustGet(name).Code)
}

func TestHookRefusesWrongGame(t *testing.T) {
	hook := dolphin.NewFakeHook()
	hook.Seed(dolphin.GameIDAddr, []byte("GZLJ99"))
	session := NewSession(Config{Memory: dolphin.NewMemory(hook), Sleep: func(time.Duration) {}})

	if session.AttemptHook() {
		t.Fatal("wrong game id should refuse the hook")
	}
	if session.Status() != StatusRefusedGame {
		t.Fatalf("status %q, want refused game", session.Status())
	}
	if hook.IsHooked() {
		t.Fatal("refused hook should detach")
	}
}

func TestHookRefusesTitleScreen(t *testing.T) {
	hook := dolphin.NewFakeHook()
	hook.Seed(dolphin.GameIDAddr, []byte(dolphin.GameID))
	hook.Seed(dolphin.CurrStageNameAddr, []byte{'s', 'e', 'a', '_', 'T', 0, 0, 0})
	session := NewSession(Config{Memory: dolphin.NewMemory(hook), Sleep: func(time.Duration) {}})

	if session.AttemptHook() {
		t.Fatal("title screen should refuse the hook")
	}
	if session.Status() != StatusRefusedSave {
		t.Fatalf("status %q, want refused save", session.Status())
	}
}

func TestRoomInfoTriggersHandshake(t *testing.T) {
	f := newFixture(t)
	f.session.HandleRoomInfo(proto.RoomInfo{SeedName: "seed1"})

	if len(f.server.connects) != 1 {
		t.Fatalf("expected one handshake, got %d", len(f.server.connects))
	}
	msg := f.server.connects[0]
	if msg.Name != "Player1" {
		t.Fatalf("unexpected slot name %q", msg.Name)
	}
	if msg.ItemsHandling != proto.ItemsHandlingAll {
		t.Fatalf("unexpected items handling %#b", msg.ItemsHandling)
	}
	if !msg.SlotData {
		t.Fatal("handshake should request slot data")
	}
}

func TestConnectedEnablesDeathLinkTag(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 1)

	if len(f.server.tags) != 1 || len(f.server.tags[0]) != 1 || f.server.tags[0][0] != proto.TagDeathLink {
		t.Fatalf("expected a death-link tag update, got %v", f.server.tags)
	}

	g := newFixture(t)
	g.connect(t, 0)
	if len(g.server.tags) != 0 {
		t.Fatal("death link off should not update tags")
	}
}

func TestGiveItemsAdvancesExpectedIndex(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 0)

	sword := itemNetworkID(t, "Progressive Sword")
	bombs := itemNetworkID(t, "Bombs")
	f.session.HandleReceivedItems(proto.ReceivedItems{Index: 0, Items: []proto.NetworkItem{
		{Item: sword, Player: 2},
		{Item: bombs, Player: 3},
	}})

	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}

	if got := f.hook.Peek(dolphin.GiveItemArrayAddr); got != byte(items.MustGet("Progressive Sword").InGameID) {
		t.Fatalf("slot 0 holds %#x, want the sword id", got)
	}
	if got := f.hook.Peek(dolphin.GiveItemArrayAddr + 1); got != byte(items.MustGet("Bombs").InGameID) {
		t.Fatalf("slot 1 holds %#x, want the bombs id", got)
	}
	mem := dolphin.NewMemory(f.hook)
	expected, err := mem.ReadU16(dolphin.ExpectedIndexAddr)
	if err != nil {
		t.Fatalf("read expected index: %v", err)
	}
	if expected != 2 {
		t.Fatalf("expected index %d, want 2", expected)
	}
	if f.session.Telemetry().ItemsDelivered != 2 {
		t.Fatalf("delivered counter %d, want 2", f.session.Telemetry().ItemsDelivered)
	}
}

func TestGiveItemsSkipsAlreadyConsumedIndices(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 0)

	// The save file already consumed index 0.
	f.hook.Seed(dolphin.ExpectedIndexAddr, []byte{0x00, 0x01})

	sword := itemNetworkID(t, "Progressive Sword")
	bombs := itemNetworkID(t, "Bombs")
	f.session.HandleReceivedItems(proto.ReceivedItems{Index: 0, Items: []proto.NetworkItem{
		{Item: sword},
		{Item: bombs},
	}})

	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}

	if got := f.hook.Peek(dolphin.GiveItemArrayAddr); got != byte(items.MustGet("Bombs").InGameID) {
		t.Fatalf("slot 0 holds %#x, want only the second item", got)
	}
	if got := f.hook.Peek(dolphin.GiveItemArrayAddr + 1); got != dolphin.GiveItemFreeSlot {
		t.Fatalf("slot 1 holds %#x, want a free slot", got)
	}
}

func TestReceivedItemsIgnoresStaleResend(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 0)

	sword := itemNetworkID(t, "Progressive Sword")
	f.session.HandleReceivedItems(proto.ReceivedItems{Index: 0, Items: []proto.NetworkItem{{Item: sword}}})
	// A stale resend of an index the queue is already past must not append
	// duplicates; the save would receive the item twice.
	f.session.HandleReceivedItems(proto.ReceivedItems{Index: 0, Items: []proto.NetworkItem{{Item: sword}}})

	f.session.mu.Lock()
	pending := len(f.session.pending)
	index := -1
	if pending > 0 {
		index = f.session.pending[0].index
	}
	f.session.mu.Unlock()
	if pending != 1 {
		t.Fatalf("pending %d items, want 1", pending)
	}
	if index != 0 {
		t.Fatalf("pending index %d, want 0", index)
	}
}

func TestReceivedItemsGapRequestsFullResend(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 0)

	sword := itemNetworkID(t, "Progressive Sword")
	bombs := itemNetworkID(t, "Bombs")

	// A batch starting past the end of the queue has holes in it; it must
	// be dropped and a full resend requested instead.
	f.session.HandleReceivedItems(proto.ReceivedItems{Index: 3, Items: []proto.NetworkItem{{Item: sword}}})

	f.session.mu.Lock()
	pending := len(f.session.pending)
	f.session.mu.Unlock()
	if pending != 0 {
		t.Fatalf("gapped batch was queued: %d pending items", pending)
	}
	f.server.mu.Lock()
	syncs := f.server.syncs
	f.server.mu.Unlock()
	if syncs != 1 {
		t.Fatalf("expected one resend request, got %d", syncs)
	}

	// The full list then merges from the start.
	f.session.HandleReceivedItems(proto.ReceivedItems{Index: 0, Items: []proto.NetworkItem{
		{Item: sword}, {Item: bombs},
	}})
	f.session.mu.Lock()
	pending = len(f.session.pending)
	f.session.mu.Unlock()
	if pending != 2 {
		t.Fatalf("full resend queued %d items, want 2", pending)
	}
}

func TestCheckLocationsReportsCurrentStageFlags(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 0)

	// Outset Island is stage 0x2; Savage Labyrinth Floor 30 is chest bit 0.
	f.hook.Seed(dolphin.CurrStageIDAddr, []byte{0x02})
	f.hook.Seed(dolphin.ChestsBitfieldAddr, []byte{0, 0, 0, 0x01})
	// Event bit 0 at the event block base is Underneath Link's House.
	f.hook.Seed(0x803C4400, []byte{0x01})

	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}

	if len(f.server.checks) != 1 {
		t.Fatalf("expected one checks report, got %d", len(f.server.checks))
	}
	got := f.server.checks[0]
	want := map[int64]bool{
		locationNetworkID(t, "Outset Island - Savage Labyrinth - Floor 30"): true,
		locationNetworkID(t, "Outset Island - Underneath Link's House"):     true,
	}
	if len(got) != len(want) {
		t.Fatalf("reported %v", got)
	}
	for _, id := range got {
		if !want[id] {
			t.Fatalf("unexpected location id %d in %v", id, got)
		}
	}

	// The same flags must not be re-reported on the next tick.
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("second sync tick: %v", err)
	}
	if len(f.server.checks) != 1 {
		t.Fatalf("flags were re-reported: %v", f.server.checks)
	}
}

func TestCheckLocationsSkipsOtherStages(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 0)

	// Windfall is stage 0x3; the chest bit for Outset must be ignored there.
	f.hook.Seed(dolphin.CurrStageIDAddr, []byte{0x03})
	f.hook.Seed(dolphin.ChestsBitfieldAddr, []byte{0, 0, 0, 0x01})

	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	for _, batch := range f.server.checks {
		for _, id := range batch {
			if id == locationNetworkID(t, "Outset Island - Savage Labyrinth - Floor 30") {
				t.Fatal("chest flag from another stage was reported")
			}
		}
	}
}

func TestSunkenTreasureChartBits(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 0)

	// Star Island is island 2; its sunken treasure is chart bit 2, read
	// while sailing the Great Sea (stage 0x0).
	f.hook.Seed(dolphin.CurrStageIDAddr, []byte{0x00})
	charts := make([]byte, dolphin.ChartsBitfieldLen)
	charts[dolphin.ChartsBitfieldLen-1] = 0x04
	f.hook.Seed(dolphin.ChartsBitfieldAddr, charts)

	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}

	want := locationNetworkID(t, "Star Island - Sunken Treasure")
	found := false
	for _, batch := range f.server.checks {
		for _, id := range batch {
			if id == want {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("sunken treasure not reported: %v", f.server.checks)
	}
}

func TestMaggieDeliveryHeuristic(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 0)

	moblins := byte(items.MustGet("Moblin's Letter").InGameID)
	want := locationNetworkID(t, "Windfall Island - Maggie - Delivery Reward")

	reported := func() bool {
		for _, batch := range f.server.checks {
			for _, id := range batch {
				if id == want {
					return true
				}
			}
		}
		return false
	}

	// Letter never owned: not checked.
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	if reported() {
		t.Fatal("delivery reported before the letter was ever owned")
	}

	// A flag in the upper half of the word is some other letter; only bit 15
	// of the 32-bit owned word marks Moblin's Letter.
	f.hook.Seed(dolphin.LetterOwnedAddr, []byte{0x80, 0x00, 0x00, 0x00})
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	if reported() {
		t.Fatal("delivery reported off a neighboring owned flag")
	}

	// Letter owned but still in the delivery bag: not checked.
	f.hook.Seed(dolphin.LetterOwnedAddr, []byte{0x00, 0x00, 0x80, 0x00})
	f.hook.Seed(dolphin.LetterBaseAddr, []byte{moblins, 0, 0, 0, 0, 0, 0, 0})
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	if reported() {
		t.Fatal("delivery reported while the letter is still in the bag")
	}

	// Letter owned and gone from the bag: checked.
	f.hook.Seed(dolphin.LetterBaseAddr, make([]byte, dolphin.LetterBagLen))
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	if !reported() {
		t.Fatal("delivery not reported after the letter left the bag")
	}
}

func TestMailboxLettersNeedBothFlagBits(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 0)

	addr := locations.MustGet("Mailbox - Letter from Baito's Mother").Address
	want := locationNetworkID(t, "Mailbox - Letter from Baito's Mother")

	// Mail sent but unread: only one of the two bits.
	f.hook.Seed(addr, []byte{0x1})
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	for _, batch := range f.server.checks {
		for _, id := range batch {
			if id == want {
				t.Fatal("unread letter was reported")
			}
		}
	}

	f.hook.Seed(addr, []byte{0x3})
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	found := false
	for _, batch := range f.server.checks {
		for _, id := range batch {
			if id == want {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("read letter was not reported")
	}
}

func TestGoalReportedExactlyOnce(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 0)

	// Ganondorf's defeat is chest bit 1 on stage 0x12.
	f.hook.Seed(dolphin.CurrStageIDAddr, []byte{0x12})
	f.hook.Seed(dolphin.ChestsBitfieldAddr, []byte{0, 0, 0, 0x02})

	for i := 0; i < 3; i++ {
		if err := f.session.SyncTick(context.Background()); err != nil {
			t.Fatalf("sync tick %d: %v", i, err)
		}
	}

	if len(f.server.statuses) != 1 || f.server.statuses[0] != proto.StatusGoal {
		t.Fatalf("expected one goal report, got %v", f.server.statuses)
	}
	if !f.session.Finished() {
		t.Fatal("session should be finished")
	}
}

func TestDeathLinkSendsOnceWithCooldown(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 1)

	f.hook.Seed(dolphin.CurrHealthAddr, []byte{0x00, 0x00})
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	if len(f.server.deaths) != 1 {
		t.Fatalf("expected one death link, got %d", len(f.server.deaths))
	}
	if f.server.deaths[0] != "Player1 ran out of hearts." {
		t.Fatalf("unexpected cause %q", f.server.deaths[0])
	}

	// Still dead on the next tick: no duplicate.
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	if len(f.server.deaths) != 1 {
		t.Fatal("death link sent twice for one death")
	}

	// Revive, then die again after the cooldown.
	f.hook.Seed(dolphin.CurrHealthAddr, []byte{0x00, 0x0C})
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	f.now = f.now.Add(10 * time.Second)
	f.hook.Seed(dolphin.CurrHealthAddr, []byte{0x00, 0x00})
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	if len(f.server.deaths) != 2 {
		t.Fatalf("expected a second death link, got %d", len(f.server.deaths))
	}
}

func TestDeathHeldUntilServerReattaches(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 1)

	// Dying while the server is away must not consume the death.
	f.session.DetachServer()
	f.hook.Seed(dolphin.CurrHealthAddr, []byte{0x00, 0x00})
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}

	f.session.AttachServer(f.server)
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	if len(f.server.deaths) != 1 {
		t.Fatalf("expected the held death to go out on reattach, got %d", len(f.server.deaths))
	}
}

func TestDeathRetriedAfterFailedSend(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 1)

	f.server.sendErr = errors.New("write: broken pipe")
	f.hook.Seed(dolphin.CurrHealthAddr, []byte{0x00, 0x00})
	if err := f.session.SyncTick(context.Background()); err == nil {
		t.Fatal("failed broadcast should surface as a tick error")
	}

	f.server.sendErr = nil
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	if len(f.server.deaths) != 1 {
		t.Fatalf("expected the death to be retried, got %d", len(f.server.deaths))
	}
}

func TestRemoteDeathZeroesHealth(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 1)

	f.session.HandleBounced(proto.Bounced{
		Tags: []string{proto.TagDeathLink},
		Data: proto.DeathLinkData{Source: "Player2", Cause: "Player2 ran out of hearts."},
	})

	mem := dolphin.NewMemory(f.hook)
	health, err := mem.ReadU16(dolphin.CurrHealthAddr)
	if err != nil {
		t.Fatalf("read health: %v", err)
	}
	if health != 0 {
		t.Fatalf("health %d, want 0", health)
	}

	// The received death must not bounce straight back.
	if err := f.session.SyncTick(context.Background()); err != nil {
		t.Fatalf("sync tick: %v", err)
	}
	if len(f.server.deaths) != 0 {
		t.Fatalf("received death was re-broadcast: %v", f.server.deaths)
	}
}

func TestRemoteDeathIgnoredWhenDisabled(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 0)

	f.session.HandleBounced(proto.Bounced{
		Tags: []string{proto.TagDeathLink},
		Data: proto.DeathLinkData{Source: "Player2"},
	})

	mem := dolphin.NewMemory(f.hook)
	health, err := mem.ReadU16(dolphin.CurrHealthAddr)
	if err != nil {
		t.Fatalf("read health: %v", err)
	}
	if health == 0 {
		t.Fatal("death link off should leave health alone")
	}
}

func TestSyncTickPropagatesMemoryErrors(t *testing.T) {
	f := newFixture(t)
	f.connect(t, 0)

	boom := errors.New("boom")
	f.hook.FailReads(boom)
	if err := f.session.SyncTick(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected memory error, got %v", err)
	}
}
