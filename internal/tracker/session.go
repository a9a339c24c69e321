// Package tracker drives the sync loop between the running game and the
// multiworld server: it delivers received items into console memory, scans
// save flags for newly-checked locations and shares death-link deaths.
package tracker

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"tww-multiworld/world/internal/dolphin"
	"tww-multiworld/world/internal/items"
	"tww-multiworld/world/internal/locations"
	"tww-multiworld/world/internal/proto"
	"tww-multiworld/world/logging"
	"tww-multiworld/world/logging/connection"
	"tww-multiworld/world/logging/syncevents"
)

const (
	// TickInterval is the pause between sync passes while hooked.
	TickInterval = 500 * time.Millisecond
	// RetryInterval is the pause after a failed hook or a lost connection.
	RetryInterval = 5 * time.Second

	deathLinkCooldown     = 3 * time.Second
	deliveryRetryInterval = 10 * time.Millisecond
)

// Stage names reported while no save file is loaded.
var notInGameStages = [][8]byte{
	{'s', 'e', 'a', '_', 'T', 0, 0, 0},
	{'N', 'a', 'm', 'e', 0, 0, 0, 0},
}

// ServerConn is the slice of the server session the tracker drives.
type ServerConn interface {
	Connect(msg proto.Connect) error
	UpdateTags(tags []string) error
	ReportChecks(locations []int64) error
	ReportStatus(status proto.ClientStatus) error
	SendDeathLink(source, cause string) error
	Sync() error
}

// Config carries the session dependencies.
type Config struct {
	SlotName string
	Password string

	Memory    *dolphin.Memory
	Publisher logging.Publisher

	// Clock and Sleep are injectable for tests; nil means real time.
	Clock func() time.Time
	Sleep func(time.Duration)
}

type receivedItem struct {
	item  proto.NetworkItem
	index int
}

// Session holds the state shared between the server read loop and the
// emulator sync loop.
type Session struct {
	mem      *dolphin.Memory
	pub      logging.Publisher
	counters Counters
	clock    func() time.Time
	sleep    func(time.Duration)

	slotName string
	password string

	mu                sync.Mutex
	conn              ServerConn
	slot              int
	deathLink         bool
	pending           []receivedItem
	lastReceivedIndex int
	checked           map[int64]bool
	reported          map[int64]bool
	finished          bool
	hasSentDeath      bool
	lastDeathLink     time.Time
	status            string
}

// NewSession builds a session in the initial, unhooked state.
func NewSession(cfg Config) *Session {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	pub := cfg.Publisher
	if pub == nil {
		pub = logging.NopPublisher()
	}
	return &Session{
		mem:               cfg.Memory,
		pub:               pub,
		clock:             clock,
		sleep:             sleep,
		slotName:          cfg.SlotName,
		password:          cfg.Password,
		lastReceivedIndex: -1,
		checked:           make(map[int64]bool),
		reported:          make(map[int64]bool),
		status:            StatusInitial,
	}
}

// AttachServer hands the session a live server connection.
func (s *Session) AttachServer(conn ServerConn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
}

// DetachServer drops the server connection after a disconnect.
func (s *Session) DetachServer() {
	s.mu.Lock()
	slot := s.slot
	s.conn = nil
	s.slot = 0
	s.mu.Unlock()
	connection.ServerLost(context.Background(), s.pub, slot, connection.ServerPayload{})
}

// Status returns the current emulator status string.
func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Telemetry snapshots the sync counters.
func (s *Session) Telemetry() Snapshot {
	return s.counters.Snapshot()
}

// Finished reports whether the goal was reached and reported.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

func (s *Session) setStatus(status string, severity logging.Severity) {
	s.mu.Lock()
	changed := s.status != status
	s.status = status
	s.mu.Unlock()
	if changed {
		connection.EmulatorStatus(context.Background(), s.pub, severity, status)
	}
}

// HandleRoomInfo answers the server greeting with the slot handshake.
func (s *Session) HandleRoomInfo(msg proto.RoomInfo) {
	conn := s.server()
	if conn == nil {
		return
	}
	err := conn.Connect(proto.Connect{
		Name:          s.slotName,
		Password:      s.password,
		ItemsHandling: proto.ItemsHandlingAll,
		SlotData:      true,
	})
	if err != nil {
		connection.ServerLost(context.Background(), s.pub, 0, connection.ServerPayload{
			Errors: []string{err.Error()},
		})
	}
}

// HandleConnected resets the received-item bookkeeping for the new slot.
func (s *Session) HandleConnected(msg proto.Connected) {
	s.mu.Lock()
	s.slot = msg.Slot
	s.pending = nil
	s.lastReceivedIndex = -1
	s.deathLink = msg.SlotData.DeathLink != 0
	for _, id := range msg.CheckedLocations {
		s.reported[id] = true
	}
	conn := s.conn
	deathLink := s.deathLink
	s.mu.Unlock()

	connection.ServerConnected(context.Background(), s.pub, msg.Slot, connection.ServerPayload{Slot: msg.Slot})
	if deathLink && conn != nil {
		if err := conn.UpdateTags([]string{proto.TagDeathLink}); err != nil {
			connection.ServerLost(context.Background(), s.pub, msg.Slot, connection.ServerPayload{
				Errors: []string{err.Error()},
			})
		}
	}
}

// HandleConnectionRefused surfaces the server's rejection reasons.
func (s *Session) HandleConnectionRefused(msg proto.ConnectionRefused) {
	connection.ServerRefused(context.Background(), s.pub, connection.ServerPayload{Errors: msg.Errors})
}

// HandleReceivedItems queues items for delivery. The server resends the full
// list on reconnect, so indices at or before the last seen one are merged
// rather than appended twice. An index past the end of the queue means items
// were skipped; the batch is dropped and a full resend requested instead,
// since merging it would let the delivery loop advance the save's counter
// past items it never wrote.
func (s *Session) HandleReceivedItems(msg proto.ReceivedItems) {
	s.mu.Lock()
	conn := s.conn
	slot := s.slot
	next := s.lastReceivedIndex
	if next < 0 {
		next = 0
	}
	if msg.Index > next {
		s.mu.Unlock()
		if conn == nil {
			return
		}
		if err := conn.Sync(); err != nil {
			connection.ServerLost(context.Background(), s.pub, slot, connection.ServerPayload{
				Errors: []string{err.Error()},
			})
		}
		return
	}
	if msg.Index >= s.lastReceivedIndex {
		s.lastReceivedIndex = msg.Index
		for _, item := range msg.Items {
			s.pending = append(s.pending, receivedItem{item: item, index: s.lastReceivedIndex})
			s.lastReceivedIndex++
		}
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].index < s.pending[j].index
	})
	s.mu.Unlock()
}

// HandleBounced applies remote death-link deaths.
func (s *Session) HandleBounced(msg proto.Bounced) {
	if !msg.IsDeathLink() {
		return
	}
	s.mu.Lock()
	enabled := s.deathLink
	s.lastDeathLink = s.clock()
	slot := s.slot
	s.mu.Unlock()
	if !enabled {
		return
	}
	if err := s.applyDeath(); err != nil {
		return
	}
	s.counters.RecordDeathReceived()
	syncevents.DeathReceived(context.Background(), s.pub, slot, syncevents.DeathPayload{
		Source: msg.Data.Source,
		Cause:  msg.Data.Cause,
	})
}

// HandlePrintJSON logs server chat and event text.
func (s *Session) HandlePrintJSON(msg proto.PrintJSON) {
	s.mu.Lock()
	slot := s.slot
	s.mu.Unlock()
	connection.ServerMessage(context.Background(), s.pub, slot, msg.Text())
}

// applyDeath zeroes the player's health while hooked and in a save file.
func (s *Session) applyDeath() error {
	if !s.mem.Hook().IsHooked() || s.Status() != StatusConnected {
		return nil
	}
	inGame, err := s.inGame()
	if err != nil || !inGame {
		return err
	}
	s.mu.Lock()
	s.hasSentDeath = true
	s.mu.Unlock()
	return s.mem.WriteU16(dolphin.CurrHealthAddr, 0)
}

// RunEmulatorLoop ticks the sync cycle until the context is cancelled. Any
// failure unhooks, logs and retries; the loop itself never exits on error.
func (s *Session) RunEmulatorLoop(ctx context.Context) {
	for ctx.Err() == nil {
		if s.mem.Hook().IsHooked() && s.Status() == StatusConnected {
			if s.serverReady() {
				if err := s.SyncTick(ctx); err != nil {
					if ctx.Err() != nil {
						return
					}
					s.counters.RecordSyncError()
					s.mem.Hook().UnHook()
					s.setStatus(StatusLost, logging.SeverityError)
					s.sleep(RetryInterval)
					continue
				}
			}
			s.counters.RecordTick()
			s.sleep(TickInterval)
		} else {
			if !s.AttemptHook() {
				s.sleep(RetryInterval)
			}
		}
	}
}

// AttemptHook tries to attach to the emulator and verify the loaded game.
// It returns false when the caller should back off before retrying.
func (s *Session) AttemptHook() bool {
	if s.Status() == StatusConnected {
		s.setStatus(StatusLost, logging.SeverityWarn)
	}
	s.counters.RecordHookAttempt()

	hook := s.mem.Hook()
	if err := hook.Hook(); err != nil || !hook.IsHooked() {
		s.setStatus(StatusLost, logging.SeverityWarn)
		return false
	}
	if err := s.mem.CheckGameID(); err != nil {
		s.setStatus(StatusRefusedGame, logging.SeverityWarn)
		hook.UnHook()
		return false
	}
	inGame, err := s.inGame()
	if err != nil || !inGame {
		s.setStatus(StatusRefusedSave, logging.SeverityWarn)
		hook.UnHook()
		return false
	}

	// A fresh hook rescans everything; the server already knows which
	// locations were reported before.
	s.mu.Lock()
	s.checked = make(map[int64]bool)
	s.mu.Unlock()
	s.setStatus(StatusConnected, logging.SeverityInfo)
	return true
}

// SyncTick runs one full sync pass: death link, item delivery, location scan.
func (s *Session) SyncTick(ctx context.Context) error {
	inGame, err := s.inGame()
	if err != nil {
		return err
	}
	if s.deathLinkEnabled() {
		if err := s.checkDeath(ctx, inGame); err != nil {
			return err
		}
	}
	if err := s.giveItems(ctx, inGame); err != nil {
		return err
	}
	return s.checkLocations(ctx)
}

func (s *Session) serverReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil && s.slot != 0
}

func (s *Session) server() ServerConn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

func (s *Session) deathLinkEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deathLink
}

func (s *Session) inGame() (bool, error) {
	data, err := s.mem.Hook().ReadBytes(dolphin.CurrStageNameAddr, 8)
	if err != nil {
		return false, err
	}
	for _, stage := range notInGameStages {
		if string(data) == string(stage[:]) {
			return false, nil
		}
	}
	return true, nil
}

// checkDeath broadcasts the local death once per death, with a cooldown so a
// death we just received does not bounce straight back. The sent flag is
// raised only after the broadcast goes out, so a death during a server gap
// is still reported once the connection is back.
func (s *Session) checkDeath(ctx context.Context, inGame bool) error {
	if !inGame {
		return nil
	}
	health, err := s.mem.ReadU16(dolphin.CurrHealthAddr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	conn := s.conn
	slot := s.slot
	sent := s.hasSentDeath
	cooledDown := !s.clock().Before(s.lastDeathLink.Add(deathLinkCooldown))
	if health > 0 {
		s.hasSentDeath = false
	}
	s.mu.Unlock()

	if health > 0 || sent || !cooledDown || conn == nil {
		return nil
	}
	cause := s.slotName + " ran out of hearts."
	if err := conn.SendDeathLink(s.slotName, cause); err != nil {
		return err
	}
	s.mu.Lock()
	s.hasSentDeath = true
	s.mu.Unlock()
	s.counters.RecordDeathSent()
	syncevents.DeathSent(ctx, s.pub, slot, syncevents.DeathPayload{Source: s.slotName, Cause: cause})
	return nil
}

// giveItems drains the pending queue into the in-game delivery array, skipping
// indices the save file has already consumed.
func (s *Session) giveItems(ctx context.Context, inGame bool) error {
	if !inGame {
		return nil
	}
	expected, err := s.mem.ReadU16(dolphin.ExpectedIndexAddr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	pending := append([]receivedItem(nil), s.pending...)
	slot := s.slot
	s.mu.Unlock()

	for _, rcv := range pending {
		if rcv.index < int(expected) {
			continue
		}
		name, ok := items.LookupID[rcv.item.Item]
		if !ok {
			return fmt.Errorf("tracker: received unknown item id %d", rcv.item.Item)
		}
		for {
			placed, err := s.deliverItem(name)
			if err != nil {
				return err
			}
			if placed {
				break
			}
			// The delivery array is full; the game drains it a slot at
			// a time.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.sleep(deliveryRetryInterval)
		}
		if err := s.mem.WriteU16(dolphin.ExpectedIndexAddr, uint16(rcv.index+1)); err != nil {
			return err
		}
		s.counters.RecordItemDelivered()
		syncevents.ItemDelivered(ctx, s.pub, slot, syncevents.ItemPayload{
			Item:   name,
			Index:  rcv.index,
			Sender: rcv.item.Player,
		})
	}
	return nil
}

// deliverItem writes the item's in-game id into the first free slot of the
// delivery array, or reports that the array is full.
func (s *Session) deliverItem(name string) (bool, error) {
	id := byte(items.MustGet(name).InGameID)
	for offset := uint32(0); offset < dolphin.GiveItemArrayLen; offset++ {
		slot, err := s.mem.ReadU8(dolphin.GiveItemArrayAddr + offset)
		if err != nil {
			return false, err
		}
		if slot == dolphin.GiveItemFreeSlot {
			return true, s.mem.WriteU8(dolphin.GiveItemArrayAddr+offset, id)
		}
	}
	return false, nil
}

// checkLocations scans the save flags and reports newly-checked locations.
func (s *Session) checkLocations(ctx context.Context) error {
	stageID, err := s.mem.ReadU8(dolphin.CurrStageIDAddr)
	if err != nil {
		return err
	}
	charts, err := s.mem.ReadBitfield(dolphin.ChartsBitfieldAddr, dolphin.ChartsBitfieldLen)
	if err != nil {
		return err
	}
	seaAlt, err := s.mem.ReadBitfield(dolphin.SeaAltBitfieldAddr, 4)
	if err != nil {
		return err
	}
	chests, err := s.mem.ReadBitfield(dolphin.ChestsBitfieldAddr, 4)
	if err != nil {
		return err
	}
	switches, err := s.mem.ReadBitfield(dolphin.SwitchesBitfieldAddr, dolphin.SwitchBitfieldLen)
	if err != nil {
		return err
	}
	pickups, err := s.mem.ReadBitfield(dolphin.PickupsBitfieldAddr, 4)
	if err != nil {
		return err
	}

	goal := false
	for name, data := range locations.Table {
		checked := false
		switch {
		case data.Kind == locations.KindSpecial:
			checked, err = s.checkSpecial(name, data)
			if err != nil {
				return err
			}
		case data.StageID == stageID:
			switch data.Kind {
			case locations.KindChart:
				checked = charts.Bit(data.Bit)
			case locations.KindBigOcto:
				word, err := s.mem.ReadU16(data.Address)
				if err != nil {
					return err
				}
				checked = (word>>data.Bit)&1 == 1
			case locations.KindChest:
				checked = chests.Bit(data.Bit)
			case locations.KindSwitch:
				checked = switches.Bit(data.Bit)
			case locations.KindPickup:
				checked = pickups.Bit(data.Bit)
			case locations.KindEvent:
				b, err := s.mem.ReadU8(data.Address)
				if err != nil {
					return err
				}
				checked = (b>>data.Bit)&1 == 1
			}
		case stageID == 0x0 && data.StageID == 0x1:
			// The Great Sea stores some chest flags in an alternate block.
			checked = seaAlt.Bit(data.Bit)
		}
		if !checked {
			continue
		}
		if data.Code == locations.NoCode {
			goal = true
			continue
		}
		s.mu.Lock()
		s.checked[locations.NetworkID(data.Code)] = true
		s.mu.Unlock()
	}

	if goal {
		if err := s.reportGoal(ctx); err != nil {
			return err
		}
	}
	return s.flushChecks(ctx)
}

// checkSpecial covers the locations without a clean save flag.
func (s *Session) checkSpecial(name string, data locations.Data) (bool, error) {
	switch name {
	case "Windfall Island - Maggie - Delivery Reward":
		// No known flag. The letter was delivered when Moblin's Letter
		// was owned at some point but is gone from the Delivery Bag. The
		// owned flag is bit 15 of the full 32-bit word.
		owned, err := s.mem.ReadU32(dolphin.LetterOwnedAddr)
		if err != nil {
			return false, err
		}
		if (owned>>15)&1 == 0 {
			return false, nil
		}
		bag, err := s.mem.Hook().ReadBytes(dolphin.LetterBaseAddr, dolphin.LetterBagLen)
		if err != nil {
			return false, err
		}
		for _, b := range bag {
			if b == 0x9B {
				return false, nil
			}
		}
		return true, nil
	case "Mailbox - Letter from Baito's Mother", "Mailbox - Letter from Grandma":
		// 0x1 = trigger sent, 0x2 = mail delivered, 0x3 = mail read.
		b, err := s.mem.ReadU8(data.Address)
		if err != nil {
			return false, err
		}
		return b&0x3 == 0x3, nil
	}
	return false, nil
}

func (s *Session) reportGoal(ctx context.Context) error {
	s.mu.Lock()
	conn := s.conn
	slot := s.slot
	done := s.finished
	s.mu.Unlock()
	if done || conn == nil {
		return nil
	}
	if err := conn.ReportStatus(proto.StatusGoal); err != nil {
		return err
	}
	s.mu.Lock()
	s.finished = true
	s.mu.Unlock()
	syncevents.GoalReported(ctx, s.pub, slot)
	return nil
}

func (s *Session) flushChecks(ctx context.Context) error {
	s.mu.Lock()
	var newly []int64
	for id := range s.checked {
		if !s.reported[id] {
			newly = append(newly, id)
		}
	}
	conn := s.conn
	slot := s.slot
	s.mu.Unlock()

	if len(newly) == 0 || conn == nil {
		return nil
	}
	sort.Slice(newly, func(i, j int) bool { return newly[i] < newly[j] })
	if err := conn.ReportChecks(newly); err != nil {
		return err
	}
	s.mu.Lock()
	for _, id := range newly {
		s.reported[id] = true
	}
	s.mu.Unlock()
	s.counters.RecordChecksSent(len(newly))
	syncevents.ChecksSent(ctx, s.pub, slot, syncevents.ChecksPayload{Locations: newly})
	return nil
}
