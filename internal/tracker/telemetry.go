package tracker

import "sync/atomic"

// Counters tracks sync-loop activity. All fields are atomics so the loop can
// record without holding the session lock.
type Counters struct {
	ticks          atomic.Uint64
	itemsDelivered atomic.Uint64
	checksSent     atomic.Uint64
	deathsSent     atomic.Uint64
	deathsReceived atomic.Uint64
	syncErrors     atomic.Uint64
	hookAttempts   atomic.Uint64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Ticks          uint64 `json:"ticks"`
	ItemsDelivered uint64 `json:"itemsDelivered"`
	ChecksSent     uint64 `json:"checksSent"`
	DeathsSent     uint64 `json:"deathsSent"`
	DeathsReceived uint64 `json:"deathsReceived"`
	SyncErrors     uint64 `json:"syncErrors"`
	HookAttempts   uint64 `json:"hookAttempts"`
}

func (c *Counters) RecordTick()            { c.ticks.Add(1) }
func (c *Counters) RecordItemDelivered()   { c.itemsDelivered.Add(1) }
func (c *Counters) RecordChecksSent(n int) { c.checksSent.Add(uint64(n)) }
func (c *Counters) RecordDeathSent()       { c.deathsSent.Add(1) }
func (c *Counters) RecordDeathReceived()   { c.deathsReceived.Add(1) }
func (c *Counters) RecordSyncError()       { c.syncErrors.Add(1) }
func (c *Counters) RecordHookAttempt()     { c.hookAttempts.Add(1) }

// Snapshot copies the current counter values.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Ticks:          c.ticks.Load(),
		ItemsDelivered: c.itemsDelivered.Load(),
		ChecksSent:     c.checksSent.Load(),
		DeathsSent:     c.deathsSent.Load(),
		DeathsReceived: c.deathsReceived.Load(),
		SyncErrors:     c.syncErrors.Load(),
		HookAttempts:   c.hookAttempts.Load(),
	}
}
