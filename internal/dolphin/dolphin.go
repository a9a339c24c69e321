// Package dolphin abstracts the GameCube emulator's memory engine behind a
// small hook interface and layers big-endian typed accessors on top of it.
package dolphin

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// GameID is the magic at the start of console memory when the right disc is
// loaded.
const GameID = "GZLE99"

// Console addresses of the save-file structures the client reads and writes.
const (
	GameIDAddr uint32 = 0x80000000

	// The small key counter and dungeon flag bytes for Ganon's Tower are
	// unused by the game, so the randomized ROM repurposes them as the
	// counter of items already delivered.
	ExpectedIndexAddr uint32 = 0x803C50C8

	LetterBaseAddr  uint32 = 0x803C4C8E
	LetterOwnedAddr uint32 = 0x803C4C98

	CurrHealthAddr uint32 = 0x803C4C0A

	StageInfoAddr     uint32 = 0x803C4F88
	CurrStageNameAddr uint32 = 0x803C9D3C
	CurrStageIDAddr   uint32 = 0x803C53A4

	ChartsBitfieldAddr   uint32 = 0x803C4CFC
	SeaAltBitfieldAddr   uint32 = 0x803C4FAC
	ChestsBitfieldAddr   uint32 = 0x803C5380
	SwitchesBitfieldAddr uint32 = 0x803C5384
	PickupsBitfieldAddr  uint32 = 0x803C5394

	GiveItemArrayAddr uint32 = 0x803FE868
)

// Widths of the multi-byte save-file structures.
const (
	GiveItemArrayLen  = 0x10
	ChartsBitfieldLen = 8
	SwitchBitfieldLen = 10
	LetterBagLen      = 8
)

// GiveItemFreeSlot marks an empty slot in the item-delivery array.
const GiveItemFreeSlot = 0xFF

// ErrNotHooked is returned by memory operations before a hook is established.
var ErrNotHooked = errors.New("dolphin: not hooked")

// Hook is the boundary to the emulator process. Implementations attach to a
// running emulator and expose raw console-address reads and writes.
type Hook interface {
	Hook() error
	UnHook()
	IsHooked() bool
	ReadBytes(addr uint32, n int) ([]byte, error)
	WriteBytes(addr uint32, data []byte) error
}

// Memory layers typed big-endian accessors over a raw hook. The GameCube is
// big-endian, so every multi-byte read and write goes through binary.BigEndian.
type Memory struct {
	hook Hook
}

// NewMemory wraps the given hook.
func NewMemory(hook Hook) *Memory {
	return &Memory{hook: hook}
}

// Hook exposes the underlying hook for lifecycle management.
func (m *Memory) Hook() Hook { return m.hook }

// ReadU8 reads one byte.
func (m *Memory) ReadU8(addr uint32) (byte, error) {
	data, err := m.hook.ReadBytes(addr, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// WriteU8 writes one byte.
func (m *Memory) WriteU8(addr uint32, value byte) error {
	return m.hook.WriteBytes(addr, []byte{value})
}

// ReadU16 reads a big-endian 16-bit word.
func (m *Memory) ReadU16(addr uint32) (uint16, error) {
	data, err := m.hook.ReadBytes(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(data), nil
}

// WriteU16 writes a big-endian 16-bit word.
func (m *Memory) WriteU16(addr uint32, value uint16) error {
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, value)
	return m.hook.WriteBytes(addr, data)
}

// ReadU32 reads a big-endian 32-bit word.
func (m *Memory) ReadU32(addr uint32) (uint32, error) {
	data, err := m.hook.ReadBytes(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(data), nil
}

// ReadBitfield reads n bytes as one big-endian bit set.
func (m *Memory) ReadBitfield(addr uint32, n int) (Bitfield, error) {
	data, err := m.hook.ReadBytes(addr, n)
	if err != nil {
		return nil, err
	}
	return Bitfield(data), nil
}

// CheckGameID verifies that the loaded disc is the supported one.
func (m *Memory) CheckGameID() error {
	data, err := m.hook.ReadBytes(GameIDAddr, len(GameID))
	if err != nil {
		return err
	}
	if string(data) != GameID {
		return fmt.Errorf("dolphin: game id %q, want %q", data, GameID)
	}
	return nil
}

// Bitfield is a big-endian bit set read from console memory. Bit 0 is the
// least significant bit of the last byte.
type Bitfield []byte

// Bit reports whether bit i is set. Out-of-range bits read as clear.
func (f Bitfield) Bit(i int) bool {
	if i < 0 || i >= len(f)*8 {
		return false
	}
	return (f[len(f)-1-i/8]>>(i%8))&1 == 1
}
