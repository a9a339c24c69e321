package dolphin

import (
	"errors"
	"testing"
)

func hookedMemory(t *testing.T) (*Memory, *FakeHook) {
	t.Helper()
	hook := NewFakeHook()
	if err := hook.Hook(); err != nil {
		t.Fatalf("hook: %v", err)
	}
	return NewMemory(hook), hook
}

func TestTypedAccessorsAreBigEndian(t *testing.T) {
	mem, hook := hookedMemory(t)

	if err := mem.WriteU16(CurrHealthAddr, 0x0A0B); err != nil {
		t.Fatalf("write u16: %v", err)
	}
	if hook.Peek(CurrHealthAddr) != 0x0A || hook.Peek(CurrHealthAddr+1) != 0x0B {
		t.Fatal("u16 write should place the high byte first")
	}
	value, err := mem.ReadU16(CurrHealthAddr)
	if err != nil {
		t.Fatalf("read u16: %v", err)
	}
	if value != 0x0A0B {
		t.Fatalf("read back %#x, want 0x0a0b", value)
	}

	hook.Seed(SeaAltBitfieldAddr, []byte{0x01, 0x02, 0x03, 0x04})
	word, err := mem.ReadU32(SeaAltBitfieldAddr)
	if err != nil {
		t.Fatalf("read u32: %v", err)
	}
	if word != 0x01020304 {
		t.Fatalf("read %#x, want 0x01020304", word)
	}
}

func TestBitfieldBitOrder(t *testing.T) {
	// Two bytes: 0x01 0x80. As one big-endian integer that is 0x0180, so
	// bits 7 and 8 are set.
	field := Bitfield{0x01, 0x80}
	for bit, want := range map[int]bool{0: false, 7: true, 8: true, 9: false, 15: false} {
		if got := field.Bit(bit); got != want {
			t.Errorf("bit %d = %v, want %v", bit, got, want)
		}
	}
	if field.Bit(-1) || field.Bit(16) {
		t.Error("out-of-range bits should read as clear")
	}
}

func TestReadBitfieldWidths(t *testing.T) {
	mem, hook := hookedMemory(t)

	raw := make([]byte, SwitchBitfieldLen)
	raw[0] = 0x80 // most significant bit of an 80-bit field
	raw[9] = 0x01 // least significant bit
	hook.Seed(SwitchesBitfieldAddr, raw)

	field, err := mem.ReadBitfield(SwitchesBitfieldAddr, SwitchBitfieldLen)
	if err != nil {
		t.Fatalf("read bitfield: %v", err)
	}
	if !field.Bit(0) {
		t.Error("bit 0 should be set")
	}
	if !field.Bit(79) {
		t.Error("bit 79 should be set")
	}
	if field.Bit(40) {
		t.Error("bit 40 should be clear")
	}
}

func TestCheckGameID(t *testing.T) {
	mem, hook := hookedMemory(t)

	hook.Seed(GameIDAddr, []byte("GZLE99"))
	if err := mem.CheckGameID(); err != nil {
		t.Fatalf("expected matching game id, got %v", err)
	}

	hook.Seed(GameIDAddr, []byte("GZLJ99"))
	if err := mem.CheckGameID(); err == nil {
		t.Fatal("expected mismatched game id to be rejected")
	}
}

func TestUnhookedReadsFail(t *testing.T) {
	hook := NewFakeHook()
	mem := NewMemory(hook)

	if _, err := mem.ReadU8(CurrStageIDAddr); !errors.Is(err, ErrNotHooked) {
		t.Fatalf("expected ErrNotHooked, got %v", err)
	}
	if err := mem.WriteU8(CurrStageIDAddr, 1); !errors.Is(err, ErrNotHooked) {
		t.Fatalf("expected ErrNotHooked, got %v", err)
	}
}

func TestFakeHookErrorInjection(t *testing.T) {
	mem, hook := hookedMemory(t)

	boom := errors.New("boom")
	hook.FailReads(boom)
	if _, err := mem.ReadU16(ExpectedIndexAddr); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
	hook.FailReads(nil)
	if _, err := mem.ReadU16(ExpectedIndexAddr); err != nil {
		t.Fatalf("expected reads to recover, got %v", err)
	}

	hook.UnHook()
	hook.FailHook(boom)
	if err := hook.Hook(); !errors.Is(err, boom) {
		t.Fatalf("expected hook failure, got %v", err)
	}
	if hook.IsHooked() {
		t.Fatal("failed hook should leave the fake detached")
	}
}
