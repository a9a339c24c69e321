package dolphin

import "sync"

// FakeHook is an in-memory hook for tests and dry runs. Memory is sparse and
// reads as zero where never written.
type FakeHook struct {
	mu      sync.Mutex
	hooked  bool
	mem     map[uint32]byte
	hookErr error
	readErr error
}

// NewFakeHook returns an unhooked fake with empty memory.
func NewFakeHook() *FakeHook {
	return &FakeHook{mem: make(map[uint32]byte)}
}

// Hook attaches the fake. Fails with the error set by FailHook, if any.
func (f *FakeHook) Hook() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hookErr != nil {
		return f.hookErr
	}
	f.hooked = true
	return nil
}

// UnHook detaches the fake. Memory contents survive.
func (f *FakeHook) UnHook() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hooked = false
}

// IsHooked reports whether the fake is attached.
func (f *FakeHook) IsHooked() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hooked
}

// ReadBytes reads n bytes starting at addr.
func (f *FakeHook) ReadBytes(addr uint32, n int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.hooked {
		return nil, ErrNotHooked
	}
	if f.readErr != nil {
		return nil, f.readErr
	}
	data := make([]byte, n)
	for i := range data {
		data[i] = f.mem[addr+uint32(i)]
	}
	return data, nil
}

// WriteBytes writes data starting at addr.
func (f *FakeHook) WriteBytes(addr uint32, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.hooked {
		return ErrNotHooked
	}
	for i, b := range data {
		f.mem[addr+uint32(i)] = b
	}
	return nil
}

// Seed writes data regardless of hook state, for test setup.
func (f *FakeHook) Seed(addr uint32, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range data {
		f.mem[addr+uint32(i)] = b
	}
}

// Peek reads one byte regardless of hook state, for test assertions.
func (f *FakeHook) Peek(addr uint32) byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mem[addr]
}

// FailHook makes subsequent Hook calls fail with err. Pass nil to clear.
func (f *FakeHook) FailHook(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hookErr = err
}

// FailReads makes subsequent reads fail with err. Pass nil to clear.
func (f *FakeHook) FailReads(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readErr = err
}
