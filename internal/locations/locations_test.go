package locations

import (
	"strings"
	"testing"
)

func TestLocationCodesUnique(t *testing.T) {
	seen := make(map[int]string, len(Table))
	for name, data := range Table {
		if data.Code == NoCode {
			continue
		}
		if other, dup := seen[data.Code]; dup {
			t.Errorf("code %d shared by %q and %q", data.Code, name, other)
		}
		seen[data.Code] = name
	}
}

func TestLookupIDRoundTrip(t *testing.T) {
	for name, data := range Table {
		if data.Code == NoCode {
			continue
		}
		got, ok := LookupID[NetworkID(data.Code)]
		if !ok {
			t.Fatalf("no reverse mapping for %q (code %d)", name, data.Code)
		}
		if got != name {
			t.Errorf("LookupID[%d] = %q, want %q", NetworkID(data.Code), got, name)
		}
	}
}

func TestSunkenTreasureBitsAreIslandNumbers(t *testing.T) {
	charts := 0
	bits := make(map[int]string, 49)
	for name, data := range Table {
		if data.Kind != KindChart {
			continue
		}
		charts++
		if !strings.HasSuffix(name, "Sunken Treasure") {
			t.Errorf("chart row %q is not a sunken treasure", name)
		}
		if data.Bit < 1 || data.Bit > 49 {
			t.Errorf("%q has chart bit %d outside 1..49", name, data.Bit)
		}
		if other, dup := bits[data.Bit]; dup {
			t.Errorf("chart bit %d shared by %q and %q", data.Bit, name, other)
		}
		bits[data.Bit] = name
	}
	if charts != 49 {
		t.Errorf("table has %d sunken treasures, want 49", charts)
	}
	if got := MustGet("Star Island - Sunken Treasure").Bit; got != 2 {
		t.Errorf("Star Island chart bit = %d, want island number 2", got)
	}
}

func TestBitsUniquePerStageBitfield(t *testing.T) {
	type slot struct {
		kind  Kind
		stage byte
		bit   int
	}
	seen := make(map[slot]string, len(Table))
	for name, data := range Table {
		switch data.Kind {
		case KindChest, KindSwitch, KindPickup:
		default:
			continue
		}
		key := slot{data.Kind, data.StageID, data.Bit}
		if other, dup := seen[key]; dup {
			t.Errorf("%s bit %d on stage %#x shared by %q and %q",
				data.Kind, data.Bit, data.StageID, name, other)
		}
		seen[key] = name
	}
}

func TestEventRowsCarrySaveAddresses(t *testing.T) {
	for name, data := range Table {
		if data.Kind != KindEvent {
			continue
		}
		if data.Address == 0 {
			t.Errorf("event row %q has no save address", name)
		}
		if data.Bit < 0 || data.Bit > 7 {
			t.Errorf("event row %q has bit %d outside a byte", name, data.Bit)
		}
	}
}

func TestVictoryLocationStaysOffTheWire(t *testing.T) {
	data := MustGet("Defeat Ganondorf")
	if data.Code != NoCode {
		t.Fatalf("Defeat Ganondorf code = %d, want NoCode", data.Code)
	}
	if got := NetworkID(data.Code); got != 0 {
		t.Errorf("NetworkID(NoCode) = %d, want 0", got)
	}
	if _, ok := LookupID[0]; ok {
		t.Error("LookupID must not contain the victory sentinel")
	}
}

func TestSpecialRowsAreTheKnownHeuristics(t *testing.T) {
	want := map[string]bool{
		"Windfall Island - Maggie - Delivery Reward": true,
		"Mailbox - Letter from Baito's Mother":       true,
		"Mailbox - Letter from Grandma":              true,
	}
	for name, data := range Table {
		if data.Kind != KindSpecial {
			continue
		}
		if !want[name] {
			t.Errorf("unexpected special row %q", name)
		}
		delete(want, name)
	}
	for name := range want {
		t.Errorf("missing special row %q", name)
	}
}
