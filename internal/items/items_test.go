package items

import (
	"strings"
	"testing"
)

func TestItemCodesUnique(t *testing.T) {
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
			if _, ok := LookupID[NetworkID(data.Code)]; ok {
				t.Errorf("event item %q must not appear in LookupID", name)
			}
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

func TestDungeonItemKind(t *testing.T) {
	if got := MustGet("DRC Small Key").DungeonItemKind(); got != KindSmallKey {
		t.Errorf("DRC Small Key kind = %q, want %q", got, KindSmallKey)
	}
	if got := MustGet("WT Big Key").DungeonItemKind(); got != KindBigKey {
		t.Errorf("WT Big Key kind = %q, want %q", got, KindBigKey)
	}
	if got := MustGet("Bombs").DungeonItemKind(); got != "" {
		t.Errorf("Bombs kind = %q, want empty", got)
	}
}

func TestValidateRejectsUnknownNames(t *testing.T) {
	if err := Validate("Bombs", "Progressive Sword"); err != nil {
		t.Fatalf("known names rejected: %v", err)
	}
	if err := Validate("Master Sword"); err == nil {
		t.Fatal("expected an error for an unknown item name")
	}
}

func TestGroupsResolveToTableEntries(t *testing.T) {
	for group, members := range Groups {
		if len(members) == 0 {
			t.Errorf("group %q is empty", group)
		}
		for _, member := range members {
			if _, ok := Table[member]; !ok {
				t.Errorf("group %q names unknown item %q", group, member)
			}
		}
	}
	if !InGroup("Pearls", "Din's Pearl") {
		t.Error("Din's Pearl missing from Pearls")
	}
	if got := len(Groups["Tingle Statues"]); got != 5 {
		t.Errorf("Tingle Statues group has %d members, want 5", got)
	}
	if got := len(Groups["Shards"]); got != 8 {
		t.Errorf("Shards group has %d members, want 8", got)
	}
}

func TestVanillaChartMappingCoversAllIslands(t *testing.T) {
	if got := len(VanillaChartMapping); got != 49 {
		t.Fatalf("chart mapping covers %d islands, want 49", got)
	}
	triforce, treasure := 0, 0
	for island := 1; island <= 49; island++ {
		chart, ok := VanillaChartMapping[island]
		if !ok {
			t.Errorf("island %d has no vanilla chart", island)
			continue
		}
		if _, ok := Table[chart]; !ok {
			t.Errorf("island %d maps to unknown chart %q", island, chart)
		}
		switch {
		case strings.HasPrefix(chart, "Triforce Chart"):
			triforce++
		case strings.HasPrefix(chart, "Treasure Chart"):
			treasure++
		default:
			t.Errorf("island %d maps to non-chart item %q", island, chart)
		}
	}
	if triforce != 8 || treasure != 41 {
		t.Errorf("chart split = %d triforce / %d treasure, want 8 / 41", triforce, treasure)
	}
}

func TestQuantitiesArePlausible(t *testing.T) {
	for name, data := range Table {
		if data.Quantity < 0 {
			t.Errorf("%q has negative quantity %d", name, data.Quantity)
		}
	}
	if got := MustGet("Progressive Sword").Quantity; got != 4 {
		t.Errorf("Progressive Sword quantity = %d, want 4", got)
	}
	if got := MustGet("Piece of Heart").Quantity; got != 44 {
		t.Errorf("Piece of Heart quantity = %d, want 44", got)
	}
}
