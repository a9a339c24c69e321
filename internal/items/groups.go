package items

import "strings"

// Groups maps a group name to the item names it contains. Hint systems and
// the rule layer (Tingle Statues) resolve group membership through it.
var Groups = buildGroups()

func buildGroups() map[string][]string {
	groups := map[string][]string{
		"Pearls": {
			"Nayru's Pearl",
			"Din's Pearl",
			"Farore's Pearl",
		},
		"Shards": {
			"Triforce Shard 1",
			"Triforce Shard 2",
			"Triforce Shard 3",
			"Triforce Shard 4",
			"Triforce Shard 5",
			"Triforce Shard 6",
			"Triforce Shard 7",
			"Triforce Shard 8",
		},
		"Tingle Statues": {
			"Dragon Tingle Statue",
			"Forbidden Tingle Statue",
			"Goddess Tingle Statue",
			"Earth Tingle Statue",
			"Wind Tingle Statue",
		},
	}

	simple := []struct {
		group     string
		substring string
	}{
		{"Small Keys", "Small Key"},
		{"Big Keys", "Big Key"},
		{"Dungeon Items", "Compass"},
		{"Dungeon Items", "Map"},
		{"Rupees", "Rupee"},
	}
	for _, entry := range simple {
		for name := range Table {
			if strings.Contains(name, entry.substring) {
				groups[entry.group] = append(groups[entry.group], name)
			}
		}
	}
	return groups
}

// InGroup reports whether an item belongs to the named group.
func InGroup(group, item string) bool {
	for _, name := range Groups[group] {
		if name == item {
			return true
		}
	}
	return false
}
