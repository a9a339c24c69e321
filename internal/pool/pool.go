package pool

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"tww-multiworld/world/internal/items"
	"tww-multiworld/world/internal/locations"
	"tww-multiworld/world/internal/options"
)

// ErrFill is wrapped by every error that means the pool cannot be laid out
// for the chosen settings.
var ErrFill = errors.New("item pool does not fit the world")

// consumableFillers are the throwaway items used to top up the pool when the
// per-item quantities run out, and the replacements the better filler option
// swaps in for charts.
var consumableFillers = []string{
	"Blue Chu Jelly",
	"Skull Necklace",
	"Boko Baba Seed",
	"Golden Feather",
	"Knight's Crest",
	"Red Chu Jelly",
	"Green Chu Jelly",
	"Joy Pendant",
	"All-Purpose Bait",
	"Hyoi Pear",
	"Green Rupee",
	"Blue Rupee",
	"Yellow Rupee",
	"Red Rupee",
	"Purple Rupee",
	"10 Arrows (Pickup)",
	"5 Bombs (Pickup)",
	"Small Magic Jar (Pickup)",
	"Large Magic Jar (Pickup)",
	"Heart (Pickup)",
	"Three Hearts (Pickup)",
}

// Config carries the inputs to pool generation.
type Config struct {
	Options options.Options
	// BannedDungeons holds the dungeon prefixes (DRC, FW, ...) whose items
	// count as filler in required bosses mode.
	BannedDungeons []string
	Seed           int64
}

// Result is the generated pool. Pool items are shuffled and ready for fill;
// Precollected items are granted at the start; Placed maps locations to the
// items locked onto them before fill runs.
type Result struct {
	Pool         []string
	Precollected []string
	Placed       map[string]string
}

// Generator builds the item pool for one world.
type Generator struct {
	opts   options.Options
	banned map[string]bool
	rng    *rand.Rand

	usefulPool []string
	fillerPool []string
}

// New returns a generator seeded for reproducible output.
func New(cfg Config) *Generator {
	banned := make(map[string]bool, len(cfg.BannedDungeons))
	for _, dungeon := range cfg.BannedDungeons {
		banned[dungeon] = true
	}
	return &Generator{
		opts:   cfg.Options.Normalized(),
		banned: banned,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Classification returns the effective classification of an item under the
// generator's options. Charts only count as progression when the matching
// option makes their checks logical, and dungeon items from banned dungeons
// demote to filler.
func (g *Generator) Classification(name string) items.Classification {
	data := items.MustGet(name)
	switch {
	case strings.HasPrefix(name, "Treasure Chart"):
		if !g.opts.ProgressionTreasureCharts {
			return items.Filler
		}
	case strings.HasPrefix(name, "Triforce Chart"):
		if !g.opts.ProgressionTriforceCharts {
			return items.Filler
		}
	}
	if data.Kind != items.KindItem && data.Kind != items.KindEvent && g.banned[dungeonPrefix(name)] {
		return items.Filler
	}
	return data.Classification
}

// Generate lays out the full pool. The number of pool items plus locked
// placements always equals the number of real locations.
func (g *Generator) Generate() (*Result, error) {
	res := &Result{Placed: map[string]string{"Defeat Ganondorf": "Victory"}}

	var progression, useful, filler []string
	for _, name := range sortedItemNames() {
		data := items.Table[name]
		if data.Kind != items.KindItem {
			continue
		}
		cls := g.Classification(name)
		for i := 0; i < data.Quantity; i++ {
			switch {
			case cls.IsProgression():
				progression = append(progression, name)
			case cls.IsUseful():
				useful = append(useful, name)
			default:
				filler = append(filler, name)
			}
		}
	}

	dungeonItems := g.dungeonItems()

	// One slot is reserved for the victory event.
	numLeft := len(locations.Table) - 1 - len(dungeonItems)

	if len(progression) > numLeft {
		return nil, fmt.Errorf(
			"placing %d progression items in %d free locations: %w",
			len(progression), numLeft, ErrFill)
	}
	pool := append([]string(nil), progression...)
	numLeft -= len(progression)

	g.rng.Shuffle(len(useful), func(i, j int) { useful[i], useful[j] = useful[j], useful[i] })
	g.rng.Shuffle(len(filler), func(i, j int) { filler[i], filler[j] = filler[j], filler[i] })
	g.usefulPool, g.fillerPool = useful, filler

	switch g.opts.SwordMode {
	case options.SwordModeStartWith:
		res.Precollected = append(res.Precollected, "Progressive Sword")
		pool = removeFirst(pool, "Progressive Sword")
		numLeft++
	case options.SwordModeSwordless:
		for containsItem(pool, "Progressive Sword") {
			pool = removeFirst(pool, "Progressive Sword")
			numLeft++
		}
	}

	g.applyBetterFiller()

	for i := 0; i < numLeft; i++ {
		pool = append(pool, g.fillerItemName())
	}

	for _, name := range dungeonItems {
		var mode options.DungeonItemMode
		switch items.Table[name].Kind {
		case items.KindBigKey:
			mode = g.opts.RandomizeBigKeys
		case items.KindSmallKey:
			mode = g.opts.RandomizeSmallKeys
		default:
			mode = g.opts.RandomizeMapCompass
		}

		switch mode {
		case options.DungeonItemStartWith:
			res.Precollected = append(res.Precollected, name)
			pool = append(pool, g.fillerItemName())
		case options.DungeonItemVanilla:
			if err := placeVanilla(res.Placed, name); err != nil {
				return nil, err
			}
		default:
			pool = append(pool, name)
		}
	}

	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	res.Pool = pool
	return res, nil
}

// fillerItemName drains the useful pool first, then the filler pool, then
// falls back to random consumables.
func (g *Generator) fillerItemName() string {
	if len(g.usefulPool) > 0 {
		name := g.usefulPool[0]
		g.usefulPool = g.usefulPool[1:]
		return name
	}
	if len(g.fillerPool) > 0 {
		name := g.fillerPool[0]
		g.fillerPool = g.fillerPool[1:]
		return name
	}
	return consumableFillers[g.rng.Intn(len(consumableFillers))]
}

// applyBetterFiller swaps chart copies out of the filler pool for random
// consumables. Charts that are progression stay untouched.
func (g *Generator) applyBetterFiller() {
	if g.opts.BetterFiller == options.BetterFillerStandard {
		return
	}

	replaced := 0
	removeTreasure := g.opts.BetterFiller == options.BetterFillerRemoveTreasureCharts ||
		g.opts.BetterFiller == options.BetterFillerRemoveBothCharts
	removeTriforce := g.opts.BetterFiller == options.BetterFillerRemoveTriforceCharts ||
		g.opts.BetterFiller == options.BetterFillerRemoveBothCharts

	if removeTreasure && !g.opts.ProgressionTreasureCharts {
		g.fillerPool, replaced = removePrefixed(g.fillerPool, "Treasure Chart", replaced)
	}
	if removeTriforce && !g.opts.ProgressionTriforceCharts {
		g.fillerPool, replaced = removePrefixed(g.fillerPool, "Triforce Chart", replaced)
	}

	for i := 0; i < replaced; i++ {
		g.fillerPool = append(g.fillerPool, consumableFillers[g.rng.Intn(len(consumableFillers))])
	}
}

// dungeonItems expands every key, map, and compass by its quantity, in a
// stable order.
func (g *Generator) dungeonItems() []string {
	var names []string
	for _, name := range sortedItemNames() {
		data := items.Table[name]
		switch data.Kind {
		case items.KindSmallKey, items.KindBigKey, items.KindMap, items.KindCompass:
			for i := 0; i < data.Quantity; i++ {
				names = append(names, name)
			}
		}
	}
	return names
}

func placeVanilla(placed map[string]string, name string) error {
	for _, loc := range VanillaDungeonItemLocations[name] {
		if _, taken := placed[loc]; !taken {
			placed[loc] = name
			return nil
		}
	}
	return fmt.Errorf("no free vanilla location for %s: %w", name, ErrFill)
}

func dungeonPrefix(name string) string {
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}

func sortedItemNames() []string {
	names := make([]string, 0, len(items.Table))
	for name := range items.Table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func containsItem(pool []string, name string) bool {
	for _, item := range pool {
		if item == name {
			return true
		}
	}
	return false
}

func removeFirst(pool []string, name string) []string {
	for i, item := range pool {
		if item == name {
			return append(pool[:i], pool[i+1:]...)
		}
	}
	return pool
}

func removePrefixed(pool []string, prefix string, removed int) ([]string, int) {
	kept := pool[:0]
	for _, item := range pool {
		if strings.HasPrefix(item, prefix) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	return kept, removed
}
