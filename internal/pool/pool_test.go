package pool

import (
	"errors"
	"strings"
	"testing"

	"tww-multiworld/world/internal/items"
	"tww-multiworld/world/internal/locations"
	"tww-multiworld/world/internal/options"
)

func countItem(pool []string, name string) int {
	n := 0
	for _, item := range pool {
		if item == name {
			n++
		}
	}
	return n
}

func countPrefixed(pool []string, prefix string) int {
	n := 0
	for _, item := range pool {
		if strings.HasPrefix(item, prefix) {
			n++
		}
	}
	return n
}

func TestPoolCoversEveryLocation(t *testing.T) {
	res, err := New(Config{Options: options.Default(), Seed: 1}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Every location except the victory event holds exactly one item, either
	// from the shuffled pool or locked in place ahead of fill.
	locked := len(res.Placed) - 1 // minus the victory event itself
	if got, want := len(res.Pool)+locked, len(locations.Table)-1; got != want {
		t.Fatalf("pool covers %d locations, want %d", got, want)
	}
	if res.Placed["Defeat Ganondorf"] != "Victory" {
		t.Fatal("victory event not locked onto Defeat Ganondorf")
	}
}

func TestStartWithSwordPrecollectsOne(t *testing.T) {
	res, err := New(Config{Options: options.Default(), Seed: 1}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if countItem(res.Precollected, "Progressive Sword") != 1 {
		t.Fatal("start_with_sword should precollect exactly one sword")
	}
	quantity := items.MustGet("Progressive Sword").Quantity
	if got := countItem(res.Pool, "Progressive Sword"); got != quantity-1 {
		t.Fatalf("pool holds %d swords, want %d", got, quantity-1)
	}
}

func TestSwordlessRemovesAllSwords(t *testing.T) {
	opts := options.Default()
	opts.SwordMode = options.SwordModeSwordless
	res, err := New(Config{Options: opts, Seed: 1}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if countItem(res.Pool, "Progressive Sword") != 0 {
		t.Fatal("swordless pool should hold no swords")
	}
	if countItem(res.Precollected, "Progressive Sword") != 0 {
		t.Fatal("swordless should not precollect a sword")
	}
	locked := len(res.Placed) - 1
	if got, want := len(res.Pool)+locked, len(locations.Table)-1; got != want {
		t.Fatalf("pool covers %d locations, want %d", got, want)
	}
}

func TestFillerChartsByDefault(t *testing.T) {
	res, err := New(Config{Options: options.Default(), Seed: 1}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if got := countPrefixed(res.Pool, "Treasure Chart"); got != 41 {
		t.Fatalf("pool holds %d treasure charts, want 41", got)
	}
	if got := countPrefixed(res.Pool, "Triforce Chart"); got != 8 {
		t.Fatalf("pool holds %d triforce charts, want 8", got)
	}
}

func TestBetterFillerReplacesCharts(t *testing.T) {
	opts := options.Default()
	opts.BetterFiller = options.BetterFillerRemoveBothCharts
	res, err := New(Config{Options: opts, Seed: 1}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if got := countPrefixed(res.Pool, "Treasure Chart"); got != 0 {
		t.Fatalf("pool still holds %d treasure charts", got)
	}
	if got := countPrefixed(res.Pool, "Triforce Chart"); got != 0 {
		t.Fatalf("pool still holds %d triforce charts", got)
	}
	// The replacements keep the pool the same size.
	locked := len(res.Placed) - 1
	if got, want := len(res.Pool)+locked, len(locations.Table)-1; got != want {
		t.Fatalf("pool covers %d locations, want %d", got, want)
	}
}

func TestBetterFillerKeepsProgressionCharts(t *testing.T) {
	opts := options.Default()
	opts.BetterFiller = options.BetterFillerRemoveBothCharts
	opts.ProgressionTreasureCharts = true
	res, err := New(Config{Options: opts, Seed: 1}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if got := countPrefixed(res.Pool, "Treasure Chart"); got != 41 {
		t.Fatalf("progression treasure charts should survive, got %d", got)
	}
	if got := countPrefixed(res.Pool, "Triforce Chart"); got != 0 {
		t.Fatalf("triforce charts should be replaced, got %d", got)
	}
}

func TestVanillaDungeonItemPlacement(t *testing.T) {
	opts := options.Default()
	opts.RandomizeBigKeys = options.DungeonItemVanilla
	opts.RandomizeSmallKeys = options.DungeonItemVanilla
	opts.RandomizeMapCompass = options.DungeonItemVanilla
	res, err := New(Config{Options: opts, Seed: 1}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if res.Placed["Dragon Roost Cavern - Big Key Chest"] != "DRC Big Key" {
		t.Fatal("DRC Big Key not placed vanilla")
	}
	placedSmallKeys := 0
	for _, loc := range VanillaDungeonItemLocations["DRC Small Key"] {
		if res.Placed[loc] == "DRC Small Key" {
			placedSmallKeys++
		}
	}
	if placedSmallKeys != items.MustGet("DRC Small Key").Quantity {
		t.Fatalf("placed %d DRC small keys, want %d", placedSmallKeys,
			items.MustGet("DRC Small Key").Quantity)
	}
	for _, name := range []string{"DRC Big Key", "DRC Small Key", "FF Dungeon Map"} {
		if countItem(res.Pool, name) != 0 {
			t.Fatalf("%s should not be in the shuffled pool", name)
		}
	}
}

func TestDungeonModeKeepsKeysInPool(t *testing.T) {
	res, err := New(Config{Options: options.Default(), Seed: 1}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Default settings shuffle keys but start with maps and compasses.
	if got := countItem(res.Pool, "DRC Small Key"); got != 4 {
		t.Fatalf("pool holds %d DRC small keys, want 4", got)
	}
	if countItem(res.Precollected, "DRC Dungeon Map") != 1 {
		t.Fatal("default settings should precollect dungeon maps")
	}
}

func TestProgressionNeverExceedsQuantity(t *testing.T) {
	res, err := New(Config{Options: options.Default(), Seed: 1}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	counts := make(map[string]int)
	for _, name := range res.Pool {
		counts[name]++
	}
	for _, name := range res.Precollected {
		counts[name]++
	}
	for name, count := range counts {
		data := items.MustGet(name)
		if data.Classification.IsProgression() && count > data.Quantity {
			t.Errorf("%s appears %d times, quantity is %d", name, count, data.Quantity)
		}
	}
}

func TestBannedDungeonItemsAreFiller(t *testing.T) {
	opts := options.Default()
	opts.RequiredBosses = true
	g := New(Config{Options: opts, BannedDungeons: []string{"FW"}, Seed: 1})

	if g.Classification("FW Big Key").IsProgression() {
		t.Fatal("banned dungeon big key should be filler")
	}
	if !g.Classification("DRC Big Key").IsProgression() {
		t.Fatal("required dungeon big key should stay progression")
	}
}

func TestDeterministicForSeed(t *testing.T) {
	first, err := New(Config{Options: options.Default(), Seed: 42}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := New(Config{Options: options.Default(), Seed: 42}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(first.Pool) != len(second.Pool) {
		t.Fatal("same seed produced different pool sizes")
	}
	for i := range first.Pool {
		if first.Pool[i] != second.Pool[i] {
			t.Fatalf("same seed diverged at index %d", i)
		}
	}
}

func TestVanillaPlacementConflictErrors(t *testing.T) {
	placed := map[string]string{
		"Forbidden Woods - Vine Maze Right Chest": "FW Small Key",
	}
	err := placeVanilla(placed, "FW Small Key")
	if !errors.Is(err, ErrFill) {
		t.Fatalf("expected ErrFill, got %v", err)
	}
}
