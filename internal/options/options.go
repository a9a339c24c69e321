package options

import "fmt"

// SwordMode controls how Progressive Swords enter the pool.
type SwordMode string

const (
	SwordModeStartWith       SwordMode = "start_with_sword"
	SwordModeNoStartingSword SwordMode = "no_starting_sword"
	SwordModeSwordless       SwordMode = "swordless"
)

// Difficulty tiers form inclusive thresholds: very_hard satisfies hard, hard
// satisfies normal.
type Difficulty string

const (
	DifficultyNone     Difficulty = "none"
	DifficultyNormal   Difficulty = "normal"
	DifficultyHard     Difficulty = "hard"
	DifficultyVeryHard Difficulty = "very_hard"
)

// DungeonItemMode controls where a class of dungeon items may be placed.
type DungeonItemMode string

const (
	DungeonItemStartWith DungeonItemMode = "startwith"
	DungeonItemVanilla   DungeonItemMode = "vanilla"
	DungeonItemDungeon   DungeonItemMode = "dungeon"
	DungeonItemAnywhere  DungeonItemMode = "anywhere"
)

// BetterFiller selects which chart classes are swapped out of the filler pool
// for consumable pickups.
type BetterFiller string

const (
	BetterFillerStandard             BetterFiller = "standard_filler"
	BetterFillerRemoveTreasureCharts BetterFiller = "remove_treasure_charts"
	BetterFillerRemoveTriforceCharts BetterFiller = "remove_triforce_charts"
	BetterFillerRemoveBothCharts     BetterFiller = "remove_both_charts"
)

// Options captures the player-chosen generation settings this world reads.
// The schema generator reflects over this struct, so keep the tags accurate.
type Options struct {
	SwordMode                 SwordMode       `json:"sword_mode" jsonschema:"title=Sword mode,enum=start_with_sword,enum=no_starting_sword,enum=swordless"`
	RequiredBosses            bool            `json:"required_bosses" jsonschema:"title=Required bosses mode"`
	ProgressionTreasureCharts bool            `json:"progression_treasure_charts" jsonschema:"title=Treasure charts are progression"`
	ProgressionTriforceCharts bool            `json:"progression_triforce_charts" jsonschema:"title=Triforce charts are progression"`
	LogicObscurity            Difficulty      `json:"logic_obscurity" jsonschema:"title=Obscure tricks,enum=none,enum=normal,enum=hard,enum=very_hard"`
	LogicPrecision            Difficulty      `json:"logic_precision" jsonschema:"title=Precise tricks,enum=none,enum=normal,enum=hard,enum=very_hard"`
	EnableTunerLogic          bool            `json:"enable_tuner_logic" jsonschema:"title=Tingle Tuner logic"`
	RandomizeBigKeys          DungeonItemMode `json:"randomize_bigkeys" jsonschema:"title=Big key placement,enum=startwith,enum=vanilla,enum=dungeon,enum=anywhere"`
	RandomizeSmallKeys        DungeonItemMode `json:"randomize_smallkeys" jsonschema:"title=Small key placement,enum=startwith,enum=vanilla,enum=dungeon,enum=anywhere"`
	RandomizeMapCompass       DungeonItemMode `json:"randomize_mapcompass" jsonschema:"title=Map and compass placement,enum=startwith,enum=vanilla,enum=dungeon,enum=anywhere"`
	BetterFiller              BetterFiller    `json:"better_filler" jsonschema:"title=Better filler,enum=standard_filler,enum=remove_treasure_charts,enum=remove_triforce_charts,enum=remove_both_charts"`
	DeathLink                 bool            `json:"death_link" jsonschema:"title=Death link"`
}

// Default returns the out-of-the-box option set.
func Default() Options {
	return Options{
		SwordMode:           SwordModeStartWith,
		LogicObscurity:      DifficultyNone,
		LogicPrecision:      DifficultyNone,
		RandomizeBigKeys:    DungeonItemDungeon,
		RandomizeSmallKeys:  DungeonItemDungeon,
		RandomizeMapCompass: DungeonItemStartWith,
		BetterFiller:        BetterFillerStandard,
	}
}

// Normalized returns a copy with empty enum fields replaced by defaults.
func (o Options) Normalized() Options {
	normalized := o
	defaults := Default()
	if normalized.SwordMode == "" {
		normalized.SwordMode = defaults.SwordMode
	}
	if normalized.LogicObscurity == "" {
		normalized.LogicObscurity = defaults.LogicObscurity
	}
	if normalized.LogicPrecision == "" {
		normalized.LogicPrecision = defaults.LogicPrecision
	}
	if normalized.RandomizeBigKeys == "" {
		normalized.RandomizeBigKeys = defaults.RandomizeBigKeys
	}
	if normalized.RandomizeSmallKeys == "" {
		normalized.RandomizeSmallKeys = defaults.RandomizeSmallKeys
	}
	if normalized.RandomizeMapCompass == "" {
		normalized.RandomizeMapCompass = defaults.RandomizeMapCompass
	}
	if normalized.BetterFiller == "" {
		normalized.BetterFiller = defaults.BetterFiller
	}
	return normalized
}

// Validate rejects enum values the generator does not understand.
func (o Options) Validate() error {
	switch o.SwordMode {
	case SwordModeStartWith, SwordModeNoStartingSword, SwordModeSwordless:
	default:
		return fmt.Errorf("options: invalid sword_mode %q", o.SwordMode)
	}
	for name, d := range map[string]Difficulty{"logic_obscurity": o.LogicObscurity, "logic_precision": o.LogicPrecision} {
		switch d {
		case DifficultyNone, DifficultyNormal, DifficultyHard, DifficultyVeryHard:
		default:
			return fmt.Errorf("options: invalid %s %q", name, d)
		}
	}
	for name, m := range map[string]DungeonItemMode{
		"randomize_bigkeys":    o.RandomizeBigKeys,
		"randomize_smallkeys":  o.RandomizeSmallKeys,
		"randomize_mapcompass": o.RandomizeMapCompass,
	} {
		switch m {
		case DungeonItemStartWith, DungeonItemVanilla, DungeonItemDungeon, DungeonItemAnywhere:
		default:
			return fmt.Errorf("options: invalid %s %q", name, m)
		}
	}
	switch o.BetterFiller {
	case BetterFillerStandard, BetterFillerRemoveTreasureCharts, BetterFillerRemoveTriforceCharts, BetterFillerRemoveBothCharts:
	default:
		return fmt.Errorf("options: invalid better_filler %q", o.BetterFiller)
	}
	return nil
}

// AtLeast reports whether d meets the inclusive threshold min.
func (d Difficulty) AtLeast(min Difficulty) bool {
	return d.rank() >= min.rank()
}

func (d Difficulty) rank() int {
	switch d {
	case DifficultyNormal:
		return 1
	case DifficultyHard:
		return 2
	case DifficultyVeryHard:
		return 3
	default:
		return 0
	}
}
