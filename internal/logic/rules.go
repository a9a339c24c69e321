package logic

import (
	"strings"

	"tww-multiworld/world/internal/items"
	"tww-multiworld/world/internal/options"
)

const swordlessMode = options.SwordModeSwordless

const (
	difficultyNormal   = options.DifficultyNormal
	difficultyHard     = options.DifficultyHard
	difficultyVeryHard = options.DifficultyVeryHard
)

// Ruleset binds location rules to one world's settings. The chart mapping and
// required-boss list are fixed at generation time; rules close over them.
type Ruleset struct {
	opts                  options.Options
	charts                map[int]string
	requiredBossLocations []string
}

// Config carries the per-world inputs the rules depend on.
type Config struct {
	Options options.Options
	// ChartMapping overrides the vanilla island-to-chart assignment when
	// charts are shuffled. Nil means vanilla.
	ChartMapping map[int]string
	// RequiredBossLocations lists the boss heart container locations the
	// goal requires when required bosses mode is on.
	RequiredBossLocations []string
}

// NewRuleset builds the rule evaluator for one world.
func NewRuleset(cfg Config) *Ruleset {
	charts := cfg.ChartMapping
	if charts == nil {
		charts = items.VanillaChartMapping
	}
	return &Ruleset{
		opts:                  cfg.Options.Normalized(),
		charts:                charts,
		requiredBossLocations: cfg.RequiredBossLocations,
	}
}

// CompletionCondition is the goal check: the world is done once the victory
// event has been collected.
func (r *Ruleset) CompletionCondition() Rule {
	return func(s State) bool { return s.Has("Victory", 1) }
}

func (r *Ruleset) hasChartForIsland(s State, island int) bool {
	chart := r.charts[island]
	if strings.Contains(chart, "Triforce Chart") {
		return s.Has(chart, 1) && r.hasAnyWalletUpgrade(s)
	}
	return s.Has(chart, 1)
}

func (r *Ruleset) canDefeatAllRequiredBosses(s State) bool {
	for _, loc := range r.requiredBossLocations {
		if !s.CanReach(loc) {
			return false
		}
	}
	return true
}

func (r *Ruleset) hasAllTingleStatues(s State) bool {
	for _, name := range items.Groups["Tingle Statues"] {
		if !s.Has(name, 1) {
			return false
		}
	}
	return true
}

// sunkenTreasureIsland maps each sunken treasure location to its island
// number, which doubles as the bit index in the charts bitfield.
var sunkenTreasureIsland = map[string]int{
	"Forsaken Fortress Sector - Sunken Treasure": 1,
	"Star Island - Sunken Treasure":              2,
	"Northern Fairy Island - Sunken Treasure":    3,
	"Gale Isle - Sunken Treasure":                4,
	"Crescent Moon Island - Sunken Treasure":     5,
	"Seven-Star Isles - Sunken Treasure":         6,
	"Overlook Island - Sunken Treasure":          7,
	"Four-Eye Reef - Sunken Treasure":            8,
	"Mother and Child Isles - Sunken Treasure":   9,
	"Spectacle Island - Sunken Treasure":         10,
	"Windfall Island - Sunken Treasure":          11,
	"Pawprint Isle - Sunken Treasure":            12,
	"Dragon Roost Island - Sunken Treasure":      13,
	"Flight Control Platform - Sunken Treasure":  14,
	"Western Fairy Island - Sunken Treasure":     15,
	"Rock Spire Isle - Sunken Treasure":          16,
	"Tingle Island - Sunken Treasure":            17,
	"Northern Triangle Island - Sunken Treasure": 18,
	"Eastern Fairy Island - Sunken Treasure":     19,
	"Fire Mountain - Sunken Treasure":            20,
	"Star Belt Archipelago - Sunken Treasure":    21,
	"Three-Eye Reef - Sunken Treasure":           22,
	"Greatfish Isle - Sunken Treasure":           23,
	"Cyclops Reef - Sunken Treasure":             24,
	"Six-Eye Reef - Sunken Treasure":             25,
	"Tower of the Gods Sector - Sunken Treasure": 26,
	"Eastern Triangle Island - Sunken Treasure":  27,
	"Thorned Fairy Island - Sunken Treasure":     28,
	"Needle Rock Isle - Sunken Treasure":         29,
	"Islet of Steel - Sunken Treasure":           30,
	"Stone Watcher Island - Sunken Treasure":     31,
	"Southern Triangle Island - Sunken Treasure": 32,
	"Private Oasis - Sunken Treasure":            33,
	"Bomb Island - Sunken Treasure":              34,
	"Bird's Peak Rock - Sunken Treasure":         35,
	"Diamond Steppe Island - Sunken Treasure":    36,
	"Five-Eye Reef - Sunken Treasure":            37,
	"Shark Island - Sunken Treasure":             38,
	"Southern Fairy Island - Sunken Treasure":    39,
	"Ice Ring Isle - Sunken Treasure":            40,
	"Forest Haven - Sunken Treasure":             41,
	"Cliff Plateau Isles - Sunken Treasure":      42,
	"Horseshoe Island - Sunken Treasure":         43,
	"Outset Island - Sunken Treasure":            44,
	"Headstone Island - Sunken Treasure":         45,
	"Two-Eye Reef - Sunken Treasure":             46,
	"Angular Isles - Sunken Treasure":            47,
	"Boating Course - Sunken Treasure":           48,
	"Five-Star Isles - Sunken Treasure":          49,
}

// Rules returns the rule for every location in the world, keyed by location
// name. Every location in the table gets exactly one rule.
func (r *Ruleset) Rules() map[string]Rule {
	always := func(State) bool { return true }

	rules := map[string]Rule{
		// Outset Island
		"Outset Island - Underneath Link's House":      always,
		"Outset Island - Mesa the Grasscutter's House": always,
		"Outset Island - Orca - Give 10 Knight's Crests": func(s State) bool {
			return s.Has("Spoils Bag", 1) && r.canFarmKnightsCrests(s) &&
				r.canSwordFightWithOrca(s) && r.hasMagicMeter(s)
		},
		"Outset Island - Great Fairy": func(s State) bool {
			return r.canAccessOutsetFairyFountain(s)
		},
		"Outset Island - Jabun's Cave": func(s State) bool { return s.Has("Bombs", 1) },
		"Outset Island - Dig up Black Soil": func(s State) bool {
			return s.Has("Bait Bag", 1) && r.canBuyBait(s) && s.Has("Power Bracelets", 1)
		},
		"Outset Island - Savage Labyrinth - Floor 30": func(s State) bool {
			return r.canAccessSavageLabyrinth(s) &&
				r.canDefeatKeese(s) &&
				r.canDefeatMiniblins(s) &&
				r.canDefeatRedChuchus(s) &&
				r.canDefeatMagtails(s) &&
				r.canDefeatFireKeese(s) &&
				r.canDefeatPeahats(s) &&
				r.canDefeatGreenChuchus(s) &&
				r.canDefeatBokoBabas(s) &&
				r.canDefeatMothulas(s) &&
				r.canDefeatWingedMothulas(s) &&
				r.canDefeatWizzrobes(s) &&
				r.canDefeatArmos(s) &&
				r.canDefeatYellowChuchus(s) &&
				r.canDefeatRedBubbles(s) &&
				r.canDefeatDarknuts(s) &&
				r.canPlayWindsRequiem(s) &&
				(s.Has("Grappling Hook", 1) || r.hasHerosSword(s) || s.Has("Skull Hammer", 1))
		},
		"Outset Island - Savage Labyrinth - Floor 50": func(s State) bool {
			return s.CanReach("Outset Island - Savage Labyrinth - Floor 30") &&
				r.canAimMirrorShield(s) &&
				r.canDefeatRedeads(s) &&
				r.canDefeatBlueBubbles(s) &&
				r.canDefeatDarkChuchus(s) &&
				r.canDefeatPoes(s) &&
				r.canDefeatStalfos(s) &&
				s.Has("Skull Hammer", 1)
		},

		// Windfall Island
		"Windfall Island - Jail - Tingle - First Gift":  always,
		"Windfall Island - Jail - Tingle - Second Gift": always,
		"Windfall Island - Jail - Maze Chest":           always,
		"Windfall Island - Chu Jelly Juice Shop - Give 15 Green Chu Jelly": func(s State) bool {
			return r.canFarmGreenChuJelly(s)
		},
		"Windfall Island - Chu Jelly Juice Shop - Give 15 Blue Chu Jelly": func(s State) bool {
			return r.canObtain15BlueChuJelly(s)
		},
		"Windfall Island - Ivan - Catch Killer Bees":       always,
		"Windfall Island - Mrs. Marie - Catch Killer Bees": always,
		"Windfall Island - Mrs. Marie - Give 1 Joy Pendant": func(s State) bool {
			return s.Has("Spoils Bag", 1)
		},
		"Windfall Island - Mrs. Marie - Give 21 Joy Pendants": func(s State) bool {
			return s.Has("Spoils Bag", 1) && r.canFarmJoyPendants(s)
		},
		"Windfall Island - Mrs. Marie - Give 40 Joy Pendants": func(s State) bool {
			return s.Has("Spoils Bag", 1) && r.canFarmJoyPendants(s)
		},
		"Windfall Island - Lenzo's House - Left Chest": func(s State) bool {
			return r.canPlayWindsRequiem(s) && r.hasPictoBox(s)
		},
		"Windfall Island - Lenzo's House - Right Chest": func(s State) bool {
			return r.canPlayWindsRequiem(s) && r.hasPictoBox(s)
		},
		"Windfall Island - Lenzo's House - Become Lenzo's Assistant": func(s State) bool {
			return r.hasPictoBox(s)
		},
		"Windfall Island - Lenzo's House - Bring Forest Firefly": func(s State) bool {
			return r.hasPictoBox(s) && s.Has("Empty Bottle", 1) && r.canAccessForestHaven(s)
		},
		"Windfall Island - House of Wealth Chest": always,
		"Windfall Island - Maggie's Father - Give 20 Skull Necklaces": func(s State) bool {
			return r.rescuedAryll(s) && s.Has("Spoils Bag", 1) && r.canFarmSkullNecklaces(s)
		},
		"Windfall Island - Maggie - Free Item": func(s State) bool { return r.rescuedAryll(s) },
		"Windfall Island - Maggie - Delivery Reward": func(s State) bool {
			return r.rescuedAryll(s) && s.Has("Delivery Bag", 1) && s.Has("Moblin's Letter", 1)
		},
		"Windfall Island - Cafe Bar - Postman": func(s State) bool {
			return r.rescuedAryll(s) && s.Has("Delivery Bag", 1) && s.Has("Maggie's Letter", 1)
		},
		"Windfall Island - Kreeb - Light Up Lighthouse": func(s State) bool {
			return r.canPlayWindsRequiem(s) && r.hasFireArrows(s)
		},
		"Windfall Island - Transparent Chest": func(s State) bool {
			return r.canPlayWindsRequiem(s) && r.hasFireArrows(s) &&
				(r.canFlyWithDekuLeafOutdoors(s) || s.Has("Hookshot", 1))
		},
		"Windfall Island - Tott - Teach Rhythm": func(s State) bool { return s.Has("Wind Waker", 1) },
		"Windfall Island - Pirate Ship":         always,
		"Windfall Island - 5 Rupee Auction":     always,
		"Windfall Island - 40 Rupee Auction":    always,
		"Windfall Island - 60 Rupee Auction":    always,
		"Windfall Island - 80 Rupee Auction":    always,
		"Windfall Island - Zunari - Stock Exotic Flower in Zunari's Shop": func(s State) bool {
			return r.rescuedAryll(s) && s.Has("Delivery Bag", 1)
		},
		"Windfall Island - Sam - Decorate the Town": func(s State) bool {
			return r.rescuedAryll(s) && s.Has("Delivery Bag", 1)
		},
		"Windfall Island - Mila - Follow the Thief":            func(s State) bool { return r.rescuedAryll(s) },
		"Windfall Island - Battlesquid - First Prize":          always,
		"Windfall Island - Battlesquid - Second Prize":         always,
		"Windfall Island - Battlesquid - Under 20 Shots Prize": always,
		"Windfall Island - Pompie and Vera - Secret Meeting Photo": func(s State) bool {
			return r.canPlayWindsRequiem(s) && r.hasPictoBox(s)
		},
		"Windfall Island - Kamo - Full Moon Photo": func(s State) bool {
			return r.hasDeluxePictoBox(s) && r.canPlaySongOfPassing(s)
		},
		"Windfall Island - Minenco - Miss Windfall Photo": func(s State) bool {
			return r.hasDeluxePictoBox(s)
		},
		"Windfall Island - Linda and Anton": func(s State) bool {
			return r.hasDeluxePictoBox(s) && r.canPlaySongOfPassing(s)
		},

		// Dragon Roost Island
		"Dragon Roost Island - Wind Shrine": func(s State) bool { return s.Has("Wind Waker", 1) },
		"Dragon Roost Island - Rito Aerie - Give Hoskit 20 Golden Feathers": func(s State) bool {
			return s.Has("Spoils Bag", 1) && r.canFarmGoldenFeathers(s)
		},
		"Dragon Roost Island - Chest on Top of Boulder": func(s State) bool {
			return r.hasHerosBow(s) ||
				(s.Has("Bait Bag", 1) && r.canBuyHyoiPears(s)) ||
				s.Has("Boomerang", 1) ||
				s.Has("Bombs", 1)
		},
		"Dragon Roost Island - Fly Across Platforms Around Island": func(s State) bool {
			return r.canFlyWithDekuLeafOutdoors(s) &&
				(r.canCutGrass(s) || r.hasMagicMeterUpgrade(s))
		},
		"Dragon Roost Island - Rito Aerie - Mail Sorting": always,
		"Dragon Roost Island - Secret Cave": func(s State) bool {
			return r.canAccessDragonRoostIslandSecretCave(s) &&
				r.canDefeatKeese(s) && r.canDefeatRedChuchus(s)
		},

		// Dragon Roost Cavern
		"Dragon Roost Cavern - First Room": func(s State) bool {
			return r.canAccessDragonRoostCavern(s)
		},
		"Dragon Roost Cavern - Alcove With Water Jugs": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 1)
		},
		"Dragon Roost Cavern - Water Jug on Upper Shelf": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 1)
		},
		"Dragon Roost Cavern - Boarded Up Chest": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 1)
		},
		"Dragon Roost Cavern - Chest Across Lava Pit": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 2) &&
				(s.Has("Grappling Hook", 1) ||
					r.canFlyWithDekuLeafIndoors(s) ||
					(s.Has("Hookshot", 1) && r.obscure1()))
		},
		"Dragon Roost Cavern - Rat Room": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 2)
		},
		"Dragon Roost Cavern - Rat Room Boarded Up Chest": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 2)
		},
		"Dragon Roost Cavern - Bird's Nest": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 3)
		},
		"Dragon Roost Cavern - Dark Room": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 4)
		},
		"Dragon Roost Cavern - Tingle Chest in Hub Room": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 4) &&
				r.hasTingleBombs(s)
		},
		"Dragon Roost Cavern - Pot on Upper Shelf in Pot Room": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 4)
		},
		"Dragon Roost Cavern - Pot Room Chest": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 4)
		},
		"Dragon Roost Cavern - Miniboss": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 4)
		},
		"Dragon Roost Cavern - Under Rope Bridge": func(s State) bool {
			return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 4) &&
				(s.Has("Grappling Hook", 1) || r.canFlyWithDekuLeafOutdoors(s))
		},
		"Dragon Roost Cavern - Tingle Statue Chest": func(s State) bool {
			return r.canReachDragonRoostCavernGapingMaw(s) &&
				s.Has("Grappling Hook", 1) && r.hasTingleBombs(s)
		},
		"Dragon Roost Cavern - Big Key Chest": func(s State) bool {
			return r.canReachDragonRoostCavernGapingMaw(s) &&
				s.Has("Grappling Hook", 1) && r.canStunMagtails(s)
		},
		"Dragon Roost Cavern - Boss Stairs Right Chest": func(s State) bool {
			return r.canReachDragonRoostCavernBossStairs(s)
		},
		"Dragon Roost Cavern - Boss Stairs Left Chest": func(s State) bool {
			return r.canReachDragonRoostCavernBossStairs(s)
		},
		"Dragon Roost Cavern - Boss Stairs Right Pot": func(s State) bool {
			return r.canReachDragonRoostCavernBossStairs(s)
		},
		"Dragon Roost Cavern - Gohma Heart Container": func(s State) bool {
			return r.canAccessGohmaBossArena(s) && r.canDefeatGohma(s)
		},

		// Forest Haven
		"Forest Haven - On Tree Branch": func(s State) bool {
			return r.canAccessForestHaven(s) && r.canClimbForestHavenExterior(s)
		},
		"Forest Haven - Small Island Chest": func(s State) bool {
			return r.canAccessForestHaven(s) && r.canClimbForestHavenExterior(s) &&
				r.canFlyWithDekuLeafOutdoors(s) &&
				(r.canCutGrass(s) || r.hasMagicMeterUpgrade(s))
		},

		// Forbidden Woods
		"Forbidden Woods - First Room": func(s State) bool {
			return r.canAccessForbiddenWoods(s)
		},
		"Forbidden Woods - Inside Hollow Tree's Mouth": func(s State) bool {
			return r.canAccessForbiddenWoods(s) &&
				(r.canDefeatDoorFlowers(s) || r.canDefeatBokoBabas(s))
		},
		"Forbidden Woods - Climb to Top Using Boko Baba Bulbs": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				r.canDefeatDoorFlowers(s)
		},
		"Forbidden Woods - Pot High Above Hollow Tree": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s)
		},
		"Forbidden Woods - Hole in Tree": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				r.canDefeatBokoBabas(s)
		},
		"Forbidden Woods - Morth Pit": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				r.canDefeatBokoBabas(s) && s.Has("Grappling Hook", 1)
		},
		"Forbidden Woods - Vine Maze Left Chest": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				r.canDefeatBokoBabas(s) && s.Has("Grappling Hook", 1)
		},
		"Forbidden Woods - Vine Maze Right Chest": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				r.canDefeatBokoBabas(s) && s.Has("Grappling Hook", 1)
		},
		"Forbidden Woods - Highest Pot in Vine Maze": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				r.canDefeatBokoBabas(s) && s.Has("Grappling Hook", 1)
		},
		"Forbidden Woods - Tall Room Before Miniboss": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				r.canDefeatBokoBabas(s) && s.Has("Grappling Hook", 1) &&
				s.Has("FW Small Key", 1) &&
				(r.canDefeatPeahats(s) || r.precise2())
		},
		"Forbidden Woods - Mothula Miniboss Room": func(s State) bool {
			return r.canAccessForbiddenWoodsMinibossArena(s) && r.canDefeatWingedMothulas(s)
		},
		"Forbidden Woods - Past Seeds Hanging by Vines": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				r.canDefeatBokoBabas(s) && s.Has("Grappling Hook", 1) &&
				s.Has("FW Small Key", 1) && r.canDefeatDoorFlowers(s) &&
				(r.canDestroySeedsHangingByVines(s) || r.precise1())
		},
		"Forbidden Woods - Chest Across Red Hanging Flower": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				r.canDefeatBokoBabas(s) && s.Has("Grappling Hook", 1) &&
				s.Has("Boomerang", 1)
		},
		"Forbidden Woods - Tingle Statue Chest": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				s.Has("Grappling Hook", 1) && s.Has("Boomerang", 1) &&
				(r.hasTingleBombs(s) || r.canActivateTingleBombTriggersWithoutTingleTuner(s))
		},
		"Forbidden Woods - Chest in Locked Tree Trunk": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				r.canDefeatBokoBabas(s) && s.Has("Grappling Hook", 1) &&
				s.Has("Boomerang", 1)
		},
		"Forbidden Woods - Big Key Chest": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				r.canDefeatBokoBabas(s) && s.Has("Grappling Hook", 1) &&
				s.Has("Boomerang", 1)
		},
		"Forbidden Woods - Double Mothula Room": func(s State) bool {
			return r.canAccessForbiddenWoods(s) && r.canFlyWithDekuLeafIndoors(s) &&
				r.canDefeatBokoBabas(s) &&
				(r.canDefeatDoorFlowers(s) || s.Has("Grappling Hook", 1)) &&
				r.canDefeatMothulas(s)
		},
		"Forbidden Woods - Kalle Demos Heart Container": func(s State) bool {
			return r.canAccessKalleDemosBossArena(s) && r.canDefeatKalleDemos(s)
		},

		// Greatfish Isle
		"Greatfish Isle - Hidden Chest": func(s State) bool {
			return r.canFlyWithDekuLeafOutdoors(s)
		},

		// Tower of the Gods
		"Tower of the Gods - Chest Behind Bombable Walls": func(s State) bool {
			return r.canAccessTowerOfTheGods(s) && s.Has("Bombs", 1)
		},
		"Tower of the Gods - Pot Behind Bombable Walls": func(s State) bool {
			return r.canAccessTowerOfTheGods(s) && s.Has("Bombs", 1)
		},
		"Tower of the Gods - Hop Across Floating Boxes": func(s State) bool {
			return r.canAccessTowerOfTheGods(s)
		},
		"Tower of the Gods - Light Two Torches": func(s State) bool {
			return r.canAccessTowerOfTheGods(s) && s.Has("Bombs", 1)
		},
		"Tower of the Gods - Skulls Room Chest": func(s State) bool {
			return r.canAccessTowerOfTheGods(s) && s.Has("Bombs", 1)
		},
		"Tower of the Gods - Shoot Eye Above Skulls Room Chest": func(s State) bool {
			return r.canAccessTowerOfTheGods(s) && s.Has("Bombs", 1) && r.hasHerosBow(s)
		},
		"Tower of the Gods - Tingle Statue Chest": func(s State) bool {
			return r.canReachTowerOfTheGodsSecondFloor(s) && r.hasTingleBombs(s)
		},
		"Tower of the Gods - First Chest Guarded by Armos Knights": func(s State) bool {
			return r.canReachTowerOfTheGodsSecondFloor(s) && r.hasHerosBow(s)
		},
		"Tower of the Gods - Stone Tablet": func(s State) bool {
			return r.canReachTowerOfTheGodsSecondFloor(s) &&
				(r.canBringEastServantOfTheTower(s) ||
					r.canBringWestServantOfTheTower(s) ||
					r.canBringNorthServantOfTheTower(s)) &&
				s.Has("Wind Waker", 1)
		},
		"Tower of the Gods - Darknut Miniboss Room": func(s State) bool {
			return r.canAccessTowerOfTheGodsMinibossArena(s) && r.canDefeatDarknuts(s)
		},
		"Tower of the Gods - Second Chest Guarded by Armos Knights": func(s State) bool {
			return r.canReachTowerOfTheGodsSecondFloor(s) && s.Has("Bombs", 1) &&
				r.canPlayWindsRequiem(s)
		},
		"Tower of the Gods - Floating Platforms Room": func(s State) bool {
			return r.canReachTowerOfTheGodsSecondFloor(s) &&
				(r.hasHerosBow(s) ||
					(r.canFlyWithDekuLeafIndoors(s) && r.precise1()) ||
					(s.Has("Hookshot", 1) && r.obscure1()))
		},
		"Tower of the Gods - Top of Floating Platforms Room": func(s State) bool {
			return r.canReachTowerOfTheGodsSecondFloor(s) && r.hasHerosBow(s)
		},
		"Tower of the Gods - Eastern Pot in Big Key Chest Room": func(s State) bool {
			return r.canReachTowerOfTheGodsThirdFloor(s)
		},
		"Tower of the Gods - Big Key Chest": func(s State) bool {
			return r.canReachTowerOfTheGodsThirdFloor(s)
		},
		"Tower of the Gods - Gohdan Heart Container": func(s State) bool {
			return r.canAccessGohdanBossArena(s) && r.canDefeatGohdan(s)
		},

		// Hyrule
		"Hyrule - Master Sword Chamber": func(s State) bool {
			return r.canAccessMasterSwordChamber(s) && r.canDefeatMightyDarknuts(s)
		},

		// Forsaken Fortress
		"Forsaken Fortress - Phantom Ganon": func(s State) bool {
			return r.canReachAndDefeatPhantomGanon(s)
		},
		"Forsaken Fortress - Chest Outside Upper Jail Cell": func(s State) bool {
			return r.canGetInsideForsakenFortress(s) &&
				(r.canFlyWithDekuLeafIndoors(s) || s.Has("Hookshot", 1) || r.obscure1())
		},
		"Forsaken Fortress - Chest Inside Lower Jail Cell": func(s State) bool {
			return r.canGetInsideForsakenFortress(s)
		},
		"Forsaken Fortress - Chest Guarded By Bokoblin": func(s State) bool {
			return r.canGetInsideForsakenFortress(s)
		},
		"Forsaken Fortress - Chest on Bed": func(s State) bool {
			return r.canGetInsideForsakenFortress(s)
		},
		"Forsaken Fortress - Helmaroc King Heart Container": func(s State) bool {
			return r.canAccessHelmarocKingBossArena(s) && r.canDefeatHelmarocKing(s)
		},

		// Mother and Child Isles
		"Mother and Child Isles - Inside Mother Isle": func(s State) bool {
			return r.canPlayBalladOfGales(s)
		},

		// Fire Mountain
		"Fire Mountain - Cave - Chest": func(s State) bool {
			return r.canAccessFireMountainSecretCave(s) && r.canDefeatMagtails(s)
		},
		"Fire Mountain - Lookout Platform Chest": always,
		"Fire Mountain - Lookout Platform - Destroy the Cannons": func(s State) bool {
			return r.canDestroyCannons(s)
		},
		"Fire Mountain - Big Octo": func(s State) bool {
			return r.canDefeatBigOctos(s) && s.Has("Grappling Hook", 1)
		},

		// Ice Ring Isle
		"Ice Ring Isle - Frozen Chest": func(s State) bool { return r.hasFireArrows(s) },
		"Ice Ring Isle - Cave - Chest": func(s State) bool {
			return r.canAccessIceRingIsleSecretCave(s)
		},
		"Ice Ring Isle - Inner Cave - Chest": func(s State) bool {
			return r.canAccessIceRingIsleInnerCave(s) && r.hasFireArrows(s)
		},

		// Headstone Island
		"Headstone Island - Top of the Island": func(s State) bool {
			return s.Has("Bait Bag", 1) && r.canBuyHyoiPears(s)
		},
		"Headstone Island - Submarine": func(s State) bool { return r.canDefeatBombchus(s) },

		// Earth Temple
		"Earth Temple - Transparent Chest In Warp Pot Room": func(s State) bool {
			return r.canAccessEarthTemple(s) && r.canPlayCommandMelody(s)
		},
		"Earth Temple - Behind Curtain In Warp Pot Room": func(s State) bool {
			return r.canAccessEarthTemple(s) && r.canPlayCommandMelody(s) &&
				r.hasFireArrows(s) &&
				(s.Has("Boomerang", 1) || s.Has("Hookshot", 1))
		},
		"Earth Temple - Transparent Chest in First Crypt": func(s State) bool {
			return r.canReachEarthTempleRightPath(s) && s.Has("Power Bracelets", 1) &&
				(r.canPlayCommandMelody(s) || r.hasMirrorShield(s))
		},
		"Earth Temple - Chest Behind Destructible Walls": func(s State) bool {
			return r.canReachEarthTempleRightPath(s) && r.hasMirrorShield(s)
		},
		"Earth Temple - Chest In Three Blocks Room": func(s State) bool {
			return r.canReachEarthTempleLeftPath(s) && r.hasFireArrows(s) &&
				s.Has("Power Bracelets", 1) && r.canDefeatFloormasters(s) &&
				(r.canPlayCommandMelody(s) || r.canAimMirrorShield(s))
		},
		"Earth Temple - Chest Behind Statues": func(s State) bool {
			return r.canReachEarthTempleMoblinsAndPoesRoom(s) &&
				(r.canPlayCommandMelody(s) || r.canAimMirrorShield(s))
		},
		"Earth Temple - Casket in Second Crypt": func(s State) bool {
			return r.canReachEarthTempleMoblinsAndPoesRoom(s)
		},
		"Earth Temple - Stalfos Miniboss Room": func(s State) bool {
			return r.canAccessEarthTempleMinibossArena(s) &&
				(r.canDefeatStalfos(s) || s.Has("Hookshot", 1))
		},
		"Earth Temple - Tingle Statue Chest": func(s State) bool {
			return r.canReachEarthTempleBasement(s) && r.hasTingleBombs(s)
		},
		"Earth Temple - End of Foggy Room With Floormasters": func(s State) bool {
			return r.canReachEarthTempleRedeadHubRoom(s) &&
				(r.canPlayCommandMelody(s) || r.canAimMirrorShield(s))
		},
		"Earth Temple - Kill All Floormasters in Foggy Room": func(s State) bool {
			return r.canReachEarthTempleRedeadHubRoom(s) &&
				(r.canPlayCommandMelody(s) || r.canAimMirrorShield(s)) &&
				r.canDefeatFloormasters(s)
		},
		"Earth Temple - Behind Curtain Next to Hammer Button": func(s State) bool {
			return r.canReachEarthTempleRedeadHubRoom(s) &&
				(r.canPlayCommandMelody(s) || r.canAimMirrorShield(s)) &&
				r.hasFireArrows(s) &&
				(s.Has("Boomerang", 1) || s.Has("Hookshot", 1))
		},
		"Earth Temple - Chest in Third Crypt": func(s State) bool {
			return r.canReachEarthTempleThirdCrypt(s)
		},
		"Earth Temple - Many Mirrors Room Right Chest": func(s State) bool {
			return r.canReachEarthTempleManyMirrorsRoom(s) && r.canPlayCommandMelody(s)
		},
		"Earth Temple - Many Mirrors Room Left Chest": func(s State) bool {
			return r.canReachEarthTempleManyMirrorsRoom(s) && s.Has("Power Bracelets", 1) &&
				r.canPlayCommandMelody(s) && r.canAimMirrorShield(s)
		},
		"Earth Temple - Stalfos Crypt Room": func(s State) bool {
			return r.canReachEarthTempleManyMirrorsRoom(s) && r.canDefeatStalfos(s)
		},
		"Earth Temple - Big Key Chest": func(s State) bool {
			return r.canReachEarthTempleManyMirrorsRoom(s) && s.Has("Power Bracelets", 1) &&
				r.canPlayCommandMelody(s) && r.canAimMirrorShield(s) &&
				(r.canDefeatBlueBubbles(s) ||
					(r.hasHerosBow(s) && r.obscure1()) ||
					((r.hasHerosSword(s) || r.hasAnyMasterSword(s) || s.Has("Skull Hammer", 1)) &&
						r.obscure1() && r.precise1())) &&
				r.canDefeatDarknuts(s)
		},
		"Earth Temple - Jalhalla Heart Container": func(s State) bool {
			return r.canAccessJalhallaBossArena(s) && r.canDefeatJalhalla(s)
		},

		// Wind Temple
		"Wind Temple - Chest Between Two Dirt Patches": func(s State) bool {
			return r.canAccessWindTemple(s) && r.canPlayCommandMelody(s)
		},
		"Wind Temple - Behind Stone Head in Hidden Upper Room": func(s State) bool {
			return r.canAccessWindTemple(s) && r.canPlayCommandMelody(s) &&
				s.Has("Iron Boots", 1) && r.canFlyWithDekuLeafIndoors(s) &&
				s.Has("Hookshot", 1)
		},
		"Wind Temple - Tingle Statue Chest": func(s State) bool {
			return r.canReachWindTempleKidnappingRoom(s) && r.hasTingleBombs(s)
		},
		"Wind Temple - Chest Behind Stone Head": func(s State) bool {
			return r.canReachWindTempleKidnappingRoom(s) && s.Has("Iron Boots", 1) &&
				s.Has("Hookshot", 1)
		},
		"Wind Temple - Chest in Left Alcove": func(s State) bool {
			return r.canReachWindTempleKidnappingRoom(s) && s.Has("Iron Boots", 1) &&
				r.canFanWithDekuLeaf(s)
		},
		"Wind Temple - Big Key Chest": func(s State) bool {
			return r.canReachWindTempleKidnappingRoom(s) && s.Has("Iron Boots", 1) &&
				r.canFanWithDekuLeaf(s) && r.canPlayWindGodsAria(s) &&
				r.canDefeatDarknuts(s)
		},
		"Wind Temple - Chest In Many Cyclones Room": func(s State) bool {
			return r.canReachWindTempleKidnappingRoom(s) &&
				((s.Has("Iron Boots", 1) && r.canFanWithDekuLeaf(s) &&
					r.canFlyWithDekuLeafIndoors(s) &&
					(r.canCutGrass(s) || r.hasMagicMeterUpgrade(s))) ||
					(s.Has("Hookshot", 1) && r.canDefeatBlueBubbles(s) &&
						r.canFlyWithDekuLeafIndoors(s)) ||
					(s.Has("Hookshot", 1) && r.canFlyWithDekuLeafIndoors(s) &&
						r.obscure1() && r.precise2()))
		},
		"Wind Temple - Behind Stone Head in Many Cyclones Room": func(s State) bool {
			return r.canReachEndOfWindTempleManyCyclonesRoom(s) && s.Has("Hookshot", 1)
		},
		"Wind Temple - Chest In Middle Of Hub Room": func(s State) bool {
			return r.canOpenWindTempleUpperGiantGrate(s)
		},
		"Wind Temple - Spike Wall Room - First Chest": func(s State) bool {
			return r.canOpenWindTempleUpperGiantGrate(s) && s.Has("Iron Boots", 1)
		},
		"Wind Temple - Spike Wall Room - Destroy All Cracked Floors": func(s State) bool {
			return r.canOpenWindTempleUpperGiantGrate(s) && s.Has("Iron Boots", 1)
		},
		"Wind Temple - Wizzrobe Miniboss Room": func(s State) bool {
			return r.canAccessWindTempleMinibossArena(s) && r.canDefeatDarknuts(s) &&
				r.canRemovePeahatArmor(s)
		},
		"Wind Temple - Chest at Top of Hub Room": func(s State) bool {
			return r.canActivateWindTempleGiantFan(s)
		},
		"Wind Temple - Chest Behind Seven Armos": func(s State) bool {
			return r.canActivateWindTempleGiantFan(s) && r.canDefeatArmos(s)
		},
		"Wind Temple - Kill All Enemies in Tall Basement Room": func(s State) bool {
			return r.canReachWindTempleTallBasementRoom(s) && r.canDefeatStalfos(s) &&
				r.canDefeatWizzrobes(s) && r.canDefeatMorths(s)
		},
		"Wind Temple - Molgera Heart Container": func(s State) bool {
			return r.canAccessMolgeraBossArena(s) && r.canDefeatMolgera(s)
		},

		// Ganon's Tower
		"Ganon's Tower - Maze Chest": func(s State) bool {
			return r.canReachGanonsTowerPhantomGanonRoom(s) && r.canDefeatPhantomGanon(s)
		},

		// Mailbox
		"Mailbox - Letter from Hoskit's Girlfriend": func(s State) bool {
			return s.Has("Spoils Bag", 1) && r.canFarmGoldenFeathers(s) &&
				r.canPlaySongOfPassing(s)
		},
		"Mailbox - Letter from Baito's Mother": func(s State) bool {
			return s.Has("Delivery Bag", 1) && s.Has("Note to Mom", 1) &&
				r.canPlaySongOfPassing(s)
		},
		"Mailbox - Letter from Baito": func(s State) bool {
			return s.Has("Delivery Bag", 1) && s.Has("Note to Mom", 1) &&
				s.CanReach("Earth Temple - Jalhalla Heart Container")
		},
		"Mailbox - Letter from Komali's Father": func(s State) bool {
			return s.Has("Farore's Pearl", 1)
		},
		"Mailbox - Letter Advertising Bombs in Beedle's Shop": func(s State) bool {
			return s.Has("Bombs", 1)
		},
		"Mailbox - Letter Advertising Rock Spire Shop Ship": func(s State) bool {
			return r.hasAnyWalletUpgrade(s)
		},
		"Mailbox - Letter from Orca": func(s State) bool {
			return s.CanReach("Forbidden Woods - Kalle Demos Heart Container")
		},
		"Mailbox - Letter from Grandma": func(s State) bool {
			return s.Has("Empty Bottle", 1) && r.canGetFairies(s) && r.canPlaySongOfPassing(s)
		},
		"Mailbox - Letter from Aryll": func(s State) bool {
			return s.CanReach("Forsaken Fortress - Helmaroc King Heart Container") &&
				r.canPlaySongOfPassing(s)
		},
		"Mailbox - Letter from Tingle": func(s State) bool {
			return r.rescuedTingle(s) && r.hasAnyWalletUpgrade(s) &&
				s.CanReach("Forsaken Fortress - Helmaroc King Heart Container") &&
				r.canPlaySongOfPassing(s)
		},

		// The Great Sea
		"The Great Sea - Beedle's Shop Ship - 20 Rupee Item": always,
		"The Great Sea - Salvage Corp Gift":                  always,
		"The Great Sea - Cyclos":                             func(s State) bool { return r.hasHerosBow(s) },
		"The Great Sea - Goron Trading Reward": func(s State) bool {
			return r.rescuedAryll(s) && s.Has("Delivery Bag", 1)
		},
		"The Great Sea - Withered Trees": func(s State) bool {
			return r.canAccessForestHaven(s) && s.Has("Empty Bottle", 1) &&
				r.canPlayBalladOfGales(s) &&
				s.CanReach("Cliff Plateau Isles - Highest Isle")
		},
		"The Great Sea - Ghost Ship": func(s State) bool {
			return s.Has("Ghost Ship Chart", 1) && r.canPlayBalladOfGales(s) &&
				r.canDefeatWizzrobes(s) && r.canDefeatPoes(s) &&
				r.canDefeatRedeads(s) && r.canDefeatStalfos(s)
		},

		// Private Oasis
		"Private Oasis - Chest at Top of Waterfall": func(s State) bool {
			return s.Has("Hookshot", 1) || r.canFlyWithDekuLeafOutdoors(s)
		},
		"Private Oasis - Cabana Labyrinth - Lower Floor Chest": func(s State) bool {
			return r.canAccessCabanaLabyrinth(s) && s.Has("Skull Hammer", 1)
		},
		"Private Oasis - Cabana Labyrinth - Upper Floor Chest": func(s State) bool {
			return r.canAccessCabanaLabyrinth(s) && s.Has("Skull Hammer", 1) &&
				r.canPlayWindsRequiem(s)
		},
		"Private Oasis - Big Octo": func(s State) bool {
			return r.canDefeatBigOctos(s) && s.Has("Grappling Hook", 1)
		},

		// Spectacle Island
		"Spectacle Island - Barrel Shooting - First Prize":  always,
		"Spectacle Island - Barrel Shooting - Second Prize": always,

		// Needle Rock Isle
		"Needle Rock Isle - Chest": func(s State) bool {
			return s.Has("Bait Bag", 1) && r.canBuyHyoiPears(s)
		},
		"Needle Rock Isle - Cave": func(s State) bool {
			return r.canAccessNeedleRockIsleSecretCave(s) && r.hasFireArrows(s)
		},
		"Needle Rock Isle - Golden Gunboat": func(s State) bool {
			return s.Has("Bombs", 1) && s.Has("Grappling Hook", 1)
		},

		// Angular Isles
		"Angular Isles - Peak": always,
		"Angular Isles - Cave": func(s State) bool {
			return r.canAccessAngularIslesSecretCave(s) && r.canAimMirrorShield(s) &&
				(r.canFlyWithDekuLeafIndoors(s) || s.Has("Hookshot", 1))
		},

		// Boating Course
		"Boating Course - Raft": always,
		"Boating Course - Cave": func(s State) bool {
			return r.canAccessBoatingCourseSecretCave(s) &&
				r.canHitDiamondSwitchesAtRange(s) &&
				(r.canDefeatMiniblinsEasily(s) || r.precise2())
		},

		// Stone Watcher Island
		"Stone Watcher Island - Cave": func(s State) bool {
			return r.canAccessStoneWatcherIslandSecretCave(s) && r.canDefeatArmos(s) &&
				r.canDefeatWizzrobes(s) && r.canDefeatDarknuts(s) &&
				r.canPlayWindsRequiem(s)
		},
		"Stone Watcher Island - Lookout Platform Chest": always,
		"Stone Watcher Island - Lookout Platform - Destroy the Cannons": func(s State) bool {
			return r.canDestroyCannons(s)
		},

		// Islet of Steel
		"Islet of Steel - Interior": func(s State) bool {
			return s.Has("Bombs", 1) && r.canPlayWindsRequiem(s)
		},
		"Islet of Steel - Lookout Platform - Defeat the Enemies": func(s State) bool {
			return r.canDefeatWizzrobesAtRange(s)
		},

		// Overlook Island
		"Overlook Island - Cave": func(s State) bool {
			return r.canAccessOverlookIslandSecretCave(s) &&
				r.canDefeatStalfos(s) &&
				r.canDefeatWizzrobes(s) &&
				r.canDefeatRedChuchus(s) &&
				r.canDefeatGreenChuchus(s) &&
				r.canDefeatKeese(s) &&
				r.canDefeatFireKeese(s) &&
				r.canDefeatMorths(s) &&
				r.canDefeatKargarocs(s) &&
				r.canDefeatDarknuts(s) &&
				r.canPlayWindsRequiem(s)
		},

		// Bird's Peak Rock
		"Bird's Peak Rock - Cave": func(s State) bool {
			return r.canAccessBirdsPeakRockSecretCave(s) && r.canPlayWindsRequiem(s)
		},

		// Pawprint Isle
		"Pawprint Isle - Chuchu Cave - Chest": func(s State) bool {
			return r.canAccessPawprintIsleChuchuCave(s)
		},
		"Pawprint Isle - Chuchu Cave - Behind Left Boulder": func(s State) bool {
			return r.canAccessPawprintIsleChuchuCave(s) && r.canMoveBoulders(s)
		},
		"Pawprint Isle - Chuchu Cave - Behind Right Boulder": func(s State) bool {
			return r.canAccessPawprintIsleChuchuCave(s) && r.canMoveBoulders(s)
		},
		"Pawprint Isle - Chuchu Cave - Scale the Wall": func(s State) bool {
			return r.canAccessPawprintIsleChuchuCave(s) && s.Has("Grappling Hook", 1)
		},
		"Pawprint Isle - Wizzrobe Cave": func(s State) bool {
			return r.canAccessPawprintIsleWizzrobeCave(s) &&
				r.canDefeatWizzrobesAtRange(s) &&
				r.canDefeatFireKeese(s) &&
				r.canDefeatMagtails(s) &&
				r.canDefeatRedChuchus(s) &&
				r.canDefeatGreenChuchus(s) &&
				r.canDefeatYellowChuchus(s) &&
				r.canDefeatRedBubbles(s) &&
				r.canRemovePeahatArmor(s)
		},
		"Pawprint Isle - Lookout Platform - Defeat the Enemies": always,

		// Thorned Fairy Island
		"Thorned Fairy Island - Great Fairy": func(s State) bool {
			return r.canAccessThornedFairyFountain(s)
		},
		"Thorned Fairy Island - Northeastern Lookout Platform - Destroy the Cannons": func(s State) bool {
			return r.canDestroyCannons(s)
		},
		"Thorned Fairy Island - Southwestern Lookout Platform - Defeat the Enemies": func(s State) bool {
			return r.canFlyWithDekuLeafOutdoors(s)
		},

		// Eastern Fairy Island
		"Eastern Fairy Island - Great Fairy": func(s State) bool {
			return r.canAccessEasternFairyFountain(s)
		},
		"Eastern Fairy Island - Lookout Platform - Defeat the Cannons and Enemies": func(s State) bool {
			return r.canDestroyCannons(s)
		},

		// Western Fairy Island
		"Western Fairy Island - Great Fairy": func(s State) bool {
			return r.canAccessWesternFairyFountain(s)
		},
		"Western Fairy Island - Lookout Platform": always,

		// Southern Fairy Island
		"Southern Fairy Island - Great Fairy": func(s State) bool {
			return r.canAccessSouthernFairyFountain(s)
		},
		"Southern Fairy Island - Lookout Platform - Destroy the Northwest Cannons": func(s State) bool {
			return r.canDestroyCannons(s) && r.canFlyWithDekuLeafOutdoors(s)
		},
		"Southern Fairy Island - Lookout Platform - Destroy the Southeast Cannons": func(s State) bool {
			return r.canDestroyCannons(s) && r.canFlyWithDekuLeafOutdoors(s)
		},

		// Northern Fairy Island
		"Northern Fairy Island - Great Fairy": func(s State) bool {
			return r.canAccessNorthernFairyFountain(s)
		},
		"Northern Fairy Island - Submarine": always,

		// Tingle Island
		"Tingle Island - Ankle - Reward for All Tingle Statues": func(s State) bool {
			return r.hasAllTingleStatues(s)
		},
		"Tingle Island - Big Octo": func(s State) bool {
			return r.canDefeat12EyeBigOctos(s) && s.Has("Grappling Hook", 1)
		},

		// Diamond Steppe Island
		"Diamond Steppe Island - Warp Maze Cave - First Chest": func(s State) bool {
			return r.canAccessDiamondSteppeIslandWarpMazeCave(s)
		},
		"Diamond Steppe Island - Warp Maze Cave - Second Chest": func(s State) bool {
			return r.canAccessDiamondSteppeIslandWarpMazeCave(s)
		},
		"Diamond Steppe Island - Big Octo": func(s State) bool {
			return r.canDefeatBigOctos(s) && s.Has("Grappling Hook", 1)
		},

		// Bomb Island
		"Bomb Island - Cave": func(s State) bool {
			return r.canAccessBombIslandSecretCave(s) && r.canStunMagtails(s)
		},
		"Bomb Island - Lookout Platform - Defeat the Enemies": always,
		"Bomb Island - Submarine":                             always,

		// Rock Spire Isle
		"Rock Spire Isle - Cave": func(s State) bool {
			return r.canAccessRockSpireIsleSecretCave(s)
		},
		"Rock Spire Isle - Beedle's Special Shop Ship - 500 Rupee Item": func(s State) bool {
			return r.hasAnyWalletUpgrade(s) && r.canFarmLotsOfRupees(s)
		},
		"Rock Spire Isle - Beedle's Special Shop Ship - 950 Rupee Item": func(s State) bool {
			return r.hasAnyWalletUpgrade(s) && r.canFarmLotsOfRupees(s)
		},
		"Rock Spire Isle - Beedle's Special Shop Ship - 900 Rupee Item": func(s State) bool {
			return r.hasAnyWalletUpgrade(s) && r.canFarmLotsOfRupees(s)
		},
		"Rock Spire Isle - Western Lookout Platform - Destroy the Cannons": func(s State) bool {
			return r.canDestroyCannons(s) && r.canFlyWithDekuLeafOutdoors(s)
		},
		"Rock Spire Isle - Eastern Lookout Platform - Destroy the Cannons": func(s State) bool {
			return r.canDestroyCannons(s) && r.canFlyWithDekuLeafOutdoors(s)
		},
		"Rock Spire Isle - Center Lookout Platform": always,
		"Rock Spire Isle - Southeast Gunboat": func(s State) bool {
			return s.Has("Bombs", 1) && s.Has("Grappling Hook", 1)
		},

		// Shark Island
		"Shark Island - Cave": func(s State) bool {
			return r.canAccessSharkIslandSecretCave(s) && r.canDefeatMiniblins(s)
		},

		// Cliff Plateau Isles
		"Cliff Plateau Isles - Cave": func(s State) bool {
			return r.canAccessCliffPlateauIslesSecretCave(s) &&
				(r.canDefeatBokoBabas(s) ||
					(s.Has("Grappling Hook", 1) && r.obscure1() && r.precise1()))
		},
		"Cliff Plateau Isles - Highest Isle": func(s State) bool {
			return r.canAccessCliffPlateauIslesInnerCave(s)
		},
		"Cliff Plateau Isles - Lookout Platform": always,

		// Crescent Moon Island
		"Crescent Moon Island - Chest": always,
		"Crescent Moon Island - Submarine": func(s State) bool {
			return r.canDefeatMiniblins(s)
		},

		// Horseshoe Island
		"Horseshoe Island - Play Golf": func(s State) bool {
			return r.canFanWithDekuLeaf(s) &&
				(r.canFlyWithDekuLeafOutdoors(s) || s.Has("Hookshot", 1))
		},
		"Horseshoe Island - Cave": func(s State) bool {
			return r.canAccessHorseshoeIslandSecretCave(s) && r.canDefeatMothulas(s) &&
				r.canDefeatWingedMothulas(s)
		},
		"Horseshoe Island - Northwestern Lookout Platform": always,
		"Horseshoe Island - Southeastern Lookout Platform": always,

		// Flight Control Platform
		"Flight Control Platform - Bird-Man Contest - First Prize": func(s State) bool {
			return r.canFlyWithDekuLeafOutdoors(s) && r.hasMagicMeterUpgrade(s)
		},
		"Flight Control Platform - Submarine": func(s State) bool {
			return r.canDefeatWizzrobes(s) &&
				r.canDefeatRedChuchus(s) &&
				r.canDefeatGreenChuchus(s) &&
				r.canDefeatMiniblins(s) &&
				r.canDefeatWizzrobesAtRange(s)
		},

		// Star Island
		"Star Island - Cave": func(s State) bool {
			return r.canAccessStarIslandSecretCave(s) && r.canDefeatMagtails(s)
		},
		"Star Island - Lookout Platform": always,

		// Star Belt Archipelago
		"Star Belt Archipelago - Lookout Platform": always,

		// Five-Star Isles
		"Five-Star Isles - Lookout Platform - Destroy the Cannons": func(s State) bool {
			return r.canDestroyCannons(s)
		},
		"Five-Star Isles - Raft":      always,
		"Five-Star Isles - Submarine": always,

		// Seven-Star Isles
		"Seven-Star Isles - Center Lookout Platform":   always,
		"Seven-Star Isles - Northern Lookout Platform": always,
		"Seven-Star Isles - Southern Lookout Platform": func(s State) bool {
			return r.canDefeatWizzrobesAtRange(s)
		},
		"Seven-Star Isles - Big Octo": func(s State) bool {
			return r.canDefeat12EyeBigOctos(s) && s.Has("Grappling Hook", 1)
		},

		// Cyclops Reef
		"Cyclops Reef - Destroy the Cannons and Gunboats": func(s State) bool {
			return s.Has("Bombs", 1) && r.canFlyWithDekuLeafOutdoors(s)
		},
		"Cyclops Reef - Lookout Platform - Defeat the Enemies": always,

		// Two-Eye Reef
		"Two-Eye Reef - Destroy the Cannons and Gunboats": func(s State) bool {
			return s.Has("Bombs", 1) && r.canFlyWithDekuLeafOutdoors(s)
		},
		"Two-Eye Reef - Lookout Platform": always,
		"Two-Eye Reef - Big Octo Great Fairy": func(s State) bool {
			return r.canDefeatBigOctos(s)
		},

		// Three-Eye Reef
		"Three-Eye Reef - Destroy the Cannons and Gunboats": func(s State) bool {
			return s.Has("Bombs", 1) && r.canFlyWithDekuLeafOutdoors(s)
		},

		// Four-Eye Reef
		"Four-Eye Reef - Destroy the Cannons and Gunboats": func(s State) bool {
			return s.Has("Bombs", 1) && r.canFlyWithDekuLeafOutdoors(s)
		},

		// Five-Eye Reef
		"Five-Eye Reef - Destroy the Cannons": func(s State) bool {
			return r.canDestroyCannons(s) && r.canFlyWithDekuLeafOutdoors(s)
		},
		"Five-Eye Reef - Lookout Platform": always,

		// Six-Eye Reef
		"Six-Eye Reef - Destroy the Cannons and Gunboats": func(s State) bool {
			return s.Has("Bombs", 1) && r.canFlyWithDekuLeafOutdoors(s)
		},
		"Six-Eye Reef - Lookout Platform - Destroy the Cannons": func(s State) bool {
			return r.canDestroyCannons(s)
		},
		"Six-Eye Reef - Submarine": always,

		// Goal
		"Defeat Ganondorf": func(s State) bool { return r.canReachAndDefeatGanondorf(s) },
	}

	for name, island := range sunkenTreasureIsland {
		island := island
		rules[name] = func(s State) bool {
			if !s.Has("Grappling Hook", 1) || !r.hasChartForIsland(s, island) {
				return false
			}
			switch island {
			case 6:
				return s.Has("Bombs", 1) || r.precise1()
			case 8, 22, 24, 25, 46:
				return s.Has("Bombs", 1) || r.precise1() ||
					(r.canUseMagicArmor(s) && r.obscure1())
			case 32:
				return r.canDefeatSeahats(s) || r.precise1()
			case 37:
				return r.canDestroyCannons(s)
			}
			return true
		}
	}

	return rules
}

// canClimbForestHavenExterior covers the climb from the Forest Haven entrance
// up to the outer branches, with the grappling hook or a tight leaf route.
func (r *Ruleset) canClimbForestHavenExterior(s State) bool {
	if s.Has("Grappling Hook", 1) {
		return true
	}
	return r.canFlyWithDekuLeafIndoors(s) && r.canFlyWithDekuLeafOutdoors(s) && r.obscure1() &&
		((r.canCutGrass(s) && r.precise1()) ||
			(r.hasMagicMeterUpgrade(s) && r.precise2()))
}
