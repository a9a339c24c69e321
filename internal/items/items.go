package items

import "fmt"

// Kind describes which slot of the save file an item occupies. Dungeon item
// kinds are carved out of the main pool and handled by the dungeon-item
// placement step.
type Kind string

const (
	KindItem     Kind = "Item"
	KindBigKey   Kind = "Big Key"
	KindSmallKey Kind = "Small Key"
	KindMap      Kind = "Map"
	KindCompass  Kind = "Compass"
	KindEvent    Kind = "Event"
)

// Classification is a bit set describing how the fill algorithm must treat an
// item. Filler is the zero value.
type Classification uint8

const (
	Filler        Classification = 0
	Progression   Classification = 0b0001
	Useful        Classification = 0b0010
	Trap          Classification = 0b0100
	SkipBalancing Classification = 0b1000

	ProgressionSkipBalancing = Progression | SkipBalancing
)

// IsProgression reports whether the fill algorithm may gate reachability on
// the item.
func (c Classification) IsProgression() bool { return c&Progression != 0 }

// IsUseful reports whether the item is prioritized but never required.
func (c Classification) IsUseful() bool { return c&Useful != 0 }

// NoCode marks event items that never travel over the network.
const NoCode = -1

// baseID offsets this game's item and location codes into its own namespace
// so they cannot collide with other games in the same multiworld session.
const baseID = 2322432

// Data is one immutable row of the item table.
type Data struct {
	Kind           Kind
	Classification Classification
	Code           int
	Quantity       int
	InGameID       int
}

// NetworkID translates a table code into the id used on the wire.
func NetworkID(code int) int64 {
	return baseID + int64(code)
}

// DungeonItemKind returns the dungeon item kind for d, or "" when d is not a
// dungeon item.
func (d Data) DungeonItemKind() Kind {
	switch d.Kind {
	case KindSmallKey, KindBigKey, KindMap, KindCompass:
		return d.Kind
	}
	return ""
}

// Get looks up an item by name.
func Get(name string) (Data, bool) {
	data, ok := Table[name]
	return data, ok
}

// MustGet looks up an item by name and panics on unknown names. Pool
// generation uses it for table-internal references that are bugs if missing.
func MustGet(name string) Data {
	data, ok := Table[name]
	if !ok {
		panic(fmt.Sprintf("items: unknown item %q", name))
	}
	return data
}

// Validate checks that names exist in the table, mirroring the factory
// behavior of rejecting unknown item names outright.
func Validate(names ...string) error {
	for _, name := range names {
		if _, ok := Table[name]; !ok {
			return fmt.Errorf("items: unknown item %q", name)
		}
	}
	return nil
}

// Table is the static item table, loaded once and never mutated. Quantity is
// the number of copies the default pool carries; quantity zero marks items
// that only enter the pool through the better-filler substitution.
var Table = map[string]Data{
	"Telescope":       {KindItem, Filler, 0, 1, 0x20},
	"Wind Waker":      {KindItem, Progression, 2, 1, 0x22},
	"Grappling Hook":  {KindItem, Progression, 3, 1, 0x25},
	"Spoils Bag":      {KindItem, Progression, 4, 1, 0x24},
	"Boomerang":       {KindItem, Progression, 5, 1, 0x2D},
	"Deku Leaf":       {KindItem, Progression, 6, 1, 0x34},
	"Tingle Tuner":    {KindItem, Progression, 7, 1, 0x21},
	"Iron Boots":      {KindItem, Progression, 8, 1, 0x29},
	"Magic Armor":     {KindItem, Progression, 9, 1, 0x2A},
	"Bait Bag":        {KindItem, Progression, 10, 1, 0x2C},
	"Bombs":           {KindItem, Progression, 11, 1, 0x31},
	"Delivery Bag":    {KindItem, Progression, 12, 1, 0x30},
	"Hookshot":        {KindItem, Progression, 13, 1, 0x2F},
	"Skull Hammer":    {KindItem, Progression, 14, 1, 0x33},
	"Power Bracelets": {KindItem, Progression, 15, 1, 0x28},

	"Hero's Charm":            {KindItem, Filler, 16, 1, 0x43},
	"Hurricane Spin":          {KindItem, Filler, 17, 1, 0xAA},
	"Dragon Tingle Statue":    {KindItem, Progression, 18, 1, 0xA3},
	"Forbidden Tingle Statue": {KindItem, Progression, 19, 1, 0xA4},
	"Goddess Tingle Statue":   {KindItem, Progression, 20, 1, 0xA5},
	"Earth Tingle Statue":     {KindItem, Progression, 21, 1, 0xA6},
	"Wind Tingle Statue":      {KindItem, Progression, 22, 1, 0xA7},

	"Wind's Requiem":    {KindItem, Progression, 23, 1, 0x6D},
	"Ballad of Gales":   {KindItem, Progression, 24, 1, 0x6E},
	"Command Melody":    {KindItem, Progression, 25, 1, 0x6F},
	"Earth God's Lyric": {KindItem, Progression, 26, 1, 0x70},
	"Wind God's Aria":   {KindItem, Progression, 27, 1, 0x71},
	"Song of Passing":   {KindItem, Progression, 28, 1, 0x72},

	"Triforce Shard 1": {KindItem, Progression, 29, 1, 0x61},
	"Triforce Shard 2": {KindItem, Progression, 30, 1, 0x62},
	"Triforce Shard 3": {KindItem, Progression, 31, 1, 0x63},
	"Triforce Shard 4": {KindItem, Progression, 32, 1, 0x64},
	"Triforce Shard 5": {KindItem, Progression, 33, 1, 0x65},
	"Triforce Shard 6": {KindItem, Progression, 34, 1, 0x66},
	"Triforce Shard 7": {KindItem, Progression, 35, 1, 0x67},
	"Triforce Shard 8": {KindItem, Progression, 36, 1, 0x68},

	"Skull Necklace":   {KindItem, Filler, 37, 9, 0x45},
	"Boko Baba Seed":   {KindItem, Filler, 38, 1, 0x46},
	"Golden Feather":   {KindItem, Filler, 39, 9, 0x47},
	"Knight's Crest":   {KindItem, Filler, 40, 3, 0x48},
	"Red Chu Jelly":    {KindItem, Filler, 41, 1, 0x49},
	"Green Chu Jelly":  {KindItem, Filler, 42, 1, 0x4A},
	"Joy Pendant":      {KindItem, Filler, 43, 20, 0x1F},
	"All-Purpose Bait": {KindItem, Filler, 44, 1, 0x82},
	"Hyoi Pear":        {KindItem, Filler, 45, 4, 0x83},

	"Note to Mom":     {KindItem, Progression, 46, 1, 0x99},
	"Maggie's Letter": {KindItem, Progression, 47, 1, 0x9A},
	"Moblin's Letter": {KindItem, Progression, 48, 1, 0x9B},
	"Cabana Deed":     {KindItem, Progression, 49, 1, 0x9C},
	"Fill-Up Coupon":  {KindItem, Filler, 50, 1, 0x9E},

	"Nayru's Pearl":  {KindItem, Progression, 51, 1, 0x69},
	"Din's Pearl":    {KindItem, Progression, 52, 1, 0x6A},
	"Farore's Pearl": {KindItem, Progression, 53, 1, 0x6B},

	"Progressive Sword":       {KindItem, Progression, 54, 4, 0x38},
	"Progressive Shield":      {KindItem, Progression, 55, 2, 0x3B},
	"Progressive Picto Box":   {KindItem, Progression, 56, 2, 0x23},
	"Progressive Bow":         {KindItem, Progression, 57, 3, 0x27},
	"Progressive Magic Meter": {KindItem, Progression, 58, 2, 0xB1},
	"Progressive Quiver":      {KindItem, Progression, 59, 2, 0xAF},
	"Progressive Bomb Bag":    {KindItem, Useful, 60, 2, 0xAD},
	"Progressive Wallet":      {KindItem, Progression, 61, 2, 0xAB},
	"Empty Bottle":            {KindItem, Progression, 62, 4, 0x50},

	"Triforce Chart 1": {KindItem, ProgressionSkipBalancing, 63, 1, 0xFE},
	"Triforce Chart 2": {KindItem, ProgressionSkipBalancing, 64, 1, 0xFD},
	"Triforce Chart 3": {KindItem, ProgressionSkipBalancing, 65, 1, 0xFC},
	"Triforce Chart 4": {KindItem, ProgressionSkipBalancing, 66, 1, 0xFB},
	"Triforce Chart 5": {KindItem, ProgressionSkipBalancing, 67, 1, 0xFA},
	"Triforce Chart 6": {KindItem, ProgressionSkipBalancing, 68, 1, 0xF9},
	"Triforce Chart 7": {KindItem, ProgressionSkipBalancing, 69, 1, 0xF8},
	"Triforce Chart 8": {KindItem, ProgressionSkipBalancing, 70, 1, 0xF7},

	"Treasure Chart 1":  {KindItem, ProgressionSkipBalancing, 71, 1, 0xE7},
	"Treasure Chart 2":  {KindItem, ProgressionSkipBalancing, 72, 1, 0xEE},
	"Treasure Chart 3":  {KindItem, ProgressionSkipBalancing, 73, 1, 0xE0},
	"Treasure Chart 4":  {KindItem, ProgressionSkipBalancing, 74, 1, 0xE1},
	"Treasure Chart 5":  {KindItem, ProgressionSkipBalancing, 75, 1, 0xF2},
	"Treasure Chart 6":  {KindItem, ProgressionSkipBalancing, 76, 1, 0xEA},
	"Treasure Chart 7":  {KindItem, ProgressionSkipBalancing, 77, 1, 0xCC},
	"Treasure Chart 8":  {KindItem, ProgressionSkipBalancing, 78, 1, 0xD4},
	"Treasure Chart 9":  {KindItem, ProgressionSkipBalancing, 79, 1, 0xDA},
	"Treasure Chart 10": {KindItem, ProgressionSkipBalancing, 80, 1, 0xDE},
	"Treasure Chart 11": {KindItem, ProgressionSkipBalancing, 81, 1, 0xF6},
	"Treasure Chart 12": {KindItem, ProgressionSkipBalancing, 82, 1, 0xE9},
	"Treasure Chart 13": {KindItem, ProgressionSkipBalancing, 83, 1, 0xCF},
	"Treasure Chart 14": {KindItem, ProgressionSkipBalancing, 84, 1, 0xDD},
	"Treasure Chart 15": {KindItem, ProgressionSkipBalancing, 85, 1, 0xF5},
	"Treasure Chart 16": {KindItem, ProgressionSkipBalancing, 86, 1, 0xE3},
	"Treasure Chart 17": {KindItem, ProgressionSkipBalancing, 87, 1, 0xD7},
	"Treasure Chart 18": {KindItem, ProgressionSkipBalancing, 88, 1, 0xE4},
	"Treasure Chart 19": {KindItem, ProgressionSkipBalancing, 89, 1, 0xD1},
	"Treasure Chart 20": {KindItem, ProgressionSkipBalancing, 90, 1, 0xF3},
	"Treasure Chart 21": {KindItem, ProgressionSkipBalancing, 91, 1, 0xCE},
	"Treasure Chart 22": {KindItem, ProgressionSkipBalancing, 92, 1, 0xD9},
	"Treasure Chart 23": {KindItem, ProgressionSkipBalancing, 93, 1, 0xF1},
	"Treasure Chart 24": {KindItem, ProgressionSkipBalancing, 94, 1, 0xEB},
	"Treasure Chart 25": {KindItem, ProgressionSkipBalancing, 95, 1, 0xD6},
	"Treasure Chart 26": {KindItem, ProgressionSkipBalancing, 96, 1, 0xD3},
	"Treasure Chart 27": {KindItem, ProgressionSkipBalancing, 97, 1, 0xCD},
	"Treasure Chart 28": {KindItem, ProgressionSkipBalancing, 98, 1, 0xE2},
	"Treasure Chart 29": {KindItem, ProgressionSkipBalancing, 99, 1, 0xE6},
	"Treasure Chart 30": {KindItem, ProgressionSkipBalancing, 100, 1, 0xF4},
	"Treasure Chart 31": {KindItem, ProgressionSkipBalancing, 101, 1, 0xF0},
	"Treasure Chart 32": {KindItem, ProgressionSkipBalancing, 102, 1, 0xD0},
	"Treasure Chart 33": {KindItem, ProgressionSkipBalancing, 103, 1, 0xEF},
	"Treasure Chart 34": {KindItem, ProgressionSkipBalancing, 104, 1, 0xE5},
	"Treasure Chart 35": {KindItem, ProgressionSkipBalancing, 105, 1, 0xE8},
	"Treasure Chart 36": {KindItem, ProgressionSkipBalancing, 106, 1, 0xD8},
	"Treasure Chart 37": {KindItem, ProgressionSkipBalancing, 107, 1, 0xD5},
	"Treasure Chart 38": {KindItem, ProgressionSkipBalancing, 108, 1, 0xED},
	"Treasure Chart 39": {KindItem, ProgressionSkipBalancing, 109, 1, 0xEC},
	"Treasure Chart 40": {KindItem, ProgressionSkipBalancing, 110, 1, 0xDF},
	"Treasure Chart 41": {KindItem, ProgressionSkipBalancing, 111, 1, 0xD2},

	"Tingle's Chart":    {KindItem, Filler, 112, 1, 0xDC},
	"Ghost Ship Chart":  {KindItem, Progression, 113, 1, 0xDB},
	"Octo Chart":        {KindItem, Filler, 114, 1, 0xCA},
	"Great Fairy Chart": {KindItem, Filler, 115, 1, 0xC9},
	"Secret Cave Chart": {KindItem, Filler, 116, 1, 0xC6},
	"Light Ring Chart":  {KindItem, Filler, 117, 1, 0xC5},
	"Platform Chart":    {KindItem, Filler, 118, 1, 0xC4},
	"Beedle's Chart":    {KindItem, Filler, 119, 1, 0xC3},
	"Submarine Chart":   {KindItem, Filler, 120, 1, 0xC2},

	"Green Rupee":   {KindItem, Filler, 121, 1, 0x01},
	"Blue Rupee":    {KindItem, Filler, 122, 2, 0x02},
	"Yellow Rupee":  {KindItem, Filler, 123, 3, 0x03},
	"Red Rupee":     {KindItem, Filler, 124, 8, 0x04},
	"Purple Rupee":  {KindItem, Filler, 125, 10, 0x05},
	"Orange Rupee":  {KindItem, Filler, 126, 15, 0x06},
	"Silver Rupee":  {KindItem, Filler, 127, 20, 0x0F},
	"Rainbow Rupee": {KindItem, Filler, 128, 1, 0xB8},

	"Piece of Heart":  {KindItem, Filler, 129, 44, 0x07},
	"Heart Container": {KindItem, Filler, 130, 6, 0x08},

	"DRC Big Key":      {KindBigKey, Progression, 131, 1, 0x14},
	"DRC Small Key":    {KindSmallKey, Progression, 132, 4, 0x13},
	"FW Big Key":       {KindBigKey, Progression, 133, 1, 0x40},
	"FW Small Key":     {KindSmallKey, Progression, 134, 1, 0x1D},
	"TotG Big Key":     {KindBigKey, Progression, 135, 1, 0x5C},
	"TotG Small Key":   {KindSmallKey, Progression, 136, 2, 0x5B},
	"ET Big Key":       {KindBigKey, Progression, 138, 1, 0x74},
	"ET Small Key":     {KindSmallKey, Progression, 139, 3, 0x73},
	"WT Big Key":       {KindBigKey, Progression, 140, 1, 0x81},
	"WT Small Key":     {KindSmallKey, Progression, 141, 2, 0x77},
	"DRC Dungeon Map":  {KindMap, Filler, 142, 1, 0x1B},
	"DRC Compass":      {KindCompass, Filler, 143, 1, 0x1C},
	"FW Dungeon Map":   {KindMap, Filler, 144, 1, 0x41},
	"FW Compass":       {KindCompass, Filler, 145, 1, 0x5A},
	"TotG Dungeon Map": {KindMap, Filler, 146, 1, 0x5D},
	"TotG Compass":     {KindCompass, Filler, 147, 1, 0x5E},
	"FF Dungeon Map":   {KindMap, Filler, 148, 1, 0x5F},
	"FF Compass":       {KindCompass, Filler, 149, 1, 0x60},
	"ET Dungeon Map":   {KindMap, Filler, 150, 1, 0x75},
	"ET Compass":       {KindCompass, Filler, 151, 1, 0x76},
	"WT Dungeon Map":   {KindMap, Filler, 152, 1, 0x84},
	"WT Compass":       {KindCompass, Filler, 153, 1, 0x85},

	// Pickup-style fillers only enter the pool through the better-filler
	// substitution, hence quantity zero.
	"Blue Chu Jelly":           {KindItem, Filler, 154, 0, 0x4B},
	"10 Arrows (Pickup)":       {KindItem, Filler, 155, 0, 0x0E},
	"5 Bombs (Pickup)":         {KindItem, Filler, 156, 0, 0x0D},
	"Small Magic Jar (Pickup)": {KindItem, Filler, 157, 0, 0x0C},
	"Large Magic Jar (Pickup)": {KindItem, Filler, 158, 0, 0x0B},
	"Heart (Pickup)":           {KindItem, Filler, 159, 0, 0x09},
	"Three Hearts (Pickup)":    {KindItem, Filler, 160, 0, 0x0A},

	"Victory": {KindEvent, Progression, NoCode, 1, NoCode},
}

// LookupID maps network item ids back to item names.
var LookupID = buildLookupID()

func buildLookupID() map[int64]string {
	lookup := make(map[int64]string, len(Table))
	for name, data := range Table {
		if data.Code == NoCode {
			continue
		}
		lookup[NetworkID(data.Code)] = name
	}
	return lookup
}
