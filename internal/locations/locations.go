package locations

import "fmt"

// Kind selects which save-file structure the client scans to decide whether a
// location has been checked.
type Kind string

const (
	// KindChart is a sunken treasure revealed by a chart; its bit in the
	// global charts bitfield is the island number.
	KindChart Kind = "Chart"
	// KindBigOcto is a Big Octo salvage flag read as a 16-bit word.
	KindBigOcto Kind = "Big Octo"
	// KindChest is a chest-open flag in the current stage's chest bitfield.
	KindChest Kind = "Chest"
	// KindSwitch is a switch flag in the current stage's switch bitfield.
	KindSwitch Kind = "Switch"
	// KindPickup is a field-item flag in the current stage's pickup bitfield.
	KindPickup Kind = "Pickup"
	// KindEvent is a single bit inside the save's event-flag block.
	KindEvent Kind = "Event"
	// KindSpecial needs bespoke detection logic in the client.
	KindSpecial Kind = "Special"
)

// NoCode marks the victory location, which is never reported as a check.
const NoCode = -1

// baseID matches the item-side namespace offset; location and item codes
// share the same base.
const baseID = 2322432

// Data is one immutable row of the location table.
type Data struct {
	Kind    Kind
	StageID byte
	Bit     int
	Address uint32
	Code    int
}

// NetworkID translates a table code into the id used on the wire, or 0 for
// the victory location.
func NetworkID(code int) int64 {
	if code == NoCode {
		return 0
	}
	return baseID + int64(code)
}

// Get looks up a location by name.
func Get(name string) (Data, bool) {
	data, ok := Table[name]
	return data, ok
}

// MustGet looks up a location by name and panics on unknown names.
func MustGet(name string) Data {
	data, ok := Table[name]
	if !ok {
		panic(fmt.Sprintf("locations: unknown location %q", name))
	}
	return data
}

// LookupID maps network location ids back to location names.
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
