package logic

// State is the inventory snapshot a rule is evaluated against. Implementations
// answer from collected items plus whatever reachability the caller has
// already resolved; rules never mutate state.
type State interface {
	// Has reports whether the state holds at least count copies of the item.
	Has(item string, count int) bool
	// Count returns the number of copies of the item the state holds.
	Count(item string) int
	// CanReach reports whether the named location is reachable.
	CanReach(location string) bool
	// CanReachRegion reports whether the named overworld or dungeon region
	// has an open entrance.
	CanReachRegion(region string) bool
}

// Rule decides whether a single location is in logic for the given state.
// Rules are pure: the same state always yields the same answer.
type Rule func(s State) bool
