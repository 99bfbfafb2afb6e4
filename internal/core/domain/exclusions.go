package domain

import "sort"

// Exclusions is the ledger mapping a library identity to the set of
// transitive artifacts excluded for it. Additions are cumulative unions,
// never replacements.
type Exclusions struct {
	byIdentity map[Identity]map[Exclusion]struct{}
}

// NewExclusions creates an empty ledger.
func NewExclusions() *Exclusions {
	return &Exclusions{
		byIdentity: make(map[Identity]map[Exclusion]struct{}),
	}
}

// Add merges the given exclusions into the set already stored for id,
// creating the entry if absent. Safe to call any number of times.
func (e *Exclusions) Add(id Identity, exclusions []Exclusion) {
	if len(exclusions) == 0 {
		return
	}
	set, ok := e.byIdentity[id]
	if !ok {
		set = make(map[Exclusion]struct{}, len(exclusions))
		e.byIdentity[id] = set
	}
	for _, excl := range exclusions {
		set[excl] = struct{}{}
	}
}

// For returns the exclusions recorded for id, sorted for deterministic
// output. An identity without exclusions yields an empty slice, never a
// distinguishable absent marker.
func (e *Exclusions) For(id Identity) []Exclusion {
	set, ok := e.byIdentity[id]
	if !ok {
		return []Exclusion{}
	}
	return sortedExclusions(set)
}

// Merge unions every entry of other into this ledger.
func (e *Exclusions) Merge(other *Exclusions) {
	if other == nil {
		return
	}
	for id, set := range other.byIdentity {
		for excl := range set {
			e.Add(id, []Exclusion{excl})
		}
	}
}

// All returns a snapshot of the whole ledger with sorted exclusion slices.
func (e *Exclusions) All() map[Identity][]Exclusion {
	out := make(map[Identity][]Exclusion, len(e.byIdentity))
	for id, set := range e.byIdentity {
		out[id] = sortedExclusions(set)
	}
	return out
}

// Len returns the number of identities carrying at least one exclusion.
func (e *Exclusions) Len() int {
	return len(e.byIdentity)
}

func sortedExclusions(set map[Exclusion]struct{}) []Exclusion {
	out := make([]Exclusion, 0, len(set))
	for excl := range set {
		out = append(out, excl)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}
