package pollyskema

import "sort"

// Presence records how a declared field obtained its value.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input or was assigned.
	PresenceWasNull                             // Field value was null.
	PresenceDefaultApplied                      // Default value was applied.
)

// PresenceMap maps field names to Presence flags.
type PresenceMap map[string]Presence

// Set reports whether the caller supplied the field.
func (pm PresenceMap) Set(name string) bool { return pm[name]&PresenceSeen != 0 }

// Names returns the names carrying all flags in f, sorted.
func (pm PresenceMap) Names(f Presence) []string {
	out := make([]string, 0, len(pm))
	for k, v := range pm {
		if v&f == f {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func (pm PresenceMap) clone() PresenceMap {
	out := make(PresenceMap, len(pm))
	for k, v := range pm {
		out[k] = v
	}
	return out
}
