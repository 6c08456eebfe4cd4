package core

import (
	"fmt"
	"sort"
	"strings"
)

// Flags is a bitmask categorizing blocks and components by role.
type Flags uint32

const (
	FlagFuel Flags = 1 << iota
	FlagClad
	FlagControl
	FlagPoison
	FlagShield
	FlagSlug
	FlagPlenum
	FlagACLP // above-core load pad
	FlagDummy
	FlagCoolant
	FlagDuct
	FlagWire
	FlagGrid
	FlagStructure
	FlagBond
)

var flagNames = map[Flags]string{
	FlagFuel:      "fuel",
	FlagClad:      "clad",
	FlagControl:   "control",
	FlagPoison:    "poison",
	FlagShield:    "shield",
	FlagSlug:      "slug",
	FlagPlenum:    "plenum",
	FlagACLP:      "aclp",
	FlagDummy:     "dummy",
	FlagCoolant:   "coolant",
	FlagDuct:      "duct",
	FlagWire:      "wire",
	FlagGrid:      "grid",
	FlagStructure: "structure",
	FlagBond:      "bond",
}

// Has reports whether every bit in want is set.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// Intersects reports whether any bit in other is set.
func (f Flags) Intersects(other Flags) bool {
	return f&other != 0
}

// String renders the set flags as a sorted, space-separated list.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for bit, name := range flagNames {
		if f.Has(bit) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

// ParseFlags builds a bitmask from flag names.
func ParseFlags(names []string) (Flags, error) {
	var f Flags
	for _, name := range names {
		found := false
		for bit, n := range flagNames {
			if n == strings.ToLower(name) {
				f |= bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown flag %q", name)
		}
	}
	return f, nil
}
