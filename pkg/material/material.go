// Package material provides the narrow material contract the axial expansion
// engine depends on: a linear thermal expansion model and a solid/fluid
// distinction. Property databases beyond that live outside this module.
package material

import (
	"fmt"
	"sort"
	"strings"
)

// RoomTemperature is the reference temperature for dL/L correlations, in C.
const RoomTemperature = 20.0

// Material exposes the thermal expansion behavior of a component material.
type Material interface {
	// Name returns the canonical lowercase material name.
	Name() string

	// LinearExpansionPercent returns dL/L in percent at temperature tc (C),
	// relative to RoomTemperature.
	LinearExpansionPercent(tc float64) float64

	// LinearExpansionFactor returns the fractional length change going from
	// t0 to tc: (L(tc) - L(t0)) / L(t0).
	LinearExpansionFactor(tc, t0 float64) float64

	// IsSolid reports whether the material is solid at operating conditions.
	// Fluids do not drive axial expansion and are never axially linked.
	IsSolid() bool
}

// expansionModel is the shared implementation backing every concrete
// material: a cubic dL/L(T) fit in percent, valid over [tmin, tmax] C.
type expansionModel struct {
	name       string
	solid      bool
	a0, a1     float64
	a2, a3     float64
	tmin, tmax float64
}

func (m expansionModel) Name() string  { return m.name }
func (m expansionModel) IsSolid() bool { return m.solid }

func (m expansionModel) LinearExpansionPercent(tc float64) float64 {
	return m.a0 + tc*(m.a1+tc*(m.a2+tc*m.a3))
}

func (m expansionModel) LinearExpansionFactor(tc, t0 float64) float64 {
	l0 := 1 + m.LinearExpansionPercent(t0)/100
	lc := 1 + m.LinearExpansionPercent(tc)/100
	return (lc - l0) / l0
}

var registry = map[string]Material{}

func register(m Material) {
	registry[m.Name()] = m
}

// Lookup returns the material with the given name (case-insensitive).
func Lookup(name string) (Material, error) {
	m, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown material %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return m, nil
}

// Names lists all registered material names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
