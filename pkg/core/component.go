package core

import (
	"fmt"

	"github.com/nucleonics/coreaxial/pkg/geom"
	"github.com/nucleonics/coreaxial/pkg/material"
)

// IJ is a lattice grid index.
type IJ struct {
	I, J int
}

// Lattice is the set of grid positions a multi-pin component occupies.
type Lattice []IJ

// SameIndices reports whether two lattices occupy exactly the same set of
// grid positions, regardless of ordering.
func (l Lattice) SameIndices(other Lattice) bool {
	if len(l) != len(other) {
		return false
	}
	seen := make(map[IJ]bool, len(l))
	for _, ij := range l {
		seen[ij] = true
	}
	for _, ij := range other {
		if !seen[ij] {
			return false
		}
	}
	return true
}

// Component is the leaf of the reactor composite: a single shape of a single
// material occupying an axial slice [ZBottom, ZTop] of its block. Once axial
// expansion begins, a component's extent is independent of its parent block;
// the block's extent is derived from its target component.
//
// In-plane dimensions are held at input (cold) temperature throughout:
// radial expansion is outside this model.
type Component struct {
	Name     string
	Flags    Flags
	Shape    geom.Shape
	Material material.Material

	// Temperature is the current temperature in C; InputTemperature is the
	// as-built (cold) temperature the dimensions were specified at.
	Temperature      float64
	InputTemperature float64

	// Axial extent in cm. Invariant: Height() == ZTop - ZBottom.
	ZBottom float64
	ZTop    float64

	// NumberDensities maps nuclide labels to atom densities in atoms/(b·cm).
	NumberDensities map[string]float64

	// Lattice, when non-nil, records the multi-pin grid positions this
	// component occupies.
	Lattice Lattice

	cachedVolume float64
	volumeValid  bool
}

// Height returns the axial extent in cm.
func (c *Component) Height() float64 {
	return c.ZTop - c.ZBottom
}

// SetHeight moves ZTop so that the component has height h, keeping ZBottom.
func (c *Component) SetHeight(h float64) {
	c.ZTop = c.ZBottom + h
	c.volumeValid = false
}

// Mult returns the number of identical instances of this component.
func (c *Component) Mult() float64 {
	return c.Shape.Multiplicity()
}

// ContainsSolidMaterial reports whether the component is solid. Fluid
// components (coolant, fill gas) never drive or link axial expansion.
func (c *Component) ContainsSolidMaterial() bool {
	return c.Material != nil && c.Material.IsSolid()
}

// ThermalExpansionFactor returns the axial growth ratio L(tc)/L(t0) from the
// material's linear expansion model.
func (c *Component) ThermalExpansionFactor(t0, tc float64) float64 {
	return 1 + c.Material.LinearExpansionFactor(tc, t0)
}

// ChangeNDensByFactor scales every nuclide number density by factor.
func (c *Component) ChangeNDensByFactor(factor float64) {
	for nuc := range c.NumberDensities {
		c.NumberDensities[nuc] *= factor
	}
}

// InnerDiameter returns the inner bounding-circle diameter in cm. With cold
// true the as-input dimension is returned; otherwise the dimension is
// expanded to the component's current temperature.
func (c *Component) InnerDiameter(cold bool) float64 {
	return c.Shape.InnerDiameter(c.dimFactor(cold))
}

// OuterDiameter returns the outer bounding-circle diameter in cm.
func (c *Component) OuterDiameter(cold bool) float64 {
	return c.Shape.OuterDiameter(c.dimFactor(cold))
}

func (c *Component) dimFactor(cold bool) float64 {
	if cold || c.Material == nil {
		return 1
	}
	return 1 + c.Material.LinearExpansionFactor(c.Temperature, c.InputTemperature)
}

// Area returns the total cross-sectional area (all instances) at cold
// dimensions, in cm².
func (c *Component) Area() float64 {
	return c.Shape.Area(1) * c.Mult()
}

// Volume returns the component volume in cm³.
func (c *Component) Volume() float64 {
	if !c.volumeValid {
		c.cachedVolume = c.Area() * c.Height()
		c.volumeValid = true
	}
	return c.cachedVolume
}

// NuclideMass returns the mass of one nuclide in grams.
func (c *Component) NuclideMass(nuclide string) (float64, error) {
	ndens, ok := c.NumberDensities[nuclide]
	if !ok {
		return 0, nil
	}
	aw, err := AtomicWeight(nuclide)
	if err != nil {
		return 0, fmt.Errorf("component %s: %w", c.Name, err)
	}
	return ndens * AtomsPerBarnCm * c.Volume() * aw / AvogadroNumber, nil
}

// Mass returns the total nuclide mass in grams.
func (c *Component) Mass() (float64, error) {
	total := 0.0
	for nuc := range c.NumberDensities {
		m, err := c.NuclideMass(nuc)
		if err != nil {
			return 0, err
		}
		total += m
	}
	return total, nil
}

// ClearCache invalidates any derived quantities cached on the component.
// Must be called after geometry mutations.
func (c *Component) ClearCache() {
	c.volumeValid = false
}
