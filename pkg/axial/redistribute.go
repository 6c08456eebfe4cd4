package axial

import (
	"fmt"
	"math"

	"github.com/nucleonics/coreaxial/pkg/core"
)

// alignLinkedPair moves the shared boundary of an axially linked multi-pin
// pair onto the block boundary, transferring the mass slice that crosses
// with it. lower and upper must currently share a boundary
// (lower.ZTop == upper.ZBottom). Redistribution is isothermal: neither
// component's temperature changes.
func (ch *Changer) alignLinkedPair(lower, upper *core.Component, blockBoundary float64) error {
	delta := blockBoundary - lower.ZTop
	if delta == 0 {
		return nil
	}
	if delta < 0 {
		// Boundary moves down: the lower component cedes its top slice.
		return ch.redistributeMass(lower, upper, delta)
	}
	// Boundary moves up: the upper component cedes its bottom slice.
	return ch.redistributeMass(upper, lower, delta)
}

// redistributeMass slides the shared boundary of a linked pair by deltaZTop
// and moves the proportional nuclide mass slice
//
//	amount = fromComp.mass * |deltaZTop| / fromComp.height
//
// from the ceding component to the receiving one. The pair's total nuclide
// mass is invariant; only its split changes.
func (ch *Changer) redistributeMass(from, to *core.Component, deltaZTop float64) error {
	h := from.Height()
	if h <= 0 {
		return fmt.Errorf("cannot redistribute mass from component %s with height %g", from.Name, h)
	}
	frac := math.Abs(deltaZTop) / h

	preFrom, err := nuclideMasses(from)
	if err != nil {
		return err
	}
	preTo, err := nuclideMasses(to)
	if err != nil {
		return err
	}
	moved := make(map[string]float64, len(preFrom))
	for nuc, m := range preFrom {
		moved[nuc] = m * frac
	}

	if from.ZTop == to.ZBottom {
		shiftLinkedCompsForDelta(from, to, -math.Abs(deltaZTop))
	} else {
		shiftLinkedCompsForDelta(to, from, math.Abs(deltaZTop))
	}

	if err := removeMassFromComponent(from, preFrom, moved); err != nil {
		return fmt.Errorf("component %s: %w", from.Name, err)
	}
	return addMassToComponent(to, preTo, moved)
}

// shiftLinkedCompsForDelta moves the shared boundary between a lower
// component and the upper one docked on it by delta: lower's top and upper's
// bottom shift together. Purely geometric; densities are untouched.
func shiftLinkedCompsForDelta(lower, upper *core.Component, delta float64) {
	lower.ZTop += delta
	upper.ZBottom += delta
	lower.ClearCache()
	upper.ClearCache()
}

// addMassToComponent sets c's densities so that, at its current geometry,
// each nuclide's mass equals base[nuc] + add[nuc].
func addMassToComponent(c *core.Component, base, add map[string]float64) error {
	target := make(map[string]float64, len(base)+len(add))
	for nuc, m := range base {
		target[nuc] = m
	}
	for nuc, m := range add {
		target[nuc] += m
	}
	return setNuclideMasses(c, target)
}

// removeMassFromComponent sets c's densities so that, at its current
// geometry, each nuclide's mass equals base[nuc] - remove[nuc].
func removeMassFromComponent(c *core.Component, base, remove map[string]float64) error {
	target := make(map[string]float64, len(base))
	for nuc, m := range base {
		target[nuc] = m
	}
	for nuc, m := range remove {
		target[nuc] -= m
		if target[nuc] < 0 {
			return fmt.Errorf("removing %g g of %s exceeds inventory %g g", m, nuc, base[nuc])
		}
	}
	return setNuclideMasses(c, target)
}

func nuclideMasses(c *core.Component) (map[string]float64, error) {
	masses := make(map[string]float64, len(c.NumberDensities))
	for nuc := range c.NumberDensities {
		m, err := c.NuclideMass(nuc)
		if err != nil {
			return nil, err
		}
		masses[nuc] = m
	}
	return masses, nil
}

func setNuclideMasses(c *core.Component, masses map[string]float64) error {
	vol := c.Volume()
	if vol <= 0 {
		return fmt.Errorf("component %s has non-positive volume %g", c.Name, vol)
	}
	for nuc, m := range masses {
		aw, err := core.AtomicWeight(nuc)
		if err != nil {
			return fmt.Errorf("component %s: %w", c.Name, err)
		}
		c.NumberDensities[nuc] = m * core.AvogadroNumber / (aw * vol * core.AtomsPerBarnCm)
	}
	return nil
}
