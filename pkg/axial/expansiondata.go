package axial

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/nucleonics/coreaxial/pkg/core"
)

// targetFlagsInPreferredOrder is the automatic target-component selection
// order: the first category with a match decides the block's height driver.
var targetFlagsInPreferredOrder = []core.Flags{
	core.FlagFuel,
	core.FlagControl,
	core.FlagPoison,
	core.FlagShield,
	core.FlagSlug,
}

// ExpansionData owns expansion-factor computation and target-component
// bookkeeping for one assembly. It is created by Changer.SetAssembly, mutated
// through the expansion call, and discarded after.
type ExpansionData struct {
	assembly *core.Assembly
	log      *zap.Logger

	// referenceTemps holds each component's temperature before the most
	// recent update: factors are computed relative to where a component was,
	// not where it started, so incremental expansion round-trips.
	referenceTemps map[*core.Component]float64
	factors        map[*core.Component]float64
	targets        map[*core.Component]bool

	// expandFromColdInput selects the factor baseline: the component's input
	// (cold) temperature instead of its reference temperature.
	expandFromColdInput bool
}

// NewExpansionData returns empty expansion data for the assembly.
func NewExpansionData(a *core.Assembly, expandFromColdInput bool, log *zap.Logger) *ExpansionData {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExpansionData{
		assembly:            a,
		log:                 log,
		referenceTemps:      make(map[*core.Component]float64),
		factors:             make(map[*core.Component]float64),
		targets:             make(map[*core.Component]bool),
		expandFromColdInput: expandFromColdInput,
	}
}

// SetExpansionFactors stores explicit L1/L0 growth factors for components.
func (d *ExpansionData) SetExpansionFactors(comps []*core.Component, factors []float64) error {
	if len(comps) != len(factors) {
		return fmt.Errorf("%d components but %d expansion factors", len(comps), len(factors))
	}
	for i, f := range factors {
		if f <= 0 {
			return fmt.Errorf("expansion factor %g for component %s is not physical (must be > 0)",
				f, comps[i].Name)
		}
	}
	for i, c := range comps {
		d.factors[c] = factors[i]
	}
	return nil
}

// UpdateComponentTemp records the component's current temperature as its new
// reference, then applies newTemp.
func (d *ExpansionData) UpdateComponentTemp(c *core.Component, newTemp float64) {
	d.referenceTemps[c] = c.Temperature
	c.Temperature = newTemp
}

// UpdateComponentTempsFrom1DField assigns each block the average of all
// temperature samples whose axial position falls inside the block, applied to
// every component in the block. tempGrid and tempField are parallel arrays of
// axial position (cm) and temperature (C).
func (d *ExpansionData) UpdateComponentTempsFrom1DField(tempGrid, tempField []float64) error {
	if len(tempGrid) != len(tempField) {
		return fmt.Errorf("temperature grid has %d points but field has %d values",
			len(tempGrid), len(tempField))
	}
	for _, b := range d.assembly.Blocks {
		var samples []float64
		for i, z := range tempGrid {
			if z >= b.ZBottom && z <= b.ZTop {
				samples = append(samples, tempField[i])
			}
		}
		if len(samples) == 0 {
			return fmt.Errorf("no temperature samples within block %s [%g, %g] cm; "+
				"the temperature grid is too coarse", b.Name, b.ZBottom, b.ZTop)
		}
		avg := stat.Mean(samples, nil)
		for _, c := range b.Components {
			d.UpdateComponentTemp(c, avg)
		}
	}
	return nil
}

// ComputeThermalExpansionFactors computes L1/L0 for every solid component
// from its material's expansion model. The baseline temperature is the input
// (cold) temperature when expanding from cold input, otherwise the
// component's reference temperature; a component never given a reference
// keeps a no-op factor of 1.
func (d *ExpansionData) ComputeThermalExpansionFactors() {
	for _, b := range d.assembly.Blocks {
		for _, c := range b.SolidComponents() {
			switch {
			case d.expandFromColdInput:
				d.factors[c] = c.ThermalExpansionFactor(c.InputTemperature, c.Temperature)
			default:
				ref, ok := d.referenceTemps[c]
				if !ok {
					d.factors[c] = 1.0
					continue
				}
				d.factors[c] = c.ThermalExpansionFactor(ref, c.Temperature)
			}
		}
	}
}

// ExpansionFactor returns the stored growth factor for c, defaulting to 1.
func (d *ExpansionData) ExpansionFactor(c *core.Component) float64 {
	if f, ok := d.factors[c]; ok {
		return f
	}
	return 1.0
}

// SetTargetComponent marks c as its block's height-determining component.
func (d *ExpansionData) SetTargetComponent(c *core.Component) {
	d.targets[c] = true
}

// IsTargetComponent reports whether c determines its block's height.
func (d *ExpansionData) IsTargetComponent(c *core.Component) bool {
	return d.targets[c]
}

// DetermineTargetComponent selects the component whose expansion drives the
// block's height and records its name on the block. With a non-zero
// flagOfInterest, exactly one component with that flag must exist. Otherwise
// selection walks the preferred flag order; if no category matches, a
// component whose flags intersect the block's is accepted (logged, since
// this fallback can pick an unintended driver in multi-flag blocks); a block
// with a single solid component falls back to that component. Zero or
// multiple candidates is a configuration error.
func (d *ExpansionData) DetermineTargetComponent(b *core.Block, flagOfInterest core.Flags) error {
	var candidates []*core.Component

	if flagOfInterest != 0 {
		candidates = solidComponentsWithFlags(b, flagOfInterest)
	} else {
		for _, flag := range targetFlagsInPreferredOrder {
			if matches := solidComponentsWithFlags(b, flag); len(matches) > 0 {
				candidates = matches
				break
			}
		}
		if len(candidates) == 0 {
			for _, c := range b.SolidComponents() {
				if c.Flags.Intersects(b.Flags) {
					candidates = append(candidates, c)
				}
			}
			if len(candidates) > 0 {
				d.log.Warn("target component chosen by block-flag intersection fallback; "+
					"set an explicit axial expansion target to silence this",
					zap.String("block", b.Name),
					zap.String("component", candidates[0].Name))
			}
		}
	}

	if len(candidates) == 0 {
		if solids := b.SolidComponents(); len(solids) == 1 {
			candidates = solids
		}
	}

	switch len(candidates) {
	case 0:
		return fmt.Errorf("%w in block %s (flags: %s)", ErrNoTargetComponent, b.Name, b.Flags)
	case 1:
		b.AxialExpTargetComponent = candidates[0].Name
		d.SetTargetComponent(candidates[0])
		return nil
	default:
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = c.Name
		}
		return fmt.Errorf("%w in block %s: %v; set an explicit axial expansion target",
			ErrAmbiguousTarget, b.Name, names)
	}
}

// Reset discards all stored factors, reference temperatures, and targets.
func (d *ExpansionData) Reset() {
	d.referenceTemps = make(map[*core.Component]float64)
	d.factors = make(map[*core.Component]float64)
	d.targets = make(map[*core.Component]bool)
}

func solidComponentsWithFlags(b *core.Block, want core.Flags) []*core.Component {
	var matches []*core.Component
	for _, c := range b.SolidComponents() {
		if c.Flags.Has(want) {
			matches = append(matches, c)
		}
	}
	return matches
}
