package axial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nucleonics/coreaxial/pkg/core"
	"github.com/nucleonics/coreaxial/pkg/geom"
	"github.com/nucleonics/coreaxial/pkg/material"
)

func mustMaterial(t *testing.T, name string) material.Material {
	t.Helper()
	m, err := material.Lookup(name)
	require.NoError(t, err)
	return m
}

func newComponent(t *testing.T, name string, flags core.Flags, shape geom.Shape, mat string, ndens map[string]float64) *core.Component {
	t.Helper()
	return &core.Component{
		Name:             name,
		Flags:            flags,
		Shape:            shape,
		Material:         mustMaterial(t, mat),
		Temperature:      25,
		InputTemperature: 25,
		NumberDensities:  ndens,
	}
}

func fuelNDens() map[string]float64 {
	return map[string]float64{"U235": 3.5e-3, "U238": 1.8e-2, "ZR": 7.0e-3}
}

func steelNDens() map[string]float64 {
	return map[string]float64{"FE": 6.0e-2, "CR": 1.0e-2, "NI": 1.0e-3}
}

func sodiumNDens() map[string]float64 {
	return map[string]float64{"NA23": 2.2e-2}
}

// stackBlocks assigns consistent axial extents bottom to top: every component
// spans its block.
func stackBlocks(blocks []*core.Block, heights []float64) {
	bottom := 0.0
	for i, b := range blocks {
		top := bottom + heights[i]
		b.ZBottom = bottom
		b.ZTop = top
		b.Height = heights[i]
		b.UpdateCenter()
		for _, c := range b.Components {
			c.ZBottom = bottom
			c.ZTop = top
		}
		bottom = top
	}
}

// buildPinAssembly returns a three-block assembly with a single solid
// component per block, so every solid component is its block's target and
// round trips are exact: fuel pin, plenum clad, sodium dummy.
func buildPinAssembly(t *testing.T) *core.Assembly {
	t.Helper()
	fuel := newComponent(t, "fuel", core.FlagFuel, geom.Circle(0.44, 0, 169), "uzr", fuelNDens())
	fuelBlock := &core.Block{Name: "fuel-1", Flags: core.FlagFuel,
		Components: []*core.Component{
			fuel,
			newComponent(t, "coolant", core.FlagCoolant, geom.Hexagon(16, 0, 1), "sodium", sodiumNDens()),
		}}

	clad := newComponent(t, "clad", core.FlagClad, geom.Circle(0.58, 0.50, 169), "ht9", steelNDens())
	plenumBlock := &core.Block{Name: "plenum", Flags: core.FlagPlenum,
		Components: []*core.Component{
			clad,
			newComponent(t, "gap", core.FlagBond, geom.Circle(0.50, 0, 169), "helium",
				map[string]float64{"HE4": 1.0e-5}),
		}}

	dummyBlock := &core.Block{Name: "dummy", Flags: core.FlagDummy,
		Components: []*core.Component{
			newComponent(t, "coolant", core.FlagCoolant, geom.Hexagon(16, 0, 1), "sodium", sodiumNDens()),
		}}

	blocks := []*core.Block{fuelBlock, plenumBlock, dummyBlock}
	stackBlocks(blocks, []float64{25, 20, 10})
	return &core.Assembly{Name: "pin-assembly", Num: 1, Blocks: blocks}
}

// buildFullAssembly returns a three-block assembly whose fuel block carries
// both a fuel pin and its clad, exercising multi-solid target selection and
// clad-to-clad linkage into the plenum.
func buildFullAssembly(t *testing.T) *core.Assembly {
	t.Helper()
	fuel := newComponent(t, "fuel", core.FlagFuel, geom.Circle(0.44, 0, 169), "uzr", fuelNDens())
	fuelClad := newComponent(t, "clad", core.FlagClad, geom.Circle(0.58, 0.50, 169), "ht9", steelNDens())
	fuelBlock := &core.Block{Name: "fuel-1", Flags: core.FlagFuel,
		Components: []*core.Component{
			fuel,
			fuelClad,
			newComponent(t, "coolant", core.FlagCoolant, geom.Hexagon(16, 0, 1), "sodium", sodiumNDens()),
		}}

	plenumClad := newComponent(t, "clad", core.FlagClad, geom.Circle(0.58, 0.50, 169), "ht9", steelNDens())
	plenumBlock := &core.Block{Name: "plenum", Flags: core.FlagPlenum,
		Components: []*core.Component{
			plenumClad,
			newComponent(t, "gap", core.FlagBond, geom.Circle(0.50, 0, 169), "helium",
				map[string]float64{"HE4": 1.0e-5}),
		}}

	dummyBlock := &core.Block{Name: "dummy", Flags: core.FlagDummy,
		Components: []*core.Component{
			newComponent(t, "coolant", core.FlagCoolant, geom.Hexagon(16, 0, 1), "sodium", sodiumNDens()),
		}}

	blocks := []*core.Block{fuelBlock, plenumBlock, dummyBlock}
	stackBlocks(blocks, []float64{25, 20, 10})
	return &core.Assembly{Name: "full-assembly", Num: 2, Blocks: blocks}
}

func solidComponents(a *core.Assembly) []*core.Component {
	var solids []*core.Component
	for _, b := range a.Blocks {
		solids = append(solids, b.SolidComponents()...)
	}
	return solids
}

func componentMasses(t *testing.T, a *core.Assembly) map[*core.Component]float64 {
	t.Helper()
	masses := make(map[*core.Component]float64)
	for _, c := range solidComponents(a) {
		m, err := c.Mass()
		require.NoError(t, err)
		masses[c] = m
	}
	return masses
}

func copyNDens(c *core.Component) map[string]float64 {
	out := make(map[string]float64, len(c.NumberDensities))
	for nuc, n := range c.NumberDensities {
		out[nuc] = n
	}
	return out
}
