package axial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nucleonics/coreaxial/pkg/core"
	"github.com/nucleonics/coreaxial/pkg/geom"
)

func TestSetExpansionFactorsLengthMismatch(t *testing.T) {
	a := buildPinAssembly(t)
	d := NewExpansionData(a, false, nil)
	comps := solidComponents(a)
	err := d.SetExpansionFactors(comps, []float64{1.01})
	require.Error(t, err)
}

func TestSetExpansionFactorsRejectsNonPositive(t *testing.T) {
	a := buildPinAssembly(t)
	d := NewExpansionData(a, false, nil)
	comps := solidComponents(a)

	factors := make([]float64, len(comps))
	for i := range factors {
		factors[i] = 1.01
	}
	factors[0] = 0
	require.Error(t, d.SetExpansionFactors(comps, factors))

	factors[0] = -0.5
	require.Error(t, d.SetExpansionFactors(comps, factors))
}

func TestUpdateComponentTempRecordsReference(t *testing.T) {
	a := buildPinAssembly(t)
	d := NewExpansionData(a, false, nil)
	fuel := a.Blocks[0].ComponentByName("fuel")

	d.UpdateComponentTemp(fuel, 450)
	require.Equal(t, 450.0, fuel.Temperature)
	require.Equal(t, 25.0, d.referenceTemps[fuel])

	// A second update references where the component was, not where it started.
	d.UpdateComponentTemp(fuel, 500)
	require.Equal(t, 450.0, d.referenceTemps[fuel])
}

func TestUpdateTempsFrom1DFieldBlockAverages(t *testing.T) {
	a := buildPinAssembly(t)
	d := NewExpansionData(a, false, nil)

	// Fuel block spans [0, 25]: samples 400 and 500 average to 450.
	// Plenum [25, 45]: single sample 430. Dummy [45, 55]: 390.
	grid := []float64{5, 20, 30, 50}
	field := []float64{400, 500, 430, 390}
	require.NoError(t, d.UpdateComponentTempsFrom1DField(grid, field))

	require.Equal(t, 450.0, a.Blocks[0].ComponentByName("fuel").Temperature)
	require.Equal(t, 450.0, a.Blocks[0].ComponentByName("coolant").Temperature)
	require.Equal(t, 430.0, a.Blocks[1].ComponentByName("clad").Temperature)
	require.Equal(t, 390.0, a.Blocks[2].ComponentByName("coolant").Temperature)
}

func TestUpdateTempsFrom1DFieldLengthMismatch(t *testing.T) {
	a := buildPinAssembly(t)
	d := NewExpansionData(a, false, nil)
	err := d.UpdateComponentTempsFrom1DField([]float64{1, 2}, []float64{400})
	require.Error(t, err)
}

func TestUpdateTempsFrom1DFieldCoarseGrid(t *testing.T) {
	a := buildPinAssembly(t)
	d := NewExpansionData(a, false, nil)
	// No sample lands in the plenum block [25, 45].
	err := d.UpdateComponentTempsFrom1DField([]float64{10, 50}, []float64{400, 390})
	require.Error(t, err)
	require.Contains(t, err.Error(), "plenum")
}

func TestComputeThermalExpansionFactorsDefaultsToUnity(t *testing.T) {
	a := buildPinAssembly(t)
	d := NewExpansionData(a, false, nil)
	d.ComputeThermalExpansionFactors()
	for _, c := range solidComponents(a) {
		require.Equal(t, 1.0, d.ExpansionFactor(c))
	}
}

func TestComputeThermalExpansionFactorsFromReference(t *testing.T) {
	a := buildPinAssembly(t)
	d := NewExpansionData(a, false, nil)
	fuel := a.Blocks[0].ComponentByName("fuel")

	d.UpdateComponentTemp(fuel, 450)
	d.ComputeThermalExpansionFactors()

	want := fuel.ThermalExpansionFactor(25, 450)
	require.Equal(t, want, d.ExpansionFactor(fuel))
	require.Greater(t, want, 1.0)
}

func TestComputeThermalExpansionFactorsFromColdInput(t *testing.T) {
	a := buildPinAssembly(t)
	fuel := a.Blocks[0].ComponentByName("fuel")
	fuel.Temperature = 450
	fuel.InputTemperature = 25

	d := NewExpansionData(a, true, nil)
	d.ComputeThermalExpansionFactors()
	require.Equal(t, fuel.ThermalExpansionFactor(25, 450), d.ExpansionFactor(fuel))
}

func TestDetermineTargetPrefersFuel(t *testing.T) {
	a := buildFullAssembly(t)
	d := NewExpansionData(a, false, nil)
	b := a.Blocks[0]

	require.NoError(t, d.DetermineTargetComponent(b, 0))
	require.Equal(t, "fuel", b.AxialExpTargetComponent)
	require.True(t, d.IsTargetComponent(b.ComponentByName("fuel")))
	require.False(t, d.IsTargetComponent(b.ComponentByName("clad")))
}

func TestDetermineTargetWithFlagOfInterest(t *testing.T) {
	a := buildFullAssembly(t)
	d := NewExpansionData(a, false, nil)
	b := a.Blocks[1] // plenum

	require.NoError(t, d.DetermineTargetComponent(b, core.FlagClad))
	require.Equal(t, "clad", b.AxialExpTargetComponent)
}

func TestDetermineTargetAmbiguous(t *testing.T) {
	b := &core.Block{Name: "twin-fuel", Flags: core.FlagFuel, Components: []*core.Component{
		newComponent(t, "fuel-a", core.FlagFuel, geom.Circle(0.4, 0, 1), "uzr", fuelNDens()),
		newComponent(t, "fuel-b", core.FlagFuel, geom.Circle(0.5, 0, 1), "uzr", fuelNDens()),
	}}
	a := &core.Assembly{Name: "a", Blocks: []*core.Block{b}}
	d := NewExpansionData(a, false, nil)

	err := d.DetermineTargetComponent(b, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAmbiguousTarget))
}

func TestDetermineTargetNoCandidates(t *testing.T) {
	b := &core.Block{Name: "structure", Flags: core.FlagGrid, Components: []*core.Component{
		newComponent(t, "plate-a", core.FlagStructure, geom.Circle(1.0, 0, 1), "ss316", steelNDens()),
		newComponent(t, "plate-b", core.FlagStructure, geom.Circle(2.0, 1.5, 1), "ss316", steelNDens()),
	}}
	a := &core.Assembly{Name: "a", Blocks: []*core.Block{b}}
	d := NewExpansionData(a, false, nil)

	err := d.DetermineTargetComponent(b, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoTargetComponent))
}

func TestDetermineTargetFlagIntersectionFallback(t *testing.T) {
	// No preferred-order flag matches, but the duct component shares the
	// block's duct flag.
	b := &core.Block{Name: "duct-only", Flags: core.FlagDuct, Components: []*core.Component{
		newComponent(t, "duct", core.FlagDuct, geom.Hexagon(16, 15.2, 1), "ht9", steelNDens()),
		newComponent(t, "liner", core.FlagStructure, geom.Hexagon(15.2, 15.0, 1), "ss316", steelNDens()),
	}}
	a := &core.Assembly{Name: "a", Blocks: []*core.Block{b}}
	d := NewExpansionData(a, false, nil)

	require.NoError(t, d.DetermineTargetComponent(b, 0))
	require.Equal(t, "duct", b.AxialExpTargetComponent)
}

func TestDetermineTargetSingleSolidFallback(t *testing.T) {
	b := &core.Block{Name: "grid-plate", Flags: core.FlagGrid, Components: []*core.Component{
		newComponent(t, "plate", core.FlagStructure, geom.Circle(1.0, 0, 1), "ss316", steelNDens()),
		newComponent(t, "coolant", core.FlagCoolant, geom.Hexagon(16, 0, 1), "sodium", sodiumNDens()),
	}}
	a := &core.Assembly{Name: "a", Blocks: []*core.Block{b}}
	d := NewExpansionData(a, false, nil)

	require.NoError(t, d.DetermineTargetComponent(b, 0))
	require.Equal(t, "plate", b.AxialExpTargetComponent)
}

func TestReset(t *testing.T) {
	a := buildPinAssembly(t)
	d := NewExpansionData(a, false, nil)
	fuel := a.Blocks[0].ComponentByName("fuel")

	d.UpdateComponentTemp(fuel, 450)
	d.ComputeThermalExpansionFactors()
	d.SetTargetComponent(fuel)
	d.Reset()

	require.Equal(t, 1.0, d.ExpansionFactor(fuel))
	require.False(t, d.IsTargetComponent(fuel))
	require.Empty(t, d.referenceTemps)
}
