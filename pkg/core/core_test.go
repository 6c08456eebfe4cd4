package core

import (
	"testing"

	"github.com/nucleonics/coreaxial/pkg/geom"
	"github.com/nucleonics/coreaxial/pkg/material"
	"github.com/stretchr/testify/require"
)

func mustMaterial(t *testing.T, name string) material.Material {
	t.Helper()
	m, err := material.Lookup(name)
	require.NoError(t, err)
	return m
}

func testComponent(t *testing.T, name string) *Component {
	t.Helper()
	return &Component{
		Name:             name,
		Flags:            FlagFuel,
		Shape:            geom.Circle(0.76, 0, 169),
		Material:         mustMaterial(t, "uzr"),
		Temperature:      25,
		InputTemperature: 25,
		ZBottom:          0,
		ZTop:             25,
		NumberDensities: map[string]float64{
			"U235": 3.5e-3,
			"U238": 1.8e-2,
			"ZR":   7.0e-3,
		},
	}
}

func TestFlagsHasAndIntersects(t *testing.T) {
	f := FlagFuel | FlagClad
	require.True(t, f.Has(FlagFuel))
	require.True(t, f.Has(FlagFuel|FlagClad))
	require.False(t, f.Has(FlagFuel|FlagDummy))
	require.True(t, f.Intersects(FlagClad|FlagDummy))
	require.False(t, f.Intersects(FlagDummy))
}

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags([]string{"fuel", "Clad"})
	require.NoError(t, err)
	require.Equal(t, FlagFuel|FlagClad, f)

	_, err = ParseFlags([]string{"bogus"})
	require.Error(t, err)
}

func TestLatticeSameIndices(t *testing.T) {
	a := Lattice{{0, 0}, {1, 0}, {0, 1}}
	b := Lattice{{0, 1}, {0, 0}, {1, 0}}
	c := Lattice{{0, 0}, {1, 1}, {0, 1}}
	require.True(t, a.SameIndices(b))
	require.False(t, a.SameIndices(c))
	require.False(t, a.SameIndices(a[:2]))
}

func TestComponentHeightInvariant(t *testing.T) {
	c := testComponent(t, "fuel")
	require.Equal(t, 25.0, c.Height())
	c.SetHeight(26.5)
	require.Equal(t, 26.5, c.ZTop-c.ZBottom)
}

func TestChangeNDensByFactor(t *testing.T) {
	c := testComponent(t, "fuel")
	before := c.NumberDensities["U235"]
	c.ChangeNDensByFactor(0.5)
	require.Equal(t, before*0.5, c.NumberDensities["U235"])
}

func TestMassScalesWithHeightAtFixedDensity(t *testing.T) {
	c := testComponent(t, "fuel")
	m1, err := c.Mass()
	require.NoError(t, err)

	c.SetHeight(c.Height() * 2)
	c.ClearCache()
	m2, err := c.Mass()
	require.NoError(t, err)
	require.InEpsilon(t, 2.0, m2/m1, 1e-12)
}

func TestMassConservedUnderGrowthWithDensityRescale(t *testing.T) {
	c := testComponent(t, "fuel")
	m1, err := c.Mass()
	require.NoError(t, err)

	growth := 1.01
	c.SetHeight(c.Height() * growth)
	c.ChangeNDensByFactor(1 / growth)
	c.ClearCache()
	m2, err := c.Mass()
	require.NoError(t, err)
	require.InEpsilon(t, 1.0, m2/m1, 1e-13)
}

func TestThermalExpansionFactorAboveOneOnHeating(t *testing.T) {
	c := testComponent(t, "fuel")
	f := c.ThermalExpansionFactor(25, 500)
	require.Greater(t, f, 1.0)
	require.Less(t, f, 1.05)
}

func TestNuclideMassUnknownNuclide(t *testing.T) {
	c := testComponent(t, "fuel")
	c.NumberDensities["XX99"] = 1e-3
	_, err := c.Mass()
	require.Error(t, err)
}

func TestBlockSolidComponents(t *testing.T) {
	b := &Block{
		Name:  "fuel-1",
		Flags: FlagFuel,
		Components: []*Component{
			testComponent(t, "fuel"),
			{
				Name:     "coolant",
				Flags:    FlagCoolant,
				Shape:    geom.Hexagon(16, 0, 1),
				Material: mustMaterial(t, "sodium"),
			},
		},
	}
	solids := b.SolidComponents()
	require.Len(t, solids, 1)
	require.Equal(t, "fuel", solids[0].Name)
	require.Equal(t, "coolant", b.ComponentByName("coolant").Name)
	require.Nil(t, b.ComponentByName("missing"))
}

func TestAssemblySetBlockMeshConservesMass(t *testing.T) {
	fuel := testComponent(t, "fuel")
	b := &Block{Name: "fuel-1", Flags: FlagFuel, Components: []*Component{fuel},
		ZBottom: 0, ZTop: 25, Height: 25}
	a := &Assembly{Name: "a-0001", Blocks: []*Block{b}}

	before, err := fuel.Mass()
	require.NoError(t, err)

	require.NoError(t, a.SetBlockMesh([]float64{27.5}, true))
	require.Equal(t, 27.5, b.ZTop)
	require.Equal(t, 27.5, b.Height)
	require.Equal(t, 27.5, fuel.ZTop)

	after, err := fuel.Mass()
	require.NoError(t, err)
	require.InEpsilon(t, 1.0, after/before, 1e-13)
}

func TestAssemblySetBlockMeshRejectsBadInput(t *testing.T) {
	b := &Block{Name: "b", ZTop: 10, Height: 10}
	a := &Assembly{Name: "a", Blocks: []*Block{b}}
	require.Error(t, a.SetBlockMesh([]float64{1, 2}, false))
	require.Error(t, a.SetBlockMesh([]float64{-1}, false))
}

func TestNumberer(t *testing.T) {
	n := NewNumberer(1)
	require.Equal(t, 1, n.Next())
	require.Equal(t, 2, n.Next())
}

func TestCoreReferenceAssembly(t *testing.T) {
	fuelBlock := func(name string) *Block {
		return &Block{Name: name, Flags: FlagFuel}
	}
	short := &Assembly{Name: "short", Blocks: []*Block{fuelBlock("f1")}}
	long := &Assembly{Name: "long", Blocks: []*Block{fuelBlock("f1"), fuelBlock("f2"), {Name: "dummy", Flags: FlagDummy}}}
	reflector := &Assembly{Name: "refl", Blocks: []*Block{{Name: "shield", Flags: FlagShield}}}

	c := &Core{Name: "core", Assemblies: []*Assembly{short, reflector, long}}
	ref, err := c.ReferenceAssembly()
	require.NoError(t, err)
	require.Same(t, long, ref)

	empty := &Core{Name: "empty", Assemblies: []*Assembly{reflector}}
	_, err = empty.ReferenceAssembly()
	require.Error(t, err)
}

func TestCoreUpdateAxialMesh(t *testing.T) {
	a := &Assembly{Name: "a", Blocks: []*Block{
		{Name: "f", Flags: FlagFuel, ZTop: 25, Height: 25},
		{Name: "d", Flags: FlagDummy, ZBottom: 25, ZTop: 40, Height: 15},
	}}
	c := &Core{Name: "core", Assemblies: []*Assembly{a}}
	require.NoError(t, c.UpdateAxialMesh())
	require.Equal(t, []float64{0, 25, 40}, c.AxialMesh)
}

func TestFlagsString(t *testing.T) {
	require.Equal(t, "none", Flags(0).String())
	require.Equal(t, "clad fuel", (FlagFuel | FlagClad).String())
}
