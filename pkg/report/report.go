package report

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/nucleonics/coreaxial/pkg/core"
)

// AssemblySummary is the mass and geometry inventory of one assembly.
type AssemblySummary struct {
	Assembly    string  `json:"assembly"`
	Num         int     `json:"num"`
	TotalHeight float64 `json:"total_height_cm"`
	TotalMass   float64 `json:"total_mass_g"`

	Blocks []BlockSummary `json:"blocks"`
}

// BlockSummary is the inventory of one block.
type BlockSummary struct {
	Name    string  `json:"name"`
	Flags   string  `json:"flags,omitempty"`
	ZBottom float64 `json:"z_bottom_cm"`
	ZTop    float64 `json:"z_top_cm"`
	Height  float64 `json:"height_cm"`

	// HeightBOL is the beginning-of-life height baseline, zero when the
	// assembly has not been through cold-to-hot construction.
	HeightBOL float64 `json:"height_bol_cm,omitempty"`

	// MeanSolidTemp is the mean current temperature over the block's solid
	// components, in C. Zero when the block holds no solids.
	MeanSolidTemp float64 `json:"mean_solid_temp_c"`

	Mass       float64            `json:"mass_g"`
	Components []ComponentSummary `json:"components"`
}

// ComponentSummary is the inventory of one component.
type ComponentSummary struct {
	Name        string             `json:"name"`
	Material    string             `json:"material"`
	ZBottom     float64            `json:"z_bottom_cm"`
	ZTop        float64            `json:"z_top_cm"`
	Mult        float64            `json:"mult"`
	Temperature float64            `json:"temperature_c"`
	Mass        float64            `json:"mass_g"`
	Nuclides    map[string]float64 `json:"nuclide_masses_g,omitempty"`
}

// Summarize builds the mass and geometry inventory of an assembly.
func Summarize(asm *core.Assembly) (*AssemblySummary, error) {
	s := &AssemblySummary{
		Assembly:    asm.Name,
		Num:         asm.Num,
		TotalHeight: asm.TotalHeight(),
	}

	for _, b := range asm.Blocks {
		bs, err := summarizeBlock(b)
		if err != nil {
			return nil, fmt.Errorf("assembly %s: %w", asm.Name, err)
		}
		s.Blocks = append(s.Blocks, bs)
		s.TotalMass += bs.Mass
	}
	return s, nil
}

func summarizeBlock(b *core.Block) (BlockSummary, error) {
	bs := BlockSummary{
		Name:      b.Name,
		Flags:     b.Flags.String(),
		ZBottom:   b.ZBottom,
		ZTop:      b.ZTop,
		Height:    b.Height,
		HeightBOL: b.HeightBOL,
	}

	var solidTemps []float64
	for _, c := range b.Components {
		cs, err := summarizeComponent(c)
		if err != nil {
			return BlockSummary{}, fmt.Errorf("block %s: %w", b.Name, err)
		}
		bs.Components = append(bs.Components, cs)
		bs.Mass += cs.Mass
		if c.ContainsSolidMaterial() {
			solidTemps = append(solidTemps, c.Temperature)
		}
	}
	if len(solidTemps) > 0 {
		bs.MeanSolidTemp = stat.Mean(solidTemps, nil)
	}
	return bs, nil
}

func summarizeComponent(c *core.Component) (ComponentSummary, error) {
	cs := ComponentSummary{
		Name:        c.Name,
		ZBottom:     c.ZBottom,
		ZTop:        c.ZTop,
		Mult:        c.Mult(),
		Temperature: c.Temperature,
	}
	if c.Material != nil {
		cs.Material = c.Material.Name()
	}

	for nuc := range c.NumberDensities {
		m, err := c.NuclideMass(nuc)
		if err != nil {
			return ComponentSummary{}, err
		}
		if cs.Nuclides == nil {
			cs.Nuclides = make(map[string]float64, len(c.NumberDensities))
		}
		cs.Nuclides[nuc] = m
		cs.Mass += m
	}
	return cs, nil
}
