package spec

import (
	"fmt"

	"github.com/nucleonics/coreaxial/pkg/core"
	"github.com/nucleonics/coreaxial/pkg/geom"
	"github.com/nucleonics/coreaxial/pkg/material"
)

// Build constructs the assembly described by the case, stacking blocks bottom
// to top from the given block heights. The numberer assigns the assembly
// number.
func (cs *CaseSpec) Build(numberer *core.Numberer) (*core.Assembly, error) {
	def := cs.Assembly
	if def.Name == "" {
		return nil, fmt.Errorf("assembly has no name")
	}
	if len(def.Blocks) == 0 {
		return nil, fmt.Errorf("assembly %s has no blocks", def.Name)
	}

	asm := &core.Assembly{
		Name: def.Name,
		Num:  numberer.Next(),
	}

	bottom := 0.0
	for _, bd := range def.Blocks {
		blk, err := buildBlock(bd, bottom)
		if err != nil {
			return nil, fmt.Errorf("assembly %s: %w", def.Name, err)
		}
		asm.Blocks = append(asm.Blocks, blk)
		bottom = blk.ZTop
	}
	return asm, nil
}

func buildBlock(bd BlockDef, bottom float64) (*core.Block, error) {
	if bd.Height <= 0 {
		return nil, fmt.Errorf("block %s: non-positive height %g", bd.Name, bd.Height)
	}
	flags, err := core.ParseFlags(bd.Flags)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", bd.Name, err)
	}

	blk := &core.Block{
		Name:                    bd.Name,
		Flags:                   flags,
		ZBottom:                 bottom,
		ZTop:                    bottom + bd.Height,
		Height:                  bd.Height,
		AxialExpTargetComponent: bd.TargetComponent,
	}
	blk.UpdateCenter()

	for _, cd := range bd.Components {
		comp, err := buildComponent(cd, blk)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", bd.Name, err)
		}
		blk.Components = append(blk.Components, comp)
	}
	if bd.TargetComponent != "" && blk.ComponentByName(bd.TargetComponent) == nil {
		return nil, fmt.Errorf("block %s: target component %q not defined", bd.Name, bd.TargetComponent)
	}
	return blk, nil
}

func buildComponent(cd ComponentDef, blk *core.Block) (*core.Component, error) {
	flags, err := core.ParseFlags(cd.Flags)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", cd.Name, err)
	}
	mat, err := material.Lookup(cd.Material)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", cd.Name, err)
	}
	shape, err := buildShape(cd.Shape)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", cd.Name, err)
	}

	comp := &core.Component{
		Name:             cd.Name,
		Flags:            flags,
		Shape:            shape,
		Material:         mat,
		Temperature:      cd.Temperature,
		InputTemperature: cd.InputTemperature,
		ZBottom:          blk.ZBottom,
		ZTop:             blk.ZTop,
		NumberDensities:  make(map[string]float64, len(cd.NumberDensities)),
	}
	for nuc, nd := range cd.NumberDensities {
		if _, err := core.AtomicWeight(nuc); err != nil {
			return nil, fmt.Errorf("component %s: %w", cd.Name, err)
		}
		comp.NumberDensities[nuc] = nd
	}
	for _, ij := range cd.Lattice {
		comp.Lattice = append(comp.Lattice, core.IJ{I: ij[0], J: ij[1]})
	}
	return comp, nil
}

func buildShape(sd ShapeDef) (geom.Shape, error) {
	switch sd.Kind {
	case "circle":
		return geom.Circle(sd.OD, sd.ID, sd.Mult), nil
	case "hexagon":
		return geom.Hexagon(sd.OP, sd.IP, sd.Mult), nil
	case "rectangle":
		return geom.Rectangle(sd.OuterW, sd.OuterL, sd.InnerW, sd.InnerL, sd.Mult), nil
	case "helix":
		return geom.Helix(sd.OD, sd.ID, sd.HelixPitch, sd.Mult), nil
	case "unshaped":
		return geom.Unshaped(sd.Mult), nil
	default:
		return geom.Shape{}, fmt.Errorf("unknown shape kind %q", sd.Kind)
	}
}
