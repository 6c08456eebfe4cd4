package core

import (
	"fmt"
)

// Assembly is a vertical stack of blocks, ordered bottom to top. The axial
// grid bounds (z-mesh) are the monotonic list of block boundaries starting
// at the assembly bottom.
type Assembly struct {
	Name string
	Num  int

	Blocks []*Block

	zBounds []float64
}

// Numberer hands out assembly numbers. It is owned by whatever construction
// context creates assemblies; there is no process-wide counter.
type Numberer struct {
	next int
}

// NewNumberer returns a numberer starting at start.
func NewNumberer(start int) *Numberer {
	return &Numberer{next: start}
}

// Next returns the next assembly number.
func (n *Numberer) Next() int {
	num := n.next
	n.next++
	return num
}

// TotalHeight returns the assembly height in cm: the top of the last block.
func (a *Assembly) TotalHeight() float64 {
	if len(a.Blocks) == 0 {
		return 0
	}
	return a.Blocks[len(a.Blocks)-1].ZTop
}

// AxialMesh returns the block top elevations, bottom to top.
func (a *Assembly) AxialMesh() []float64 {
	mesh := make([]float64, len(a.Blocks))
	for i, b := range a.Blocks {
		mesh[i] = b.ZTop
	}
	return mesh
}

// ZBounds returns the assembly's axial grid bounds: 0 followed by each block
// top. Before any expansion has run the bounds may be empty.
func (a *Assembly) ZBounds() []float64 {
	return a.zBounds
}

// SetZBounds replaces the axial grid bounds.
func (a *Assembly) SetZBounds(bounds []float64) {
	a.zBounds = bounds
}

// SetBlockMesh forces the assembly's block boundaries onto the given mesh of
// block tops (same length as Blocks). With conserveMass, each block's solid
// component number densities are scaled by oldHeight/newHeight so nuclide
// mass is unchanged by the re-snapping; fluids re-fill their new volume at
// their existing density.
func (a *Assembly) SetBlockMesh(mesh []float64, conserveMass bool) error {
	if len(mesh) != len(a.Blocks) {
		return fmt.Errorf("assembly %s: mesh has %d points for %d blocks", a.Name, len(mesh), len(a.Blocks))
	}
	bottom := 0.0
	for i, b := range a.Blocks {
		newTop := mesh[i]
		newHeight := newTop - bottom
		if newHeight <= 0 {
			return fmt.Errorf("assembly %s: block %s would get non-positive height %g from mesh", a.Name, b.Name, newHeight)
		}
		if conserveMass {
			for _, c := range b.SolidComponents() {
				old := c.Height()
				if old > 0 {
					c.ChangeNDensByFactor(old / newHeight)
				}
			}
		}
		for _, c := range b.Components {
			c.ZBottom = bottom
			c.ZTop = newTop
			c.ClearCache()
		}
		b.ZBottom = bottom
		b.ZTop = newTop
		b.Height = newHeight
		b.UpdateCenter()
		bottom = newTop
	}
	bounds := make([]float64, 0, len(mesh)+1)
	bounds = append(bounds, 0)
	bounds = append(bounds, mesh...)
	a.zBounds = bounds
	return nil
}
