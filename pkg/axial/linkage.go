package axial

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/nucleonics/coreaxial/pkg/core"
)

// AssemblyLinkage holds the axial adjacency model for one assembly: which
// block sits below each block (purely positional) and which solid component
// sits below each solid component (geometric footprint match).
type AssemblyLinkage struct {
	assembly *core.Assembly

	linkedBlocks     map[*core.Block]Link[*core.Block]
	linkedComponents map[*core.Component]Link[*core.Component]
}

// NewAssemblyLinkage builds the adjacency model bottom to top. It fails on an
// empty assembly or when a component has more than one geometric match in the
// block below.
func NewAssemblyLinkage(a *core.Assembly, log *zap.Logger) (*AssemblyLinkage, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(a.Blocks) == 0 {
		return nil, fmt.Errorf("assembly %s has no blocks to link", a.Name)
	}
	l := &AssemblyLinkage{
		assembly:         a,
		linkedBlocks:     make(map[*core.Block]Link[*core.Block], len(a.Blocks)),
		linkedComponents: make(map[*core.Component]Link[*core.Component]),
	}
	l.linkBlocks()
	if err := l.linkComponents(log); err != nil {
		return nil, err
	}
	return l, nil
}

// BlockBelow returns the block immediately below b, or nil at the bottom.
func (l *AssemblyLinkage) BlockBelow(b *core.Block) *core.Block {
	return l.linkedBlocks[b].Below
}

// ComponentBelow returns the axially linked component below c, or nil when no
// geometric match exists (e.g. at assembly boundaries).
func (l *AssemblyLinkage) ComponentBelow(c *core.Component) *core.Component {
	return l.linkedComponents[c].Below
}

func (l *AssemblyLinkage) linkBlocks() {
	for i, b := range l.assembly.Blocks {
		var below *core.Block
		if i > 0 {
			below = l.assembly.Blocks[i-1]
		}
		l.linkedBlocks[b] = Link[*core.Block]{Below: below}
	}
}

func (l *AssemblyLinkage) linkComponents(log *zap.Logger) error {
	for i, b := range l.assembly.Blocks {
		for _, c := range b.SolidComponents() {
			if !c.Shape.HasDiameters() {
				log.Debug("component has no bounding diameters; never axially linked",
					zap.String("assembly", l.assembly.Name),
					zap.String("block", b.Name),
					zap.String("component", c.Name))
				l.linkedComponents[c] = Link[*core.Component]{}
				continue
			}
			if i == 0 {
				l.linkedComponents[c] = Link[*core.Component]{}
				continue
			}

			var match *core.Component
			for _, candidate := range l.assembly.Blocks[i-1].SolidComponents() {
				if !AreAxiallyLinked(c, candidate) {
					continue
				}
				if match != nil {
					return fmt.Errorf(
						"%w for component %s in block %s of assembly %s: both %s and %s match; "+
							"resolve the overlapping dimensions in the case definition",
						ErrAmbiguousLinkage, c.Name, b.Name, l.assembly.Name, match.Name, candidate.Name)
				}
				match = candidate
			}
			if match == nil {
				log.Debug("no axially linked component below",
					zap.String("assembly", l.assembly.Name),
					zap.String("block", b.Name),
					zap.String("component", c.Name))
			}
			l.linkedComponents[c] = Link[*core.Component]{Below: match}
		}
	}
	return nil
}

// AreAxiallyLinked reports whether two solid components in vertically
// adjacent blocks are axially continuous: same shape kind, both solid, and
// overlapping radial footprints. Diameters are compared at cold dimensions so
// thermal expansion cannot produce spurious near-overlaps. Components on a
// multi-pin lattice must occupy identical index sets; components off any
// lattice must have equal multiplicity. The test is symmetric.
func AreAxiallyLinked(a, b *core.Component) bool {
	if !a.ContainsSolidMaterial() || !b.ContainsSolidMaterial() {
		return false
	}
	if a.Shape.Kind != b.Shape.Kind {
		return false
	}
	if !a.Shape.HasDiameters() || !b.Shape.HasDiameters() {
		return false
	}

	if a.Lattice != nil || b.Lattice != nil {
		if a.Lattice == nil || b.Lattice == nil {
			return false
		}
		if !a.Lattice.SameIndices(b.Lattice) {
			return false
		}
	} else if a.Mult() != b.Mult() {
		return false
	}

	// One component's annulus must strictly contain the other's footprint.
	inner := math.Max(a.InnerDiameter(true), b.InnerDiameter(true))
	outer := math.Min(a.OuterDiameter(true), b.OuterDiameter(true))
	return inner < outer
}
