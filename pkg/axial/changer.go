package axial

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nucleonics/coreaxial/pkg/core"
)

// minBlockHeight is a solver rule of thumb, not a physical limit: meshes
// finer than this are worth flagging but not rejecting.
const minBlockHeight = 3.0 // cm

// Changer performs axial thermal or prescribed expansion of an assembly,
// conserving nuclide mass and total assembly height. An assembly must be
// exclusively owned by the caller for the duration of an expansion call;
// independent assemblies may be expanded concurrently, one changer each.
type Changer struct {
	// DetailedAxialExpansion keeps every assembly on its own axial mesh
	// instead of snapping the core to the reference assembly's mesh. In this
	// mode a missing dummy block is fatal: there is nowhere safe to absorb
	// the height error.
	DetailedAxialExpansion bool

	log *zap.Logger

	assembly      *core.Assembly
	linkage       *AssemblyLinkage
	expansionData *ExpansionData
}

// NewChanger returns a changer. A nil logger disables logging.
func NewChanger(detailed bool, log *zap.Logger) *Changer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Changer{DetailedAxialExpansion: detailed, log: log}
}

// ExpansionData returns the per-assembly expansion data prepared by the most
// recent SetAssembly call.
func (ch *Changer) ExpansionData() *ExpansionData {
	return ch.expansionData
}

// Linkage returns the axial adjacency model prepared by the most recent
// SetAssembly call.
func (ch *Changer) Linkage() *AssemblyLinkage {
	return ch.linkage
}

// SetAssembly prepares an assembly for expansion: builds the axial linkage
// and fresh expansion data, validates the assembly construction, and selects
// target components. With setFuel, fuel components are locked as the height
// drivers of their blocks. With expandFromColdInput, thermal factors are
// later computed from input (cold) temperatures rather than reference
// temperatures.
func (ch *Changer) SetAssembly(a *core.Assembly, setFuel, expandFromColdInput bool) error {
	linkage, err := NewAssemblyLinkage(a, ch.log)
	if err != nil {
		return err
	}
	ch.assembly = a
	ch.linkage = linkage
	ch.expansionData = NewExpansionData(a, expandFromColdInput, ch.log)

	if err := ch.validateAssembly(); err != nil {
		return err
	}
	return ch.setTargetComponents(setFuel)
}

func (ch *Changer) validateAssembly() error {
	a := ch.assembly
	top := a.Blocks[len(a.Blocks)-1]
	if !top.IsDummy() {
		if ch.DetailedAxialExpansion {
			return fmt.Errorf("%w: assembly %s needs a dummy block for detailed axial expansion",
				ErrMissingDummyBlock, a.Name)
		}
		ch.log.Warn("assembly has no dummy block; the top block will be chopped to preserve total height",
			zap.String("assembly", a.Name),
			zap.String("topBlock", top.Name))
	}
	for _, b := range a.Blocks {
		if b.IsDummy() {
			continue
		}
		if len(b.SolidComponents()) == 0 {
			return fmt.Errorf("%w: block %s of assembly %s is entirely fluid; "+
				"exclude the assembly from axial expansion via the expansion skip settings",
				ErrAllFluidBlock, b.Name, a.Name)
		}
	}
	return nil
}

func (ch *Changer) setTargetComponents(setFuel bool) error {
	for _, b := range ch.assembly.Blocks {
		switch {
		case b.AxialExpTargetComponent != "":
			c := b.ComponentByName(b.AxialExpTargetComponent)
			if c == nil {
				return fmt.Errorf("block %s names axial expansion target %q but has no such component",
					b.Name, b.AxialExpTargetComponent)
			}
			ch.expansionData.SetTargetComponent(c)
		case b.IsDummy():
			// Dummy blocks have no target; they absorb the height residual.
		case b.HasFlags(core.FlagPlenum) || b.HasFlags(core.FlagACLP):
			if err := ch.expansionData.DetermineTargetComponent(b, core.FlagClad); err != nil {
				return err
			}
		case setFuel && b.HasFlags(core.FlagFuel):
			if err := ch.expansionData.DetermineTargetComponent(b, core.FlagFuel); err != nil {
				return err
			}
		default:
			if err := ch.expansionData.DetermineTargetComponent(b, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// PerformPrescribedAxialExpansion applies caller-given growth factors to the
// listed components and expands the assembly.
func (ch *Changer) PerformPrescribedAxialExpansion(a *core.Assembly, comps []*core.Component, factors []float64, setFuel bool) error {
	if err := ch.SetAssembly(a, setFuel, false); err != nil {
		return err
	}
	if err := ch.expansionData.SetExpansionFactors(comps, factors); err != nil {
		return err
	}
	return ch.AxiallyExpandAssembly()
}

// PerformThermalAxialExpansion derives growth factors from a 1-D temperature
// field and expands the assembly.
func (ch *Changer) PerformThermalAxialExpansion(a *core.Assembly, tempGrid, tempField []float64, setFuel, expandFromColdInput bool) error {
	if err := ch.SetAssembly(a, setFuel, expandFromColdInput); err != nil {
		return err
	}
	if err := ch.expansionData.UpdateComponentTempsFrom1DField(tempGrid, tempField); err != nil {
		return err
	}
	ch.expansionData.ComputeThermalExpansionFactors()
	return ch.AxiallyExpandAssembly()
}

// AxiallyExpandAssembly walks the blocks bottom to top, stretching each solid
// component by its growth factor relative to the block's pre-expansion
// height, docking components and blocks against their lower neighbors,
// snapping each block's top to its target component, and letting the
// top-most block absorb the accumulated residual so the total assembly
// height never changes.
func (ch *Changer) AxiallyExpandAssembly() error {
	if ch.assembly == nil {
		return fmt.Errorf("no assembly set; call SetAssembly first")
	}
	a := ch.assembly
	mesh := make([]float64, 0, len(a.Blocks)+1)
	mesh = append(mesh, 0)

	for ib, b := range a.Blocks {
		preHeight := b.Height
		if ib > 0 {
			// Blocks never float apart or overlap.
			b.ZBottom = ch.linkage.BlockBelow(b).ZTop
		}

		if ib < len(a.Blocks)-1 {
			if err := ch.expandBlock(ib, b, preHeight); err != nil {
				return err
			}
		} else {
			// Top block: its top is the fixed assembly boundary, so its
			// height absorbs whatever error accumulated below.
			b.Height = b.ZTop - b.ZBottom
		}

		if b.Height < 0 {
			return fmt.Errorf("%w: block %s of assembly %s has height %g cm",
				ErrNegativeBlockHeight, b.Name, a.Name, b.Height)
		}
		if b.Height < minBlockHeight {
			ch.log.Warn("block height below 3 cm after axial expansion",
				zap.String("assembly", a.Name),
				zap.String("block", b.Name),
				zap.Float64("height", b.Height))
		}
		b.UpdateCenter()
		b.ClearCache()
		mesh = append(mesh, b.ZTop)
	}

	a.SetZBounds(mesh)
	return nil
}

// expandBlock stretches every solid component of a non-top block and derives
// the block's extent from its target component.
func (ch *Changer) expandBlock(ib int, b *core.Block, preHeight float64) error {
	for _, c := range b.SolidComponents() {
		grow := ch.expansionData.ExpansionFactor(c)
		newHeight := grow * preHeight

		var below *core.Component
		if ib == 0 {
			c.ZBottom = 0
		} else {
			below = ch.linkage.ComponentBelow(c)
			if below != nil {
				c.ZBottom = below.ZTop
			} else {
				c.ZBottom = ch.linkage.BlockBelow(b).ZTop
			}
		}
		c.ZTop = c.ZBottom + newHeight
		c.ChangeNDensByFactor(1 / grow)
		c.ClearCache()

		// Multi-pin pairs slide past the block boundary when each side
		// expands by its own factor; move the shared boundary back to the
		// block boundary and carry the mass slice across with it.
		if below != nil && c.Lattice != nil && below.Lattice != nil {
			blockBoundary := ch.linkage.BlockBelow(b).ZTop
			if err := ch.alignLinkedPair(below, c, blockBoundary); err != nil {
				return err
			}
		}

		if ch.expansionData.IsTargetComponent(c) {
			b.ZTop = c.ZTop
			b.Height = b.ZTop - b.ZBottom
		}
	}
	return nil
}

// ApplyColdHeightMassIncrease scales every component's number densities up by
// 1 + linear expansion from input (cold) to current (hot) temperature. It is
// a one-time correction for cases whose block heights are declared at cold
// dimensions: the cold, shorter component of the same real mass implies a
// proportionally higher density.
func (ch *Changer) ApplyColdHeightMassIncrease() {
	for _, b := range ch.assembly.Blocks {
		for _, c := range b.Components {
			factor := 1 + c.Material.LinearExpansionFactor(c.Temperature, c.InputTemperature)
			c.ChangeNDensByFactor(factor)
		}
	}
}

// ManageCoreMesh reconciles the whole-core axial mesh after expansion.
// Outside detailed mode every assembly is snapped, mass-conserving, onto the
// reference assembly's mesh; the core-wide mesh parameter is then rebuilt.
func (ch *Changer) ManageCoreMesh(reactor *core.Core) error {
	if !ch.DetailedAxialExpansion {
		ref, err := reactor.ReferenceAssembly()
		if err != nil {
			return err
		}
		mesh := ref.AxialMesh()
		for _, a := range reactor.Assemblies {
			if a == ref {
				continue
			}
			if err := a.SetBlockMesh(mesh, true); err != nil {
				return fmt.Errorf("snapping assembly %s to reference mesh: %w", a.Name, err)
			}
		}
	}

	oldMesh := reactor.AxialMesh
	if err := reactor.UpdateAxialMesh(); err != nil {
		return err
	}
	ch.log.Info("core axial mesh updated",
		zap.Float64s("old", oldMesh),
		zap.Float64s("new", reactor.AxialMesh))
	return nil
}

// ExpandColdDimsToHot is the construction-time driver: every assembly is
// expanded once from its cold (input) dimensions to its declared hot
// temperatures, with the matching density correction applied first. Outside
// detailed mode all assemblies are then forced onto the reference assembly's
// mesh (the first assembly when ref is nil). Each block's resulting height is
// persisted as its beginning-of-life baseline.
func ExpandColdDimsToHot(assems []*core.Assembly, detailed bool, ref *core.Assembly, log *zap.Logger) error {
	ch := NewChanger(detailed, log)
	for _, a := range assems {
		if err := ch.SetAssembly(a, true, true); err != nil {
			return fmt.Errorf("assembly %s: %w", a.Name, err)
		}
		ch.ApplyColdHeightMassIncrease()
		ch.expansionData.ComputeThermalExpansionFactors()
		if err := ch.AxiallyExpandAssembly(); err != nil {
			return fmt.Errorf("assembly %s: %w", a.Name, err)
		}
	}

	if !detailed && len(assems) > 0 {
		if ref == nil {
			ref = assems[0]
		}
		mesh := ref.AxialMesh()
		for _, a := range assems {
			if a == ref {
				continue
			}
			if err := a.SetBlockMesh(mesh, true); err != nil {
				return fmt.Errorf("snapping assembly %s to reference mesh: %w", a.Name, err)
			}
		}
	}

	for _, a := range assems {
		for _, b := range a.Blocks {
			b.HeightBOL = b.Height
		}
	}
	return nil
}
