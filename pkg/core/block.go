package core

// Block is an axial slice of an assembly: an ordered collection of components
// (pin, clad, wire, duct, coolant, ...) occupying the same axial interval.
// The block's own extent is derived from exactly one designated target
// component once axial expansion runs; see pkg/axial.
type Block struct {
	Name  string
	Flags Flags

	Components []*Component

	// Axial extent in cm. Z is the axial center. Height is maintained
	// alongside ZBottom/ZTop by the expansion engine.
	ZBottom float64
	ZTop    float64
	Height  float64
	Z       float64

	// HeightBOL is the as-constructed (beginning-of-life, post cold-to-hot
	// expansion) height baseline.
	HeightBOL float64

	// AxialExpTargetComponent, when set, names the component whose expansion
	// determines this block's height, overriding automatic selection.
	AxialExpTargetComponent string
}

// HasFlags reports whether the block carries every flag in want.
func (b *Block) HasFlags(want Flags) bool {
	return b.Flags.Has(want)
}

// IsDummy reports whether this is a height-absorbing dummy block.
func (b *Block) IsDummy() bool {
	return b.HasFlags(FlagDummy)
}

// SolidComponents returns the components containing solid material, in order.
func (b *Block) SolidComponents() []*Component {
	var solids []*Component
	for _, c := range b.Components {
		if c.ContainsSolidMaterial() {
			solids = append(solids, c)
		}
	}
	return solids
}

// ComponentByName returns the named component, or nil.
func (b *Block) ComponentByName(name string) *Component {
	for _, c := range b.Components {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// UpdateCenter recomputes the block's axial center from its extent.
func (b *Block) UpdateCenter() {
	b.Z = b.ZBottom + b.Height/2
}

// ClearCache invalidates cached derived state on the block's components.
func (b *Block) ClearCache() {
	for _, c := range b.Components {
		c.ClearCache()
	}
}
