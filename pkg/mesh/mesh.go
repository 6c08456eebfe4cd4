package mesh

import (
	"time"

	"github.com/nucleonics/coreaxial/pkg/core"
)

// Snapshot is the serializable record of an assembly's axial mesh after
// expansion: grid bounds plus per-block and per-component extents.
type Snapshot struct {
	Metadata Metadata      `json:"metadata"`
	Bounds   []float64     `json:"bounds"`
	Blocks   []BlockRecord `json:"blocks"`
}

// Metadata describes the snapshot provenance.
type Metadata struct {
	Assembly    string  `json:"assembly"`
	Num         int     `json:"num"`
	GeneratedAt string  `json:"generated_at"`
	TotalHeight float64 `json:"total_height"`
}

// BlockRecord is one block's extent in the snapshot.
type BlockRecord struct {
	Name    string  `json:"name"`
	Flags   string  `json:"flags,omitempty"`
	ZBottom float64 `json:"z_bottom"`
	ZTop    float64 `json:"z_top"`
	Height  float64 `json:"height"`
	Center  float64 `json:"center"`

	// Target names the component whose expansion set this block's extent.
	Target string `json:"target,omitempty"`

	Components []ComponentRecord `json:"components"`
}

// ComponentRecord is one component's extent in the snapshot.
type ComponentRecord struct {
	Name     string  `json:"name"`
	Material string  `json:"material"`
	ZBottom  float64 `json:"z_bottom"`
	ZTop     float64 `json:"z_top"`
	Mult     float64 `json:"mult"`
	Solid    bool    `json:"solid"`
}

// Capture records the assembly's current axial mesh into a snapshot.
func Capture(asm *core.Assembly) *Snapshot {
	s := &Snapshot{
		Metadata: Metadata{
			Assembly:    asm.Name,
			Num:         asm.Num,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalHeight: asm.TotalHeight(),
		},
		Bounds: append([]float64(nil), asm.ZBounds()...),
	}

	for _, b := range asm.Blocks {
		rec := BlockRecord{
			Name:    b.Name,
			Flags:   b.Flags.String(),
			ZBottom: b.ZBottom,
			ZTop:    b.ZTop,
			Height:  b.Height,
			Center:  b.Z,
			Target:  b.AxialExpTargetComponent,
		}
		for _, c := range b.Components {
			cr := ComponentRecord{
				Name:    c.Name,
				ZBottom: c.ZBottom,
				ZTop:    c.ZTop,
				Mult:    c.Mult(),
				Solid:   c.ContainsSolidMaterial(),
			}
			if c.Material != nil {
				cr.Material = c.Material.Name()
			}
			rec.Components = append(rec.Components, cr)
		}
		s.Blocks = append(s.Blocks, rec)
	}
	return s
}
