package core

import "fmt"

// Core is the collection of assemblies sharing one axial mesh.
type Core struct {
	Name       string
	Assemblies []*Assembly

	// AxialMesh is the core-wide axial mesh: the reference assembly's block
	// boundaries, including the zero bottom bound.
	AxialMesh []float64
}

// ReferenceAssembly returns the assembly whose mesh the rest of the core is
// snapped to: the fuel assembly with the most blocks (the finest axial
// resolution). Returns an error if the core holds no fuel assemblies.
func (c *Core) ReferenceAssembly() (*Assembly, error) {
	var ref *Assembly
	refBlocks := 0
	for _, a := range c.Assemblies {
		hasFuel := false
		for _, b := range a.Blocks {
			if b.HasFlags(FlagFuel) {
				hasFuel = true
				break
			}
		}
		if !hasFuel {
			continue
		}
		if len(a.Blocks) > refBlocks {
			ref = a
			refBlocks = len(a.Blocks)
		}
	}
	if ref == nil {
		return nil, fmt.Errorf("core %s has no fuel assembly to use as mesh reference", c.Name)
	}
	return ref, nil
}

// UpdateAxialMesh recomputes the core-wide axial mesh from the reference
// assembly.
func (c *Core) UpdateAxialMesh() error {
	ref, err := c.ReferenceAssembly()
	if err != nil {
		return err
	}
	mesh := make([]float64, 0, len(ref.Blocks)+1)
	mesh = append(mesh, 0)
	mesh = append(mesh, ref.AxialMesh()...)
	c.AxialMesh = mesh
	return nil
}
