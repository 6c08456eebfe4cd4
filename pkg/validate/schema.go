package validate

import (
	"fmt"
	"strings"

	"github.com/nucleonics/coreaxial/pkg/core"
	"github.com/nucleonics/coreaxial/pkg/geom"
	"github.com/nucleonics/coreaxial/pkg/material"
	"github.com/nucleonics/coreaxial/pkg/spec"
)

// ValidateSchema performs schema validation on a parsed case. It checks
// structural correctness before any assembly is built or expanded.
func ValidateSchema(cs *spec.CaseSpec) *Report {
	r := NewReport()

	validateAssembly(cs, r)
	validateBlocks(cs, r)
	validateScenario(cs, r)

	return r
}

func validateAssembly(cs *spec.CaseSpec, r *Report) {
	if cs.Assembly.Name == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "assembly must have a name",
			Path:     "assembly.name",
			Expected: "non-empty string",
		})
	}
	if len(cs.Assembly.Blocks) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "assembly must contain at least one block",
			Path:     "assembly.blocks",
			Expected: "at least 1 block",
		})
	}
}

func validateBlocks(cs *spec.CaseSpec, r *Report) {
	blocks := cs.Assembly.Blocks
	seen := make(map[string]bool, len(blocks))

	for i, b := range blocks {
		path := fmt.Sprintf("assembly.blocks[%d]", i)

		if b.Name == "" {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("%s must have a name", path),
				Path:     path + ".name",
				Expected: "non-empty string",
			})
		} else if seen[b.Name] {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("duplicate block name %q", b.Name),
				Path:        path + ".name",
				ActualValue: b.Name,
				Expected:    "unique block names",
			})
		}
		seen[b.Name] = true

		if b.Height <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("block %s: height must be > 0", b.Name),
				Path:        path + ".height",
				ActualValue: b.Height,
				Expected:    "> 0",
			})
		}
		if _, err := core.ParseFlags(b.Flags); err != nil {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("block %s: %v", b.Name, err),
				Path:        path + ".flags",
				ActualValue: strings.Join(b.Flags, ","),
			})
		}
		if len(b.Components) == 0 {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("block %s must contain at least one component", b.Name),
				Path:     path + ".components",
				Expected: "at least 1 component",
			})
		}
		if b.TargetComponent != "" && b.ComponentByName(b.TargetComponent) == nil {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("block %s: target component %q is not defined in the block", b.Name, b.TargetComponent),
				Path:        path + ".target_component",
				ActualValue: b.TargetComponent,
			})
		}

		for j, c := range b.Components {
			validateComponent(b, c, fmt.Sprintf("%s.components[%d]", path, j), r)
		}
	}

	// The top block absorbs whatever height the rest of the stack gains or
	// loses; without a dummy there, that inventory is overwritten.
	if len(blocks) > 0 {
		top := blocks[len(blocks)-1]
		flags, err := core.ParseFlags(top.Flags)
		if err == nil && !flags.Has(core.FlagDummy) {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("top block %s is not a dummy block; its contents will be chopped during expansion", top.Name),
				Path:        fmt.Sprintf("assembly.blocks[%d].flags", len(blocks)-1),
				ActualValue: strings.Join(top.Flags, ","),
				Suggestions: []string{"Add a coolant-only dummy block at the top of the assembly"},
			})
		}
	}
}

func validateComponent(b spec.BlockDef, c spec.ComponentDef, path string, r *Report) {
	if c.Name == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("block %s: component must have a name", b.Name),
			Path:     path + ".name",
			Expected: "non-empty string",
		})
	}
	if _, err := core.ParseFlags(c.Flags); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("block %s, component %s: %v", b.Name, c.Name, err),
			Path:        path + ".flags",
			ActualValue: strings.Join(c.Flags, ","),
		})
	}
	if _, err := material.Lookup(c.Material); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("block %s, component %s: %v", b.Name, c.Name, err),
			Path:        path + ".material",
			ActualValue: c.Material,
			Suggestions: []string{"Known materials: " + strings.Join(material.Names(), ", ")},
		})
	}
	validateShape(b, c, path, r)

	for nuc, nd := range c.NumberDensities {
		if nd < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("block %s, component %s: number density of %s must be non-negative", b.Name, c.Name, nuc),
				Path:        path + ".number_densities." + nuc,
				ActualValue: nd,
				Expected:    ">= 0",
			})
		}
		if _, err := core.AtomicWeight(nuc); err != nil {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("block %s, component %s: %v", b.Name, c.Name, err),
				Path:        path + ".number_densities." + nuc,
				ActualValue: nuc,
			})
		}
	}

	if len(c.Lattice) > 0 {
		seen := make(map[[2]int]bool, len(c.Lattice))
		for k, ij := range c.Lattice {
			if seen[ij] {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("block %s, component %s: duplicate lattice index [%d, %d]", b.Name, c.Name, ij[0], ij[1]),
					Path:        fmt.Sprintf("%s.lattice[%d]", path, k),
					ActualValue: fmt.Sprintf("[%d, %d]", ij[0], ij[1]),
					Expected:    "unique grid positions",
				})
			}
			seen[ij] = true
		}
	}
}

func validateShape(b spec.BlockDef, c spec.ComponentDef, path string, r *Report) {
	shape, err := shapeFromDef(c.Shape)
	if err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("block %s, component %s: %v", b.Name, c.Name, err),
			Path:        path + ".shape.kind",
			ActualValue: c.Shape.Kind,
			Expected:    "circle, hexagon, rectangle, helix or unshaped",
		})
		return
	}
	if err := shape.Validate(); err != nil {
		r.AddError(Result{
			Level:   LevelSchema,
			Message: fmt.Sprintf("block %s, component %s: %v", b.Name, c.Name, err),
			Path:    path + ".shape",
		})
	}
}

func shapeFromDef(sd spec.ShapeDef) (geom.Shape, error) {
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

func validateScenario(cs *spec.CaseSpec, r *Report) {
	sc := cs.Scenario
	switch sc.Kind {
	case spec.ScenarioThermal:
		if len(sc.TempGrid) < 2 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "thermal scenario needs at least two temp_grid points",
				Path:        "scenario.temp_grid",
				ActualValue: len(sc.TempGrid),
				Expected:    ">= 2 points",
			})
		}
		if len(sc.TempGrid) != len(sc.TempField) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("temp_grid has %d points but temp_field has %d", len(sc.TempGrid), len(sc.TempField)),
				Path:        "scenario.temp_field",
				ActualValue: len(sc.TempField),
				Expected:    fmt.Sprintf("%d values", len(sc.TempGrid)),
			})
		}
		for i := 0; i < len(sc.TempGrid)-1; i++ {
			if sc.TempGrid[i+1] <= sc.TempGrid[i] {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("temp_grid must be strictly increasing (point %d: %.4g after %.4g)", i+1, sc.TempGrid[i+1], sc.TempGrid[i]),
					Path:        fmt.Sprintf("scenario.temp_grid[%d]", i+1),
					ActualValue: sc.TempGrid[i+1],
					Expected:    fmt.Sprintf("> %.4g", sc.TempGrid[i]),
				})
			}
		}
	case spec.ScenarioPrescribed:
		if len(sc.Components) != len(sc.Factors) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("scenario lists %d components but %d factors", len(sc.Components), len(sc.Factors)),
				Path:        "scenario.factors",
				ActualValue: len(sc.Factors),
				Expected:    fmt.Sprintf("%d values", len(sc.Components)),
			})
		}
		for i, f := range sc.Factors {
			if f <= 0 {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("growth factor for %s must be > 0", refName(sc.Components, i)),
					Path:        fmt.Sprintf("scenario.factors[%d]", i),
					ActualValue: f,
					Expected:    "> 0",
				})
			}
		}
		for i, ref := range sc.Components {
			blockName, compName, ok := strings.Cut(ref, "/")
			if !ok {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("component reference %q must be of the form block/component", ref),
					Path:        fmt.Sprintf("scenario.components[%d]", i),
					ActualValue: ref,
					Expected:    "block/component",
				})
				continue
			}
			bd := cs.Assembly.BlockByName(blockName)
			if bd == nil {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("component reference %q names unknown block %q", ref, blockName),
					Path:        fmt.Sprintf("scenario.components[%d]", i),
					ActualValue: blockName,
				})
				continue
			}
			if bd.ComponentByName(compName) == nil {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("component reference %q names unknown component %q in block %s", ref, compName, blockName),
					Path:        fmt.Sprintf("scenario.components[%d]", i),
					ActualValue: compName,
				})
			}
		}
	case "":
		r.AddInfo(Result{
			Level:   LevelSchema,
			Message: "no scenario given; only cold-to-hot construction will run",
			Path:    "scenario.kind",
		})
	default:
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown scenario kind %q", sc.Kind),
			Path:        "scenario.kind",
			ActualValue: sc.Kind,
			Expected:    "thermal or prescribed",
		})
	}
}

func refName(refs []string, i int) string {
	if i < len(refs) {
		return refs[i]
	}
	return fmt.Sprintf("factor %d", i)
}
