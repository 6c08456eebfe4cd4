package mesh

import (
	"fmt"
	"math"

	"github.com/nucleonics/coreaxial/pkg/validate"
)

const heightTol = 1e-9

// ValidateSnapshot performs structural validation on a captured mesh.
// It checks grid monotonicity, block continuity, and extent consistency.
func ValidateSnapshot(s *Snapshot) *validate.Report {
	r := validate.NewReport()

	if s == nil {
		r.AddError(validate.Result{
			Level:   validate.LevelNumeric,
			Message: "mesh snapshot is nil",
		})
		return r
	}

	validateBounds(s, r)
	validateBlockContinuity(s, r)
	validateComponentExtents(s, r)

	return r
}

func validateBounds(s *Snapshot, r *validate.Report) {
	if len(s.Bounds) != len(s.Blocks)+1 {
		r.AddError(validate.Result{
			Level:       validate.LevelNumeric,
			Message:     fmt.Sprintf("bounds has %d points for %d blocks", len(s.Bounds), len(s.Blocks)),
			Path:        "bounds",
			ActualValue: len(s.Bounds),
			Expected:    fmt.Sprintf("%d points", len(s.Blocks)+1),
		})
		return
	}
	for i := 0; i < len(s.Bounds)-1; i++ {
		if s.Bounds[i+1] <= s.Bounds[i] {
			r.AddError(validate.Result{
				Level:       validate.LevelNumeric,
				Message:     fmt.Sprintf("bounds must be strictly increasing (point %d: %.6g after %.6g)", i+1, s.Bounds[i+1], s.Bounds[i]),
				Path:        fmt.Sprintf("bounds[%d]", i+1),
				ActualValue: s.Bounds[i+1],
				Expected:    fmt.Sprintf("> %.6g", s.Bounds[i]),
			})
		}
	}
	if math.Abs(s.Bounds[len(s.Bounds)-1]-s.Metadata.TotalHeight) > heightTol {
		r.AddError(validate.Result{
			Level:       validate.LevelNumeric,
			Message:     fmt.Sprintf("top bound %.6g disagrees with total height %.6g", s.Bounds[len(s.Bounds)-1], s.Metadata.TotalHeight),
			Path:        fmt.Sprintf("bounds[%d]", len(s.Bounds)-1),
			ActualValue: s.Bounds[len(s.Bounds)-1],
			Expected:    fmt.Sprintf("%.6g", s.Metadata.TotalHeight),
		})
	}
}

func validateBlockContinuity(s *Snapshot, r *validate.Report) {
	prevTop := 0.0
	for i, b := range s.Blocks {
		path := fmt.Sprintf("blocks[%d]", i)

		if math.Abs(b.ZBottom-prevTop) > heightTol {
			r.AddError(validate.Result{
				Level:       validate.LevelNumeric,
				Message:     fmt.Sprintf("block %s starts at %.6g but the stack below ends at %.6g", b.Name, b.ZBottom, prevTop),
				Path:        path + ".z_bottom",
				ActualValue: b.ZBottom,
				Expected:    fmt.Sprintf("%.6g", prevTop),
			})
		}
		if b.ZTop <= b.ZBottom {
			r.AddError(validate.Result{
				Level:       validate.LevelNumeric,
				Message:     fmt.Sprintf("block %s has non-positive extent [%.6g, %.6g]", b.Name, b.ZBottom, b.ZTop),
				Path:        path + ".z_top",
				ActualValue: b.ZTop,
				Expected:    fmt.Sprintf("> %.6g", b.ZBottom),
			})
		}
		if math.Abs(b.Height-(b.ZTop-b.ZBottom)) > heightTol {
			r.AddError(validate.Result{
				Level:       validate.LevelNumeric,
				Message:     fmt.Sprintf("block %s height %.6g disagrees with extent %.6g", b.Name, b.Height, b.ZTop-b.ZBottom),
				Path:        path + ".height",
				ActualValue: b.Height,
				Expected:    fmt.Sprintf("%.6g", b.ZTop-b.ZBottom),
			})
		}
		if math.Abs(b.Center-(b.ZBottom+b.Height/2)) > heightTol {
			r.AddWarning(validate.Result{
				Level:       validate.LevelNumeric,
				Message:     fmt.Sprintf("block %s center %.6g is stale (extent midpoint %.6g)", b.Name, b.Center, b.ZBottom+b.Height/2),
				Path:        path + ".center",
				ActualValue: b.Center,
				Expected:    fmt.Sprintf("%.6g", b.ZBottom+b.Height/2),
			})
		}
		prevTop = b.ZTop
	}
}

func validateComponentExtents(s *Snapshot, r *validate.Report) {
	for i, b := range s.Blocks {
		for j, c := range b.Components {
			path := fmt.Sprintf("blocks[%d].components[%d]", i, j)
			if c.ZTop <= c.ZBottom {
				r.AddError(validate.Result{
					Level:       validate.LevelNumeric,
					Message:     fmt.Sprintf("block %s, component %s has non-positive extent [%.6g, %.6g]", b.Name, c.Name, c.ZBottom, c.ZTop),
					Path:        path + ".z_top",
					ActualValue: c.ZTop,
					Expected:    fmt.Sprintf("> %.6g", c.ZBottom),
				})
			}
			// Solid components may overhang their block after expansion;
			// anything adrift by more than a block height is suspect.
			if c.ZBottom > b.ZTop || c.ZTop < b.ZBottom {
				r.AddWarning(validate.Result{
					Level:       validate.LevelNumeric,
					Message:     fmt.Sprintf("block %s, component %s extent [%.6g, %.6g] is disjoint from its block [%.6g, %.6g]", b.Name, c.Name, c.ZBottom, c.ZTop, b.ZBottom, b.ZTop),
					Path:        path,
					ActualValue: fmt.Sprintf("[%.6g, %.6g]", c.ZBottom, c.ZTop),
				})
			}
		}
	}
}
