package geom

import (
	"fmt"
	"math"
)

// Kind tags the concrete shape of a component cross-section.
type Kind string

const (
	KindCircle    Kind = "circle"
	KindHexagon   Kind = "hexagon"
	KindRectangle Kind = "rectangle"
	KindHelix     Kind = "helix"
	KindUnshaped  Kind = "unshaped"
)

// Shape is a component cross-section: a tagged variant over the closed set of
// supported kinds. Dimensions are stored at cold (as-input) temperature, in cm.
// Hot dimensions are derived by applying a linear expansion factor in-plane.
type Shape struct {
	Kind Kind

	// Circle and Helix: outer/inner diameter of the annulus.
	OD float64
	ID float64

	// Hexagon: outer/inner flat-to-flat pitch.
	OP float64
	IP float64

	// Rectangle: outer and inner side lengths.
	OuterW, OuterL float64
	InnerW, InnerL float64

	// Helix only: axial pitch of the wire wrap.
	HelixPitch float64

	// Mult is the number of identical instances per block (e.g. pins per
	// lattice). Zero is treated as 1.
	Mult float64
}

// Circle returns a circular (possibly annular) shape.
func Circle(od, id, mult float64) Shape {
	return Shape{Kind: KindCircle, OD: od, ID: id, Mult: mult}
}

// Hexagon returns a hexagonal shape defined by flat-to-flat pitches.
func Hexagon(op, ip, mult float64) Shape {
	return Shape{Kind: KindHexagon, OP: op, IP: ip, Mult: mult}
}

// Rectangle returns a rectangular shape with an optional inner cutout.
func Rectangle(outerW, outerL, innerW, innerL, mult float64) Shape {
	return Shape{
		Kind:   KindRectangle,
		OuterW: outerW, OuterL: outerL,
		InnerW: innerW, InnerL: innerL,
		Mult: mult,
	}
}

// Helix returns a helical wire shape (wire wrap around a pin).
func Helix(od, id, pitch, mult float64) Shape {
	return Shape{Kind: KindHelix, OD: od, ID: id, HelixPitch: pitch, Mult: mult}
}

// Unshaped returns a shape with no defined geometry beyond an area.
// Its bounding diameters are undefined.
func Unshaped(mult float64) Shape {
	return Shape{Kind: KindUnshaped, Mult: mult}
}

// Multiplicity returns the instance count, defaulting to 1.
func (s Shape) Multiplicity() float64 {
	if s.Mult == 0 {
		return 1
	}
	return s.Mult
}

// HasDiameters reports whether the shape has well-defined inner and outer
// bounding-circle diameters. Unshaped components do not.
func (s Shape) HasDiameters() bool {
	return s.Kind != KindUnshaped && s.Kind != ""
}

// InnerDiameter returns the diameter of the largest circle that fits inside
// the shape's inner void, expanded by factor for hot dimensions. A solid
// shape returns 0.
func (s Shape) InnerDiameter(factor float64) float64 {
	switch s.Kind {
	case KindCircle, KindHelix:
		return s.ID * factor
	case KindHexagon:
		// Inner bounding circle of a hex void touches the flats.
		return s.IP * factor
	case KindRectangle:
		if s.InnerW == 0 || s.InnerL == 0 {
			return 0
		}
		return math.Min(s.InnerW, s.InnerL) * factor
	default:
		return math.NaN()
	}
}

// OuterDiameter returns the bounding-circle diameter of the shape's outer
// boundary, expanded by factor for hot dimensions.
func (s Shape) OuterDiameter(factor float64) float64 {
	switch s.Kind {
	case KindCircle, KindHelix:
		return s.OD * factor
	case KindHexagon:
		// Bounding circle of a hexagon passes through the corners.
		return s.OP * factor * 2 / math.Sqrt(3)
	case KindRectangle:
		return math.Hypot(s.OuterW, s.OuterL) * factor
	default:
		return math.NaN()
	}
}

// Area returns the cross-sectional area of a single instance at the given
// in-plane expansion factor (1.0 for cold dimensions). Helix wires are
// treated as their circular cross-section; the pitch only matters for
// wetted-perimeter calculations outside this package.
func (s Shape) Area(factor float64) float64 {
	f2 := factor * factor
	switch s.Kind {
	case KindCircle, KindHelix:
		return math.Pi / 4 * (s.OD*s.OD - s.ID*s.ID) * f2
	case KindHexagon:
		return math.Sqrt(3) / 2 * (s.OP*s.OP - s.IP*s.IP) * f2
	case KindRectangle:
		return (s.OuterW*s.OuterL - s.InnerW*s.InnerL) * f2
	default:
		return 0
	}
}

// Validate checks dimensional consistency.
func (s Shape) Validate() error {
	switch s.Kind {
	case KindCircle, KindHelix:
		if s.OD <= 0 {
			return fmt.Errorf("%s: outer diameter must be positive, got %g", s.Kind, s.OD)
		}
		if s.ID < 0 || s.ID >= s.OD {
			return fmt.Errorf("%s: inner diameter %g must be in [0, od=%g)", s.Kind, s.ID, s.OD)
		}
	case KindHexagon:
		if s.OP <= 0 {
			return fmt.Errorf("hexagon: outer pitch must be positive, got %g", s.OP)
		}
		if s.IP < 0 || s.IP >= s.OP {
			return fmt.Errorf("hexagon: inner pitch %g must be in [0, op=%g)", s.IP, s.OP)
		}
	case KindRectangle:
		if s.OuterW <= 0 || s.OuterL <= 0 {
			return fmt.Errorf("rectangle: outer sides must be positive, got %g x %g", s.OuterW, s.OuterL)
		}
		if s.InnerW*s.InnerL >= s.OuterW*s.OuterL {
			return fmt.Errorf("rectangle: inner cutout %g x %g exceeds outer %g x %g",
				s.InnerW, s.InnerL, s.OuterW, s.OuterL)
		}
	case KindUnshaped:
		// nothing to check
	default:
		return fmt.Errorf("unknown shape kind %q", s.Kind)
	}
	if s.Mult < 0 {
		return fmt.Errorf("%s: multiplicity must be non-negative, got %g", s.Kind, s.Mult)
	}
	return nil
}
