package geom

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestCircleArea(t *testing.T) {
	s := Circle(1.0, 0.0, 1)
	want := math.Pi / 4
	if !approxEqual(s.Area(1.0), want, tolerance) {
		t.Errorf("expected area %f, got %f", want, s.Area(1.0))
	}
}

func TestAnnulusArea(t *testing.T) {
	s := Circle(1.0, 0.5, 1)
	want := math.Pi / 4 * (1.0 - 0.25)
	if !approxEqual(s.Area(1.0), want, tolerance) {
		t.Errorf("expected area %f, got %f", want, s.Area(1.0))
	}
}

func TestAreaScalesWithFactorSquared(t *testing.T) {
	s := Circle(0.8, 0.2, 1)
	cold := s.Area(1.0)
	hot := s.Area(1.01)
	if !approxEqual(hot/cold, 1.01*1.01, tolerance) {
		t.Errorf("expected area ratio %f, got %f", 1.01*1.01, hot/cold)
	}
}

func TestHexagonArea(t *testing.T) {
	// Unit flat-to-flat hexagon area = sqrt(3)/2.
	s := Hexagon(1.0, 0.0, 1)
	want := math.Sqrt(3) / 2
	if !approxEqual(s.Area(1.0), want, tolerance) {
		t.Errorf("expected area %f, got %f", want, s.Area(1.0))
	}
}

func TestHexagonOuterDiameter(t *testing.T) {
	s := Hexagon(1.0, 0.0, 1)
	want := 2 / math.Sqrt(3)
	if !approxEqual(s.OuterDiameter(1.0), want, tolerance) {
		t.Errorf("expected corner-to-corner %f, got %f", want, s.OuterDiameter(1.0))
	}
}

func TestRectangleArea(t *testing.T) {
	s := Rectangle(2, 3, 1, 1, 1)
	if !approxEqual(s.Area(1.0), 5.0, tolerance) {
		t.Errorf("expected area 5, got %f", s.Area(1.0))
	}
}

func TestUnshapedHasNoDiameters(t *testing.T) {
	s := Unshaped(1)
	if s.HasDiameters() {
		t.Error("unshaped component should not report diameters")
	}
	if !math.IsNaN(s.OuterDiameter(1.0)) {
		t.Errorf("expected NaN outer diameter, got %f", s.OuterDiameter(1.0))
	}
}

func TestMultiplicityDefaultsToOne(t *testing.T) {
	s := Circle(1.0, 0.0, 0)
	if s.Multiplicity() != 1 {
		t.Errorf("expected default multiplicity 1, got %f", s.Multiplicity())
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		shape   Shape
		wantErr bool
	}{
		{"valid circle", Circle(1.0, 0.5, 7), false},
		{"zero od", Circle(0, 0, 1), true},
		{"id exceeds od", Circle(0.5, 0.6, 1), true},
		{"valid hex", Hexagon(1.2, 1.0, 1), false},
		{"hex ip exceeds op", Hexagon(1.0, 1.1, 1), true},
		{"valid rectangle", Rectangle(2, 2, 1, 1, 1), false},
		{"rectangle cutout too big", Rectangle(1, 1, 2, 2, 1), true},
		{"negative mult", Circle(1, 0, -1), true},
		{"unshaped", Unshaped(1), false},
		{"unknown kind", Shape{Kind: "blob"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.shape.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
