package material

import (
	"math"
	"testing"
)

func TestLookupKnownMaterials(t *testing.T) {
	for _, name := range []string{"ht9", "ss316", "uzr", "b4c", "sodium", "helium"} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	m, err := Lookup("HT9")
	if err != nil {
		t.Fatalf("Lookup(HT9): %v", err)
	}
	if m.Name() != "ht9" {
		t.Errorf("expected canonical name ht9, got %q", m.Name())
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("unobtainium"); err == nil {
		t.Error("expected error for unknown material")
	}
}

func TestExpansionPercentNearZeroAtRoomTemperature(t *testing.T) {
	for _, name := range []string{"ht9", "ss316", "uzr", "b4c"} {
		m, _ := Lookup(name)
		dll := m.LinearExpansionPercent(RoomTemperature)
		if math.Abs(dll) > 1e-3 {
			t.Errorf("%s: dL/L at room temperature = %g%%, expected near zero", name, dll)
		}
	}
}

func TestExpansionPercentAnchoredAtReference(t *testing.T) {
	// a0 is the exact negation of the cubic's remaining terms at the
	// reference temperature, so the fit evaluates to zero there up to
	// floating-point rounding.
	for _, name := range []string{"ht9", "ss316", "uzr", "b4c"} {
		m, _ := Lookup(name)
		if dll := m.LinearExpansionPercent(RoomTemperature); math.Abs(dll) > 1e-12 {
			t.Errorf("%s: dL/L at reference temperature = %g%%, fit is not anchored", name, dll)
		}
	}
}

func TestExpansionIncreasesWithTemperature(t *testing.T) {
	m, _ := Lookup("ht9")
	if m.LinearExpansionPercent(600) <= m.LinearExpansionPercent(300) {
		t.Error("expansion should grow with temperature")
	}
}

func TestExpansionFactorIdentity(t *testing.T) {
	m, _ := Lookup("uzr")
	if f := m.LinearExpansionFactor(450, 450); f != 0 {
		t.Errorf("expansion from T to T should be exactly 0, got %g", f)
	}
}

func TestExpansionFactorComposition(t *testing.T) {
	// Going 20->600 directly must equal going 20->300 then 300->600.
	m, _ := Lookup("ht9")
	direct := 1 + m.LinearExpansionFactor(600, 20)
	stepped := (1 + m.LinearExpansionFactor(300, 20)) * (1 + m.LinearExpansionFactor(600, 300))
	if math.Abs(direct-stepped) > 1e-12 {
		t.Errorf("factor composition mismatch: direct %v, stepped %v", direct, stepped)
	}
}

func TestFluidsAreNotSolid(t *testing.T) {
	for _, name := range []string{"sodium", "helium"} {
		m, _ := Lookup(name)
		if m.IsSolid() {
			t.Errorf("%s should be a fluid", name)
		}
	}
}
