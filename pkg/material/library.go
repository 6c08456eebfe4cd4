package material

// Built-in material library. Each entry carries a cubic dL/L(T) fit in
// percent, anchored to zero at 20 C (a0 = -(20*a1 + 400*a2 + 8000*a3)).
// Coefficients are engineering fits adequate for axial expansion; they are
// not a substitute for a qualified property database.

func init() {
	// HT9: 12Cr-1Mo ferritic-martensitic cladding/duct steel.
	register(expansionModel{
		name:  "ht9",
		solid: true,
		a0:    -0.0206192,
		a1:    1.02e-3,
		a2:    5.5e-7,
		a3:    -1.0e-10,
		tmin:  20, tmax: 800,
	})

	// Type 316 stainless steel: structure, grid plates.
	register(expansionModel{
		name:  "ss316",
		solid: true,
		a0:    -0.03156384,
		a1:    1.57e-3,
		a2:    4.1e-7,
		a3:    -2.0e-11,
		tmin:  20, tmax: 900,
	})

	// U-10Zr metallic fuel.
	register(expansionModel{
		name:  "uzr",
		solid: true,
		a0:    -0.03273552,
		a1:    1.62e-3,
		a2:    8.4e-7,
		a3:    -6.0e-11,
		tmin:  20, tmax: 700,
	})

	// Boron carbide absorber.
	register(expansionModel{
		name:  "b4c",
		solid: true,
		a0:    -0.011204,
		a1:    5.6e-4,
		a2:    1.0e-8,
		a3:    0,
		tmin:  20, tmax: 1000,
	})

	// Liquid sodium coolant. Fluid: fills whatever space it is given and
	// never drives or participates in axial linkage.
	register(expansionModel{
		name:  "sodium",
		solid: false,
		tmin:  98, tmax: 883,
	})

	// Helium fill gas for plena.
	register(expansionModel{
		name:  "helium",
		solid: false,
		tmin:  -270, tmax: 2000,
	})
}
