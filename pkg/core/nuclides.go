package core

import "fmt"

// AvogadroNumber in atoms/mol.
const AvogadroNumber = 6.02214076e23

// AtomsPerBarnCm converts number densities in atoms/(b·cm) to atoms/cm³.
const AtomsPerBarnCm = 1.0e24

// atomicWeights maps nuclide labels to atomic weights in g/mol. Natural
// elements carry their standard atomic weight.
var atomicWeights = map[string]float64{
	"U234":  234.040952,
	"U235":  235.043930,
	"U238":  238.050788,
	"PU239": 239.052164,
	"ZR":    91.224,
	"FE":    55.845,
	"CR":    51.9961,
	"NI":    58.6934,
	"MO":    95.95,
	"MN55":  54.938044,
	"W":     183.84,
	"B10":   10.012937,
	"B11":   11.009305,
	"C":     12.011,
	"NA23":  22.98976928,
	"HE4":   4.002602,
}

// AtomicWeight returns the atomic weight of a nuclide label in g/mol.
func AtomicWeight(nuclide string) (float64, error) {
	aw, ok := atomicWeights[nuclide]
	if !ok {
		return 0, fmt.Errorf("unknown nuclide %q", nuclide)
	}
	return aw, nil
}
