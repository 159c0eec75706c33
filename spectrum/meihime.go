/*package spectrum builds normalized cumulative energy distributions for
fast-neutron background fluxes and samples them by inverse transform.

The built-in shape follows the empirical Mei & Hime parameterization
(Phys. Rev. D 73, 053004) of the muon-induced neutron flux: a total flux
falling off with overburden and an energy spectrum whose hard component
grows with the mean muon energy at depth. Additional shapes can be loaded
from whitespace-separated text tables and registered with a Store.

Energies are in MeV, depths in meters water equivalent.
*/
package spectrum

import "math"

// Mei & Hime fit constants. Depth-dependent quantities take the
// overburden in m.w.e.; spectral slopes are per GeV.
const (
	fluxNorm          = 4.0e-7 // cm^-2 s^-1
	attenuationLength = 860    // m.w.e.

	muonEpsilon = 693e3 // muon critical energy, MeV
	muonBSlope  = 0.4e-3
	muonGamma   = 3.77

	softSlope = 7e-3 // 1/MeV
	hardSlope = 2e-3 // 1/MeV

	hardB0     = 0.324
	hardB1     = 0.641
	hardBSlope = 0.014e-3 // per MeV of mean muon energy
)

// MuonInducedFlux returns the total muon-induced neutron flux, in
// cm^-2 s^-1, emerging from rock at the given overburden in m.w.e.
// The flux decreases monotonically with depth and underflows to zero
// at depths far beyond any physical site.
func MuonInducedFlux(depth float64) float64 {
	if depth <= 0 {
		depth = 1
	}
	return fluxNorm * (attenuationLength / depth) *
		math.Exp(-depth/attenuationLength)
}

// MeanMuonEnergy returns the average energy, in MeV, of the residual
// muon flux at the given overburden in m.w.e.
func MeanMuonEnergy(depth float64) float64 {
	return muonEpsilon * (1 - math.Exp(-muonBSlope*depth)) / (muonGamma - 2)
}

// MeiHime is the built-in analytic fast-neutron shape. The zero value is
// ready to use.
type MeiHime struct{}

// Domain returns the tabulated energy range of the shape in MeV.
func (MeiHime) Domain() (lo, hi float64) { return 1, 3500 }

// Density returns the differential neutron flux at the given energy and
// depth. The normalization is arbitrary; callers integrate and normalize.
func (MeiHime) Density(energy, depth float64) float64 {
	if energy <= 0 {
		return 0
	}
	b := hardB0 - hardB1*math.Exp(-hardBSlope*MeanMuonEnergy(depth))
	if b < 0 {
		b = 0
	}
	shape := math.Exp(-softSlope*energy)/energy + b*math.Exp(-hardSlope*energy)
	return MuonInducedFlux(depth) * shape
}
