package spectrum

import (
	"math"
	"sort"
)

// DefaultBins is the number of energy bins used by Build.
const DefaultBins = 2048

// Shape is a differential flux-vs-energy model. Density may use any
// overall normalization; Build integrates and normalizes the result.
type Shape interface {
	// Density returns the differential flux at the given energy (MeV)
	// and overburden (m.w.e.).
	Density(energy, depth float64) float64
	// Domain returns the energy range, in MeV, over which the shape is
	// defined. Density is treated as zero outside of it.
	Domain() (lo, hi float64)
}

// Table is a discretized, normalized cumulative distribution over energy.
// energies holds the n+1 bin edges in strictly increasing order and cum
// the running integral at each edge, with cum[0] = 0 and cum[n] = 1.
//
// A Table is immutable once built.
type Table struct {
	energies  []float64
	cum       []float64
	threshold float64
}

// Build integrates sh, attenuated at the given depth and truncated below
// threshold, over DefaultBins uniform energy bins and returns the
// normalized cumulative table.
//
// Build fails with ErrInvalidParameter if depth or threshold is negative
// or not finite, and with ErrEmptySpectrum if the truncated shape
// integrates to zero.
func Build(sh Shape, depth, threshold float64) (*Table, error) {
	if !validParam(depth) || !validParam(threshold) {
		return nil, ErrInvalidParameter
	}

	lo, hi := sh.Domain()
	if threshold > lo {
		lo = threshold
	}
	if lo >= hi {
		return nil, ErrEmptySpectrum
	}

	n := DefaultBins
	dE := (hi - lo) / float64(n)

	energies := make([]float64, n+1)
	for i := range energies {
		energies[i] = lo + dE*float64(i)
	}
	energies[n] = hi

	cum := make([]float64, n+1)
	for i := 0; i < n; i++ {
		mid := energies[i] + dE/2
		w := sh.Density(mid, depth) * dE
		if w < 0 || math.IsNaN(w) {
			w = 0
		}
		cum[i+1] = cum[i] + w
	}

	total := cum[n]
	if total <= 0 {
		return nil, ErrEmptySpectrum
	}
	for i := range cum {
		cum[i] /= total
	}

	return &Table{energies: energies, cum: cum, threshold: threshold}, nil
}

func validParam(x float64) bool {
	return x >= 0 && !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Sample maps a uniform draw u in [0,1) onto an energy by inverse
// transform: it finds the first bin whose cumulative value exceeds u and
// interpolates linearly between the bin's edges. It returns the energy
// and the index of the chosen bin.
//
// Sample is deterministic: a fixed table and draw always map to the same
// energy. Sample fails with ErrUninitializedTable on a nil table.
func (t *Table) Sample(u float64) (energy float64, bin int, err error) {
	if t == nil || len(t.cum) == 0 {
		return 0, 0, ErrUninitializedTable
	}
	if u < 0 || u >= 1 {
		return 0, 0, ErrInvalidParameter
	}

	// Smallest edge index with cum[i] > u. Since cum[0] = 0 <= u and
	// cum[n] = 1 > u, i lands in [1, n].
	i := sort.Search(len(t.cum), func(i int) bool { return t.cum[i] > u })

	c0, c1 := t.cum[i-1], t.cum[i]
	e0, e1 := t.energies[i-1], t.energies[i]
	return e0 + (e1-e0)*(u-c0)/(c1-c0), i - 1, nil
}

// Threshold returns the energy threshold the table was built with.
func (t *Table) Threshold() float64 { return t.threshold }

// MinEnergy returns the lowest sampleable energy.
func (t *Table) MinEnergy() float64 { return t.energies[0] }

// MaxEnergy returns the highest sampleable energy.
func (t *Table) MaxEnergy() float64 { return t.energies[len(t.energies)-1] }

// Len returns the number of energy bins.
func (t *Table) Len() int { return len(t.energies) - 1 }

// Edges returns the bin edge at index i and the cumulative probability
// accumulated up to it.
func (t *Table) Edges(i int) (energy, cum float64) {
	return t.energies[i], t.cum[i]
}
