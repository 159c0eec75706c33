package spectrum

import (
	"fmt"
	"sort"

	"github.com/phil-mansfield/table"
)

// Store maps spectrum names to their flux shapes. NewStore registers the
// built-in "fastneutron" Mei-Hime shape; more can be added with Register
// or loaded from disk with LoadTable.
//
// A Store is not safe for concurrent mutation; the expected discipline is
// one store per generator thread, populated before event generation
// starts.
type Store struct {
	shapes map[string]Shape
}

// NewStore returns a store holding the built-in shapes.
func NewStore() *Store {
	return &Store{shapes: map[string]Shape{"fastneutron": MeiHime{}}}
}

// Register adds sh under the given name, replacing any previous entry.
func (s *Store) Register(name string, sh Shape) {
	s.shapes[name] = sh
}

// Lookup returns the shape registered under name, or ErrUnknownSpectrum.
func (s *Store) Lookup(name string) (Shape, error) {
	sh, ok := s.shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpectrum, name)
	}
	return sh, nil
}

// Names returns the registered spectrum names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.shapes))
	for name := range s.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadTable reads a two-column text table of (energy in MeV, relative
// flux) rows from file and registers it under name. The energies must be
// strictly increasing. The loaded shape carries the Mei-Hime depth
// attenuation on top of the tabulated energy dependence.
func (s *Store) LoadTable(name, file string) error {
	cols, err := table.ReadTable(file, []int{0, 1}, nil)
	if err != nil {
		return err
	}
	sh, err := NewTabulated(cols[0], cols[1])
	if err != nil {
		return err
	}
	s.Register(name, sh)
	return nil
}

// Tabulated is a flux shape backed by measured (energy, flux) points,
// evaluated by linear interpolation between them.
type Tabulated struct {
	energies, fluxes []float64
}

// NewTabulated creates a tabulated shape from parallel energy and flux
// slices. The energies must be strictly increasing and the slices of
// equal length with at least two points.
func NewTabulated(energies, fluxes []float64) (*Tabulated, error) {
	if len(energies) != len(fluxes) {
		return nil, fmt.Errorf(
			"spectrum: %d energies but %d flux values",
			len(energies), len(fluxes),
		)
	}
	if len(energies) < 2 {
		return nil, fmt.Errorf(
			"spectrum: need at least 2 table rows, got %d", len(energies),
		)
	}
	for i := 1; i < len(energies); i++ {
		if energies[i] <= energies[i-1] {
			return nil, fmt.Errorf(
				"spectrum: table energies not strictly increasing at row %d", i,
			)
		}
	}
	return &Tabulated{energies: energies, fluxes: fluxes}, nil
}

// Domain returns the first and last tabulated energies.
func (tb *Tabulated) Domain() (lo, hi float64) {
	return tb.energies[0], tb.energies[len(tb.energies)-1]
}

// Density linearly interpolates the tabulated flux at the given energy
// and scales it by the total muon-induced flux at depth. Energies outside
// the tabulated range have zero density.
func (tb *Tabulated) Density(energy, depth float64) float64 {
	lo, hi := tb.Domain()
	if energy < lo || energy > hi {
		return 0
	}
	i := sort.SearchFloat64s(tb.energies, energy)
	if i == 0 || tb.energies[i] == energy {
		return tb.fluxes[i] * MuonInducedFlux(depth)
	}
	e0, e1 := tb.energies[i-1], tb.energies[i]
	f0, f1 := tb.fluxes[i-1], tb.fluxes[i]
	f := f0 + (f1-f0)*(energy-e0)/(e1-e0)
	return f * MuonInducedFlux(depth)
}
