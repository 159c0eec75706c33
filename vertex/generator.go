/*package vertex generates primary-particle vertices for simulated events.

FastNeutron produces external fast-neutron backgrounds: neutron energies
follow the Mei-Hime flux attenuated by the configured overburden and cut
below the configured threshold, and emission directions are drawn about a
reference axis. The reference axis defaults to the average muon direction,
(0,0,-1); per-event muon tracks can be swapped in through SetReferenceDir
without touching the rest of the interface.
*/
package vertex

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"go-hep.org/x/hep/fmom"

	"github.com/MarcFBergevin/rat-pac/geom"
	"github.com/MarcFBergevin/rat-pac/phys"
	"github.com/MarcFBergevin/rat-pac/spectrum"
)

// Defaults used by NewFastNeutron. Depth is in m.w.e., the threshold
// in MeV.
const (
	DefaultDepth       = 400
	DefaultEnThreshold = 10

	DefaultParticle = "neutron"
	DefaultSpectrum = "fastneutron"
)

// DefaultReferenceDir is the average muon track direction, straight down.
var DefaultReferenceDir = fmom.Vec3{0, 0, -1}

// ErrMalformedState is returned by SetState for strings that are not
// exactly two whitespace-separated tokens.
var ErrMalformedState = errors.New("vertex: state must be \"particleName specName\"")

// FastNeutron is the fast-neutron vertex generator. A FastNeutron owns
// its cumulative table and random stream and must not be shared across
// goroutines; run one instance per worker instead.
type FastNeutron struct {
	particle phys.Particle
	specName string

	depth       float64
	enThreshold float64
	refDir      fmom.Vec3

	store *spectrum.Store
	table *spectrum.Table
	stale bool

	rng *rand.Rand
}

// NewFastNeutron creates a generator drawing uniforms from src and
// resolving spectrum names against store. The generator starts out
// configured for neutrons from the built-in "fastneutron" shape at the
// default depth and threshold; the table itself is built lazily on the
// first Generate call.
func NewFastNeutron(store *spectrum.Store, src rand.Source) *FastNeutron {
	if src == nil {
		src = rand.NewSource(0)
	}
	p, err := phys.ByName(DefaultParticle)
	if err != nil {
		panic(err.Error())
	}
	return &FastNeutron{
		particle:    p,
		specName:    DefaultSpectrum,
		depth:       DefaultDepth,
		enThreshold: DefaultEnThreshold,
		refDir:      DefaultReferenceDir,
		store:       store,
		stale:       true,
		rng:         rand.New(src),
	}
}

// SetState configures the generator from a two-token string,
// "particleName specName". The particle name must resolve against the
// species table; the spectrum name is validated lazily by the next table
// build.
func (g *FastNeutron) SetState(state string) error {
	tokens := strings.Fields(state)
	if len(tokens) != 2 {
		return fmt.Errorf("%w, got %q", ErrMalformedState, state)
	}

	p, err := phys.ByName(tokens[0])
	if err != nil {
		return err
	}

	g.particle = p
	g.specName = tokens[1]
	g.markStale()
	return nil
}

// GetState returns the current configuration in the same two-token form
// SetState accepts.
func (g *FastNeutron) GetState() string {
	return g.particle.Name + " " + g.specName
}

// SetDepth sets the overburden in m.w.e. and marks the table stale.
func (g *FastNeutron) SetDepth(depth float64) {
	g.depth = depth
	g.markStale()
}

// GetDepth returns the configured overburden without triggering a rebuild.
func (g *FastNeutron) GetDepth() float64 { return g.depth }

// SetEnThreshold sets the minimum admitted neutron energy in MeV and
// marks the table stale.
func (g *FastNeutron) SetEnThreshold(threshold float64) {
	g.enThreshold = threshold
	g.markStale()
}

// GetEnThreshold returns the configured threshold without triggering a
// rebuild.
func (g *FastNeutron) GetEnThreshold() float64 { return g.enThreshold }

// SetReferenceDir replaces the axis emission angles are drawn about.
// The vector need not be normalized. SetReferenceDir panics on the zero
// vector.
func (g *FastNeutron) SetReferenceDir(dir fmom.Vec3) {
	g.refDir = geom.Unit(&dir)
}

func (g *FastNeutron) markStale() {
	g.stale = true
	g.table = nil
}

// rebuild constructs the cumulative table for the current configuration.
// The live table is only replaced on success, and a failed build pins the
// generator in the uninitialized state until the configuration changes
// again.
func (g *FastNeutron) rebuild() error {
	g.stale = false

	sh, err := g.store.Lookup(g.specName)
	if err != nil {
		return err
	}
	tab, err := spectrum.Build(sh, g.depth, g.enThreshold)
	if err != nil {
		return err
	}
	g.table = tab
	return nil
}

// Generate draws one fast neutron and appends it to ev as a primary at
// position dx and time dt. The offsets come from the upstream position
// and time generators and are used verbatim.
//
// Draw order per event is fixed (energy, cos(theta), phi), so a seeded
// source reproduces an event stream exactly.
func (g *FastNeutron) Generate(ev *Event, dx fmom.Vec3, dt float64) error {
	if g.stale {
		if err := g.rebuild(); err != nil {
			return err
		}
	}
	if g.table == nil {
		return spectrum.ErrUninitializedTable
	}

	energy, _, err := g.table.Sample(g.rng.Float64())
	if err != nil {
		return err
	}

	// Zeroth-order angular model: forward hemisphere about the reference
	// axis, uniform in cos(theta) and phi.
	cosTheta := g.rng.Float64()
	phi := 2 * math.Pi * g.rng.Float64()
	dir := geom.FromPolar(&g.refDir, cosTheta, phi)

	p := phys.Momentum(energy, g.particle.Mass)
	etot := energy + g.particle.Mass

	ev.AddPrimary(Primary{
		Name: g.particle.Name,
		PDG:  g.particle.PDG,
		P:    fmom.NewPxPyPzE(p*dir[0], p*dir[1], p*dir[2], etot),
		Pos:  dx,
		Time: dt,
	})
	return nil
}
