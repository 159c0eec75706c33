/*package phys contains the particle species table and the small amount of
relativistic kinematics needed when turning sampled energies into momenta.

Masses are in MeV and follow the PDG values. The table only carries the
species the generators currently emit; extending it is a one-line change.
*/
package phys

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownParticle is returned by ByName for species not in the table.
var ErrUnknownParticle = errors.New("phys: unknown particle name")

// Particle describes a single species: its name, PDG code, and rest
// mass in MeV.
type Particle struct {
	Name string
	PDG  int
	Mass float64
}

var particles = map[string]Particle{
	"neutron":  {"neutron", 2112, 939.56542},
	"proton":   {"proton", 2212, 938.27209},
	"e-":       {"e-", 11, 0.51099895},
	"electron": {"electron", 11, 0.51099895},
	"e+":       {"e+", -11, 0.51099895},
	"positron": {"positron", -11, 0.51099895},
	"gamma":    {"gamma", 22, 0},
	"mu-":      {"mu-", 13, 105.65837},
	"mu+":      {"mu+", -13, 105.65837},
}

// ByName returns the particle with the given name. The name must match the
// table exactly; there is no case folding.
func ByName(name string) (Particle, error) {
	p, ok := particles[name]
	if !ok {
		return Particle{}, fmt.Errorf("%w: %q", ErrUnknownParticle, name)
	}
	return p, nil
}

// Momentum returns the magnitude of the momentum, in MeV, of a particle
// with the given kinetic energy and rest mass, both in MeV.
func Momentum(kinetic, mass float64) float64 {
	e := kinetic + mass
	return math.Sqrt(e*e - mass*mass)
}
