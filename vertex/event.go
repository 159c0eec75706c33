package vertex

import "go-hep.org/x/hep/fmom"

// Primary is a single generated primary particle: its species, four
// momentum in MeV, production position, and production time.
type Primary struct {
	Name string
	PDG  int
	P    fmom.PxPyPzE
	Pos  fmom.Vec3
	Time float64
}

// Event collects the primaries generated for one simulated event. It is
// the stand-in for the host simulation's event object; generators append
// to it and never read it back.
type Event struct {
	Primaries []Primary
}

// AddPrimary appends p to the event.
func (ev *Event) AddPrimary(p Primary) {
	ev.Primaries = append(ev.Primaries, p)
}
