/*package ds holds data-structure types shared between generators,
fitters, and output writers.
*/
package ds

import "go-hep.org/x/hep/fmom"

// PosFit is the contract shared by all position fitters: a fitter name
// and the fitted vertex position.
type PosFit interface {
	FitterName() string
	Position() fmom.Vec3
	SetPosition(pos fmom.Vec3)
}

// BonsaiFit is the fit result produced by the BONSAI position/time
// fitter: a vertex position and time, a fitted direction, and the
// log-likelihoods of the fit and of the null hypothesis.
type BonsaiFit struct {
	pos      fmom.Vec3
	time     float64
	dir      fmom.Vec3
	logLike  float64
	logLike0 float64
}

var _ PosFit = &BonsaiFit{}

// FitterName returns "BONSAI".
func (f *BonsaiFit) FitterName() string { return "BONSAI" }

// Position returns the fitted vertex position.
func (f *BonsaiFit) Position() fmom.Vec3 { return f.pos }

// SetPosition sets the fitted vertex position.
func (f *BonsaiFit) SetPosition(pos fmom.Vec3) { f.pos = pos }

// Time returns the fitted vertex time.
func (f *BonsaiFit) Time() float64 { return f.time }

// SetTime sets the fitted vertex time.
func (f *BonsaiFit) SetTime(time float64) { f.time = time }

// Direction returns the fitted track direction.
func (f *BonsaiFit) Direction() fmom.Vec3 { return f.dir }

// SetDirection sets the fitted track direction.
func (f *BonsaiFit) SetDirection(dir fmom.Vec3) { f.dir = dir }

// LogLike returns the log-likelihood of the fit.
func (f *BonsaiFit) LogLike() float64 { return f.logLike }

// SetLogLike sets the log-likelihood of the fit.
func (f *BonsaiFit) SetLogLike(l float64) { f.logLike = l }

// LogLike0 returns the log-likelihood of the null hypothesis.
func (f *BonsaiFit) LogLike0() float64 { return f.logLike0 }

// SetLogLike0 sets the log-likelihood of the null hypothesis.
func (f *BonsaiFit) SetLogLike0(l float64) { f.logLike0 = l }
