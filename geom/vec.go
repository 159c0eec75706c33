/*package geom contains small routines for manipulating direction vectors.

The vector type itself comes from go-hep's fmom package so that directions,
positions, and momenta share one representation across the toolkit.
*/
package geom

import (
	"math"

	"go-hep.org/x/hep/fmom"
)

// Norm returns the Euclidean length of v.
func Norm(v *fmom.Vec3) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Unit returns the unit vector pointing along v. Unit panics if v is the
// zero vector.
func Unit(v *fmom.Vec3) fmom.Vec3 {
	n := Norm(v)
	if n == 0 {
		panic("geom: cannot normalize the zero vector")
	}
	return fmom.Vec3{v[0] / n, v[1] / n, v[2] / n}
}

// Dot returns the inner product of u and v.
func Dot(u, v *fmom.Vec3) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// Cross returns the cross product of u and v.
func Cross(u, v *fmom.Vec3) fmom.Vec3 {
	return fmom.Vec3{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// Scale returns v scaled by s.
func Scale(v *fmom.Vec3, s float64) fmom.Vec3 {
	return fmom.Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Basis returns two unit vectors which, together with the unit vector along
// axis, form a right-handed orthonormal basis. Basis panics if axis is the
// zero vector.
func Basis(axis *fmom.Vec3) (e1, e2 fmom.Vec3) {
	a := Unit(axis)

	// Seed with the coordinate axis least aligned with a.
	seed := fmom.Vec3{1, 0, 0}
	if math.Abs(a[1]) < math.Abs(a[0]) {
		seed = fmom.Vec3{0, 1, 0}
	}
	if math.Abs(a[2]) < math.Abs(a[0]) && math.Abs(a[2]) < math.Abs(a[1]) {
		seed = fmom.Vec3{0, 0, 1}
	}

	e1 = Cross(&a, &seed)
	e1 = Unit(&e1)
	e2 = Cross(&a, &e1)
	return e1, e2
}

// FromPolar returns the unit vector at polar angle acos(cosTheta) and
// azimuthal angle phi relative to axis. cosTheta must be in [-1, 1].
func FromPolar(axis *fmom.Vec3, cosTheta, phi float64) fmom.Vec3 {
	if cosTheta < -1 || cosTheta > 1 {
		panic("geom: cosTheta outside [-1, 1]")
	}
	a := Unit(axis)
	e1, e2 := Basis(axis)

	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	c1 := sinTheta * math.Cos(phi)
	c2 := sinTheta * math.Sin(phi)

	return fmom.Vec3{
		cosTheta*a[0] + c1*e1[0] + c2*e2[0],
		cosTheta*a[1] + c1*e1[1] + c2*e2[1],
		cosTheta*a[2] + c1*e1[2] + c2*e2[2],
	}
}
