package etoalium

import "math"

// Affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// identityTransform is the identity affine matrix.
var identityTransform = Affine{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c Affine) Affine {
	return Affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// translated returns m with a translation applied in m's local space.
func (m Affine) translated(x, y float64) Affine {
	return multiplyAffine(m, Affine{1, 0, 0, 1, x, y})
}

// rotated returns m with a clockwise rotation (screen space, Y down) of
// rad radians applied in m's local space.
func (m Affine) rotated(rad float64) Affine {
	sin, cos := math.Sincos(rad)
	return multiplyAffine(m, Affine{cos, sin, -sin, cos, 0, 0})
}

// scaled returns m with a scale applied in m's local space.
func (m Affine) scaled(sx, sy float64) Affine {
	return multiplyAffine(m, Affine{sx, 0, 0, sy, 0, 0})
}

// Apply maps a local point through the matrix.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Rotation returns the rotation angle of the matrix in radians, assuming no
// skew.
func (m Affine) Rotation() float64 {
	return math.Atan2(m[1], m[0])
}
