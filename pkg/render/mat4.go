package render

import (
	"math"

	"github.com/gfxcourse/labkit/pkg/vecmath"
)

// Mat4 is a column-major 4x4 transform matrix, the layout OpenGL and
// glm use. Element (row i, col j) is m[4*j+i]. Points transform as
// column vectors, so composed transforms apply right to left.
type Mat4 [16]float64

// Identity returns the identity transform.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m * a.
func (m Mat4) Mul(a Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[4*k+i] * a[4*j+k]
			}
			out[4*j+i] = sum
		}
	}
	return out
}

// Translate returns m composed with a translation by t.
func (m Mat4) Translate(t vecmath.Vec3) Mat4 {
	tr := Identity()
	tr[12] = t.X
	tr[13] = t.Y
	tr[14] = t.Z
	return m.Mul(tr)
}

// Scale returns m composed with a per-axis scale by s.
func (m Mat4) Scale(s vecmath.Vec3) Mat4 {
	sc := Identity()
	sc[0] = s.X
	sc[5] = s.Y
	sc[10] = s.Z
	return m.Mul(sc)
}

// Rotate returns m composed with a rotation of angle radians about
// the given axis (Rodrigues form, matching glm::rotate).
func (m Mat4) Rotate(angle float64, axis vecmath.Vec3) Mat4 {
	a := axis.Normalize()
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c

	r := Mat4{
		t*a.X*a.X + c, t*a.X*a.Y + s*a.Z, t*a.X*a.Z - s*a.Y, 0,
		t*a.X*a.Y - s*a.Z, t*a.Y*a.Y + c, t*a.Y*a.Z + s*a.X, 0,
		t*a.X*a.Z + s*a.Y, t*a.Y*a.Z - s*a.X, t*a.Z*a.Z + c, 0,
		0, 0, 0, 1,
	}
	return m.Mul(r)
}

// Perspective returns a right-handed perspective projection with the
// given vertical field of view in radians, aspect ratio, and clip
// planes, matching glm::perspective.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovy/2)
	var out Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = (far + near) / (near - far)
	out[11] = -1
	out[14] = (2 * far * near) / (near - far)
	return out
}

// TransformPoint applies the transform to a point and performs the
// perspective divide. The returned w is the clip-space w before the
// divide; callers use it to reject points behind the camera.
func (m Mat4) TransformPoint(p vecmath.Vec3) (out vecmath.Vec3, w float64) {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w = m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 {
		out = vecmath.Vec3{X: x / w, Y: y / w, Z: z / w}
	} else {
		out = vecmath.Vec3{X: x, Y: y, Z: z}
	}
	return out, w
}

// TransformDir applies only the rotational/scaling part of the
// transform, leaving translation out. Used for normals and light
// directions.
func (m Mat4) TransformDir(d vecmath.Vec3) vecmath.Vec3 {
	return vecmath.Vec3{
		X: m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		Y: m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		Z: m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}
