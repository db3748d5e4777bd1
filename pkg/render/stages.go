package render

import (
	"fmt"
	"math"

	"github.com/gfxcourse/labkit/pkg/mesh"
	"github.com/gfxcourse/labkit/pkg/vecmath"
)

// Stage is one step of the graphics tutorial. Each stage is a render
// callback with a name the CLI can select it by.
type Stage interface {
	Name() string
	Render(t float64, ctx *Context)
}

// NewStage returns the named tutorial stage. The lighting stage shades
// the given mesh; the other stages ignore it.
func NewStage(name string, m *mesh.Mesh) (Stage, error) {
	switch name {
	case "blank":
		return BlankStage{}, nil
	case "box":
		return BoxStage{}, nil
	case "lighting":
		if m == nil {
			m = mesh.Cube()
		}
		return &LightingStage{Mesh: m}, nil
	default:
		return nil, fmt.Errorf("unknown stage %q (want blank, box, or lighting)", name)
	}
}

// StageNames lists the stages in tutorial order.
func StageNames() []string {
	return []string{"blank", "box", "lighting"}
}

// BlankStage is the starting point of the tutorial: a window with an
// empty render callback.
type BlankStage struct{}

func (BlankStage) Name() string { return "blank" }

func (BlankStage) Render(t float64, ctx *Context) {
	// Drawing code goes here.
}

// BoxStage draws a unit square out of two triangles, the first thing
// the tutorial puts on screen.
type BoxStage struct{}

func (BoxStage) Name() string { return "box" }

func (BoxStage) Render(t float64, ctx *Context) {
	c := vecmath.Vec3{X: 0.7, Y: 0.8, Z: 0.8}
	quad := []vecmath.Vec3{
		{X: -0.5, Y: -0.5}, {X: -0.5, Y: 0.5}, {X: 0.5, Y: -0.5},
		{X: -0.5, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: -0.5},
	}
	for i := 0; i+2 < len(quad); i += 3 {
		p0 := ctx.ToScreen(quad[i])
		p1 := ctx.ToScreen(quad[i+1])
		p2 := ctx.ToScreen(quad[i+2])
		FillTriangle(ctx, p0, p1, p2, c, c, c)
	}
}

// LightingStage spins a mesh under a point light: smooth per-vertex
// shading with an ambient term and a quadratically attenuated diffuse
// term, plus a marker point at the light itself.
type LightingStage struct {
	Mesh *mesh.Mesh
}

// Material and light constants for the stage.
var (
	baseColor    = vecmath.Vec3{X: 0.7, Y: 0.8, Z: 0.8}
	lightAmbient = vecmath.Vec3{X: 0.1, Y: 0.1, Z: 0.1}
	lightDiffuse = vecmath.Vec3{X: 1, Y: 1, Z: 1}
)

const lightOrbitRadius = 0.17

func (*LightingStage) Name() string { return "lighting" }

func (s *LightingStage) Render(t float64, ctx *Context) {
	// Model matrix encodes object position
	model := Identity().
		Scale(vecmath.Vec3{X: 5, Y: 5, Z: 5}).
		Rotate(radians(-25*t), vecmath.Vec3{Y: 1})

	// View matrix encodes camera position / orientation
	view := Identity().
		Rotate(radians(35), vecmath.Vec3{X: 1}).
		Rotate(radians(-90), vecmath.Vec3{Y: 1}).
		Translate(vecmath.Vec3{X: -2, Y: -1})

	projection := Perspective(radians(90), ctx.Aspect(), 0.1, 40)

	mv := view.Mul(model)
	mvp := projection.Mul(mv)

	lightPos := vecmath.Vec3{Y: math.Sin(t), Z: math.Cos(t)}.Scale(lightOrbitRadius)
	lightEye, _ := mv.TransformPoint(lightPos)

	m := s.Mesh
	eye := make([]vecmath.Vec3, len(m.Vertices))
	screen := make([]vecmath.Vec3, len(m.Vertices))
	visible := make([]bool, len(m.Vertices))
	shade := make([]vecmath.Vec3, len(m.Vertices))

	for i, v := range m.Vertices {
		e, _ := mv.TransformPoint(v)
		eye[i] = e

		ndc, w := mvp.TransformPoint(v)
		visible[i] = w > 0
		screen[i] = ctx.ToScreen(ndc)

		n := mv.TransformDir(m.Normals[i]).Normalize()
		shade[i] = shadeVertex(e, n, lightEye)
	}

	for _, f := range m.Faces {
		if !visible[f[0]] || !visible[f[1]] || !visible[f[2]] {
			continue
		}
		FillTriangle(ctx,
			screen[f[0]], screen[f[1]], screen[f[2]],
			shade[f[0]], shade[f[1]], shade[f[2]])
	}

	// Light marker on top of everything.
	if ndc, w := projection.TransformPoint(lightEye); w > 0 {
		DrawPoint(ctx, ctx.ToScreen(ndc), 5, vecmath.Vec3{X: 1, Y: 1, Z: 1})
	}
}

// shadeVertex evaluates the fixed-function lighting model at a vertex:
// (ambient + diffuse * max(0, n.l)) scaled by quadratic attenuation,
// modulated by the material color. Normals facing away from the light
// get the ambient term only.
func shadeVertex(p, n, light vecmath.Vec3) vecmath.Vec3 {
	toLight := light.Sub(p)
	d2 := toLight.Dot(toLight)
	l := toLight.Normalize()

	ndotl := math.Max(0, n.Dot(l))
	att := 1.0
	if d2 > 0 {
		att = 1 / d2
	}

	c := vecmath.Vec3{
		X: baseColor.X * (lightAmbient.X + lightDiffuse.X*ndotl) * att,
		Y: baseColor.Y * (lightAmbient.Y + lightDiffuse.Y*ndotl) * att,
		Z: baseColor.Z * (lightAmbient.Z + lightDiffuse.Z*ndotl) * att,
	}
	return c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
