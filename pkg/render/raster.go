package render

import (
	"image/color"
	"math"

	"github.com/gfxcourse/labkit/pkg/vecmath"
)

// FillTriangle rasterizes a depth-tested triangle given in screen
// space (pixel x/y, depth in z) with per-vertex colors interpolated
// barycentrically, which is what smooth shading amounts to.
func FillTriangle(ctx *Context, p0, p1, p2 vecmath.Vec3, c0, c1, c2 vecmath.Vec3) {
	area := edge(p0, p1, p2)
	if area == 0 {
		return
	}

	minX := int(math.Floor(min3(p0.X, p1.X, p2.X)))
	maxX := int(math.Ceil(max3(p0.X, p1.X, p2.X)))
	minY := int(math.Floor(min3(p0.Y, p1.Y, p2.Y)))
	maxY := int(math.Ceil(max3(p0.Y, p1.Y, p2.Y)))

	w, h := ctx.Size()
	minX = clampInt(minX, 0, w-1)
	maxX = clampInt(maxX, 0, w-1)
	minY = clampInt(minY, 0, h-1)
	maxY = clampInt(maxY, 0, h-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := vecmath.Vec3{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			w0 := edge(p1, p2, p) / area
			w1 := edge(p2, p0, p) / area
			w2 := edge(p0, p1, p) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*p0.Z + w1*p1.Z + w2*p2.Z
			c := c0.Scale(w0).Add(c1.Scale(w1)).Add(c2.Scale(w2))
			ctx.SetPixel(x, y, z, toRGBA(c))
		}
	}
}

// DrawPoint draws a square marker of the given pixel size centered on
// a screen-space point, ignoring depth (the light marker in the
// lighting stage draws on top).
func DrawPoint(ctx *Context, p vecmath.Vec3, size int, c vecmath.Vec3) {
	half := size / 2
	px := toRGBA(c)
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			ctx.SetPixel(int(p.X)+dx, int(p.Y)+dy, math.Inf(-1), px)
		}
	}
}

// edge is twice the signed area of the triangle (a, b, p). Its sign
// tells which side of edge ab the point p lies on.
func edge(a, b, p vecmath.Vec3) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// toRGBA clamps an RGB color with components in [0,1] to 8-bit.
func toRGBA(c vecmath.Vec3) color.RGBA {
	return color.RGBA{
		R: clamp8(c.X),
		G: clamp8(c.Y),
		B: clamp8(c.Z),
		A: 0xFF,
	}
}

func clamp8(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 0xFF
	}
	return uint8(x * 255)
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
