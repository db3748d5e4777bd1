package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gfxcourse/labkit/pkg/vecmath"
)

// Context is the drawing surface handed to the per-frame render
// callback: an RGBA framebuffer plus a depth buffer, both in logical
// pixels.
type Context struct {
	width  int
	height int
	frame  *image.RGBA
	depth  []float64
}

// NewContext allocates a drawing surface of the given logical size.
func NewContext(width, height int) *Context {
	c := &Context{
		width:  width,
		height: height,
		frame:  image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:  make([]float64, width*height),
	}
	c.Clear(color.RGBA{A: 0xFF})
	return c
}

// Size returns the logical framebuffer size.
func (c *Context) Size() (int, int) {
	return c.width, c.height
}

// Aspect returns the width/height ratio used for projection.
func (c *Context) Aspect() float64 {
	return float64(c.width) / float64(c.height)
}

// Frame returns the framebuffer image.
func (c *Context) Frame() *image.RGBA {
	return c.frame
}

// Clear fills the framebuffer with a color and resets the depth
// buffer to the far plane.
func (c *Context) Clear(col color.Color) {
	r, g, b, a := col.RGBA()
	px := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.frame.SetRGBA(x, y, px)
		}
	}
	for i := range c.depth {
		c.depth[i] = math.Inf(1)
	}
}

// SetPixel writes a pixel if it passes the depth test. Coordinates
// outside the framebuffer are ignored.
func (c *Context) SetPixel(x, y int, z float64, col color.RGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := y*c.width + x
	if z > c.depth[i] {
		return
	}
	c.depth[i] = z
	c.frame.SetRGBA(x, y, col)
}

// DepthAt returns the stored depth for a pixel, +Inf when untouched.
func (c *Context) DepthAt(x, y int) float64 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return math.Inf(1)
	}
	return c.depth[y*c.width+x]
}

// ToScreen maps a point in normalized device coordinates
// ([-1,1] x [-1,1], y up) to pixel coordinates (y down), keeping z as
// the depth value.
func (c *Context) ToScreen(ndc vecmath.Vec3) vecmath.Vec3 {
	return vecmath.Vec3{
		X: (ndc.X + 1) * 0.5 * float64(c.width),
		Y: (1 - ndc.Y) * 0.5 * float64(c.height),
		Z: ndc.Z,
	}
}
