// Package mesh loads triangle meshes from Wavefront OBJ files and
// computes the per-vertex normals the lighting stage shades with.
package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gfxcourse/labkit/pkg/vecmath"
)

// Mesh represents an indexed triangle mesh.
type Mesh struct {
	Vertices []vecmath.Vec3
	Faces    [][3]int // vertex indices, 0-based
	Normals  []vecmath.Vec3
}

// Load reads an OBJ file from disk.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

// Parse reads Wavefront OBJ geometry: v records for positions and f
// records for faces. Faces with more than three corners are
// triangulated as a fan; indices may be 1-based or negative
// (relative to the vertices seen so far). Texture and normal index
// suffixes (v/vt/vn) are ignored, as are all other record types.
func Parse(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				x, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad coordinate %q: %w", lineNo, fields[i+1], err)
				}
				coords[i] = x
			}
			m.Vertices = append(m.Vertices, vecmath.Vec3{X: coords[0], Y: coords[1], Z: coords[2]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				i, err := parseIndex(ref, len(m.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				idx = append(idx, i)
			}
			for i := 1; i+1 < len(idx); i++ {
				m.Faces = append(m.Faces, [3]int{idx[0], idx[i], idx[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(m.Vertices) == 0 {
		return nil, fmt.Errorf("no vertices found")
	}
	m.ComputeNormals()
	return m, nil
}

// parseIndex resolves an OBJ vertex reference ("7", "7/1", "7/1/2",
// "-1") to a 0-based vertex index.
func parseIndex(ref string, nVertices int) (int, error) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad vertex reference %q: %w", ref, err)
	}
	switch {
	case n > 0 && n <= nVertices:
		return n - 1, nil
	case n < 0 && -n <= nVertices:
		return nVertices + n, nil
	default:
		return 0, fmt.Errorf("vertex reference %d out of range (have %d vertices)", n, nVertices)
	}
}

// ComputeNormals rebuilds per-vertex normals by accumulating each
// face's cross-product normal onto its corners and normalizing. Faces
// contribute proportionally to their area, which falls out of the
// unnormalized cross product.
func (m *Mesh) ComputeNormals() {
	m.Normals = make([]vecmath.Vec3, len(m.Vertices))
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		for _, vi := range f {
			m.Normals[vi] = m.Normals[vi].Add(n)
		}
	}
	for i := range m.Normals {
		m.Normals[i] = m.Normals[i].Normalize()
	}
}

// Center returns the centroid of the vertex positions.
func (m *Mesh) Center() vecmath.Vec3 {
	var c vecmath.Vec3
	if len(m.Vertices) == 0 {
		return c
	}
	for _, v := range m.Vertices {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(m.Vertices)))
}

// Cube returns a unit cube centered at the origin, used when no mesh
// file is supplied.
func Cube() *Mesh {
	m := &Mesh{
		Vertices: []vecmath.Vec3{
			{X: -0.5, Y: -0.5, Z: -0.5},
			{X: 0.5, Y: -0.5, Z: -0.5},
			{X: 0.5, Y: 0.5, Z: -0.5},
			{X: -0.5, Y: 0.5, Z: -0.5},
			{X: -0.5, Y: -0.5, Z: 0.5},
			{X: 0.5, Y: -0.5, Z: 0.5},
			{X: 0.5, Y: 0.5, Z: 0.5},
			{X: -0.5, Y: 0.5, Z: 0.5},
		},
		Faces: [][3]int{
			{0, 2, 1}, {0, 3, 2}, // back
			{4, 5, 6}, {4, 6, 7}, // front
			{0, 4, 7}, {0, 7, 3}, // left
			{1, 2, 6}, {1, 6, 5}, // right
			{3, 7, 6}, {3, 6, 2}, // top
			{0, 1, 5}, {0, 5, 4}, // bottom
		},
	}
	m.ComputeNormals()
	return m
}
