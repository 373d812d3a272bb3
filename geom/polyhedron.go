// Package geom implements the small amount of 3D computational geometry
// the classifier needs: convex polyhedra with triangulated faces,
// point-in-polyhedron testing and convex hull construction.
package geom

import (
	"errors"
	"fmt"
	"math"
)

type Point3 struct {
	X, Y, Z float64
}

func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point3) Dot(q Point3) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}
func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}
func (p Point3) Norm() float64 { return math.Sqrt(p.Dot(p)) }
func (p Point3) Scale(s float64) Point3 {
	return Point3{p.X * s, p.Y * s, p.Z * s}
}

// Face indexes three vertices of a polyhedron.
type Face [3]int

type facePlane struct {
	normal Point3 // unit, outward
	offset float64
}

// Polyhedron is a closed convex polyhedron. Faces are stored with
// consistently outward-oriented normals; convexity is established at
// construction time and assumed afterwards.
type Polyhedron struct {
	Name     string
	Vertices []Point3
	Faces    []Face
	planes   []facePlane
}

// NewPolyhedron builds a polyhedron from vertices and triangulated faces.
// Face orientation in the input does not matter: every face is re-oriented
// outward against the vertex centroid, which is interior for a convex
// body.
func NewPolyhedron(name string, vertices []Point3, faces []Face) (*Polyhedron, error) {
	if len(vertices) < 4 || len(faces) < 4 {
		return nil, fmt.Errorf("polyhedron %q: need at least 4 vertices and 4 faces, got %d/%d",
			name, len(vertices), len(faces))
	}
	var centroid Point3
	for _, v := range vertices {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Scale(1 / float64(len(vertices)))

	p := &Polyhedron{Name: name, Vertices: vertices, Faces: make([]Face, len(faces)), planes: make([]facePlane, len(faces))}
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("polyhedron %q: face %d references vertex %d", name, i, idx)
			}
		}
		a, b, c := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		ln := n.Norm()
		if ln == 0 {
			return nil, fmt.Errorf("polyhedron %q: face %d is degenerate", name, i)
		}
		n = n.Scale(1 / ln)
		if n.Dot(centroid.Sub(a)) > 0 {
			// flip to point away from the interior
			f[1], f[2] = f[2], f[1]
			n = n.Scale(-1)
		}
		p.Faces[i] = f
		p.planes[i] = facePlane{normal: n, offset: n.Dot(a)}
	}
	return p, nil
}

// Contains reports whether pt lies inside the polyhedron or within eps of
// its boundary: on or below every face plane.
func (p *Polyhedron) Contains(pt Point3, eps float64) bool {
	for _, pl := range p.planes {
		if pl.normal.Dot(pt)-pl.offset > eps {
			return false
		}
	}
	return true
}

var ErrInsufficientData = errors.New("convex hull needs at least 4 non-coplanar points")
