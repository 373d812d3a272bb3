package geom

import "fmt"

// Incremental 3D convex hull. Points are added one at a time; faces
// visible from the new point are removed and the horizon is re-capped with
// new triangles through the point. Runtime is O(n * faces), plenty for the
// calibration clouds this module builds polyhedra from.

// OuterHull computes the convex hull of a point cloud. At least 4
// non-coplanar points are required.
func OuterHull(name string, pts []Point3) (*Polyhedron, error) {
	poly, _, err := hull(name, pts)
	return poly, err
}

// InnerHull computes the single-layer peel: the hull of the cloud minus
// the points that were vertices of the outer hull. Exactly one layer is
// removed, never more; this mirrors the outlier-elimination methodology
// the calibration data was built with.
func InnerHull(name string, pts []Point3) (*Polyhedron, error) {
	_, used, err := hull(name, pts)
	if err != nil {
		return nil, err
	}
	onHull := make(map[int]bool, len(used))
	for _, i := range used {
		onHull[i] = true
	}
	rest := make([]Point3, 0, len(pts)-len(used))
	for i, p := range pts {
		if !onHull[i] {
			rest = append(rest, p)
		}
	}
	poly, _, err := hull(name, rest)
	if err != nil {
		return nil, fmt.Errorf("inner hull of %q: %w", name, err)
	}
	return poly, nil
}

// hull returns the polyhedron and the indices into pts of the points that
// ended up as hull vertices.
func hull(name string, pts []Point3) (*Polyhedron, []int, error) {
	if len(pts) < 4 {
		return nil, nil, ErrInsufficientData
	}
	eps := hullEpsilon(pts)

	i0, i1, i2, i3, ok := initialSimplex(pts, eps)
	if !ok {
		return nil, nil, ErrInsufficientData
	}
	// fixed interior reference point for orienting face normals
	ref := pts[i0].Add(pts[i1]).Add(pts[i2]).Add(pts[i3]).Scale(0.25)

	faces := []Face{{i0, i1, i2}, {i0, i1, i3}, {i0, i2, i3}, {i1, i2, i3}}
	inSimplex := map[int]bool{i0: true, i1: true, i2: true, i3: true}

	outward := func(f Face) (Point3, float64) {
		a := pts[f[0]]
		n := pts[f[1]].Sub(a).Cross(pts[f[2]].Sub(a))
		if n.Dot(ref.Sub(a)) > 0 {
			n = n.Scale(-1)
		}
		ln := n.Norm()
		if ln > 0 {
			n = n.Scale(1 / ln)
		}
		return n, n.Dot(a)
	}

	for i := range pts {
		if inSimplex[i] {
			continue
		}
		p := pts[i]
		visible := make([]int, 0, 8)
		for fi, f := range faces {
			n, off := outward(f)
			if n.Dot(p)-off > eps {
				visible = append(visible, fi)
			}
		}
		if len(visible) == 0 {
			continue // inside the current hull
		}
		// horizon: undirected edges belonging to exactly one visible face
		type edge struct{ a, b int }
		norm := func(a, b int) edge {
			if a > b {
				a, b = b, a
			}
			return edge{a, b}
		}
		count := map[edge]int{}
		for _, fi := range visible {
			f := faces[fi]
			count[norm(f[0], f[1])]++
			count[norm(f[1], f[2])]++
			count[norm(f[2], f[0])]++
		}
		isVisible := make(map[int]bool, len(visible))
		for _, fi := range visible {
			isVisible[fi] = true
		}
		kept := faces[:0:0]
		for fi, f := range faces {
			if !isVisible[fi] {
				kept = append(kept, f)
			}
		}
		for e, c := range count {
			if c == 1 {
				kept = append(kept, Face{e.a, e.b, i})
			}
		}
		faces = kept
	}

	// compact: only points referenced by faces are hull vertices
	remap := map[int]int{}
	var used []int
	var vertices []Point3
	outFaces := make([]Face, len(faces))
	for fi, f := range faces {
		for k, idx := range f {
			ni, ok := remap[idx]
			if !ok {
				ni = len(vertices)
				remap[idx] = ni
				vertices = append(vertices, pts[idx])
				used = append(used, idx)
			}
			outFaces[fi][k] = ni
		}
	}
	poly, err := NewPolyhedron(name, vertices, outFaces)
	if err != nil {
		return nil, nil, err
	}
	return poly, used, nil
}

func hullEpsilon(pts []Point3) float64 {
	lo, hi := pts[0], pts[0]
	for _, p := range pts {
		lo = Point3{min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z)}
		hi = Point3{max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z)}
	}
	diag := hi.Sub(lo).Norm()
	return 1e-9 * max(1, diag)
}

// initialSimplex picks four points spanning a non-degenerate tetrahedron.
func initialSimplex(pts []Point3, eps float64) (i0, i1, i2, i3 int, ok bool) {
	// most distant pair among axis extremes
	extremes := make(map[int]bool)
	for axis := range 3 {
		minI, maxI := 0, 0
		get := func(p Point3) float64 {
			switch axis {
			case 0:
				return p.X
			case 1:
				return p.Y
			default:
				return p.Z
			}
		}
		for i, p := range pts {
			if get(p) < get(pts[minI]) {
				minI = i
			}
			if get(p) > get(pts[maxI]) {
				maxI = i
			}
		}
		extremes[minI] = true
		extremes[maxI] = true
	}
	best := -1.0
	for a := range extremes {
		for b := range extremes {
			if d := pts[a].Sub(pts[b]).Norm(); d > best {
				best, i0, i1 = d, a, b
			}
		}
	}
	if best <= eps {
		return 0, 0, 0, 0, false
	}
	dir := pts[i1].Sub(pts[i0])
	best = -1
	for i, p := range pts {
		d := dir.Cross(p.Sub(pts[i0])).Norm()
		if d > best {
			best, i2 = d, i
		}
	}
	if best <= eps*dir.Norm() {
		return 0, 0, 0, 0, false
	}
	n := dir.Cross(pts[i2].Sub(pts[i0]))
	n = n.Scale(1 / n.Norm())
	best = -1
	for i, p := range pts {
		d := abs(n.Dot(p.Sub(pts[i0])))
		if d > best {
			best, i3 = d, i
		}
	}
	if best <= eps {
		return 0, 0, 0, 0, false
	}
	return i0, i1, i2, i3, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
