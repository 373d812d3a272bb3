package iscc

import (
	"math"

	"github.com/asim/quadtree"
	"github.com/kovidgoyal/munsell"
)

// Chroma at or below this is classified on the neutral axis; the region
// table starts just above it.
const neutralChroma = 0.5

// Classify maps a Munsell color to its ISCC-NBS descriptor. Wedge
// selection honors the boundary policy; within the wedge the value-chroma
// polygon is tested with the even-odd rule. A point in a gap between
// regions is assigned the region with the nearest polygon boundary among
// the wedge's candidates — required behavior, not an error, since the
// table does not perfectly tile the plane.
func (c *Classifier) Classify(m munsell.Color, policy BoundaryPolicy) string {
	if m.IsNeutral() || m.Chroma <= neutralChroma {
		return neutralName(m.Value)
	}
	h := m.Hue100()
	pt := VC{C: m.Chroma, V: m.Value}

	var candidates []int
	for i := range c.regions {
		if c.regions[i].hueInWedge(h, policy) {
			if pointInPolygon(pt, c.regions[i].Polygon) {
				return c.regions[i].Name
			}
			candidates = append(candidates, i)
		}
	}
	return c.nearestRegion(pt, candidates)
}

func neutralName(v float64) string {
	switch {
	case v > 8.5:
		return "white"
	case v > 6.5:
		return "light gray"
	case v > 4.5:
		return "medium gray"
	case v > 2.5:
		return "dark gray"
	default:
		return "black"
	}
}

// pointInPolygon is the even-odd crossing rule in the value-chroma plane.
func pointInPolygon(p VC, poly []VC) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.V > p.V) != (b.V > p.V) {
			xc := a.C + (p.V-a.V)/(b.V-a.V)*(b.C-a.C)
			if p.C < xc {
				inside = !inside
			}
		}
	}
	return inside
}

// nearestRegion resolves gap points. The quadtree narrows the search to
// regions with a polygon vertex near the point; the exact minimum distance
// to a polygon edge decides among them.
func (c *Classifier) nearestRegion(pt VC, candidates []int) string {
	inWedge := make(map[int]bool, len(candidates))
	for _, i := range candidates {
		inWedge[i] = true
	}
	consider := map[int]bool{}
	center := quadtree.NewPoint(pt.C, pt.V, nil)
	near := c.qt.KNearest(quadtree.NewAABB(center, quadtree.NewPoint(12, 12, nil)), 24, nil)
	for _, qp := range near {
		owners, ok := qp.Data().([]int)
		if !ok {
			continue
		}
		for _, i := range owners {
			if inWedge[i] {
				consider[i] = true
			}
		}
	}
	if len(consider) == 0 {
		// sparse neighborhood: fall back to every wedge candidate
		for _, i := range candidates {
			consider[i] = true
		}
	}
	bestName := ""
	best := math.Inf(1)
	for i := range consider {
		if d := polygonDistance(pt, c.regions[i].Polygon); d < best ||
			(d == best && c.regions[i].Name < bestName) {
			best = d
			bestName = c.regions[i].Name
		}
	}
	if bestName == "" {
		// no wedge candidates at all; nearest over the full table
		for i := range c.regions {
			if d := polygonDistance(pt, c.regions[i].Polygon); d < best {
				best = d
				bestName = c.regions[i].Name
			}
		}
	}
	return bestName
}

func polygonDistance(p VC, poly []VC) float64 {
	best := math.Inf(1)
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if d := segmentDistance(p, poly[j], poly[i]); d < best {
			best = d
		}
	}
	return best
}

func segmentDistance(p, a, b VC) float64 {
	dx, dy := b.C-a.C, b.V-a.V
	l2 := dx*dx + dy*dy
	t := 0.0
	if l2 > 0 {
		t = ((p.C-a.C)*dx + (p.V-a.V)*dy) / l2
		t = max(0, min(1, t))
	}
	cx, cy := a.C+t*dx, a.V+t*dy
	return math.Hypot(p.C-cx, p.V-cy)
}
