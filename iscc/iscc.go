// Package iscc maps Munsell coordinates to ISCC-NBS categorical color
// names. A region is a hue wedge on the 100-step circle plus a polygon in
// the value-chroma plane; the ~267 named regions approximately tile the
// solid but gaps exist, and a point falling into a gap is assigned the
// nearest region rather than failing. Which side of a wedge boundary a hue
// belongs to is a runtime policy, not a constant: the two conventions
// classify measurably differently.
package iscc

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/asim/quadtree"
)

//go:embed data/regions.csv
var regionData []byte

// BoundaryPolicy decides ownership of a hue sitting exactly on a wedge
// boundary.
type BoundaryPolicy int

const (
	// Method1 treats a wedge as [start, end): the starting hue belongs
	// to the wedge, the ending hue to the next one.
	Method1 BoundaryPolicy = iota
	// Method2 treats a wedge as (start, end].
	Method2
)

func (p BoundaryPolicy) String() string {
	switch p {
	case Method1:
		return "Method1"
	case Method2:
		return "Method2"
	default:
		return "unknown"
	}
}

// VC is a vertex in the value-chroma plane (chroma first to match the
// chart axes: chroma runs along the page, value up it).
type VC struct {
	C, V float64
}

// Region is one named wedge block.
type Region struct {
	Name     string
	HueStart float64 // total hue on the 100-step circle
	HueEnd   float64 // may wrap past 100 back through 0
	Polygon  []VC
}

// hueInWedge is wrap-aware: a wedge covers (end-start) mod 100 hue units
// starting at HueStart.
func (r *Region) hueInWedge(h float64, policy BoundaryPolicy) bool {
	span := math.Mod(r.HueEnd-r.HueStart+100, 100)
	d := math.Mod(h-r.HueStart+100, 100)
	if policy == Method1 {
		return d < span // d == 0 (the start) is in, d == span (the end) is out
	}
	return d > 0 && d <= span
}

// Classifier answers descriptor lookups against an immutable region set.
type Classifier struct {
	regions []Region
	qt      *quadtree.QuadTree // region-polygon vertices for the gap fallback
}

// Default returns the process-wide classifier over the embedded table.
func Default() *Classifier {
	return defaultClassifier()
}

var defaultClassifier = sync.OnceValue(func() *Classifier {
	c, err := parse(regionData)
	if err != nil {
		panic(fmt.Sprintf("embedded region data: %v", err))
	}
	return c
})

func parse(data []byte) (*Classifier, error) {
	c := &Classifier{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		row := strings.TrimSpace(sc.Text())
		if line == 1 || row == "" {
			continue
		}
		parts := strings.Split(row, "|")
		if len(parts) != 4 {
			return nil, fmt.Errorf("line %d: want 4 fields, got %d", line, len(parts))
		}
		hs, err1 := strconv.ParseFloat(parts[1], 64)
		he, err2 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("line %d: bad hue bound", line)
		}
		var poly []VC
		for _, vtx := range strings.Split(parts[3], ";") {
			cv := strings.Split(vtx, ":")
			if len(cv) != 2 {
				return nil, fmt.Errorf("line %d: bad vertex %q", line, vtx)
			}
			cc, err1 := strconv.ParseFloat(cv[0], 64)
			vv, err2 := strconv.ParseFloat(cv[1], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: bad vertex %q", line, vtx)
			}
			poly = append(poly, VC{C: cc, V: vv})
		}
		if len(poly) < 3 {
			return nil, fmt.Errorf("line %d: polygon needs at least 3 vertices", line)
		}
		c.regions = append(c.regions, Region{Name: parts[0], HueStart: hs, HueEnd: he, Polygon: poly})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	c.buildFallbackIndex()
	return c, nil
}

// buildFallbackIndex stores the polygon vertices in a quadtree so the gap
// fallback can narrow the candidate regions before doing exact
// edge-distance tests. Adjacent regions share corners, and coincident
// points can never be separated by subdivision, so each distinct vertex is
// inserted exactly once carrying the list of regions that meet there.
func (c *Classifier) buildFallbackIndex() {
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(30, 5, nil),
		quadtree.NewPoint(35, 8, nil))
	c.qt = quadtree.New(aabb, 0, nil)
	byVertex := map[VC][]int{}
	for i := range c.regions {
		for _, v := range c.regions[i].Polygon {
			byVertex[v] = append(byVertex[v], i)
		}
	}
	verts := make([]VC, 0, len(byVertex))
	for v := range byVertex {
		verts = append(verts, v)
	}
	// fixed insertion order keeps the tree, and so every lookup,
	// deterministic
	sort.Slice(verts, func(a, b int) bool {
		if verts[a].C != verts[b].C {
			return verts[a].C < verts[b].C
		}
		return verts[a].V < verts[b].V
	})
	for _, v := range verts {
		c.qt.Insert(quadtree.NewPoint(v.C, v.V, byVertex[v]))
	}
}

// NumRegions reports the size of the loaded table.
func (c *Classifier) NumRegions() int { return len(c.regions) }

// Names lists the distinct descriptors in the table.
func (c *Classifier) Names() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range c.regions {
		if !seen[r.Name] {
			seen[r.Name] = true
			out = append(out, r.Name)
		}
	}
	return out
}
