// Package overlay answers "which non-basic color names cover this point".
// Each name (lavender, teal, mauve, ...) is a convex polyhedron in Munsell
// Cartesian space, calibrated from an empirical sample cloud by taking the
// inner convex hull: the outer hull's vertices are treated as outliers,
// discarded in a single peel, and the hull of the remainder becomes the
// polyhedron. Overlays overlap freely; a point may match several names or
// none, and both are ordinary outcomes.
package overlay

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/kovidgoyal/munsell"
	"github.com/kovidgoyal/munsell/geom"
)

//go:embed data/overlays.csv
var overlayData []byte

// boundaryEps treats points this close to a face as contained.
const boundaryEps = 1e-9

// Index holds named convex polyhedra and answers point-membership queries.
// Immutable after construction.
type Index struct {
	polys []*geom.Polyhedron
}

// Default returns the process-wide index built from the embedded
// calibration clouds.
func Default() *Index {
	return defaultIndex()
}

var defaultIndex = sync.OnceValue(func() *Index {
	ix, err := parse(overlayData)
	if err != nil {
		panic(fmt.Sprintf("embedded overlay data: %v", err))
	}
	return ix
})

// NewFromSamples calibrates an index from raw sample clouds keyed by name.
// Clouds too small or too flat for the single-layer peel surface
// geom.ErrInsufficientData.
func NewFromSamples(clouds map[string][]geom.Point3) (*Index, error) {
	names := make([]string, 0, len(clouds))
	for name := range clouds {
		names = append(names, name)
	}
	sort.Strings(names)
	ix := &Index{}
	for _, name := range names {
		poly, err := geom.InnerHull(name, clouds[name])
		if err != nil {
			return nil, fmt.Errorf("overlay %q: %w", name, err)
		}
		ix.polys = append(ix.polys, poly)
	}
	return ix, nil
}

func parse(data []byte) (*Index, error) {
	clouds := map[string][]geom.Point3{}
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
		h, err1 := strconv.ParseFloat(parts[1], 64)
		v, err2 := strconv.ParseFloat(parts[2], 64)
		c, err3 := strconv.ParseFloat(parts[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("line %d: bad numeric field", line)
		}
		x, y, z := munsell.FromHue100(h, v, c).Cartesian()
		clouds[parts[0]] = append(clouds[parts[0]], geom.Point3{X: x, Y: y, Z: z})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewFromSamples(clouds)
}

// Names lists the overlay names in sorted order.
func (ix *Index) Names() []string {
	out := make([]string, len(ix.polys))
	for i, p := range ix.polys {
		out[i] = p.Name
	}
	return out
}

// Polyhedron returns the named polyhedron, or nil.
func (ix *Index) Polyhedron(name string) *geom.Polyhedron {
	for _, p := range ix.polys {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Contains tests a single named overlay.
func (ix *Index) Contains(name string, pt geom.Point3) bool {
	p := ix.Polyhedron(name)
	return p != nil && p.Contains(pt, boundaryEps)
}

// Matching returns every overlay containing the point, sorted by name. An
// empty result and a multi-name result are both expected: the overlays
// neither tile nor partition the space.
func (ix *Index) Matching(pt geom.Point3) []string {
	var out []string
	for _, p := range ix.polys {
		if p.Contains(pt, boundaryEps) {
			out = append(out, p.Name)
		}
	}
	return out
}

// MatchingColor is Matching for a Munsell color.
func (ix *Index) MatchingColor(m munsell.Color) []string {
	x, y, z := m.Cartesian()
	return ix.Matching(geom.Point3{X: x, Y: y, Z: z})
}
