package overlay

import (
	"fmt"
	"testing"

	"github.com/kovidgoyal/munsell"
	"github.com/kovidgoyal/munsell/geom"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestDefaultNames(t *testing.T) {
	want := []string{
		"chartreuse", "indigo", "lavender", "maroon", "mauve", "periwinkle",
		"plum", "rust", "sage", "salmon", "teal", "turquoise",
	}
	require.Equal(t, want, Default().Names())
}

// The calibrated polyhedron must contain its own vertex centroid; for a
// convex body that point is always interior.
func TestPolyhedraContainTheirCentroid(t *testing.T) {
	ix := Default()
	for _, name := range ix.Names() {
		t.Run(name, func(t *testing.T) {
			poly := ix.Polyhedron(name)
			require.NotNil(t, poly)
			var cen geom.Point3
			for _, v := range poly.Vertices {
				cen = cen.Add(v)
			}
			cen = cen.Scale(1 / float64(len(poly.Vertices)))
			require.True(t, ix.Contains(name, cen))
		})
	}
}

func TestMatchingColor(t *testing.T) {
	ix := Default()
	testCases := []struct {
		hue100, value, chroma float64
		want                  []string
	}{
		// interior points of individual overlays
		{61.3825, 4.5794, 5.9506, []string{"teal"}},
		{8.2351, 7.0655, 6.8697, []string{"salmon"}},
		{83.1677, 7.3862, 3.6826, []string{"lavender"}},
		// far outside every cloud
		{3.8, 3.9, 12.5, nil},
		{25, 9.8, 1, nil},
	}
	for _, tc := range testCases {
		m := munsell.FromHue100(tc.hue100, tc.value, tc.chroma)
		require.Equal(t, tc.want, ix.MatchingColor(m), "%v", m)
	}
}

func TestUnknownOverlay(t *testing.T) {
	ix := Default()
	require.Nil(t, ix.Polyhedron("cerulean"))
	require.False(t, ix.Contains("cerulean", geom.Point3{}))
}

func TestNewFromSamplesInsufficientData(t *testing.T) {
	// a cloud whose peel leaves nothing behind
	_, err := NewFromSamples(map[string][]geom.Point3{
		"thin": {
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
		},
	})
	require.ErrorIs(t, err, geom.ErrInsufficientData)
}

func TestNewFromSamplesSortsNames(t *testing.T) {
	cloud := func(cx, cy, cz float64) []geom.Point3 {
		var pts []geom.Point3
		for _, dx := range []float64{-1, 0, 1} {
			for _, dy := range []float64{-1, 0, 1} {
				for _, dz := range []float64{-1, 0, 1} {
					pts = append(pts, geom.Point3{X: cx + dx, Y: cy + dy, Z: cz + dz})
				}
			}
		}
		return pts
	}
	ix, err := NewFromSamples(map[string][]geom.Point3{
		"zinc": cloud(5, 5, 5), "amber": cloud(0, 0, 0),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"amber", "zinc"}, ix.Names())
	require.Equal(t, []string{"amber"}, ix.Matching(geom.Point3{}))
}
