package geom

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func cubeCorners(half float64) []Point3 {
	var pts []Point3
	for _, x := range []float64{-half, half} {
		for _, y := range []float64{-half, half} {
			for _, z := range []float64{-half, half} {
				pts = append(pts, Point3{x, y, z})
			}
		}
	}
	return pts
}

func TestOuterHullCube(t *testing.T) {
	pts := cubeCorners(1)
	// interior points must not survive as hull vertices
	pts = append(pts, Point3{0, 0, 0}, Point3{0.3, -0.2, 0.5})
	poly, err := OuterHull("cube", pts)
	require.NoError(t, err)
	require.Len(t, poly.Vertices, 8)
	require.Len(t, poly.Faces, 12) // 6 quads, triangulated

	require.True(t, poly.Contains(Point3{0, 0, 0}, 1e-9))
	require.True(t, poly.Contains(Point3{0.99, 0.99, 0.99}, 1e-9))
	require.False(t, poly.Contains(Point3{1.01, 0, 0}, 1e-9))
	require.False(t, poly.Contains(Point3{0, 0, -2}, 1e-9))
}

func TestOuterHullContainsItsInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pts := make([]Point3, 60)
	for i := range pts {
		pts[i] = Point3{rng.NormFloat64(), rng.NormFloat64() * 2, rng.NormFloat64() * 0.5}
	}
	poly, err := OuterHull("cloud", pts)
	require.NoError(t, err)
	for i, p := range pts {
		require.True(t, poly.Contains(p, 1e-7), "point %d", i)
	}
}

func TestHullVertexSelfContainment(t *testing.T) {
	poly, err := OuterHull("cube", cubeCorners(1))
	require.NoError(t, err)
	for _, v := range poly.Vertices {
		require.True(t, poly.Contains(v, 1e-9))
	}
}

func TestInsufficientData(t *testing.T) {
	testCases := []struct {
		name string
		pts  []Point3
	}{
		{"too_few", []Point3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}},
		{"coplanar", []Point3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0.5, 0.5, 0}}},
		{"collinear", []Point3{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}}},
		{"coincident", []Point3{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}, {1, 2, 3}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := OuterHull(tc.name, tc.pts)
			require.ErrorIs(t, err, ErrInsufficientData)
		})
	}
}

func TestInnerHullPeelsExactlyOneLayer(t *testing.T) {
	// cube corners form the outer layer; an octahedron plus center sits
	// strictly inside
	pts := cubeCorners(1)
	for _, d := range []Point3{{0.5, 0, 0}, {-0.5, 0, 0}, {0, 0.5, 0}, {0, -0.5, 0}, {0, 0, 0.5}, {0, 0, -0.5}} {
		pts = append(pts, d)
	}
	pts = append(pts, Point3{0, 0, 0})

	inner, err := InnerHull("peel", pts)
	require.NoError(t, err)
	require.Len(t, inner.Vertices, 6)
	require.Len(t, inner.Faces, 8)
	require.True(t, inner.Contains(Point3{0, 0, 0}, 1e-9))
	// cube corners are gone after the peel
	require.False(t, inner.Contains(Point3{0.9, 0.9, 0.9}, 1e-9))
}

func TestInnerHullInsufficientInterior(t *testing.T) {
	// every point is a vertex of the outer hull, so nothing is left
	_, err := InnerHull("empty", cubeCorners(1))
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestNewPolyhedronValidation(t *testing.T) {
	verts := []Point3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	_, err := NewPolyhedron("bad-index", verts, []Face{{0, 1, 2}, {0, 1, 9}, {0, 2, 3}, {1, 2, 3}})
	require.Error(t, err)
	_, err = NewPolyhedron("degenerate", verts, []Face{{0, 1, 2}, {0, 1, 1}, {0, 2, 3}, {1, 2, 3}})
	require.Error(t, err)
	_, err = NewPolyhedron("too-few", verts[:3], []Face{{0, 1, 2}})
	require.Error(t, err)
}

func TestFaceOrientationDoesNotMatter(t *testing.T) {
	verts := []Point3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	// windings deliberately inconsistent
	faces := []Face{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}}
	poly, err := NewPolyhedron("tetra", verts, faces)
	require.NoError(t, err)
	require.True(t, poly.Contains(Point3{0.1, 0.1, 0.1}, 1e-9))
	require.False(t, poly.Contains(Point3{1, 1, 1}, 1e-9))
}
