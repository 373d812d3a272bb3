package convert

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kovidgoyal/munsell"
	"github.com/kovidgoyal/munsell/cie"
	"github.com/kovidgoyal/munsell/colorconv"
	"github.com/kovidgoyal/munsell/iscc"
	"github.com/kovidgoyal/munsell/renotation"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

var _ = fmt.Print

// The flagship regression: #BE0032 is "vivid red" no matter which cone
// matrix does the adaptation; the Munsell coordinates shift a little, the
// name does not.
func TestVividRedUnderEveryAdaptation(t *testing.T) {
	for _, method := range []cie.AdaptationMethod{cie.Bradford, cie.CAT02, cie.VonKries, cie.XYZScaling} {
		t.Run(method.String(), func(t *testing.T) {
			conv := New(Options{Adaptation: method})
			res := conv.NameHex("#BE0032")
			require.NoError(t, res.Err)
			require.True(t, res.Converged)
			require.Equal(t, "vivid red", res.Descriptor)
			require.InDelta(t, 3.8, res.Munsell.Hue100(), 0.4)
			require.InDelta(t, 3.93, res.Munsell.Value, 0.05)
			require.InDelta(t, 12.6, res.Munsell.Chroma, 0.5)
		})
	}
}

// #F4C2C2 stays in the pink family under both wedge-boundary policies.
func TestPinkUnderBothPolicies(t *testing.T) {
	for _, policy := range []iscc.BoundaryPolicy{iscc.Method1, iscc.Method2} {
		t.Run(policy.String(), func(t *testing.T) {
			conv := New(Options{Boundary: policy})
			res := conv.NameHex("#F4C2C2")
			require.NoError(t, res.Err)
			require.True(t, res.Converged)
			require.Equal(t, "light pink", res.Descriptor)
		})
	}
}

func TestGoldenPipeline(t *testing.T) {
	conv := New(Options{})
	testCases := []struct {
		hex        string
		descriptor string
		hue100     float64
		value      float64
		chroma     float64
	}{
		{"#BE0032", "vivid red", 3.804, 3.935, 12.546},
		{"#F4C2C2", "light pink", 2.792, 8.236, 3.307},
		{"#3A7BD5", "strong blue", 75.075, 5.086, 10.966},
		{"#808040", "moderate olive brown", 26.151, 5.118, 6.545},
	}
	for _, tc := range testCases {
		t.Run(tc.hex, func(t *testing.T) {
			res := conv.NameHex(tc.hex)
			require.NoError(t, res.Err)
			require.True(t, res.Converged)
			require.Equal(t, tc.descriptor, res.Descriptor)
			require.InDelta(t, tc.hue100, res.Munsell.Hue100(), 1e-2)
			require.InDelta(t, tc.value, res.Munsell.Value, 1e-2)
			require.InDelta(t, tc.chroma, res.Munsell.Chroma, 1e-2)
		})
	}
}

func TestNeutralPipeline(t *testing.T) {
	conv := New(Options{})
	res := conv.NameHex("#000000")
	require.NoError(t, res.Err)
	require.True(t, res.Converged)
	require.True(t, res.Munsell.IsNeutral())
	require.Equal(t, "black", res.Descriptor)

	res = conv.NameHex("#FFFFFF")
	require.NoError(t, res.Err)
	require.True(t, res.Munsell.IsNeutral())
	require.Equal(t, "white", res.Descriptor)
}

// A chromatic blue inside the Munsell solid but outside the sRGB gamut
// must come back clipped, never silently wrong.
func TestMunsellToRGBClipping(t *testing.T) {
	conv := New(Options{})
	m, err := munsell.Parse("5PB 3/12")
	require.NoError(t, err)
	rgb, clipped, err := conv.MunsellToRGB(m, colorconv.SRGB)
	require.NoError(t, err)
	require.True(t, clipped)
	require.Equal(t, 0.0, rgb.R)
	require.InDelta(t, 0.284, rgb.G, 0.01)
	require.InDelta(t, 0.635, rgb.B, 0.01)
}

func TestMunsellToRGBInGamut(t *testing.T) {
	conv := New(Options{})
	testCases := []struct {
		notation string
		r, g, b  float64
	}{
		{"5R 5/6", 0.69298, 0.39160, 0.37047},
		{"5Y 8/10", 0.83261, 0.79792, 0.37434},
	}
	for _, tc := range testCases {
		t.Run(tc.notation, func(t *testing.T) {
			m, err := munsell.Parse(tc.notation)
			require.NoError(t, err)
			rgb, clipped, err := conv.MunsellToRGB(m, colorconv.SRGB)
			require.NoError(t, err)
			require.False(t, clipped)
			require.InDelta(t, tc.r, rgb.R, 1e-4)
			require.InDelta(t, tc.g, rgb.G, 1e-4)
			require.InDelta(t, tc.b, rgb.B, 1e-4)
		})
	}
}

func TestRoundTripThroughMunsell(t *testing.T) {
	conv := New(Options{})
	for _, hex := range []string{"#BE0032", "#F4C2C2", "#3A7BD5"} {
		t.Run(hex, func(t *testing.T) {
			in, err := colorconv.ParseHex(hex)
			require.NoError(t, err)
			m, converged, err := conv.RGBToMunsell(in)
			require.NoError(t, err)
			require.True(t, converged)
			out, _, err := conv.MunsellToRGB(m, colorconv.SRGB)
			require.NoError(t, err)
			require.InDelta(t, in.R, out.R, 0.01)
			require.InDelta(t, in.G, out.G, 0.01)
			require.InDelta(t, in.B, out.B, 0.01)
		})
	}
}

func TestOutOfGamutMunsellIsAnError(t *testing.T) {
	conv := New(Options{})
	m := munsell.FromHue100(5, 5, 40)
	_, _, err := conv.MunsellToRGB(m, colorconv.SRGB)
	require.ErrorIs(t, err, renotation.ErrOutOfGamut)
}

func TestBadHexPropagates(t *testing.T) {
	res := New(Options{}).NameHex("#12345Z")
	require.ErrorIs(t, res.Err, colorconv.ErrParse)
}

// Batch answers are the individual answers, element for element.
func TestBatchMatchesIndividual(t *testing.T) {
	conv := New(Options{})
	var in []colorconv.RGB
	for _, hex := range []string{"#BE0032", "#F4C2C2", "#3A7BD5", "#808040", "#000000", "#FFFFFF", "#123456", "#ABCDEF"} {
		c, err := colorconv.ParseHex(hex)
		require.NoError(t, err)
		in = append(in, c)
	}
	got := conv.NameBatch(in)
	require.Len(t, got, len(in))
	for i, c := range in {
		want := conv.Name(c)
		require.Empty(t, cmp.Diff(want, got[i]), "slot %d", i)
	}

	gotM := conv.RGBToMunsellBatch(in)
	require.Len(t, gotM, len(in))
	for i, c := range in {
		m, converged, err := conv.RGBToMunsell(c)
		require.NoError(t, err)
		require.Equal(t, m, gotM[i].Munsell)
		require.Equal(t, converged, gotM[i].Converged)
		require.NoError(t, gotM[i].Err)
	}
}

// An untagged XYZ input is assumed to be under the configured illuminant.
func TestUntaggedXYZUsesConfiguredIlluminant(t *testing.T) {
	xyz, err := colorconv.ToXYZ(colorconv.RGB8(0xBE, 0, 0x32, colorconv.SRGB))
	require.NoError(t, err)

	conv := New(Options{Illuminant: cie.IlluminantD65})
	tagged, _, err := conv.XYZToMunsell(xyz)
	require.NoError(t, err)
	untagged := xyz
	untagged.WhitePoint = cie.UnknownIlluminant
	assumed, _, err := conv.XYZToMunsell(untagged)
	require.NoError(t, err)
	require.Equal(t, tagged, assumed)
}

// Every SVG named color goes through the whole pipeline without error and
// gets a descriptor. Convergence is not asserted: a handful of saturated
// screen colors sit at the edge of the renotation envelope.
func TestSVGNamesSmoke(t *testing.T) {
	conv := New(Options{})
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		res := conv.Name(colorconv.RGB8(c.R, c.G, c.B, colorconv.SRGB))
		require.NoError(t, res.Err, name)
		require.NotEmpty(t, res.Descriptor, name)
	}
}
