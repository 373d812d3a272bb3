package renotation

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/munsell"
	"github.com/kovidgoyal/munsell/cie"
)

// There is no closed-form inverse of the renotation grid. Inversion is a
// bounded numeric search: value comes straight from luminance through the
// ASTM quintic, hue and chroma are solved in the chromaticity plane. The
// method sits behind an interface so an alternative convergence scheme can
// be swapped in without touching call sites.

// Inverter converts a chromaticity+luminance under Illuminant C into
// Munsell coordinates. The returned flag reports convergence: when false
// the color is the best estimate found and must not be treated as exact.
// Iteration is always bounded by maxIter; the call is deterministic for
// identical inputs.
type Inverter interface {
	Invert(t *Table, target cie.XYY, tol float64, maxIter int) (munsell.Color, bool, error)
}

// NewtonInverter is the default strategy: a damped Newton iteration in
// (hue, chroma) with a finite-difference Jacobian, seeded by a coarse scan
// of the grid.
type NewtonInverter struct{}

const neutralChromaticityEps = 5e-5

func (NewtonInverter) Invert(t *Table, target cie.XYY, tol float64, maxIter int) (munsell.Color, bool, error) {
	if target.WhitePoint != cie.IlluminantC {
		return munsell.Color{}, false, fmt.Errorf(
			"inverse renotation needs Illuminant C input, got %s: adapt first", target.WhitePoint)
	}
	if tol <= 0 || maxIter <= 0 {
		return munsell.Color{}, false, fmt.Errorf("invalid solver budget tol=%v maxIter=%d", tol, maxIter)
	}
	value := munsell.ValueOfLuminance(target.Lum)
	if math.Hypot(target.X-t.whiteX, target.Y-t.whiteY) < neutralChromaticityEps {
		return munsell.Neutral(value), true, nil
	}

	h, c := t.seed(target, value)
	bestH, bestC := h, c
	bestErr := math.Inf(1)

	residual := func(h, c float64) (ex, ey float64) {
		x, y := t.planeXY(h, value, c)
		return x - target.X, y - target.Y
	}

	const dh, dc = 0.05, 0.05
	for range maxIter {
		ex, ey := residual(h, c)
		errNow := math.Hypot(ex, ey)
		if errNow < bestErr {
			bestErr, bestH, bestC = errNow, h, c
		}
		if errNow < tol {
			return munsell.FromHue100(h, value, c), true, nil
		}
		// finite-difference Jacobian
		exh, eyh := residual(h+dh, c)
		exc, eyc := residual(h, c+dc)
		j00, j10 := (exh-ex)/dh, (eyh-ey)/dh
		j01, j11 := (exc-ex)/dc, (eyc-ey)/dc
		det := j00*j11 - j01*j10
		var stepH, stepC float64
		if math.Abs(det) < 1e-14 {
			// degenerate Jacobian: fall back to a gradient step
			gH := ex*j00 + ey*j10
			gC := ex*j01 + ey*j11
			n := math.Hypot(gH, gC)
			if n == 0 {
				break
			}
			stepH, stepC = gH/n*0.5, gC/n*0.2
		} else {
			stepH = (ex*j11 - ey*j01) / det
			stepC = (ey*j00 - ex*j10) / det
		}
		// damping keeps the iterate on the grid's scale
		h -= clamp(stepH, -5, 5)
		c -= clamp(stepC, -2, 2)
		for h < 0 {
			h += 100
		}
		for h >= 100 {
			h -= 100
		}
		c = clamp(c, 0.05, t.MaxChroma(h, value))
	}
	return munsell.FromHue100(bestH, value, bestC), false, nil
}

// seed scans the grid cells on the nearest integer value plane for the
// entry closest to the target chromaticity.
func (t *Table) seed(target cie.XYY, value float64) (h100, chroma float64) {
	v := int(math.Round(value))
	if v < 1 {
		v = 1
	}
	if v > 9 {
		v = 9
	}
	best := math.Inf(1)
	h100, chroma = 0, 2
	for hi := range hueSteps {
		for ci, p := range t.cells[hi][v] {
			d := math.Hypot(p.x-target.X, p.y-target.Y)
			if d < best {
				best = d
				h100 = hueStep * float64(hi)
				chroma = 2 * float64(ci+1)
			}
		}
	}
	return
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
