package renotation

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/munsell"
	"github.com/kovidgoyal/munsell/cie"
)

// Off-grid coordinates are resolved with Centore's two curve families:
// radials interpolate across chroma at fixed hue (linear between the even
// tabulated chromas, and between the neutral point and the first tabulated
// chroma below it), ovoids interpolate across hue at fixed chroma (linear
// in hue angle between the bracketing 2.5-step hues). Non-integer values
// interpolate linearly between the two bracketing integer-value planes.

// Renotate returns the chromaticity and luminance of a Munsell color under
// Illuminant C. Chroma beyond the grid limit around the requested
// coordinates is ErrOutOfGamut.
func (t *Table) Renotate(m munsell.Color) (cie.XYY, error) {
	if m.Value < 0 || m.Value > 10 || m.Chroma < 0 {
		return cie.XYY{}, fmt.Errorf("renotate %v: %w", m, munsell.ErrDomain)
	}
	lum := munsell.LuminanceOfValue(m.Value)
	if m.IsNeutral() {
		return cie.XYY{X: t.whiteX, Y: t.whiteY, Lum: lum, WhitePoint: cie.IlluminantC}, nil
	}
	h100 := m.Hue100()
	if m.Chroma > t.MaxChroma(h100, m.Value) {
		return cie.XYY{}, fmt.Errorf("%v: %w", m, ErrOutOfGamut)
	}
	x, y := t.planeXY(h100, m.Value, m.Chroma)
	return cie.XYY{X: x, Y: y, Lum: lum, WhitePoint: cie.IlluminantC}, nil
}

// planeXY interpolates chromaticity at arbitrary hue/value/chroma. Chroma
// is clamped to the grid limit, so this stays defined while the inverse
// solver wanders; Renotate applies the gamut check before calling.
func (t *Table) planeXY(h100, value, chroma float64) (x, y float64) {
	vlo, vhi := bracketValue(value)
	x0, y0 := t.ovoidXY(h100, vlo, chroma)
	if vhi == vlo {
		x, y = x0, y0
	} else {
		x1, y1 := t.ovoidXY(h100, vhi, chroma)
		f := value - float64(vlo)
		x = x0 + (x1-x0)*f
		y = y0 + (y1-y0)*f
	}
	// Beyond the tabulated planes the chromaticity converges on the
	// neutral point: ideal white at V=10, black at V=0.
	switch {
	case value > 9:
		f := value - 9
		x += (t.whiteX - x) * f
		y += (t.whiteY - y) * f
	case value < 1:
		f := 1 - value
		x += (t.whiteX - x) * f
		y += (t.whiteY - y) * f
	}
	return
}

// ovoidXY interpolates across hue at a fixed integer value plane.
func (t *Table) ovoidXY(h100 float64, v int, chroma float64) (x, y float64) {
	hlo, hhi, f := bracketHue(h100)
	x0, y0 := t.radialXY(hlo, v, chroma)
	if f == 0 {
		return x0, y0
	}
	x1, y1 := t.radialXY(hhi, v, chroma)
	return x0 + (x1-x0)*f, y0 + (y1-y0)*f
}

// radialXY interpolates across chroma at a fixed grid hue and value plane,
// clamping chroma to the cell's tabulated maximum.
func (t *Table) radialXY(hi, v int, chroma float64) (x, y float64) {
	cell := t.cells[hi][v]
	if chroma <= 0 {
		return t.whiteX, t.whiteY
	}
	cmax := 2 * float64(len(cell))
	if chroma >= cmax {
		p := cell[len(cell)-1]
		return p.x, p.y
	}
	if chroma <= 2 {
		f := chroma / 2
		return t.whiteX + (cell[0].x-t.whiteX)*f, t.whiteY + (cell[0].y-t.whiteY)*f
	}
	lo := int(chroma/2) - 1 // index of the even chroma at or below
	f := chroma/2 - math.Floor(chroma/2)
	if f == 0 {
		return cell[lo].x, cell[lo].y
	}
	a, b := cell[lo], cell[lo+1]
	return a.x + (b.x-a.x)*f, a.y + (b.y-a.y)*f
}
