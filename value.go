package munsell

// ASTM D1535 quintic relating Munsell value to luminance. The raw
// polynomial is expressed against magnesium-oxide white; dividing by its
// own V=10 level renormalizes to a perfect diffuser so that V=10
// corresponds to Y=1.

func astmQuintic(v float64) float64 {
	return v * (1.1914 + v*(-0.22533+v*(0.23352+v*(-0.020484+v*0.00081939))))
}

var astmY10 = astmQuintic(10)

// LuminanceOfValue returns relative luminance Y in [0,1] for a Munsell
// value in [0,10].
func LuminanceOfValue(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 10 {
		return 1
	}
	return astmQuintic(v) / astmY10
}

// ValueOfLuminance inverts LuminanceOfValue by bisection. The quintic is
// strictly increasing on [0,10] so the search always converges.
func ValueOfLuminance(y float64) float64 {
	if y <= 0 {
		return 0
	}
	if y >= 1 {
		return 10
	}
	lo, hi := 0.0, 10.0
	for range 60 {
		mid := (lo + hi) / 2
		if LuminanceOfValue(mid) < y {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
