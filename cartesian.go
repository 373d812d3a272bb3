package munsell

import "math"

// The hue circle is mapped to angles using the ASTM 100-step convention:
// one hue step is 3.6 degrees and angle zero sits at 0R (== 10RP). The
// alternative 40-step/9-degree convention is not used anywhere in this
// module.

// HueAngle returns the hue angle in radians for a total hue on the
// 100-step circle.
func HueAngle(hue100 float64) float64 {
	return hue100 * 3.6 * math.Pi / 180
}

// Cartesian maps the color to a point in Munsell cylindrical-to-Cartesian
// space: x = C*cos(theta), y = C*sin(theta), z = V. Neutral colors sit on
// the vertical axis.
func (c Color) Cartesian() (x, y, z float64) {
	if c.IsNeutral() {
		return 0, 0, c.Value
	}
	theta := HueAngle(c.Hue100())
	return c.Chroma * math.Cos(theta), c.Chroma * math.Sin(theta), c.Value
}
