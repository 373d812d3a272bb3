// Package cie holds the shared colorimetric ground floor: CIE XYZ and xyY
// value types tagged with their reference illuminant, the standard
// illuminant white points, and von-Kries-family chromatic adaptation.
package cie

import "fmt"

// Illuminant identifies a standard illuminant. XYZ values are only
// comparable or adaptable when their illuminant is known; it is never
// silently assumed.
type Illuminant int

const (
	UnknownIlluminant Illuminant = iota
	IlluminantA
	IlluminantC
	IlluminantD50
	IlluminantD55
	IlluminantD65
	IlluminantD75
	IlluminantE
	IlluminantF2
	IlluminantF7
	IlluminantF11
)

var illuminantNames = map[Illuminant]string{
	IlluminantA:   "A",
	IlluminantC:   "C",
	IlluminantD50: "D50",
	IlluminantD55: "D55",
	IlluminantD65: "D65",
	IlluminantD75: "D75",
	IlluminantE:   "E",
	IlluminantF2:  "F2",
	IlluminantF7:  "F7",
	IlluminantF11: "F11",
}

var IlluminantByName = map[string]Illuminant{
	"A": IlluminantA, "C": IlluminantC, "D50": IlluminantD50,
	"D55": IlluminantD55, "D65": IlluminantD65, "D75": IlluminantD75,
	"E": IlluminantE, "F2": IlluminantF2, "F7": IlluminantF7, "F11": IlluminantF11,
}

func (i Illuminant) String() string {
	if s, ok := illuminantNames[i]; ok {
		return s
	}
	return "unknown"
}

// CIE 1931 2-degree observer white points, normalized to Y=1.
var whitePoints = map[Illuminant]Vec3{
	IlluminantA:   {1.09850, 1, 0.35585},
	IlluminantC:   {0.98074, 1, 1.18232},
	IlluminantD50: {0.96422, 1, 0.82521},
	IlluminantD55: {0.95682, 1, 0.92149},
	IlluminantD65: {0.95047, 1, 1.08883},
	IlluminantD75: {0.94972, 1, 1.22638},
	IlluminantE:   {1, 1, 1},
	IlluminantF2:  {0.99186, 1, 0.67393},
	IlluminantF7:  {0.95041, 1, 1.08747},
	IlluminantF11: {1.00962, 1, 0.64350},
}

// White returns the illuminant's white point in XYZ, Y normalized to 1.
func (i Illuminant) White() (Vec3, error) {
	w, ok := whitePoints[i]
	if !ok {
		return Vec3{}, fmt.Errorf("no white point for illuminant %d", int(i))
	}
	return w, nil
}

// XYZ is a CIE XYZ tristimulus value tagged with its illuminant.
type XYZ struct {
	X, Y, Z    float64
	WhitePoint Illuminant
}

func (x XYZ) Vec() Vec3 { return Vec3{x.X, x.Y, x.Z} }

// XYY is a chromaticity pair plus luminance, tagged with its illuminant.
type XYY struct {
	X, Y       float64 // chromaticity coordinates
	Lum        float64 // relative luminance, Y of XYZ
	WhitePoint Illuminant
}

// ToXYY projects XYZ onto the chromaticity plane. A pure-black input maps
// to the illuminant's own chromaticity so that downstream interpolation
// stays defined.
func (x XYZ) ToXYY() XYY {
	s := x.X + x.Y + x.Z
	if s == 0 {
		w, err := x.WhitePoint.White()
		if err != nil {
			w = Vec3{1, 1, 1}
		}
		ws := w[0] + w[1] + w[2]
		return XYY{X: w[0] / ws, Y: w[1] / ws, Lum: 0, WhitePoint: x.WhitePoint}
	}
	return XYY{X: x.X / s, Y: x.Y / s, Lum: x.Y, WhitePoint: x.WhitePoint}
}

// ToXYZ lifts xyY back to tristimulus space.
func (c XYY) ToXYZ() XYZ {
	if c.Y == 0 {
		return XYZ{WhitePoint: c.WhitePoint}
	}
	return XYZ{
		X:          c.X * c.Lum / c.Y,
		Y:          c.Lum,
		Z:          (1 - c.X - c.Y) * c.Lum / c.Y,
		WhitePoint: c.WhitePoint,
	}
}
