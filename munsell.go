package munsell

import (
	"errors"
	"fmt"
	"math"
)

// HueFamily is one of the ten canonical Munsell hue families.
type HueFamily int

// Hue families in hue-circle order.
const (
	R HueFamily = iota
	YR
	Y
	GY
	G
	BG
	B
	PB
	P
	RP
)

const NumHueFamilies = 10

var familyNames = [NumHueFamilies]string{"R", "YR", "Y", "GY", "G", "BG", "B", "PB", "P", "RP"}

var FamilyByName = map[string]HueFamily{
	"R": R, "YR": YR, "Y": Y, "GY": GY, "G": G,
	"BG": BG, "B": B, "PB": PB, "P": P, "RP": RP,
}

func (f HueFamily) String() string {
	if f < 0 || int(f) >= NumHueFamilies {
		return "?"
	}
	return familyNames[f]
}

// Next returns the family that follows f on the hue circle (10Y == 0GY).
func (f HueFamily) Next() HueFamily {
	return HueFamily((int(f) + 1) % NumHueFamilies)
}

var (
	ErrParse  = errors.New("invalid Munsell notation")
	ErrDomain = errors.New("Munsell coordinate out of domain")
)

// Color is an immutable Munsell color. For chromatic colors Hue is the hue
// number in [0,10) within Family; Chroma == 0 collapses to the achromatic
// "N" notation, in which case Family and Hue carry no meaning.
type Color struct {
	Family HueFamily
	Hue    float64
	Value  float64
	Chroma float64
}

// New builds a canonical Color. A hue number of exactly 10 is normalized to
// 0 of the next family in hue-circle order.
func New(family HueFamily, hue, value, chroma float64) (Color, error) {
	if family < 0 || int(family) >= NumHueFamilies {
		return Color{}, fmt.Errorf("%w: hue family %d", ErrDomain, int(family))
	}
	if hue < 0 || hue > 10 || math.IsNaN(hue) {
		return Color{}, fmt.Errorf("%w: hue number %v", ErrDomain, hue)
	}
	if value < 0 || value > 10 || math.IsNaN(value) {
		return Color{}, fmt.Errorf("%w: value %v", ErrDomain, value)
	}
	if chroma < 0 || math.IsNaN(chroma) {
		return Color{}, fmt.Errorf("%w: chroma %v", ErrDomain, chroma)
	}
	if hue == 10 {
		hue = 0
		family = family.Next()
	}
	if chroma == 0 {
		return Neutral(value), nil
	}
	return Color{Family: family, Hue: hue, Value: value, Chroma: chroma}, nil
}

// Neutral returns the achromatic color "N value".
func Neutral(value float64) Color {
	return Color{Family: R, Hue: 0, Value: value, Chroma: 0}
}

func (c Color) IsNeutral() bool { return c.Chroma == 0 }

// Hue100 returns the total hue on the ASTM D1535 100-step circle, in
// [0,100): 5R is 5, 5YR is 15, ..., 5RP is 95.
func (c Color) Hue100() float64 {
	return math.Mod(float64(c.Family)*10+c.Hue, 100)
}

// FromHue100 builds a Color from a total hue on the 100-step circle. The
// hue is wrapped into [0,100) first.
func FromHue100(hue100, value, chroma float64) Color {
	if chroma <= 0 {
		return Neutral(value)
	}
	h := math.Mod(hue100, 100)
	if h < 0 {
		h += 100
	}
	fam := HueFamily(int(h / 10))
	return Color{Family: fam, Hue: h - float64(fam)*10, Value: value, Chroma: chroma}
}
