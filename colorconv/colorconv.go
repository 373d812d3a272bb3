package colorconv

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/kovidgoyal/munsell/cie"
)

// This package converts device RGB values under a small fixed set of
// profiles (sRGB, Adobe RGB, P3) into CIE XYZ and back. Each profile is a
// transfer function plus a 3x3 primaries matrix relative to its reference
// white (D65 for all three). Out-of-gamut results on the way back are
// clipped to [0,1] and the clipping is reported through a flag, never
// silently.

var (
	ErrParse          = errors.New("invalid RGB notation")
	ErrInvalidChannel = errors.New("channel outside the profile's declared range")
	ErrIlluminant     = errors.New("XYZ illuminant does not match the profile's reference white")
)

// Profile identifies an RGB working space.
type Profile int

const (
	SRGB Profile = iota
	AdobeRGB
	P3
)

func (p Profile) String() string {
	switch p {
	case SRGB:
		return "sRGB"
	case AdobeRGB:
		return "AdobeRGB"
	case P3:
		return "P3"
	default:
		return "unknown"
	}
}

var ProfileByName = map[string]Profile{
	"sRGB": SRGB, "srgb": SRGB,
	"AdobeRGB": AdobeRGB, "adobergb": AdobeRGB,
	"P3": P3, "p3": P3,
}

// transfer is a profile's opto-electronic transfer function pair operating
// on a single channel in [0,1] (encoded) / linear light.
type transfer struct {
	decode func(float64) float64 // encoded -> linear
	encode func(float64) float64 // linear -> encoded
}

// IEC 61966-2-1 piecewise curve.
var srgbTransfer = transfer{
	decode: func(c float64) float64 {
		if c <= 0.04045 {
			return c / 12.92
		}
		return math.Pow((c+0.055)/1.055, 2.4)
	},
	encode: func(c float64) float64 {
		if c <= 0 {
			return 0
		}
		if c <= 0.0031308 {
			return 12.92 * c
		}
		return 1.055*math.Pow(c, 1.0/2.4) - 0.055
	},
}

func gammaTransfer(g float64) transfer {
	return transfer{
		decode: func(c float64) float64 {
			if c <= 0 {
				return 0
			}
			return math.Pow(c, g)
		},
		encode: func(c float64) float64 {
			if c <= 0 {
				return 0
			}
			return math.Pow(c, 1/g)
		},
	}
}

type profileData struct {
	toXYZ   cie.Mat3 // linear RGB -> XYZ under the profile's white
	fromXYZ cie.Mat3
	tf      transfer
	white   cie.Illuminant
}

var srgbToXYZ = cie.Mat3{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

var adobeToXYZ = cie.Mat3{
	{0.5767309, 0.1855540, 0.1881852},
	{0.2973769, 0.6273491, 0.0752741},
	{0.0270343, 0.0706872, 0.9911085},
}

var p3ToXYZ = cie.Mat3{
	{0.4865709, 0.2656677, 0.1982173},
	{0.2289746, 0.6917385, 0.0792869},
	{0.0000000, 0.0451134, 1.0439444},
}

var profiles = sync.OnceValue(func() map[Profile]profileData {
	// Adobe RGB specifies gamma 563/256; P3 here uses a plain 2.2 power
	// curve with the Display P3 primaries.
	return map[Profile]profileData{
		SRGB:     {srgbToXYZ, srgbToXYZ.MustInverted(), srgbTransfer, cie.IlluminantD65},
		AdobeRGB: {adobeToXYZ, adobeToXYZ.MustInverted(), gammaTransfer(563.0 / 256.0), cie.IlluminantD65},
		P3:       {p3ToXYZ, p3ToXYZ.MustInverted(), gammaTransfer(2.2), cie.IlluminantD65},
	}
})

// ReferenceWhite returns the illuminant the profile's XYZ values are
// expressed under.
func (p Profile) ReferenceWhite() cie.Illuminant {
	return profiles()[p].white
}

// RGB is an encoded (gamma-compressed) color with channels in [0,1],
// tagged with its profile.
type RGB struct {
	R, G, B float64
	Profile Profile
}

// RGB8 builds an RGB from 8-bit channel values.
func RGB8(r, g, b uint8, p Profile) RGB {
	return RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255, p}
}

// ParseHex parses "#RRGGBB" (case-insensitive, leading '#' optional) as an
// sRGB color.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	var v [3]uint8
	for i := range 3 {
		b, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		v[i] = uint8(b)
	}
	return RGB8(v[0], v[1], v[2], SRGB), nil
}

// Hex renders the color as "#RRGGBB", rounding each channel to 8 bits.
func (c RGB) Hex() string {
	to8 := func(v float64) uint8 {
		return uint8(math.Round(max(0, min(1, v)) * 255))
	}
	return fmt.Sprintf("#%02X%02X%02X", to8(c.R), to8(c.G), to8(c.B))
}

// ToXYZ de-gammas each channel and applies the profile's primaries matrix.
// Channels outside [0,1] are a hard error: the caller handed a value
// outside the profile's declared input range.
func ToXYZ(c RGB) (cie.XYZ, error) {
	p := profiles()[c.Profile]
	for _, ch := range [3]float64{c.R, c.G, c.B} {
		if ch < 0 || ch > 1 || math.IsNaN(ch) {
			return cie.XYZ{}, fmt.Errorf("%w: %v under %s", ErrInvalidChannel, ch, c.Profile)
		}
	}
	lin := cie.Vec3{p.tf.decode(c.R), p.tf.decode(c.G), p.tf.decode(c.B)}
	out := p.toXYZ.MulVec(lin)
	return cie.XYZ{X: out[0], Y: out[1], Z: out[2], WhitePoint: p.white}, nil
}

// Excursions this small are rounding noise from the matrix arithmetic,
// not gamut violations; they are clamped without raising the clip flag.
const clipEps = 1e-12

// FromXYZ applies the inverse primaries matrix and re-gammas. If any
// linear channel falls outside [0,1] it is clipped and the clipped flag is
// set. The input must already be expressed under the profile's reference
// white; use cie.Adapt first when it is not.
func FromXYZ(xyz cie.XYZ, profile Profile) (c RGB, clipped bool, err error) {
	p := profiles()[profile]
	if xyz.WhitePoint != p.white {
		return RGB{}, false, fmt.Errorf("%w: got %s, %s wants %s",
			ErrIlluminant, xyz.WhitePoint, profile, p.white)
	}
	lin := p.fromXYZ.MulVec(xyz.Vec())
	for i := range 3 {
		switch {
		case lin[i] < -clipEps:
			lin[i], clipped = 0, true
		case lin[i] < 0:
			lin[i] = 0
		case lin[i] > 1+clipEps:
			lin[i], clipped = 1, true
		case lin[i] > 1:
			lin[i] = 1
		}
	}
	c = RGB{p.tf.encode(lin[0]), p.tf.encode(lin[1]), p.tf.encode(lin[2]), profile}
	return c, clipped, nil
}
