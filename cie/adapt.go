package cie

import (
	"fmt"
	"sync"
)

// AdaptationMethod selects the cone-response matrix used for von-Kries
// style chromatic adaptation. The methods differ only in this matrix.
type AdaptationMethod int

const (
	Bradford AdaptationMethod = iota
	CAT02
	VonKries
	XYZScaling
)

func (m AdaptationMethod) String() string {
	switch m {
	case Bradford:
		return "Bradford"
	case CAT02:
		return "CAT02"
	case VonKries:
		return "VonKries"
	case XYZScaling:
		return "XYZScaling"
	default:
		return "unknown"
	}
}

var bradfordM = Mat3{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

var cat02M = Mat3{
	{0.7328, 0.4296, -0.1624},
	{-0.7036, 1.6975, 0.0061},
	{0.0030, 0.0136, 0.9834},
}

// Hunt-Pointer-Estevez, D65 normalized.
var vonKriesM = Mat3{
	{0.40024, 0.70760, -0.08081},
	{-0.22630, 1.16532, 0.04570},
	{0, 0, 0.91822},
}

var identityM = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

type conePair struct {
	fwd, inv Mat3
}

var coneMatrices = sync.OnceValue(func() map[AdaptationMethod]conePair {
	return map[AdaptationMethod]conePair{
		Bradford:   {bradfordM, bradfordM.MustInverted()},
		CAT02:      {cat02M, cat02M.MustInverted()},
		VonKries:   {vonKriesM, vonKriesM.MustInverted()},
		XYZScaling: {identityM, identityM},
	}
})

// Adapt converts xyz from its tagged illuminant to the target illuminant:
// into cone-response space, per-channel scaling by the ratio of the two
// white points' cone responses, and back. Adapting to the same illuminant
// is the identity.
func Adapt(xyz XYZ, to Illuminant, method AdaptationMethod) (XYZ, error) {
	if xyz.WhitePoint == to {
		return xyz, nil
	}
	src, err := xyz.WhitePoint.White()
	if err != nil {
		return XYZ{}, fmt.Errorf("adapt source: %w", err)
	}
	dst, err := to.White()
	if err != nil {
		return XYZ{}, fmt.Errorf("adapt target: %w", err)
	}
	pair, ok := coneMatrices()[method]
	if !ok {
		return XYZ{}, fmt.Errorf("unknown adaptation method %d", int(method))
	}
	sc := pair.fwd.MulVec(src)
	dc := pair.fwd.MulVec(dst)
	c := pair.fwd.MulVec(xyz.Vec())
	for i := range 3 {
		c[i] *= dc[i] / sc[i]
	}
	out := pair.inv.MulVec(c)
	return XYZ{X: out[0], Y: out[1], Z: out[2], WhitePoint: to}, nil
}
