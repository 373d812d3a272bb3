// Package convert wires the full pipeline together: device RGB through
// chromatic adaptation into the renotation inverse, and Munsell
// coordinates out to categorical names or back to RGB. A Converter is
// immutable after New and safe for unrestricted concurrent use; batch
// calls fan out across cores.
package convert

import (
	"github.com/kovidgoyal/munsell"
	"github.com/kovidgoyal/munsell/cie"
	"github.com/kovidgoyal/munsell/colorconv"
	"github.com/kovidgoyal/munsell/iscc"
	"github.com/kovidgoyal/munsell/overlay"
	"github.com/kovidgoyal/munsell/renotation"
)

// Options is the explicit configuration surface. The zero value selects
// Illuminant C, Bradford adaptation, Method1 wedge boundaries and the
// default solver budget.
type Options struct {
	// Illuminant assumed for XYZ inputs that carry no white point tag.
	// The renotation grid itself is defined under Illuminant C; inputs
	// under other illuminants are adapted.
	Illuminant cie.Illuminant
	Adaptation cie.AdaptationMethod
	Boundary   iscc.BoundaryPolicy
	// Solver budget for the inverse renotation.
	ConvergenceTolerance float64
	MaxIterations        int
	// Inverter overrides the numeric strategy; nil selects the damped
	// Newton solver.
	Inverter renotation.Inverter
}

const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 64
)

func (o *Options) withDefaults() {
	if o.Illuminant == cie.UnknownIlluminant {
		o.Illuminant = cie.IlluminantC
	}
	if o.ConvergenceTolerance <= 0 {
		o.ConvergenceTolerance = DefaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Inverter == nil {
		o.Inverter = renotation.NewtonInverter{}
	}
}

type Converter struct {
	opts     Options
	table    *renotation.Table
	classify *iscc.Classifier
	overlays *overlay.Index
}

// New builds a converter over the compiled-in renotation, region and
// overlay datasets.
func New(opts Options) *Converter {
	opts.withDefaults()
	return &Converter{
		opts:     opts,
		table:    renotation.Default(),
		classify: iscc.Default(),
		overlays: overlay.Default(),
	}
}

// XYZToMunsell adapts xyz to Illuminant C and runs the inverse
// renotation. An input with no white point tag is assumed to be under the
// configured Illuminant. The converged flag must be honored: a false value
// marks a best-effort estimate.
func (c *Converter) XYZToMunsell(xyz cie.XYZ) (m munsell.Color, converged bool, err error) {
	if xyz.WhitePoint == cie.UnknownIlluminant {
		xyz.WhitePoint = c.opts.Illuminant
	}
	adapted, err := cie.Adapt(xyz, cie.IlluminantC, c.opts.Adaptation)
	if err != nil {
		return munsell.Color{}, false, err
	}
	return c.opts.Inverter.Invert(c.table, adapted.ToXYY(), c.opts.ConvergenceTolerance, c.opts.MaxIterations)
}

// RGBToMunsell converts a device color to Munsell coordinates.
func (c *Converter) RGBToMunsell(rgb colorconv.RGB) (m munsell.Color, converged bool, err error) {
	xyz, err := colorconv.ToXYZ(rgb)
	if err != nil {
		return munsell.Color{}, false, err
	}
	return c.XYZToMunsell(xyz)
}

// MunsellToRGB runs the forward renotation and adapts out to the
// profile's reference white. The clipped flag reports gamut clipping on
// the device side; renotation.ErrOutOfGamut reports chroma beyond the
// Munsell envelope itself.
func (c *Converter) MunsellToRGB(m munsell.Color, profile colorconv.Profile) (rgb colorconv.RGB, clipped bool, err error) {
	xyy, err := c.table.Renotate(m)
	if err != nil {
		return colorconv.RGB{}, false, err
	}
	xyz, err := cie.Adapt(xyy.ToXYZ(), profile.ReferenceWhite(), c.opts.Adaptation)
	if err != nil {
		return colorconv.RGB{}, false, err
	}
	return colorconv.FromXYZ(xyz, profile)
}

// Classify returns the ISCC-NBS descriptor under the configured boundary
// policy.
func (c *Converter) Classify(m munsell.Color) string {
	return c.classify.Classify(m, c.opts.Boundary)
}

// Overlays returns every overlay polyhedron containing the color, sorted
// by name; empty and multi-name results are both ordinary.
func (c *Converter) Overlays(m munsell.Color) []string {
	return c.overlays.MatchingColor(m)
}

// Result is a full pipeline answer for one input color.
type Result struct {
	Munsell    munsell.Color
	Converged  bool
	Descriptor string
	Overlays   []string
	Err        error
}

func (c *Converter) name(rgb colorconv.RGB) Result {
	m, converged, err := c.RGBToMunsell(rgb)
	if err != nil {
		return Result{Err: err}
	}
	return Result{
		Munsell:    m,
		Converged:  converged,
		Descriptor: c.Classify(m),
		Overlays:   c.Overlays(m),
	}
}

// Name converts and classifies one device color.
func (c *Converter) Name(rgb colorconv.RGB) Result {
	return c.name(rgb)
}

// NameHex converts and classifies an sRGB "#RRGGBB" string.
func (c *Converter) NameHex(hex string) Result {
	rgb, err := colorconv.ParseHex(hex)
	if err != nil {
		return Result{Err: err}
	}
	return c.name(rgb)
}
