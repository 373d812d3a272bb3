package convert

import (
	"github.com/kovidgoyal/go-parallel"
	"github.com/kovidgoyal/munsell"
	"github.com/kovidgoyal/munsell/colorconv"
)

// Batch conversion is embarrassingly parallel: every element is
// independent, all shared state is immutable, and no ordering is promised
// between elements beyond slot i of the output answering slot i of the
// input.

// NameBatch runs the full pipeline over a slice of device colors.
func (c *Converter) NameBatch(in []colorconv.RGB) []Result {
	out := make([]Result, len(in))
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			out[i] = c.name(in[i])
		}
	}
	parallel.Run_in_parallel_over_range(0, f, 0, len(in))
	return out
}

// MunsellResult pairs a converted color with its convergence flag.
type MunsellResult struct {
	Munsell   munsell.Color
	Converged bool
	Err       error
}

// RGBToMunsellBatch converts a slice of device colors.
func (c *Converter) RGBToMunsellBatch(in []colorconv.RGB) []MunsellResult {
	out := make([]MunsellResult, len(in))
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			m, converged, err := c.RGBToMunsell(in[i])
			out[i] = MunsellResult{Munsell: m, Converged: converged, Err: err}
		}
	}
	parallel.Run_in_parallel_over_range(0, f, 0, len(in))
	return out
}
