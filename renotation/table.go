// Package renotation holds the empirical grid relating Munsell
// hue/value/chroma to chromaticity under Illuminant C, interpolation for
// off-grid coordinates and the iterative numeric inverse. The grid is a
// compiled-in, versioned asset: loaded once, never mutated, safe for
// unrestricted concurrent reads.
package renotation

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/kovidgoyal/munsell"
	"github.com/kovidgoyal/munsell/cie"
)

//go:embed data/renotation.csv
var renotationData []byte

var ErrOutOfGamut = errors.New("chroma exceeds the tabulated limit for this hue and value")

const (
	hueSteps = 40  // 2.5 hue-unit spacing around the 100-step circle
	hueStep  = 2.5 // hue units between adjacent grid hues
)

type xy struct{ x, y float64 }

// Table is the renotation grid. cells[hi][v] lists chromaticities for even
// chromas 2,4,... at total hue 2.5*hi and integer value v; the slice
// length encodes the cell's maximum tabulated chroma.
type Table struct {
	cells  [hueSteps][10][]xy
	whiteX float64
	whiteY float64
}

// Default returns the process-wide table parsed from the embedded asset.
func Default() *Table {
	return defaultTable()
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := parse(renotationData)
	if err != nil {
		panic(fmt.Sprintf("embedded renotation data: %v", err))
	}
	return t
})

func parse(data []byte) (*Table, error) {
	t := &Table{}
	w, err := cie.IlluminantC.White()
	if err != nil {
		return nil, err
	}
	ws := w[0] + w[1] + w[2]
	t.whiteX, t.whiteY = w[0]/ws, w[1]/ws

	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		row := strings.TrimSpace(sc.Text())
		if line == 1 || row == "" {
			continue // header
		}
		parts := strings.Split(row, ",")
		if len(parts) != 5 {
			return nil, fmt.Errorf("line %d: want 5 fields, got %d", line, len(parts))
		}
		h100, err := parseHue(parts[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		v, err1 := strconv.Atoi(parts[1])
		c, err2 := strconv.Atoi(parts[2])
		x, err3 := strconv.ParseFloat(parts[3], 64)
		y, err4 := strconv.ParseFloat(parts[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return nil, fmt.Errorf("line %d: bad numeric field", line)
		}
		if v < 1 || v > 9 || c < 2 || c%2 != 0 {
			return nil, fmt.Errorf("line %d: coordinates off the grid (V=%d C=%d)", line, v, c)
		}
		hi := hueIndex(h100)
		ci := c/2 - 1
		cell := t.cells[hi][v]
		for len(cell) <= ci {
			cell = append(cell, xy{})
		}
		cell[ci] = xy{x, y}
		t.cells[hi][v] = cell
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for hi := range hueSteps {
		for v := 1; v <= 9; v++ {
			if len(t.cells[hi][v]) == 0 {
				return nil, fmt.Errorf("empty grid cell at hue index %d value %d", hi, v)
			}
		}
	}
	return t, nil
}

// parseHue reads renotation hue notation like "2.5R", "10GY" into a total
// hue on the 100-step circle ("10R" is the same grid hue as 0YR).
func parseHue(s string) (float64, error) {
	i := strings.IndexFunc(s, func(r rune) bool { return r != '.' && (r < '0' || r > '9') })
	if i <= 0 {
		return 0, fmt.Errorf("bad hue %q", s)
	}
	num, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, fmt.Errorf("bad hue %q", s)
	}
	fam, ok := munsell.FamilyByName[s[i:]]
	if !ok {
		return 0, fmt.Errorf("bad hue family %q", s[i:])
	}
	h := float64(fam)*10 + num
	for h >= 100 {
		h -= 100
	}
	return h, nil
}

func hueIndex(h100 float64) int {
	return int(h100/hueStep+0.5) % hueSteps
}

// MaxChroma returns the largest chroma covered by the grid around the
// given hue and value, the minimum over the bracketing cells. Value is
// clamped to the tabulated planes.
func (t *Table) MaxChroma(hue100, value float64) float64 {
	vlo, vhi := bracketValue(value)
	hlo, hhi, _ := bracketHue(hue100)
	m := t.cellMax(hlo, vlo)
	for _, c := range [3]float64{t.cellMax(hlo, vhi), t.cellMax(hhi, vlo), t.cellMax(hhi, vhi)} {
		if c < m {
			m = c
		}
	}
	return m
}

func (t *Table) cellMax(hi, v int) float64 {
	return 2 * float64(len(t.cells[hi][v]))
}

func bracketValue(v float64) (lo, hi int) {
	if v <= 1 {
		return 1, 1
	}
	if v >= 9 {
		return 9, 9
	}
	lo = int(v)
	hi = lo
	if float64(lo) < v {
		hi = lo + 1
	}
	return lo, hi
}

func bracketHue(h100 float64) (lo, hi int, t float64) {
	for h100 < 0 {
		h100 += 100
	}
	for h100 >= 100 {
		h100 -= 100
	}
	fi := h100 / hueStep
	lo = int(fi)
	t = fi - float64(lo)
	hi = (lo + 1) % hueSteps
	lo = lo % hueSteps
	return
}
