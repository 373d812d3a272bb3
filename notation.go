package munsell

import (
	"fmt"
	"regexp"
	"strconv"
)

// Canonical notation is "{hue}{family} {value}/{chroma}" for chromatic
// colors and "N {value}" for achromatic ones, e.g. "5.4R 8.0/5.5" and
// "N 5.0". Longer family tokens must be tried before their one-letter
// prefixes so that "5YR" does not parse as 5Y + garbage.
var (
	chromaticRe = regexp.MustCompile(`^\s*([0-9]+(?:\.[0-9]+)?)(YR|GY|BG|PB|RP|R|Y|G|B|P)\s+([0-9]+(?:\.[0-9]+)?)\s*/\s*([0-9]+(?:\.[0-9]+)?)\s*$`)
	neutralRe   = regexp.MustCompile(`^\s*N\s+([0-9]+(?:\.[0-9]+)?)\s*$`)
)

// Parse parses canonical Munsell notation. Parse and String round-trip
// exactly for values carrying at most one decimal place.
func Parse(s string) (Color, error) {
	if m := neutralRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || v < 0 || v > 10 {
			return Color{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		return Neutral(v), nil
	}
	m := chromaticRe.FindStringSubmatch(s)
	if m == nil {
		return Color{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	hue, err1 := strconv.ParseFloat(m[1], 64)
	value, err2 := strconv.ParseFloat(m[3], 64)
	chroma, err3 := strconv.ParseFloat(m[4], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	fam, ok := FamilyByName[m[2]]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	c, err := New(fam, hue, value, chroma)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return c, nil
}

func (c Color) String() string {
	if c.IsNeutral() {
		return fmt.Sprintf("N %s", formatCoord(c.Value))
	}
	return fmt.Sprintf("%s%s %s/%s", formatCoord(c.Hue), c.Family, formatCoord(c.Value), formatCoord(c.Chroma))
}

// formatCoord prints with one decimal place, dropping a trailing ".0" is
// deliberately not done so that "8.0/5.5" style output matches the charts.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
