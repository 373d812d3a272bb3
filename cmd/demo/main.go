package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kovidgoyal/munsell/colorconv"
	"github.com/kovidgoyal/munsell/convert"
	"golang.org/x/image/colornames"
)

var _ = fmt.Print

// Accepts "#RRGGBB" values or SVG color names and prints the Munsell
// notation, the ISCC-NBS descriptor and any overlay names.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/demo color [color...]   (hex like '#BE0032' or an SVG name like 'teal')")
		os.Exit(1)
	}
	conv := convert.New(convert.Options{})
	status := 0
	for _, arg := range os.Args[1:] {
		var res convert.Result
		if named, ok := colornames.Map[strings.ToLower(arg)]; ok {
			res = conv.Name(colorconv.RGB8(named.R, named.G, named.B, colorconv.SRGB))
		} else {
			res = conv.NameHex(arg)
		}
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, res.Err)
			status = 1
			continue
		}
		line := fmt.Sprintf("%-12s %-16s %s", arg, res.Munsell, res.Descriptor)
		if !res.Converged {
			line += " (approximate)"
		}
		if len(res.Overlays) > 0 {
			line += " [" + strings.Join(res.Overlays, ", ") + "]"
		}
		fmt.Println(line)
	}
	os.Exit(status)
}
