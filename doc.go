/*
Package munsell provides value types for the Munsell color system: hue
family and hue number on the 100-step hue circle, value and chroma, the
canonical notation parser/serializer, the ASTM D1535 value function and the
mapping from Munsell coordinates to Cartesian space.

Conversion against device color spaces lives in the colorconv and cie
packages, the renotation grid and its iterative inverse in renotation, and
categorical naming in iscc and overlay. The convert package ties the
pipeline together.
*/
package munsell

import "fmt"

type MunsellVersion struct {
	Major, Minor, Patch uint
}

func (v MunsellVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var Version = MunsellVersion{1, 0, 0}
