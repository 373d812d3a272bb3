package cie

import "errors"

type Vec3 [3]float64

type Mat3 [3][3]float64

func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Inverted returns the inverse via the adjugate. All matrices used in this
// module (cone-response and primaries matrices) are nonsingular.
func (m Mat3) Inverted() (ans Mat3, err error) {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if det == 0 {
		return ans, errors.New("matrix is singular and cannot be inverted")
	}
	invDet := 1 / det
	adj := Mat3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = invDet * adj[i][j]
		}
	}
	return
}

// MustInverted is for the fixed matrices compiled into this package.
func (m Mat3) MustInverted() Mat3 {
	inv, err := m.Inverted()
	if err != nil {
		panic(err)
	}
	return inv
}
