// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dem

import "math"

// small vector kernels. bodies and contacts carry at most 3 components, so
// these run on plain slices without any linear-algebra machinery

func vecDot(u, v []float64) (res float64) {
	for i := 0; i < len(u); i++ {
		res += u[i] * v[i]
	}
	return
}

func vecDist(u, v []float64) float64 {
	var res float64
	for i := 0; i < len(u); i++ {
		d := u[i] - v[i]
		res += d * d
	}
	return math.Sqrt(res)
}

func vecNewSub(u, v []float64) (res []float64) {
	res = make([]float64, len(u))
	for i := 0; i < len(u); i++ {
		res[i] = u[i] - v[i]
	}
	return
}

// nearestOnSegment returns the point on segment {a,b} closest to x
func nearestOnSegment(a, b, x []float64) (res []float64) {
	ab := vecNewSub(b, a)
	ax := vecNewSub(x, a)
	den := vecDot(ab, ab)
	t := 0.0
	if den > 0 {
		t = vecDot(ax, ab) / den
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	res = make([]float64, len(a))
	for i := 0; i < len(a); i++ {
		res[i] = a[i] + t*ab[i]
	}
	return
}

// nearestOnTriangle returns the point on triangle {a,b,c} closest to x.
// Region tests follow the standard barycentric decomposition.
func nearestOnTriangle(a, b, c, x []float64) (res []float64) {

	ab := vecNewSub(b, a)
	ac := vecNewSub(c, a)
	ax := vecNewSub(x, a)

	// vertex region a
	d1 := vecDot(ab, ax)
	d2 := vecDot(ac, ax)
	if d1 <= 0 && d2 <= 0 {
		return cloneVec(a)
	}

	// vertex region b
	bx := vecNewSub(x, b)
	d3 := vecDot(ab, bx)
	d4 := vecDot(ac, bx)
	if d3 >= 0 && d4 <= d3 {
		return cloneVec(b)
	}

	// edge region ab
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		t := d1 / (d1 - d3)
		return addScaled(a, ab, t)
	}

	// vertex region c
	cx := vecNewSub(x, c)
	d5 := vecDot(ab, cx)
	d6 := vecDot(ac, cx)
	if d6 >= 0 && d5 <= d6 {
		return cloneVec(c)
	}

	// edge region ac
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		t := d2 / (d2 - d6)
		return addScaled(a, ac, t)
	}

	// edge region bc
	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		t := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		bc := vecNewSub(c, b)
		return addScaled(b, bc, t)
	}

	// interior
	den := 1.0 / (va + vb + vc)
	v := vb * den
	w := vc * den
	res = make([]float64, len(a))
	for i := 0; i < len(a); i++ {
		res[i] = a[i] + v*ab[i] + w*ac[i]
	}
	return
}

func cloneVec(u []float64) (res []float64) {
	res = make([]float64, len(u))
	copy(res, u)
	return
}

func addScaled(u, v []float64, t float64) (res []float64) {
	res = make([]float64, len(u))
	for i := 0; i < len(u); i++ {
		res[i] = u[i] + t*v[i]
	}
	return
}
