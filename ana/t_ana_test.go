// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_braz01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("braz01. diametral compression of a disc")

	var sol DiscDiametral
	sol.Init(dbf.Params{
		&dbf.P{N: "P", V: 100.0},
		&dbf.P{N: "D", V: 0.05},
		&dbf.P{N: "T", V: 0.02},
	})

	// uniform tension across the loaded diameter
	sx := 2.0 * 100.0 / (math.Pi * 0.05 * 0.02)
	io.Pforan("Sx = %v\n", sol.Sx())
	chk.Float64(tst, "Sx", 1e-12, sol.Sx(), sx)

	// compression at the centre is three times the tension
	chk.Float64(tst, "Sy(0)/Sx", 1e-12, sol.Sy(0)/sol.Sx(), -3.0)

	// symmetry about the centre
	chk.Float64(tst, "Sy(y) == Sy(-y)", 1e-12, sol.Sy(0.01), sol.Sy(-0.01))
}
