// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify synthetic tests
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// DiscDiametral implements the line-load solution for a disc compressed
// across a diameter (Brazilian / diametral-compression test)
//
//                  ↓ P
//               , - - ,
//           , '    |    ' ,
//         ,        |        ,
//        ,         |         ,
//       ,          |          ,
//       ,          + y=0      ,
//       ,          |          ,
//        ,         |         ,
//         ,        |        ,
//           ,      |     , '
//             ' - - -  '
//                  ↑ P
//
// On the loaded diameter the horizontal stress is a uniform tension
// 2P/(πDT) and the vertical stress is compressive, three times larger in
// magnitude at the centre.
type DiscDiametral struct {
	P float64 // applied load
	D float64 // disc diameter
	T float64 // disc thickness
}

// Init initialises this structure
func (o *DiscDiametral) Init(prms dbf.Params) {

	// default values
	o.P = 1.0
	o.D = 1.0
	o.T = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "P":
			o.P = p.V
		case "D":
			o.D = p.V
		case "T":
			o.T = p.V
		}
	}
}

// Sx returns the (uniform) tensile stress across the loaded diameter
func (o *DiscDiametral) Sx() float64 {
	return 2.0 * o.P / (math.Pi * o.D * o.T)
}

// Sy returns the vertical stress on the loaded diameter at distance y from
// the centre, -D/2 < y < D/2
func (o *DiscDiametral) Sy(y float64) float64 {
	r := o.D / 2.0
	return -(2.0 * o.P / (math.Pi * o.T)) * (1.0/(r-y) + 1.0/(r+y) - 1.0/o.D)
}
