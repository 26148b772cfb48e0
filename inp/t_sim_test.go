// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read full simulation file")

	sim := ReadSim("data/mon01.sim")
	if sim == nil {
		tst.Errorf("cannot read simulation file")
		return
	}
	io.Pforan("sim = %+v\n", sim)
	chk.String(tst, sim.Data.Encoder, "gob")
	chk.IntAssert(sim.Data.Ndim, 3)
	chk.IntAssert(sim.Mon.UpdateInterval, 100)
	chk.Float64(tst, "filtergap", 1e-15, sim.Mon.FilterGap, 0.05)
	if !sim.Mon.Below() {
		tst.Errorf("direction should be below")
		return
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. defaults and validation")

	sim := ReadSim("data/mon02.sim")
	if sim == nil {
		tst.Errorf("cannot read simulation file")
		return
	}
	chk.String(tst, sim.Data.DirOut, "/tmp/armafrac")
	chk.String(tst, sim.Data.Encoder, "gob")
	chk.IntAssert(sim.Data.Ndim, 2)
	chk.IntAssert(sim.Mon.UpdateInterval, 0) // 0 => monitor applies its sentinel
	if sim.Mon.Below() {
		tst.Errorf("direction should be above")
		return
	}

	// invalid values are rejected
	bad := Simulation{Data: Data{Ndim: 4, Encoder: "gob"}, Mon: MonData{FilterDirection: "below"}}
	if err := bad.Check(); err == nil {
		tst.Errorf("Check should have failed for ndim=4")
		return
	}
	bad = Simulation{Data: Data{Ndim: 3, Encoder: "xml"}, Mon: MonData{FilterDirection: "below"}}
	if err := bad.Check(); err == nil {
		tst.Errorf("Check should have failed for encoder=xml")
		return
	}
	bad = Simulation{Data: Data{Ndim: 3, Encoder: "gob"}, Mon: MonData{FilterDirection: "sideways"}}
	if err := bad.Check(); err == nil {
		tst.Errorf("Check should have failed for the filter direction")
		return
	}
	bad = Simulation{Data: Data{Ndim: 3, Encoder: "gob"}, Mon: MonData{FilterDirection: "below", UpdateInterval: -1}}
	if err := bad.Check(); err == nil {
		tst.Errorf("Check should have failed for a negative interval")
		return
	}

	// missing file
	if sim := ReadSim("data/does-not-exist.sim"); sim != nil {
		tst.Errorf("ReadSim should have returned nil")
		return
	}
}
