// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_fileio01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fileio01. gob round trip")

	dom, mon := newFilterScene(tst)
	mon.ApplyFilter(0.05, true)

	// orphan one crack so the flag round-trips too
	ck := mon.Cracks[2]
	dom.RemoveContact(ck.Contact)
	dom.RemoveBall(ck.End1)
	mon.ForceUpdate()

	err := mon.Save("/tmp/armafrac", "fileio01", "gob", chk.Verbose)
	if err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}

	mon2, err := ReadMonitor(dom, "/tmp/armafrac", "fileio01", "gob")
	if err != nil {
		tst.Errorf("ReadMonitor failed:\n%v", err)
		return
	}
	io.Pforan("restored = %+v\n", mon2.Counts)

	// state fields
	chk.IntAssert(mon2.UpdateInterval, mon.UpdateInterval)
	chk.IntAssert(mon2.UpdateCounter, mon.UpdateCounter)
	chk.Float64(tst, "filtergap", 0, mon2.FilterGap, mon.FilterGap)
	if mon2.FilterBelow != mon.FilterBelow {
		tst.Errorf("FilterBelow did not round-trip")
		return
	}
	if !mon2.Initialised || !mon2.Enabled {
		tst.Errorf("lifecycle flags did not round-trip")
		return
	}

	// counters and store
	chk.IntAssert(mon2.Counts.All, mon.Counts.All)
	chk.IntAssert(mon2.Counts.CBten, mon.Counts.CBten)
	chk.IntAssert(len(mon2.Cracks), len(mon.Cracks))
	chk.IntAssert(mon2.CountOrphans(), mon.CountOrphans())
	chk.IntAssert(mon2.CountFiltered(), mon.CountFiltered())
	for i, c := range mon.Cracks {
		c2 := mon2.Cracks[i]
		chk.String(tst, c2.Label, c.Label)
		chk.String(tst, c2.FilterLabel, c.FilterLabel)
		chk.Float64(tst, "size", 0, c2.Size, c.Size)
		chk.Float64(tst, "gap", 0, c2.Gap, c.Gap)
		chk.Array(tst, "x", 0, c2.X, c.X)
		chk.Array(tst, "n", 0, c2.N, c.N)
		chk.IntAssert(c2.StepFormed, c.StepFormed)
		if c2.Orphan != c.Orphan {
			tst.Errorf("crack %d orphan flag did not round-trip", i)
			return
		}
	}

	// the restored filter works without re-configuration
	mon2.SetFilter(nil)
	chk.IntAssert(mon2.CountFiltered(), mon.CountFiltered())
}

func Test_fileio02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fileio02. json round trip")

	dom, mon := newFilterScene(tst)
	err := mon.Save("/tmp/armafrac", "fileio02", "json", chk.Verbose)
	if err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	mon2, err := ReadMonitor(dom, "/tmp/armafrac", "fileio02", "json")
	if err != nil {
		tst.Errorf("ReadMonitor failed:\n%v", err)
		return
	}
	chk.IntAssert(mon2.Counts.All, 3)
	chk.IntAssert(len(mon2.Cracks), 3)
	chk.Float64(tst, "gap", 1e-15, mon2.Cracks[1].Gap, 0.08)
}
