// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jkfurtney/2021-ARMA-frac/dem"
)

// newFilterScene builds a 3D domain with three broken contact bonds whose
// current gaps are 0.02, 0.08 and 0.1
func newFilterScene(tst *testing.T) (dom *dem.Domain, mon *Monitor) {
	dom = dem.NewDomain(3)
	mon = NewMonitor(dom, nil)
	if err := mon.Init(); err != nil {
		tst.Fatalf("Init failed:\n%v", err)
	}
	for i, gap := range []float64{0.02, 0.08, 0.1} {
		x := 3.0 * float64(i)
		b1 := dom.AddBall([]float64{x, 0, 0}, 1.0)
		b2 := dom.AddBall([]float64{x + 2.0, 0, 0}, 1.0)
		c := dom.AddContact(dem.ContactBond, b1.Id, dem.BodyRef{Kind: dem.BallBody, Id: b2.Id})
		copy(c.X, []float64{x + 1.0, 0, 0})
		copy(c.N, []float64{1, 0, 0})
		c.Gap = gap
		if err := dom.BreakBond(c, []int{1}); err != nil {
			tst.Fatalf("BreakBond failed:\n%v", err)
		}
	}
	return
}

func Test_filter01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("filter01. gap threshold, both directions")

	_, mon := newFilterScene(tst)

	// below: only the 0.02 crack is selected
	mon.ApplyFilter(0.05, true)
	chk.String(tst, mon.Cracks[0].FilterLabel, "CB-tenFail(gap < 0.05)")
	chk.String(tst, mon.Cracks[1].FilterLabel, NotFiltered)
	chk.String(tst, mon.Cracks[2].FilterLabel, NotFiltered)
	chk.IntAssert(mon.CountFiltered(), 1)

	// idempotent: re-applying with the same parameters changes nothing
	mon.ApplyFilter(0.05, true)
	chk.String(tst, mon.Cracks[0].FilterLabel, "CB-tenFail(gap < 0.05)")
	chk.IntAssert(mon.CountFiltered(), 1)

	// above: the other two
	mon.ApplyFilter(0.05, false)
	chk.String(tst, mon.Cracks[0].FilterLabel, NotFiltered)
	chk.String(tst, mon.Cracks[1].FilterLabel, "CB-tenFail(gap > 0.05)")
	chk.String(tst, mon.Cracks[2].FilterLabel, "CB-tenFail(gap > 0.05)")
	chk.IntAssert(mon.CountFiltered(), 2)
}

func Test_filter02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("filter02. orphans are never selected")

	dom, mon := newFilterScene(tst)

	// orphan the first crack
	ck := mon.Cracks[0]
	dom.RemoveContact(ck.Contact)
	dom.RemoveBall(ck.End2.Id)
	mon.ForceUpdate()
	chk.IntAssert(mon.CountOrphans(), 1)

	// its gap (0.02) satisfies the predicate, but orphans stay unselected
	mon.ApplyFilter(0.05, true)
	chk.String(tst, ck.FilterLabel, NotFiltered)
	chk.IntAssert(mon.CountFiltered(), 0)

	// any threshold, any direction
	mon.ApplyFilter(1e30, true)
	chk.String(tst, ck.FilterLabel, NotFiltered)
	mon.ApplyFilter(-1e30, false)
	chk.String(tst, ck.FilterLabel, NotFiltered)

	// even an always-select custom predicate cannot reach an orphan
	mon.SetFilter(func(c *Crack) string { return c.Label })
	chk.String(tst, ck.FilterLabel, NotFiltered)
	chk.IntAssert(mon.CountFiltered(), 2)
	io.Pforan("labels = %q %q %q\n", mon.Cracks[0].FilterLabel, mon.Cracks[1].FilterLabel, mon.Cracks[2].FilterLabel)
}

func Test_filter03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("filter03. custom predicate hook")

	_, mon := newFilterScene(tst)

	// select by primary label only
	mon.SetFilter(func(c *Crack) string {
		if c.Label == "CB-tenFail" {
			return "CB-tenFail(custom)"
		}
		return NotFiltered
	})
	chk.IntAssert(mon.CountFiltered(), 3)
	chk.String(tst, mon.Cracks[1].FilterLabel, "CB-tenFail(custom)")

	// nil restores the default gap filter with the stored settings
	mon.FilterGap = 0.05
	mon.FilterBelow = true
	mon.SetFilter(nil)
	chk.IntAssert(mon.CountFiltered(), 1)
	chk.String(tst, mon.Cracks[0].FilterLabel, "CB-tenFail(gap < 0.05)")
}
