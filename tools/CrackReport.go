// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"github.com/cpmech/gosl/io"

	"github.com/jkfurtney/2021-ARMA-frac/dem"
	"github.com/jkfurtney/2021-ARMA-frac/frac"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	fnkey := io.ArgToString(0, "cracks")
	dir := io.ArgToString(1, "/tmp/armafrac")
	enctype := io.ArgToString(2, "gob")
	ndim := io.ArgToInt(3, 3)

	// read monitor state
	dom := dem.NewDomain(ndim)
	mon, err := frac.ReadMonitor(dom, dir, fnkey, enctype)
	if err != nil {
		io.PfRed("cannot read crack monitor state:\n%v\n", err)
		return
	}

	// report
	io.Pf("%s", mon.ListData())
	io.Pf("  orphans  = %d\n", mon.CountOrphans())
	io.Pf("  filtered = %d\n", mon.CountFiltered())
	for i, c := range mon.Cracks {
		io.Pf("%4d: %-14s size=%g gap=%g x=%v orphan=%v\n", i, c.Label, c.Size, c.Gap, c.X, c.Orphan)
	}
}
