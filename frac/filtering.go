// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import "github.com/cpmech/gosl/io"

// NotFiltered labels cracks not selected by the active filter
const NotFiltered = "notFiltered"

// FilterFn maps a crack to its filter group label. Predicates are pure
// re-labelings over the crack's current fields; the filter pass re-derives
// every label from scratch, so applying a predicate twice changes nothing.
// Orphaned cracks never reach the predicate: the pass pins them at
// NotFiltered first.
type FilterFn func(c *Crack) string

// GapFilter returns the default predicate selecting cracks whose gap is below
// (or above) the given threshold
func GapFilter(gap float64, below bool) FilterFn {
	return func(c *Crack) string {
		if below {
			if c.Gap < gap {
				return io.Sf("%s(gap < %g)", c.Label, gap)
			}
			return NotFiltered
		}
		if c.Gap > gap {
			return io.Sf("%s(gap > %g)", c.Label, gap)
		}
		return NotFiltered
	}
}

// ApplyFilter installs the default gap filter with the given threshold and
// direction and re-labels all cracks immediately
func (o *Monitor) ApplyFilter(gap float64, below bool) {
	o.FilterGap = gap
	o.FilterBelow = below
	o.filter = GapFilter(gap, below)
	o.runFilter()
}

// SetFilter installs a custom predicate in place of the default gap filter and
// re-labels all cracks immediately. A nil predicate restores the default.
func (o *Monitor) SetFilter(f FilterFn) {
	if f == nil {
		f = GapFilter(o.FilterGap, o.FilterBelow)
	}
	o.filter = f
	o.runFilter()
}

// runFilter re-labels every crack from the active predicate
func (o *Monitor) runFilter() {
	for _, c := range o.Cracks {
		if c.Orphan {
			c.FilterLabel = NotFiltered
			continue
		}
		c.FilterLabel = o.filter(c)
	}
}
