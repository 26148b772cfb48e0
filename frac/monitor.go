// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/jkfurtney/2021-ARMA-frac/dem"
	"github.com/jkfurtney/2021-ARMA-frac/inp"
)

// DefUpdateInterval is the default number of steps between automatic geometry
// refreshes. The sentinel effectively disables the automatic refresh, leaving
// the data to ForceUpdate calls, unless a smaller interval is configured.
const DefUpdateInterval = 1000000000

// hookName identifies this subsystem in the domain's hook registries
const hookName = "cracks"

// Monitor is the crack monitoring subsystem attached to one dem.Domain. It
// records a crack for every bond-break notification, keeps the per-kind
// failure counters, refreshes crack geometry on a step-gated schedule and
// maintains the filter labels. All methods run synchronously inside the host's
// step loop; the monitor never mutates particle or bond state.
type Monitor struct {

	// state
	Initialised    bool    // Init has been called
	Enabled        bool    // hooks are registered
	UpdateInterval int     // steps between automatic refreshes
	UpdateCounter  int     // steps since the last refresh; 0..UpdateInterval
	FilterGap      float64 // gap threshold of the default filter
	FilterBelow    bool    // default filter selects gap < threshold

	// records
	Counts Counts   // running counters
	Cracks []*Crack // the record store; append-only, cleared by Init only

	// access
	dom    *dem.Domain
	filter FilterFn
}

// NewMonitor returns a new monitor for the given domain. mon may be nil, in
// which case defaults apply. Call Init before use.
func NewMonitor(dom *dem.Domain, mon *inp.MonData) *Monitor {
	var o Monitor
	o.dom = dom
	o.UpdateInterval = DefUpdateInterval
	o.FilterBelow = true
	if mon != nil {
		if mon.UpdateInterval > 0 {
			o.UpdateInterval = mon.UpdateInterval
		}
		o.FilterGap = mon.FilterGap
		o.FilterBelow = mon.Below()
	}
	o.filter = GapFilter(o.FilterGap, o.FilterBelow)
	return &o
}

// lifecycle ///////////////////////////////////////////////////////////////////////////////////////

// Init clears the record store, zeroes all counters and enables monitoring.
// Idempotent: repeated calls simply reset and re-enable.
func (o *Monitor) Init() (err error) {
	if o.Enabled {
		err = o.Off()
		if err != nil {
			return
		}
	}
	o.Cracks = make([]*Crack, 0)
	o.Counts.Reset()
	o.UpdateCounter = 0
	o.Initialised = true
	return o.On()
}

// On enables monitoring: registers the bond-break and post-motion hooks and
// performs an immediate forced refresh. No-op when already on.
func (o *Monitor) On() (err error) {
	if !o.Initialised {
		return chk.Err("crack monitor is not initialised")
	}
	if o.Enabled {
		return
	}
	if o.UpdateInterval == 0 {
		o.UpdateInterval = DefUpdateInterval
	}
	if o.UpdateInterval < 1 {
		return chk.Err("updateinterval=%d is invalid; must be at least 1", o.UpdateInterval)
	}
	o.dom.RegisterBreak(hookName, o.OnBondBreak)
	o.dom.RegisterPostMotion(hookName, o.OnStepPostMotion)
	o.Enabled = true
	o.ForceUpdate()
	return
}

// Off disables monitoring by deregistering both hooks. No-op when already off.
func (o *Monitor) Off() (err error) {
	if !o.Initialised {
		return chk.Err("crack monitor is not initialised")
	}
	if !o.Enabled {
		return
	}
	o.dom.DeregisterBreak(hookName)
	o.dom.DeregisterPostMotion(hookName)
	o.Enabled = false
	return
}

// ingestion ///////////////////////////////////////////////////////////////////////////////////////

// OnBondBreak records a new crack for the broken bond at contact c. For
// flat-jointed contacts args holds {element index, failure mode}; for all
// other kinds it holds {failure mode}. Failure mode 1 is tensile.
func (o *Monitor) OnBondBreak(c *dem.Contact, args []int) (err error) {

	// failure mode and element index
	var tensile bool
	var elem int
	switch c.Kind {
	case dem.FlatJoint:
		if len(args) < 2 {
			return chk.Err("flat-joint break notification needs {element, mode}; got %v", args)
		}
		elem = args[0]
		if elem < 0 || elem >= len(c.Elems) {
			return chk.Err("flat-joint element index %d is out of range [0,%d)", elem, len(c.Elems))
		}
		tensile = args[1] == 1
	case dem.ContactBond, dem.ParallelBond, dem.SoftBond, dem.SmoothJoint:
		if len(args) < 1 {
			return chk.Err("break notification needs {mode}; got %v", args)
		}
		tensile = args[0] == 1
	default:
		return chk.Err("bond kind %d is not supported", c.Kind)
	}

	// classify and count
	label, err := CrackLabel(c.Kind, tensile)
	if err != nil {
		return
	}
	err = o.Counts.Incr(c.Kind, tensile)
	if err != nil {
		return
	}

	// new record; geometry resolved immediately
	ck := &Crack{
		Size:        o.crackSize(c, elem),
		Label:       label,
		Kind:        c.Kind,
		Contact:     c.Id,
		Elem:        elem,
		End1:        c.End1,
		End2:        c.End2,
		StepFormed:  o.dom.Step,
		X:           make([]float64, o.dom.Ndim),
		N:           make([]float64, o.dom.Ndim),
		FilterLabel: NotFiltered,
		Orphan:      true,
	}
	o.Resolve(ck)
	o.Cracks = append(o.Cracks, ck)
	return
}

// crackSize computes the (immutable) crack size from the bond geometry at
// break time
func (o *Monitor) crackSize(c *dem.Contact, elem int) float64 {
	switch c.Kind {
	case dem.ContactBond:
		// diameter of the smaller-radius end
		b1 := o.dom.FindBall(c.End1)
		if b1 == nil {
			chk.Panic("contact %d broke with invalid first end %d", c.Id, c.End1)
		}
		r := b1.R
		if c.End2.Kind == dem.BallBody {
			if b2 := o.dom.FindBall(c.End2.Id); b2 != nil {
				r = utl.Min(r, b2.R)
			}
		}
		return 2.0 * r
	case dem.FlatJoint:
		e := c.Elems[elem]
		if o.dom.Ndim == 2 {
			return e.L
		}
		return 2.0 * math.Sqrt(e.A/math.Pi) // equivalent-area diameter
	}
	// parallel/soft/smooth bonds: nominal bond radius
	return 2.0 * c.R
}

// scheduler ///////////////////////////////////////////////////////////////////////////////////////

// OnStepPostMotion advances the update counter; when the counter reaches
// UpdateInterval all cracks are re-resolved, the filter pass runs and the
// counter resets
func (o *Monitor) OnStepPostMotion() error {
	o.UpdateCounter++
	if o.UpdateCounter >= o.UpdateInterval {
		o.refresh()
	}
	return nil
}

// ForceUpdate runs a full refresh out of band, regardless of the counter.
// Used by test-stage drivers before report/save points.
func (o *Monitor) ForceUpdate() {
	o.UpdateCounter = o.UpdateInterval
	o.refresh()
}

// refresh re-resolves every crack, re-applies the filter and resets the
// update counter
func (o *Monitor) refresh() {
	for _, c := range o.Cracks {
		o.Resolve(c)
	}
	o.runFilter()
	o.UpdateCounter = 0
}

// reporting ///////////////////////////////////////////////////////////////////////////////////////

// ListData returns a human-readable dump of the aggregate and per-(kind,mode)
// counts, plus whether a full refresh is pending
func (o *Monitor) ListData() (l string) {
	l = "crack monitoring data\n"
	l += io.Sf("  total cracks = %d\n", o.Counts.All)
	l += io.Sf("  CB-tenFail = %d  CB-shearFail = %d\n", o.Counts.CBten, o.Counts.CBshear)
	l += io.Sf("  PB-tenFail = %d  PB-shearFail = %d\n", o.Counts.PBten, o.Counts.PBshear)
	l += io.Sf("  SB-tenFail = %d  SB-shearFail = %d\n", o.Counts.SBten, o.Counts.SBshear)
	l += io.Sf("  FJ-tenFail = %d  FJ-shearFail = %d\n", o.Counts.FJten, o.Counts.FJshear)
	l += io.Sf("  SJ-tenFail = %d  SJ-shearFail = %d\n", o.Counts.SJten, o.Counts.SJshear)
	l += io.Sf("  refresh pending = %v\n", o.UpdateCounter > 0)
	return
}

// CountOrphans returns the current number of orphaned cracks
func (o *Monitor) CountOrphans() (n int) {
	for _, c := range o.Cracks {
		if c.Orphan {
			n++
		}
	}
	return
}

// CountFiltered returns the current number of cracks selected by the filter
func (o *Monitor) CountFiltered() (n int) {
	for _, c := range o.Cracks {
		if c.FilterLabel != NotFiltered {
			n++
		}
	}
	return
}
