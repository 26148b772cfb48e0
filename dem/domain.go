// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// BreakCb is called once for each bond-break notification. For flat-jointed
// contacts args holds {element index, failure mode}; for all other kinds it
// holds {failure mode}. Failure mode 1 means tensile; anything else is shear.
type BreakCb func(c *Contact, args []int) error

// StepCb is called once per step, after the motion-update phase
type StepCb func() error

// Domain holds the bodies and contacts of the host engine together with the
// step counter and the hook registries driving observers such as the crack
// monitor. All hook invocation is synchronous within the step loop: the
// bond-break notifications of a step are always dispatched before that step's
// post-motion hooks run.
type Domain struct {

	// configuration
	Ndim int // space dimension: 2 or 3
	Step int // current step index

	// entities
	balls    map[int]*Ball
	facets   map[int]*Facet
	contacts map[int]*Contact
	nextId   int // shared id counter; removal never frees an id

	// hooks
	breakCbs map[string]BreakCb
	stepCbs  map[string]StepCb
}

// NewDomain returns a new domain for 2D or 3D models
func NewDomain(ndim int) *Domain {
	if ndim != 2 && ndim != 3 {
		chk.Panic("ndim=%d is invalid; must be 2 or 3", ndim)
	}
	var o Domain
	o.Ndim = ndim
	o.balls = make(map[int]*Ball)
	o.facets = make(map[int]*Facet)
	o.contacts = make(map[int]*Contact)
	o.nextId = 1
	o.breakCbs = make(map[string]BreakCb)
	o.stepCbs = make(map[string]StepCb)
	return &o
}

// entities ////////////////////////////////////////////////////////////////////////////////////////

// AddBall adds a ball with centre x and radius r
func (o *Domain) AddBall(x []float64, r float64) *Ball {
	chk.IntAssert(len(x), o.Ndim)
	b := &Ball{Id: o.nextId, X: cloneVec(x), R: r}
	o.nextId++
	o.balls[b.Id] = b
	return b
}

// AddFacet adds a wall facet with the given vertices: 2 for a segment (2D) or
// 3 for a triangle (3D)
func (o *Domain) AddFacet(v [][]float64) *Facet {
	if len(v) < 2 || len(v) > 3 {
		chk.Panic("facet needs 2 or 3 vertices; got %d", len(v))
	}
	f := &Facet{Id: o.nextId}
	for _, vv := range v {
		chk.IntAssert(len(vv), o.Ndim)
		f.V = append(f.V, cloneVec(vv))
	}
	o.nextId++
	o.facets[f.Id] = f
	return f
}

// AddContact adds a bonded contact between ball end1 and body end2. The caller
// fills the geometric and bond-property fields afterwards.
func (o *Domain) AddContact(kind BondKind, end1 int, end2 BodyRef) *Contact {
	c := &Contact{
		Id:   o.nextId,
		Kind: kind,
		End1: end1,
		End2: end2,
		X:    make([]float64, o.Ndim),
		N:    make([]float64, o.Ndim),
	}
	o.nextId++
	o.contacts[c.Id] = c
	return c
}

// RemoveBall removes a ball, invalidating every handle to it permanently
func (o *Domain) RemoveBall(id int) { delete(o.balls, id) }

// RemoveFacet removes a facet, invalidating every handle to it permanently
func (o *Domain) RemoveFacet(id int) { delete(o.facets, id) }

// RemoveContact removes a contact, invalidating every handle to it permanently
func (o *Domain) RemoveContact(id int) { delete(o.contacts, id) }

// FindBall returns the ball with the given id, or nil if it has been removed
func (o *Domain) FindBall(id int) *Ball { return o.balls[id] }

// FindFacet returns the facet with the given id, or nil if it has been removed
func (o *Domain) FindFacet(id int) *Facet { return o.facets[id] }

// FindContact returns the contact with the given id, or nil if it has been
// removed
func (o *Domain) FindContact(id int) *Contact { return o.contacts[id] }

// hooks ///////////////////////////////////////////////////////////////////////////////////////////

// RegisterBreak registers a bond-break hook under name
func (o *Domain) RegisterBreak(name string, cb BreakCb) { o.breakCbs[name] = cb }

// DeregisterBreak removes the bond-break hook registered under name
func (o *Domain) DeregisterBreak(name string) { delete(o.breakCbs, name) }

// RegisterPostMotion registers a post-motion-phase hook under name
func (o *Domain) RegisterPostMotion(name string, cb StepCb) { o.stepCbs[name] = cb }

// DeregisterPostMotion removes the post-motion hook registered under name
func (o *Domain) DeregisterPostMotion(name string) { delete(o.stepCbs, name) }

// BreakBond dispatches a bond-break notification for contact c to all
// registered break hooks. See BreakCb for the meaning of args.
func (o *Domain) BreakBond(c *Contact, args []int) (err error) {
	for _, name := range sortedKeysB(o.breakCbs) {
		err = o.breakCbs[name](c, args)
		if err != nil {
			return
		}
	}
	return
}

// Run advances the simulation by nsteps steps, firing the post-motion hooks
// once per step
func (o *Domain) Run(nsteps int) (err error) {
	for i := 0; i < nsteps; i++ {
		o.Step++
		for _, name := range sortedKeysS(o.stepCbs) {
			err = o.stepCbs[name]()
			if err != nil {
				return
			}
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func sortedKeysB(m map[string]BreakCb) (keys []string) {
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

func sortedKeysS(m map[string]StepCb) (keys []string) {
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}
