// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/armafrac
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" or "json"
	Ndim    int    `json:"ndim"`    // space dimension: 2 or 3
}

// MonData holds crack-monitor settings
type MonData struct {
	UpdateInterval  int     `json:"updateinterval"`  // steps between automatic geometry refreshes; 0 => default sentinel
	FilterGap       float64 `json:"filtergap"`       // gap threshold of the default filter
	FilterDirection string  `json:"filterdirection"` // "below" or "above"
}

// Below tells whether the default filter selects cracks with gap below the
// threshold
func (o MonData) Below() bool { return o.FilterDirection != "above" }

// Simulation holds all simulation input data
type Simulation struct {
	Data Data    `json:"data"` // global information
	Mon  MonData `json:"mon"`  // crack-monitor settings
}

// SetDefaults sets default values
func (o *Simulation) SetDefaults() {
	if o.Data.DirOut == "" {
		o.Data.DirOut = "/tmp/armafrac"
	}
	if o.Data.Encoder == "" {
		o.Data.Encoder = "gob"
	}
	if o.Data.Ndim == 0 {
		o.Data.Ndim = 3
	}
	if o.Mon.FilterDirection == "" {
		o.Mon.FilterDirection = "below"
	}
}

// Check checks input data
func (o *Simulation) Check() (err error) {
	if o.Data.Ndim != 2 && o.Data.Ndim != 3 {
		return chk.Err("ndim=%d is invalid; must be 2 or 3", o.Data.Ndim)
	}
	if o.Data.Encoder != "gob" && o.Data.Encoder != "json" {
		return chk.Err("encoder=%q is invalid; must be \"gob\" or \"json\"", o.Data.Encoder)
	}
	if o.Mon.FilterDirection != "below" && o.Mon.FilterDirection != "above" {
		return chk.Err("filterdirection=%q is invalid; must be \"below\" or \"above\"", o.Mon.FilterDirection)
	}
	if o.Mon.UpdateInterval < 0 {
		return chk.Err("updateinterval=%d is invalid; must be non-negative", o.Mon.UpdateInterval)
	}
	return
}

// ReadSim reads simulation input data from a (.sim) JSON file
//  Note: returns nil on errors
func ReadSim(simfilepath string) *Simulation {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		io.PfRed("sim: cannot read simulation file %q\n%v\n", simfilepath, err)
		return nil
	}

	// decode
	var sim Simulation
	err = json.Unmarshal(b, &sim)
	if err != nil {
		io.PfRed("sim: cannot unmarshal simulation file %q\n%v\n", simfilepath, err)
		return nil
	}

	// set defaults and check
	sim.SetDefaults()
	err = sim.Check()
	if err != nil {
		io.PfRed("sim: simulation file %q is invalid\n%v\n", simfilepath, err)
		return nil
	}
	return &sim
}
