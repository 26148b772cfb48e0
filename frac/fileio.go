// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frac

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jkfurtney/2021-ARMA-frac/dem"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Encode encodes the complete monitor state: subsystem flags, settings,
// counters and the record store. The filter predicate itself is not encoded;
// it is re-derived from the saved threshold and direction on Decode.
func (o *Monitor) Encode(enc Encoder) (err error) {
	err = enc.Encode(o.Initialised)
	if err != nil {
		return chk.Err("cannot encode Monitor.Initialised\n%v", err)
	}
	err = enc.Encode(o.Enabled)
	if err != nil {
		return chk.Err("cannot encode Monitor.Enabled\n%v", err)
	}
	err = enc.Encode(o.UpdateInterval)
	if err != nil {
		return chk.Err("cannot encode Monitor.UpdateInterval\n%v", err)
	}
	err = enc.Encode(o.UpdateCounter)
	if err != nil {
		return chk.Err("cannot encode Monitor.UpdateCounter\n%v", err)
	}
	err = enc.Encode(o.FilterGap)
	if err != nil {
		return chk.Err("cannot encode Monitor.FilterGap\n%v", err)
	}
	err = enc.Encode(o.FilterBelow)
	if err != nil {
		return chk.Err("cannot encode Monitor.FilterBelow\n%v", err)
	}
	err = enc.Encode(o.Counts)
	if err != nil {
		return chk.Err("cannot encode Monitor.Counts\n%v", err)
	}
	err = enc.Encode(o.Cracks)
	if err != nil {
		return chk.Err("cannot encode Monitor.Cracks\n%v", err)
	}
	return
}

// Decode decodes the complete monitor state. The inverse of Encode.
func (o *Monitor) Decode(dec Decoder) (err error) {
	err = dec.Decode(&o.Initialised)
	if err != nil {
		return chk.Err("cannot decode Monitor.Initialised\n%v", err)
	}
	err = dec.Decode(&o.Enabled)
	if err != nil {
		return chk.Err("cannot decode Monitor.Enabled\n%v", err)
	}
	err = dec.Decode(&o.UpdateInterval)
	if err != nil {
		return chk.Err("cannot decode Monitor.UpdateInterval\n%v", err)
	}
	err = dec.Decode(&o.UpdateCounter)
	if err != nil {
		return chk.Err("cannot decode Monitor.UpdateCounter\n%v", err)
	}
	err = dec.Decode(&o.FilterGap)
	if err != nil {
		return chk.Err("cannot decode Monitor.FilterGap\n%v", err)
	}
	err = dec.Decode(&o.FilterBelow)
	if err != nil {
		return chk.Err("cannot decode Monitor.FilterBelow\n%v", err)
	}
	err = dec.Decode(&o.Counts)
	if err != nil {
		return chk.Err("cannot decode Monitor.Counts\n%v", err)
	}
	err = dec.Decode(&o.Cracks)
	if err != nil {
		return chk.Err("cannot decode Monitor.Cracks\n%v", err)
	}
	o.filter = GapFilter(o.FilterGap, o.FilterBelow)
	return
}

// Save saves the monitor state to a file in dir which name is set with fnkey
func (o *Monitor) Save(dir, fnkey, enctype string, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = o.Encode(enc)
	if err != nil {
		return
	}

	// save file
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return
	}
	fn := mon_path(dir, fnkey, enctype)
	return save_file(fn, &buf, verbose)
}

// ReadMonitor reads a monitor state saved with Save and re-attaches it to dom
func ReadMonitor(dom *dem.Domain, dir, fnkey, enctype string) (o *Monitor, err error) {

	// open file
	fn := mon_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() { fil.Close() }()

	// decode
	o = NewMonitor(dom, nil)
	dec := GetDecoder(fil, enctype)
	err = o.Decode(dec)
	if err != nil {
		return nil, err
	}

	// restored-as-enabled monitors must re-register their hooks
	if o.Enabled {
		dom.RegisterBreak(hookName, o.OnBondBreak)
		dom.RegisterPostMotion(hookName, o.OnStepPostMotion)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func mon_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_cracks.%s", fnkey, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() { err = fil.Close() }()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
