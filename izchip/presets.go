// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izchip

import (
	"github.com/goki/ki/kit"
)

// NeuronType are the standard cortical neuron configurations from
// Izhikevich (2003), quantized to the chip's config byte encoding.
type NeuronType int

//go:generate stringer -type=NeuronType

var KiT_NeuronType = kit.Enums.AddEnum(NeuronTypeN, kit.NotBitFlag, nil)

func (ev NeuronType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *NeuronType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// RegularSpiking is the typical excitatory cortical pyramidal cell:
	// tonic firing with spike-frequency adaptation (a=.02, b=.2, c=-65,
	// d=8).  This is the power-on configuration of the chip.
	RegularSpiking NeuronType = iota

	// FastSpiking is the typical inhibitory interneuron: sustained
	// high-frequency firing with little adaptation (a=.1, b=.2, c=-65,
	// d=2).
	FastSpiking

	// Chattering fires rhythmic bursts of closely spaced spikes
	// (a=.02, b=.2, c=-50, d=2).
	Chattering

	// IntrinsicallyBursting fires an initial burst followed by single
	// spikes (a=.02, b=.2, c=-55, d=4).
	IntrinsicallyBursting

	// LowThreshold is the low-threshold spiking interneuron, with
	// stronger recovery coupling to Vm (a=.02, b=.25, c=-65, d=2).
	LowThreshold

	NeuronTypeN
)

// paramBytes holds the four config bytes per neuron type, in serial
// load order a, b, c, d.
var paramBytes = [NeuronTypeN][4]uint8{
	RegularSpiking:        {0x05, 0x33, 0x41, 0x08},
	FastSpiking:           {0x19, 0x33, 0x41, 0x02},
	Chattering:            {0x05, 0x33, 0x32, 0x02},
	IntrinsicallyBursting: {0x05, 0x33, 0x37, 0x04},
	LowThreshold:          {0x05, 0x40, 0x41, 0x02},
}

// ParamBytes returns the four config bytes for this neuron type, in
// serial load order a, b, c, d.
func (nt NeuronType) ParamBytes() [4]uint8 {
	if nt < 0 || nt >= NeuronTypeN {
		return paramBytes[RegularSpiking]
	}
	return paramBytes[nt]
}

// SetType sets the params to the given standard neuron type.
// This writes the config directly -- on the chip itself a new type can
// only arrive through the serial interface (see Chip.LoadType).
func (pr *Params) SetType(nt NeuronType) {
	pr.SetBytes(nt.ParamBytes())
}
