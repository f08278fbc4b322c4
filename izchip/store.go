// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izchip

import (
	"github.com/goki/ki/kit"
)

// StoreBits is the number of serial bits in one complete load:
// the four config bytes a, b, c, d, each sent MSB first.
const StoreBits = 32

// LoadPhase is the state of the serial load interface.
type LoadPhase int

//go:generate stringer -type=LoadPhase

var KiT_LoadPhase = kit.Enums.AddEnum(LoadPhaseN, kit.NotBitFlag, nil)

func (ev LoadPhase) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *LoadPhase) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// PhaseIdle means the load mode line is low and the active set is
	// driving the dynamics.
	PhaseIdle LoadPhase = iota

	// PhaseLoading means the load mode line is high and serial bits are
	// being shifted into the shadow registers.
	PhaseLoading

	LoadPhaseN
)

// izchip.ParamStore is the double-buffered configuration store of the
// chip.  The Active set drives the dynamics at all times; a serial load
// fills the Shadow registers bit by bit and publishes them to Active
// in a single whole-set update when the load mode line falls.
// An interrupted or short load is discarded and the previous Active set
// stays in force.
type ParamStore struct {
	Active Params    `view:"inline" desc:"published configuration currently driving the dynamics -- replaced only as a whole"`
	Shadow [4]uint8  `desc:"shadow shift registers receiving serial bits during a load"`
	BitPos int       `inactive:"+" desc:"number of bits received in the current load, 0 to StoreBits -- extra bits are ignored"`
	Phase  LoadPhase `inactive:"+" desc:"current serial interface phase"`
	Ready  bool      `inactive:"+" desc:"true when Active holds a complete configuration -- low for the whole duration of a load"`
}

// Defaults restores the power-on state: regular spiking configuration
// published and ready, serial interface idle.
func (ps *ParamStore) Defaults() {
	ps.Active.Defaults()
	ps.Shadow = [4]uint8{}
	ps.BitPos = 0
	ps.Phase = PhaseIdle
	ps.Ready = true
}

// StepLoad advances the serial interface by one tick from the sampled
// load mode and serial bit lines.  The tick on which load mode rises
// arms the interface and shifts nothing; every further load mode tick
// shifts one bit; the tick on which load mode falls publishes the
// shadow set if exactly StoreBits bits arrived, and discards it
// otherwise.  Ready falls with the arming tick and rises again with
// the release tick.
func (ps *ParamStore) StepLoad(loadMode, serialBit bool) {
	switch {
	case loadMode && ps.Phase == PhaseIdle:
		ps.Phase = PhaseLoading
		ps.Ready = false
		ps.Shadow = [4]uint8{}
		ps.BitPos = 0
	case loadMode:
		ps.recvBit(serialBit)
	case ps.Phase == PhaseLoading:
		if ps.BitPos == StoreBits {
			ps.Active.SetBytes(ps.Shadow)
		}
		ps.Phase = PhaseIdle
		ps.Ready = true
	}
}

// recvBit shifts one serial bit into the shadow registers, MSB first
// within each byte, bytes in a, b, c, d order.
func (ps *ParamStore) recvBit(bit bool) {
	if ps.BitPos >= StoreBits {
		return
	}
	if bit {
		ps.Shadow[ps.BitPos/8] |= 1 << (7 - uint(ps.BitPos)%8)
	}
	ps.BitPos++
}
