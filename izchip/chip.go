// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izchip

// Input are the logical input signals of the chip, sampled once per tick.
type Input struct {
	Stim      uint8 `desc:"stimulus level: one unit injects 3/4 mV of depolarizing drive per tick -- see StimFix"`
	LoadMode  bool  `desc:"serial load mode select: freezes the dynamics and routes SerialBit into the parameter store"`
	SerialBit bool  `desc:"serial config data bit, sampled on every LoadMode tick after the arming tick"`
}

// Output are the logical output signals of the chip, valid at the end
// of each tick.
type Output struct {
	Vm    uint8 `desc:"7-bit encoded membrane potential -- see VmOut for the encoding"`
	Spike bool  `desc:"true only on a tick where the membrane crossed threshold and reset"`
	Ready bool  `desc:"parameter store ready flag -- low for the whole duration of a serial load"`
}

// izchip.Chip is the full behavioral model of the chip: the parameter
// store, the membrane state, and the tick counters.  Everything happens
// through Tick, one call per clock.
type Chip struct {
	Store  ParamStore `view:"inline" desc:"double-buffered configuration store with serial load interface"`
	Neuron Neuron     `view:"inline" desc:"membrane state registers"`
	Time   Time       `view:"inline" desc:"tick counters and simulated time"`
}

// NewChip returns a new Chip in the power-on state.
func NewChip() *Chip {
	ck := &Chip{}
	ck.Defaults()
	return ck
}

// Defaults sets the power-on state: regular spiking configuration
// published and ready, membrane at rest, counters at zero.
func (ck *Chip) Defaults() {
	ck.Store.Defaults()
	ck.Store.Active.InitActs(&ck.Neuron)
	ck.Time.Defaults()
	ck.Time.Reset()
}

// Reset is the hardware reset: identical to the power-on state.
// Any load in progress is abandoned.
func (ck *Chip) Reset() {
	ck.Defaults()
}

// Tick advances the chip by one clock: the store samples the serial
// lines first, then the membrane integrates one Euler step -- unless
// load mode is on or the store is not ready, in which case the membrane
// holds its state regardless of the stimulus.  The outputs reflect the
// end-of-tick state, so on a spike tick Vm already shows the reset
// potential.
func (ck *Chip) Tick(in Input) Output {
	ck.Store.StepLoad(in.LoadMode, in.SerialBit)
	var spike bool
	if !in.LoadMode && ck.Store.Ready {
		spike = ck.Store.Active.CycleNeuron(&ck.Neuron, StimFix(in.Stim))
	}
	ck.Time.TickInc()
	return Output{Vm: VmOut(ck.Neuron.Vm), Spike: spike, Ready: ck.Store.Ready}
}

// LoadParams clocks a complete configuration into the store through the
// serial interface: one arming tick, StoreBits data ticks MSB first in
// a, b, c, d byte order, and the release tick that publishes.  The
// stimulus is held at 0 throughout, and the membrane stays frozen until
// the release tick.
func (ck *Chip) LoadParams(b [4]uint8) {
	ck.Tick(Input{LoadMode: true})
	for i := 0; i < StoreBits; i++ {
		bit := b[i/8]&(1<<(7-uint(i)%8)) != 0
		ck.Tick(Input{LoadMode: true, SerialBit: bit})
	}
	ck.Tick(Input{})
}

// LoadType loads one of the standard neuron type configurations through
// the serial interface.
func (ck *Chip) LoadType(nt NeuronType) {
	ck.LoadParams(nt.ParamBytes())
}
