// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izchip

import (
	"testing"
)

// runSeg runs ticks at a fixed stimulus and returns the spike count.
func runSeg(ck *Chip, stim uint8, ticks int) int {
	n := 0
	for t := 0; t < ticks; t++ {
		out := ck.Tick(Input{Stim: stim})
		if out.Spike {
			n++
		}
	}
	return n
}

// TestScenario runs the standard bring-up sequence for the chip:
// rest, subthreshold drive, two spiking drive levels, and return to rest.
func TestScenario(t *testing.T) {
	ck := NewChip()

	// at rest the output must hold near the -70 encoding with no spikes
	for i := 0; i < 20; i++ {
		out := ck.Tick(Input{})
		if out.Spike {
			t.Errorf("spike at rest, tick %v\n", i)
		}
		if out.Vm < 28 || out.Vm > 29 {
			t.Errorf("rest Vm out of range at tick %v: %v\n", i, out.Vm)
		}
		if !out.Ready {
			t.Errorf("Ready should be high at rest, tick %v\n", i)
		}
	}

	// subthreshold: membrane depolarizes but must not spike,
	// and must stay well below the spiking range
	for i := 0; i < 30; i++ {
		out := ck.Tick(Input{Stim: 3})
		if out.Spike {
			t.Errorf("spike at subthreshold stim, tick %v\n", i)
		}
		if out.Vm > 35 {
			t.Errorf("subthreshold Vm too high at tick %v: %v\n", i, out.Vm)
		}
	}
	if ck.Neuron.Vm.Float32() < -68 {
		t.Errorf("membrane did not depolarize under stim 3: %v\n", ck.Neuron.Vm.Float32())
	}

	// moderate drive spikes within the window
	if n := runSeg(ck, 7, 50); n < 1 {
		t.Errorf("stim 7 should spike within 50 ticks, got %v\n", n)
	}

	// firing must not slow down when the drive increases
	ck.Reset()
	c7 := runSeg(ck, 7, 200)
	ck.Reset()
	c15 := runSeg(ck, 15, 200)
	if c15 < c7 {
		t.Errorf("firing rate not monotone: stim 15: %v < stim 7: %v\n", c15, c7)
	}

	// removing the drive silences the chip: at most one spike already in
	// flight may still land, then nothing
	if n := runSeg(ck, 0, 25); n > 1 {
		t.Errorf("more than one spike after drive removed: %v\n", n)
	}
	if n := runSeg(ck, 0, 20); n != 0 {
		t.Errorf("chip not silent after drive removed: %v spikes\n", n)
	}
}

func TestFreezeDuringLoad(t *testing.T) {
	ck := NewChip()
	runSeg(ck, 7, 5)
	vm, u := ck.Neuron.Vm, ck.Neuron.U

	// strong stimulus with load mode on: membrane must hold exactly
	for i := 0; i < 40; i++ {
		out := ck.Tick(Input{Stim: 15, LoadMode: true})
		if out.Spike {
			t.Errorf("spike while frozen, tick %v\n", i)
		}
		if out.Ready {
			t.Errorf("Ready high during load, tick %v\n", i)
		}
		if ck.Neuron.Vm != vm || ck.Neuron.U != u {
			t.Errorf("membrane moved while frozen, tick %v\n", i)
		}
	}
	out := ck.Tick(Input{Stim: 15})
	if !out.Ready {
		t.Errorf("Ready should rise as soon as load mode falls\n")
	}
}

func TestLoadParams(t *testing.T) {
	ck := NewChip()
	fs := FastSpiking.ParamBytes()
	ck.LoadParams(fs)

	if ck.Store.Active.Bytes() != fs {
		t.Errorf("load err: got: %v, cor: %v\n", ck.Store.Active.Bytes(), fs)
	}
	if !ck.Store.Ready {
		t.Errorf("Ready should be high after load\n")
	}
	// arming tick + 32 bits + release tick
	if ck.Time.TickTot != StoreBits+2 {
		t.Errorf("load tick count err: got: %v, cor: %v\n", ck.Time.TickTot, StoreBits+2)
	}

	// fast spiking fires faster than regular spiking at the same drive
	cfs := runSeg(ck, 10, 300)
	ck.Reset()
	crs := runSeg(ck, 10, 300)
	if cfs < crs {
		t.Errorf("fast spiking not faster: fs: %v, rs: %v\n", cfs, crs)
	}
}

func TestDeterminism(t *testing.T) {
	ka := NewChip()
	kb := NewChip()
	stims := []uint8{0, 3, 7, 15, 7, 0}

	for _, st := range stims {
		for i := 0; i < 25; i++ {
			oa := ka.Tick(Input{Stim: st})
			ob := kb.Tick(Input{Stim: st})
			if oa != ob {
				t.Errorf("outputs diverged at stim %v tick %v\n", st, i)
			}
		}
	}
	if ka.Neuron != kb.Neuron {
		t.Errorf("membrane state diverged\n")
	}
}

func TestReset(t *testing.T) {
	ck := NewChip()
	ck.LoadParams(Chattering.ParamBytes())
	runSeg(ck, 15, 100)

	ck.Reset()
	if ck.Neuron.Vm.Int() != VmRest || ck.Neuron.U.Int() != URest {
		t.Errorf("membrane not at rest after reset: %v %v\n", ck.Neuron.Vm, ck.Neuron.U)
	}
	def := Params{}
	def.Defaults()
	if ck.Store.Active != def {
		t.Errorf("params not defaulted after reset: %v\n", ck.Store.Active.Bytes())
	}
	if !ck.Store.Ready {
		t.Errorf("Ready should be high after reset\n")
	}
	if ck.Time.TickTot != 0 {
		t.Errorf("tick counter not cleared: %v\n", ck.Time.TickTot)
	}
}

// TestMidLoadReset covers reset arriving in the middle of a serial load:
// the partial state must be abandoned and defaults restored.
func TestMidLoadReset(t *testing.T) {
	ck := NewChip()
	ck.Tick(Input{LoadMode: true})
	for i := 0; i < 10; i++ {
		ck.Tick(Input{LoadMode: true, SerialBit: true})
	}
	ck.Reset()
	if !ck.Store.Ready {
		t.Errorf("Ready should be high after mid-load reset\n")
	}
	if ck.Store.Phase != PhaseIdle || ck.Store.BitPos != 0 {
		t.Errorf("serial interface not idle after reset: %v %v\n", ck.Store.Phase, ck.Store.BitPos)
	}
	def := Params{}
	def.Defaults()
	if ck.Store.Active != def {
		t.Errorf("params not defaulted after mid-load reset\n")
	}
}

func BenchmarkTick(b *testing.B) {
	ck := NewChip()
	in := Input{Stim: 7}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ck.Tick(in)
	}
}
