// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stims provides stimulus protocol environments for driving the
izchip model: ordered sequences of constant-current segments, stepped
one chip tick at a time through the env.Env interface.
*/
package stims

import (
	"fmt"

	"github.com/emer/emergent/env"
	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
	"github.com/goki/mat32"
)

// Segment is one constant-current step of a stimulus protocol.
type Segment struct {
	Level uint8 `desc:"stimulus level held for this segment, in chip input units (one unit = 3/4 mV of drive per tick)"`
	Ticks int   `desc:"number of ticks to hold the level"`
}

// NoiseParams specifies optional per-tick noise added to the protocol
// stimulus level, for exercising the chip off the exact protocol values.
// Off by default -- the verification protocols never use it.
type NoiseParams struct {
	erand.RndParams
	On    bool       `desc:"whether to add noise to the stimulus level"`
	Range minmax.F32 `viewif:"On" desc:"clamp range for the noisy level -- bounded by the 8-bit stimulus input"`
}

func (np *NoiseParams) Defaults() {
	np.On = false
	np.Mean = 0
	np.Var = 1
	np.Dist = erand.Gaussian
	np.Range.Set(0, 255)
}

func (np *NoiseParams) Update() {
}

// StimEnv generates the stimulus input for the chip by stepping through
// an ordered protocol of constant-current segments, one tick per Step.
// The protocol wraps around at the end, incrementing the Run counter.
type StimEnv struct {
	Nm       string          `desc:"name of this environment"`
	Dsc      string          `desc:"description of this environment"`
	Protocol []Segment       `desc:"ordered stimulus segments to step through"`
	Noise    NoiseParams     `view:"inline" desc:"optional per-tick stimulus noise"`
	CurStim  env.CurPrvInt   `desc:"stimulus level on current and previous tick, after noise"`
	Stim     etensor.Float64 `view:"-" desc:"current stimulus as a 1D state tensor"`
	Run      env.Ctr         `view:"inline" desc:"number of times through the whole protocol"`
	Seg      env.Ctr         `view:"inline" desc:"segment index within protocol"`
	Tick     env.Ctr         `view:"inline" desc:"tick counter within segment"`
}

func (ev *StimEnv) Name() string { return ev.Nm }
func (ev *StimEnv) Desc() string { return ev.Dsc }

// StdProtocol sets the standard chip bring-up protocol: rest,
// subthreshold drive, two spiking drive levels, and return to rest.
func (ev *StimEnv) StdProtocol() {
	ev.Protocol = []Segment{{0, 20}, {3, 30}, {7, 50}, {15, 30}, {0, 20}}
}

func (ev *StimEnv) Validate() error {
	if len(ev.Protocol) == 0 {
		return fmt.Errorf("StimEnv: %v has no Protocol set", ev.Nm)
	}
	for i, sg := range ev.Protocol {
		if sg.Ticks <= 0 {
			return fmt.Errorf("StimEnv: %v segment %v has non-positive Ticks", ev.Nm, i)
		}
	}
	return nil
}

func (ev *StimEnv) Counters() []env.TimeScales {
	return []env.TimeScales{env.Run, env.Sequence, env.Tick}
}

func (ev *StimEnv) States() env.Elements {
	els := env.Elements{
		{"Stim", []int{1}, nil},
	}
	return els
}

func (ev *StimEnv) State(element string) etensor.Tensor {
	switch element {
	case "Stim":
		return &ev.Stim
	}
	return nil
}

func (ev *StimEnv) Actions() env.Elements {
	return nil
}

// String returns the current stimulus state as a string
func (ev *StimEnv) String() string {
	return fmt.Sprintf("S_%d_T_%d_%d", ev.Seg.Cur, ev.Tick.Cur, ev.CurStim.Cur)
}

func (ev *StimEnv) Init(run int) {
	ev.Run.Scale = env.Run
	ev.Seg.Scale = env.Sequence
	ev.Tick.Scale = env.Tick
	ev.Noise.Update()
	ev.Run.Init()
	ev.Seg.Init()
	ev.Tick.Init()
	ev.Run.Cur = run
	ev.Seg.Max = len(ev.Protocol)
	if len(ev.Protocol) > 0 {
		ev.Tick.Max = ev.Protocol[0].Ticks
	}
	ev.Tick.Cur = -1 // init state -- key so that first Step() = 0
	ev.Stim.SetShape([]int{1}, nil, nil)
	ev.CurStim.Cur = 0
	ev.CurStim.Prv = -1
}

func (ev *StimEnv) Step() bool {
	ev.Run.Same()
	ev.Seg.Same()
	if ev.Tick.Incr() {
		if ev.Seg.Incr() {
			ev.Run.Incr()
		}
		ev.Tick.Max = ev.Protocol[ev.Seg.Cur].Ticks
	}
	ev.setStim()
	return true
}

// setStim computes the stimulus for the current tick, applying noise
// if enabled.
func (ev *StimEnv) setStim() {
	lvl := float32(ev.Protocol[ev.Seg.Cur].Level)
	if ev.Noise.On {
		lvl = mat32.Round(ev.Noise.Range.ClipVal(lvl + float32(ev.Noise.Gen(-1))))
	}
	ev.CurStim.Set(int(lvl))
	ev.Stim.Set1D(0, float64(lvl))
}

// Level returns the stimulus level for the current tick, as fed to the
// chip stimulus input.
func (ev *StimEnv) Level() uint8 {
	return uint8(ev.CurStim.Cur)
}

func (ev *StimEnv) Action(element string, input etensor.Tensor) {
	// nop
}

func (ev *StimEnv) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Sequence:
		return ev.Seg.Query()
	case env.Tick:
		return ev.Tick.Query()
	}
	return -1, -1, false
}

// Compile-time check that implements Env interface
var _ env.Env = (*StimEnv)(nil)
