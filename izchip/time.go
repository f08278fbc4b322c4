// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izchip

// izchip.Time contains the timing state for running the chip model
type Time struct {
	Time        float32 `desc:"accumulated amount of time the chip has been running, in simulation-time (not real world time), in seconds"`
	Tick        int     `desc:"tick counter within the current stimulus segment -- one tick = one clock of the chip = one Euler step"`
	TickTot     int     `desc:"total tick count -- this increments continuously from whenever it was last reset -- typically this is number of milliseconds in simulation time"`
	TimePerTick float32 `def:"0.001" desc:"amount of time to increment per tick"`
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerTick = 0.001
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Tick = 0
	tm.TickTot = 0
	if tm.TimePerTick == 0 {
		tm.Defaults()
	}
}

// SegStart starts a new stimulus segment, resetting the segment tick
func (tm *Time) SegStart() {
	tm.Tick = 0
}

// TickInc increments at the tick level
func (tm *Time) TickInc() {
	tm.Tick++
	tm.TickTot++
	tm.Time += tm.TimePerTick
}
