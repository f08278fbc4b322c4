// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izchip

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestTimeCounters(t *testing.T) {
	tm := Time{}
	tm.Defaults()
	if tm.TimePerTick != 0.001 {
		t.Errorf("TimePerTick default err: got: %v, cor: 0.001\n", tm.TimePerTick)
	}

	for i := 0; i < 3; i++ {
		tm.TickInc()
	}
	if tm.Tick != 3 || tm.TickTot != 3 {
		t.Errorf("tick count err: tick: %v, tot: %v, cor: 3, 3\n", tm.Tick, tm.TickTot)
	}
	if math32.Abs(tm.Time-0.003) > difTol {
		t.Errorf("sim time err: got: %v, cor: 0.003\n", tm.Time)
	}

	// a new segment resets the segment tick but keeps the totals
	tm.SegStart()
	if tm.Tick != 0 {
		t.Errorf("SegStart should reset Tick, got: %v\n", tm.Tick)
	}
	if tm.TickTot != 3 {
		t.Errorf("SegStart should keep TickTot, got: %v\n", tm.TickTot)
	}
	tm.TickInc()
	if tm.Tick != 1 || tm.TickTot != 4 {
		t.Errorf("tick count err after SegStart: tick: %v, tot: %v, cor: 1, 4\n", tm.Tick, tm.TickTot)
	}

	tm.Reset()
	if tm.Tick != 0 || tm.TickTot != 0 || tm.Time != 0 {
		t.Errorf("Reset err: tick: %v, tot: %v, time: %v\n", tm.Tick, tm.TickTot, tm.Time)
	}
	if tm.TimePerTick != 0.001 {
		t.Errorf("Reset should keep TimePerTick, got: %v\n", tm.TimePerTick)
	}
}
