// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package izchip implements the behavioral model of the izchip silicon
spiking neuron at the clock-tick level.

The chip integrates the Izhikevich (2003) simple model equations:

	Vm += 0.04*Vm^2 + 5*Vm + 140 - U + I
	U  += a * (b*Vm - U)

with one Euler step per tick (1 tick = 1 simulated msec), in Q16.16
saturating fixed-point arithmetic (see the fix32 package).  The injected
current I is the stimulus input level scaled by the 3/4 mV per unit
input gain (StimFix).  When Vm crosses +30 mV the chip emits a one-tick
spike and resets Vm = -c, U += d.

The a, b, c, d neuron-type constants live in a double-buffered parameter
store: a shadow register set is filled one bit at a time over the serial
interface while the active set keeps driving the dynamics unchanged, and
the shadow contents are published to the active set in a single update
when the load completes.  The store signals its state on the Ready flag.

Chip is the top-level facade: Tick takes the per-tick Input signals
(stimulus level, load mode, serial bit) and returns the Output signals
(7-bit encoded membrane potential, spike bit, ready flag).
*/
package izchip
