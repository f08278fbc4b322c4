// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package izchip is the overall repository for the behavioral model of the
izchip silicon spiking neuron, implemented in the Go language (golang).

The chip computes one Euler step of the Izhikevich (2003) simple spiking
neuron equations per clock tick, in saturating fixed-point arithmetic,
with a serially-loadable, double-buffered parameter store that allows the
neuron type to be reconfigured at run time without glitching the membrane
dynamics.

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* izchip: the core chip model: neuron parameters and membrane state, the
per-tick update equations, the bit-serial parameter loader, and the
tick-level chip facade with its input / output signals.

* fix32: the Q16.16 saturating fixed-point arithmetic that all of the
datapath math is expressed in, mirroring the widths and shift behavior
of the silicon.

* stims: stimulus protocol environments implementing the emergent env.Env
interface, for driving the chip through reproducible current-injection
sequences.

* examples: these actually compile into runnable programs.
examples/izneuron is the place to start: a single-neuron simulation with
parameter presets, membrane trace plotting, and spike statistics.
examples/fi plots the firing-rate vs. input-current curve of the chip
against a floating-point reference.
*/
package izchip
