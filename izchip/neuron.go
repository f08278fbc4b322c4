// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izchip

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/emer/izchip/fix32"
)

// izchip.Neuron holds the membrane state registers of the chip.
// Both variables are Q16.16 fixed-point mV, exactly as held in silicon.
// There is no persistent spike register: the spike is a transient output
// of the tick on which the threshold was crossed.
type Neuron struct {
	Vm fix32.Fix `desc:"membrane potential in fixed-point mV -- resets to VmRest"`
	U  fix32.Fix `desc:"recovery variable in fixed-point mV units -- tracks b*Vm and opposes depolarization -- resets to URest"`
}

// NeuronVars are the display / logging variable names, returned as
// float32 mV values by VarByName.
var NeuronVars = []string{"Vm", "U"}

var NeuronVarsMap map[string]int

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

func (nrn *Neuron) VarNames() []string {
	return NeuronVars
}

// NeuronVarIdxByName returns the index of the variable in the Neuron, or error
func NeuronVarIdxByName(varNm string) (int, error) {
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return -1, fmt.Errorf("Neuron VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable as float32 mV using index
// (0 = first variable in NeuronVars list)
func (nrn *Neuron) VarByIndex(idx int) float32 {
	switch idx {
	case 0:
		return nrn.Vm.Float32()
	case 1:
		return nrn.U.Float32()
	}
	return math32.NaN()
}

// VarByName returns variable as float32 mV by name, or error
func (nrn *Neuron) VarByName(varNm string) (float32, error) {
	i, err := NeuronVarIdxByName(varNm)
	if err != nil {
		return math32.NaN(), err
	}
	return nrn.VarByIndex(i), nil
}
