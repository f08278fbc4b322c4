// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izchip

import (
	"strconv"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// LogPrec is precision for saving float values in trace logs
const LogPrec = 4

// ConfigTraceTable configures a table for recording a per-tick trace of
// the chip, one row per tick.
func ConfigTraceTable(dt *etable.Table) {
	dt.SetMetaData("name", "ChipTrace")
	dt.SetMetaData("desc", "per-tick trace of chip inputs and outputs")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{"Tick", etensor.INT64, nil, nil},
		{"Stim", etensor.FLOAT64, nil, nil},
		{"Vm", etensor.FLOAT64, nil, nil},
		{"U", etensor.FLOAT64, nil, nil},
		{"VmOut", etensor.FLOAT64, nil, nil},
		{"Spike", etensor.FLOAT64, nil, nil},
		{"Ready", etensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, 0)
}

// RecordTick records the end-of-tick chip state to the given table row,
// growing the table as needed.  Vm and U are recorded as float mV from
// the internal fixed-point registers, alongside the encoded VmOut field
// actually visible on the output bus.
func RecordTick(dt *etable.Table, row int, ck *Chip, in Input, out Output) {
	if dt.Rows <= row {
		dt.SetNumRows(row + 1)
	}
	dt.SetCellFloat("Tick", row, float64(ck.Time.TickTot))
	dt.SetCellFloat("Stim", row, float64(in.Stim))
	dt.SetCellFloat("Vm", row, float64(ck.Neuron.Vm.Float32()))
	dt.SetCellFloat("U", row, float64(ck.Neuron.U.Float32()))
	dt.SetCellFloat("VmOut", row, float64(out.Vm))
	dt.SetCellFloat("Spike", row, boolFloat(out.Spike))
	dt.SetCellFloat("Ready", row, boolFloat(out.Ready))
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// TraceMemEst returns a human readable estimate of the memory required
// for a trace of the given number of ticks: 7 8-byte columns per row.
func TraceMemEst(ticks int) string {
	est := uint64(ticks) * 7 * 8
	return (datasize.ByteSize)(est).HumanReadable()
}
