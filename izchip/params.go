// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izchip

import (
	"fmt"

	"github.com/emer/izchip/fix32"
)

// izchip.Params holds one complete neuron-type configuration of the chip:
// the four raw config bytes in their hardware encoding, plus the derived
// fixed-point constants the datapath uses.  The active configuration is
// only ever replaced as a whole -- see ParamStore.
type Params struct {
	A uint8 `def:"5" desc:"recovery time scale as an unsigned Q0.8 fraction: U moves toward b*Vm by A/256 of the gap per tick -- 5 = 0.0195 for regular spiking"`
	B uint8 `def:"51" desc:"recovery sensitivity to Vm as an unsigned Q0.8 fraction: U tracks (B/256)*Vm -- 51 = 0.199 for regular spiking"`
	C uint8 `def:"65" desc:"magnitude of the negative post-spike reset potential in mV: a spike sets Vm = -C"`
	D uint8 `def:"8" desc:"post-spike recovery jump in mV: a spike adds D to U"`

	CFix fix32.Fix `inactive:"+" view:"-" json:"-" xml:"-" desc:"fixed-point reset potential -C -- updated from C"`
	DFix fix32.Fix `inactive:"+" view:"-" json:"-" xml:"-" desc:"fixed-point recovery jump +D -- updated from D"`
}

// Defaults sets the regular spiking (RS) configuration, which is also
// the hardware power-on state of the active parameter set.
func (pr *Params) Defaults() {
	pr.A = 0x05
	pr.B = 0x33
	pr.C = 0x41
	pr.D = 0x08
	pr.Update()
}

// Update must be called after any changes to parameters
func (pr *Params) Update() {
	pr.CFix = fix32.FromInt(-int(pr.C))
	pr.DFix = fix32.FromInt(int(pr.D))
}

// Bytes returns the four config bytes in serial load order: a, b, c, d.
func (pr *Params) Bytes() [4]uint8 {
	return [4]uint8{pr.A, pr.B, pr.C, pr.D}
}

// SetBytes sets all four config bytes in serial load order and updates
// the derived values.
func (pr *Params) SetBytes(b [4]uint8) {
	pr.A, pr.B, pr.C, pr.D = b[0], b[1], b[2], b[3]
	pr.Update()
}

// AFloat returns the recovery time scale as its fractional value A/256.
func (pr *Params) AFloat() float32 {
	return float32(pr.A) / 256
}

// BFloat returns the recovery sensitivity as its fractional value B/256.
func (pr *Params) BFloat() float32 {
	return float32(pr.B) / 256
}

// CFloat returns the post-spike reset potential in mV (negative).
func (pr *Params) CFloat() float32 {
	return -float32(pr.C)
}

// DFloat returns the post-spike recovery jump in mV.
func (pr *Params) DFloat() float32 {
	return float32(pr.D)
}

func (pr *Params) String() string {
	return fmt.Sprintf("a: %#02x (%g)  b: %#02x (%g)  c: %#02x (%g)  d: %#02x (%g)",
		pr.A, pr.AFloat(), pr.B, pr.BFloat(), pr.C, pr.CFloat(), pr.D, pr.DFloat())
}
