// This file is part of Gopher6809.
//
// Gopher6809 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6809 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6809.  If not, see <https://www.gnu.org/licenses/>.

package pia_test

import (
	"testing"

	"github.com/jetsetilly/gopher6809/curated"
	"github.com/jetsetilly/gopher6809/hardware/pia"
	"github.com/jetsetilly/gopher6809/test"
)

type recorder struct {
	values []uint8
	sides  []pia.Side
}

func (r *recorder) OutputChanged(side pia.Side, value uint8) {
	r.values = append(r.values, value)
	r.sides = append(r.sides, side)
}

type controlRecorder struct {
	levels []bool
}

func (r *controlRecorder) ControlChanged(_ pia.Side, level bool) {
	r.levels = append(r.levels, level)
}

// select the data register of side. all lines are inputs with edge detection
// as specified.
func selectData(p *pia.PIA, s pia.Side, cr uint8) {
	p.WriteRegister(s, pia.ControlRegister, cr|0x04)
}

func TestDirectionAndData(t *testing.T) {
	p := pia.NewPIA("test")

	// direction register is selected after reset
	p.WriteRegister(pia.SideA, pia.DataRegister, 0x0f)
	test.ExpectEquality(t, p.ReadRegister(pia.SideA, pia.DataRegister), 0x0f)

	selectData(p, pia.SideA, 0x00)
	p.WriteRegister(pia.SideA, pia.DataRegister, 0xff)

	// only output bits are driven by the CPU
	test.ExpectEquality(t, p.ReadRegister(pia.SideA, pia.DataRegister), 0x0f)
	test.ExpectEquality(t, p.Output(pia.SideA), 0x0f)

	// injected inputs only affect the input bits
	p.InjectInput(pia.SideA, 0xa0, 0xff)
	test.ExpectEquality(t, p.ReadRegister(pia.SideA, pia.DataRegister), 0xaf)
	p.InjectInput(pia.SideA, 0x00, 0x80)
	test.ExpectEquality(t, p.ReadRegister(pia.SideA, pia.DataRegister), 0x2f)

	// side B is unaffected
	test.ExpectEquality(t, p.ReadRegister(pia.SideB, pia.DataRegister), 0x00)
}

func TestControlRegisterFlagsReadOnly(t *testing.T) {
	p := pia.NewPIA("test")
	selectData(p, pia.SideB, 0x01)
	p.InjectEdge(pia.SideB, pia.C1, true)
	p.InjectEdge(pia.SideB, pia.C1, false)
	test.ExpectEquality(t, p.ReadRegister(pia.SideB, pia.ControlRegister), 0x85)

	// writing the control register cannot clear or set the flags
	p.WriteRegister(pia.SideB, pia.ControlRegister, 0x45)
	test.ExpectEquality(t, p.ReadRegister(pia.SideB, pia.ControlRegister), 0x85)

	// reading the data register acknowledges the interrupt
	p.ReadRegister(pia.SideB, pia.DataRegister)
	test.ExpectEquality(t, p.ReadRegister(pia.SideB, pia.ControlRegister), 0x05)
}

func TestRisingEdge(t *testing.T) {
	p := pia.NewPIA("test")

	// c1 enabled, low-to-high
	selectData(p, pia.SideA, 0x03)

	p.InjectEdge(pia.SideA, pia.C1, true)
	test.ExpectSuccess(t, p.InterruptPending())
	p.ReadRegister(pia.SideA, pia.DataRegister)
	test.ExpectFailure(t, p.InterruptPending())

	// sustained high does not set the flag again
	p.InjectEdge(pia.SideA, pia.C1, true)
	test.ExpectFailure(t, p.InterruptPending())

	// falling edge does not set the flag
	p.InjectEdge(pia.SideA, pia.C1, false)
	test.ExpectFailure(t, p.InterruptPending())

	// next rising edge does
	p.InjectEdge(pia.SideA, pia.C1, true)
	test.ExpectSuccess(t, p.InterruptPending())
}

func TestFallingEdge(t *testing.T) {
	p := pia.NewPIA("test")

	// c1 enabled, high-to-low
	selectData(p, pia.SideA, 0x01)
	p.InjectEdge(pia.SideA, pia.C1, true)
	test.ExpectFailure(t, p.InterruptPending())
	p.InjectEdge(pia.SideA, pia.C1, false)
	test.ExpectSuccess(t, p.InterruptPending())
}

func TestInterruptDisabled(t *testing.T) {
	p := pia.NewPIA("test")

	// low-to-high but interrupt not enabled. the flag is still set
	selectData(p, pia.SideB, 0x02)
	p.InjectEdge(pia.SideB, pia.C1, true)
	test.ExpectFailure(t, p.InterruptPending())
	test.ExpectEquality(t, p.ReadRegister(pia.SideB, pia.ControlRegister)&0x80, 0x80)

	// enabling the interrupt makes the flag visible
	selectData(p, pia.SideB, 0x03)
	test.ExpectSuccess(t, p.InterruptPending())
}

func TestC2(t *testing.T) {
	p := pia.NewPIA("test")

	// c2 input, enabled, low-to-high
	selectData(p, pia.SideA, 0x18)
	p.InjectEdge(pia.SideA, pia.C2, true)
	test.ExpectSuccess(t, p.InterruptPending())
	test.ExpectEquality(t, p.ReadRegister(pia.SideA, pia.ControlRegister)&0x40, 0x40)
	p.ReadRegister(pia.SideA, pia.DataRegister)

	// c2 as output ignores edges
	selectData(p, pia.SideA, 0x38)
	p.InjectEdge(pia.SideA, pia.C2, false)
	p.InjectEdge(pia.SideA, pia.C2, true)
	test.ExpectFailure(t, p.InterruptPending())
}

func TestOutputChangeNotification(t *testing.T) {
	p := pia.NewPIA("test")
	r := &recorder{}
	test.ExpectSuccess(t, p.AddObserver(pia.SideB, r))

	// direction register write with data still zero. no change in output
	p.WriteRegister(pia.SideB, pia.DataRegister, 0xf8)
	test.ExpectEquality(t, len(r.values), 0)

	selectData(p, pia.SideB, 0x00)
	p.WriteRegister(pia.SideB, pia.DataRegister, 0x08)
	test.DemandEquality(t, len(r.values), 1)
	test.ExpectEquality(t, r.values[0], 0x08)
	test.ExpectEquality(t, r.sides[0], pia.SideB)

	// writing the same value again does not notify
	p.WriteRegister(pia.SideB, pia.DataRegister, 0x08)
	test.ExpectEquality(t, len(r.values), 1)

	// changing input bits only does not notify
	p.WriteRegister(pia.SideB, pia.DataRegister, 0x0f)
	test.ExpectEquality(t, len(r.values), 1)

	// writes to side A do not notify side B observers
	selectData(p, pia.SideA, 0x00)
	test.ExpectEquality(t, len(r.values), 1)

	// changing the direction register changes the output
	selectData(p, pia.SideB, 0x00)
	p.WriteRegister(pia.SideB, pia.ControlRegister, 0x00)
	p.WriteRegister(pia.SideB, pia.DataRegister, 0x00)
	test.DemandEquality(t, len(r.values), 2)
	test.ExpectEquality(t, r.values[1], 0x00)
}

func TestObserverCapacity(t *testing.T) {
	p := pia.NewPIA("test")
	for i := 0; i < pia.MaxObservers; i++ {
		test.ExpectSuccess(t, p.AddObserver(pia.SideA, &recorder{}))
	}
	err := p.AddObserver(pia.SideA, &recorder{})
	test.ExpectSuccess(t, curated.Is(err, pia.ObserversFull))
}

func TestControlObserver(t *testing.T) {
	p := pia.NewPIA("test")
	r := &controlRecorder{}
	p.SetControlObserver(pia.SideA, r)

	// output, manual, low
	p.WriteRegister(pia.SideA, pia.ControlRegister, 0x34)
	test.DemandEquality(t, len(r.levels), 1)
	test.ExpectFailure(t, r.levels[0])

	// output, manual, high
	p.WriteRegister(pia.SideA, pia.ControlRegister, 0x3c)
	test.DemandEquality(t, len(r.levels), 2)
	test.ExpectSuccess(t, r.levels[1])
	test.ExpectSuccess(t, p.ControlLevel(pia.SideA))

	// no change
	p.WriteRegister(pia.SideA, pia.ControlRegister, 0x3c)
	test.ExpectEquality(t, len(r.levels), 2)
}

func TestBusDecoding(t *testing.T) {
	p := pia.NewPIA("test")

	// offset 3 is the control register of side B
	p.Write(0x03, 0x04)
	test.ExpectEquality(t, p.ReadRegister(pia.SideB, pia.ControlRegister), 0x04)

	// offset 0x1c mirrors offset 0
	p.Write(0x00, 0x55)
	test.ExpectEquality(t, p.Read(0x1c), 0x55)
}
