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

package cpu_test

import (
	"math/rand"
	"testing"

	"github.com/jetsetilly/gopher6809/curated"
	"github.com/jetsetilly/gopher6809/hardware/clocks"
	"github.com/jetsetilly/gopher6809/hardware/cpu"
	"github.com/jetsetilly/gopher6809/test"
)

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	test.DemandSuccess(t, mc.Step())
}

func TestReset(t *testing.T) {
	mc, _ := newCPU()
	test.ExpectEquality(t, mc.PC, 0x1000)
	test.ExpectSuccess(t, mc.CC.I)
	test.ExpectSuccess(t, mc.CC.F)
	test.ExpectEquality(t, mc.DP, 0)
}

func TestTime(t *testing.T) {
	mc, mem := newCPU()
	mem.load(0x1000, 0x12, 0x3d)

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)
	test.ExpectEquality(t, mc.Time, 2*uint64(clocks.CycleNanoseconds))

	mc.CycleNanoseconds = 500
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 11)
	test.ExpectEquality(t, mc.Time, 2*uint64(clocks.CycleNanoseconds)+11*500)
}

// reference flags computed with wider integer arithmetic.
type flags struct {
	n, z, v, c, h bool
}

func ccFlags(mc *cpu.CPU) flags {
	return flags{n: mc.CC.N, z: mc.CC.Z, v: mc.CC.V, c: mc.CC.C, h: mc.CC.H}
}

func TestAddSubFlags(t *testing.T) {
	rng := rand.New(rand.NewSource(6809))
	mc, mem := newCPU()

	for i := 0; i < 2000; i++ {
		a := uint8(rng.Intn(256))
		b := uint8(rng.Intn(256))
		carry := rng.Intn(2) == 1
		ci := 0
		if carry {
			ci = 1
		}

		// ADCA immediate
		mem.load(0x1000, 0x89, b)
		mc.PC = 0x1000
		mc.A = a
		mc.CC.C = carry
		mc.CC.H = false
		step(t, mc)

		sum := int(a) + int(b) + ci
		ssum := int(int8(a)) + int(int8(b)) + ci
		exp := flags{
			n: sum&0x80 == 0x80,
			z: sum&0xff == 0,
			v: ssum < -128 || ssum > 127,
			c: sum > 0xff,
			h: int(a&0x0f)+int(b&0x0f)+ci > 0x0f,
		}
		test.ExpectEquality(t, mc.A, uint8(sum))
		test.ExpectEquality(t, ccFlags(mc), exp)

		// SBCA immediate
		mem.load(0x1000, 0x82, b)
		mc.PC = 0x1000
		mc.A = a
		mc.CC.C = carry
		mc.CC.H = false
		step(t, mc)

		diff := int(a) - int(b) - ci
		sdiff := int(int8(a)) - int(int8(b)) - ci
		exp = flags{
			n: diff&0x80 == 0x80,
			z: diff&0xff == 0,
			v: sdiff < -128 || sdiff > 127,
			c: diff < 0,
		}
		test.ExpectEquality(t, mc.A, uint8(diff))
		test.ExpectEquality(t, ccFlags(mc), exp)

		// CMPB immediate leaves B unchanged
		mem.load(0x1000, 0xc1, b)
		mc.PC = 0x1000
		mc.B = a
		step(t, mc)
		test.ExpectEquality(t, mc.B, a)
		test.ExpectEquality(t, mc.CC.C, int(a) < int(b))
		test.ExpectEquality(t, mc.CC.Z, a == b)
	}
}

func TestAddSub16Flags(t *testing.T) {
	rng := rand.New(rand.NewSource(1979))
	mc, mem := newCPU()

	for i := 0; i < 2000; i++ {
		a := uint16(rng.Intn(0x10000))
		b := uint16(rng.Intn(0x10000))

		// ADDD immediate
		mem.load(0x1000, 0xc3, uint8(b>>8), uint8(b))
		mc.PC = 0x1000
		mc.SetD(a)
		mc.CC.H = false
		step(t, mc)

		sum := int(a) + int(b)
		ssum := int(int16(a)) + int(int16(b))
		test.ExpectEquality(t, mc.D(), uint16(sum))
		test.ExpectEquality(t, ccFlags(mc), flags{
			n: sum&0x8000 == 0x8000,
			z: sum&0xffff == 0,
			v: ssum < -32768 || ssum > 32767,
			c: sum > 0xffff,
		})

		// SUBD immediate
		mem.load(0x1000, 0x83, uint8(b>>8), uint8(b))
		mc.PC = 0x1000
		mc.SetD(a)
		step(t, mc)

		diff := int(a) - int(b)
		sdiff := int(int16(a)) - int(int16(b))
		test.ExpectEquality(t, mc.D(), uint16(diff))
		test.ExpectEquality(t, ccFlags(mc), flags{
			n: diff&0x8000 == 0x8000,
			z: diff&0xffff == 0,
			v: sdiff < -32768 || sdiff > 32767,
			c: diff < 0,
		})
	}
}

func TestUnaryFlags(t *testing.T) {
	mc, mem := newCPU()

	run := func(opcode uint8, a uint8, carry bool) {
		t.Helper()
		mem.load(0x1000, opcode)
		mc.PC = 0x1000
		mc.A = a
		mc.CC.C = carry
		mc.CC.V = false
		step(t, mc)
	}

	// NEGA
	run(0x40, 0x80, false)
	test.ExpectEquality(t, mc.A, 0x80)
	test.ExpectSuccess(t, mc.CC.V)
	test.ExpectSuccess(t, mc.CC.C)
	run(0x40, 0x00, true)
	test.ExpectFailure(t, mc.CC.C)
	test.ExpectSuccess(t, mc.CC.Z)

	// COMA
	run(0x43, 0x0f, false)
	test.ExpectEquality(t, mc.A, 0xf0)
	test.ExpectSuccess(t, mc.CC.C)
	test.ExpectSuccess(t, mc.CC.N)

	// LSRA and RORA
	run(0x44, 0x81, false)
	test.ExpectEquality(t, mc.A, 0x40)
	test.ExpectSuccess(t, mc.CC.C)
	run(0x46, 0x02, true)
	test.ExpectEquality(t, mc.A, 0x81)
	test.ExpectFailure(t, mc.CC.C)

	// ASRA keeps the sign
	run(0x47, 0x82, false)
	test.ExpectEquality(t, mc.A, 0xc1)

	// ASLA and ROLA set V from bits 7 and 6
	run(0x48, 0x40, false)
	test.ExpectEquality(t, mc.A, 0x80)
	test.ExpectSuccess(t, mc.CC.V)
	test.ExpectFailure(t, mc.CC.C)
	run(0x49, 0x80, true)
	test.ExpectEquality(t, mc.A, 0x01)
	test.ExpectSuccess(t, mc.CC.C)
	test.ExpectSuccess(t, mc.CC.V)

	// DECA and INCA overflow
	run(0x4a, 0x80, false)
	test.ExpectEquality(t, mc.A, 0x7f)
	test.ExpectSuccess(t, mc.CC.V)
	run(0x4c, 0x7f, false)
	test.ExpectEquality(t, mc.A, 0x80)
	test.ExpectSuccess(t, mc.CC.V)

	// CLRA
	run(0x4f, 0x55, true)
	test.ExpectEquality(t, mc.A, 0x00)
	test.ExpectSuccess(t, mc.CC.Z)
	test.ExpectFailure(t, mc.CC.C)

	// memory form: INC extended
	mem.load(0x1000, 0x7c, 0x30, 0x00)
	mem.load(0x3000, 0xff)
	mc.PC = 0x1000
	step(t, mc)
	test.ExpectEquality(t, mem.data[0x3000], 0x00)
	test.ExpectSuccess(t, mc.CC.Z)
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)
}

func TestDAA(t *testing.T) {
	mc, mem := newCPU()

	daa := func(a, b uint8) {
		t.Helper()
		mem.load(0x1000, 0x8b, b, 0x19)
		mc.PC = 0x1000
		mc.A = a
		step(t, mc)
		step(t, mc)
	}

	daa(0x09, 0x01)
	test.ExpectEquality(t, mc.A, 0x10)
	test.ExpectFailure(t, mc.CC.C)

	daa(0x99, 0x01)
	test.ExpectEquality(t, mc.A, 0x00)
	test.ExpectSuccess(t, mc.CC.C)
	test.ExpectSuccess(t, mc.CC.Z)
	test.ExpectFailure(t, mc.CC.V)

	daa(0x38, 0x45)
	test.ExpectEquality(t, mc.A, 0x83)
	test.ExpectFailure(t, mc.CC.C)
	test.ExpectFailure(t, mc.CC.V)

	daa(0x90, 0x90)
	test.ExpectEquality(t, mc.A, 0x80)
	test.ExpectSuccess(t, mc.CC.C)
}

func TestMulSexAbx(t *testing.T) {
	mc, mem := newCPU()
	mem.load(0x1000, 0x3d, 0x3d, 0x3d, 0x1d, 0x3a)

	mc.A = 0x10
	mc.B = 0x10
	step(t, mc)
	test.ExpectEquality(t, mc.D(), 0x0100)
	test.ExpectFailure(t, mc.CC.Z)
	test.ExpectFailure(t, mc.CC.C)

	mc.A = 0x0c
	mc.B = 0x0c
	step(t, mc)
	test.ExpectEquality(t, mc.D(), 0x0090)
	test.ExpectSuccess(t, mc.CC.C)

	mc.A = 0x00
	mc.B = 0x99
	step(t, mc)
	test.ExpectEquality(t, mc.D(), 0x0000)
	test.ExpectSuccess(t, mc.CC.Z)

	mc.B = 0x80
	step(t, mc)
	test.ExpectEquality(t, mc.D(), 0xff80)
	test.ExpectSuccess(t, mc.CC.N)

	mc.X = 0x1000
	mc.B = 0xff
	step(t, mc)
	test.ExpectEquality(t, mc.X, 0x10ff)
}

func TestIndexedModes(t *testing.T) {
	mc, mem := newCPU()

	for i := 0; i < 0x100; i++ {
		mem.data[0x4000+i] = uint8(i)
	}

	lda := func(b ...uint8) {
		t.Helper()
		mem.load(0x1000, append([]uint8{0xa6}, b...)...)
		mc.PC = 0x1000
		step(t, mc)
	}

	// ,X+
	mc.X = 0x4010
	lda(0x80)
	test.ExpectEquality(t, mc.A, 0x10)
	test.ExpectEquality(t, mc.X, 0x4011)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)

	// ,--Y
	mc.Y = 0x4010
	lda(0xa3)
	test.ExpectEquality(t, mc.A, 0x0e)
	test.ExpectEquality(t, mc.Y, 0x400e)
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)

	// -1,X
	mc.X = 0x4010
	lda(0x1f)
	test.ExpectEquality(t, mc.A, 0x0f)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)

	// B,U with negative B
	mc.U = 0x4010
	mc.B = 0xfe
	lda(0xc5)
	test.ExpectEquality(t, mc.A, 0x0e)

	// 16 bit offset ,S
	mc.S = 0x3000
	lda(0xe9, 0x10, 0x20)
	test.ExpectEquality(t, mc.A, 0x20)
	test.ExpectEquality(t, mc.LastResult.Cycles, 8)

	// D,X
	mc.X = 0x4000
	mc.SetD(0x0033)
	lda(0x8b)
	test.ExpectEquality(t, mc.A, 0x33)

	// n8,PCR. the offset is relative to the address after the instruction
	mem.data[0x1013] = 0x77
	lda(0x8c, 0x10)
	test.ExpectEquality(t, mc.A, 0x77)

	// extended indirect
	mem.load(0x5000, 0x40, 0x44)
	lda(0x9f, 0x50, 0x00)
	test.ExpectEquality(t, mc.A, 0x44)
	test.ExpectEquality(t, mc.LastResult.Cycles, 9)

	// indirect ,X
	mc.X = 0x5000
	lda(0x94)
	test.ExpectEquality(t, mc.A, 0x44)
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)
}

func TestLEA(t *testing.T) {
	mc, mem := newCPU()

	// LEAX -1,X to zero sets Z
	mem.load(0x1000, 0x30, 0x1f)
	mc.X = 1
	mc.CC.Z = false
	step(t, mc)
	test.ExpectEquality(t, mc.X, 0)
	test.ExpectSuccess(t, mc.CC.Z)

	// LEAS does not change Z
	mem.load(0x1000, 0x32, 0x7f)
	mc.PC = 0x1000
	mc.S = 1
	mc.CC.Z = false
	step(t, mc)
	test.ExpectEquality(t, mc.S, 0)
	test.ExpectFailure(t, mc.CC.Z)
}

func TestTransfers(t *testing.T) {
	mc, mem := newCPU()

	// TFR A,X
	mem.load(0x1000, 0x1f, 0x81)
	mc.A = 0x42
	step(t, mc)
	test.ExpectEquality(t, mc.X, 0xff42)

	// EXG D,Y
	mem.load(0x1002, 0x1e, 0x02)
	mc.SetD(0x1234)
	mc.Y = 0x5678
	step(t, mc)
	test.ExpectEquality(t, mc.D(), 0x5678)
	test.ExpectEquality(t, mc.Y, 0x1234)

	// TFR X,B takes the low byte
	mem.load(0x1004, 0x1f, 0x19)
	mc.X = 0xabcd
	step(t, mc)
	test.ExpectEquality(t, mc.B, 0xcd)
}

func TestStack(t *testing.T) {
	mc, mem := newCPU()

	// PSHS A,B,X then PULU nothing, then PULS A,B,X
	mem.load(0x1000, 0x34, 0x16, 0x35, 0x16)
	mc.SetD(0xa1b2)
	mc.X = 0xc3d4
	step(t, mc)
	test.ExpectEquality(t, mc.S, 0x8000-4)
	test.ExpectEquality(t, mc.LastResult.Cycles, 9)
	test.ExpectEquality(t, mem.data[0x7ffc], 0xa1)
	test.ExpectEquality(t, mem.data[0x7ffd], 0xb2)
	test.ExpectEquality(t, mem.data[0x7ffe], 0xc3)
	test.ExpectEquality(t, mem.data[0x7fff], 0xd4)

	mc.SetD(0)
	mc.X = 0
	step(t, mc)
	test.ExpectEquality(t, mc.S, 0x8000)
	test.ExpectEquality(t, mc.D(), 0xa1b2)
	test.ExpectEquality(t, mc.X, 0xc3d4)

	// BSR then RTS
	mem.load(0x1004, 0x8d, 0x10)
	mem.load(0x1016, 0x39)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x1016)
	test.ExpectEquality(t, mc.S, 0x8000-2)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x1006)
	test.ExpectEquality(t, mc.S, 0x8000)
}

func TestBranches(t *testing.T) {
	mc, mem := newCPU()

	// BNE back by 2 when Z is clear
	mem.load(0x1000, 0x26, 0xfe)
	mc.CC.Z = false
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x1000)
	mc.CC.Z = true
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x1002)

	// LBEQ takes an extra cycle when the branch is taken
	mem.load(0x1002, 0x10, 0x27, 0x01, 0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x1106)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)

	mem.load(0x1106, 0x10, 0x27, 0x01, 0x00)
	mc.CC.Z = false
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x110a)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)

	// BGT and BLE with N != V
	mem.load(0x110a, 0x2e, 0x10, 0x2f, 0x10)
	mc.CC.N = true
	mc.CC.V = false
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x110c)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x111e)
}

func TestInterruptStacking(t *testing.T) {
	mc, mem := newCPU()
	mem.vector(cpu.VectorIRQ, 0x2000)
	mem.load(0x2000, 0x12, 0x3b)
	mem.load(0x1000, 0x12)

	mc.A = 0x11
	mc.B = 0x22
	mc.DP = 0x33
	mc.X = 0x4455
	mc.Y = 0x6677
	mc.U = 0x8899
	mc.CC.I = false

	// masked
	mc.CC.I = true
	mc.SetIRQ(true)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x1001)
	mc.PC = 0x1000
	mc.CC.I = false

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "IRQ")
	test.ExpectEquality(t, mc.PC, 0x2001)
	test.ExpectEquality(t, mc.S, 0x8000-12)
	test.ExpectSuccess(t, mc.CC.I)
	test.ExpectSuccess(t, mc.CC.E)

	// IRQ does not touch F, which is still set from reset
	test.ExpectSuccess(t, mc.CC.F)
	test.ExpectEquality(t, mem.data[0x8000-12]&0x40, 0x40)

	// CC, A, B, DP, X, Y, U, PC from the top of the stack
	stacked := []uint8{0, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0x10, 0x00}
	for i, v := range stacked[1:] {
		test.ExpectEquality(t, mem.data[0x8000-11+i], v)
	}
	test.ExpectEquality(t, mem.data[0x8000-12]&0x80, 0x80)

	mc.SetIRQ(false)
	mc.A = 0
	mc.X = 0
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x1000)
	test.ExpectEquality(t, mc.S, 0x8000)
	test.ExpectEquality(t, mc.A, 0x11)
	test.ExpectEquality(t, mc.X, 0x4455)
	test.ExpectEquality(t, mc.LastResult.Cycles, 15)
	test.ExpectFailure(t, mc.CC.I)
}

func TestFIRQ(t *testing.T) {
	mc, mem := newCPU()
	mem.vector(cpu.VectorFIRQ, 0x2100)
	mem.load(0x2100, 0x12, 0x3b)
	mem.load(0x1000, 0x12)
	mc.CC.I = false
	mc.CC.F = false

	mc.SetFIRQ(true)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "FIRQ")
	test.ExpectEquality(t, mc.S, 0x8000-3)
	test.ExpectFailure(t, mc.CC.E)
	test.ExpectSuccess(t, mc.CC.I)
	test.ExpectSuccess(t, mc.CC.F)
	test.ExpectEquality(t, mem.data[0x7ffe], 0x10)
	test.ExpectEquality(t, mem.data[0x7fff], 0x00)

	mc.SetFIRQ(false)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x1000)
	test.ExpectEquality(t, mc.S, 0x8000)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
}

func TestInterruptPriority(t *testing.T) {
	mc, mem := newCPU()
	mem.vector(cpu.VectorNMI, 0x2000)
	mem.vector(cpu.VectorFIRQ, 0x2100)
	mem.vector(cpu.VectorIRQ, 0x2200)
	mem.load(0x2000, 0x12)
	mem.load(0x2100, 0x12)
	mem.load(0x2200, 0x12)
	mc.CC.I = false
	mc.CC.F = false

	mc.SetIRQ(true)
	mc.SetFIRQ(true)
	mc.SetNMI(true)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "NMI")
	test.ExpectEquality(t, mc.PC, 0x2001)

	// NMI is edge triggered and masks FIRQ and IRQ
	mc.CC.I = false
	mc.CC.F = false
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "FIRQ")

	mc.CC.I = false
	mc.SetFIRQ(false)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "IRQ")

	// a new edge
	mc.SetNMI(false)
	mc.SetNMI(true)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "NMI")
}

func TestSoftwareInterrupts(t *testing.T) {
	mc, mem := newCPU()
	mem.vector(cpu.VectorSWI, 0x2000)
	mem.vector(cpu.VectorSWI2, 0x2100)
	mem.load(0x1000, 0x3f)
	mem.load(0x2000, 0x10, 0x3f)
	mc.CC.I = false
	mc.CC.F = false

	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x2000)
	test.ExpectEquality(t, mc.S, 0x8000-12)
	test.ExpectSuccess(t, mc.CC.I)
	test.ExpectSuccess(t, mc.CC.F)
	test.ExpectEquality(t, mc.LastResult.Cycles, 19)

	// SWI2 does not change the masks
	mc.CC.I = false
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x2100)
	test.ExpectEquality(t, mc.S, 0x8000-24)
	test.ExpectFailure(t, mc.CC.I)
}

func TestWaitStates(t *testing.T) {
	mc, mem := newCPU()
	mem.vector(cpu.VectorIRQ, 0x2000)
	mem.vector(cpu.VectorFIRQ, 0x2100)
	mem.load(0x2000, 0x12)
	mem.load(0x2100, 0x12)

	// SYNC with a masked interrupt continues with the next instruction
	mem.load(0x1000, 0x13, 0x12)
	step(t, mc)
	test.ExpectSuccess(t, mc.Waiting())
	step(t, mc)
	test.ExpectSuccess(t, mc.Waiting())
	test.ExpectEquality(t, mc.PC, 0x1001)
	mc.SetIRQ(true)
	step(t, mc)
	test.ExpectFailure(t, mc.Waiting())
	test.ExpectEquality(t, mc.PC, 0x1002)
	mc.SetIRQ(false)

	// CWAI clears the masks and stacks everything before waiting
	mem.load(0x1002, 0x3c, 0xaf)
	step(t, mc)
	test.ExpectSuccess(t, mc.Waiting())
	test.ExpectEquality(t, mc.S, 0x8000-12)
	test.ExpectFailure(t, mc.CC.F)

	// FIRQ after CWAI does not stack again
	mc.SetFIRQ(true)
	step(t, mc)
	test.ExpectFailure(t, mc.Waiting())
	test.ExpectEquality(t, mc.S, 0x8000-12)
	test.ExpectEquality(t, mc.PC, 0x2101)
}

func TestHalted(t *testing.T) {
	mc, mem := newCPU()
	mem.load(0x1000, 0x12)
	mc.Halted = true
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x1000)
	test.ExpectEquality(t, mc.Time, uint64(clocks.CycleNanoseconds))
	mc.Halted = false
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x1001)
}

func TestUnimplemented(t *testing.T) {
	mc, mem := newCPU()

	mem.load(0x1000, 0x01)
	err := mc.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedInstruction))

	mem.load(0x1000, 0x10, 0x86)
	mc.PC = 0x1000
	err = mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedInstruction))
	test.ExpectEquality(t, err.Error(), "cpu: unimplemented instruction (0x1086) at (0x1000)")
}

func TestDisassemble(t *testing.T) {
	mem := &mockMem{}
	mem.load(0x1000,
		0x86, 0x41, // LDA #$41
		0x10, 0x8e, 0x12, 0x34, // LDY #$1234
		0xa7, 0x9f, 0x20, 0x00, // STA [$2000]
		0x34, 0x46, // PSHS A,B,U
		0x1f, 0x89, // TFR A,B
		0x26, 0xfe, // BNE to self
		0x3d, // MUL
	)

	expected := []string{
		"1000  LDA   #$41",
		"1002  LDY   #$1234",
		"1006  STA   [$2000]",
		"100a  PSHS  A,B,U",
		"100c  TFR   A,B",
		"100e  BNE   $100e",
		"1010  MUL",
	}

	address := uint16(0x1000)
	for _, e := range expected {
		var s string
		s, address = cpu.Disassemble(mem, address)
		test.ExpectEquality(t, s, e)
	}
}

func TestRepeatedPrefix(t *testing.T) {
	mc, mem := newCPU()

	mem.load(0x1000,
		0x10, 0x8e, 0x12, 0x34, // LDY #$1234
		0x10, 0x10, 0x8e, 0x56, 0x78, // LDY #$5678 with a redundant prefix
		0x11, 0x10, 0x8e, 0x9a, 0xbc, // the last prefix selects the page
	)

	step(t, mc)
	test.ExpectEquality(t, mc.Y, 0x1234)
	test.ExpectEquality(t, mc.PC, 0x1004)
	cycles := mc.LastResult.Cycles

	step(t, mc)
	test.ExpectEquality(t, mc.Y, 0x5678)
	test.ExpectEquality(t, mc.PC, 0x1009)
	test.ExpectEquality(t, mc.LastResult.Cycles, cycles+1)
	test.ExpectEquality(t, mc.LastResult.Address, 0x1004)

	s, next := cpu.Disassemble(mem, 0x1009)
	test.ExpectEquality(t, s, "1009  LDY   #$9abc")
	test.ExpectEquality(t, next, 0x100e)

	step(t, mc)
	test.ExpectEquality(t, mc.Y, 0x9abc)
	test.ExpectEquality(t, mc.PC, 0x100e)
}
