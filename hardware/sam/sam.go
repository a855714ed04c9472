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

package sam

import (
	"fmt"

	"github.com/jetsetilly/gopher6809/hardware/clocks"
	"github.com/jetsetilly/gopher6809/hardware/memory/bus"
	"github.com/jetsetilly/gopher6809/logger"
)

// address ranges handled by the SAM.
const (
	MemoryOrigin    = uint16(0x0000)
	MemoryMemtop    = uint16(0xfeff)
	RegistersOrigin = uint16(0xffc0)
	RegistersTop    = uint16(0xffdf)
	DisplayDefault  = uint16(0x0400)

	romOrigin = uint16(0x8000)
	pageSize  = uint16(0x8000)
)

// positions of the configuration bits.
const (
	bitV0 = iota
	bitV1
	bitV2
	bitF0
	bitF1
	bitF2
	bitF3
	bitF4
	bitF5
	bitF6
	bitP1
	bitR0
	bitR1
	bitM0
	bitM1
	bitTY
)

// SAM implements the MC6883.
type SAM struct {
	perm logger.Permission

	// the sixteen configuration bits
	bits uint16

	// the machine's RAM. always the full 64K regardless of the M bits
	RAM [0x10000]uint8

	banks [NumBanks]bank

	scan scanner
}

// NewSAM is the preferred method of initialisation for the SAM type.
func NewSAM(perm logger.Permission) *SAM {
	sam := &SAM{perm: perm}
	sam.Reset()
	return sam
}

func (sam *SAM) String() string {
	return fmt.Sprintf("V=%d F=%02x P1=%v R=%d M=%d TY=%v", sam.V(), sam.F(), sam.P1(), sam.R(), sam.M(), sam.TY())
}

// Reset clears all configuration bits. RAM and ROM contents are not affected.
func (sam *SAM) Reset() {
	sam.bits = 0
	sam.setDisplayOffset(DisplayDefault)
	sam.scan.setMode(sam.V())
	sam.FSReset()
}

// V returns the VDG addressing mode.
func (sam *SAM) V() int {
	return int(sam.bits & 0x07)
}

// F returns the display offset in units of 512 bytes.
func (sam *SAM) F() int {
	return int((sam.bits >> bitF0) & 0x7f)
}

// DisplayOffset returns the address of the start of video memory.
func (sam *SAM) DisplayOffset() uint16 {
	return uint16(sam.F()) << 9
}

// P1 returns the state of the page select bit.
func (sam *SAM) P1() bool {
	return sam.bits&(1<<bitP1) != 0
}

// R returns the CPU rate bits.
func (sam *SAM) R() int {
	return int((sam.bits >> bitR0) & 0x03)
}

// M returns the memory size bits.
func (sam *SAM) M() int {
	return int((sam.bits >> bitM0) & 0x03)
}

// TY returns the map type bit. If true then the whole address space below
// 0xff00 is RAM.
func (sam *SAM) TY() bool {
	return sam.bits&(1<<bitTY) != 0
}

// CycleNanoseconds returns the length of a CPU cycle as selected by the rate
// bits. The address dependent rate is treated as the slow rate.
func (sam *SAM) CycleNanoseconds() uint64 {
	if sam.R() >= 2 {
		return clocks.CycleNanoseconds / 2
	}
	return clocks.CycleNanoseconds
}

func (sam *SAM) setDisplayOffset(address uint16) {
	f := (address >> 9) & 0x7f
	sam.bits = (sam.bits &^ (0x7f << bitF0)) | (f << bitF0)
}

// WriteRegister sets or clears one of the configuration bits. The offset is
// relative to 0xffc0.
func (sam *SAM) WriteRegister(offset uint16, _ uint8) {
	bit := (offset >> 1) & 0x0f
	if offset&0x01 == 0x01 {
		sam.bits |= 1 << bit
	} else {
		sam.bits &^= 1 << bit
	}

	if bit <= bitV2 {
		sam.scan.setMode(sam.V())
	}
}

// translate a CPU address in the lower half of memory to a RAM address.
func (sam *SAM) ramAddress(address uint16) uint16 {
	if address < pageSize && sam.P1() && !sam.TY() {
		return address + pageSize
	}
	return address
}

// Read a byte from RAM or ROM. The address is a CPU address.
func (sam *SAM) Read(address uint16) uint8 {
	if address < romOrigin || sam.TY() {
		return sam.RAM[sam.ramAddress(address)]
	}
	return sam.readROM(address)
}

// Write a byte to RAM. Writes to ROM are ignored.
func (sam *SAM) Write(address uint16, data uint8) {
	if address < romOrigin || sam.TY() {
		sam.RAM[sam.ramAddress(address)] = data
	}
}

// ReadVector reads the folded interrupt and reset vectors. They always come
// from ROM whatever the map type.
func (sam *SAM) ReadVector(address uint16) uint8 {
	return sam.readROM(address)
}

// Attach registers the areas the SAM is responsible for with the Router. The
// SAM also services the folded vector reads.
func (sam *SAM) Attach(r *bus.Router) {
	r.Vectors = sam.ReadVector

	r.Register(bus.Area{
		Label:  "SAM registers",
		Origin: RegistersOrigin,
		Memtop: RegistersTop,
		Write:  sam.WriteRegister,
	})
	r.Register(bus.Area{
		Label:  "RAM/ROM",
		Origin: MemoryOrigin,
		Memtop: MemoryMemtop,
		Read:   sam.Read,
		Write:  sam.Write,
	})
}
