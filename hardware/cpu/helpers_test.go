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
	"github.com/jetsetilly/gopher6809/hardware/cpu"
)

// mockMem is 64K of flat RAM.
type mockMem struct {
	data [0x10000]uint8
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.data[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// load bytes into memory starting at the address.
func (mem *mockMem) load(address uint16, b ...uint8) {
	for i, v := range b {
		mem.data[address+uint16(i)] = v
	}
}

func (mem *mockMem) vector(address uint16, target uint16) {
	mem.load(address, uint8(target>>8), uint8(target))
}

// newCPU returns a CPU with the reset vector pointing at 0x1000 and the stack
// at 0x8000.
func newCPU() (*cpu.CPU, *mockMem) {
	mem := &mockMem{}
	mem.vector(cpu.VectorReset, 0x1000)
	mc := cpu.NewCPU(mem)
	mc.Reset()
	mc.S = 0x8000
	mc.U = 0x7000
	return mc, mem
}
