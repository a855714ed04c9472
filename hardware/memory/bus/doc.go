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

// Package bus maps the 16-bit address space of the CPU onto the devices
// attached to it. Devices register an address range with the Router, along
// with the functions that service reads and writes in that range. The Router
// implements the cpu.Memory interface.
//
// Ranges are consulted in the order they were registered and the first range
// containing the address is used. Ranges are not expected to overlap but if
// they do the registration order decides which device answers.
//
// Reads from the top of the address space, where the interrupt vectors live,
// are folded down into the ROM area.
package bus
