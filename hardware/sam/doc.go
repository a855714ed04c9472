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

// Package sam implements the MC6883 Synchronous Address Multiplexer. The SAM
// sits between the CPU, the RAM, the ROMs and the VDG. In the emulation it
// owns the RAM and the ROM banks and it answers CPU accesses to the lower
// part of the address space. It also generates the address of the byte the
// VDG is to display next.
//
// The SAM is configured by writing to the sixteen pairs of addresses between
// 0xffc0 and 0xffdf. Writing to the even address of a pair clears a bit,
// writing to the odd address sets it. The value written is not important.
//
//	bits 0-2	V	VDG addressing mode
//	bits 3-9	F	display offset in 512 byte units
//	bit 10		P1	page select (32K RAM pages)
//	bits 11-12	R	CPU rate
//	bits 13-14	M	memory size
//	bit 15		TY	map type (0 = ROM at 0x8000, 1 = all RAM)
package sam
