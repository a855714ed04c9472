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

// Package instructions defines the 6809 instruction set. Each opcode has a
// Definition which names the operation, the register it works on, the
// addressing mode and the base number of cycles the instruction takes.
//
// Opcodes on the second and third pages are prefixed with 0x10 and 0x11
// respectively. The OpCode field of these definitions includes the prefix.
// The base cycles of these instructions include the cycle taken by the
// prefix.
//
// Additional cycles are taken by indexed addressing, by PSH and PUL for each
// byte transferred, by taken long branches and by RTI when the entire state
// is pulled.
package instructions
