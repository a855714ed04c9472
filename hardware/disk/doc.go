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

// Package disk implements the WD1793 floppy disk controller and the drive
// select latch found in the disk interface cartridge.
//
// The controller is a state machine. Commands written to the command
// register start a sequence of steps, each of which happens some time after
// the previous one. The controller does not keep time itself. After a
// command is started, or after a step has run, the time until the next step
// is collected by the machine with TakeSchedule(). The machine calls
// Resume() when that time has elapsed. Only one step is ever pending and a
// new schedule always replaces the previous one.
//
// Disk images are raw sector dumps of single sided disks with 35 tracks of 18
// sectors of 256 bytes.
//
// The registers are decoded with address bit 3. When bit 3 is clear writes go
// to the drive select latch and reads return 0xff. When bit 3 is set, address
// bits 0 and 1 select the controller register.
package disk
