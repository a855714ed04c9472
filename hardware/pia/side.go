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

package pia

import "fmt"

// bits in the control register.
const (
	// c1 control. interrupt enable and edge polarity (set for low-to-high)
	crC1Enable = 0x01
	crC1Rising = 0x02

	// register 0 addresses the data register if set, the direction register
	// if clear
	crDataSelect = 0x04

	// c2 control. when crC2Output is clear the other two bits have the same
	// meaning as for c1. when crC2Output is set and crC2Manual is set then
	// crC2Level is the output level of the c2 line
	crC2Enable = 0x08
	crC2Rising = 0x10
	crC2Output = 0x20

	crC2Level  = crC2Enable
	crC2Manual = crC2Rising

	// interrupt flags. read only from the CPU
	crIRQ2 = 0x40
	crIRQ1 = 0x80
)

type side struct {
	cr   uint8
	ddr  uint8
	data uint8

	// last levels seen on the control lines
	c1 bool
	c2 bool
}

func (ps *side) String() string {
	return fmt.Sprintf("cr=%02x ddr=%02x dr=%02x", ps.cr, ps.ddr, ps.data)
}

// the value of the output pins.
func (ps *side) output() uint8 {
	return ps.ddr & ps.data
}

// the level of the c2 line as driven by the PIA. the line is pulled high
// unless it is an output in manual mode.
func (ps *side) c2Output() bool {
	if ps.cr&crC2Output == crC2Output && ps.cr&crC2Manual == crC2Manual {
		return ps.cr&crC2Level == crC2Level
	}
	return true
}

// transition returns true if the change from prev to level matches the
// polarity.
func (ps *side) transition(prev bool, level bool, rising bool) bool {
	if rising {
		return !prev && level
	}
	return prev && !level
}

func (ps *side) interrupt() bool {
	if ps.cr&crC1Enable == crC1Enable && ps.cr&crIRQ1 == crIRQ1 {
		return true
	}
	if ps.cr&crC2Output == 0 && ps.cr&crC2Enable == crC2Enable && ps.cr&crIRQ2 == crIRQ2 {
		return true
	}
	return false
}
