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

// Package clocks defines the constant values that define the speed of the
// main clock and the virtual time base shared by all parts of the emulation.
//
// The master crystal of the machine runs at 14.31818MHz. The CPU, the SAM and
// the VDG all derive their clocks from it. Virtual time is measured in
// nanoseconds and is advanced only by the CPU.
//
// Values taken from the MC6883 and MC6847 datasheets.
package clocks

import "time"

// frequencies in MHz.
const (
	Master = 14.31818
	CPU    = Master / 16
	VDG    = Master / 4
)

// CycleNanoseconds is the length of one CPU cycle in nanoseconds.
const CycleNanoseconds = 1117

// VDGNanoseconds is the length of one VDG clock in nanoseconds. the VDG
// produces two pixels per clock in the highest resolution modes.
const VDGNanoseconds = 279

// Second is the number of nanoseconds in one second.
const Second = uint64(time.Second)

// Source is the interface to a clock that counts nanoseconds. The value
// returned by Nanoseconds() should never decrease.
type Source interface {
	Nanoseconds() uint64
}

// Monotonic is a Source measuring elapsed wall-clock time since it was
// created.
type Monotonic struct {
	start time.Time
}

// NewMonotonic is the preferred method of initialisation for the Monotonic
// type.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Nanoseconds implements the Source interface.
func (m *Monotonic) Nanoseconds() uint64 {
	return uint64(time.Since(m.start))
}

// Manual is a Source which only changes when it is told to. Useful for
// testing and for running the emulation without reference to real time.
type Manual struct {
	Now uint64
}

// Nanoseconds implements the Source interface.
func (m *Manual) Nanoseconds() uint64 {
	return m.Now
}
