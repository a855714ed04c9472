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

package bus

import (
	"fmt"
	"strings"
)

// ReadFunc services a read from a device. The address is relative to the
// origin of the device's Area.
type ReadFunc func(offset uint16) uint8

// WriteFunc services a write to a device. The address is relative to the
// origin of the device's Area.
type WriteFunc func(offset uint16, data uint8)

// Area describes an address range and the device functions that service it.
// Either function may be nil.
type Area struct {
	Label  string
	Origin uint16
	Memtop uint16
	Read   ReadFunc
	Write  WriteFunc
}

func (a Area) String() string {
	return fmt.Sprintf("%#04x-%#04x %s", a.Origin, a.Memtop, a.Label)
}

func (a Area) contains(address uint16) bool {
	return address >= a.Origin && address <= a.Memtop
}

// addresses at or above VectorFold are moved down by VectorOffset on read.
// this puts the vectors at 0xfff2 to 0xffff into the top of the BASIC ROM.
const (
	VectorFold   = uint16(0xfff2)
	VectorOffset = uint16(0xfff2 - 0xbff2)
)

// Unmapped is the value returned by a read to an address that no device
// answers. The data bus has pull-up resistors.
const Unmapped = uint8(0xff)

// Router directs CPU reads and writes to the correct device.
type Router struct {
	areas []Area

	// Vectors services folded reads if it is not nil. The offset is the
	// folded address. Without it folded reads are routed like any other.
	Vectors ReadFunc
}

// NewRouter is the preferred method of initialisation for the Router type.
func NewRouter() *Router {
	return &Router{
		areas: make([]Area, 0, 8),
	}
}

// Register a new device area. Areas registered first take precedence.
func (r *Router) Register(a Area) {
	r.areas = append(r.areas, a)
}

// Read implements the cpu.Memory interface.
func (r *Router) Read(address uint16) uint8 {
	if address >= VectorFold {
		address -= VectorOffset
		if r.Vectors != nil {
			return r.Vectors(address)
		}
	}

	for _, a := range r.areas {
		if a.Read != nil && a.contains(address) {
			return a.Read(address - a.Origin)
		}
	}

	return Unmapped
}

// Write implements the cpu.Memory interface.
func (r *Router) Write(address uint16, data uint8) {
	for _, a := range r.areas {
		if a.Write != nil && a.contains(address) {
			a.Write(address-a.Origin, data)
			return
		}
	}
}

// Areas returns a copy of the registered areas in registration order.
func (r *Router) Areas() []Area {
	c := make([]Area, len(r.areas))
	copy(c, r.areas)
	return c
}

func (r *Router) String() string {
	s := strings.Builder{}
	for _, a := range r.areas {
		s.WriteString(a.String())
		s.WriteString("\n")
	}
	return s.String()
}
