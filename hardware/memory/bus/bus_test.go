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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/gopher6809/hardware/memory/bus"
	"github.com/jetsetilly/gopher6809/test"
)

type device struct {
	value   uint8
	offset  uint16
	written uint8
}

func (d *device) area(label string, origin, memtop uint16) bus.Area {
	return bus.Area{
		Label:  label,
		Origin: origin,
		Memtop: memtop,
		Read: func(offset uint16) uint8 {
			d.offset = offset
			return d.value
		},
		Write: func(offset uint16, data uint8) {
			d.offset = offset
			d.written = data
		},
	}
}

func TestUnmapped(t *testing.T) {
	r := bus.NewRouter()
	test.ExpectEquality(t, r.Read(0x1234), bus.Unmapped)
	r.Write(0x1234, 0x55)
}

func TestOffset(t *testing.T) {
	r := bus.NewRouter()
	d := &device{value: 0x42}
	r.Register(d.area("pia", 0xff00, 0xff1f))

	test.ExpectEquality(t, r.Read(0xff03), 0x42)
	test.ExpectEquality(t, d.offset, 0x03)

	r.Write(0xff1f, 0x99)
	test.ExpectEquality(t, d.offset, 0x1f)
	test.ExpectEquality(t, d.written, 0x99)

	test.ExpectEquality(t, r.Read(0xff20), bus.Unmapped)
}

func TestRegistrationOrder(t *testing.T) {
	r := bus.NewRouter()
	first := &device{value: 0x01}
	second := &device{value: 0x02}
	r.Register(first.area("first", 0x1000, 0x1fff))
	r.Register(second.area("second", 0x1800, 0x27ff))

	// the overlapping range always resolves to the first registered device
	for a := uint16(0x1800); a <= 0x1fff; a += 0x80 {
		test.ExpectEquality(t, r.Read(a), 0x01)
	}
	test.ExpectEquality(t, r.Read(0x2000), 0x02)
	test.ExpectEquality(t, second.offset, 0x0800)

	r.Write(0x1900, 0xaa)
	test.ExpectEquality(t, first.written, 0xaa)
	test.ExpectEquality(t, second.written, 0x00)
}

func TestMissingFunctions(t *testing.T) {
	r := bus.NewRouter()

	// write-only area does not answer reads
	var written uint8
	r.Register(bus.Area{
		Label:  "sam",
		Origin: 0xffc0,
		Memtop: 0xffdf,
		Write: func(_ uint16, data uint8) {
			written = data
		},
	})
	test.ExpectEquality(t, r.Read(0xffc0), bus.Unmapped)
	r.Write(0xffc1, 0x10)
	test.ExpectEquality(t, written, 0x10)
}

func TestVectorFold(t *testing.T) {
	r := bus.NewRouter()
	rom := &device{value: 0xa0}
	r.Register(rom.area("rom", 0x8000, 0xbfff))

	test.ExpectEquality(t, r.Read(0xfffe), 0xa0)
	test.ExpectEquality(t, rom.offset, 0x3ffe)
	test.ExpectEquality(t, r.Read(0xfff2), 0xa0)
	test.ExpectEquality(t, rom.offset, 0x3ff2)

	// just below the fold is not moved
	test.ExpectEquality(t, r.Read(0xfff1), bus.Unmapped)
}

func TestVectorFunction(t *testing.T) {
	r := bus.NewRouter()
	ram := &device{value: 0x11}
	r.Register(ram.area("ram", 0x8000, 0xbfff))

	var folded uint16
	r.Vectors = func(address uint16) uint8 {
		folded = address
		return 0xb0
	}

	test.ExpectEquality(t, r.Read(0xfffe), 0xb0)
	test.ExpectEquality(t, folded, 0xbffe)

	// the same address without the fold goes to the registered area
	test.ExpectEquality(t, r.Read(0xbffe), 0x11)
	test.ExpectEquality(t, ram.offset, 0x3ffe)
}
