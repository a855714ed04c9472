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

// the scanner generates the addresses of the bytes fetched by the VDG. it
// models the divider chain of the SAM: the low counter counts bytes along a
// line, the middle counter counts lines within a row and the high counter
// counts rows.
//
// the x and y dividers for each V mode:
//
//	V	x	y	VDG mode
//	0	1	12	alphanumeric and semigraphics
//	1	3	1	CG1
//	2	1	3	CG2 and RG1
//	3	2	1	RG2
//	4	1	2	CG3
//	5	1	1	RG3
//	6	1	1	CG6 and RG6
//	7	1	1	direct memory access
type scanner struct {
	col  uint16 // address bits 0-3
	line uint16 // address bit 4
	row  uint16 // address bits 5-15

	divX uint16
	divY uint16

	// clearing the line counter on HS happens only when V0 is clear. the
	// whole reset is skipped in mode 7
	mode int
}

var dividers = [8][2]uint16{
	{1, 12}, {3, 1}, {1, 3}, {2, 1}, {1, 2}, {1, 1}, {1, 1}, {1, 1},
}

func (sc *scanner) setMode(v int) {
	sc.mode = v
	sc.divX = dividers[v][0]
	sc.divY = dividers[v][1]
}

func (sc *scanner) address() uint16 {
	return (sc.col & 0x000f) | (sc.line & 0x0010) | (sc.row & 0xffe0)
}

func (sc *scanner) increment() {
	sc.col++
	if sc.col>>4 >= sc.divX {
		sc.line += 1 << 4
		sc.col = 0
	}
	if sc.line>>5 >= sc.divY {
		sc.row += 1 << 5
		sc.line = 0
	}
}

// HSReset is called by the VDG at the start of every line.
func (sam *SAM) HSReset() {
	sc := &sam.scan
	if sc.mode == 7 {
		return
	}
	sc.col &= 0xfff0
	if sc.mode&0x01 == 0 {
		sc.line &= 0xffe0
	}
}

// FSReset is called by the VDG at the start of every field and when field
// sync begins. The next address will be the first byte of video memory.
func (sam *SAM) FSReset() {
	sc := &sam.scan
	sc.col = 0
	sc.line = 0
	sc.row = sam.DisplayOffset()
}

// VDGAddress returns the RAM address of the next byte to be displayed.
func (sam *SAM) VDGAddress() uint16 {
	return sam.scan.address()
}

// VDGFetch returns the next byte to be displayed and advances the scan
// address.
func (sam *SAM) VDGFetch() uint8 {
	v := sam.RAM[sam.scan.address()]
	sam.scan.increment()
	return v
}
