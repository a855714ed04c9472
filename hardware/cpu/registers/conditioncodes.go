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

package registers

import (
	"strings"
)

// ConditionCodes is the CC register.
type ConditionCodes struct {
	// entire state was stacked
	E bool

	// FIRQ mask
	F bool

	// half carry. only changed by 8 bit additions
	H bool

	// IRQ mask
	I bool

	N bool
	Z bool
	V bool
	C bool
}

// bits of the CC register.
const (
	CCCarry    = 0x01
	CCOverflow = 0x02
	CCZero     = 0x04
	CCNegative = 0x08
	CCIRQ      = 0x10
	CCHalf     = 0x20
	CCFIRQ     = 0x40
	CCEntire   = 0x80
)

func (cc ConditionCodes) String() string {
	s := strings.Builder{}
	flag := func(v bool, r rune) {
		if v {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + 'a' - 'A')
		}
	}
	flag(cc.E, 'E')
	flag(cc.F, 'F')
	flag(cc.H, 'H')
	flag(cc.I, 'I')
	flag(cc.N, 'N')
	flag(cc.Z, 'Z')
	flag(cc.V, 'V')
	flag(cc.C, 'C')
	return s.String()
}

// Value returns the CC register as a byte.
func (cc ConditionCodes) Value() uint8 {
	var v uint8
	if cc.E {
		v |= CCEntire
	}
	if cc.F {
		v |= CCFIRQ
	}
	if cc.H {
		v |= CCHalf
	}
	if cc.I {
		v |= CCIRQ
	}
	if cc.N {
		v |= CCNegative
	}
	if cc.Z {
		v |= CCZero
	}
	if cc.V {
		v |= CCOverflow
	}
	if cc.C {
		v |= CCCarry
	}
	return v
}

// Load sets all flags from a byte.
func (cc *ConditionCodes) Load(v uint8) {
	cc.E = v&CCEntire == CCEntire
	cc.F = v&CCFIRQ == CCFIRQ
	cc.H = v&CCHalf == CCHalf
	cc.I = v&CCIRQ == CCIRQ
	cc.N = v&CCNegative == CCNegative
	cc.Z = v&CCZero == CCZero
	cc.V = v&CCOverflow == CCOverflow
	cc.C = v&CCCarry == CCCarry
}

// SetNZ8 sets the N and Z flags for an 8 bit result.
func (cc *ConditionCodes) SetNZ8(v uint8) {
	cc.N = v&0x80 == 0x80
	cc.Z = v == 0
}

// SetNZ16 sets the N and Z flags for a 16 bit result.
func (cc *ConditionCodes) SetNZ16(v uint16) {
	cc.N = v&0x8000 == 0x8000
	cc.Z = v == 0
}
