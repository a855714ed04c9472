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

import (
	"github.com/jetsetilly/gopher6809/logger"
)

// NumBanks is the number of ROM banks.
const NumBanks = 4

type bankLayout struct {
	label  string
	origin uint16
	size   int
}

// banks are consulted in order when reading from the ROM area. the fourth
// bank is for the single 16K ROM images found in some machines and is only
// used where none of the other banks are loaded.
var layout = [NumBanks]bankLayout{
	{label: "extended basic", origin: 0x8000, size: 0x2000},
	{label: "color basic", origin: 0xa000, size: 0x2000},
	{label: "cartridge", origin: 0xc000, size: 0x3f00},
	{label: "system", origin: 0x8000, size: 0x4000},
}

type bank struct {
	data []uint8
}

func (b *bank) loaded() bool {
	return b.data != nil
}

// BankCapacity returns the maximum size of the ROM for the bank.
func BankCapacity(bank int) int {
	if bank < 0 || bank >= NumBanks {
		return 0
	}
	return layout[bank].size
}

// BankOrigin returns the CPU address of the first byte of the bank.
func BankOrigin(bank int) uint16 {
	if bank < 0 || bank >= NumBanks {
		return 0
	}
	return layout[bank].origin
}

// LoadROM places the data in the numbered bank. Data larger than the bank is
// truncated and the function returns true.
func (sam *SAM) LoadROM(bank int, data []uint8) (truncated bool) {
	l := layout[bank]
	if len(data) > l.size {
		logger.Logf(sam.perm, "sam", "%s ROM truncated from %d to %d bytes", l.label, len(data), l.size)
		data = data[:l.size]
		truncated = true
	}

	sam.banks[bank].data = make([]uint8, len(data))
	copy(sam.banks[bank].data, data)
	logger.Logf(sam.perm, "sam", "%s ROM loaded at %#04x (%d bytes)", l.label, l.origin, len(data))

	return truncated
}

// UnloadROM removes the data from the numbered bank.
func (sam *SAM) UnloadROM(bank int) {
	if sam.banks[bank].loaded() {
		logger.Logf(sam.perm, "sam", "%s ROM unloaded", layout[bank].label)
	}
	sam.banks[bank].data = nil
}

// ROMLoaded returns true if the numbered bank contains data.
func (sam *SAM) ROMLoaded(bank int) bool {
	return sam.banks[bank].loaded()
}

func (sam *SAM) readROM(address uint16) uint8 {
	for i := range sam.banks {
		b := &sam.banks[i]
		if !b.loaded() {
			continue
		}
		l := layout[i]
		if address < l.origin || int(address-l.origin) >= l.size {
			continue
		}
		if o := int(address - l.origin); o < len(b.data) {
			return b.data[o]
		}
		return 0xff
	}
	return 0xff
}
