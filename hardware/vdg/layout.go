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

package vdg

// Zone is a part of a line.
type Zone int

// List of Zone values.
const (
	HSync Zone = iota
	LeftBorder
	Active
	RightBorder
)

func (z Zone) String() string {
	switch z {
	case HSync:
		return "hsync"
	case LeftBorder:
		return "left border"
	case Active:
		return "active"
	case RightBorder:
		return "right border"
	}
	return "unknown zone"
}

// length of each zone in nanoseconds.
const (
	HSyncNs       = uint64(4749)
	LeftBorderNs  = uint64(11733)
	SlotNs        = uint64(1117)
	RightBorderNs = uint64(11469)
	LineNs        = HSyncNs + LeftBorderNs + SlotNs*SlotsPerLine + RightBorderNs
)

// vertical layout of a field.
const (
	LinesPerField  = 262
	BlankLines     = 13
	TopBorder      = 25
	ActiveLines    = 192
	BottomBorder   = 26
	RetraceLines   = 6
	FirstActive    = BlankLines + TopBorder
	LastActive     = FirstActive + ActiveLines - 1
	FieldSyncStart = LinesPerField - RetraceLines
)

// dimensions of the display.
const (
	SlotsPerLine = 32
	Width        = SlotsPerLine * 8
	Height       = ActiveLines
)
