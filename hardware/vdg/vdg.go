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

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jetsetilly/gopher6809/hardware/pia"
	"github.com/jetsetilly/gopher6809/logger"
)

// Memory is the interface to the SAM used by the VDG to fetch display data.
type Memory interface {
	HSReset()
	FSReset()
	VDGFetch() uint8
}

// bits of the mode value. the mode is the PIA output shifted right by three.
const (
	ModeCSS      = 0x01
	ModeGM       = 0x0e
	ModeGraphics = 0x10
)

// Geometry describes the resolution of a display mode.
type Geometry struct {
	Graphics bool
	Width    int
	Height   int
}

func (g Geometry) String() string {
	if g.Graphics {
		return fmt.Sprintf("graphics %dx%d", g.Width, g.Height)
	}
	return fmt.Sprintf("text %dx%d", g.Width, g.Height)
}

// resolution of each of the graphics modes, indexed by GM.
var graphicsGeometry = [8]Geometry{
	{true, 64, 64},
	{true, 128, 64},
	{true, 128, 64},
	{true, 128, 96},
	{true, 128, 96},
	{true, 128, 192},
	{true, 128, 192},
	{true, 256, 192},
}

// ModeGeometry returns the geometry of the mode.
func ModeGeometry(mode uint8) Geometry {
	if mode&ModeGraphics == 0 {
		return Geometry{Width: 32, Height: 16}
	}
	return graphicsGeometry[(mode&ModeGM)>>1]
}

// VDG implements the MC6847.
type VDG struct {
	perm logger.Permission
	mem  Memory

	// the mode as most recently set by the PIA
	Mode uint8

	zone Zone
	line int
	slot int

	hs bool
	fs bool

	// geometry at the end of the previous field
	geometry Geometry

	// number of completed fields
	Fields uint64

	// the active area of the display
	Framebuffer *image.RGBA
}

// NewVDG is the preferred method of initialisation for the VDG type.
func NewVDG(perm logger.Permission, mem Memory) *VDG {
	return &VDG{
		perm:        perm,
		mem:         mem,
		geometry:    ModeGeometry(0),
		Framebuffer: image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
}

func (vdg *VDG) String() string {
	return fmt.Sprintf("line=%d %s mode=%02x", vdg.line, vdg.zone, vdg.Mode)
}

// OutputChanged implements the pia.Observer interface.
func (vdg *VDG) OutputChanged(_ pia.Side, value uint8) {
	vdg.Mode = value >> 3
}

// Line returns the current line number.
func (vdg *VDG) Line() int {
	return vdg.line
}

// Zone returns the current zone of the line.
func (vdg *VDG) Zone() Zone {
	return vdg.zone
}

// InHSync returns true while the horizontal sync pulse is active.
func (vdg *VDG) InHSync() bool {
	return vdg.hs
}

// InFieldSync returns true while the field sync pulse is active.
func (vdg *VDG) InFieldSync() bool {
	return vdg.fs
}

// HS returns the level of the HS pin. The pin is low during the pulse.
func (vdg *VDG) HS() bool {
	return !vdg.hs
}

// FS returns the level of the FS pin. The pin is low during the pulse.
func (vdg *VDG) FS() bool {
	return !vdg.fs
}

// StartField begins a new field. Returns the delay before the next call to
// Advance().
func (vdg *VDG) StartField() uint64 {
	vdg.line = 0
	vdg.fs = false
	vdg.mem.FSReset()
	return vdg.startLine()
}

func (vdg *VDG) startLine() uint64 {
	vdg.zone = HSync
	vdg.hs = true
	vdg.mem.HSReset()
	if vdg.line == FieldSyncStart {
		vdg.fs = true
		vdg.mem.FSReset()
	}
	return HSyncNs
}

// Advance moves the VDG to its next event. Returns the delay before the next
// call. A return value of zero means that the field has been completed.
func (vdg *VDG) Advance() uint64 {
	switch vdg.zone {
	case HSync:
		vdg.hs = false
		vdg.zone = LeftBorder
		return LeftBorderNs

	case LeftBorder:
		vdg.zone = Active
		if vdg.line < FirstActive || vdg.line > LastActive {
			return SlotNs * SlotsPerLine
		}
		vdg.slot = 0
		vdg.fetch()
		return SlotNs

	case Active:
		if vdg.line >= FirstActive && vdg.line <= LastActive && vdg.slot < SlotsPerLine-1 {
			vdg.slot++
			vdg.fetch()
			return SlotNs
		}
		vdg.zone = RightBorder
		return RightBorderNs

	case RightBorder:
		vdg.line++
		if vdg.line >= LinesPerField {
			return 0
		}
		return vdg.startLine()
	}

	return 0
}

// EndField completes the field. Returns true if the geometry of the display
// has changed since the previous field.
func (vdg *VDG) EndField() bool {
	vdg.Fields++
	g := ModeGeometry(vdg.Mode)
	if g != vdg.geometry {
		logger.Logf(vdg.perm, "vdg", "geometry changed: %s", g)
		vdg.geometry = g
		return true
	}
	return false
}

// Geometry returns the geometry of the display at the end of the most recent
// field.
func (vdg *VDG) Geometry() Geometry {
	return vdg.geometry
}

// sixteen byte modes fetch one byte for every two slots.
func (vdg *VDG) sixteenByte() bool {
	if vdg.Mode&ModeGraphics == 0 {
		return false
	}
	switch (vdg.Mode & ModeGM) >> 1 {
	case 0, 1, 3, 5:
		return true
	}
	return false
}

// fetch the byte for the current slot and draw it.
func (vdg *VDG) fetch() {
	y := vdg.line - FirstActive
	x := vdg.slot * 8

	if vdg.sixteenByte() {
		if vdg.slot&0x01 == 0x01 {
			return
		}
		vdg.graphics(x, y, 16, vdg.mem.VDGFetch())
		return
	}

	data := vdg.mem.VDGFetch()
	if vdg.Mode&ModeGraphics == ModeGraphics {
		vdg.graphics(x, y, 8, data)
	} else {
		vdg.alphanumeric(x, y, data)
	}
}

func (vdg *VDG) set(x, y int, c color.RGBA) {
	vdg.Framebuffer.SetRGBA(x, y, c)
}

// alphanumeric draws one character row of the byte. characters are twelve
// lines high.
func (vdg *VDG) alphanumeric(x int, y int, data uint8) {
	row := y % 12

	if data&0x80 == 0x80 {
		// semigraphics four. the top and bottom halves of the character are
		// controlled by bits 3-2 and bits 1-0
		fg := Palette[(data>>4)&0x07]
		bits := data & 0x03
		if row < 6 {
			bits = (data >> 2) & 0x03
		}
		for i := 0; i < 8; i++ {
			c := Palette[Black]
			if (i < 4 && bits&0x02 == 0x02) || (i >= 4 && bits&0x01 == 0x01) {
				c = fg
			}
			vdg.set(x+i, y, c)
		}
		return
	}

	fg := Palette[Green]
	bg := Palette[DarkGreen]
	if vdg.Mode&ModeCSS == ModeCSS {
		fg = Palette[Orange]
		bg = Palette[DarkOrange]
	}

	var mask uint8
	if row >= 3 && row < 10 {
		mask = charset[int(data&0x3f)*7+row-3] << 2
	}

	// characters below 64 are drawn inverted
	if data&0x40 == 0x00 {
		mask ^= 0xff
	}

	for i := 0; i < 8; i++ {
		if mask&(1<<i) != 0 {
			vdg.set(x+i, y, bg)
		} else {
			vdg.set(x+i, y, fg)
		}
	}
}

// graphics draws a byte in either of the graphics modes. width is the number
// of screen pixels covered by the byte.
func (vdg *VDG) graphics(x int, y int, width int, data uint8) {
	css := int(vdg.Mode & ModeCSS)

	// colour graphics have two bits per pixel, resolution graphics one
	if vdg.Mode&0x02 == 0x00 {
		w := width / 4
		for p := 0; p < 4; p++ {
			c := Palette[css*4+int(data>>6)]
			for i := 0; i < w; i++ {
				vdg.set(x+p*w+i, y, c)
			}
			data <<= 2
		}
		return
	}

	fg := Palette[Green]
	if css == 1 {
		fg = Palette[Buff]
	}
	w := width / 8
	for p := 0; p < 8; p++ {
		c := Palette[Black]
		if data&0x80 == 0x80 {
			c = fg
		}
		for i := 0; i < w; i++ {
			vdg.set(x+p*w+i, y, c)
		}
		data <<= 1
	}
}
