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

package joystick

import (
	"fmt"

	"github.com/jetsetilly/gopher6809/hardware/pia"
)

// Axis selects one of the four analogue inputs. The value is the same as the
// selection made by the C2 lines of the first PIA.
type Axis int

// List of valid Axis values.
const (
	RightHorizontal Axis = iota
	RightVertical
	LeftHorizontal
	LeftVertical
	NumAxes
)

func (a Axis) String() string {
	switch a {
	case RightHorizontal:
		return "right horizontal"
	case RightVertical:
		return "right vertical"
	case LeftHorizontal:
		return "left horizontal"
	case LeftVertical:
		return "left vertical"
	}
	return "unknown axis"
}

// Button is the bit pulled low on the first PIA by the fire button.
type Button uint8

// List of valid Button values.
const (
	RightButton Button = 0x01
	LeftButton  Button = 0x02
)

// Voltage range of an axis.
const (
	MinVolts = 0.0
	MaxVolts = 5.0
	Centre   = 2.5
)

// the contribution to the DAC output of bits 7 to 2 of the DAC register
var dacWeights = [6]float64{2.25, 1.125, 0.563, 0.281, 0.14, 0.07}

// DACVolts returns the output of the DAC for the value written to the PIA.
// Bits 0 and 1 of the value are ignored.
func DACVolts(value uint8) float64 {
	v := 0.0
	for i, w := range dacWeights {
		if value&(0x80>>i) != 0 {
			v += w
		}
	}
	return v
}

// Joystick is the comparator and the state of both joysticks.
type Joystick struct {
	pia1 *pia.PIA

	// the centre position used by Reset()
	Default float64

	axes    [NumAxes]float64
	buttons uint8

	dac       float64
	selection Axis
}

// NewJoystick attaches the joystick comparator to the two PIAs. The DAC is
// written through side A of pia2 and the comparator is read through side A
// of pia1.
func NewJoystick(pia1 *pia.PIA, pia2 *pia.PIA) (*Joystick, error) {
	joy := &Joystick{
		pia1:    pia1,
		Default: Centre,
	}
	if err := pia2.AddObserver(pia.SideA, joy); err != nil {
		return nil, err
	}
	pia1.SetControlObserver(pia.SideA, joy)
	pia1.SetControlObserver(pia.SideB, joy)
	joy.Reset()
	return joy, nil
}

func (joy *Joystick) String() string {
	return fmt.Sprintf("axes=%.2f,%.2f,%.2f,%.2f buttons=%02x dac=%.3f sel=%d",
		joy.axes[0], joy.axes[1], joy.axes[2], joy.axes[3], joy.buttons, joy.dac, joy.selection)
}

// Reset centres all axes and releases the buttons.
func (joy *Joystick) Reset() {
	for i := range joy.axes {
		joy.axes[i] = joy.Default
	}
	joy.buttons = 0xff
	joy.selection = 0
	if joy.pia1.ControlLevel(pia.SideA) {
		joy.selection |= 0x01
	}
	if joy.pia1.ControlLevel(pia.SideB) {
		joy.selection |= 0x02
	}
	joy.compare()
}

// OutputChanged implements the pia.Observer interface.
func (joy *Joystick) OutputChanged(_ pia.Side, value uint8) {
	joy.dac = DACVolts(value)
	joy.compare()
}

// ControlChanged implements the pia.ControlObserver interface.
func (joy *Joystick) ControlChanged(side pia.Side, level bool) {
	bit := Axis(0x01)
	if side == pia.SideB {
		bit = 0x02
	}
	if level {
		joy.selection |= bit
	} else {
		joy.selection &^= bit
	}
	joy.compare()
}

// Selection returns the axis currently selected for comparison.
func (joy *Joystick) Selection() Axis {
	return joy.selection
}

// DAC returns the current output of the DAC in volts.
func (joy *Joystick) DAC() float64 {
	return joy.dac
}

func (joy *Joystick) compare() {
	var v uint8
	if joy.dac < joy.axes[joy.selection] {
		v = 0x80
	}
	joy.pia1.InjectInput(pia.SideA, v, 0x80)
}

// Step updates the comparator output. Called by the machine after every
// instruction.
func (joy *Joystick) Step() {
	joy.compare()
}

// SetAxis sets the voltage of the axis. The value is clamped to the range
// MinVolts to MaxVolts.
func (joy *Joystick) SetAxis(axis Axis, volts float64) {
	if axis < 0 || axis >= NumAxes {
		return
	}
	if volts < MinVolts {
		volts = MinVolts
	} else if volts > MaxVolts {
		volts = MaxVolts
	}
	joy.axes[axis] = volts
	joy.compare()
}

// Axis returns the voltage of the axis.
func (joy *Joystick) Axis(axis Axis) float64 {
	if axis < 0 || axis >= NumAxes {
		return 0
	}
	return joy.axes[axis]
}

// SetButton presses or releases a fire button.
func (joy *Joystick) SetButton(b Button, pressed bool) {
	if pressed {
		joy.buttons &^= uint8(b)
	} else {
		joy.buttons |= uint8(b)
	}
	joy.pia1.InjectInput(pia.SideA, joy.buttons, uint8(b))
}

// Buttons implements the keyboard.Buttons interface.
func (joy *Joystick) Buttons() uint8 {
	return joy.buttons
}
