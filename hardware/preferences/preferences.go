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

// Package preferences collates the preference values used by the emulated
// hardware. Default values can be overridden with the prefs command line
// stack, using the keys listed in this package.
package preferences

import (
	"math/rand"
	"strings"
	"time"

	"github.com/jetsetilly/gopher6809/prefs"
)

// Keys used on the command line stack.
const (
	KeyRandomState    = "hardware.randstate"
	KeyDiskWriteBack  = "disk.writeback"
	KeyJoystickCentre = "joystick.centre"
	KeySampleRate     = "audio.samplerate"
	KeyCartridgeSense = "cartridge.sense"
)

// list of default values
const (
	defaultDiskWriteBack  = true
	defaultJoystickCentre = 2.5
	defaultSampleRate     = 22050
	defaultCartridgeSense = false
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	// fill RAM with random values at power on rather than zero
	RandomState prefs.Bool

	// write changes to disk images back to the image file at the end of
	// every disk command
	DiskWriteBack prefs.Bool

	// voltage of a joystick axis that has not been moved
	JoystickCentre prefs.Float

	// rate at which the audio output is sampled
	SampleRate prefs.Int

	// pulse the cartridge interrupt line every field. required by some
	// cartridges to auto-start
	CartridgeSense prefs.Bool

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

func (p *Preferences) String() string {
	s := strings.Builder{}
	s.WriteString(KeyRandomState + " :: " + p.RandomState.String() + "\n")
	s.WriteString(KeyDiskWriteBack + " :: " + p.DiskWriteBack.String() + "\n")
	s.WriteString(KeyJoystickCentre + " :: " + p.JoystickCentre.String() + "\n")
	s.WriteString(KeySampleRate + " :: " + p.SampleRate.String() + "\n")
	s.WriteString(KeyCartridgeSense + " :: " + p.CartridgeSense.String())
	return s.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	// initialise random number generator
	p.Reseed(0)

	err := p.Reset()
	if err != nil {
		return nil, err
	}

	for _, o := range []struct {
		key  string
		pref prefs.Pref
	}{
		{KeyRandomState, &p.RandomState},
		{KeyDiskWriteBack, &p.DiskWriteBack},
		{KeyJoystickCentre, &p.JoystickCentre},
		{KeySampleRate, &p.SampleRate},
		{KeyCartridgeSense, &p.CartridgeSense},
	} {
		err = prefs.ApplyCommandLine(o.key, o.pref)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	if err := p.RandomState.Set(false); err != nil {
		return err
	}
	if err := p.DiskWriteBack.Set(defaultDiskWriteBack); err != nil {
		return err
	}
	if err := p.JoystickCentre.Set(defaultJoystickCentre); err != nil {
		return err
	}
	if err := p.SampleRate.Set(defaultSampleRate); err != nil {
		return err
	}
	return p.CartridgeSense.Set(defaultCartridgeSense)
}
