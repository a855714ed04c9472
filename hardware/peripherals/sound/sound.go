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

package sound

import (
	"fmt"

	"github.com/jetsetilly/gopher6809/hardware/clocks"
	"github.com/jetsetilly/gopher6809/hardware/pia"
)

// DefaultSampleRate is the sample rate used if NewSound() is given a rate of
// zero or less.
const DefaultSampleRate = 22050

// Mixer receives the sampled audio. Each sample is an unsigned eight bit
// value with silence at zero. The slice passed to SetAudio() is reused once
// the function returns.
type Mixer interface {
	SetAudio(samples []uint8) error
	EndMixing() error
}

// Sound samples the audio output of the machine.
type Sound struct {
	pia1 *pia.PIA
	pia2 *pia.PIA

	mixer Mixer

	sampleRate int

	// nanoseconds between samples
	period uint64

	// virtual time of the next sample. zero if sampling has not started
	next uint64

	buffer []uint8
}

// NewSound creates a sampler for the audio output of the two PIAs.
func NewSound(pia1 *pia.PIA, pia2 *pia.PIA, sampleRate int) *Sound {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Sound{
		pia1:       pia1,
		pia2:       pia2,
		sampleRate: sampleRate,
		period:     clocks.Second / uint64(sampleRate),
		buffer:     make([]uint8, 0, sampleRate/25),
	}
}

func (snd *Sound) String() string {
	return fmt.Sprintf("%dHz level=%02x enabled=%v", snd.sampleRate, snd.Level(), snd.Enabled())
}

// SampleRate returns the number of samples per second of virtual time.
func (snd *Sound) SampleRate() int {
	return snd.sampleRate
}

// AttachMixer sets the destination of the sampled audio. A nil value stops
// sampling.
func (snd *Sound) AttachMixer(m Mixer) {
	snd.mixer = m
	snd.next = 0
	snd.buffer = snd.buffer[:0]
}

// Enabled returns the state of the sound enable line.
func (snd *Sound) Enabled() bool {
	return snd.pia2.ControlLevel(pia.SideB)
}

// the multiplexer selects the DAC when both select lines are low
func (snd *Sound) dacSelected() bool {
	return !snd.pia1.ControlLevel(pia.SideA) && !snd.pia1.ControlLevel(pia.SideB)
}

// Level returns the current output level.
func (snd *Sound) Level() uint8 {
	if snd.Enabled() && snd.dacSelected() {
		return snd.pia2.Output(pia.SideA) & 0xfc
	}
	if snd.pia2.Output(pia.SideB)&0x02 == 0x02 {
		return 0xfc
	}
	return 0
}

// Step takes as many samples as are due at the virtual time now. Called by
// the machine after every instruction.
func (snd *Sound) Step(now uint64) {
	if snd.mixer == nil {
		return
	}
	if snd.next == 0 {
		snd.next = now
	}
	if now < snd.next {
		return
	}
	l := snd.Level()
	for snd.next <= now {
		snd.buffer = append(snd.buffer, l)
		snd.next += snd.period
	}
}

// Resync forgets any samples due before the virtual time now. Used when the
// virtual clock jumps forward.
func (snd *Sound) Resync(now uint64) {
	snd.next = now
}

// EndField sends the samples taken since the previous call to the mixer.
func (snd *Sound) EndField() error {
	if snd.mixer == nil || len(snd.buffer) == 0 {
		return nil
	}
	err := snd.mixer.SetAudio(snd.buffer)
	snd.buffer = snd.buffer[:0]
	return err
}

// EndMixing sends any remaining samples to the mixer and tells it that no
// more audio is coming.
func (snd *Sound) EndMixing() error {
	if snd.mixer == nil {
		return nil
	}
	if err := snd.EndField(); err != nil {
		return err
	}
	return snd.mixer.EndMixing()
}
