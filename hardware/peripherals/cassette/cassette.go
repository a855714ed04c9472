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

package cassette

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopher6809/hardware/pia"
	"github.com/jetsetilly/gopher6809/logger"
)

// Cassette is the tape deck.
type Cassette struct {
	perm logger.Permission
	pia  *pia.PIA

	// name of the loaded recording. empty if the recording was not loaded
	// from a file
	Filename string

	rec Recording

	motor bool

	// nanoseconds of tape played
	position uint64

	// virtual time of the previous call to Step()
	last uint64

	ended bool
}

// NewCassette attaches the tape deck to side A of the PIA.
func NewCassette(perm logger.Permission, p *pia.PIA) *Cassette {
	c := &Cassette{
		perm: perm,
		pia:  p,
	}
	p.SetControlObserver(pia.SideA, c)
	return c
}

func (c *Cassette) String() string {
	if !c.Loaded() {
		return "no tape"
	}
	return fmt.Sprintf("%s %v/%.1fs motor=%v", c.Filename, c.Position().Round(time.Millisecond), c.rec.Seconds(), c.motor)
}

// Load decodes the file and inserts it as a new tape. The tape is rewound.
func (c *Cassette) Load(filename string) error {
	rec, err := Decode(filename)
	if err != nil {
		return err
	}
	c.Insert(rec)
	c.Filename = filename
	logger.Logf(c.perm, "cassette", "loaded %s (%.1fs at %.0fHz)", filename, rec.Seconds(), rec.SampleRate)
	return nil
}

// Insert a recording as a new tape. The tape is rewound.
func (c *Cassette) Insert(rec Recording) {
	c.rec = rec
	c.Filename = ""
	c.Rewind()
}

// Eject removes the tape.
func (c *Cassette) Eject() {
	c.Insert(Recording{})
}

// Rewind moves the tape back to the start.
func (c *Cassette) Rewind() {
	c.position = 0
	c.ended = false
}

// Reset stops the motor. The tape is not rewound.
func (c *Cassette) Reset() {
	c.motor = false
}

// Resync sets the virtual time of the previous call to Step() without moving
// the tape. Used when the virtual clock jumps forward.
func (c *Cassette) Resync(now uint64) {
	c.last = now
}

// Loaded returns true if a tape is inserted.
func (c *Cassette) Loaded() bool {
	return len(c.rec.Data) > 0 && c.rec.SampleRate > 0
}

// Motor returns true if the motor is running.
func (c *Cassette) Motor() bool {
	return c.motor
}

// Position returns the amount of tape played.
func (c *Cassette) Position() time.Duration {
	return time.Duration(c.position)
}

// ControlChanged implements the pia.ControlObserver interface.
func (c *Cassette) ControlChanged(_ pia.Side, level bool) {
	if c.motor == level {
		return
	}
	c.motor = level
	if c.Loaded() {
		logger.Logf(c.perm, "cassette", "motor %v at %v", level, c.Position().Round(time.Millisecond))
	}
}

// Step advances the tape to the virtual time now and updates the cassette
// input. Called by the machine after every instruction.
func (c *Cassette) Step(now uint64) {
	delta := now - c.last
	if now < c.last {
		delta = 0
	}
	c.last = now

	if !c.motor || !c.Loaded() || c.ended {
		return
	}

	c.position += delta
	idx := int(float64(c.position) * c.rec.SampleRate / 1e9)
	if idx >= len(c.rec.Data) {
		c.ended = true
		logger.Log(c.perm, "cassette", "end of tape")
		return
	}

	var v uint8
	if c.rec.Data[idx] > 0 {
		v = 0x01
	}
	c.pia.InjectInput(pia.SideA, v, 0x01)
}
