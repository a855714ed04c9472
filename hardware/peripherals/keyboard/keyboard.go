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

package keyboard

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6809/hardware/pia"
	"github.com/jetsetilly/gopher6809/logger"
)

// QueueLength is the maximum number of key events waiting for delivery. When
// the queue is full the oldest event is dropped.
const QueueLength = 2000

// after a key event is delivered the next event waits for this many fields,
// unless the keyboard has been scanned at least scanThreshold times
const (
	holdFields    = 4
	scanThreshold = 24
)

// Buttons is implemented by peripherals that share the row inputs with the
// keyboard. Bits that are zero in the returned value read as zero on the
// row inputs whatever the state of the keyboard.
type Buttons interface {
	Buttons() uint8
}

type event struct {
	key     Key
	shift   bool
	pressed bool
}

// Keyboard is the keyboard matrix and the queue of pending key events.
type Keyboard struct {
	perm    logger.Permission
	pia     *pia.PIA
	buttons Buttons

	// bit set for each column of the row that is held down
	matrix [Rows]uint8

	// most recent column output from the PIA
	columns uint8

	// number of times the column output has changed since the last key event
	scans int

	queue      [QueueLength]event
	queueStart int
	queueLen   int

	// fields since the last delivered event. zero when no event is being held
	hold int
}

// NewKeyboard attaches a keyboard to the PIA. The buttons argument can be nil.
func NewKeyboard(perm logger.Permission, p *pia.PIA, buttons Buttons) (*Keyboard, error) {
	kb := &Keyboard{
		perm:    perm,
		pia:     p,
		buttons: buttons,
	}
	if err := p.AddObserver(pia.SideB, kb); err != nil {
		return nil, err
	}
	return kb, nil
}

func (kb *Keyboard) String() string {
	var s strings.Builder
	for r := range kb.matrix {
		s.WriteString(fmt.Sprintf("%08b ", kb.matrix[r]))
	}
	s.WriteString(fmt.Sprintf("queued=%d", kb.queueLen))
	return s.String()
}

// Reset releases all keys. Queued events are not discarded.
func (kb *Keyboard) Reset() {
	kb.matrix = [Rows]uint8{}
	kb.columns = 0
	kb.scans = 0
	kb.hold = 0
}

// OutputChanged implements the pia.Observer interface.
func (kb *Keyboard) OutputChanged(_ pia.Side, value uint8) {
	if value != kb.columns {
		kb.scans++
	}
	kb.columns = value
	kb.update()
}

// Rows returns the row value for the current column output.
func (kb *Keyboard) Rows() uint8 {
	v := uint8(0x7f)
	for r := range kb.matrix {
		if kb.matrix[r]&^kb.columns != 0 {
			v &^= 1 << r
		}
	}
	if kb.buttons != nil {
		v &= kb.buttons.Buttons()
	}
	return v
}

func (kb *Keyboard) update() {
	kb.pia.InjectInput(pia.SideA, kb.Rows(), 0x7f)
}

func (kb *Keyboard) set(k Key, pressed bool) {
	if pressed {
		kb.matrix[k.Row] |= 1 << k.Column
	} else {
		kb.matrix[k.Row] &^= 1 << k.Column
	}
}

// Press holds down the key. Keys outside the matrix are ignored.
func (kb *Keyboard) Press(k Key) {
	if !k.valid() {
		return
	}
	kb.set(k, true)
	kb.update()
}

// Release lets go of the key.
func (kb *Keyboard) Release(k Key) {
	if !k.valid() {
		return
	}
	kb.set(k, false)
	kb.update()
}

// Pressed returns true if the key is held down.
func (kb *Keyboard) Pressed(k Key) bool {
	if !k.valid() {
		return false
	}
	return kb.matrix[k.Row]&(1<<k.Column) != 0
}

func (kb *Keyboard) push(e event) {
	if kb.queueLen == QueueLength {
		kb.queueStart = (kb.queueStart + 1) % QueueLength
		kb.queueLen--
	}
	kb.queue[(kb.queueStart+kb.queueLen)%QueueLength] = e
	kb.queueLen++
}

func (kb *Keyboard) pop() event {
	e := kb.queue[kb.queueStart]
	kb.queueStart = (kb.queueStart + 1) % QueueLength
	kb.queueLen--
	return e
}

// QueueKeys adds a press and a release event for every character in the
// string. Characters that no key produces are logged and skipped. Returns the
// number of characters queued.
func (kb *Keyboard) QueueKeys(s string) int {
	n := 0
	for _, r := range s {
		k, shift, ok := Lookup(r)
		if !ok {
			logger.Logf(kb.perm, "keyboard", "no key for %q", r)
			continue
		}
		kb.QueueKey(k, shift)
		n++
	}
	return n
}

// QueueKey adds a press and a release event for the key, with or without
// shift.
func (kb *Keyboard) QueueKey(k Key, shift bool) {
	if !k.valid() {
		return
	}
	kb.push(event{key: k, shift: shift, pressed: true})
	kb.push(event{key: k, shift: shift, pressed: false})
}

// Queued returns the number of events waiting for delivery.
func (kb *Keyboard) Queued() int {
	return kb.queueLen
}

// Service delivers at most one queued event. It should be called once per
// video field.
func (kb *Keyboard) Service() {
	if kb.hold > holdFields {
		kb.hold = 0
	}
	if kb.hold > 0 {
		kb.hold++
	}

	if kb.queueLen == 0 || (kb.hold > 0 && kb.scans <= scanThreshold) {
		return
	}

	e := kb.pop()
	kb.set(e.key, e.pressed)
	if e.shift {
		kb.set(KeyShift, e.pressed)
	} else if e.pressed {
		kb.set(KeyShift, false)
	}
	kb.scans = 0
	kb.hold = 1
	kb.update()
}
