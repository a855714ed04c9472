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

package keyboard_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6809/hardware/peripherals/keyboard"
	"github.com/jetsetilly/gopher6809/hardware/pia"
	"github.com/jetsetilly/gopher6809/test"
)

type buttons uint8

func (b buttons) Buttons() uint8 {
	return uint8(b)
}

// side B of the PIA is set to output and side A to input, which is how the
// ROM configures the keyboard PIA
func newKeyboard(t *testing.T, b keyboard.Buttons) (*pia.PIA, *keyboard.Keyboard) {
	t.Helper()
	p := pia.NewPIA("pia1")
	kb, err := keyboard.NewKeyboard(nil, p, b)
	test.DemandSuccess(t, err)
	p.WriteRegister(pia.SideB, pia.DataRegister, 0xff)
	p.WriteRegister(pia.SideB, pia.ControlRegister, 0x04)
	p.WriteRegister(pia.SideA, pia.ControlRegister, 0x04)
	return p, kb
}

func strobe(p *pia.PIA, column int) uint8 {
	p.WriteRegister(pia.SideB, pia.DataRegister, ^uint8(1<<column))
	return p.ReadRegister(pia.SideA, pia.DataRegister) & 0x7f
}

func TestLookup(t *testing.T) {
	k, shift, ok := keyboard.Lookup('a')
	test.ExpectSuccess(t, ok)
	test.ExpectFailure(t, shift)
	test.ExpectEquality(t, k, keyboard.Key{Row: 0, Column: 1})

	u, _, _ := keyboard.Lookup('A')
	test.ExpectEquality(t, u, k)

	k, shift, ok = keyboard.Lookup('8')
	test.ExpectSuccess(t, ok)
	test.ExpectFailure(t, shift)
	test.ExpectEquality(t, k, keyboard.Key{Row: 5, Column: 0})

	k, shift, ok = keyboard.Lookup('(')
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, shift)
	test.ExpectEquality(t, k, keyboard.Key{Row: 5, Column: 0})

	k, _, _ = keyboard.Lookup('?')
	test.ExpectEquality(t, k, keyboard.Key{Row: 5, Column: 7})

	k, _, _ = keyboard.Lookup('\n')
	test.ExpectEquality(t, k, keyboard.KeyEnter)

	k, _, _ = keyboard.Lookup(' ')
	test.ExpectEquality(t, k, keyboard.KeySpace)

	_, _, ok = keyboard.Lookup('~')
	test.ExpectFailure(t, ok)
}

func TestMatrix(t *testing.T) {
	p, kb := newKeyboard(t, nil)

	test.ExpectEquality(t, strobe(p, 1), 0x7f)

	kb.Press(keyboard.Key{Row: 0, Column: 1})
	test.ExpectEquality(t, strobe(p, 1), 0x7e)
	test.ExpectEquality(t, strobe(p, 2), 0x7f)

	// two keys in the same column
	kb.Press(keyboard.KeyShift)
	test.ExpectEquality(t, strobe(p, 7), 0x3f)
	kb.Press(keyboard.KeySpace)
	test.ExpectEquality(t, strobe(p, 7), 0x37)

	// pressing a key updates the rows without a new strobe
	kb.Release(keyboard.KeyShift)
	test.ExpectEquality(t, p.ReadRegister(pia.SideA, pia.DataRegister)&0x7f, 0x77)

	kb.Release(keyboard.Key{Row: 0, Column: 1})
	test.ExpectEquality(t, strobe(p, 1), 0x7f)

	// all columns driven at once
	p.WriteRegister(pia.SideB, pia.DataRegister, 0x00)
	test.ExpectEquality(t, p.ReadRegister(pia.SideA, pia.DataRegister)&0x7f, 0x77)

	// keys outside the matrix are ignored
	kb.Press(keyboard.Key{Row: 4, Column: 9})
	test.ExpectFailure(t, kb.Pressed(keyboard.Key{Row: 4, Column: 9}))

	kb.Reset()
	test.ExpectFailure(t, kb.Pressed(keyboard.KeySpace))
}

func TestButtons(t *testing.T) {
	p, _ := newKeyboard(t, buttons(0xfe))
	test.ExpectEquality(t, strobe(p, 3), 0x7e)
}

func TestQueue(t *testing.T) {
	p, kb := newKeyboard(t, nil)
	a := keyboard.Key{Row: 0, Column: 1}

	test.ExpectEquality(t, kb.QueueKeys("a~b"), 2)
	test.ExpectEquality(t, kb.Queued(), 4)

	kb.Service()
	test.ExpectSuccess(t, kb.Pressed(a))
	test.ExpectEquality(t, kb.Queued(), 3)
	test.ExpectEquality(t, strobe(p, 1), 0x7e)

	// the release waits for a few fields if the keyboard is not being scanned
	for i := 0; i < 4; i++ {
		kb.Service()
		test.ExpectSuccess(t, kb.Pressed(a))
	}
	kb.Service()
	test.ExpectFailure(t, kb.Pressed(a))
	test.ExpectEquality(t, kb.Queued(), 2)

	// the next event is delivered straight away once the keyboard has been
	// scanned often enough
	for i := 0; i < 26; i++ {
		strobe(p, i%8)
	}
	kb.Service()
	test.ExpectSuccess(t, kb.Pressed(keyboard.Key{Row: 0, Column: 2}))
}

func TestShiftedQueue(t *testing.T) {
	_, kb := newKeyboard(t, nil)
	kb.QueueKeys("!")
	kb.Service()
	test.ExpectSuccess(t, kb.Pressed(keyboard.KeyShift))
	test.ExpectSuccess(t, kb.Pressed(keyboard.Key{Row: 4, Column: 1}))
}

func TestQueueKey(t *testing.T) {
	_, kb := newKeyboard(t, nil)
	kb.QueueKey(keyboard.KeyUp, false)
	kb.QueueKey(keyboard.Key{Row: 7, Column: 0}, false)
	test.ExpectEquality(t, kb.Queued(), 2)
	kb.Service()
	test.ExpectSuccess(t, kb.Pressed(keyboard.KeyUp))
	test.ExpectFailure(t, kb.Pressed(keyboard.KeyShift))
}

func TestQueueBounded(t *testing.T) {
	_, kb := newKeyboard(t, nil)
	kb.QueueKeys(strings.Repeat("x", keyboard.QueueLength))
	test.ExpectEquality(t, kb.Queued(), keyboard.QueueLength)
}
