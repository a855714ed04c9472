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

package terminal

import (
	"github.com/jetsetilly/gopher6809/hardware/peripherals/keyboard"
)

// Event is a single decoded key press.
type Event struct {
	Key   keyboard.Key
	Shift bool

	// the user has asked to quit
	Quit bool
}

// control codes
const (
	ctrlC     = 0x03
	backspace = 0x08
	ctrlL     = 0x0c
	escape    = 0x1b
	del       = 0x7f
)

var cursorKeys = map[byte]keyboard.Key{
	'A': keyboard.KeyUp,
	'B': keyboard.KeyDown,
	'C': keyboard.KeyRight,
	'D': keyboard.KeyLeft,
}

// Decode translates the bytes read from the terminal into key events. Bytes
// that do not correspond to a key are dropped.
func Decode(b []byte) []Event {
	var ev []Event

	for i := 0; i < len(b); i++ {
		switch b[i] {
		case ctrlC:
			ev = append(ev, Event{Quit: true})
			continue
		case backspace, del:
			ev = append(ev, Event{Key: keyboard.KeyLeft})
			continue
		case ctrlL:
			ev = append(ev, Event{Key: keyboard.KeyClear})
			continue
		case escape:
			// cursor keys are sent as ESC [ A to ESC [ D
			if i+2 < len(b) && b[i+1] == '[' {
				if k, ok := cursorKeys[b[i+2]]; ok {
					ev = append(ev, Event{Key: k})
					i += 2
					continue
				}
			}
			ev = append(ev, Event{Key: keyboard.KeyBreak})
			continue
		}

		if k, shift, ok := keyboard.Lookup(rune(b[i])); ok {
			ev = append(ev, Event{Key: k, Shift: shift})
		}
	}

	return ev
}
