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
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher6809/curated"
	"github.com/pkg/term"
)

// DefaultDevice is the terminal device opened by Open() if no device is
// given.
const DefaultDevice = "/dev/tty"

// ANSI sequences
const (
	clearScreen = "\033[2J"
	cursorHome  = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Terminal is the raw mode terminal and the goroutine reading from it.
type Terminal struct {
	tty    *term.Term
	output io.Writer

	events chan Event

	// the previous screen drawn by Render()
	previous []string
}

// Open the terminal device in raw mode and start reading key presses. Output
// is written to the output argument.
func Open(device string, output io.Writer) (*Terminal, error) {
	if device == "" {
		device = DefaultDevice
	}

	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	tm := &Terminal{
		tty:    tty,
		output: output,
		events: make(chan Event, 64),
	}

	go tm.read()

	fmt.Fprint(tm.output, clearScreen+hideCursor)

	return tm, nil
}

func (tm *Terminal) read() {
	defer close(tm.events)

	buf := make([]byte, 16)
	for {
		n, err := tm.tty.Read(buf)
		if err != nil {
			return
		}
		for _, ev := range Decode(buf[:n]) {
			tm.events <- ev
		}
	}
}

// Events returns the channel of decoded key presses. The channel is closed
// when the terminal can no longer be read.
func (tm *Terminal) Events() <-chan Event {
	return tm.events
}

// Render draws the rows of text at the top of the terminal. Nothing is drawn
// if the rows are the same as the previous call.
func (tm *Terminal) Render(rows []string) {
	if len(rows) == len(tm.previous) {
		same := true
		for i := range rows {
			if rows[i] != tm.previous[i] {
				same = false
				break
			}
		}
		if same {
			return
		}
	}
	tm.previous = append(tm.previous[:0], rows...)

	var s strings.Builder
	s.WriteString(cursorHome)
	for _, r := range rows {
		s.WriteString(r)
		s.WriteString("\r\n")
	}
	fmt.Fprint(tm.output, s.String())
}

// Status prints a line of text under the screen.
func (tm *Terminal) Status(s string) {
	fmt.Fprintf(tm.output, "\033[%d;1H\033[K%s", len(tm.previous)+2, s)
}

// Close restores the terminal to the mode it was in before Open().
func (tm *Terminal) Close() error {
	fmt.Fprint(tm.output, showCursor+"\r\n")
	if err := tm.tty.Restore(); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	if err := tm.tty.Close(); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}
