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

// Key is a position in the keyboard matrix.
type Key struct {
	Row    int
	Column int
}

// Dimensions of the matrix.
const (
	Rows    = 7
	Columns = 8
)

// Keys without a printable character.
var (
	KeyUp    = Key{Row: 3, Column: 3}
	KeyDown  = Key{Row: 3, Column: 4}
	KeyLeft  = Key{Row: 3, Column: 5}
	KeyRight = Key{Row: 3, Column: 6}
	KeySpace = Key{Row: 3, Column: 7}
	KeyEnter = Key{Row: 6, Column: 0}
	KeyClear = Key{Row: 6, Column: 1}
	KeyBreak = Key{Row: 6, Column: 2}
	KeyShift = Key{Row: 6, Column: 7}
)

func (k Key) valid() bool {
	return k.Row >= 0 && k.Row < Rows && k.Column >= 0 && k.Column < Columns
}

type mapping struct {
	key   Key
	shift bool
}

// characters are laid out in the matrix in this order, row by row. the zero
// byte marks a position that has no character
const unshifted = "@abcdefg" +
	"hijklmno" +
	"pqrstuvw" +
	"xyz\x00\x00\x00\x00 " +
	"01234567" +
	"89:;,-./"

// the characters produced when the key is pressed with shift
const shifted = "\x00\x00\x00\x00\x00\x00\x00\x00" +
	"\x00\x00\x00\x00\x00\x00\x00\x00" +
	"\x00\x00\x00\x00\x00\x00\x00\x00" +
	"\x00\x00\x00\x00\x00\x00\x00\x00" +
	"\x00!\"#$%&'" +
	"()*+<=>?"

var characters map[rune]mapping

func init() {
	characters = make(map[rune]mapping)

	for i, r := range unshifted {
		if r == 0 {
			continue
		}
		k := Key{Row: i / Columns, Column: i % Columns}
		characters[r] = mapping{key: k}

		// upper and lower case letters are the same key
		if r >= 'a' && r <= 'z' {
			characters[r-'a'+'A'] = mapping{key: k}
		}
	}

	for i, r := range shifted {
		if r == 0 {
			continue
		}
		characters[r] = mapping{key: Key{Row: i / Columns, Column: i % Columns}, shift: true}
	}

	characters['\n'] = mapping{key: KeyEnter}
	characters['\r'] = mapping{key: KeyEnter}
	characters['\b'] = mapping{key: KeyLeft}
	characters['\x1b'] = mapping{key: KeyBreak}
	characters['\x0c'] = mapping{key: KeyClear}
}

// Lookup returns the matrix position of the key that produces the character
// and whether shift must also be held. The final value is false if no key
// produces the character.
func Lookup(r rune) (Key, bool, bool) {
	m, ok := characters[r]
	return m.key, m.shift, ok
}
