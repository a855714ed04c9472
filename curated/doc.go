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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function. The pattern string
// is kept with the error so that callers can test for a specific error with
// the Is() and Has() functions, without resorting to string comparisons of
// the formatted message.
//
// Curated errors can be wrapped by other curated errors by using the %v verb
// in the pattern. Adjacent parts of the error message that are identical are
// removed when the message is formatted. For example:
//
//	a := curated.Errorf("disk: %v", "sector not found")
//	b := curated.Errorf("disk: %v", a)
//
// b.Error() will return "disk: sector not found" rather than
// "disk: disk: sector not found".
package curated
