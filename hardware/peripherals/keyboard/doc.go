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

// Package keyboard emulates the keyboard matrix. The keyboard is wired to the
// first PIA: the CPU drives the eight columns through side B and reads the
// seven rows back through side A. A row bit reads as zero when a key in a
// driven column (column bit zero) is held down.
//
// Text can be queued with QueueKeys(). Queued keys are delivered by Service(),
// which should be called once per video field. A key event is only delivered
// once the previous event has had time to be seen by the keyboard scanning
// routine in ROM.
package keyboard
