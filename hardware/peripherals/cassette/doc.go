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

// Package cassette plays recordings of cassette tapes into the machine.
//
// The cassette input is bit 0 of side A of the second PIA. The input follows
// the sign of the recorded waveform. The tape only moves while the cassette
// motor is running, which is controlled by the CA2 line of the same PIA.
//
// Recordings can be loaded from WAV or MP3 files. Only the first channel of
// a stereo recording is used.
package cassette
