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

// Package sound samples the audio output of the machine.
//
// The six bit DAC on the second PIA is routed to the audio output when the
// sound enable line (CB2 of the second PIA) is high and the analogue
// multiplexer, selected by the C2 lines of the first PIA, is set to the DAC.
// Otherwise the output is the single bit sound source on bit 1 of side B of
// the second PIA.
//
// The output is sampled at a fixed rate against the virtual clock and handed
// to a Mixer once per video field.
package sound
