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

package disk

// Status is the controller's status register. The meaning of bits 1 to 7
// depends on the type of the most recent command.
type Status uint8

// status bits common to all commands.
const (
	Busy Status = 0x01
)

// status bits after a type I command (restore, seek and step).
const (
	Index      Status = 0x02
	Track00    Status = 0x04
	CRCError   Status = 0x08
	SeekError  Status = 0x10
	HeadLoaded Status = 0x20
	Protected  Status = 0x40
	NotReady   Status = 0x80
)

// status bits after a type II or type III command.
const (
	DataRequest    Status = 0x02
	LostData       Status = 0x04
	RecordNotFound Status = 0x10
	RecordType     Status = 0x20
)

func (s Status) has(f Status) bool {
	return s&f == f
}

func (s *Status) set(f Status, v bool) {
	if v {
		*s |= f
	} else {
		*s &^= f
	}
}

// bits in the drive select latch.
const (
	SelectDrive0  = 0x01
	SelectDrive1  = 0x02
	SelectDrive2  = 0x04
	SelectMotor   = 0x08
	SelectPrecomp = 0x10
	SelectDDEN    = 0x20
	SelectDrive3  = 0x40
	SelectHalt    = 0x80
)

// command codes. the low nibble of the command holds the command flags.
const (
	cmdRestore     = 0x00
	cmdSeek        = 0x10
	cmdStep        = 0x20
	cmdStepUpdate  = 0x30
	cmdStepIn      = 0x40
	cmdStepInU     = 0x50
	cmdStepOut     = 0x60
	cmdStepOutU    = 0x70
	cmdReadSector  = 0x80
	cmdReadMulti   = 0x90
	cmdWriteSector = 0xa0
	cmdWriteMulti  = 0xb0
	cmdReadAddress = 0xc0
	cmdForceIRQ    = 0xd0
	cmdReadTrack   = 0xe0
	cmdWriteTrack  = 0xf0
)

// command flags.
const (
	flagUpdate   = 0x10
	flagMulti    = 0x10
	flagHeadLoad = 0x08
	flagDelay    = 0x04
	flagIRQ      = 0x0f
)
