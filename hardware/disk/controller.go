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

import (
	"fmt"

	"github.com/jetsetilly/gopher6809/logger"
)

// NumDrives is the number of drives attached to the controller.
const NumDrives = 4

// timing of the controller in nanoseconds.
const (
	ByteDelay  = uint64(32000)
	HeadSettle = uint64(15000000)
)

// step rates selected by the low two bits of a type I command.
var stepRates = [4]uint64{6000000, 12000000, 20000000, 30000000}

// phase is the step the controller will take when the pending delay
// expires.
type phase int

const (
	phaseIdle phase = iota
	phaseSeeking
	phaseReadingSector
	phaseWritingSector
	phaseReadingAddress
	phaseWritingTrack
	phaseEnding
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseSeeking:
		return "seeking"
	case phaseReadingSector:
		return "reading sector"
	case phaseWritingSector:
		return "writing sector"
	case phaseReadingAddress:
		return "reading address"
	case phaseWritingTrack:
		return "writing track"
	case phaseEnding:
		return "ending"
	}
	return "unknown phase"
}

// Controller implements the WD1793 and the drive select latch.
type Controller struct {
	perm logger.Permission

	Status  Status
	Command uint8
	Track   uint8
	Sector  uint8
	Data    uint8

	// the drive select latch
	Select uint8

	irq bool

	// target track of a seek and the direction of the most recent step
	target    uint8
	direction int

	// position of the next byte in the sector. negative values are used
	// while waiting for the ID field of a sector
	pos int

	// the single pending step and its delay. newSchedule is true when the
	// delay has not been collected by TakeSchedule()
	phase       phase
	delay       uint64
	newSchedule bool

	drives [NumDrives]*Image

	// write changed image data to the file at the end of every write
	// command. if false data is written when the image is unloaded
	WriteBack bool
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(perm logger.Permission) *Controller {
	fdc := &Controller{
		perm:      perm,
		direction: 1,
		WriteBack: true,
	}
	fdc.Reset()
	return fdc
}

func (fdc *Controller) String() string {
	return fmt.Sprintf("cmd=%02x trk=%02x sec=%02x dat=%02x st=%02x sel=%02x %s",
		fdc.Command, fdc.Track, fdc.Sector, fdc.Data, uint8(fdc.Status), fdc.Select, fdc.phase)
}

// Reset the controller. The drive heads are returned to track zero.
func (fdc *Controller) Reset() {
	fdc.cancel()
	fdc.irq = false
	fdc.Select = 0
	fdc.Status = 0
	fdc.Command = cmdRestore | 0x03
	fdc.Sector = 1
	fdc.target = 0
	fdc.clearTypeI()
	fdc.schedule(fdc.seek())
}

// IRQ returns the state of the interrupt request output.
func (fdc *Controller) IRQ() bool {
	return fdc.irq
}

// DoubleDensity returns the state of the DDEN bit of the drive select latch.
func (fdc *Controller) DoubleDensity() bool {
	return fdc.Select&SelectDDEN == SelectDDEN
}

// NMI returns the state of the NMI line driven by the interface. The IRQ
// output of the controller is gated by the DDEN bit.
func (fdc *Controller) NMI() bool {
	return fdc.irq && fdc.DoubleDensity()
}

// Halt returns true if the halt bit is set in the drive select latch.
func (fdc *Controller) Halt() bool {
	return fdc.Select&SelectHalt == SelectHalt
}

// DataRequest returns the state of the DRQ output.
func (fdc *Controller) DataRequest() bool {
	return fdc.Status.has(DataRequest)
}

// Hold returns true if the CPU should be halted. The CPU is held while the
// halt bit is set and the controller has no data to transfer.
func (fdc *Controller) Hold() bool {
	return fdc.Halt() && !fdc.DataRequest()
}

// Busy returns true if a command is in progress.
func (fdc *Controller) Busy() bool {
	return fdc.Status.has(Busy)
}

// Pending returns true if a step is waiting to be run.
func (fdc *Controller) Pending() bool {
	return fdc.phase != phaseIdle
}

// TakeSchedule returns the delay until the next step, if a new step has been
// scheduled since the last call. The caller should call Resume() when the
// delay has elapsed.
func (fdc *Controller) TakeSchedule() (uint64, bool) {
	if !fdc.newSchedule {
		return 0, false
	}
	fdc.newSchedule = false
	return fdc.delay, true
}

// Resume runs the pending step. Nothing happens if there is no pending step.
func (fdc *Controller) Resume() {
	p := fdc.phase
	fdc.phase = phaseIdle
	fdc.schedule(fdc.advance(p))
	fdc.releaseHalt()
}

// advance runs the step for phase p and returns the next phase and the delay
// before it is due.
func (fdc *Controller) advance(p phase) (phase, uint64) {
	switch p {
	case phaseSeeking:
		return fdc.seek()
	case phaseReadingSector:
		return fdc.readSector()
	case phaseWritingSector:
		return fdc.writeSector()
	case phaseReadingAddress:
		return fdc.readAddress()
	case phaseWritingTrack:
		return fdc.writeTrack()
	case phaseEnding:
		fdc.endCommand()
	}
	return phaseIdle, 0
}

// schedule replaces any pending step. a phase of phaseIdle cancels the
// pending step.
func (fdc *Controller) schedule(p phase, delay uint64) {
	if p == phaseIdle {
		fdc.cancel()
		return
	}
	fdc.Status |= Busy
	fdc.phase = p
	fdc.delay = delay
	fdc.newSchedule = true
}

func (fdc *Controller) cancel() {
	fdc.phase = phaseIdle
	fdc.delay = 0
	fdc.newSchedule = false
}

func (fdc *Controller) releaseHalt() {
	if fdc.irq {
		fdc.Select &^= SelectHalt
	}
}

// the image in the selected drive. the lowest numbered selected drive is
// used
func (fdc *Controller) selected() *Image {
	switch {
	case fdc.Select&SelectDrive0 == SelectDrive0:
		return fdc.drives[0]
	case fdc.Select&SelectDrive1 == SelectDrive1:
		return fdc.drives[1]
	case fdc.Select&SelectDrive2 == SelectDrive2:
		return fdc.drives[2]
	case fdc.Select&SelectDrive3 == SelectDrive3:
		return fdc.drives[3]
	}
	return nil
}

// status preparation for type I commands.
func (fdc *Controller) clearTypeI() {
	fdc.Status &^= Index | CRCError | SeekError | NotReady
	fdc.Status |= Busy
	fdc.Status.set(HeadLoaded, fdc.Command&flagHeadLoad == flagHeadLoad)
	fdc.Status.set(Track00, fdc.Track == 0)
}

// status preparation for type II and type III commands.
func (fdc *Controller) clearTypeII() {
	fdc.Status = Busy
}

func (fdc *Controller) endCommand() {
	fdc.cancel()
	fdc.Status &^= Busy
	fdc.irq = true

	if fdc.WriteBack {
		if img := fdc.selected(); img != nil {
			if err := img.Flush(); err != nil {
				logger.Log(fdc.perm, "disk", err.Error())
			}
		}
	}
}

// the record is not found if there is no disk in the selected drive or the
// sector or track is outside of the disk geometry.
func (fdc *Controller) recordNotFound() bool {
	return fdc.selected() == nil || fdc.Sector == 0 || fdc.Sector > Sectors || fdc.Track >= Tracks
}

func (fdc *Controller) offset() int {
	return (int(fdc.Track)*Sectors+int(fdc.Sector)-1)*SectorLength + fdc.pos
}

// Read services a read from the controller. The offset is relative to the
// start of the controller's address range.
func (fdc *Controller) Read(offset uint16) uint8 {
	if offset&0x08 == 0 {
		return 0xff
	}

	switch offset & 0x03 {
	case 0:
		fdc.irq = false
		return uint8(fdc.Status)
	case 1:
		return fdc.Track
	case 2:
		return fdc.Sector
	}

	fdc.Status &^= DataRequest | LostData
	return fdc.Data
}

// Write services a write to the controller. The offset is relative to the
// start of the controller's address range.
func (fdc *Controller) Write(offset uint16, data uint8) {
	if offset&0x08 == 0 {
		fdc.writeSelect(data)
		fdc.releaseHalt()
		return
	}

	switch offset & 0x03 {
	case 0:
		fdc.Status &^= DataRequest | LostData
		fdc.irq = false
		fdc.command(data)
	case 1:
		fdc.Track = data
	case 2:
		fdc.Sector = data
	case 3:
		fdc.Status &^= DataRequest | LostData
		fdc.Data = data
	}

	fdc.releaseHalt()
}

func (fdc *Controller) writeSelect(data uint8) {
	if (fdc.Select^data)&SelectMotor == SelectMotor {
		if data&SelectMotor == SelectMotor {
			logger.Log(fdc.perm, "disk", "motor on")
		} else {
			logger.Log(fdc.perm, "disk", "motor off")
		}
	}
	fdc.Select = data
}
