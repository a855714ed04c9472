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
	"github.com/jetsetilly/gopher6809/logger"
)

// command starts the command written to the command register.
func (fdc *Controller) command(cmd uint8) {
	fdc.Command = cmd

	if cmd&0xf0 == cmdForceIRQ {
		fdc.forceInterrupt(cmd)
		return
	}

	switch cmd & 0xf0 {
	case cmdRestore:
		logger.Log(fdc.perm, "disk", "restore")
		fdc.clearTypeI()
		fdc.target = 0
		fdc.schedule(fdc.seek())

	case cmdSeek:
		logger.Logf(fdc.perm, "disk", "seek to track %d", fdc.Data)
		fdc.clearTypeI()
		fdc.target = fdc.Data
		fdc.schedule(fdc.seek())

	case cmdStep, cmdStepUpdate:
		fdc.clearTypeI()
		fdc.step()

	case cmdStepIn, cmdStepInU:
		fdc.clearTypeI()
		fdc.direction = 1
		fdc.step()

	case cmdStepOut, cmdStepOutU:
		fdc.clearTypeI()
		fdc.direction = -1
		fdc.step()

	case cmdReadSector, cmdReadMulti:
		logger.Logf(fdc.perm, "disk", "read sector %d:%d", fdc.Track, fdc.Sector)
		fdc.clearTypeII()
		fdc.pos = 0
		fdc.schedule(phaseReadingSector, fdc.commandDelay(55*ByteDelay))

	case cmdWriteSector, cmdWriteMulti:
		logger.Logf(fdc.perm, "disk", "write sector %d:%d", fdc.Track, fdc.Sector)
		fdc.clearTypeII()
		fdc.pos = -2
		if img := fdc.selected(); img != nil && img.WriteProtected {
			fdc.endCommand()
			fdc.Status |= Protected
			return
		}
		fdc.schedule(phaseWritingSector, fdc.commandDelay(20*ByteDelay))

	case cmdReadAddress:
		logger.Logf(fdc.perm, "disk", "read address on track %d", fdc.Track)
		fdc.clearTypeII()
		fdc.Sector = 1
		fdc.pos = 0
		fdc.schedule(phaseReadingAddress, fdc.commandDelay(55*ByteDelay))

	case cmdReadTrack:
		logger.Log(fdc.perm, "disk", "read track is not supported")

	case cmdWriteTrack:
		logger.Logf(fdc.perm, "disk", "write track %d", fdc.Track)
		fdc.clearTypeII()
		fdc.Sector = 1
		fdc.pos = -(101 + 59)
		fdc.Status |= DataRequest
		fdc.schedule(phaseWritingTrack, fdc.commandDelay(20*ByteDelay))
	}
}

// the delay before the first step of a type II or type III command. the
// head settle delay replaces the normal delay if the command requests it.
func (fdc *Controller) commandDelay(normal uint64) uint64 {
	if fdc.Command&flagDelay == flagDelay {
		return HeadSettle
	}
	return normal
}

func (fdc *Controller) forceInterrupt(cmd uint8) {
	logger.Logf(fdc.perm, "disk", "force interrupt (%#02x)", cmd)
	fdc.cancel()
	if !fdc.Busy() {
		fdc.clearTypeI()
	}
	fdc.Status &^= Busy
	if cmd&flagIRQ != 0 {
		fdc.irq = true
	}
}

// seek moves the head one track towards the target track.
func (fdc *Controller) seek() (phase, uint64) {
	if fdc.target >= Tracks {
		fdc.target = Tracks - 1
	}

	if fdc.Track == fdc.target {
		fdc.endTypeI()
		return phaseIdle, 0
	}

	if fdc.target > fdc.Track {
		fdc.direction = 1
	} else {
		fdc.direction = -1
	}

	fdc.Track = uint8(int(fdc.Track) + fdc.direction)

	return phaseSeeking, stepRates[fdc.Command&0x03]
}

// step moves the head one track in the current direction. the track
// register is only updated if the command asks for it.
func (fdc *Controller) step() {
	if fdc.Command&flagUpdate == flagUpdate {
		t := int(fdc.Track) + fdc.direction
		if t >= 0 && t < 0x100 {
			fdc.Track = uint8(t)
		}
	}
	fdc.endTypeI()
}

func (fdc *Controller) endTypeI() {
	fdc.endCommand()
	fdc.Status.set(Track00, fdc.Track == 0)
}

func (fdc *Controller) readSector() (phase, uint64) {
	if fdc.pos >= SectorLength {
		if fdc.Command&flagMulti == 0 {
			return phaseEnding, 2 * ByteDelay
		}
		fdc.pos = 0
		fdc.Sector++
		return phaseReadingSector, 82 * ByteDelay
	}

	if fdc.recordNotFound() {
		fdc.endCommand()
		fdc.Status |= RecordNotFound
		return phaseIdle, 0
	}

	fdc.Status.set(LostData, fdc.DataRequest())

	if v, ok := fdc.selected().read(fdc.offset()); ok {
		fdc.Data = v
	}
	fdc.Status |= DataRequest
	fdc.pos++

	return phaseReadingSector, ByteDelay
}

func (fdc *Controller) writeSector() (phase, uint64) {
	if fdc.recordNotFound() {
		fdc.endCommand()
		fdc.Status |= RecordNotFound
		return phaseIdle, 0
	}

	switch fdc.pos {
	case -2:
		fdc.Status |= DataRequest
		fdc.pos++
		return phaseWritingSector, 8 * ByteDelay
	case -1:
		// the first byte must be written to the data register before the
		// data field begins
		if fdc.DataRequest() {
			fdc.endCommand()
			fdc.Status |= LostData
			return phaseIdle, 0
		}
		fdc.pos++
		return phaseWritingSector, 24 * ByteDelay
	}

	img := fdc.selected()
	if fdc.DataRequest() {
		fdc.Status |= LostData
		img.write(fdc.offset(), 0x00)
	} else {
		img.write(fdc.offset(), fdc.Data)
	}
	fdc.pos++

	if fdc.pos >= SectorLength {
		if fdc.Command&flagMulti == 0 {
			fdc.endCommand()
			return phaseIdle, 0
		}
		fdc.pos = -2
		fdc.Sector++
		return phaseWritingSector, 23 * ByteDelay
	}

	fdc.Status |= DataRequest
	return phaseWritingSector, ByteDelay
}

func (fdc *Controller) readAddress() (phase, uint64) {
	if fdc.recordNotFound() {
		fdc.endCommand()
		fdc.Status |= RecordNotFound
		return phaseIdle, 0
	}

	if fdc.pos >= 6 {
		fdc.endCommand()
		fdc.Sector = fdc.Track
		return phaseIdle, 0
	}

	// track, side, sector, length code (1 is 256 bytes) and two CRC bytes
	switch fdc.pos {
	case 0:
		fdc.Data = fdc.Track
	case 1:
		fdc.Data = 0
	case 2:
		fdc.Data = fdc.Sector
	case 3:
		fdc.Data = 1
	default:
		fdc.Data = 0
	}

	fdc.Status.set(LostData, fdc.DataRequest())
	fdc.Status |= DataRequest
	fdc.pos++

	return phaseReadingAddress, ByteDelay
}

// writeTrack formats a track. the ID and data fields of each sector are
// located by looking for the data address mark and the gap byte that
// follows the data field. only the data fields are stored in the image.
func (fdc *Controller) writeTrack() (phase, uint64) {
	if fdc.recordNotFound() {
		fdc.endCommand()
		return phaseIdle, 0
	}

	data := fdc.Data
	if fdc.DataRequest() {
		fdc.Status |= LostData
		data = 0x00
	}

	if fdc.pos >= 0 && fdc.pos < SectorLength {
		fdc.selected().write(fdc.offset(), data)
	}

	switch {
	case fdc.pos > SectorLength && data == 0x4e:
		fdc.pos = -1
		fdc.Sector++
	case fdc.pos >= 0:
		fdc.pos++
	case data == 0xfb:
		fdc.pos = 0
	}

	fdc.Status |= DataRequest
	return phaseWritingTrack, ByteDelay
}

// LoadImage inserts a disk image into the drive. Any image already in the
// drive is unloaded first.
func (fdc *Controller) LoadImage(drive int, filename string) error {
	if drive < 0 || drive >= NumDrives {
		return nil
	}

	img, err := LoadImage(filename)
	if err != nil {
		return err
	}

	fdc.Insert(drive, img)

	return nil
}

// Insert an image into the drive. Any image already in the drive is
// unloaded first.
func (fdc *Controller) Insert(drive int, img *Image) {
	if drive < 0 || drive >= NumDrives {
		return
	}
	fdc.UnloadImage(drive)
	fdc.drives[drive] = img
	if img.WriteProtected {
		logger.Logf(fdc.perm, "disk", "drive %d: %s (write protected)", drive, img.Filename)
	} else {
		logger.Logf(fdc.perm, "disk", "drive %d: %s", drive, img.Filename)
	}
}

// UnloadImage removes the image from the drive. Changes to the image are
// written to the file.
func (fdc *Controller) UnloadImage(drive int) {
	if drive < 0 || drive >= NumDrives {
		return
	}
	img := fdc.drives[drive]
	if img == nil {
		return
	}
	fdc.drives[drive] = nil
	if err := img.Close(); err != nil {
		logger.Log(fdc.perm, "disk", err.Error())
	}
}

// Image returns the image in the drive. Returns nil if the drive is empty.
func (fdc *Controller) Image(drive int) *Image {
	if drive < 0 || drive >= NumDrives {
		return nil
	}
	return fdc.drives[drive]
}
