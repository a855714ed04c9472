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

package hardware

import (
	"time"

	"github.com/jetsetilly/gopher6809/hardware/clocks"
	"github.com/jetsetilly/gopher6809/hardware/cpu"
	"github.com/jetsetilly/gopher6809/hardware/pia"
	"github.com/jetsetilly/gopher6809/logger"
)

// StepOneField runs the machine for the duration of one video field. Returns
// false if the geometry of the display changed during the field, in which case
// the presentation layer should reinitialise. Errors are fatal CPU conditions
// and leave the machine part way through the field.
func (m *Machine) StepOneField() (bool, error) {
	m.Keyboard.Service()

	next := m.VDG.StartField()
	due := m.CPU.Time + next

	for next != 0 {
		if err := m.CPU.Step(); err != nil {
			dis, _ := cpu.Disassemble(m.SAM, m.CPU.LastResult.Address)
			logger.Logf(m, "machine", "%v: %s", err, dis)
			return true, err
		}
		now := m.CPU.Time

		m.CPU.SetNMI(m.Disk.NMI())

		m.Joystick.Step()
		m.Sound.Step(now)
		m.Cassette.Step(now)

		for next != 0 && now >= due {
			next = m.VDG.Advance()
			due += next

			m.PIA1.InjectEdge(pia.SideA, pia.C1, m.VDG.HS())
			m.PIA1.InjectEdge(pia.SideB, pia.C1, m.VDG.FS())

			if m.cartSense {
				m.PIA2.InjectEdge(pia.SideB, pia.C1, true)
				m.PIA2.InjectEdge(pia.SideB, pia.C1, false)
			}
		}

		m.serviceDisk(now)

		m.CPU.SetIRQ(m.PIA1.InterruptPending())
		m.CPU.SetFIRQ(m.PIA2.InterruptPending())
		m.CPU.CycleNanoseconds = m.SAM.CycleNanoseconds()
	}

	changed := m.VDG.EndField()

	return !changed, m.Sound.EndField()
}

// serviceDisk runs the pending disk controller step if it is due. A schedule
// made by the most recent instruction replaces the pending step before the due
// time is checked.
func (m *Machine) serviceDisk(now uint64) {
	m.takeDiskSchedule(now)

	if m.diskPending && now >= m.diskDue {
		m.diskPending = false
		m.Disk.Resume()
		m.takeDiskSchedule(now)
	}

	m.CPU.Halted = m.Disk.Hold()
}

func (m *Machine) takeDiskSchedule(now uint64) {
	if d, ok := m.Disk.TakeSchedule(); ok {
		m.diskDue = now + d
		m.diskPending = true
	}
}

// Ahead returns how far the virtual clock is ahead of the wall clock. A front
// end should wait for this duration before running the next field. If the
// virtual clock has fallen more than a second behind then it is moved forward
// to the wall clock.
func (m *Machine) Ahead() time.Duration {
	now := m.Clock.Nanoseconds()
	if m.CPU.Time > now {
		return time.Duration(m.CPU.Time - now)
	}
	if now-m.CPU.Time > clocks.Second {
		logger.Logf(m, "machine", "resync virtual time (%v behind)", time.Duration(now-m.CPU.Time).Round(time.Millisecond))
		m.resync(now + 1)
	}
	return 0
}

// move the virtual clock forward without running the machine
func (m *Machine) resync(t uint64) {
	if m.diskPending && m.diskDue > m.CPU.Time {
		m.diskDue += t - m.CPU.Time
	}
	m.CPU.Time = t
	m.Sound.Resync(t)
	m.Cassette.Resync(t)
}

// Run fields until the continueCheck function returns false or an error. The
// emulation is paced to the wall clock. A nil continueCheck runs forever.
func (m *Machine) Run(continueCheck func() (bool, error)) error {
	for {
		if continueCheck != nil {
			ok, err := continueCheck()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		if _, err := m.StepOneField(); err != nil {
			return err
		}

		if d := m.Ahead(); d > 0 {
			time.Sleep(d)
		}
	}
}

// RunForFields runs the machine for the number of fields as quickly as
// possible, without reference to the wall clock.
func (m *Machine) RunForFields(n int) error {
	for i := 0; i < n; i++ {
		if _, err := m.StepOneField(); err != nil {
			return err
		}
	}
	return nil
}
