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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6809/curated"
	"github.com/jetsetilly/gopher6809/hardware/clocks"
	"github.com/jetsetilly/gopher6809/hardware/cpu"
	"github.com/jetsetilly/gopher6809/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6809/hardware/disk"
	"github.com/jetsetilly/gopher6809/hardware/memory/bus"
	"github.com/jetsetilly/gopher6809/hardware/peripherals/cassette"
	"github.com/jetsetilly/gopher6809/hardware/peripherals/joystick"
	"github.com/jetsetilly/gopher6809/hardware/peripherals/keyboard"
	"github.com/jetsetilly/gopher6809/hardware/peripherals/sound"
	"github.com/jetsetilly/gopher6809/hardware/pia"
	"github.com/jetsetilly/gopher6809/hardware/preferences"
	"github.com/jetsetilly/gopher6809/hardware/sam"
	"github.com/jetsetilly/gopher6809/hardware/vdg"
	"github.com/jetsetilly/gopher6809/logger"
)

// Error patterns returned by the Machine type.
const (
	ROMError   = "machine: rom: %v"
	NoSuchBank = "machine: rom: no bank %d"
	NoSuchDisk = "machine: disk: no drive %d"
)

// address ranges of the memory mapped devices that are not part of the SAM
const (
	pia1Origin = uint16(0xff00)
	pia1Memtop = uint16(0xff1f)
	pia2Origin = uint16(0xff20)
	pia2Memtop = uint16(0xff3f)
	diskOrigin = uint16(0xff40)
	diskMemtop = uint16(0xff5f)
)

// text screen dimensions
const (
	TextColumns = 32
	TextRows    = 16
)

// Machine is the main container for the emulated components.
type Machine struct {
	Prefs *preferences.Preferences

	// the wall clock used by Ahead()
	Clock clocks.Source

	Bus *bus.Router
	CPU *cpu.CPU
	SAM *sam.SAM

	// the first PIA handles the keyboard, the joystick comparator and the
	// sync interrupts. the second handles the DAC, the VDG mode and the
	// cartridge interrupt
	PIA1 *pia.PIA
	PIA2 *pia.PIA

	Disk *disk.Controller
	VDG  *vdg.VDG

	Keyboard *keyboard.Keyboard
	Joystick *joystick.Joystick
	Sound    *sound.Sound
	Cassette *cassette.Cassette

	// logging is suppressed when Silent is true
	Silent bool

	// pulse the cartridge interrupt once per video event
	cartSense bool

	// virtual time of the pending disk controller step
	diskDue     uint64
	diskPending bool
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The prefs and clk arguments can be nil, in which case default
// preferences and the monotonic wall clock are used.
func NewMachine(prefs *preferences.Preferences, clk clocks.Source) (*Machine, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	if clk == nil {
		clk = clocks.NewMonotonic()
	}

	m := &Machine{
		Prefs: prefs,
		Clock: clk,
		Bus:   bus.NewRouter(),
		PIA1:  pia.NewPIA("PIA1"),
		PIA2:  pia.NewPIA("PIA2"),
	}

	m.SAM = sam.NewSAM(m)
	if m.Prefs.RandomState.Get().(bool) {
		m.Prefs.RandSrc.Read(m.SAM.RAM[:])
	}

	m.Disk = disk.NewController(m)
	m.Disk.WriteBack = m.Prefs.DiskWriteBack.Get().(bool)

	// registration order is significant. the PIAs and the disk controller are
	// inside the address range of the SAM
	m.Bus.Register(bus.Area{Label: m.PIA1.Label(), Origin: pia1Origin, Memtop: pia1Memtop, Read: m.PIA1.Read, Write: m.PIA1.Write})
	m.Bus.Register(bus.Area{Label: m.PIA2.Label(), Origin: pia2Origin, Memtop: pia2Memtop, Read: m.PIA2.Read, Write: m.PIA2.Write})
	m.Bus.Register(bus.Area{Label: "disk", Origin: diskOrigin, Memtop: diskMemtop, Read: m.Disk.Read, Write: m.Disk.Write})
	m.SAM.Attach(m.Bus)

	m.CPU = cpu.NewCPU(m.Bus)

	m.VDG = vdg.NewVDG(m, m.SAM)
	err = m.PIA2.AddObserver(pia.SideB, m.VDG)
	if err != nil {
		return nil, err
	}

	m.Joystick, err = joystick.NewJoystick(m.PIA1, m.PIA2)
	if err != nil {
		return nil, err
	}
	m.Joystick.Default = m.Prefs.JoystickCentre.Get().(float64)

	m.Keyboard, err = keyboard.NewKeyboard(m, m.PIA1, m.Joystick)
	if err != nil {
		return nil, err
	}

	m.Sound = sound.NewSound(m.PIA1, m.PIA2, m.Prefs.SampleRate.Get().(int))
	m.Cassette = cassette.NewCassette(m, m.PIA2)

	m.Reset()

	// virtual time starts at the wall clock time
	m.CPU.Time = m.Clock.Nanoseconds()

	return m, nil
}

// AllowLogging implements the logger.Permission interface.
func (m *Machine) AllowLogging() bool {
	return !m.Silent
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%s", m.CPU, m.SAM, m.PIA1, m.PIA2, m.Disk, m.VDG)
}

// Reset emulates the reset button. RAM, ROM and inserted media are not
// affected. The CPU restarts from the reset vector.
func (m *Machine) Reset() {
	m.PIA1.Reset()
	m.PIA2.Reset()
	m.SAM.Reset()
	m.Keyboard.Reset()
	m.Joystick.Reset()
	m.Cassette.Reset()
	m.VDG.OutputChanged(pia.SideB, m.PIA2.Output(pia.SideB))
	m.Disk.Reset()
	m.diskPending = false
	m.cartSense = m.Prefs.CartridgeSense.Get().(bool)

	m.CPU.Reset()
	m.CPU.CycleNanoseconds = m.SAM.CycleNanoseconds()

	logger.Logf(m, "machine", "reset: PC=%04x", m.CPU.PC)
}

// LoadROM loads the file into the numbered ROM bank. The machine should be
// reset after loading the ROMs.
func (m *Machine) LoadROM(bank int, filename string) error {
	if bank < 0 || bank >= sam.NumBanks {
		return curated.Errorf(NoSuchBank, bank)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(ROMError, err)
	}
	m.SAM.LoadROM(bank, data)
	return nil
}

// UnloadROM empties the numbered ROM bank.
func (m *Machine) UnloadROM(bank int) error {
	if bank < 0 || bank >= sam.NumBanks {
		return curated.Errorf(NoSuchBank, bank)
	}
	m.SAM.UnloadROM(bank)
	return nil
}

// LoadDisk inserts the disk image file into the drive. An empty filename
// unloads the drive.
func (m *Machine) LoadDisk(drive int, filename string) error {
	if drive < 0 || drive >= disk.NumDrives {
		return curated.Errorf(NoSuchDisk, drive)
	}
	if filename == "" {
		m.Disk.UnloadImage(drive)
		return nil
	}
	return m.Disk.LoadImage(drive, filename)
}

// LoadCassette inserts the recording as a new tape. An empty filename ejects
// the tape.
func (m *Machine) LoadCassette(filename string) error {
	if filename == "" {
		m.Cassette.Eject()
		return nil
	}
	return m.Cassette.Load(filename)
}

// AttachAudio sets the destination of the sampled audio output. A nil value
// stops sampling.
func (m *Machine) AttachAudio(mixer sound.Mixer) {
	m.Sound.AttachMixer(mixer)
}

// QueueKeys types the text on the keyboard. Returns the number of characters
// queued.
func (m *Machine) QueueKeys(s string) int {
	return m.Keyboard.QueueKeys(s)
}

// PressKey holds down a key.
func (m *Machine) PressKey(k keyboard.Key) {
	m.Keyboard.Press(k)
}

// ReleaseKey lets go of a key.
func (m *Machine) ReleaseKey(k keyboard.Key) {
	m.Keyboard.Release(k)
}

// SetJoystick sets the voltage of a joystick axis.
func (m *Machine) SetJoystick(axis joystick.Axis, volts float64) {
	m.Joystick.SetAxis(axis, volts)
}

// SetJoystickButton presses or releases a joystick button.
func (m *Machine) SetJoystickButton(b joystick.Button, pressed bool) {
	m.Joystick.SetButton(b, pressed)
}

// SetCartridgeSense sets whether the cartridge interrupt is pulsed. This is
// how a cartridge asks to be started automatically.
func (m *Machine) SetCartridgeSense(sense bool) {
	m.cartSense = sense
}

// TextScreen returns the contents of the display memory interpreted as text.
// Semigraphic characters are returned as spaces.
func (m *Machine) TextScreen() []string {
	rows := make([]string, TextRows)
	base := int(m.SAM.DisplayOffset())
	for r := range rows {
		var s strings.Builder
		for c := 0; c < TextColumns; c++ {
			s.WriteRune(vdg.ASCII(m.SAM.RAM[(base+r*TextColumns+c)&0xffff]))
		}
		rows[r] = s.String()
	}
	return rows
}

type state struct {
	Time      uint64
	Registers registers.Registers
	SAM       string
	PIA1      string
	PIA2      string
	Disk      string
	VDG       string
	Keyboard  string
	Joystick  string
	Cassette  string
	Bus       []string
}

// Dump writes a graph of the current state of the machine in the DOT
// language.
func (m *Machine) Dump(w io.Writer) {
	s := &state{
		Time:      m.CPU.Time,
		Registers: m.CPU.Registers,
		SAM:       m.SAM.String(),
		PIA1:      m.PIA1.String(),
		PIA2:      m.PIA2.String(),
		Disk:      m.Disk.String(),
		VDG:       m.VDG.String(),
		Keyboard:  m.Keyboard.String(),
		Joystick:  m.Joystick.String(),
		Cassette:  m.Cassette.String(),
	}
	for _, a := range m.Bus.Areas() {
		s.Bus = append(s.Bus, a.String())
	}
	memviz.Map(w, s)
}

// Close unloads all disk images, writing any changes to the image files, and
// ends the audio output.
func (m *Machine) Close() error {
	for d := 0; d < disk.NumDrives; d++ {
		m.Disk.UnloadImage(d)
	}
	return m.Sound.EndMixing()
}
